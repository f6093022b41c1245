package coders

import (
	"encoding/json"
	"io"

	"github.com/rmanyari/beam/coder"
)

// JSON codes values through encoding/json, framed like Bytes. The zero value
// is ready to use. Custom Marshaler implementations and float formatting
// carry no byte-stability guarantee, so the coder is presumed
// non-deterministic and does not implement coder.Deterministic.
type JSON[T any] struct{}

var _ coder.OuterCoder[struct{}] = JSON[struct{}]{}

func (JSON[T]) Encode(v T, w io.Writer) error {
	b, err := json.Marshal(v)
	if err != nil {
		return &coder.EncodingError{Coder: "coders.JSON", Err: err}
	}
	return Bytes{}.Encode(b, w)
}

func (JSON[T]) Decode(r io.Reader) (T, error) {
	var v T
	b, err := Bytes{}.Decode(r)
	if err != nil {
		return v, err
	}
	if err := json.Unmarshal(b, &v); err != nil {
		return v, &coder.DecodingError{Coder: "coders.JSON", Err: err}
	}
	return v, nil
}

func (JSON[T]) EncodeOuter(v T, w io.Writer) error {
	b, err := json.Marshal(v)
	if err != nil {
		return &coder.EncodingError{Coder: "coders.JSON", Err: err}
	}
	_, err = w.Write(b)
	return err
}

func (JSON[T]) DecodeOuter(r io.Reader) (T, error) {
	var v T
	b, err := io.ReadAll(r)
	if err != nil {
		return v, err
	}
	if err := json.Unmarshal(b, &v); err != nil {
		return v, &coder.DecodingError{Coder: "coders.JSON", Err: err}
	}
	return v, nil
}
