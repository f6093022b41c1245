package coders

import (
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/rmanyari/beam/coder"
)

// Msgpack codes values through vmihailenco/msgpack/v5, framed like Bytes.
// The zero value is ready to use. Map fields follow Go's randomized
// iteration order on encode, so the coder is presumed non-deterministic and
// does not implement coder.Deterministic.
type Msgpack[T any] struct{}

var _ coder.OuterCoder[struct{}] = Msgpack[struct{}]{}

func (Msgpack[T]) Encode(v T, w io.Writer) error {
	b, err := msgpack.Marshal(v)
	if err != nil {
		return &coder.EncodingError{Coder: "coders.Msgpack", Err: err}
	}
	return Bytes{}.Encode(b, w)
}

func (Msgpack[T]) Decode(r io.Reader) (T, error) {
	var v T
	b, err := Bytes{}.Decode(r)
	if err != nil {
		return v, err
	}
	if err := msgpack.Unmarshal(b, &v); err != nil {
		return v, &coder.DecodingError{Coder: "coders.Msgpack", Err: err}
	}
	return v, nil
}

func (Msgpack[T]) EncodeOuter(v T, w io.Writer) error {
	b, err := msgpack.Marshal(v)
	if err != nil {
		return &coder.EncodingError{Coder: "coders.Msgpack", Err: err}
	}
	_, err = w.Write(b)
	return err
}

func (Msgpack[T]) DecodeOuter(r io.Reader) (T, error) {
	var v T
	b, err := io.ReadAll(r)
	if err != nil {
		return v, err
	}
	if err := msgpack.Unmarshal(b, &v); err != nil {
		return v, &coder.DecodingError{Coder: "coders.Msgpack", Err: err}
	}
	return v, nil
}
