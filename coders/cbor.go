package coders

import (
	"io"

	"github.com/fxamacker/cbor/v2"

	"github.com/rmanyari/beam/coder"
)

// CBOR codes values of any Go type through fxamacker/cbor. The zero value is
// NOT ready to use; construct with NewCBOR or MustCBOR.
//
// With deterministic=true the encoder uses RFC 8949 Core Deterministic
// options and the coder proves determinism to the bridge; otherwise
// PreferredUnsortedEncOptions apply (smaller/faster defaults) and
// VerifyDeterminism fails. Time values encode as RFC3339Nano either way.
//
// The marshaled payload is framed like Bytes: length-prefixed when nested,
// raw when outer.
type CBOR[T any] struct {
	enc cbor.EncMode
	dec cbor.DecMode
	det bool
}

var (
	_ coder.OuterCoder[struct{}] = CBOR[struct{}]{}
	_ coder.Deterministic        = CBOR[struct{}]{}
)

// NewCBOR constructs a CBOR coder.
//   - deterministic=true uses CoreDetEncOptions (RFC 8949).
//   - Otherwise uses PreferredUnsortedEncOptions.
func NewCBOR[T any](deterministic bool) (CBOR[T], error) {
	var eo cbor.EncOptions
	if deterministic {
		eo = cbor.CoreDetEncOptions()
	} else {
		eo = cbor.PreferredUnsortedEncOptions()
	}
	eo.Time = cbor.TimeRFC3339Nano

	em, err := eo.EncMode()
	if err != nil {
		return CBOR[T]{}, err
	}
	dm, err := (cbor.DecOptions{}).DecMode()
	if err != nil {
		return CBOR[T]{}, err
	}
	return CBOR[T]{enc: em, dec: dm, det: deterministic}, nil
}

// MustCBOR is like NewCBOR but panics on error. Handy for package-level
// variables in tests and examples.
func MustCBOR[T any](deterministic bool) CBOR[T] {
	c, err := NewCBOR[T](deterministic)
	if err != nil {
		panic(err)
	}
	return c
}

func (c CBOR[T]) Encode(v T, w io.Writer) error {
	b, err := c.enc.Marshal(v)
	if err != nil {
		return &coder.EncodingError{Coder: "coders.CBOR", Err: err}
	}
	return Bytes{}.Encode(b, w)
}

func (c CBOR[T]) Decode(r io.Reader) (T, error) {
	var v T
	b, err := Bytes{}.Decode(r)
	if err != nil {
		return v, err
	}
	if err := c.dec.Unmarshal(b, &v); err != nil {
		return v, &coder.DecodingError{Coder: "coders.CBOR", Err: err}
	}
	return v, nil
}

func (c CBOR[T]) EncodeOuter(v T, w io.Writer) error {
	b, err := c.enc.Marshal(v)
	if err != nil {
		return &coder.EncodingError{Coder: "coders.CBOR", Err: err}
	}
	_, err = w.Write(b)
	return err
}

func (c CBOR[T]) DecodeOuter(r io.Reader) (T, error) {
	var v T
	b, err := io.ReadAll(r)
	if err != nil {
		return v, err
	}
	if err := c.dec.Unmarshal(b, &v); err != nil {
		return v, &coder.DecodingError{Coder: "coders.CBOR", Err: err}
	}
	return v, nil
}

// VerifyDeterminism holds only for coders constructed with the RFC 8949
// core deterministic encode options.
func (c CBOR[T]) VerifyDeterminism() error {
	if c.det {
		return nil
	}
	return &coder.NondeterminismError{
		Coder:  "coders.CBOR",
		Reason: "constructed without deterministic encode options",
	}
}
