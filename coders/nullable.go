package coders

import (
	"fmt"
	"io"

	"github.com/rmanyari/beam/coder"
)

// Nullable wraps an element coder to code *T, spending one presence byte:
// 0 for nil, 1 followed by the element's nested encoding otherwise.
type Nullable[T any] struct {
	Elem coder.Coder[T]
}

var (
	_ coder.Coder[*int64] = Nullable[int64]{}
	_ coder.Composite     = Nullable[int64]{}
	_ coder.Deterministic = Nullable[int64]{}
)

func (c Nullable[T]) Encode(v *T, w io.Writer) error {
	if v == nil {
		_, err := w.Write([]byte{0})
		return err
	}
	if _, err := w.Write([]byte{1}); err != nil {
		return err
	}
	return coder.EncodeNested(c.Elem, *v, w)
}

func (c Nullable[T]) Decode(r io.Reader) (*T, error) {
	tag, err := readByte(r)
	if err != nil {
		return nil, err
	}
	switch tag {
	case 0:
		return nil, nil
	case 1:
		e, err := coder.DecodeNested(c.Elem, r)
		if err != nil {
			return nil, err
		}
		return &e, nil
	default:
		return nil, &coder.DecodingError{Coder: "coders.Nullable", Err: fmt.Errorf("invalid presence byte %#x", tag)}
	}
}

func (c Nullable[T]) CoderArguments() []any { return []any{c.Elem} }

func (c Nullable[T]) VerifyDeterminism() error {
	if err := coder.VerifyDeterminism(c.Elem); err != nil {
		return &coder.NondeterminismError{Coder: "coders.Nullable", Reason: "element coder", Err: err}
	}
	return nil
}
