package coders

import (
	"fmt"
	"io"

	"github.com/rmanyari/beam/coder"
)

// List codes slices as a uvarint element count followed by the elements'
// nested encodings. The count makes the stream self-delimiting, so List has
// no leaner outer form and relies on the bridge's default outer dispatch.
type List[T any] struct {
	Elem coder.Coder[T]
}

var (
	_ coder.Coder[[]int64] = List[int64]{}
	_ coder.Composite      = List[int64]{}
	_ coder.Deterministic  = List[int64]{}
)

func (c List[T]) Encode(v []T, w io.Writer) error {
	if err := writeUvarint(w, uint64(len(v))); err != nil {
		return err
	}
	for _, e := range v {
		if err := coder.EncodeNested(c.Elem, e, w); err != nil {
			return err
		}
	}
	return nil
}

func (c List[T]) Decode(r io.Reader) ([]T, error) {
	n, err := readUvarint(r)
	if err != nil {
		return nil, err
	}
	if n > maxDecodeLen {
		return nil, &coder.DecodingError{Coder: "coders.List", Err: fmt.Errorf("element count %d exceeds limit", n)}
	}
	// Cap the initial allocation: the count is attacker-controlled until the
	// element reads confirm it.
	capHint := n
	if capHint > 1024 {
		capHint = 1024
	}
	out := make([]T, 0, capHint)
	for i := uint64(0); i < n; i++ {
		e, err := coder.DecodeNested(c.Elem, r)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

func (c List[T]) CoderArguments() []any { return []any{c.Elem} }

func (c List[T]) VerifyDeterminism() error {
	if err := coder.VerifyDeterminism(c.Elem); err != nil {
		return &coder.NondeterminismError{Coder: "coders.List", Reason: "element coder", Err: err}
	}
	return nil
}
