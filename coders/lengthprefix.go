package coders

import (
	"bytes"
	"fmt"
	"io"

	"github.com/rmanyari/beam/coder"
)

// LengthPrefix makes any coder self-delimiting by buffering the element's
// outer encoding and writing a uvarint byte length ahead of it. The prefixed
// form is already self-delimiting, so output is identical in both contexts.
type LengthPrefix[T any] struct {
	Elem coder.Coder[T]
}

var (
	_ coder.Coder[[]byte] = LengthPrefix[[]byte]{}
	_ coder.Composite     = LengthPrefix[[]byte]{}
	_ coder.Deterministic = LengthPrefix[[]byte]{}
)

func (c LengthPrefix[T]) Encode(v T, w io.Writer) error {
	var buf bytes.Buffer
	if err := coder.EncodeOuter(c.Elem, v, &buf); err != nil {
		return err
	}
	if err := writeUvarint(w, uint64(buf.Len())); err != nil {
		return err
	}
	_, err := w.Write(buf.Bytes())
	return err
}

func (c LengthPrefix[T]) Decode(r io.Reader) (T, error) {
	var zero T
	n, err := readUvarint(r)
	if err != nil {
		return zero, err
	}
	if n > maxDecodeLen {
		return zero, &coder.DecodingError{Coder: "coders.LengthPrefix", Err: fmt.Errorf("length prefix %d exceeds limit", n)}
	}
	b := make([]byte, int(n))
	if _, err := io.ReadFull(r, b); err != nil {
		return zero, err
	}
	return coder.DecodeOuter(c.Elem, bytes.NewReader(b))
}

func (c LengthPrefix[T]) CoderArguments() []any { return []any{c.Elem} }

func (c LengthPrefix[T]) VerifyDeterminism() error {
	if err := coder.VerifyDeterminism(c.Elem); err != nil {
		return &coder.NondeterminismError{Coder: "coders.LengthPrefix", Reason: "element coder", Err: err}
	}
	return nil
}
