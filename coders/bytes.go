package coders

import (
	"fmt"
	"io"

	"github.com/rmanyari/beam/coder"
)

// Bytes codes []byte values. Nested output is a uvarint length prefix
// followed by the raw bytes; outer output is the raw bytes alone, delimited
// by the end of the stream. Bytes is the canonical dual-context coder: the
// two contexts legally produce different byte sequences for the same value.
type Bytes struct{}

var (
	_ coder.OuterCoder[[]byte] = Bytes{}
	_ coder.Deterministic      = Bytes{}
)

func (Bytes) Encode(v []byte, w io.Writer) error {
	if err := writeUvarint(w, uint64(len(v))); err != nil {
		return err
	}
	_, err := w.Write(v)
	return err
}

func (Bytes) Decode(r io.Reader) ([]byte, error) {
	n, err := readUvarint(r)
	if err != nil {
		return nil, err
	}
	if n > maxDecodeLen {
		return nil, &coder.DecodingError{Coder: "coders.Bytes", Err: fmt.Errorf("length prefix %d exceeds limit", n)}
	}
	b := make([]byte, int(n))
	if _, err := io.ReadFull(r, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (Bytes) EncodeOuter(v []byte, w io.Writer) error {
	_, err := w.Write(v)
	return err
}

func (Bytes) DecodeOuter(r io.Reader) ([]byte, error) {
	return io.ReadAll(r)
}

func (Bytes) VerifyDeterminism() error { return nil }
