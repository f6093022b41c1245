package coders

import (
	"io"

	"github.com/rmanyari/beam/coder"
)

// VarInt codes int64 values as unsigned varints over the value's
// two's-complement bits. Negative values always occupy ten bytes; callers
// encoding many small negatives should length-prefix a leaner coder instead.
//
// A varint delimits itself, so nested and outer output are identical.
type VarInt struct{}

var (
	_ coder.Coder[int64]  = VarInt{}
	_ coder.Deterministic = VarInt{}
)

func (VarInt) Encode(v int64, w io.Writer) error {
	return writeUvarint(w, uint64(v))
}

func (VarInt) Decode(r io.Reader) (int64, error) {
	u, err := readUvarint(r)
	if err != nil {
		return 0, err
	}
	return int64(u), nil
}

// VerifyDeterminism holds: every value has exactly one varint encoding.
func (VarInt) VerifyDeterminism() error { return nil }
