package coders

import (
	"fmt"
	"io"

	"github.com/rmanyari/beam/coder"
)

// Bool codes bool values as one strict byte: 1 for true, 0 for false. Any
// other byte fails decoding.
type Bool struct{}

var (
	_ coder.Coder[bool]   = Bool{}
	_ coder.Deterministic = Bool{}
)

func (Bool) Encode(v bool, w io.Writer) error {
	b := [1]byte{0}
	if v {
		b[0] = 1
	}
	_, err := w.Write(b[:])
	return err
}

func (Bool) Decode(r io.Reader) (bool, error) {
	b, err := readByte(r)
	if err != nil {
		return false, err
	}
	switch b {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, &coder.DecodingError{Coder: "coders.Bool", Err: fmt.Errorf("invalid bool byte %#x", b)}
	}
}

func (Bool) VerifyDeterminism() error { return nil }
