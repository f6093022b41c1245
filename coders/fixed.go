package coders

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/rmanyari/beam/coder"
)

// BigEndianInt32 codes int32 values as four big-endian bytes. Fixed-width
// output delimits itself, so both contexts share one format.
type BigEndianInt32 struct{}

var (
	_ coder.Coder[int32]  = BigEndianInt32{}
	_ coder.Deterministic = BigEndianInt32{}
)

func (BigEndianInt32) Encode(v int32, w io.Writer) error {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], uint32(v))
	_, err := w.Write(b[:])
	return err
}

func (BigEndianInt32) Decode(r io.Reader) (int32, error) {
	var b [4]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}
	return int32(binary.BigEndian.Uint32(b[:])), nil
}

func (BigEndianInt32) VerifyDeterminism() error { return nil }

// BigEndianInt64 codes int64 values as eight big-endian bytes.
type BigEndianInt64 struct{}

var (
	_ coder.Coder[int64]  = BigEndianInt64{}
	_ coder.Deterministic = BigEndianInt64{}
)

func (BigEndianInt64) Encode(v int64, w io.Writer) error {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], uint64(v))
	_, err := w.Write(b[:])
	return err
}

func (BigEndianInt64) Decode(r io.Reader) (int64, error) {
	var b [8]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}
	return int64(binary.BigEndian.Uint64(b[:])), nil
}

func (BigEndianInt64) VerifyDeterminism() error { return nil }

// Double codes float64 values as the eight big-endian bytes of their IEEE-754
// bit pattern. Double does not implement coder.Deterministic: NaN payload
// bits vary by platform and producer, so equal values are not guaranteed
// byte-identical.
type Double struct{}

var _ coder.Coder[float64] = Double{}

func (Double) Encode(v float64, w io.Writer) error {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], math.Float64bits(v))
	_, err := w.Write(b[:])
	return err
}

func (Double) Decode(r io.Reader) (float64, error) {
	var b [8]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.BigEndian.Uint64(b[:])), nil
}
