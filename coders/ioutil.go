package coders

import (
	"encoding/binary"
	"io"
)

// maxDecodeLen bounds a single length prefix so a corrupt stream cannot
// trigger an arbitrarily large allocation before the payload read fails.
const maxDecodeLen = 1<<31 - 1

type byteReader struct {
	r io.Reader
	b [1]byte
}

func (br *byteReader) ReadByte() (byte, error) {
	if _, err := io.ReadFull(br.r, br.b[:]); err != nil {
		return 0, err
	}
	return br.b[0], nil
}

// readUvarint reads one unsigned varint from r without consuming bytes past
// it. Readers that implement io.ByteReader are used directly; others are
// read one byte at a time.
func readUvarint(r io.Reader) (uint64, error) {
	if br, ok := r.(io.ByteReader); ok {
		return binary.ReadUvarint(br)
	}
	return binary.ReadUvarint(&byteReader{r: r})
}

func writeUvarint(w io.Writer, v uint64) error {
	var buf [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(buf[:], v)
	_, err := w.Write(buf[:n])
	return err
}

func readByte(r io.Reader) (byte, error) {
	var b [1]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}
	return b[0], nil
}
