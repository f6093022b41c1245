package coders

import (
	"fmt"
	"io"

	"github.com/rmanyari/beam/coder"
)

// Text codes string values with the Bytes framing: uvarint length prefix
// when nested, raw when outer. The string's bytes are written as-is; by
// convention the content is UTF-8 and no validation is performed.
type Text struct{}

var (
	_ coder.OuterCoder[string] = Text{}
	_ coder.Deterministic      = Text{}
)

func (Text) Encode(v string, w io.Writer) error {
	if err := writeUvarint(w, uint64(len(v))); err != nil {
		return err
	}
	_, err := io.WriteString(w, v)
	return err
}

func (Text) Decode(r io.Reader) (string, error) {
	n, err := readUvarint(r)
	if err != nil {
		return "", err
	}
	if n > maxDecodeLen {
		return "", &coder.DecodingError{Coder: "coders.Text", Err: fmt.Errorf("length prefix %d exceeds limit", n)}
	}
	b := make([]byte, int(n))
	if _, err := io.ReadFull(r, b); err != nil {
		return "", err
	}
	return string(b), nil
}

func (Text) EncodeOuter(v string, w io.Writer) error {
	_, err := io.WriteString(w, v)
	return err
}

func (Text) DecodeOuter(r io.Reader) (string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (Text) VerifyDeterminism() error { return nil }
