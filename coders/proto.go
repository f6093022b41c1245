package coders

import (
	"io"

	"google.golang.org/protobuf/proto"

	"github.com/rmanyari/beam/coder"
)

// Proto codes protobuf messages, framed like Bytes. Construct with NewProto
// and a message constructor:
//
//	coders.NewProto(func() *mypb.User { return &mypb.User{} })
//
// proto.Marshal does not specify field ordering across library versions, so
// the coder is presumed non-deterministic and does not implement
// coder.Deterministic.
type Proto[M proto.Message] struct {
	new func() M
}

func NewProto[M proto.Message](ctor func() M) Proto[M] {
	return Proto[M]{new: ctor}
}

func (c Proto[M]) Encode(v M, w io.Writer) error {
	b, err := proto.Marshal(v)
	if err != nil {
		return &coder.EncodingError{Coder: "coders.Proto", Err: err}
	}
	return Bytes{}.Encode(b, w)
}

func (c Proto[M]) Decode(r io.Reader) (M, error) {
	m := c.new()
	b, err := Bytes{}.Decode(r)
	if err != nil {
		return m, err
	}
	if err := proto.Unmarshal(b, m); err != nil {
		return m, &coder.DecodingError{Coder: "coders.Proto", Err: err}
	}
	return m, nil
}

func (c Proto[M]) EncodeOuter(v M, w io.Writer) error {
	b, err := proto.Marshal(v)
	if err != nil {
		return &coder.EncodingError{Coder: "coders.Proto", Err: err}
	}
	_, err = w.Write(b)
	return err
}

func (c Proto[M]) DecodeOuter(r io.Reader) (M, error) {
	m := c.new()
	b, err := io.ReadAll(r)
	if err != nil {
		return m, err
	}
	if err := proto.Unmarshal(b, m); err != nil {
		return m, &coder.DecodingError{Coder: "coders.Proto", Err: err}
	}
	return m, nil
}
