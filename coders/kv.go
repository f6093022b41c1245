package coders

import (
	"io"

	"github.com/rmanyari/beam/coder"
)

// KV pairs a key with a value.
type KV[K, V any] struct {
	Key   K
	Value V
}

// KVCoder codes KV pairs by concatenation. The key is always encoded in the
// nested context; the value inherits the caller's context, so an outer pair
// ends with the value's outer form and spends no framing on it.
type KVCoder[K, V any] struct {
	Key   coder.Coder[K]
	Value coder.Coder[V]
}

var (
	_ coder.OuterCoder[KV[int64, []byte]] = KVCoder[int64, []byte]{}
	_ coder.Composite                     = KVCoder[int64, []byte]{}
	_ coder.Deterministic                 = KVCoder[int64, []byte]{}
)

func (c KVCoder[K, V]) Encode(kv KV[K, V], w io.Writer) error {
	if err := coder.EncodeNested(c.Key, kv.Key, w); err != nil {
		return err
	}
	return coder.EncodeNested(c.Value, kv.Value, w)
}

func (c KVCoder[K, V]) Decode(r io.Reader) (KV[K, V], error) {
	k, err := coder.DecodeNested(c.Key, r)
	if err != nil {
		return KV[K, V]{}, err
	}
	v, err := coder.DecodeNested(c.Value, r)
	if err != nil {
		return KV[K, V]{}, err
	}
	return KV[K, V]{Key: k, Value: v}, nil
}

func (c KVCoder[K, V]) EncodeOuter(kv KV[K, V], w io.Writer) error {
	if err := coder.EncodeNested(c.Key, kv.Key, w); err != nil {
		return err
	}
	return coder.EncodeOuter(c.Value, kv.Value, w)
}

func (c KVCoder[K, V]) DecodeOuter(r io.Reader) (KV[K, V], error) {
	k, err := coder.DecodeNested(c.Key, r)
	if err != nil {
		return KV[K, V]{}, err
	}
	v, err := coder.DecodeOuter(c.Value, r)
	if err != nil {
		return KV[K, V]{}, err
	}
	return KV[K, V]{Key: k, Value: v}, nil
}

func (c KVCoder[K, V]) CoderArguments() []any { return []any{c.Key, c.Value} }

// VerifyDeterminism holds when both components prove it.
func (c KVCoder[K, V]) VerifyDeterminism() error {
	if err := coder.VerifyDeterminism(c.Key); err != nil {
		return &coder.NondeterminismError{Coder: "coders.KVCoder", Reason: "key coder", Err: err}
	}
	if err := coder.VerifyDeterminism(c.Value); err != nil {
		return &coder.NondeterminismError{Coder: "coders.KVCoder", Reason: "value coder", Err: err}
	}
	return nil
}
