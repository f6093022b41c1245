package coder

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"strings"
	"testing"
)

// int32BE implements only the mandatory pair: four big-endian bytes.
type int32BE struct{}

func (int32BE) Encode(v int32, w io.Writer) error {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], uint32(v))
	_, err := w.Write(b[:])
	return err
}

func (int32BE) Decode(r io.Reader) (int32, error) {
	var b [4]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}
	return int32(binary.BigEndian.Uint32(b[:])), nil
}

// countingCoder records how often the mandatory methods run.
type countingCoder struct {
	encodes int
	decodes int
}

func (c *countingCoder) Encode(v int32, w io.Writer) error {
	c.encodes++
	return int32BE{}.Encode(v, w)
}

func (c *countingCoder) Decode(r io.Reader) (int32, error) {
	c.decodes++
	return int32BE{}.Decode(r)
}

// outerInt32 customizes the outer path: little-endian, so override output is
// distinguishable from the nested big-endian format.
type outerInt32 struct {
	outerEncodes *int
	outerDecodes *int
}

func (outerInt32) Encode(v int32, w io.Writer) error { return int32BE{}.Encode(v, w) }

func (outerInt32) Decode(r io.Reader) (int32, error) { return int32BE{}.Decode(r) }

func (c outerInt32) EncodeOuter(v int32, w io.Writer) error {
	*c.outerEncodes++
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], uint32(v))
	_, err := w.Write(b[:])
	return err
}

func (c outerInt32) DecodeOuter(r io.Reader) (int32, error) {
	*c.outerDecodes++
	var b [4]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}
	return int32(binary.LittleEndian.Uint32(b[:])), nil
}

// ctxInt32 implements the legacy three-argument form and records every
// context it is handed.
type ctxInt32 struct {
	contexts *[]Context
}

func (ctxInt32) Encode(v int32, w io.Writer) error { return int32BE{}.Encode(v, w) }

func (ctxInt32) Decode(r io.Reader) (int32, error) { return int32BE{}.Decode(r) }

func (c ctxInt32) EncodeContext(v int32, w io.Writer, ctx Context) error {
	*c.contexts = append(*c.contexts, ctx)
	return c.Encode(v, w)
}

func (c ctxInt32) DecodeContext(r io.Reader, ctx Context) (int32, error) {
	*c.contexts = append(*c.contexts, ctx)
	return c.Decode(r)
}

// pairComposite reports two components, in order.
type pairComposite struct {
	int32BE
	a, b any
}

func (p pairComposite) CoderArguments() []any { return []any{p.a, p.b} }

// provenCoder affirms determinism.
type provenCoder struct {
	int32BE
}

func (provenCoder) VerifyDeterminism() error { return nil }

var (
	_ Coder[int32]        = int32BE{}
	_ OuterCoder[int32]   = outerInt32{}
	_ ContextCoder[int32] = ctxInt32{}
	_ Composite           = pairComposite{}
	_ Deterministic       = provenCoder{}
)

func mustEncode(t *testing.T, f func(w io.Writer) error) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := f(&buf); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return buf.Bytes()
}

func TestNestedRoundTrip(t *testing.T) {
	c := int32BE{}
	enc := mustEncode(t, func(w io.Writer) error { return EncodeNested(c, 42, w) })
	got, err := DecodeNested(c, bytes.NewReader(enc))
	if err != nil {
		t.Fatalf("DecodeNested: %v", err)
	}
	if got != 42 {
		t.Fatalf("round trip: got %d want 42", got)
	}
}

// TestOuterDefaultDelegation covers the unoverridden case: a coder supplying
// only the mandatory pair must still round-trip through the outer entry
// points, reusing the nested byte format.
func TestOuterDefaultDelegation(t *testing.T) {
	c := int32BE{}
	outer := mustEncode(t, func(w io.Writer) error { return EncodeOuter(c, 42, w) })
	nested := mustEncode(t, func(w io.Writer) error { return EncodeNested(c, 42, w) })
	if !bytes.Equal(outer, nested) {
		t.Fatalf("default outer format diverged from nested: %x vs %x", outer, nested)
	}

	got, err := DecodeOuter(c, bytes.NewReader(outer))
	if err != nil {
		t.Fatalf("DecodeOuter: %v", err)
	}
	if got != 42 {
		t.Fatalf("outer round trip: got %d want 42", got)
	}
}

// TestContextDispatchByteIdentical: the three-argument form must produce the
// same bytes as the context-implicit entry point it routes to.
func TestContextDispatchByteIdentical(t *testing.T) {
	c := outerInt32{outerEncodes: new(int), outerDecodes: new(int)}

	nested3 := mustEncode(t, func(w io.Writer) error { return EncodeContext(c, 7, w, Nested) })
	nested2 := mustEncode(t, func(w io.Writer) error { return EncodeNested(c, 7, w) })
	if !bytes.Equal(nested3, nested2) {
		t.Fatalf("EncodeContext(Nested) != EncodeNested: %x vs %x", nested3, nested2)
	}

	outer3 := mustEncode(t, func(w io.Writer) error { return EncodeContext(c, 7, w, Outer) })
	outer2 := mustEncode(t, func(w io.Writer) error { return EncodeOuter(c, 7, w) })
	if !bytes.Equal(outer3, outer2) {
		t.Fatalf("EncodeContext(Outer) != EncodeOuter: %x vs %x", outer3, outer2)
	}
	if bytes.Equal(outer3, nested3) {
		t.Fatalf("outer override not reached: outer bytes match nested bytes")
	}
}

func TestOuterOverrideIntercepted(t *testing.T) {
	encs, decs := 0, 0
	c := outerInt32{outerEncodes: &encs, outerDecodes: &decs}

	enc := mustEncode(t, func(w io.Writer) error { return EncodeOuter(c, 99, w) })
	if encs != 1 {
		t.Fatalf("EncodeOuter: override called %d times, want 1", encs)
	}
	if _, err := DecodeOuter(c, bytes.NewReader(enc)); err != nil {
		t.Fatalf("DecodeOuter: %v", err)
	}
	if decs != 1 {
		t.Fatalf("DecodeOuter: override called %d times, want 1", decs)
	}

	// The three-argument form with Outer reaches the same override.
	mustEncode(t, func(w io.Writer) error { return EncodeContext(c, 99, w, Outer) })
	if encs != 2 {
		t.Fatalf("EncodeContext(Outer): override called %d times total, want 2", encs)
	}

	// The nested path never touches it.
	mustEncode(t, func(w io.Writer) error { return EncodeNested(c, 99, w) })
	if encs != 2 {
		t.Fatalf("EncodeNested leaked into outer override: %d calls", encs)
	}
}

func TestContextOverrideIntercepted(t *testing.T) {
	var seen []Context
	c := ctxInt32{contexts: &seen}

	// Outer entry points route through the three-argument dispatcher.
	enc := mustEncode(t, func(w io.Writer) error { return EncodeOuter(c, 3, w) })
	if len(seen) != 1 || seen[0] != Outer {
		t.Fatalf("EncodeOuter contexts: %v, want [outer]", seen)
	}
	if _, err := DecodeOuter(c, bytes.NewReader(enc)); err != nil {
		t.Fatalf("DecodeOuter: %v", err)
	}
	if len(seen) != 2 || seen[1] != Outer {
		t.Fatalf("DecodeOuter contexts: %v, want [outer outer]", seen)
	}

	// The explicit form hands over both contexts.
	seen = seen[:0]
	mustEncode(t, func(w io.Writer) error { return EncodeContext(c, 3, w, Nested) })
	mustEncode(t, func(w io.Writer) error { return EncodeContext(c, 3, w, Outer) })
	if len(seen) != 2 || seen[0] != Nested || seen[1] != Outer {
		t.Fatalf("EncodeContext contexts: %v, want [nested outer]", seen)
	}

	// Nested dispatch reaches the mandatory implementation directly.
	seen = seen[:0]
	mustEncode(t, func(w io.Writer) error { return EncodeNested(c, 3, w) })
	if _, err := DecodeNested(c, bytes.NewReader(enc)); err != nil {
		t.Fatalf("DecodeNested: %v", err)
	}
	if len(seen) != 0 {
		t.Fatalf("nested entry points detoured through legacy dispatcher: %v", seen)
	}
}

func TestCoderArguments(t *testing.T) {
	args := CoderArguments(int32BE{})
	if args == nil {
		t.Fatalf("CoderArguments returned nil, want empty slice")
	}
	if len(args) != 0 {
		t.Fatalf("CoderArguments on a leaf coder: %d components, want 0", len(args))
	}

	a, b := int32BE{}, provenCoder{}
	got := CoderArguments(pairComposite{a: a, b: b})
	if len(got) != 2 || got[0] != any(a) || got[1] != any(b) {
		t.Fatalf("CoderArguments on composite: %v", got)
	}
}

func TestVerifyDeterminismDefault(t *testing.T) {
	cc := &countingCoder{}
	err := VerifyDeterminism(cc)

	var nde *NondeterminismError
	if !errors.As(err, &nde) {
		t.Fatalf("VerifyDeterminism: got %v, want *NondeterminismError", err)
	}
	if !strings.Contains(nde.Error(), "countingCoder") {
		t.Fatalf("error does not identify the coder: %q", nde.Error())
	}
	if !strings.Contains(nde.Error(), "VerifyDeterminism") {
		t.Fatalf("error does not instruct implementing VerifyDeterminism: %q", nde.Error())
	}
	if cc.encodes != 0 || cc.decodes != 0 {
		t.Fatalf("VerifyDeterminism had side effects: %d encodes, %d decodes", cc.encodes, cc.decodes)
	}
}

func TestVerifyDeterminismProven(t *testing.T) {
	if err := VerifyDeterminism(provenCoder{}); err != nil {
		t.Fatalf("VerifyDeterminism on proven coder: %v", err)
	}
}

// TestRoundTripIdempotence: encoding twice into one stream and decoding twice
// yields the same values, confirming no state leaks across calls.
func TestRoundTripIdempotence(t *testing.T) {
	c := int32BE{}
	var buf bytes.Buffer
	for _, v := range []int32{-1, 1 << 20} {
		if err := EncodeNested(c, v, &buf); err != nil {
			t.Fatalf("EncodeNested(%d): %v", v, err)
		}
	}
	r := bytes.NewReader(buf.Bytes())
	for _, want := range []int32{-1, 1 << 20} {
		got, err := DecodeNested(c, r)
		if err != nil {
			t.Fatalf("DecodeNested: %v", err)
		}
		if got != want {
			t.Fatalf("sequential decode: got %d want %d", got, want)
		}
	}
}

func TestContextString(t *testing.T) {
	if Nested.String() != "nested" || Outer.String() != "outer" {
		t.Fatalf("Context strings: %q, %q", Nested, Outer)
	}
	if s := Context(9).String(); !strings.Contains(s, "9") {
		t.Fatalf("unknown context string: %q", s)
	}
}
