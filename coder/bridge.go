package coder

import (
	"fmt"
	"io"
)

// EncodeNested writes value to w with self-delimiting framing. It calls the
// mandatory Encode directly and never detours through the legacy
// three-argument path.
func EncodeNested[T any](c Coder[T], value T, w io.Writer) error {
	return c.Encode(value, w)
}

// EncodeOuter writes value to w as the sole content of the stream. A coder
// implementing OuterCoder supplies the top-level framing itself; every other
// coder goes through the context dispatcher, which falls back to the nested
// byte format. A self-delimiting encoding is also a valid whole-stream
// encoding, so the fallback is always round-trip-correct, if not minimal.
//
// Hazard: EncodeOuter and EncodeContext delegate to each other. An OuterCoder
// whose EncodeOuter calls EncodeContext(c, value, w, Outer), or a
// ContextCoder whose EncodeContext hands non-nested contexts back to
// EncodeOuter(c, value, w), recurses without bound. The bridge carries no
// depth guard; an override must produce bytes for the context it is handed
// instead of bouncing it back.
func EncodeOuter[T any](c Coder[T], value T, w io.Writer) error {
	if oc, ok := c.(OuterCoder[T]); ok {
		return oc.EncodeOuter(value, w)
	}
	return EncodeContext(c, value, w, Outer)
}

// EncodeContext is the legacy three-argument entry point. A ContextCoder
// intercepts every context here. Otherwise Nested goes straight to the
// mandatory Encode, and Outer reaches the coder's outer methods when present,
// falling back to the mandatory Encode. See the hazard note on EncodeOuter.
func EncodeContext[T any](c Coder[T], value T, w io.Writer, ctx Context) error {
	if cc, ok := c.(ContextCoder[T]); ok {
		return cc.EncodeContext(value, w, ctx)
	}
	if ctx == Nested {
		return EncodeNested(c, value, w)
	}
	if oc, ok := c.(OuterCoder[T]); ok {
		return oc.EncodeOuter(value, w)
	}
	return c.Encode(value, w)
}

// DecodeNested reads one self-delimited value from r via the mandatory
// Decode, mirroring EncodeNested.
func DecodeNested[T any](c Coder[T], r io.Reader) (T, error) {
	return c.Decode(r)
}

// DecodeOuter reads the single value that makes up the entire stream r,
// mirroring EncodeOuter's dispatch, including its hazard.
func DecodeOuter[T any](c Coder[T], r io.Reader) (T, error) {
	if oc, ok := c.(OuterCoder[T]); ok {
		return oc.DecodeOuter(r)
	}
	return DecodeContext(c, r, Outer)
}

// DecodeContext is the legacy three-argument decode entry point, mirroring
// EncodeContext's dispatch.
func DecodeContext[T any](c Coder[T], r io.Reader, ctx Context) (T, error) {
	if cc, ok := c.(ContextCoder[T]); ok {
		return cc.DecodeContext(r, ctx)
	}
	if ctx == Nested {
		return DecodeNested(c, r)
	}
	if oc, ok := c.(OuterCoder[T]); ok {
		return oc.DecodeOuter(r)
	}
	return c.Decode(r)
}

// CoderArguments returns c's component coders in structural order, or an
// empty slice when c composes none. The result is never nil.
func CoderArguments(c any) []any {
	if comp, ok := c.(Composite); ok {
		if args := comp.CoderArguments(); args != nil {
			return args
		}
	}
	return []any{}
}

// VerifyDeterminism returns nil when c affirmatively proves byte-stable
// output through the Deterministic interface, and a *NondeterminismError
// otherwise. It is a pure validation call: nothing is encoded or decoded.
func VerifyDeterminism(c any) error {
	if d, ok := c.(Deterministic); ok {
		return d.VerifyDeterminism()
	}
	return &NondeterminismError{
		Coder:  fmt.Sprintf("%T", c),
		Reason: "must implement VerifyDeterminism, or it is presumed non-deterministic",
	}
}
