package coder

import "io"

// Coder is the mandatory contract every value coder supplies. Encode writes a
// self-delimiting encoding of value to w; Decode reads exactly one value
// back. Decode(Encode(v)) must reproduce v for every legal v.
//
// Coders hold no per-call state: one instance is constructed per coder
// definition and reused across arbitrarily many calls, concurrently, as long
// as a sink or source belongs to a single call for its duration.
type Coder[T any] interface {
	Encode(value T, w io.Writer) error
	Decode(r io.Reader) (T, error)
}

// OuterCoder is implemented by coders whose top-level framing is leaner than
// their nested framing, such as raw bytes with no length prefix. EncodeOuter
// writes value as the entire content of w; DecodeOuter consumes r to its end.
//
// Implementations must produce the bytes themselves. Delegating the outer
// context back into the bridge from these methods recurses without bound; see
// EncodeOuter (package function).
type OuterCoder[T any] interface {
	Coder[T]
	EncodeOuter(value T, w io.Writer) error
	DecodeOuter(r io.Reader) (T, error)
}

// ContextCoder is the legacy three-argument contract, retained only for
// implementations written before the context-implicit API. EncodeContext and
// DecodeContext receive the caller's context explicitly and intercept the
// outer and explicit-context entry points in both directions.
//
// The nested entry points do not consult it: Encode and Decode remain the
// nested implementation, and EncodeNested/DecodeNested reach them directly.
type ContextCoder[T any] interface {
	Coder[T]
	EncodeContext(value T, w io.Writer, ctx Context) error
	DecodeContext(r io.Reader, ctx Context) (T, error)
}

// Deterministic is implemented by coders that can prove byte-stable output:
// encoding equal values yields identical bytes on every platform and run.
// Grouping or keying by encoded bytes downstream is only correct for coders
// that prove this. Determinism is never inferred structurally; absence of
// this interface means the coder is presumed non-deterministic.
type Deterministic interface {
	// VerifyDeterminism returns nil when the proof holds and a
	// *NondeterminismError describing the failure otherwise. It performs no
	// encoding or decoding.
	VerifyDeterminism() error
}

// Composite is implemented by coders assembled from component coders, such as
// a list coder and its element coder. The returned elements are Coder[U]
// values for the respective component types; the slice is type-erased because
// Go generics have no wildcard instantiation.
type Composite interface {
	// CoderArguments returns the component coders in structural order.
	CoderArguments() []any
}
