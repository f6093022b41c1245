// Package coder defines the value-coder contract and the context-dispatching
// bridge between its two API generations.
//
// A Coder[T] writes values of type T to byte streams and reads them back.
// Every coder operates under one of two framing contexts:
//
//   - Nested: the encoded bytes are embedded inside a larger encoded
//     structure, so they must be self-delimiting.
//   - Outer: the encoded bytes are the entire content of the stream, so
//     length framing may legally be omitted.
//
// Concrete coders implement the mandatory two-argument Encode/Decode pair
// once and get correct behavior under both contexts through the package-level
// entry points (EncodeNested, EncodeOuter, EncodeContext and their decode
// mirrors). Optional interfaces customize the rest: OuterCoder for leaner
// top-level framing, ContextCoder for implementations written against the
// legacy three-argument API, Deterministic for byte-stability proofs, and
// Composite for coders that compose component coders.
//
// The bridge holds no state. Entry points are safe for concurrent use as
// long as a sink or source is owned by a single call for its duration.
package coder
