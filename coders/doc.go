// Package coders provides the standard coder suite: stream primitives
// (varints, fixed-width integers, booleans, bytes, text), composites (pairs,
// lists, nullables, length prefixing) and schema-driven value coders backed
// by CBOR, msgpack, JSON and protobuf.
//
// Every coder here satisfies coder.Coder and is dispatched through the
// package coder bridge. Coders whose top-level framing is leaner than their
// nested framing (Bytes, Text, the marshaling coders) also implement
// coder.OuterCoder; coders built from components implement coder.Composite;
// coders with provably byte-stable output implement coder.Deterministic.
package coders
