package coder

import "fmt"

// Context selects the framing contract for one encoded value.
type Context uint8

const (
	// Nested marks bytes embedded inside a larger encoded structure. A
	// decoder must be able to tell where the value ends even when more bytes
	// follow, so nested output has to be self-delimiting.
	Nested Context = iota

	// Outer marks bytes that are the sole content of a stream. The stream
	// boundary delimits the value, so length framing may be omitted.
	Outer
)

func (c Context) String() string {
	switch c {
	case Nested:
		return "nested"
	case Outer:
		return "outer"
	default:
		return fmt.Sprintf("coder.Context(%d)", uint8(c))
	}
}
