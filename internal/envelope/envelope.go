// Package envelope wraps stored payloads in a fixed guard header so readers
// can reject foreign or truncated entries before handing bytes to a decoder.
package envelope

import (
	"bytes"
	"errors"
)

const version byte = 1

var (
	ErrCorrupt = errors.New("envelope: corrupt entry")
	magic4     = [...]byte{'B', 'E', 'A', 'M'}
)

// Entry layout: magic(4) | ver(1) | payload(rest).
const headerLen = 5

// Wrap prefixes payload with the guard header.
func Wrap(payload []byte) []byte {
	out := make([]byte, 0, headerLen+len(payload))
	out = append(out, magic4[:]...)
	out = append(out, version)
	return append(out, payload...)
}

// Unwrap validates the header and returns the payload. The returned slice
// aliases b.
func Unwrap(b []byte) ([]byte, error) {
	if len(b) < headerLen || !bytes.Equal(b[:4], magic4[:]) || b[4] != version {
		return nil, ErrCorrupt
	}
	return b[headerLen:], nil
}
