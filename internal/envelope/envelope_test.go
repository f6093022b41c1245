package envelope

import (
	"bytes"
	"errors"
	"testing"
)

func TestWrapUnwrap(t *testing.T) {
	cases := [][]byte{nil, {}, []byte("payload")}
	for _, p := range cases {
		got, err := Unwrap(Wrap(p))
		if err != nil {
			t.Fatalf("Unwrap(Wrap(%q)): %v", p, err)
		}
		if !bytes.Equal(got, p) {
			t.Fatalf("payload mismatch: got %q want %q", got, p)
		}
	}
}

func TestUnwrapRejectsCorrupt(t *testing.T) {
	cases := [][]byte{
		nil,
		{},
		[]byte("BEA"),                // short
		[]byte("XXXX\x01payload"),    // wrong magic
		[]byte("BEAM\x09payload"),    // wrong version
		bytes.ToLower(Wrap([]byte("p"))), // mangled magic
	}
	for _, b := range cases {
		if _, err := Unwrap(b); !errors.Is(err, ErrCorrupt) {
			t.Fatalf("Unwrap(%q): got %v, want ErrCorrupt", b, err)
		}
	}
}
