package coder

import "fmt"

// Sink and source failures are never wrapped by this package: an I/O error
// surfaces to the caller verbatim so identity with sentinels like
// io.ErrUnexpectedEOF survives errors.Is. An error coming out of an
// encode/decode call is an I/O failure exactly when it is not one of the
// coder error types below.

// EncodingError reports a value the coder cannot represent, such as a
// malformed value or an unsupported subtype.
type EncodingError struct {
	Coder string // concrete coder type, as formatted by %T
	Err   error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("%s: encode: %v", e.Coder, e.Err)
}

func (e *EncodingError) Unwrap() error { return e.Err }

// DecodingError reports bytes that do not form a valid encoding under the
// requested context.
type DecodingError struct {
	Coder string
	Err   error
}

func (e *DecodingError) Error() string {
	return fmt.Sprintf("%s: decode: %v", e.Coder, e.Err)
}

func (e *DecodingError) Unwrap() error { return e.Err }

// NondeterminismError is returned by VerifyDeterminism for a coder that
// cannot prove byte-stable output. It is a validation-time failure: callers
// preparing operations that group or key by encoded bytes must treat it as a
// hard error, not a warning.
type NondeterminismError struct {
	Coder  string
	Reason string
	Err    error // component coder's verdict, when the failure is delegated
}

func (e *NondeterminismError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("coder %s is not deterministic: %s: %v", e.Coder, e.Reason, e.Err)
	}
	return fmt.Sprintf("coder %s is not deterministic: %s", e.Coder, e.Reason)
}

func (e *NondeterminismError) Unwrap() error { return e.Err }
