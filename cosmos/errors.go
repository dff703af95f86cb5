package cosmos

import "fmt"

// InputError is a malformed argument detected before any network call. It is
// always fatal to the command that produced it.
type InputError struct {
	Msg string
}

func NewInputError(format string, args ...interface{}) *InputError {
	return &InputError{Msg: fmt.Sprintf(format, args...)}
}

func (e *InputError) Error() string { return "invalid input: " + e.Msg }

// TransportError is a connectivity, timeout or HTTP-level failure. When a
// mutating call's completion status is unknown, Indeterminate is set; such a
// call must never be resubmitted without caller confirmation.
type TransportError struct {
	Indeterminate bool
	Err           error
}

func (e *TransportError) Error() string {
	if e.Indeterminate {
		return fmt.Sprintf("transport failure (indeterminate): %v", e.Err)
	}
	return fmt.Sprintf("transport failure: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// RemoteRejection is an application-level failure returned by the contract.
// The contract's message text is surfaced verbatim and never retried.
type RemoteRejection struct {
	Code    int
	Message string
}

func (e *RemoteRejection) Error() string {
	return fmt.Sprintf("contract rejected request (code %d): %s", e.Code, e.Message)
}

// SchemaMismatch means a decoded payload did not match the expected version's
// shape. It indicates a version-selection bug in the caller and is fatal.
type SchemaMismatch struct {
	Op  string
	Err error
}

func (e *SchemaMismatch) Error() string {
	return fmt.Sprintf("schema mismatch decoding %q response: %v", e.Op, e.Err)
}

func (e *SchemaMismatch) Unwrap() error { return e.Err }
