package chatapi

import "fmt"

// ErrorKind categorizes a failed exchange with the chat endpoint. Every
// kind is shown to the user the same way; the kind is kept for logs.
type ErrorKind string

const (
	ErrNetwork ErrorKind = "network" // dial, TLS or body read failure
	ErrStatus  ErrorKind = "status"  // non-2xx response
	ErrDecode  ErrorKind = "decode"  // body is not a chat response
	ErrEncode  ErrorKind = "encode"  // request could not be marshaled
)

// TransportError wraps any failure talking to the chat endpoint.
type TransportError struct {
	Kind   ErrorKind
	Status int    // HTTP status, when Kind is ErrStatus
	Body   string // truncated response body, when Kind is ErrStatus
	Err    error
}

func (e *TransportError) Error() string {
	switch {
	case e.Kind == ErrStatus:
		return fmt.Sprintf("chat endpoint status %d: %s", e.Status, e.Body)
	case e.Err != nil:
		return fmt.Sprintf("chat endpoint %s: %v", e.Kind, e.Err)
	default:
		return fmt.Sprintf("chat endpoint %s error", e.Kind)
	}
}

func (e *TransportError) Unwrap() error { return e.Err }
