package exchange

import "fmt"

// ConnectError means the server could not be reached at all: dial
// failures, DNS resolution failures, TLS handshake failures and
// timeouts.
type ConnectError struct {
	URL string
	Err error
}

func (e *ConnectError) Error() string {
	return "Unable to connect to the server. Perhaps the network is offline or the server hostname cannot be resolved."
}

func (e *ConnectError) Unwrap() error { return e.Err }

// TransportError covers every other failure while talking to the
// server, including a body read that breaks off mid-transfer.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return "An unexpected error occurred"
}

func (e *TransportError) Unwrap() error { return e.Err }

// StatusError reports a response outside the 2xx range.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("Request failed with status code: %d", e.Code)
}

// JSONPayloadError means the --json argument is not well-formed JSON.
// It is the one fatal condition: callers abort the run instead of
// degrading it to a report.
type JSONPayloadError struct {
	Payload string
}

func (e *JSONPayloadError) Error() string {
	return fmt.Sprintf("Invalid JSON format: %s", e.Payload)
}
