package api

// Error is the single failure shape every API call surfaces. It carries
// whatever the backend or the transport provided; Error() resolves the
// user-facing message by a fixed precedence so screens can display it
// verbatim.
type Error struct {
	// Status is the HTTP status code, or 0 when no response was received.
	Status int

	// Message is the server-supplied "message" field, if any.
	Message string

	// Reason is the server-supplied "error" field, if any.
	Reason string

	// Transport is the underlying transport error text when no response
	// reached the client.
	Transport string

	// Fallback is the operation-specific default message.
	Fallback string

	sentinel error
}

// Error resolves the display message: server message, then server error
// field, then the transport text, then the operation fallback.
func (e *Error) Error() string {
	switch {
	case e.Message != "":
		return e.Message
	case e.Reason != "":
		return e.Reason
	case e.Transport != "":
		return e.Transport
	default:
		return e.Fallback
	}
}

// Unwrap exposes the matching sentinel (common.ErrUnauthorized,
// common.ErrNotFound, common.ErrUnavailable) for errors.Is checks.
func (e *Error) Unwrap() error {
	return e.sentinel
}
