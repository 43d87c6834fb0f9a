package client

import "errors"

var (
	// ErrUnavailable covers everything transport-level: the request never
	// completed, the response was non-OK, or the body was not JSON.
	ErrUnavailable = errors.New("service unavailable")

	// ErrMalformedResponse marks a syntactically valid JSON reply that
	// carries no status field at all. Kept separate from ErrUnavailable so
	// callers can tell a half-broken backend from a dead one.
	ErrMalformedResponse = errors.New("malformed response")
)

// ServerError is a business rejection: the service answered properly with a
// non-success status and a user-facing message. The message is surfaced
// verbatim.
type ServerError struct {
	Message string
}

func (e *ServerError) Error() string {
	return e.Message
}

// AsServerError unwraps err into a *ServerError, if it is one.
func AsServerError(err error) (*ServerError, bool) {
	var se *ServerError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}
