package response

import (
	"errors"
	"net/http"
)

// Kind enumerates the outcomes a handler may report besides success.
type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindInvalidInput
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindInvalidInput:
		return "invalid_input"
	default:
		return "internal_error"
	}
}

const (
	msgNotFound = "Data not found"
	msgInternal = "Internal server error"
)

// Envelope is the body of every non-2xx response.
type Envelope struct {
	Error string `json:"error"`
}

// APIError is the closed set of failures a handler can return. The zero
// value is an internal error.
type APIError struct {
	kind    Kind
	message string
}

// NotFound reports that the requested record does not exist.
func NotFound() APIError {
	return APIError{kind: KindNotFound}
}

// InvalidInput reports a request the caller must fix; msg is sent verbatim.
func InvalidInput(msg string) APIError {
	return APIError{kind: KindInvalidInput, message: msg}
}

// Internal reports a failure on the server side. Details never leave the
// process.
func Internal() APIError {
	return APIError{kind: KindInternal}
}

func (e APIError) Kind() Kind { return e.kind }

// Status is the HTTP status the error maps to.
func (e APIError) Status() int {
	switch e.kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindInvalidInput:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Message is the text placed in the envelope.
func (e APIError) Message() string {
	switch e.kind {
	case KindNotFound:
		return msgNotFound
	case KindInvalidInput:
		return e.message
	default:
		return msgInternal
	}
}

// Envelope is the JSON body for the error.
func (e APIError) Envelope() Envelope {
	return Envelope{Error: e.Message()}
}

func (e APIError) Error() string {
	return e.kind.String() + ": " + e.Message()
}

// FromError finds an APIError in err's chain. Anything else becomes an
// internal error so no other error shape reaches the client.
func FromError(err error) APIError {
	var apiErr APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return Internal()
}

// WriteError writes the envelope for err and returns the APIError used.
func WriteError(w http.ResponseWriter, err error) APIError {
	apiErr := FromError(err)
	JSON(w, apiErr.Status(), apiErr.Envelope())
	return apiErr
}
