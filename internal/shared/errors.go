package shared

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrPayloadTooLarge   = errors.New("payload too large")
	ErrParse             = errors.New("parse error")
	ErrEngineUnavailable = errors.New("engine unavailable")
	ErrEngineTimeout     = errors.New("engine timeout")
	ErrEngineOOM         = errors.New("engine out of memory")
	ErrTimeout           = errors.New("timeout")
)

// RequestError carries a user-facing message classified under one of
// the sentinel errors above. Error() returns only the message so it
// can be placed verbatim in the response envelope.
type RequestError struct {
	class   error
	message string
}

func (e *RequestError) Error() string {
	return e.message
}

func (e *RequestError) Unwrap() error {
	return e.class
}

func Classify(class error, message string) error {
	return &RequestError{class: class, message: message}
}

func InvalidInput(message string) error {
	return &RequestError{class: ErrInvalidInput, message: message}
}

func InvalidInputf(format string, args ...any) error {
	return &RequestError{class: ErrInvalidInput, message: fmt.Sprintf(format, args...)}
}

func PayloadTooLarge(message string) error {
	return &RequestError{class: ErrPayloadTooLarge, message: message}
}

func PayloadTooLargef(format string, args ...any) error {
	return &RequestError{class: ErrPayloadTooLarge, message: fmt.Sprintf(format, args...)}
}

func ParseError(message string) error {
	return &RequestError{class: ErrParse, message: message}
}

func ParseErrorf(format string, args ...any) error {
	return &RequestError{class: ErrParse, message: fmt.Sprintf(format, args...)}
}

// StatusFor maps an error to the HTTP status of its envelope. Parse
// failures are a local-recovery case: the envelope reports failure but
// the transport-level exchange itself succeeded.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, ErrPayloadTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, ErrParse):
		return http.StatusOK
	case errors.Is(err, ErrEngineUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, ErrEngineTimeout), errors.Is(err, ErrTimeout):
		return http.StatusGatewayTimeout
	case errors.Is(err, ErrEngineOOM):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
