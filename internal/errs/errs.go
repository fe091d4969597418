// Package errs defines the error shape returned to API clients and maps
// storage and domain failures onto it.
package errs

import (
	"errors"
	"net/http"

	"hbnb/internal/domain"
	"hbnb/internal/storage"
)

// HTTPError is an error that knows its response status. It is rendered as
// {"error": Message}, or with no body when Message is empty.
type HTTPError struct {
	Status  int    `json:"-"`
	Message string `json:"error"`
}

func (e *HTTPError) Error() string {
	if e.Message == "" {
		return http.StatusText(e.Status)
	}
	return e.Message
}

func NewBadRequestError(message string) *HTTPError {
	return &HTTPError{Status: http.StatusBadRequest, Message: message}
}

// NewNotFoundError is a bare 404.
func NewNotFoundError() *HTTPError {
	return &HTTPError{Status: http.StatusNotFound}
}

func NewInternalServerError() *HTTPError {
	return &HTTPError{
		Status:  http.StatusInternalServerError,
		Message: http.StatusText(http.StatusInternalServerError),
	}
}

// ErrNotJSON is returned when a request body is missing or is not a JSON object.
var ErrNotJSON = NewBadRequestError("Not a JSON")

// MissingField builds the 400 for an absent required key.
func MissingField(field string) *HTTPError {
	return NewBadRequestError("Missing " + field)
}

// Classify converts any error into the HTTPError sent to the client.
// Unknown errors become a generic 500.
func Classify(err error) *HTTPError {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	var fieldErr *domain.FieldError
	if errors.As(err, &fieldErr) {
		return NewBadRequestError(fieldErr.Error())
	}

	if errors.Is(err, storage.ErrNotFound) {
		return NewNotFoundError()
	}

	return NewInternalServerError()
}
