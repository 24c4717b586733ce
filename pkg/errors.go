package pkg

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind classifies domain failures independently of transport.
//
// Kinds map 1:1 to the error taxonomy shared across the mechanic-shop
// services; the HTTP adapter derives status codes from them so internal
// failure detail never leaks to callers.
type ErrorKind string

const (
	KindResourceNotFound  ErrorKind = "RESOURCE_NOT_FOUND"
	KindReferenceNotFound ErrorKind = "REFERENCE_NOT_FOUND"
	KindConflict          ErrorKind = "CONFLICT"
	KindInvalidInput      ErrorKind = "INVALID_INPUT"
	KindDomainRuleBroken  ErrorKind = "DOMAIN_RULE_BROKEN"
	KindNotAllowed        ErrorKind = "NOT_ALLOWED"
	KindUnauthorized      ErrorKind = "UNAUTHORIZED"
	KindUnexpected        ErrorKind = "UNEXPECTED_ERROR"
)

// DomainError is the typed failure raised by the domain and use-case
// layers. It carries a kind plus a human-readable message and optionally
// wraps an underlying cause.
type DomainError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *DomainError) Unwrap() error { return e.Err }

func NewDomainFailure(kind ErrorKind, message string) *DomainError {
	return &DomainError{Kind: kind, Message: message}
}

func NewDomainFailuref(kind ErrorKind, format string, args ...any) *DomainError {
	return &DomainError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// WrapUnexpected hides an unanticipated error behind the generic kind.
func WrapUnexpected(err error) *DomainError {
	return &DomainError{Kind: KindUnexpected, Message: "an internal error occurred", Err: err}
}

// KindOf extracts the kind from err, or KindUnexpected when err carries
// no taxonomy information.
func KindOf(err error) ErrorKind {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindUnexpected
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind ErrorKind) bool {
	return KindOf(err) == kind
}

// AppError is the HTTP-facing error shape shared by all handlers.

type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	Err        error  `json:"-"`
	HTTPStatus int    `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error { return e.Err }

// HTTPError is the serialized error body.
type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Code: e.Code, Message: e.Message}
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

var kindHTTPStatus = map[ErrorKind]int{
	KindResourceNotFound:  http.StatusNotFound,
	KindReferenceNotFound: http.StatusUnprocessableEntity,
	KindConflict:          http.StatusConflict,
	KindInvalidInput:      http.StatusBadRequest,
	KindDomainRuleBroken:  http.StatusUnprocessableEntity,
	KindNotAllowed:        http.StatusForbidden,
	KindUnauthorized:      http.StatusUnauthorized,
	KindUnexpected:        http.StatusInternalServerError,
}

// FromError converts any error into the HTTP-facing representation.
// DomainError messages are exposed as-is; anything else is collapsed into
// a generic internal error.
func FromError(err error) *AppError {
	var de *DomainError
	if errors.As(err, &de) {
		status, ok := kindHTTPStatus[de.Kind]
		if !ok {
			status = http.StatusInternalServerError
		}
		msg := de.Message
		if de.Kind == KindUnexpected {
			msg = "An internal error occurred"
		}
		return NewDomainError(string(de.Kind), msg, de.Err, status)
	}
	return NewDomainError(string(KindUnexpected), "An internal error occurred", err, http.StatusInternalServerError)
}
