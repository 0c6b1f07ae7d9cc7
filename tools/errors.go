package tools

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// ErrorKind classifies a tool failure for the orchestrator,
// so downstream chaining logic can branch without parsing messages.
type ErrorKind string

const (
	// KindInvalidInput indicates a malformed or missing parameter.
	KindInvalidInput ErrorKind = "invalid_input"
	// KindNotFound indicates the upstream reports the requested resource does not exist.
	KindNotFound ErrorKind = "not_found"
	// KindUpstreamError indicates a non-2xx upstream status not otherwise classified.
	KindUpstreamError ErrorKind = "upstream_error"
	// KindNetworkError indicates a timeout or connection failure.
	KindNetworkError ErrorKind = "network_error"
	// KindDeliveryFailure indicates a notification provider fault.
	KindDeliveryFailure ErrorKind = "delivery_failure"
	// KindUnknown is the catch-all for unclassified faults.
	KindUnknown ErrorKind = "unknown"
)

var ErrFailedUnmarshalInput = NewError(KindInvalidInput, "failed to unmarshal input: check the schema and try again")

// Error is a classified tool failure.
// Every tool boundary converts faults to *Error before returning.
type Error struct {
	Kind    ErrorKind `json:"kind" yaml:"kind"`
	Message string    `json:"message" yaml:"message"`

	cause error
}

func NewError(kind ErrorKind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

func NewErrorf(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// WrapError classifies err, keeping it available for errors.Is/As.
func WrapError(kind ErrorKind, err error, msg string) *Error {
	return &Error{
		Kind:    kind,
		Message: msg + ": " + err.Error(),
		cause:   err,
	}
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

// ClassifyError extracts the classified error from err,
// converting unclassified faults to KindUnknown.
func ClassifyError(err error) *Error {
	var te *Error
	if errors.As(err, &te) {
		return te
	}
	return &Error{Kind: KindUnknown, Message: err.Error(), cause: err}
}
