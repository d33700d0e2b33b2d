// Package error defines domain-specific errors for the goal planner.
package error

import "errors"

// ErrorKind classifies a domain error independently of the aggregate that raised it.
type ErrorKind string

const (
	KindNotFound     ErrorKind = "not_found"
	KindValidation   ErrorKind = "validation"
	KindConflict     ErrorKind = "conflict"
	KindForbidden    ErrorKind = "forbidden"
	KindUnauthorized ErrorKind = "unauthorized"
	KindInternal     ErrorKind = "internal"
)

// Coded is implemented by every aggregate error type.
type Coded interface {
	error
	Kind() ErrorKind
	ErrorCode() string
	ErrorMessage() string
}

// AsCoded returns the first coded domain error in err's chain.
func AsCoded(err error) (Coded, bool) {
	var c Coded
	if errors.As(err, &c) {
		return c, true
	}
	return nil, false
}

// KindOf returns the kind of the first coded domain error in err's chain.
// Errors without a code are internal.
func KindOf(err error) ErrorKind {
	if c, ok := AsCoded(err); ok {
		return c.Kind()
	}
	return KindInternal
}
