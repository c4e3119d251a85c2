package common

import (
	"errors"
)

// Error categories raised by the services. The HTTP boundary maps them to
// status codes: validation 400, authentication 401, authorization 403,
// conflict 409. Aggregate lookups that find nothing surface as authorization
// errors; the boundary deliberately has no 404.
var (
	ErrValidation     = errors.New("validation")
	ErrAuthentication = errors.New("authentication")
	ErrAuthorization  = errors.New("authorization")
	ErrConflict       = errors.New("conflict")
)

// Error is the single error type raised by services. Op names the failing
// operation, Msg is safe to return to the caller.
type Error struct {
	kind error
	Op   string
	Msg  string
}

func (e *Error) Error() string { return e.Op + " - " + e.Msg }

func (e *Error) Unwrap() error { return e.kind }

func NewValidationError(op, msg string) error {
	return &Error{kind: ErrValidation, Op: op, Msg: msg}
}

func NewAuthenticationError(op, msg string) error {
	return &Error{kind: ErrAuthentication, Op: op, Msg: msg}
}

func NewAuthorizationError(op, msg string) error {
	return &Error{kind: ErrAuthorization, Op: op, Msg: msg}
}

func NewConflictError(op, msg string) error {
	return &Error{kind: ErrConflict, Op: op, Msg: msg}
}

// PublicMessage returns the caller-safe message for a service error, or a
// generic fallback for anything unexpected.
func PublicMessage(err error) string {
	var svcErr *Error
	if errors.As(err, &svcErr) {
		return svcErr.Msg
	}
	return "internal server error"
}
