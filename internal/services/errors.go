package services

import (
	"errors"
	"fmt"

	"github.com/AnshRaj112/devconnector-backend/pkg/utils"
)

// Kind classifies a service failure; handlers map each kind to a status code.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindUnauthorized
	KindConflict
	KindNotFound
	KindInvalidCredentials
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindUnauthorized:
		return "unauthorized"
	case KindConflict:
		return "conflict"
	case KindNotFound:
		return "not_found"
	case KindInvalidCredentials:
		return "invalid_credentials"
	default:
		return "internal"
	}
}

// Error is the only error type services return to handlers.
type Error struct {
	Kind   Kind
	Msg    string
	Fields []utils.FieldError // set for KindValidation
	Err    error              // underlying cause, never shown to clients
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

var (
	ErrNoToken            = &Error{Kind: KindUnauthorized, Msg: "No token supplied."}
	ErrBadToken           = &Error{Kind: KindUnauthorized, Msg: "Invalid token."}
	ErrUserExists         = &Error{Kind: KindConflict, Msg: "User already exists"}
	ErrInvalidCredentials = &Error{Kind: KindInvalidCredentials, Msg: "Invalid Credentials"}
	ErrNoProfile          = &Error{Kind: KindNotFound, Msg: "There is no profile for this user."}
	ErrProfileNotFound    = &Error{Kind: KindNotFound, Msg: "Profile not found"}
	ErrUserNotFound       = &Error{Kind: KindNotFound, Msg: "User not found"}
)

// KindOf returns the kind of err, treating anything unclassified as internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

func invalid(v *utils.ValidationError) *Error {
	return &Error{Kind: KindValidation, Msg: "Validation failed", Fields: v.Fields}
}

func invalidField(param, msg string) *Error {
	return &Error{Kind: KindValidation, Msg: "Validation failed", Fields: []utils.FieldError{{Msg: msg, Param: param}}}
}

func internal(op string, err error) *Error {
	return &Error{Kind: KindInternal, Msg: "Server Error", Err: fmt.Errorf("%s: %w", op, err)}
}
