package liftlog

import (
	"errors"
	"fmt"
)

// Kind classifies every error returned by the API.
type Kind uint8

const (
	KindUnknown Kind = iota
	// KindNotAuthenticated means the session lacks a token or user id. No request was sent.
	KindNotAuthenticated
	// KindValidation means the input was rejected before submission.
	KindValidation
	// KindRemote covers non-2xx responses, transport errors, timeouts and undecodable bodies.
	KindRemote
	// KindStorage means the session could not be persisted on the device.
	KindStorage
)

func (k Kind) String() string {
	switch k {
	case KindNotAuthenticated:
		return "not authenticated"
	case KindValidation:
		return "validation"
	case KindRemote:
		return "remote"
	case KindStorage:
		return "storage"
	default:
		return "unknown"
	}
}

// ErrNotAuthenticated is wrapped by every KindNotAuthenticated error.
var ErrNotAuthenticated = errors.New("user is not authenticated")

// Error is the single error shape returned by API methods.
type Error struct {
	Kind Kind
	// Op names the API operation, e.g. "log exercise".
	Op      string
	Message string
	// StatusCode is set for remote failures that received a response.
	StatusCode int
	Err        error
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if e.Op == "" {
		return msg
	}
	return fmt.Sprintf("%s: %s", e.Op, msg)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the Kind of err, or KindUnknown if err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// IsNotAuthenticated reports whether err means the user must log in first.
func IsNotAuthenticated(err error) bool {
	return KindOf(err) == KindNotAuthenticated
}

func validationError(op, msg string) *Error {
	return &Error{Kind: KindValidation, Op: op, Message: msg}
}

func notAuthenticated(op string, err error) *Error {
	if err == nil {
		err = ErrNotAuthenticated
	} else {
		err = fmt.Errorf("%w: %w", ErrNotAuthenticated, err)
	}
	return &Error{Kind: KindNotAuthenticated, Op: op, Message: ErrNotAuthenticated.Error(), Err: err}
}
