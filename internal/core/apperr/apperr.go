package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a failure so the transport layer can map it to an HTTP
// status without inspecting messages.
type Kind int

const (
	KindValidation Kind = iota + 1 // bad input shape → 422
	KindAuth                       // missing/invalid credential or PIN mismatch → 401
	KindNotFound                   // referenced id absent → 404
	KindPersistence                // storage operation failed → 422
	KindInternal                   // anything else → 500
)

type Error struct {
	Kind Kind
	Msg  string
	Err  error // wrapped cause, never sent to clients
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, msg string) *Error { return &Error{Kind: kind, Msg: msg} }

func Wrap(kind Kind, msg string, err error) *Error { return &Error{Kind: kind, Msg: msg, Err: err} }

func Validation(msg string) *Error { return New(KindValidation, msg) }

func Auth(msg string) *Error { return New(KindAuth, msg) }

func NotFound(msg string) *Error { return New(KindNotFound, msg) }

func Persistence(msg string, err error) *Error { return Wrap(KindPersistence, msg, err) }

func Internal(msg string, err error) *Error { return Wrap(KindInternal, msg, err) }

// KindOf returns the kind of err, or KindInternal for unclassified errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// Status maps an error to the HTTP status the surface contract requires.
func Status(err error) int {
	switch KindOf(err) {
	case KindValidation, KindPersistence:
		return http.StatusUnprocessableEntity
	case KindAuth:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the client-safe message for err. Wrapped causes stay out of
// responses; unclassified errors collapse to a generic message.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Msg
	}
	return "internal server error"
}
