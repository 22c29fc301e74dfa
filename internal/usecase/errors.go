package usecase

import (
	"errors"

	"rk-commerce/pkg/utils"
)

// Error kinds surfaced to the HTTP layer. Anything that does not wrap one of
// these is treated as an internal failure.
var (
	ErrBadRequest   = errors.New("bad request")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
)

// Error pairs a kind with the message shown to the client. Fields is set for
// validation failures and maps json field paths to messages.
type Error struct {
	Kind   error
	Detail string
	Fields map[string]string
}

func (e *Error) Error() string {
	return e.Detail
}

func (e *Error) Unwrap() error {
	return e.Kind
}

// invalid wraps the output of utils.ValidateStruct.
func invalid(fields map[string]string) error {
	return &Error{
		Kind:   ErrBadRequest,
		Detail: "Validation failed: " + utils.FormatValidationErrors(fields),
		Fields: fields,
	}
}

func unauthorized(detail string) error {
	return &Error{Kind: ErrUnauthorized, Detail: detail}
}

func notFound(detail string) error {
	return &Error{Kind: ErrNotFound, Detail: detail}
}

func conflict(detail string) error {
	return &Error{Kind: ErrConflict, Detail: detail}
}
