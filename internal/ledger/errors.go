package ledger

import (
	"fmt"

	"github.com/pkg/errors"
)

// Failure kinds. Every business rejection unwraps to exactly one of these;
// anything else coming out of the ledger is an unexpected store error.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
)

// Error is a business rejection with a message meant for the caller.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

func invalidInput(format string, args ...any) error {
	return &Error{Kind: ErrInvalidInput, Message: fmt.Sprintf(format, args...)}
}

func notFound(format string, args ...any) error {
	return &Error{Kind: ErrNotFound, Message: fmt.Sprintf(format, args...)}
}

func conflict(format string, args ...any) error {
	return &Error{Kind: ErrConflict, Message: fmt.Sprintf(format, args...)}
}

// IsBusiness reports whether err is one of the ledger's own rejections.
func IsBusiness(err error) bool {
	var e *Error
	return errors.As(err, &e)
}
