package friendship

import "errors"

// Workflow error taxonomy. Handlers classify with errors.Is; anything that
// does not match is treated as internal and kept out of the response body.
var (
	ErrNotFound         = errors.New("not found")
	ErrConflict         = errors.New("conflict")
	ErrInvalidOperation = errors.New("invalid operation")
)

// Error carries a caller-facing message on top of one of the sentinels.
type Error struct {
	kind error
	msg  string
}

func (e *Error) Error() string { return e.msg }

func (e *Error) Unwrap() error { return e.kind }

func notFound(msg string) error { return &Error{kind: ErrNotFound, msg: msg} }

func conflict(msg string) error { return &Error{kind: ErrConflict, msg: msg} }

func invalid(msg string) error { return &Error{kind: ErrInvalidOperation, msg: msg} }
