package token

import (
	"errors"
	"fmt"
)

var (
	ErrUnexpected     = errors.New("unexpected byte")
	ErrUnterminated   = errors.New("unterminated")
	ErrBadEscape      = errors.New("bad escape")
	ErrBadUnicode     = errors.New("bad unicode")
	ErrLeadingZero    = errors.New("leading zero")
	ErrBadPlaceholder = errors.New("bad placeholder")
)

// Error is a lexical error at a position.
type Error struct {
	Err error
	Pos Pos
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}

func newError(err error, p Pos) *Error {
	return &Error{Err: err, Pos: p}
}

func unexpectedErr(c byte, p Pos) *Error {
	return newError(fmt.Errorf("%w %q", ErrUnexpected, c), p)
}
