package stream

import "errors"

var (
	ErrMessageTooLarge = errors.New("message too large")
	ErrIncomplete      = errors.New("incomplete message")
)
