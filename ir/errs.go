package ir

import "errors"

var (
	ErrNative  = errors.New("unsupported native value")
	ErrNilNode = errors.New("nil node")
)
