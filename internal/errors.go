package internal

import "errors"

var (
	ErrInvalidElementSize = errors.New("invalid element size")
	ErrNullReference      = errors.New("buffer is destroyed or nil")
	ErrAllocationFailed   = errors.New("allocation failed")
	ErrOutOfRange         = errors.New("index out of range")
	ErrEmpty              = errors.New("buffer is empty")
	ErrNotFound           = errors.New("element not found")
)
