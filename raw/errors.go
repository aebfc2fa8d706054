package raw

import (
	"errors"

	"github.com/teenjuna/seqbuf/internal"
)

var (
	// ErrInvalidElementSize is returned when the element size is < 1 or a value doesn't have
	// exactly ElementSize bytes.
	ErrInvalidElementSize = internal.ErrInvalidElementSize
	// ErrNullReference is returned by every method of a nil, zero or destroyed [Buffer].
	ErrNullReference    = internal.ErrNullReference
	ErrAllocationFailed = internal.ErrAllocationFailed
	ErrOutOfRange       = internal.ErrOutOfRange
	ErrEmpty            = internal.ErrEmpty
	ErrNotFound         = internal.ErrNotFound

	// ErrMalformed is returned by [Buffer.UnmarshalMsg] when the decoded header is inconsistent.
	ErrMalformed = errors.New("malformed buffer encoding")
)
