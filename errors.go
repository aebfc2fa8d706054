package seqbuf

import "github.com/teenjuna/seqbuf/internal"

var (
	// ErrInvalidElementSize is returned by [New] when the item type has zero size.
	ErrInvalidElementSize = internal.ErrInvalidElementSize
	// ErrNullReference is returned by every method of a nil or destroyed [Buffer].
	ErrNullReference = internal.ErrNullReference
	// ErrAllocationFailed is returned when the storage can't be allocated or grown. The buffer is
	// left unchanged.
	ErrAllocationFailed = internal.ErrAllocationFailed
	// ErrOutOfRange is returned when an index is negative or not less than the buffer length.
	ErrOutOfRange = internal.ErrOutOfRange
	// ErrEmpty is returned by Pop, Front, Back, Max and Min on an empty buffer.
	ErrEmpty = internal.ErrEmpty
	// ErrNotFound is returned by searches that found no match. It is a normal outcome and never
	// indicates a broken buffer.
	ErrNotFound = internal.ErrNotFound
)
