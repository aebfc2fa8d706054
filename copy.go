package seqbuf

import (
	"fmt"

	"github.com/teenjuna/seqbuf/internal"
)

// Copy makes dst a deep copy of src.
//
// The storage of dst is reallocated to the capacity of src and the items of src are copied into
// it. Slots past the length of src are zero values, whatever src holds there. If the storage
// can't be allocated, Copy returns [ErrAllocationFailed] and dst is untouched.
//
// Returns [ErrNullReference] if either buffer is nil or destroyed.
func Copy[Item any](dst, src *Buffer[Item]) error {
	if err := src.check("copy source"); err != nil {
		return err
	}
	if err := dst.check("copy destination"); err != nil {
		return err
	}
	if dst == src {
		return nil
	}

	capacity := len(src.items)
	if capacity > dst.limit {
		dst.metrics.allocationFailed()
		return fmt.Errorf(
			"copy: capacity %d exceeds %d: %w",
			capacity,
			dst.limit,
			ErrAllocationFailed,
		)
	}

	items, err := internal.Allocate[Item](capacity)
	if err != nil {
		dst.metrics.allocationFailed()
		return fmt.Errorf("copy: %w", err)
	}
	copy(items, src.items[:src.length])

	dst.metrics.add(src.length-dst.length, capacity-len(dst.items))
	dst.items = items
	dst.length = src.length

	return nil
}

// Clone returns a deep copy of the buffer with the same config. See [Copy].
func (b *Buffer[Item]) Clone() (*Buffer[Item], error) {
	if err := b.check("clone"); err != nil {
		return nil, err
	}

	items, err := internal.Allocate[Item](len(b.items))
	if err != nil {
		b.metrics.allocationFailed()
		return nil, fmt.Errorf("clone: %w", err)
	}
	copy(items, b.items[:b.length])

	c := Buffer[Item]{
		items:       items,
		length:      b.length,
		elementSize: b.elementSize,
		limit:       b.limit,
		metrics:     b.metrics,
	}
	c.metrics.add(c.length, len(c.items))

	return &c, nil
}
