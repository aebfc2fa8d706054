package raw

import (
	"fmt"

	"github.com/teenjuna/seqbuf/internal"
)

// Copy makes dst a deep copy of src.
//
// The storage of dst is reallocated to the capacity of src and the elements of src are copied
// into it. Slots past the length of src are zero-filled, src bytes there are never copied. A zero
// dst adopts the element size of src, an initialized dst must have the same element size.
//
// On failure dst is untouched.
func Copy(dst, src *Buffer) error {
	if err := src.check("copy source"); err != nil {
		return err
	}
	if dst == nil || dst.destroyed {
		return fmt.Errorf("copy destination: %w", ErrNullReference)
	}
	if dst.elementSize != 0 && dst.elementSize != src.elementSize {
		return fmt.Errorf(
			"copy: element size %d into %d: %w",
			src.elementSize,
			dst.elementSize,
			ErrInvalidElementSize,
		)
	}
	if dst == src {
		return nil
	}

	data, err := internal.Allocate[byte](len(src.data))
	if err != nil {
		return fmt.Errorf("copy: %w", err)
	}
	copy(data, src.data[:src.length*src.elementSize])

	dst.data = data
	dst.length = src.length
	dst.elementSize = src.elementSize

	return nil
}
