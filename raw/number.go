package raw

import (
	"fmt"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Number is a fixed-width numeric type that can be stored in a [Buffer] in native byte order.
type Number interface {
	constraints.Integer | constraints.Float
}

// NewOf creates a buffer for elements of type T. See [New].
func NewOf[T Number](capacity int) (*Buffer, error) {
	var zero T
	return New(capacity, int(unsafe.Sizeof(zero)))
}

// Bytes returns the native representation of v.
func Bytes[T Number](v T) []byte {
	b := make([]byte, unsafe.Sizeof(v))
	copy(b, unsafe.Slice((*byte)(unsafe.Pointer(&v)), len(b)))
	return b
}

// Value decodes the native representation of a T.
func Value[T Number](b []byte) (T, error) {
	var v T
	if size := int(unsafe.Sizeof(v)); len(b) != size {
		return 0, fmt.Errorf("value: %d bytes, want %d: %w", len(b), size, ErrInvalidElementSize)
	}
	copy(unsafe.Slice((*byte)(unsafe.Pointer(&v)), len(b)), b)
	return v, nil
}

// Compare is a comparator for elements holding T values, suitable for [Buffer.Max] and
// [Buffer.Min]. It panics if a or b has the wrong width.
func Compare[T Number](a, b []byte) int {
	x, y := mustValue[T](a), mustValue[T](b)
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	default:
		return 0
	}
}

func mustValue[T Number](b []byte) T {
	v, err := Value[T](b)
	if err != nil {
		panic(err)
	}
	return v
}
