package internal

import (
	"fmt"
	"math"
	"runtime"
)

// MaxBytes is the default storage budget of a single buffer.
const MaxBytes = 1 << 30

// Grow returns the capacity that follows capacity under the doubling policy. An empty buffer
// grows to 2 slots. Returns ErrAllocationFailed if the doubled capacity exceeds limit.
func Grow(capacity, limit int) (int, error) {
	capacity = max(1, capacity)
	if capacity > limit/2 {
		return 0, fmt.Errorf("grow past %d slots: %w", limit, ErrAllocationFailed)
	}
	return capacity * 2, nil
}

// Limit returns the number of slots of elementSize bytes that fit in MaxBytes.
func Limit(elementSize int) int {
	if elementSize <= 0 {
		return 0
	}
	return MaxBytes / elementSize
}

// Slots returns the largest number of slots of elementSize bytes whose total size fits in int.
func Slots(elementSize int) int {
	if elementSize <= 0 {
		return 0
	}
	return math.MaxInt / elementSize
}

// Allocate makes a zeroed slice of n slots.
//
// Only requests the runtime rejects up front (negative or unrepresentable lengths) are turned
// into ErrAllocationFailed. Running out of memory is fatal in Go and can't be recovered, so
// callers must bound n before calling Allocate. Other panics are propagated.
func Allocate[T any](n int) (s []T, err error) {
	if n < 0 {
		return nil, fmt.Errorf("allocate %d slots: %w", n, ErrAllocationFailed)
	}

	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if _, ok := r.(runtime.Error); !ok {
			panic(r)
		}
		s, err = nil, fmt.Errorf("allocate %d slots: %v: %w", n, r, ErrAllocationFailed)
	}()

	return make([]T, n), nil
}
