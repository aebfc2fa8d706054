// Package seqbuf provides a contiguous, growable sequence buffer with explicit error reporting.
//
// For byte-erased storage of fixed-width elements see the [github.com/teenjuna/seqbuf/raw]
// package.
package seqbuf

import (
	"fmt"
	"iter"
	"slices"
	"unsafe"

	"github.com/teenjuna/seqbuf/internal"
)

// Buffer is an owning, contiguous, growable sequence of items.
//
// Item i lives in slot i of a single backing slice; slots in [Len, Cap) hold zero values. When a
// full buffer grows, its capacity doubles (an empty buffer grows to 2 slots), which makes Append
// amortized O(1). Capacity never shrinks, except through Clear and Destroy.
//
// Every fallible method reports its outcome through the returned error, and a method that fails
// leaves the buffer as it was before the call.
//
// Buffer is not thread-safe. Callers sharing an instance between goroutines must serialize
// access to it externally.
type Buffer[Item any] struct {
	items       []Item
	length      int
	elementSize int
	limit       int
	destroyed   bool
	metrics     *metrics
}

// New creates a buffer with capacity preallocated slots. Capacity 0 is legal and allocates no
// storage.
//
// Returns [ErrInvalidElementSize] if Item has zero size, and [ErrAllocationFailed] if capacity
// is negative, exceeds [Config.MaxCapacity] or can't be allocated.
func New[Item any](capacity int, configFuncs ...ConfigFunc) (*Buffer[Item], error) {
	var zero Item
	elementSize := int(unsafe.Sizeof(zero))
	if elementSize == 0 {
		return nil, fmt.Errorf("new: %T has zero size: %w", zero, ErrInvalidElementSize)
	}

	cfg := newConfig(elementSize, configFuncs...)
	m := cfg.metrics()

	if capacity > cfg.maxCapacity {
		m.allocationFailed()
		return nil, fmt.Errorf(
			"new: capacity %d exceeds %d: %w",
			capacity,
			cfg.maxCapacity,
			ErrAllocationFailed,
		)
	}

	items, err := internal.Allocate[Item](capacity)
	if err != nil {
		m.allocationFailed()
		return nil, fmt.Errorf("new: %w", err)
	}

	m.add(0, capacity)

	b := Buffer[Item]{
		items:       items,
		elementSize: elementSize,
		limit:       cfg.maxCapacity,
		metrics:     m,
	}

	return &b, nil
}

// Len returns the number of items in the buffer. It's 0 for a nil or destroyed buffer.
func (b *Buffer[Item]) Len() int {
	if b == nil {
		return 0
	}
	return b.length
}

// Cap returns the number of allocated slots. It's 0 for a nil or destroyed buffer.
func (b *Buffer[Item]) Cap() int {
	if b == nil {
		return 0
	}
	return len(b.items)
}

// ElementSize returns the size of one item in bytes.
func (b *Buffer[Item]) ElementSize() int {
	if b == nil {
		return 0
	}
	return b.elementSize
}

// IsEmpty reports whether the buffer has no items.
func (b *Buffer[Item]) IsEmpty() (bool, error) {
	if err := b.check("is empty"); err != nil {
		return false, err
	}
	return b.length == 0, nil
}

// Append adds an item to the end of the buffer, growing the storage if it's full.
func (b *Buffer[Item]) Append(item Item) error {
	if err := b.check("append"); err != nil {
		return err
	}
	if err := b.reserve("append"); err != nil {
		return err
	}

	b.items[b.length] = item
	b.length++
	b.metrics.add(1, 0)

	return nil
}

// Pop removes the last item and returns it. The capacity is kept.
func (b *Buffer[Item]) Pop() (Item, error) {
	var zero Item
	if err := b.check("pop"); err != nil {
		return zero, err
	}
	if b.length == 0 {
		return zero, fmt.Errorf("pop: %w", ErrEmpty)
	}

	b.length--
	item := b.items[b.length]
	b.items[b.length] = zero
	b.metrics.add(-1, 0)

	return item, nil
}

// Front returns a copy of the first item.
func (b *Buffer[Item]) Front() (Item, error) {
	var zero Item
	if err := b.check("front"); err != nil {
		return zero, err
	}
	if b.length == 0 {
		return zero, fmt.Errorf("front: %w", ErrEmpty)
	}
	return b.items[0], nil
}

// Back returns a copy of the last item.
func (b *Buffer[Item]) Back() (Item, error) {
	var zero Item
	if err := b.check("back"); err != nil {
		return zero, err
	}
	if b.length == 0 {
		return zero, fmt.Errorf("back: %w", ErrEmpty)
	}
	return b.items[b.length-1], nil
}

// Get returns a copy of the item at index.
func (b *Buffer[Item]) Get(index int) (Item, error) {
	var zero Item
	if err := b.check("get"); err != nil {
		return zero, err
	}
	if err := b.bounds("get", index); err != nil {
		return zero, err
	}
	return b.items[index], nil
}

// Set replaces the item at index.
func (b *Buffer[Item]) Set(index int, item Item) error {
	if err := b.check("set"); err != nil {
		return err
	}
	if err := b.bounds("set", index); err != nil {
		return err
	}
	b.items[index] = item
	return nil
}

// InsertAt inserts an item at index, shifting the items at [index, Len) one slot to the right.
//
// The index must be less than Len: inserting at the end is done with Append, so InsertAt on an
// empty buffer always fails with [ErrOutOfRange].
func (b *Buffer[Item]) InsertAt(index int, item Item) error {
	if err := b.check("insert"); err != nil {
		return err
	}
	if err := b.bounds("insert", index); err != nil {
		return err
	}
	if err := b.reserve("insert"); err != nil {
		return err
	}

	copy(b.items[index+1:b.length+1], b.items[index:b.length])
	b.items[index] = item
	b.length++
	b.metrics.add(1, 0)

	return nil
}

// RemoveAt removes the item at index, shifting the items at (index, Len) one slot to the left.
// The capacity is kept.
func (b *Buffer[Item]) RemoveAt(index int) error {
	if err := b.check("remove"); err != nil {
		return err
	}
	if err := b.bounds("remove", index); err != nil {
		return err
	}

	var zero Item
	copy(b.items[index:b.length-1], b.items[index+1:b.length])
	b.length--
	b.items[b.length] = zero
	b.metrics.add(-1, 0)

	return nil
}

// Reverse reverses the order of items in place.
func (b *Buffer[Item]) Reverse() error {
	if err := b.check("reverse"); err != nil {
		return err
	}
	slices.Reverse(b.items[:b.length])
	return nil
}

// Clear releases the storage and leaves an empty buffer with zero capacity, which stays usable.
func (b *Buffer[Item]) Clear() error {
	if err := b.check("clear"); err != nil {
		return err
	}
	b.release()
	return nil
}

// Destroy releases the storage. After Destroy, every method returns [ErrNullReference],
// including another call to Destroy.
func (b *Buffer[Item]) Destroy() error {
	if err := b.check("destroy"); err != nil {
		return err
	}
	b.release()
	b.destroyed = true
	return nil
}

// Max returns a pointer to the greatest item according to cmp, which returns a negative number
// when a < b, zero when a == b and a positive number when a > b. Of equal items the first one
// wins.
//
// The pointer refers to the buffer storage and is valid only until the next mutation.
func (b *Buffer[Item]) Max(cmp func(a, b Item) int) (*Item, error) {
	return b.extreme("max", func(x, best Item) bool { return cmp(x, best) > 0 })
}

// Min returns a pointer to the least item according to cmp. See [Buffer.Max].
func (b *Buffer[Item]) Min(cmp func(a, b Item) int) (*Item, error) {
	return b.extreme("min", func(x, best Item) bool { return cmp(x, best) < 0 })
}

// IndexMatch returns the index of the first item for which match returns true. Returns
// [ErrNotFound] and -1 if there is no such item.
func (b *Buffer[Item]) IndexMatch(match func(item Item) bool) (int, error) {
	return b.index("index match", match)
}

// IndexOf returns the index of the first item equal to key. Returns [ErrNotFound] and -1 if there
// is no such item.
func IndexOf[Item comparable](b *Buffer[Item], key Item) (int, error) {
	return b.index("index of", func(item Item) bool { return item == key })
}

// All returns a sequence of the items in order. The sequence is empty for a nil or destroyed
// buffer.
func (b *Buffer[Item]) All() iter.Seq[Item] {
	if b == nil {
		return slices.Values([]Item(nil))
	}
	return slices.Values(b.items[:b.length])
}

// Backward returns a sequence of index-item pairs from the last item to the first.
func (b *Buffer[Item]) Backward() iter.Seq2[int, Item] {
	if b == nil {
		return slices.Backward([]Item(nil))
	}
	return slices.Backward(b.items[:b.length])
}

// Values returns a copy of the items.
func (b *Buffer[Item]) Values() []Item {
	if b == nil {
		return nil
	}
	return slices.Clone(b.items[:b.length])
}

func (b *Buffer[Item]) check(op string) error {
	if b == nil || b.destroyed {
		return fmt.Errorf("%s: %w", op, ErrNullReference)
	}
	return nil
}

func (b *Buffer[Item]) bounds(op string, index int) error {
	if index < 0 || index >= b.length {
		return fmt.Errorf("%s %d (length %d): %w", op, index, b.length, ErrOutOfRange)
	}
	return nil
}

// reserve makes room for one more item. On failure the buffer is untouched.
func (b *Buffer[Item]) reserve(op string) error {
	if b.length < len(b.items) {
		return nil
	}

	capacity, err := internal.Grow(len(b.items), b.limit)
	if err != nil {
		b.metrics.allocationFailed()
		return fmt.Errorf("%s: %w", op, err)
	}

	items, err := internal.Allocate[Item](capacity)
	if err != nil {
		b.metrics.allocationFailed()
		return fmt.Errorf("%s: %w", op, err)
	}

	copy(items, b.items[:b.length])
	b.metrics.grew(capacity - len(b.items))
	b.items = items

	return nil
}

func (b *Buffer[Item]) release() {
	b.metrics.add(-b.length, -len(b.items))
	b.items = nil
	b.length = 0
}

func (b *Buffer[Item]) extreme(op string, better func(x, best Item) bool) (*Item, error) {
	if err := b.check(op); err != nil {
		return nil, err
	}
	if b.length == 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrEmpty)
	}

	best := 0
	for i := 1; i < b.length; i++ {
		if better(b.items[i], b.items[best]) {
			best = i
		}
	}

	return &b.items[best], nil
}

func (b *Buffer[Item]) index(op string, match func(item Item) bool) (int, error) {
	if err := b.check(op); err != nil {
		return -1, err
	}
	if i := slices.IndexFunc(b.items[:b.length], match); i >= 0 {
		return i, nil
	}
	return -1, fmt.Errorf("%s: %w", op, ErrNotFound)
}
