// Package raw provides a byte-erased sequence buffer of fixed-width elements.
//
// It is meant for storage that must stay type-agnostic, such as memory shared with foreign code
// or elements whose Go type is not known. For typed items prefer [github.com/teenjuna/seqbuf.Buffer].
package raw

import (
	"bytes"
	"fmt"
	"iter"

	"github.com/teenjuna/seqbuf/internal"
)

// MaxBytes is the largest storage, in bytes, of a buffer created by [New] or grown by it.
const MaxBytes = internal.MaxBytes

// Buffer is an owning, contiguous, growable sequence of elements of ElementSize bytes each.
//
// Element i occupies bytes [i*ElementSize, (i+1)*ElementSize) of a single storage slice, without
// gaps. Growth follows the same doubling policy as the typed buffer.
//
// The zero value is uninitialized: it can be the destination of [Copy] or
// [Buffer.UnmarshalMsg], every other method returns [ErrNullReference].
//
// Buffer is not thread-safe.
type Buffer struct {
	data        []byte
	length      int
	elementSize int
	destroyed   bool
}

// New creates a buffer with capacity preallocated slots of elementSize bytes.
//
// Returns [ErrInvalidElementSize] if elementSize < 1 and [ErrAllocationFailed] if capacity is
// negative or the storage would exceed [MaxBytes].
func New(capacity, elementSize int) (*Buffer, error) {
	if elementSize < 1 {
		return nil, fmt.Errorf("new: element size %d: %w", elementSize, ErrInvalidElementSize)
	}
	if capacity > internal.Limit(elementSize) {
		return nil, fmt.Errorf("new: capacity %d: %w", capacity, ErrAllocationFailed)
	}

	data, err := internal.Allocate[byte](capacity * elementSize)
	if err != nil {
		return nil, fmt.Errorf("new: %w", err)
	}

	b := Buffer{
		data:        data,
		elementSize: elementSize,
	}

	return &b, nil
}

func (b *Buffer) Len() int {
	if b == nil {
		return 0
	}
	return b.length
}

func (b *Buffer) Cap() int {
	if b == nil || b.elementSize == 0 {
		return 0
	}
	return len(b.data) / b.elementSize
}

func (b *Buffer) ElementSize() int {
	if b == nil {
		return 0
	}
	return b.elementSize
}

func (b *Buffer) IsEmpty() (bool, error) {
	if err := b.check("is empty"); err != nil {
		return false, err
	}
	return b.length == 0, nil
}

// Append copies value into a new slot at the end of the buffer.
func (b *Buffer) Append(value []byte) error {
	if err := b.check("append"); err != nil {
		return err
	}
	if err := b.width("append", value); err != nil {
		return err
	}
	if err := b.reserve("append"); err != nil {
		return err
	}

	copy(b.slot(b.length), value)
	b.length++

	return nil
}

// Pop removes the last element and returns a copy of it.
func (b *Buffer) Pop() ([]byte, error) {
	if err := b.check("pop"); err != nil {
		return nil, err
	}
	if b.length == 0 {
		return nil, fmt.Errorf("pop: %w", ErrEmpty)
	}

	b.length--
	return bytes.Clone(b.slot(b.length)), nil
}

// Front returns a copy of the first element.
func (b *Buffer) Front() ([]byte, error) {
	if err := b.check("front"); err != nil {
		return nil, err
	}
	if b.length == 0 {
		return nil, fmt.Errorf("front: %w", ErrEmpty)
	}
	return bytes.Clone(b.slot(0)), nil
}

// Back returns a copy of the last element.
func (b *Buffer) Back() ([]byte, error) {
	if err := b.check("back"); err != nil {
		return nil, err
	}
	if b.length == 0 {
		return nil, fmt.Errorf("back: %w", ErrEmpty)
	}
	return bytes.Clone(b.slot(b.length - 1)), nil
}

// Get returns a copy of the element at index.
func (b *Buffer) Get(index int) ([]byte, error) {
	v, err := b.At(index)
	if err != nil {
		return nil, err
	}
	return bytes.Clone(v), nil
}

// At returns the element at index as a view into the storage. The view is valid only until the
// next mutation.
func (b *Buffer) At(index int) ([]byte, error) {
	if err := b.check("get"); err != nil {
		return nil, err
	}
	if err := b.bounds("get", index); err != nil {
		return nil, err
	}
	return b.slot(index), nil
}

// Set copies value into the slot at index.
func (b *Buffer) Set(index int, value []byte) error {
	if err := b.check("set"); err != nil {
		return err
	}
	if err := b.bounds("set", index); err != nil {
		return err
	}
	if err := b.width("set", value); err != nil {
		return err
	}
	copy(b.slot(index), value)
	return nil
}

// InsertAt inserts value at index, which must be less than Len. Elements at [index, Len) move one
// slot to the right.
func (b *Buffer) InsertAt(index int, value []byte) error {
	if err := b.check("insert"); err != nil {
		return err
	}
	if err := b.bounds("insert", index); err != nil {
		return err
	}
	if err := b.width("insert", value); err != nil {
		return err
	}
	if err := b.reserve("insert"); err != nil {
		return err
	}

	size := b.elementSize
	copy(b.data[(index+1)*size:(b.length+1)*size], b.data[index*size:b.length*size])
	copy(b.slot(index), value)
	b.length++

	return nil
}

// RemoveAt removes the element at index. Elements at (index, Len) move one slot to the left.
func (b *Buffer) RemoveAt(index int) error {
	if err := b.check("remove"); err != nil {
		return err
	}
	if err := b.bounds("remove", index); err != nil {
		return err
	}

	size := b.elementSize
	copy(b.data[index*size:(b.length-1)*size], b.data[(index+1)*size:b.length*size])
	b.length--

	return nil
}

func (b *Buffer) Reverse() error {
	if err := b.check("reverse"); err != nil {
		return err
	}
	if b.length < 2 {
		return nil
	}

	tmp := make([]byte, b.elementSize)
	for i, j := 0, b.length-1; i < j; i, j = i+1, j-1 {
		x, y := b.slot(i), b.slot(j)
		copy(tmp, x)
		copy(x, y)
		copy(y, tmp)
	}

	return nil
}

// Clear releases the storage and leaves an empty buffer with zero capacity and the same element
// size.
func (b *Buffer) Clear() error {
	if err := b.check("clear"); err != nil {
		return err
	}
	b.data = nil
	b.length = 0
	return nil
}

// Destroy releases the storage. Every later call, including Destroy, returns [ErrNullReference].
func (b *Buffer) Destroy() error {
	if err := b.check("destroy"); err != nil {
		return err
	}
	b.data = nil
	b.length = 0
	b.destroyed = true
	return nil
}

// Max returns a view of the greatest element according to cmp. Of equal elements the first one
// wins. The view is valid only until the next mutation.
func (b *Buffer) Max(cmp func(a, b []byte) int) ([]byte, error) {
	return b.extreme("max", func(x, best []byte) bool { return cmp(x, best) > 0 })
}

// Min returns a view of the least element according to cmp. See [Buffer.Max].
func (b *Buffer) Min(cmp func(a, b []byte) int) ([]byte, error) {
	return b.extreme("min", func(x, best []byte) bool { return cmp(x, best) < 0 })
}

// IndexOf returns the index of the first element whose bytes equal key. Returns [ErrNotFound] and
// -1 if there is no such element.
func (b *Buffer) IndexOf(key []byte) (int, error) {
	return b.index("index of", func(v []byte) bool { return bytes.Equal(v, key) })
}

// IndexMatch returns the index of the first element for which match returns true. Returns
// [ErrNotFound] and -1 if there is no such element.
func (b *Buffer) IndexMatch(match func(v []byte) bool) (int, error) {
	return b.index("index match", match)
}

// All returns a sequence of views of the elements in order.
func (b *Buffer) All() iter.Seq[[]byte] {
	return func(yield func([]byte) bool) {
		for i := range b.Len() {
			if !yield(b.slot(i)) {
				return
			}
		}
	}
}

// Bytes returns a copy of the bytes of all elements, laid out contiguously.
func (b *Buffer) Bytes() []byte {
	if b == nil {
		return nil
	}
	return bytes.Clone(b.data[:b.length*b.elementSize])
}

func (b *Buffer) slot(i int) []byte {
	lo, hi := i*b.elementSize, (i+1)*b.elementSize
	return b.data[lo:hi:hi]
}

func (b *Buffer) check(op string) error {
	if b == nil || b.destroyed || b.elementSize == 0 {
		return fmt.Errorf("%s: %w", op, ErrNullReference)
	}
	return nil
}

func (b *Buffer) bounds(op string, index int) error {
	if index < 0 || index >= b.length {
		return fmt.Errorf("%s %d (length %d): %w", op, index, b.length, ErrOutOfRange)
	}
	return nil
}

func (b *Buffer) width(op string, value []byte) error {
	if len(value) != b.elementSize {
		return fmt.Errorf(
			"%s: value has %d bytes, want %d: %w",
			op,
			len(value),
			b.elementSize,
			ErrInvalidElementSize,
		)
	}
	return nil
}

func (b *Buffer) reserve(op string) error {
	capacity := b.Cap()
	if b.length < capacity {
		return nil
	}

	capacity, err := internal.Grow(capacity, internal.Limit(b.elementSize))
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	data, err := internal.Allocate[byte](capacity * b.elementSize)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	copy(data, b.data[:b.length*b.elementSize])
	b.data = data

	return nil
}

func (b *Buffer) extreme(op string, better func(x, best []byte) bool) ([]byte, error) {
	if err := b.check(op); err != nil {
		return nil, err
	}
	if b.length == 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrEmpty)
	}

	best := b.slot(0)
	for i := 1; i < b.length; i++ {
		if v := b.slot(i); better(v, best) {
			best = v
		}
	}

	return best, nil
}

func (b *Buffer) index(op string, match func(v []byte) bool) (int, error) {
	if err := b.check(op); err != nil {
		return -1, err
	}
	for i := range b.length {
		if match(b.slot(i)) {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%s: %w", op, ErrNotFound)
}
