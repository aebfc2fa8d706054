package raw

import (
	"fmt"

	"github.com/tinylib/msgp/msgp"

	"github.com/teenjuna/seqbuf/internal"
)

var (
	_ msgp.Marshaler   = (*Buffer)(nil)
	_ msgp.Unmarshaler = (*Buffer)(nil)
	_ msgp.Sizer       = (*Buffer)(nil)
)

// The encoding is an array of [element size, length, capacity, bytes of live elements].
const fields = 4

// MarshalMsg appends the MessagePack encoding of the buffer to o. Only live elements are
// encoded, the bytes past Len are not.
func (b *Buffer) MarshalMsg(o []byte) ([]byte, error) {
	if err := b.check("marshal"); err != nil {
		return o, err
	}

	o = msgp.AppendArrayHeader(o, fields)
	o = msgp.AppendInt(o, b.elementSize)
	o = msgp.AppendInt(o, b.length)
	o = msgp.AppendInt(o, b.Cap())
	o = msgp.AppendBytes(o, b.data[:b.length*b.elementSize])

	return o, nil
}

// UnmarshalMsg decodes a buffer encoded by [Buffer.MarshalMsg] and returns the remaining bytes.
//
// A zero buffer adopts the decoded element size, an initialized one must match it. The decoded
// capacity is only a hint: the allocated capacity is at most twice the decoded length (2 slots
// for an empty buffer), so the storage stays proportional to the input. Slots past the length are
// zero-filled. A capacity whose storage would exceed [MaxBytes] is rejected with [ErrMalformed].
// On failure the buffer is untouched.
func (b *Buffer) UnmarshalMsg(bts []byte) ([]byte, error) {
	if b == nil || b.destroyed {
		return bts, fmt.Errorf("unmarshal: %w", ErrNullReference)
	}

	sz, o, err := msgp.ReadArrayHeaderBytes(bts)
	if err != nil {
		return bts, fmt.Errorf("unmarshal header: %w", err)
	}
	if sz != fields {
		return bts, fmt.Errorf("unmarshal header: %w", msgp.ArrayError{Wanted: fields, Got: sz})
	}

	var elementSize, length, capacity int
	for _, v := range []*int{&elementSize, &length, &capacity} {
		if *v, o, err = msgp.ReadIntBytes(o); err != nil {
			return bts, fmt.Errorf("unmarshal header: %w", err)
		}
	}

	data, o, err := msgp.ReadBytesZC(o)
	if err != nil {
		return bts, fmt.Errorf("unmarshal data: %w", err)
	}

	switch {
	case elementSize < 1:
		return bts, fmt.Errorf("unmarshal: element size %d: %w", elementSize, ErrInvalidElementSize)
	case b.elementSize != 0 && b.elementSize != elementSize:
		return bts, fmt.Errorf(
			"unmarshal: element size %d into %d: %w",
			elementSize,
			b.elementSize,
			ErrInvalidElementSize,
		)
	case length < 0 || length > capacity || capacity > internal.Limit(elementSize):
		return bts, fmt.Errorf(
			"unmarshal: length %d, capacity %d: %w",
			length,
			capacity,
			ErrMalformed,
		)
	case len(data) != length*elementSize:
		return bts, fmt.Errorf(
			"unmarshal: %d data bytes for %d elements of %d: %w",
			len(data),
			length,
			elementSize,
			ErrMalformed,
		)
	}

	capacity = min(capacity, max(2, 2*length))

	storage, err := internal.Allocate[byte](capacity * elementSize)
	if err != nil {
		return bts, fmt.Errorf("unmarshal: %w", err)
	}
	copy(storage, data)

	b.data = storage
	b.length = length
	b.elementSize = elementSize

	return o, nil
}

// Msgsize returns an upper bound of the encoded size of the buffer.
func (b *Buffer) Msgsize() int {
	return msgp.ArrayHeaderSize + 3*msgp.IntSize + msgp.BytesPrefixSize + b.Len()*b.ElementSize()
}
