package gob

import (
	"bytes"
	"encoding/gob"
	"errors"
	"fmt"
	"io"
	"iter"
	"slices"

	"github.com/teenjuna/seqbuf/codec"
)

var _ codec.Codec[any] = (*Codec[any])(nil)

// Codec encodes items as a gob stream: the number of items, then the items themselves. Decode
// checks the stream against that number, so a stream cut at an item boundary is detected.
type Codec[Item any] struct {
	buf *bytes.Buffer
}

func New[Item any]() *Codec[Item] {
	return &Codec[Item]{
		buf: new(bytes.Buffer),
	}
}

func (c *Codec[Item]) Encode(items iter.Seq[Item]) ([]byte, error) {
	c.buf.Reset()
	enc := gob.NewEncoder(c.buf)

	collected := slices.Collect(items)
	if err := enc.Encode(len(collected)); err != nil {
		return nil, fmt.Errorf("encode count: %w", err)
	}
	for i := range collected {
		if err := enc.Encode(&collected[i]); err != nil {
			return nil, fmt.Errorf("encode item %d: %w", i, err)
		}
	}

	res := c.buf.Bytes()
	out := make([]byte, len(res))
	copy(out, res)

	return out, nil
}

// Decode pushes exactly the encoded number of items. Empty data holds no items.
func (c *Codec[Item]) Decode(data []byte, push func(Item)) error {
	dec := gob.NewDecoder(bytes.NewReader(data))

	var count int
	err := dec.Decode(&count)
	if err == io.EOF {
		return nil
	} else if err != nil {
		return fmt.Errorf("decode count: %w", err)
	}
	if count < 0 {
		return fmt.Errorf("decode count: negative count %d", count)
	}

	for i := range count {
		var item Item
		err := dec.Decode(&item)
		if err == io.EOF {
			return fmt.Errorf("decode item %d of %d: %w", i, count, io.ErrUnexpectedEOF)
		} else if err != nil {
			return fmt.Errorf("decode item %d of %d: %w", i, count, err)
		}
		push(item)
	}

	var extra Item
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode: data past %d items", count)
	}

	return nil
}

func (c *Codec[Item]) Derive() codec.Codec[Item] {
	return New[Item]()
}
