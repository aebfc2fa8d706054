package main

import (
	"cmp"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/teenjuna/seqbuf"
	"github.com/teenjuna/seqbuf/codec"
	"github.com/teenjuna/seqbuf/codec/gob"
	"github.com/teenjuna/seqbuf/codec/json"
	"github.com/teenjuna/seqbuf/codec/msgp"
	"github.com/teenjuna/seqbuf/raw"

	tinymsgp "github.com/tinylib/msgp/msgp"
)

type report struct {
	w           io.Writer
	format      string
	maxCapacity int
}

func (r *report) header(name string) {
	line := strings.Repeat("=", 30)
	fmt.Fprintf(r.w, "\n%s test with %s %s\n", line, name, line)
}

func (r *report) printf(format string, args ...any) {
	fmt.Fprintf(r.w, format, args...)
}

// expect reports an error the scenario provokes on purpose. Any other error is returned.
func (r *report) expect(err, target error) error {
	if err == nil {
		return fmt.Errorf("expected %v, got no error", target)
	}
	if !errors.Is(err, target) {
		return err
	}
	r.printf("error: %v\n", err)
	return nil
}

func (r *report) configFuncs() []seqbuf.ConfigFunc {
	if r.maxCapacity == 0 {
		return nil
	}
	return []seqbuf.ConfigFunc{func(c *seqbuf.Config) { c.MaxCapacity(r.maxCapacity) }}
}

func stats[Item any](r *report, b *seqbuf.Buffer[Item]) error {
	empty, err := b.IsEmpty()
	if err != nil {
		return err
	}
	r.printf("cap: %d\nlen: %d\nempty: %t\n", b.Cap(), b.Len(), empty)
	return nil
}

func dump[Item raw.Number](r *report, b *seqbuf.Buffer[Item]) error {
	var c codec.Codec[Item]
	switch r.format {
	case "text":
		for v := range b.All() {
			r.printf("%v ", v)
		}
		r.printf("\n")
		return nil
	case "json":
		c = json.New[Item]()
	case "gob":
		c = gob.New[Item]()
	case "msgp":
		return dumpMsgp(r, b)
	case "raw":
		return dumpRaw(r, b)
	default:
		return fmt.Errorf("unknown format %q", r.format)
	}

	data, err := c.Encode(b.All())
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	if r.format == "json" {
		r.printf("%s", data)
	} else {
		r.printf("%x\n", data)
	}

	return nil
}

// dumpMsgp prints the items as concatenated MessagePack numbers.
func dumpMsgp[Item raw.Number](r *report, b *seqbuf.Buffer[Item]) error {
	values := func(yield func(tinymsgp.Raw) bool) {
		for v := range b.All() {
			if !yield(appendNumber(nil, v)) {
				return
			}
		}
	}

	data, err := msgp.New[tinymsgp.Raw]().Encode(values)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	r.printf("%x\n", data)

	return nil
}

func appendNumber[Item raw.Number](o []byte, v Item) tinymsgp.Raw {
	switch v := any(v).(type) {
	case float32:
		return tinymsgp.AppendFloat32(o, v)
	case float64:
		return tinymsgp.AppendFloat64(o, v)
	}
	return tinymsgp.AppendInt64(o, int64(v))
}

// dumpRaw mirrors the buffer into byte-erased storage and prints its MessagePack encoding.
func dumpRaw[Item raw.Number](r *report, b *seqbuf.Buffer[Item]) error {
	mirror, err := raw.NewOf[Item](b.Cap())
	if err != nil {
		return err
	}
	for v := range b.All() {
		if err := mirror.Append(raw.Bytes(v)); err != nil {
			return err
		}
	}

	data, err := mirror.MarshalMsg(nil)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	r.printf("%x\n", data)

	return mirror.Destroy()
}

func intScenario(r *report) error {
	b, err := seqbuf.New[int](0, r.configFuncs()...)
	if err != nil {
		return err
	}
	if err := stats(r, b); err != nil {
		return err
	}

	_, err = b.Pop()
	if err := r.expect(err, seqbuf.ErrEmpty); err != nil {
		return err
	}

	if err := b.Append(10); err != nil {
		return err
	}
	if err := stats(r, b); err != nil {
		return err
	}
	if err := dump(r, b); err != nil {
		return err
	}

	for _, v := range []int{20, 30, 40, 50, 60} {
		if err := b.Append(v); err != nil {
			return err
		}
	}
	if err := dump(r, b); err != nil {
		return err
	}

	for _, key := range []int{7, 30} {
		idx, err := seqbuf.IndexOf(b, key)
		if errors.Is(err, seqbuf.ErrNotFound) {
			r.printf("idx of %d: not found\n", key)
			continue
		} else if err != nil {
			return err
		}
		r.printf("idx of %d: %d\n", key, idx)
	}

	if err := b.Reverse(); err != nil {
		return err
	}
	if err := dump(r, b); err != nil {
		return err
	}
	if err := stats(r, b); err != nil {
		return err
	}

	if err := b.Destroy(); err != nil {
		return err
	}
	r.printf("destroyed: %t\n", errors.Is(b.Destroy(), seqbuf.ErrNullReference))

	return nil
}

func floatScenario(r *report) error {
	b, err := seqbuf.New[float32](0, r.configFuncs()...)
	if err != nil {
		return err
	}
	if err := stats(r, b); err != nil {
		return err
	}

	_, err = b.Pop()
	if err := r.expect(err, seqbuf.ErrEmpty); err != nil {
		return err
	}

	for _, v := range []float32{10.5, 20.5, 30.5, 40.5, 50.5, 60.5} {
		if err := b.Append(v); err != nil {
			return err
		}
	}
	if err := dump(r, b); err != nil {
		return err
	}

	if err := b.InsertAt(0, 15.0); err != nil {
		return err
	}
	if err := b.InsertAt(2, 1.0); err != nil {
		return err
	}
	if err := dump(r, b); err != nil {
		return err
	}

	minimum, err := b.Min(cmp.Compare[float32])
	if err != nil {
		return err
	}
	r.printf("min: %v\n", *minimum)

	maximum, err := b.Max(cmp.Compare[float32])
	if err != nil {
		return err
	}
	r.printf("max: %v\n", *maximum)

	for _, key := range []float32{7.0, 1.0} {
		idx, err := seqbuf.IndexOf(b, key)
		if errors.Is(err, seqbuf.ErrNotFound) {
			r.printf("idx of %v: not found\n", key)
			continue
		} else if err != nil {
			return err
		}
		r.printf("idx of %v: %d\n", key, idx)
	}

	if err := b.RemoveAt(1); err != nil {
		return err
	}
	if err := b.RemoveAt(b.Len() - 1); err != nil {
		return err
	}
	if err := dump(r, b); err != nil {
		return err
	}
	if err := stats(r, b); err != nil {
		return err
	}

	if err := b.Clear(); err != nil {
		return err
	}
	if err := stats(r, b); err != nil {
		return err
	}

	if err := b.Destroy(); err != nil {
		return err
	}
	r.printf("destroyed: %t\n", errors.Is(b.Destroy(), seqbuf.ErrNullReference))

	return nil
}
