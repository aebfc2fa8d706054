package gob_test

import (
	"bytes"
	stdgob "encoding/gob"
	"io"
	"math/rand/v2"
	"slices"
	"strconv"
	"testing"

	"github.com/teenjuna/seqbuf"
	"github.com/teenjuna/seqbuf/codec/gob"
	"github.com/teenjuna/seqbuf/internal/testing/require"
)

func TestCodec(t *testing.T) {
	type Item struct {
		ID string
		N1 int
		N2 float64
	}

	buffer, err := seqbuf.New[Item](0)
	require.Nil(t, err)
	codec := gob.New[Item]()

	for range 2 {
		require.Nil(t, buffer.Clear())

		var items []Item
		for i := range 1000 {
			item := Item{
				ID: strconv.Itoa(i),
				N1: rand.IntN(1000),
				N2: rand.Float64() * 1000,
			}
			items = append(items, item)
			require.Nil(t, buffer.Append(item))
		}

		data, err := codec.Encode(buffer.All())
		require.Nil(t, err)
		require.NotEqual(t, len(data), 0)

		require.Nil(t, buffer.Clear())

		err = codec.Decode(data, func(item Item) {
			require.Nil(t, buffer.Append(item))
		})
		require.Nil(t, err)
		require.Equal(t, buffer.Values(), items)
	}
}

func TestCodecCount(t *testing.T) {
	codec := gob.New[int64]()

	data, err := codec.Encode(slices.Values([]int64{}))
	require.Nil(t, err)
	require.NotEqual(t, len(data), 0)

	var got []int64
	require.Nil(t, codec.Decode(data, func(v int64) { got = append(got, v) }))
	require.Equal(t, len(got), 0)

	require.Nil(t, codec.Decode(nil, func(int64) { t.Fatal("unexpected item") }))
}

func TestCodecTruncated(t *testing.T) {
	var buf bytes.Buffer
	enc := stdgob.NewEncoder(&buf)
	require.Nil(t, enc.Encode(3))
	for _, v := range []int64{10, 20} {
		require.Nil(t, enc.Encode(&v))
	}

	var got []int64
	err := gob.New[int64]().Decode(buf.Bytes(), func(v int64) { got = append(got, v) })
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
	require.Equal(t, got, []int64{10, 20})

	v := int64(30)
	require.Nil(t, enc.Encode(&v))
	require.Nil(t, enc.Encode(&v))

	got = nil
	err = gob.New[int64]().Decode(buf.Bytes(), func(v int64) { got = append(got, v) })
	require.NotNil(t, err)
	require.Equal(t, got, []int64{10, 20, 30})
}
