package json_test

import (
	"math/rand/v2"
	"strconv"
	"testing"

	"github.com/teenjuna/seqbuf"
	"github.com/teenjuna/seqbuf/codec/json"
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
	codec := json.New[Item]()

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

	derived := codec.Derive()
	require.NotEqual(t, derived, codec)
}

func TestCodecEmpty(t *testing.T) {
	buffer, _ := seqbuf.New[int](0)
	codec := json.New[int]()

	data, err := codec.Encode(buffer.All())
	require.Nil(t, err)
	require.Equal(t, string(data), "[]\n")

	err = codec.Decode(data, func(int) { t.Fatal("unexpected item") })
	require.Nil(t, err)
}
