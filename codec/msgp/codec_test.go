package msgp_test

import (
	"math/rand/v2"
	"strconv"
	"testing"

	tinymsgp "github.com/tinylib/msgp/msgp"

	"github.com/teenjuna/seqbuf"
	"github.com/teenjuna/seqbuf/codec/msgp"
	"github.com/teenjuna/seqbuf/internal/testing/require"
)

func TestCodec(t *testing.T) {
	buffer, err := seqbuf.New[tinymsgp.Raw](0)
	require.Nil(t, err)
	codec := msgp.New[tinymsgp.Raw]()

	for range 2 {
		require.Nil(t, buffer.Clear())

		var items []tinymsgp.Raw
		for i := range 1000 {
			var item tinymsgp.Raw
			if i%2 == 0 {
				item = tinymsgp.AppendInt(nil, rand.IntN(1000))
			} else {
				item = tinymsgp.AppendString(nil, strconv.Itoa(i))
			}
			items = append(items, item)
			require.Nil(t, buffer.Append(item))
		}

		data, err := codec.Encode(buffer.All())
		require.Nil(t, err)
		require.NotEqual(t, len(data), 0)

		require.Nil(t, buffer.Clear())

		err = codec.Decode(data, func(item tinymsgp.Raw) {
			require.Nil(t, buffer.Append(item))
		})
		require.Nil(t, err)
		require.Equal(t, buffer.Values(), items)

		derived := codec.Derive()
		require.NotEqual(t, derived, codec)
	}
}

func TestCodecTruncated(t *testing.T) {
	codec := msgp.New[tinymsgp.Raw]()
	data := tinymsgp.AppendString(nil, "truncated")

	err := codec.Decode(data[:len(data)-2], func(tinymsgp.Raw) {})
	require.NotNil(t, err)
}
