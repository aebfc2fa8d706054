package main

import (
	"bytes"
	"slices"
	"strings"
	"testing"

	tinymsgp "github.com/tinylib/msgp/msgp"

	"github.com/teenjuna/seqbuf"
	"github.com/teenjuna/seqbuf/codec/msgp"
	"github.com/teenjuna/seqbuf/internal/testing/require"
)

func TestRunText(t *testing.T) {
	var out bytes.Buffer
	require.Nil(t, run(&out, "text", 0))

	s := out.String()
	for _, want := range []string{
		"error: pop: buffer is empty",
		"10 20 30 40 50 60 \n",
		"idx of 7: not found\n",
		"idx of 30: 2\n",
		"60 50 40 30 20 10 \n",
		"15 10.5 1 20.5 30.5 40.5 50.5 60.5 \n",
		"min: 1\n",
		"max: 60.5\n",
		"idx of 1: 2\n",
		"15 1 20.5 30.5 40.5 50.5 \n",
		"cap: 0\nlen: 0\nempty: true\n",
		"destroyed: true\n",
	} {
		if !strings.Contains(s, want) {
			t.Fatalf("output doesn't contain %q:\n%s", want, s)
		}
	}

	intAt := strings.Index(s, "test with int")
	floatAt := strings.Index(s, "test with float")
	require.NotEqual(t, intAt, -1)
	require.NotEqual(t, floatAt, -1)
	require.Equal(t, intAt < floatAt, true)
}

func TestRunJSON(t *testing.T) {
	var out bytes.Buffer
	require.Nil(t, run(&out, "json", 0))
	require.Equal(t, strings.Contains(out.String(), "[15,1,20.5,30.5,40.5,50.5]\n"), true)
	require.Equal(t, strings.Contains(out.String(), "[60,50,40,30,20,10]\n"), true)
}

func TestRunBinary(t *testing.T) {
	for _, format := range []string{"gob", "msgp", "raw"} {
		var out bytes.Buffer
		require.Nil(t, run(&out, format, 0))
		require.Equal(t, strings.Contains(out.String(), "max: 60.5\n"), true)
	}
}

func TestRunMaxCapacity(t *testing.T) {
	var out bytes.Buffer
	err := run(&out, "text", 4)
	require.ErrorIs(t, err, seqbuf.ErrAllocationFailed)
	require.Equal(t, strings.Contains(out.String(), "test with int"), true)
}

func TestRunMsgp(t *testing.T) {
	var out bytes.Buffer
	require.Nil(t, run(&out, "msgp", 0))
	require.Equal(t, strings.Contains(out.String(), "0a141e28323c\n"), true)
	require.Equal(t, strings.Contains(out.String(), "3c32281e140a\n"), true)
}

func TestAppendNumber(t *testing.T) {
	var items []tinymsgp.Raw
	err := msgp.New[tinymsgp.Raw]().Decode(
		slices.Concat(appendNumber[int](nil, -7), appendNumber[float32](nil, 1.5)),
		func(item tinymsgp.Raw) { items = append(items, item) },
	)
	require.Nil(t, err)
	require.Equal(t, len(items), 2)

	i, _, err := tinymsgp.ReadInt64Bytes(items[0])
	require.Nil(t, err)
	require.Equal(t, i, int64(-7))

	f, _, err := tinymsgp.ReadFloat32Bytes(items[1])
	require.Nil(t, err)
	require.Equal(t, f, float32(1.5))
}
