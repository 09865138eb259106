package store

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/heysubinoy/notedb/pkg/kv"
)

func TestReadEntries(t *testing.T) {
	input := "alpha:1\n" +
		"this line has no delimiter\n" +
		"\n" +
		"beta:x:y:z\n" +
		":no key\n" +
		"empty:\n" +
		"crlf:windows\r\n" +
		"last:no trailing newline"

	got, err := ReadEntries(strings.NewReader(input), zaptest.NewLogger(t))
	require.NoError(t, err)

	want := []kv.Entry{
		{Key: "alpha", Value: "1"},
		{Key: "beta", Value: "x:y:z"},
		{Key: "empty", Value: ""},
		{Key: "crlf", Value: "windows"},
		{Key: "last", Value: "no trailing newline"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ReadEntries mismatch (-want +got):\n%s", diff)
	}
}

func TestReadEntriesEmpty(t *testing.T) {
	got, err := ReadEntries(strings.NewReader(""), nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestReadEntriesLongLine(t *testing.T) {
	long := strings.Repeat("v", 200*1024)
	got, err := ReadEntries(strings.NewReader("k:"+long+"\n"), nil)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, long, got[0].Value)
}

func TestReadEntriesReaderError(t *testing.T) {
	errBoom := errors.New("boom")
	_, err := ReadEntries(iotest.ErrReader(errBoom), nil)
	assert.ErrorIs(t, err, errBoom)
}

func TestWriteEntries(t *testing.T) {
	var buf bytes.Buffer
	err := WriteEntries(&buf, []kv.Entry{{Key: "a", Value: "1"}, {Key: "b", Value: ""}})
	require.NoError(t, err)
	assert.Equal(t, "a:1\nb:\n", buf.String())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := NewMemStore()
	s.Insert("apple", "1")
	s.Insert("url", "http://example.com:8080/path")
	s.Insert("empty", "")
	s.Insert("spaces", "  padded  ")
	s.Insert("unicode", "zażółć gęślą jaźń")
	s.Insert("inner-cr", "a\rb")

	var buf bytes.Buffer
	require.NoError(t, WriteEntries(&buf, s.List()))

	got, err := ReadEntries(&buf, nil)
	require.NoError(t, err)
	if diff := cmp.Diff(s.List(), got); diff != "" {
		t.Errorf("round trip mismatch (-saved +loaded):\n%s", diff)
	}
}
