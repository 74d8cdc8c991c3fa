package spellcheck

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/texted/internal/dictionary"
)

func newTestChecker(words ...string) *Checker {
	d := dictionary.New()
	for _, w := range words {
		d.Insert(w)
	}
	return NewChecker(d)
}

func TestCheckKnown(t *testing.T) {
	c := newTestChecker("hello", "world")

	f, ok := c.Check("Hello,")
	require.True(t, ok)
	assert.Equal(t, "hello", f.Token)
	assert.True(t, f.Known)
	assert.Empty(t, f.Suggestions)
}

func TestCheckUnknown(t *testing.T) {
	c := newTestChecker("help", "hello", "helm", "hat", "world")

	f, ok := c.Check("Helo!")
	require.True(t, ok)
	assert.Equal(t, "helo", f.Token)
	assert.False(t, f.Known)
	assert.Equal(t, []string{"hello", "helm", "help"}, f.Suggestions)
}

func TestCheckShortToken(t *testing.T) {
	c := newTestChecker("a", "an", "ant")

	f, ok := c.Check("x")
	require.True(t, ok)
	assert.False(t, f.Known)
	assert.Empty(t, f.Suggestions)

	f, ok = c.Check("an")
	require.True(t, ok)
	assert.True(t, f.Known)
}

func TestCheckEmptyAfterNormalize(t *testing.T) {
	c := newTestChecker("word")

	_, ok := c.Check("...")
	assert.False(t, ok)
	_, ok = c.Check("")
	assert.False(t, ok)
}

func TestFormatRecord(t *testing.T) {
	assert.Equal(t, "helo -> Suggestions:\nhello help \n\n", FormatRecord("helo", []string{"hello", "help"}))
	assert.Equal(t, "zzz -> Suggestions:\n\n\n", FormatRecord("zzz", nil))
}

func TestFileSinkAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spell.log")
	sink := NewFileSink(path)

	require.NoError(t, sink.Record("teh", []string{"the"}))
	require.NoError(t, sink.Record("qwx", nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "teh -> Suggestions:\nthe \n\nqwx -> Suggestions:\n\n\n", string(data))
}

func TestFileSinkUnavailable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "dir", "spell.log")
	sink := NewFileSink(path)

	assert.Error(t, sink.Record("teh", nil))
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestWriterSink(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewWriterSink(&buf).Record("wrd", []string{"word"}))
	assert.Equal(t, "wrd -> Suggestions:\nword \n\n", buf.String())
}

func TestDiscard(t *testing.T) {
	assert.NoError(t, Discard.Record("x", []string{"y"}))
}

// ============================================================================
// Scan
// ============================================================================

func TestScan(t *testing.T) {
	c := newTestChecker("hello", "help", "world", "the")
	var buf bytes.Buffer

	rep, err := c.Scan(strings.NewReader("Hello, wrld!\n-- the  Helo\n"), NewWriterSink(&buf))
	require.NoError(t, err)

	assert.Equal(t, Report{Words: 4, Unknown: 2}, rep)
	assert.Equal(t, "wrld -> Suggestions:\nworld \n\nhelo -> Suggestions:\nhello help \n\n", buf.String())
}

type failingSink struct{}

func (failingSink) Record(string, []string) error { return os.ErrPermission }

func TestScanSinkError(t *testing.T) {
	c := newTestChecker("hello")
	rep, err := c.Scan(strings.NewReader("hello zzz qqq"), failingSink{})
	assert.ErrorIs(t, err, os.ErrPermission)
	assert.Equal(t, Report{Words: 2, Unknown: 1}, rep)
}
