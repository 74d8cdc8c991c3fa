package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnapshotEqual(t *testing.T) {
	a := NewSnapshot("x", "y")

	assert.True(t, a.Equal(NewSnapshot("x", "y")))
	assert.False(t, a.Equal(NewSnapshot("x")))
	assert.False(t, a.Equal(NewSnapshot("x", "z")))
	assert.False(t, a.Equal(NewSnapshot("y", "x")))
	assert.True(t, NewSnapshot().Equal(New().Snapshot()))
}

func TestSnapshotIsolation(t *testing.T) {
	d := FromLines([]string{"abc"})
	snap := d.Snapshot()

	d.InsertText("def")
	d.InsertNewline()

	assert.Equal(t, []string{"abc"}, snap.Lines())
	lines := snap.Lines()
	lines[0] = "mutated"
	assert.Equal(t, "abc", snap.Text())
}

func TestRestoreClampsActiveLine(t *testing.T) {
	d := FromLines([]string{"a", "b", "c"})
	d.MoveDown()
	d.MoveDown()
	assert.Equal(t, 2, d.ActiveLine())

	d.Restore(NewSnapshot("only"))

	assert.Equal(t, 0, d.ActiveLine())
	assert.Equal(t, "only", d.Before())
	assert.Equal(t, "", d.After())
}

func TestRestoreKeepsActiveLineInRange(t *testing.T) {
	d := FromLines([]string{"a", "b"})
	d.MoveDown()

	d.Restore(NewSnapshot("x", "yy", "z"))

	assert.Equal(t, 1, d.ActiveLine())
	assert.Equal(t, "yy", d.Before())
	assert.Equal(t, 2, d.Column())
}
