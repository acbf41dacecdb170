package textbuf

import (
	"testing"

	"gotest.tools/v3/assert"
)

func TestLineBounds(t *testing.T) {
	buffer := New("first\nsecond\nthird")

	assert.Equal(t, buffer.LineStart(0), 0)
	assert.Equal(t, buffer.LineEnd(0), 5)

	// Position 8 is inside "second"
	assert.Equal(t, buffer.LineStart(8), 6)
	assert.Equal(t, buffer.LineEnd(8), 12)

	// The last line is unterminated
	assert.Equal(t, buffer.LineEnd(14), buffer.Len())

	// Len() counts as being on the last line
	assert.Equal(t, buffer.LineStart(buffer.Len()), 13)
}

func TestLineCount(t *testing.T) {
	assert.Equal(t, New("").LineCount(), 1)
	assert.Equal(t, New("one").LineCount(), 1)
	assert.Equal(t, New("one\n").LineCount(), 1)
	assert.Equal(t, New("one\ntwo").LineCount(), 2)
	assert.Equal(t, New("one\ntwo\n").LineCount(), 2)
}

func TestInsertDelete(t *testing.T) {
	buffer := New("hello world")

	buffer.Insert(5, ",")
	assert.Equal(t, buffer.String(), "hello, world")

	buffer.Delete(5, 6)
	assert.Equal(t, buffer.String(), "hello world")
}

func TestIndexIn(t *testing.T) {
	buffer := New("code // comment\n// another")

	assert.Equal(t, buffer.IndexIn(0, 15, "//"), 5)
	assert.Equal(t, buffer.IndexIn(16, buffer.Len(), "//"), 16)

	// Searches are bounded
	assert.Equal(t, buffer.IndexIn(0, 5, "//"), -1)
}

func TestIndexInNonAscii(t *testing.T) {
	// Rune offsets, not byte offsets
	buffer := New("上午 // comment")
	assert.Equal(t, buffer.IndexIn(0, buffer.Len(), "//"), 3)
}

func TestCursorFollowsEdits(t *testing.T) {
	buffer := New("hello world")
	buffer.SetCursor(6) // at the 'w'

	// Insert before the cursor shifts it
	buffer.Insert(0, ">> ")
	assert.Equal(t, buffer.Cursor(), 9)

	// Insert after the cursor does not
	buffer.Insert(buffer.Len(), "!")
	assert.Equal(t, buffer.Cursor(), 9)

	// Delete before the cursor shifts it back
	buffer.Delete(0, 3)
	assert.Equal(t, buffer.Cursor(), 6)

	// Delete across the cursor parks it at the deletion point
	buffer.Delete(4, 8)
	assert.Equal(t, buffer.Cursor(), 4)
}

func TestSetCursorClamps(t *testing.T) {
	buffer := New("abc")

	buffer.SetCursor(-1)
	assert.Equal(t, buffer.Cursor(), 0)

	buffer.SetCursor(99)
	assert.Equal(t, buffer.Cursor(), 3)
}
