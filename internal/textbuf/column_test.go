package textbuf

import (
	"testing"

	"gotest.tools/v3/assert"
)

func TestColumnAt(t *testing.T) {
	buffer := New("hello\nworld")

	assert.Equal(t, ColumnAt(buffer, 0), 0)
	assert.Equal(t, ColumnAt(buffer, 3), 3)

	// Columns restart on every line
	assert.Equal(t, ColumnAt(buffer, 6), 0)
	assert.Equal(t, ColumnAt(buffer, 8), 2)
}

func TestColumnAtTab(t *testing.T) {
	buffer := New("\tx\ty")

	assert.Equal(t, ColumnAt(buffer, 1), 8)
	assert.Equal(t, ColumnAt(buffer, 2), 9)

	// The second tab only advances to the next tab stop
	assert.Equal(t, ColumnAt(buffer, 3), 16)
}

func TestColumnAtWideChars(t *testing.T) {
	// '上' and '午' cover two columns each
	buffer := New("x上午y")

	assert.Equal(t, ColumnAt(buffer, 1), 1)
	assert.Equal(t, ColumnAt(buffer, 2), 3)
	assert.Equal(t, ColumnAt(buffer, 3), 5)
	assert.Equal(t, ColumnAt(buffer, 4), 6)
}

func TestPosAtColumn(t *testing.T) {
	buffer := New("hello world")

	assert.Equal(t, PosAtColumn(buffer, 0, 0), 0)
	assert.Equal(t, PosAtColumn(buffer, 0, 6), 6)

	// Past the line's end we get the line end position
	assert.Equal(t, PosAtColumn(buffer, 0, 99), 11)
}

func TestPosAtColumnWideChars(t *testing.T) {
	buffer := New("x上午y")

	// Column 2 is the middle of '上', so '上' is the covering rune
	assert.Equal(t, PosAtColumn(buffer, 0, 2), 1)
	assert.Equal(t, PosAtColumn(buffer, 0, 3), 2)
	assert.Equal(t, PosAtColumn(buffer, 0, 5), 3)
}

func TestPosAtColumnTrailingWideRune(t *testing.T) {
	// '午' spans columns 3-4, both map to it even at the end of the line
	buffer := New("x上午")

	assert.Equal(t, PosAtColumn(buffer, 0, 3), 2)
	assert.Equal(t, PosAtColumn(buffer, 0, 4), 2)
	assert.Equal(t, PosAtColumn(buffer, 0, 5), 3)
}

func TestPosAtColumnTab(t *testing.T) {
	// The tab spans columns 1-7
	buffer := New("x\ty")

	assert.Equal(t, PosAtColumn(buffer, 0, 1), 1)
	assert.Equal(t, PosAtColumn(buffer, 0, 7), 1)
	assert.Equal(t, PosAtColumn(buffer, 0, 8), 2)
}
