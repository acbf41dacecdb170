package textbuf

import (
	"strings"
)

// Buffer is a mutable in-memory text buffer addressed by rune offsets. It
// stands in for the host editor's buffer: wrap operations borrow it for the
// duration of one invocation and mutate it in place.
//
// The buffer tracks one cursor. Insert and Delete keep the cursor pointing at
// the same logical spot, the way editors do when text moves around it.
type Buffer struct {
	runes  []rune
	cursor int
}

func New(text string) *Buffer {
	return &Buffer{runes: []rune(text)}
}

// Len returns the buffer size in runes.
func (b *Buffer) Len() int {
	return len(b.runes)
}

func (b *Buffer) String() string {
	return string(b.runes)
}

// RuneAt returns the rune at pos. Asking outside the buffer is a programming
// error.
func (b *Buffer) RuneAt(pos int) rune {
	return b.runes[pos]
}

// Text returns the contents of [start, end) as a string.
func (b *Buffer) Text(start, end int) string {
	return string(b.runes[start:end])
}

// Insert puts text at pos, shifting everything from pos onwards to the right.
// A cursor at or after pos moves with the shifted text.
func (b *Buffer) Insert(pos int, text string) {
	inserted := []rune(text)
	if len(inserted) == 0 {
		return
	}

	b.runes = append(b.runes[:pos], append(inserted, b.runes[pos:]...)...)

	if b.cursor >= pos {
		b.cursor += len(inserted)
	}
}

// Delete removes [start, end). A cursor inside the deleted span ends up at
// start; a cursor after it shifts left.
func (b *Buffer) Delete(start, end int) {
	if end <= start {
		return
	}

	b.runes = append(b.runes[:start], b.runes[end:]...)

	if b.cursor >= end {
		b.cursor -= end - start
	} else if b.cursor > start {
		b.cursor = start
	}
}

// LineStart returns the position of the first rune of the line containing
// pos. pos == Len() counts as being on the last line.
func (b *Buffer) LineStart(pos int) int {
	for pos > 0 && b.runes[pos-1] != '\n' {
		pos--
	}
	return pos
}

// LineEnd returns the position of the line terminator of the line containing
// pos, or Len() if the last line is unterminated. The terminator itself is
// not part of the line.
func (b *Buffer) LineEnd(pos int) int {
	for pos < len(b.runes) && b.runes[pos] != '\n' {
		pos++
	}
	return pos
}

// LineCount returns the number of lines in the buffer. An empty buffer has
// one (empty) line, and a trailing line terminator does not start another.
func (b *Buffer) LineCount() int {
	count := 1
	for _, r := range b.runes {
		if r == '\n' {
			count++
		}
	}
	if len(b.runes) > 0 && b.runes[len(b.runes)-1] == '\n' {
		count--
	}
	return count
}

// IndexIn returns the position of the first occurrence of needle within
// [start, end), or -1. The match is purely textual, a needle that happens to
// be part of a longer token still matches.
func (b *Buffer) IndexIn(start, end int, needle string) int {
	index := strings.Index(string(b.runes[start:end]), needle)
	if index < 0 {
		return -1
	}

	// strings.Index counts bytes, we count runes
	return start + len([]rune(string(b.runes[start:end])[:index]))
}

func (b *Buffer) Cursor() int {
	return b.cursor
}

// SetCursor clamps pos into [0, Len()] and puts the cursor there.
func (b *Buffer) SetCursor(pos int) {
	if pos < 0 {
		pos = 0
	}
	if pos > len(b.runes) {
		pos = len(b.runes)
	}
	b.cursor = pos
}
