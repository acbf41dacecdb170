package internal

import (
	"github.com/walles/refill/internal/textbuf"
)

// Trigger adapts a host keystroke to the comment wrapper. The host calls Type
// for each word boundary keystroke (typically space); while Enabled, typing
// keeps the comment line under the cursor within the filler's width. While
// disabled, keystrokes are plain insertions.
type Trigger struct {
	Filler  Filler
	Enabled bool
}

// Type inserts char at the buffer's cursor position.
//
// At the end of a line the wrap runs first, so the new character goes after
// the cleaned-up text instead of pushing it further over width. Anywhere else
// the character is inserted first and the wrap runs afterwards, with the
// cursor ending up back where the user was typing.
func (t *Trigger) Type(buf *textbuf.Buffer, char rune) {
	if !t.Enabled {
		buf.Insert(buf.Cursor(), string(char))
		return
	}

	cursor := buf.Cursor()
	if cursor == buf.LineEnd(cursor) {
		cursor = t.Filler.WrapComment(buf, cursor)
		buf.Insert(cursor, string(char))
		return
	}

	buf.Insert(cursor, string(char))
	t.Filler.WrapComment(buf, buf.Cursor())
}
