package internal

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/walles/refill/internal/textbuf"
)

// StringDelims describes one string literal syntax: the markers bounding the
// literal, the marker closing an over-width fragment, and the prefix that
// reopens the literal on the following line.
type StringDelims struct {
	Start string
	End   string

	// Appended to an over-width fragment to continue it, "\" in C-like
	// languages
	LineEnd string

	// Prefix for the continuation fragment on the next line
	LineContinue string
}

// WrapString splits a string literal that runs past Width. pos must be at the
// literal's Start marker.
//
// A literal whose End marker appears on the same line is left alone even if
// the line is over-width; anything after the closing marker is preserved
// verbatim. An unterminated literal is split at column Width-len(LineEnd),
// backed up to the nearest preceding word boundary: the fragment is closed
// with LineEnd and the rest continues on a fresh line prefixed with
// LineContinue. Fragments are never merged into following lines, each one
// stays on its own line so distinct literals cannot run together.
//
// Returns the relocated cursor position, like WrapComment does.
func (f Filler) WrapString(buf *textbuf.Buffer, pos int, delims StringDelims) int {
	if f.Width <= 0 {
		panic(fmt.Errorf("width must be positive, got %d", f.Width))
	}

	buf.SetCursor(pos)
	pos = buf.Cursor()
	lineEndLen := len([]rune(delims.LineEnd))
	continueLen := len([]rune(delims.LineContinue))

	lineStart := buf.LineStart(pos)
	contentStart := pos + len([]rune(delims.Start))
	if contentStart > buf.Len() {
		// Not even room for the Start marker at pos
		return buf.Cursor()
	}

	maxPasses := 2*buf.LineCount() + 32
	for pass := 0; pass < maxPasses; pass++ {
		lineEnd := buf.LineEnd(contentStart)
		if buf.IndexIn(contentStart, lineEnd, delims.End) >= 0 {
			// Terminates on this line, nothing to split
			break
		}
		if textbuf.ColumnAt(buf, lineEnd) <= f.Width {
			break
		}

		// Leave room for the fragment closer
		splitAt := textbuf.PosAtColumn(buf, lineStart, f.Width-lineEndLen)
		if wordStart, _, ok := textbuf.WordAt(buf, splitAt); ok && wordStart < splitAt {
			// Don't split the word, back up to its start
			splitAt = wordStart
		}
		if splitAt <= contentStart {
			log.Debug("String fragment has no split point before column ", f.Width, ", leaving it as-is")
			break
		}

		overflow := buf.Text(splitAt, lineEnd)

		// String contents keep their whitespace, so unlike comment wrapping
		// nothing gets trimmed at the join. A cursor inside the overflow
		// follows it.
		cursorOffset := -1
		if cursor := buf.Cursor(); cursor >= splitAt && cursor <= lineEnd {
			cursorOffset = cursor - splitAt
		}

		buf.Delete(splitAt, lineEnd)
		buf.Insert(splitAt, delims.LineEnd)

		insertAt := splitAt + lineEndLen
		buf.Insert(insertAt, "\n"+delims.LineContinue+overflow)

		overflowPos := insertAt + 1 + continueLen
		if cursorOffset >= 0 {
			buf.SetCursor(overflowPos + cursorOffset)
		}

		// Cascade to the new fragment
		lineStart = insertAt + 1
		contentStart = lineStart + continueLen
	}

	return buf.Cursor()
}
