package internal

import (
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/walles/refill/internal/textbuf"
)

// Width we aim for when nothing else is configured
const DefaultWidth = 80

// Filler reflows over-width comment lines. Width is the maximum permitted
// display column, Delimiter the marker starting a line comment ("//", "#").
type Filler struct {
	Width     int
	Delimiter string
}

// WrapComment reflows the line containing pos so that it fits within Width,
// moving overflowing words onto the following comment line, or onto a newly
// created one. If moving text makes the continuation line over-width too, the
// process cascades downwards.
//
// pos is the host's cursor position. The returned position is where that
// cursor ended up; positions inside moved text follow the text to its new
// location. The buffer's own cursor is left at the returned position.
//
// Inapplicable lines are left unchanged: lines already within width, lines
// without the comment delimiter, and lines whose overflow starts inside their
// only word (there is no way to wrap those without splitting the word).
func (f Filler) WrapComment(buf *textbuf.Buffer, pos int) int {
	if f.Width <= 0 {
		panic(fmt.Errorf("width must be positive, got %d", f.Width))
	}

	buf.SetCursor(pos)
	pos = buf.Cursor()
	delimLen := len([]rune(f.Delimiter))

	lineStart := buf.LineStart(pos)

	// The cascade is an iterative walk down the buffer with a defensive cap,
	// so a pathological input can neither grow the stack nor loop forever.
	maxPasses := 2*buf.LineCount() + 32
	for pass := 0; pass < maxPasses; pass++ {
		lineEnd := buf.LineEnd(lineStart)
		if textbuf.ColumnAt(buf, lineEnd) <= f.Width {
			break
		}

		delimPos := buf.IndexIn(lineStart, lineEnd, f.Delimiter)
		if delimPos < 0 {
			// Plain text overflow, not ours to wrap
			break
		}
		delimEnd := delimPos + delimLen
		delimIndent := textbuf.ColumnAt(buf, delimPos)
		contentStart := contentStartAfter(buf, delimEnd, lineEnd)
		contentIndent := contentIndentAfter(buf, delimEnd, lineEnd)

		removeFrom, ok := f.wrapBoundary(buf, lineStart, contentStart)
		if !ok {
			log.Debug("No wrap point before column ", f.Width, ", leaving line as-is")
			break
		}

		overflow := buf.Text(removeFrom, lineEnd)

		// A cursor inside the overflow follows it to its new home
		cursorOffset := -1
		if cursor := buf.Cursor(); cursor >= removeFrom && cursor <= lineEnd {
			cursorOffset = cursor - removeFrom
		}

		buf.Delete(removeFrom, lineEnd)

		if removeFrom < buf.Len() {
			// There is a following line, maybe we can merge into it
			nextStart := removeFrom + 1
			nextEnd := buf.LineEnd(nextStart)
			nextDelim := buf.IndexIn(nextStart, nextEnd, f.Delimiter)
			if nextDelim >= 0 {
				nextDelimEnd := nextDelim + delimLen
				nextIndent := contentIndentAfter(buf, nextDelimEnd, nextEnd)
				if pad := contentIndent - nextIndent; pad > 0 {
					// Make the continuation's content line up with ours
					buf.Insert(contentStartAfter(buf, nextDelimEnd, nextEnd), strings.Repeat(" ", pad))
				}
				buf.Insert(nextDelimEnd, overflow)
				if cursorOffset >= 0 {
					buf.SetCursor(nextDelimEnd + cursorOffset)
				}

				lineStart = nextStart
				continue
			}
		}

		// Nothing to merge into, create a continuation line. If the buffer
		// ends without a line terminator, add one first.
		insertAt := removeFrom + 1
		if removeFrom >= buf.Len() {
			buf.Insert(buf.Len(), "\n")
			insertAt = buf.Len()
		}

		content := strings.TrimLeft(overflow, " \t")
		newLine := strings.Repeat(" ", delimIndent) + f.Delimiter +
			strings.Repeat(" ", contentIndent) + content
		buf.Insert(insertAt, newLine+"\n")

		if cursorOffset >= 0 {
			trimmed := len([]rune(overflow)) - len([]rune(content))
			if cursorOffset < trimmed {
				cursorOffset = trimmed
			}
			contentPos := insertAt + delimIndent + delimLen + contentIndent
			buf.SetCursor(contentPos + cursorOffset - trimmed)
		}

		lineStart = insertAt
	}

	return buf.Cursor()
}

// wrapBoundary locates where the overflow starts: the start of the word
// straddling or following the width column, backed up one rune when a space
// precedes it. ok is false when wrapping there would split the line's first
// content word, or when there is no word at all past the width column.
func (f Filler) wrapBoundary(buf *textbuf.Buffer, lineStart int, contentStart int) (boundary int, ok bool) {
	overflowPos := textbuf.PosAtColumn(buf, lineStart, f.Width)
	wordStart, _, found := textbuf.WordAt(buf, overflowPos)
	if !found || wordStart <= contentStart {
		return 0, false
	}

	boundary = wordStart
	if boundary > lineStart && buf.RuneAt(boundary-1) == ' ' {
		boundary--
	}
	return boundary, true
}

// WrapAll runs WrapComment over every line of the buffer, top to bottom.
// Continuation lines created by one wrap are revisited, but come out within
// width already. Returns the number of lines that got rewrapped.
func (f Filler) WrapAll(buf *textbuf.Buffer) int {
	wrapped := 0
	lineStart := 0
	for {
		// A merge can change the buffer without changing its length, so the
		// comparison has to be on contents
		before := buf.String()
		f.WrapComment(buf, lineStart)
		if buf.String() != before {
			wrapped++
		}

		lineEnd := buf.LineEnd(lineStart)
		if lineEnd >= buf.Len() {
			break
		}
		lineStart = lineEnd + 1
	}
	return wrapped
}
