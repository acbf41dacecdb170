package internal

import (
	"unicode"

	"github.com/walles/refill/internal/textbuf"
)

// contentStartAfter returns the position of the comment's first content
// character after the delimiter. Everything up to the first letter or digit
// counts as spacing, so bullet markers like "- " or "* " are included and
// continuation lines line up under list items. Returns lineEnd if the line
// has no content at all.
func contentStartAfter(buf *textbuf.Buffer, from int, lineEnd int) int {
	for pos := from; pos < lineEnd; pos++ {
		char := buf.RuneAt(pos)
		if unicode.IsLetter(char) || unicode.IsDigit(char) {
			return pos
		}
	}
	return lineEnd
}

// contentIndentAfter measures the spacing between a comment delimiter and the
// comment's first content character, in display columns so a tab counts for
// the distance it spans.
func contentIndentAfter(buf *textbuf.Buffer, from int, lineEnd int) int {
	contentStart := contentStartAfter(buf, from, lineEnd)
	return textbuf.ColumnAt(buf, contentStart) - textbuf.ColumnAt(buf, from)
}
