package textbuf

import "unicode"

// Word runes are letters, digits and underscores. Everything else separates
// words.
func isWordRune(char rune) bool {
	return unicode.IsLetter(char) || unicode.IsDigit(char) || char == '_'
}

// WordAt returns the [start, end) bounds of the word containing pos. When pos
// is not on a word rune, the next word on the same line is returned instead.
// ok is false if there is no word between pos and the end of the line.
//
// Words never span lines.
func WordAt(b *Buffer, pos int) (start int, end int, ok bool) {
	lineEnd := b.LineEnd(pos)

	p := pos
	if p >= lineEnd || !isWordRune(b.RuneAt(p)) {
		// Not on a word, take the following one
		for p < lineEnd && !isWordRune(b.RuneAt(p)) {
			p++
		}
		if p >= lineEnd {
			return 0, 0, false
		}
	}

	lineStart := b.LineStart(pos)
	start = p
	for start > lineStart && isWordRune(b.RuneAt(start-1)) {
		start--
	}

	end = p
	for end < lineEnd && isWordRune(b.RuneAt(end)) {
		end++
	}

	return start, end, true
}
