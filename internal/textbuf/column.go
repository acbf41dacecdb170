package textbuf

import (
	"github.com/rivo/uniseg"
)

// Tabs advance to the next multiple of this many columns.
const tabStop = 8

// How many display columns will this rune cover? Most runes cover one, but
// some like '午' will cover two. Tabs are handled by the caller since their
// width depends on where they start.
func runeWidth(char rune) int {
	return uniseg.StringWidth(string(char))
}

// ColumnAt returns the zero-based display column of pos within its line.
func ColumnAt(b *Buffer, pos int) int {
	column := 0
	for p := b.LineStart(pos); p < pos; p++ {
		char := b.RuneAt(p)
		if char == '\t' {
			column += tabStop - column%tabStop
			continue
		}
		column += runeWidth(char)
	}
	return column
}

// PosAtColumn returns the position of the rune on the line starting at
// lineStart whose column span covers the requested column. A wide rune or a
// tab covers every column it spans, not just its first one. If the line ends
// before the requested column the line end position is returned.
func PosAtColumn(b *Buffer, lineStart int, column int) int {
	lineEnd := b.LineEnd(lineStart)

	current := 0
	for pos := lineStart; pos < lineEnd; pos++ {
		char := b.RuneAt(pos)
		width := runeWidth(char)
		if char == '\t' {
			width = tabStop - current%tabStop
		}

		if current+width > column {
			return pos
		}
		current += width
	}

	return lineEnd
}
