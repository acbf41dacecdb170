package internal

import (
	"testing"

	"gotest.tools/v3/assert"

	"github.com/walles/refill/internal/textbuf"
)

func newTrigger(width int) *Trigger {
	return &Trigger{
		Filler:  Filler{Width: width, Delimiter: "//"},
		Enabled: true,
	}
}

func TestDisabledTriggerJustInserts(t *testing.T) {
	trigger := newTrigger(20)
	trigger.Enabled = false

	buffer := textbuf.New("// alpha bravo charlie delta")
	buffer.SetCursor(buffer.Len())
	trigger.Type(buffer, ' ')

	assert.Equal(t, buffer.String(), "// alpha bravo charlie delta ")
	assert.Equal(t, buffer.Cursor(), buffer.Len())
}

func TestTriggerAtLineEndWrapsFirst(t *testing.T) {
	trigger := newTrigger(20)

	buffer := textbuf.New("// alpha bravo charlie delta")
	buffer.SetCursor(buffer.Len())
	trigger.Type(buffer, ' ')

	// The wrap runs before the space goes in, so the space ends up after
	// "delta" on the continuation line
	assert.Equal(t, buffer.String(), "// alpha bravo\n// charlie delta \n")
	assert.Equal(t, buffer.Cursor(), 32)
}

func TestTriggerMidLineInsertsFirst(t *testing.T) {
	trigger := newTrigger(20)

	buffer := textbuf.New("// alpha bravo charlie delta")
	buffer.SetCursor(10)
	trigger.Type(buffer, 'x')

	assert.Equal(t, buffer.String(), "// alpha bxravo\n// charlie delta\n")

	// Typing position is undisturbed, right after the 'x'
	assert.Equal(t, buffer.Cursor(), 11)
}

func TestTriggerOnShortLine(t *testing.T) {
	trigger := newTrigger(20)

	buffer := textbuf.New("// hi")
	buffer.SetCursor(buffer.Len())
	trigger.Type(buffer, ' ')

	assert.Equal(t, buffer.String(), "// hi ")
	assert.Equal(t, buffer.Cursor(), 6)
}
