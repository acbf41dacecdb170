package internal

import (
	"strings"
	"sync"
)

// LogWriter collects log lines in memory so they can be dumped to stderr on
// exit. Printing them as they happen would interleave with the reflowed text
// going to stdout.
type LogWriter struct {
	lock   sync.Mutex
	buffer strings.Builder
}

func (lw *LogWriter) Write(p []byte) (n int, err error) {
	lw.lock.Lock()
	defer lw.lock.Unlock()

	return lw.buffer.Write(p)
}

func (lw *LogWriter) String() string {
	lw.lock.Lock()
	defer lw.lock.Unlock()

	return lw.buffer.String()
}

// Empty reports whether anything has been logged at all.
func (lw *LogWriter) Empty() bool {
	lw.lock.Lock()
	defer lw.lock.Unlock()

	return lw.buffer.Len() == 0
}
