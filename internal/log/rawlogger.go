package log

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// RawLogger records every intercepted input event before normalization,
// one line per event, with optional file output.
type RawLogger interface {
	Event(device string, kind string, code uint16, value int32)
}

// rawLogger implements RawLogger with thread-safe output. Capture backends
// log from their reader goroutines, so writes are serialized here.
type rawLogger struct {
	w  io.Writer
	mu sync.Mutex
}

// NewRaw creates a new RawLogger. If writer is nil, returns a no-op logger.
func NewRaw(w io.Writer) RawLogger {
	return &rawLogger{w: w}
}

// Event emits a single-line trace of a raw input event.
func (r *rawLogger) Event(device string, kind string, code uint16, value int32) {
	if r.w == nil {
		return
	}

	line := fmt.Sprintf("%s dev=%s kind=%s code=%d value=%d\n",
		time.Now().Format("2006/01/02 15:04:05.000"),
		device, kind, code, value)

	r.mu.Lock()
	_, _ = r.w.Write([]byte(line))
	r.mu.Unlock()
}
