//go:build !linux && !windows

package capture

import (
	"errors"
	"log/slog"
	"runtime"

	"github.com/termkey/termkey/internal/log"
)

// Open fails on platforms without a capture backend.
func Open(logger *slog.Logger, raw log.RawLogger, paths ...string) (Source, error) {
	return nil, errors.New("input capture is not supported on " + runtime.GOOS)
}
