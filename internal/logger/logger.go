// Package logger writes structured debug logs to a file. The terminal belongs
// to the UI, so nothing is ever logged to stdout or stderr once it starts.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
)

// DefaultLogPath is used when Init is never called.
const DefaultLogPath = "/tmp/detectaive-debug.log"

var (
	mu       sync.Mutex
	base     *slog.Logger
	levelVar = new(slog.LevelVar)
	logFile  *os.File
	initDone bool
)

// SetDebug switches between debug and info level.
func SetDebug(enabled bool) {
	if enabled {
		levelVar.Set(slog.LevelDebug)
	} else {
		levelVar.Set(slog.LevelInfo)
	}
}

// Init opens path for appending and routes all loggers to it.
// Calling Init again after a successful call is a no-op.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()

	if initDone {
		return nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	logFile = f
	setWriter(f)
	base.Info("Logger initialized", "path", path)
	return nil
}

// InitWriter routes all loggers to w. Used by tests.
func InitWriter(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	setWriter(w)
}

func setWriter(w io.Writer) {
	base = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: levelVar}))
	initDone = true
}

func ensureInit() {
	if initDone {
		return
	}
	f, err := os.OpenFile(DefaultLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		// No file, no logs.
		setWriter(io.Discard)
		return
	}
	logFile = f
	setWriter(f)
}

// ComponentLogger returns a logger with the component attribute pre-attached.
//
//	log := logger.ComponentLogger("app")
//	log.Debug("theme toggled", "theme", "light")
func ComponentLogger(component string) *slog.Logger {
	mu.Lock()
	defer mu.Unlock()

	ensureInit()
	return base.With(slog.String("component", component))
}

// Close closes the log file, if one is open.
func Close() {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}

// Reset drops all state so Init can run again. For tests.
func Reset() {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	base = nil
	initDone = false
	levelVar = new(slog.LevelVar)
}
