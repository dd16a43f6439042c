package logger

import (
	"sync"
)

var (
	defaultLogger *Logger
	defaultMu     sync.RWMutex
)

func init() {
	// The zero Config compiles DefaultFormat, which is known good.
	defaultLogger, _ = New(Config{})
}

// Default returns the default logger
func Default() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault sets the default logger
func SetDefault(l *Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// Package-level convenience functions using the default logger

// Start captures a request start time using the default logger
func Start() Request {
	return Default().Start()
}

// Complete emits a completed request through the default logger
func Complete(req Request, c Completion) {
	Default().Complete(req, c)
}
