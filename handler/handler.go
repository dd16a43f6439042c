package handler

// Handler is the sink for rendered access-log lines. Each call to
// Handle receives one complete, self-contained line (no trailing
// newline); the handler owns serializing concurrent writers so
// lines never interleave.
type Handler interface {
	// Handle emits one rendered line
	Handle(line string) error

	// Close closes the handler and releases resources
	Close() error
}
