package handler

// MultiHandler fans one rendered line out to multiple handlers
type MultiHandler struct {
	handlers []Handler
}

// NewMultiHandler creates a new multi-handler
func NewMultiHandler(handlers ...Handler) *MultiHandler {
	return &MultiHandler{handlers: handlers}
}

// Handle emits the line to all handlers. Every handler sees the
// line even when an earlier one fails; the last error wins.
func (h *MultiHandler) Handle(line string) error {
	var lastErr error
	for _, handler := range h.handlers {
		if err := handler.Handle(line); err != nil {
			lastErr = err
		}
	}
	return lastErr
}

// Close closes all handlers
func (h *MultiHandler) Close() error {
	var lastErr error
	for _, handler := range h.handlers {
		if err := handler.Close(); err != nil {
			lastErr = err
		}
	}
	return lastErr
}
