package handler

import (
	"io"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"
)

// ConsoleHandler writes access-log lines to a terminal or any
// io.Writer. In sync mode every Handle call is one locked Write; in
// async mode lines are queued to a bounded channel and written by a
// background goroutine, so a slow terminal never stalls request
// handling. A full queue drops the newest line - access logs are
// best-effort and must never block the server.
type ConsoleHandler struct {
	writer       io.Writer
	async        bool
	queue        chan string
	wg           sync.WaitGroup
	closed       chan struct{}
	mu           sync.Mutex
	stats        *Stats
	drainTimeout time.Duration
	diag         *zap.SugaredLogger
}

// ConsoleConfig holds configuration for console handler
type ConsoleConfig struct {
	// Writer to write to (default: os.Stdout)
	Writer io.Writer
	// Async enables asynchronous writing (default: false)
	Async bool
	// BufferSize is the size of the async queue (default: 1000)
	BufferSize int
	// DrainTimeout is the timeout for draining the queue on Close (default: 5s)
	DrainTimeout time.Duration
	// Diag receives the handler's own operational errors (dropped
	// lines on close, failed writes); nil means silent
	Diag *zap.SugaredLogger
}

// NewConsoleHandler creates a new console handler
func NewConsoleHandler(cfg ConsoleConfig) *ConsoleHandler {
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = 1000
	}
	if cfg.DrainTimeout == 0 {
		cfg.DrainTimeout = 5 * time.Second
	}

	h := &ConsoleHandler{
		writer:       cfg.Writer,
		async:        cfg.Async,
		closed:       make(chan struct{}),
		stats:        NewStats(),
		drainTimeout: cfg.DrainTimeout,
		diag:         cfg.Diag,
	}

	if h.async {
		h.queue = make(chan string, cfg.BufferSize)
		h.wg.Add(1)
		go h.process()
	}

	return h
}

// Handle emits one line
func (h *ConsoleHandler) Handle(line string) error {
	if !h.async {
		return h.write(line)
	}

	select {
	case h.queue <- line:
		return nil
	default:
		// Queue full - drop this line
		h.stats.IncrementDropped()
		return nil
	}
}

// write performs one locked Write call per line so concurrent lines
// never interleave
func (h *ConsoleHandler) write(line string) error {
	buf := make([]byte, 0, len(line)+1)
	buf = append(buf, line...)
	buf = append(buf, '\n')

	h.mu.Lock()
	_, err := h.writer.Write(buf)
	h.mu.Unlock()

	if err != nil {
		h.stats.IncrementWriteErrors()
		if h.diag != nil {
			h.diag.Errorw("access log write failed", "error", err)
		}
		return err
	}
	h.stats.IncrementProcessed()
	return nil
}

// process handles async writing
func (h *ConsoleHandler) process() {
	defer h.wg.Done()

	for {
		select {
		case line := <-h.queue:
			h.write(line) //nolint:errcheck // counted in stats, reported via diag
		case <-h.closed:
			// Drain remaining lines with timeout
			deadline := time.After(h.drainTimeout)
			for {
				select {
				case line := <-h.queue:
					h.write(line) //nolint:errcheck
				case <-deadline:
					if n := len(h.queue); n > 0 && h.diag != nil {
						h.diag.Warnw("access log drain timed out", "pending", n)
					}
					return
				default:
					// Queue empty
					return
				}
			}
		}
	}
}

// Stats returns a snapshot of the current statistics
func (h *ConsoleHandler) Stats() Snapshot {
	return h.stats.GetSnapshot()
}

// Close closes the handler
func (h *ConsoleHandler) Close() error {
	select {
	case <-h.closed:
		return nil // Already closed
	default:
	}

	if h.async {
		close(h.closed)
		h.wg.Wait()
	}
	return nil
}
