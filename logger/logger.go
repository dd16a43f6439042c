package logger

import (
	"time"

	"go.uber.org/zap"

	"github.com/Philipp01105/accesslog/core"
	"github.com/Philipp01105/accesslog/filter"
	"github.com/Philipp01105/accesslog/formatter"
	"github.com/Philipp01105/accesslog/handler"
)

// Config holds the configuration surface of the access logger
type Config struct {
	// IP enables client-address capture (default: disabled). When
	// disabled, the {ip} token always renders as "null" regardless
	// of what the integration supplies.
	IP bool
	// Format is the log format string; empty selects
	// formatter.DefaultFormat
	Format string
	// Filter narrows which events are emitted; nil allows everything
	Filter *filter.Filter
	// NoColor disables ANSI styling in rendered lines
	NoColor bool
	// TimestampFormat overrides the {now} layout
	TimestampFormat string
	// Handler receives rendered lines (default: synchronous console
	// handler on stdout)
	Handler handler.Handler
	// CoarseClock timestamps events from the cached wall clock
	// instead of calling time.Now() per event. Durations always use
	// the precise monotonic clock.
	CoarseClock bool
	// Diag receives the logger's own operational errors; nil means
	// silent
	Diag *zap.SugaredLogger
}

// Logger runs the per-request pipeline: assemble, classify, filter,
// render, emit. It is immutable after New - the compiled template,
// the compiled filter rules, and the handler are set once and only
// ever read - so a single Logger is safe for any number of
// concurrent requests without locking.
type Logger struct {
	tpl     *formatter.Template
	rules   *filter.Rules
	handler handler.Handler
	ip      bool
	coarse  bool
	diag    *zap.SugaredLogger
}

// New creates a Logger from the given configuration. A malformed
// format string fails here, at startup, never at request time.
func New(cfg Config) (*Logger, error) {
	format := cfg.Format
	if format == "" {
		format = formatter.DefaultFormat
	}
	tpl, err := formatter.Compile(format, formatter.Config{
		NoColor:         cfg.NoColor,
		TimestampFormat: cfg.TimestampFormat,
	})
	if err != nil {
		return nil, err
	}

	h := cfg.Handler
	if h == nil {
		h = handler.NewConsoleHandler(handler.ConsoleConfig{Diag: cfg.Diag})
	}
	if cfg.CoarseClock {
		core.StartCoarseClock()
	}

	return &Logger{
		tpl:     tpl,
		rules:   cfg.Filter.Compile(),
		handler: h,
		ip:      cfg.IP,
		coarse:  cfg.CoarseClock,
		diag:    cfg.Diag,
	}, nil
}

// Request is the per-request context value capturing the start of
// one request. It is exclusively owned by the request it describes
// and is discarded after Complete.
type Request struct {
	start time.Time
}

// Start captures the request start time. time.Now carries the
// monotonic reading, so the later duration is immune to wall-clock
// adjustments.
func (l *Logger) Start() Request {
	return Request{start: time.Now()}
}

// Completion carries the observable outcome of one handled request
type Completion struct {
	Method   string
	Pathname string
	Status   int
	Message  string
	// ClientAddr is the candidate address extracted from a
	// forwarding header; nil when none was present
	ClientAddr *string
	// End overrides the completion time; zero means now
	End time.Time
}

// Complete runs one event through the pipeline: either nothing is
// written (denied by the filter) or exactly one fully rendered line
// is handed to the handler. It never fails and never blocks -
// logging is side-channel to request handling, so handler errors are
// swallowed (reported to Diag when configured, counted by the
// handler's stats otherwise).
func (l *Logger) Complete(req Request, c Completion) {
	end := c.End
	if end.IsZero() {
		end = time.Now()
	}
	addr := c.ClientAddr
	if !l.ip {
		addr = nil
	}

	ev := core.NewEvent(req.start, end, c.Method, c.Pathname, c.Status, c.Message, addr)
	if l.coarse {
		ev.Time = core.CoarseNow()
	}

	if !l.rules.Allow(&ev) {
		return
	}

	if err := l.handler.Handle(l.tpl.Render(&ev)); err != nil && l.diag != nil {
		l.diag.Errorw("access log emission failed", "error", err)
	}
}

// Close closes the underlying handler
func (l *Logger) Close() error {
	return l.handler.Close()
}
