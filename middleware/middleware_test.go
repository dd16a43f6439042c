package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Philipp01105/accesslog/filter"
	"github.com/Philipp01105/accesslog/logger"
)

type collectHandler struct {
	lines []string
}

func (h *collectHandler) Handle(line string) error {
	h.lines = append(h.lines, line)
	return nil
}

func (h *collectHandler) Close() error { return nil }

func newLogger(t *testing.T, cfg logger.Config, sink *collectHandler) *logger.Logger {
	t.Helper()
	cfg.Handler = sink
	cfg.NoColor = true
	l, err := logger.New(cfg)
	require.NoError(t, err)
	return l
}

func serve(h http.Handler, r *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	return w
}

func TestWrap_LogsCompletedRequest(t *testing.T) {
	sink := &collectHandler{}
	l := newLogger(t, logger.Config{Format: "{method} {pathname} {status}"}, sink)

	h := Wrap(l, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	w := serve(h, httptest.NewRequest("GET", "/missing", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	require.Len(t, sink.lines, 1)
	assert.Equal(t, "GET /missing 404", sink.lines[0])
}

func TestWrap_ImplicitOK(t *testing.T) {
	sink := &collectHandler{}
	l := newLogger(t, logger.Config{Format: "{status}"}, sink)

	// Handler writes a body without an explicit WriteHeader.
	h := Wrap(l, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("hi")) //nolint:errcheck
	}))
	serve(h, httptest.NewRequest("GET", "/", nil))

	require.Len(t, sink.lines, 1)
	assert.Equal(t, "200", sink.lines[0])
}

func TestWrap_EmptyHandlerLogs200(t *testing.T) {
	sink := &collectHandler{}
	l := newLogger(t, logger.Config{Format: "{status} {message}"}, sink)

	h := Wrap(l, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	serve(h, httptest.NewRequest("GET", "/", nil))

	require.Len(t, sink.lines, 1)
	assert.Equal(t, "200 OK", sink.lines[0])
}

func TestWrap_ForwardedFor(t *testing.T) {
	sink := &collectHandler{}
	l := newLogger(t, logger.Config{IP: true, Format: "{ip}"}, sink)

	h := Wrap(l, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	r := httptest.NewRequest("GET", "/", nil)
	r.Header.Set("X-Forwarded-For", "192.168.1.1, 10.0.0.2")
	serve(h, r)

	require.Len(t, sink.lines, 1)
	assert.Equal(t, "192.168.1.1", sink.lines[0])
}

func TestWrap_RealIPFallback(t *testing.T) {
	sink := &collectHandler{}
	l := newLogger(t, logger.Config{IP: true, Format: "{ip}"}, sink)

	h := Wrap(l, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	r := httptest.NewRequest("GET", "/", nil)
	r.Header.Set("X-Real-Ip", "10.1.2.3")
	serve(h, r)

	require.Len(t, sink.lines, 1)
	assert.Equal(t, "10.1.2.3", sink.lines[0])
}

func TestWrap_NoForwardingHeaderRendersNull(t *testing.T) {
	sink := &collectHandler{}
	l := newLogger(t, logger.Config{IP: true, Format: "{ip}"}, sink)

	h := Wrap(l, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	serve(h, httptest.NewRequest("GET", "/", nil))

	require.Len(t, sink.lines, 1)
	assert.Equal(t, "null", sink.lines[0])
}

func TestWrap_FilteredRequestNotLogged(t *testing.T) {
	sink := &collectHandler{}
	l := newLogger(t, logger.Config{
		Format: "{method}",
		Filter: &filter.Filter{Method: "GET"},
	}, sink)

	h := Wrap(l, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	serve(h, httptest.NewRequest("POST", "/", nil))
	assert.Empty(t, sink.lines)

	serve(h, httptest.NewRequest("GET", "/", nil))
	assert.Len(t, sink.lines, 1)
}
