// Package middleware integrates the access logger with net/http.
//
// Wrap intercepts each request, captures the start time before the
// wrapped handler runs and the status code after, then hands the
// completed request to the logger. The client-address candidate is
// taken from the X-Forwarded-For or X-Real-Ip header; when neither
// is present no candidate is supplied, which the renderer shows as
// the literal text "null".
package middleware

import (
	"net/http"
	"strings"

	"github.com/Philipp01105/accesslog/logger"
)

// Wrap returns an http.Handler that logs every completed request
// through l.
func Wrap(l *logger.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req := l.Start()
		sw := &statusWriter{ResponseWriter: w}
		next.ServeHTTP(sw, r)

		status := sw.status
		if status == 0 {
			// Handler never wrote anything; net/http sends 200.
			status = http.StatusOK
		}
		l.Complete(req, logger.Completion{
			Method:     r.Method,
			Pathname:   r.URL.Path,
			Status:     status,
			Message:    http.StatusText(status),
			ClientAddr: clientAddr(r),
		})
	})
}

// statusWriter records the status code written by the wrapped
// handler.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	if w.status == 0 {
		w.status = code
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	return w.ResponseWriter.Write(b)
}

// clientAddr extracts the forwarded client address candidate, or nil
// when no forwarding header is present. X-Forwarded-For may carry a
// proxy chain; the first hop is the client.
func clientAddr(r *http.Request) *string {
	if v := r.Header.Get("X-Forwarded-For"); v != "" {
		addr := strings.TrimSpace(strings.SplitN(v, ",", 2)[0])
		if addr != "" {
			return &addr
		}
	}
	if v := r.Header.Get("X-Real-Ip"); v != "" {
		return &v
	}
	return nil
}
