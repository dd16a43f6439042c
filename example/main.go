// Demo server showing the access logger wired into net/http.
//
// Configuration comes from the environment (optionally via a .env
// file):
//
//	PORT        listen port (default 8080)
//	LOG_FORMAT  custom format string (default: built-in format)
//	LOG_IP      capture client addresses from forwarding headers
//	NO_COLOR    disable ANSI styling
package main

import (
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
	"go.uber.org/zap"

	"github.com/Philipp01105/accesslog/filter"
	"github.com/Philipp01105/accesslog/logger"
	"github.com/Philipp01105/accesslog/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		panic(err)
	}

	zl, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	diag := zl.Sugar()
	defer diag.Sync() //nolint:errcheck

	accessLog, err := logger.New(logger.Config{
		IP:      cast.ToBool(os.Getenv("LOG_IP")),
		Format:  os.Getenv("LOG_FORMAT"),
		NoColor: cast.ToBool(os.Getenv("NO_COLOR")),
		// Keep HEAD/OPTIONS probes out of the log.
		Filter: &filter.Filter{Method: []string{"GET", "POST", "PUT", "PATCH", "DELETE"}},
		Diag:   diag,
	})
	if err != nil {
		diag.Fatalw("access log configuration invalid", "error", err)
	}
	defer accessLog.Close() //nolint:errcheck

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("hello\n")) //nolint:errcheck
	})
	mux.HandleFunc("/teapot", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "short and stout", http.StatusTeapot)
	})
	mux.HandleFunc("/boom", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal error", http.StatusInternalServerError)
	})

	port := cast.ToString(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	diag.Infow("listening", "port", port)
	if err := http.ListenAndServe(":"+port, middleware.Wrap(accessLog, mux)); err != nil {
		diag.Fatalw("server stopped", "error", err)
	}
}
