// Package logger is the public API of accesslog. Most users only
// need to import this package.
//
// A Logger is immutable after construction - the compiled template,
// the compiled filter rules, the handler, and all flags are set once
// via New and never modified. This makes Logger inherently safe for
// concurrent use without any locking on the request path.
//
// The per-request protocol is two calls against a request-owned
// context value:
//
//	req := log.Start()            // before handling
//	...                           // handle the request
//	log.Complete(req, logger.Completion{
//	    Method:   "GET",
//	    Pathname: "/users",
//	    Status:   200,
//	})
//
// Complete assembles the event, derives its severity from the status
// code, evaluates the optional filter, renders the configured format
// and hands exactly one complete line to the handler - or nothing at
// all when the filter denies. It never returns an error and never
// blocks: a misbehaving sink must not slow down or fail request
// handling.
//
// The package initializes a default Logger (default format, colors
// on, sync console to stdout) in init(); the package-level Start and
// Complete delegate to it, so simple programs can log without any
// setup.
package logger
