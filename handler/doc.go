// Package handler provides the Handler interface and its built-in
// implementations for dispatching rendered access-log lines to their
// final destination.
//
// A Handler receives one complete line per emitted event and is
// responsible for serializing concurrent writers: ConsoleHandler
// performs exactly one locked Write call per line so lines from
// overlapping requests never interleave.
//
// ConsoleHandler supports synchronous and asynchronous operation. In
// async mode, lines are sent to a bounded channel and written by a
// background goroutine; when the queue is full the newest line is
// dropped rather than blocking the caller, because access logging is
// best-effort and must never delay request handling. Dropped,
// processed, and failed-write counts are tracked atomically in Stats
// and can be queried at runtime. Operational errors can optionally
// be reported through a zap.SugaredLogger.
//
// MultiHandler fans a single line out to multiple child handlers.
package handler
