// Package core defines the shared types used across the accesslog
// library.
//
// It provides the Event type that represents one completed request,
// and the Level type for the three-way severity classification
// derived from the HTTP status code (sub-400 INFO, 4xx WARN, 5xx
// ERROR). The classification is a pure function of the status code:
// an Event's Level is always consistent with its Status.
//
// Event fields are plain values except ClientAddr, which is a
// *string so that "no address was captured" stays distinguishable
// from an empty address string. Downstream rendering relies on that
// distinction.
//
// The coarse clock is an opt-in optimization for very hot servers:
// a background goroutine caches time.Now() every 500µs and CoarseNow
// returns the cached value without a syscall. It only ever feeds the
// event timestamp, never duration measurement.
package core
