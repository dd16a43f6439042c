// Package filter decides which access-log events are emitted.
//
// A Filter narrows emission along three independent dimensions:
// severity level, status code, and request method. Each dimension is
// an optional allow-set; a dimension left nil imposes no constraint,
// and a nil Filter as a whole allows every event. Dimension values
// are loosely typed so that configuration can pass a scalar or a
// slice interchangeably — Compile normalizes them once, at startup,
// into typed sets via spf13/cast.
//
// Evaluation (Rules.Allow) is a pure function: set membership per
// configured dimension, ANDed together. It never errors. Values that
// cannot be coerced make their dimension match nothing rather than
// aborting evaluation; the trade-offs are documented on Rules.
package filter
