// Package formatter turns a format string into rendered access-log
// lines.
//
// A format string is compiled once, at startup, into a Template: an
// ordered sequence of literal fragments and placeholders. The eight
// recognized placeholders are {now}, {duration}, {level}, {method},
// {pathname}, {status}, {message} and {ip}. Compile rejects unknown
// names and unbalanced braces with a descriptive error so a broken
// format never reaches the render path.
//
// Render substitutes one event into the compiled template. The
// {level}, {method} and {status} tokens are wrapped in ANSI colors
// from static lookup tables (severity-keyed for level, method-keyed
// for method, status-bracket-keyed for status) unless styling is
// disabled via Config.NoColor. {duration} renders as whole
// milliseconds with an "ms" suffix, {now} as a fixed
// locale-independent timestamp, and {ip} as the captured address or
// the literal text "null" when none was captured.
//
// Templates are immutable and safe for unbounded concurrent Render
// calls. Rendering uses a pooled bytes.Buffer and Append-style
// conversions (time.AppendFormat, strconv.AppendInt) to stay
// allocation-bounded per call.
package formatter
