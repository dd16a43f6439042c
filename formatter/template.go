package formatter

import (
	"fmt"
	"strings"
)

// DefaultFormat is the built-in format used when no custom format is
// configured.
const DefaultFormat = "{now} {level} {duration} {method} {pathname} {status} {message}"

// defaultTimeLayout renders {now} as a fixed, locale-independent
// timestamp.
const defaultTimeLayout = "2006-01-02 15:04:05"

// placeholder identifies one of the eight substitution tokens.
type placeholder uint8

const (
	phNow placeholder = iota
	phDuration
	phLevel
	phMethod
	phPathname
	phStatus
	phMessage
	phIP
)

var placeholders = map[string]placeholder{
	"now":      phNow,
	"duration": phDuration,
	"level":    phLevel,
	"method":   phMethod,
	"pathname": phPathname,
	"status":   phStatus,
	"message":  phMessage,
	"ip":       phIP,
}

// segment is one compiled piece of a format string: either a literal
// run of text or a placeholder to substitute at render time.
type segment struct {
	lit  string
	ph   placeholder
	isPH bool
}

// Config holds rendering options for a compiled template
type Config struct {
	// NoColor disables ANSI styling of the level, method and status
	// tokens
	NoColor bool
	// TimestampFormat overrides the {now} layout (empty selects the
	// fixed default layout)
	TimestampFormat string
}

// Template is the compiled form of a format string: an ordered
// sequence of literal and placeholder segments. A Template is
// immutable after Compile and safe for unsynchronized concurrent
// Render calls.
type Template struct {
	segments   []segment
	noColor    bool
	timeLayout string
}

// Compile parses a format string into a Template. It scans left to
// right, splitting on {name} pairs drawn from the fixed placeholder
// set. An unknown placeholder name or an unbalanced '{' is a
// configuration error: Compile fails immediately with an error that
// names the offending format so misconfiguration surfaces at
// startup, never at render time.
func Compile(format string, cfg Config) (*Template, error) {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = defaultTimeLayout
	}

	t := &Template{
		noColor:    cfg.NoColor,
		timeLayout: cfg.TimestampFormat,
	}

	rest := format
	for {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			if rest != "" {
				t.segments = append(t.segments, segment{lit: rest})
			}
			return t, nil
		}
		if open > 0 {
			t.segments = append(t.segments, segment{lit: rest[:open]})
		}
		rest = rest[open:]

		closing := strings.IndexByte(rest, '}')
		if closing < 0 {
			return nil, fmt.Errorf("log format %q: unbalanced '{'", format)
		}
		name := rest[1:closing]
		if strings.ContainsRune(name, '{') {
			return nil, fmt.Errorf("log format %q: unbalanced '{'", format)
		}
		ph, ok := placeholders[name]
		if !ok {
			return nil, fmt.Errorf("log format %q: unknown placeholder {%s}", format, name)
		}
		t.segments = append(t.segments, segment{ph: ph, isPH: true})
		rest = rest[closing+1:]
	}
}

// MustCompile is Compile for formats known at compile time; it
// panics on error.
func MustCompile(format string, cfg Config) *Template {
	t, err := Compile(format, cfg)
	if err != nil {
		panic(err)
	}
	return t
}
