package core

import (
	"errors"
	"strings"
)

// Level represents the severity of an access-log event
type Level int8

const (
	// InfoLevel for successful responses (status < 400)
	InfoLevel Level = iota
	// WarnLevel for client errors (400 <= status < 500)
	WarnLevel
	// ErrorLevel for server errors (status >= 500)
	ErrorLevel
)

// ErrUnknownLevel is returned by ParseLevel for unrecognized level names
var ErrUnknownLevel = errors.New("unknown level (known: INFO, WARN, ERROR)")

// String returns the string representation of the level
func (l Level) String() string {
	switch l {
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts a level name to a Level. Matching is
// case-insensitive.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(s) {
	case "INFO":
		return InfoLevel, nil
	case "WARN", "WARNING":
		return WarnLevel, nil
	case "ERROR":
		return ErrorLevel, nil
	default:
		return InfoLevel, ErrUnknownLevel
	}
}

// UnmarshalText implements encoding.TextUnmarshaler so Level can be
// decoded from config values.
func (l *Level) UnmarshalText(text []byte) error {
	lv, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = lv
	return nil
}

// LevelOf returns the level for an HTTP status code. The mapping is
// fixed: anything below 400 is informational, 4xx is a warning, 5xx
// (and above) is an error.
func LevelOf(status int) Level {
	switch {
	case status >= 500:
		return ErrorLevel
	case status >= 400:
		return WarnLevel
	default:
		return InfoLevel
	}
}
