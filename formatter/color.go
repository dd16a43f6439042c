package formatter

import "github.com/Philipp01105/accesslog/core"

// ANSI SGR sequences used for terminal styling.
const (
	ansiReset   = "\x1b[0m"
	ansiRed     = "\x1b[31m"
	ansiGreen   = "\x1b[32m"
	ansiYellow  = "\x1b[33m"
	ansiBlue    = "\x1b[34m"
	ansiMagenta = "\x1b[35m"
	ansiCyan    = "\x1b[36m"
	ansiWhite   = "\x1b[37m"
)

// levelColors maps each severity to its terminal color. The table is
// static and read-only; it is indexed by core.Level directly.
var levelColors = [...]string{
	core.InfoLevel:  ansiGreen,
	core.WarnLevel:  ansiYellow,
	core.ErrorLevel: ansiRed,
}

// methodColors gives each common request method a distinct color so
// methods stand apart visually in a stream of lines.
var methodColors = map[string]string{
	"GET":     ansiBlue,
	"POST":    ansiCyan,
	"PUT":     ansiYellow,
	"PATCH":   ansiMagenta,
	"DELETE":  ansiRed,
	"HEAD":    ansiGreen,
	"OPTIONS": ansiWhite,
}

func levelColor(l core.Level) string {
	if int(l) < 0 || int(l) >= len(levelColors) {
		return ansiWhite
	}
	return levelColors[l]
}

func methodColor(m string) string {
	if c, ok := methodColors[m]; ok {
		return c
	}
	return ansiWhite
}

// statusColor picks the color by status bracket: 2xx/3xx green,
// 4xx yellow, 5xx red. Same brackets as the severity classification.
func statusColor(status int) string {
	switch {
	case status >= 500:
		return ansiRed
	case status >= 400:
		return ansiYellow
	default:
		return ansiGreen
	}
}
