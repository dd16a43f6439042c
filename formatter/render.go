package formatter

import (
	"bytes"
	"strconv"

	"github.com/Philipp01105/accesslog/core"
)

// Render substitutes the event into the template and returns the
// final line, without a trailing newline. Rendering is pure: it
// mutates neither the template nor the event, and it never fails -
// the only optional field (ClientAddr) degrades to the literal text
// "null".
func (t *Template) Render(ev *core.Event) string {
	buf := getBuffer()
	defer putBuffer(buf)

	t.renderToBuffer(ev, buf)
	return buf.String()
}

// renderToBuffer writes the rendered segments, in order, into the buffer
func (t *Template) renderToBuffer(ev *core.Event, buf *bytes.Buffer) {
	for _, seg := range t.segments {
		if !seg.isPH {
			buf.WriteString(seg.lit)
			continue
		}
		switch seg.ph {
		case phNow:
			buf.Write(ev.Time.AppendFormat(buf.AvailableBuffer(), t.timeLayout))
		case phDuration:
			buf.Write(strconv.AppendInt(buf.AvailableBuffer(), ev.Duration.Milliseconds(), 10))
			buf.WriteString("ms")
		case phLevel:
			t.writeStyled(buf, levelColor(ev.Level), ev.Level.String())
		case phMethod:
			t.writeStyled(buf, methodColor(ev.Method), ev.Method)
		case phPathname:
			buf.WriteString(ev.Pathname)
		case phStatus:
			if t.noColor {
				buf.Write(strconv.AppendInt(buf.AvailableBuffer(), int64(ev.Status), 10))
			} else {
				buf.WriteString(statusColor(ev.Status))
				buf.Write(strconv.AppendInt(buf.AvailableBuffer(), int64(ev.Status), 10))
				buf.WriteString(ansiReset)
			}
		case phMessage:
			buf.WriteString(ev.Message)
		case phIP:
			if ev.ClientAddr != nil {
				buf.WriteString(*ev.ClientAddr)
			} else {
				buf.WriteString("null")
			}
		}
	}
}

// writeStyled writes s wrapped in the given color, or bare when
// styling is disabled.
func (t *Template) writeStyled(buf *bytes.Buffer, color, s string) {
	if t.noColor {
		buf.WriteString(s)
		return
	}
	buf.WriteString(color)
	buf.WriteString(s)
	buf.WriteString(ansiReset)
}
