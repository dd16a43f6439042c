package core

import (
	"strings"
	"time"
)

// Event is the normalized record of one completed request. It is
// built once per request, never mutated afterwards, and discarded
// after its rendered line has been emitted.
type Event struct {
	Time     time.Time
	Duration time.Duration
	Method   string
	Pathname string
	Status   int
	Message  string
	// ClientAddr is nil when address capture is disabled or no
	// forwarding header was present upstream. nil is a distinct
	// state from a pointer to an empty string.
	ClientAddr *string
	// Level is derived from Status via LevelOf; it is never set
	// independently of the status code.
	Level Level
}

// NewEvent builds an Event from the raw per-request inputs. The
// duration is end-start; a negative delta is a measurement anomaly
// and clamps to zero. The method is normalized to uppercase, the
// pathname is kept verbatim.
func NewEvent(start, end time.Time, method, pathname string, status int, message string, clientAddr *string) Event {
	var d time.Duration
	if !start.IsZero() {
		d = end.Sub(start)
		if d < 0 {
			d = 0
		}
	}
	return Event{
		Time:       end,
		Duration:   d,
		Method:     strings.ToUpper(method),
		Pathname:   pathname,
		Status:     status,
		Message:    message,
		ClientAddr: clientAddr,
		Level:      LevelOf(status),
	}
}
