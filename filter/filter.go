package filter

import (
	"reflect"
	"strings"

	"github.com/spf13/cast"

	"github.com/Philipp01105/accesslog/core"
)

// Filter is the declarative allow-list that narrows which events get
// emitted. Each dimension accepts either a single value or a slice
// of values; nil leaves the dimension unconstrained. A nil *Filter
// allows everything.
type Filter struct {
	// Level accepts a core.Level, a level name string ("INFO",
	// "warn", ...), or a slice of either.
	Level any
	// Status accepts an int status code or a slice of ints.
	Status any
	// Method accepts a method name string or a slice of strings.
	// Matching is case-insensitive.
	Method any
}

// Rules is the compiled form of a Filter: each configured dimension
// normalized into a set lookup. Rules are immutable after Compile
// and safe for unsynchronized concurrent use. A nil *Rules allows
// everything.
//
// For each dimension a nil set means "unconstrained" while a non-nil
// empty set means "matches nothing". The empty set arises two ways,
// both deliberate: the dimension was configured with an empty slice,
// or one of its values could not be coerced. Someone who wrote a
// constraint asked for one; widening a broken constraint to "allow
// everything" would invert their intent, so malformed input fails
// closed on that dimension only.
type Rules struct {
	levels   map[core.Level]struct{}
	statuses map[int]struct{}
	methods  map[string]struct{}
}

// Compile normalizes the filter's loosely typed dimensions into
// Rules. It never fails; see Rules for how malformed values behave.
func (f *Filter) Compile() *Rules {
	if f == nil {
		return nil
	}
	r := &Rules{}
	if f.Level != nil {
		r.levels = levelSet(f.Level)
	}
	if f.Status != nil {
		r.statuses = statusSet(f.Status)
	}
	if f.Method != nil {
		r.methods = methodSet(f.Method)
	}
	return r
}

// Allow reports whether the event passes every configured dimension.
// Dimensions are independent; a single mismatch denies the event.
func (r *Rules) Allow(ev *core.Event) bool {
	if r == nil {
		return true
	}
	if r.levels != nil {
		if _, ok := r.levels[ev.Level]; !ok {
			return false
		}
	}
	if r.statuses != nil {
		if _, ok := r.statuses[ev.Status]; !ok {
			return false
		}
	}
	if r.methods != nil {
		if _, ok := r.methods[strings.ToUpper(ev.Method)]; !ok {
			return false
		}
	}
	return true
}

// values flattens a scalar-or-slice config value into a []any.
func values(v any) []any {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = rv.Index(i).Interface()
		}
		return out
	}
	return []any{v}
}

func levelSet(v any) map[core.Level]struct{} {
	set := make(map[core.Level]struct{})
	for _, item := range values(v) {
		if lv, ok := item.(core.Level); ok {
			set[lv] = struct{}{}
			continue
		}
		s, err := cast.ToStringE(item)
		if err != nil {
			return map[core.Level]struct{}{}
		}
		lv, err := core.ParseLevel(s)
		if err != nil {
			return map[core.Level]struct{}{}
		}
		set[lv] = struct{}{}
	}
	return set
}

func statusSet(v any) map[int]struct{} {
	set := make(map[int]struct{})
	for _, item := range values(v) {
		n, err := cast.ToIntE(item)
		if err != nil {
			return map[int]struct{}{}
		}
		set[n] = struct{}{}
	}
	return set
}

func methodSet(v any) map[string]struct{} {
	set := make(map[string]struct{})
	for _, item := range values(v) {
		s, err := cast.ToStringE(item)
		if err != nil {
			return map[string]struct{}{}
		}
		set[strings.ToUpper(s)] = struct{}{}
	}
	return set
}
