package timescale

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidInstant is returned by ParseInstant for unparseable input.
var ErrInvalidInstant = errors.New("invalid instant")

// jdPrefix marks a raw Julian Date, e.g. "jd:2451545.0".
const jdPrefix = "jd:"

// ParseInstant resolves s to a UTC instant and adds offset.
//
// Accepted forms: "" or "now" (the supplied now), RFC3339 with optional
// fractional seconds, and "jd:<float>".
func ParseInstant(s string, now time.Time, offset time.Duration) (time.Time, error) {
	s = strings.TrimSpace(s)

	var t time.Time
	switch {
	case s == "" || strings.EqualFold(s, "now"):
		t = now
	case strings.HasPrefix(strings.ToLower(s), jdPrefix):
		v, err := strconv.ParseFloat(s[len(jdPrefix):], 64)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %q: %v", ErrInvalidInstant, s, err)
		}
		jd := JulianDate(v)
		if err := jd.Validate(); err != nil {
			return time.Time{}, fmt.Errorf("%w: %q: %v", ErrInvalidInstant, s, err)
		}
		t = jd.Time()
	default:
		parsed, err := time.Parse(time.RFC3339Nano, s)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %q: %v", ErrInvalidInstant, s, err)
		}
		t = parsed
	}

	return t.Add(offset).UTC(), nil
}
