package classwatch

import (
	"fmt"
	"strings"
	"time"
)

// DefaultTimeLayout is the reference layout for 12-hour clock times with a
// meridiem suffix, as they appear in the openings table (e.g. "3:15pm").
const DefaultTimeLayout = "3:04pm"

// TimeOfDay is a clock time with minute precision. It carries no date or
// timezone component; only hour:minute semantics matter for filtering.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// Minutes returns the time as minutes since midnight.
func (t TimeOfDay) Minutes() int {
	return t.Hour*60 + t.Minute
}

// Before reports whether t is earlier in the day than other.
func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t.Minutes() < other.Minutes()
}

// After reports whether t is later in the day than other.
func (t TimeOfDay) After(other TimeOfDay) bool {
	return t.Minutes() > other.Minutes()
}

// String returns the time in 24-hour "HH:MM" form for diagnostics.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// ParseTimeOfDay parses a single clock time using the given reference
// layout. Input is trimmed and lower-cased first, so "3:15PM" parses under
// the default layout. Returns an EFORMAT error on mismatch.
func ParseTimeOfDay(s, layout string) (TimeOfDay, error) {
	parsed, err := time.Parse(layout, strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return TimeOfDay{}, Errorf(EFORMAT, "invalid time %q: expected layout %q", s, layout)
	}
	return TimeOfDay{Hour: parsed.Hour(), Minute: parsed.Minute()}, nil
}

// ParseTimeRange parses a "start - end" time range as it appears in the
// Times column (e.g. "3:15pm - 4:00pm"), tolerating whitespace around the
// separator. Returns an EFORMAT error when the separator is absent, when
// extra segments exist, or when either side does not parse. No ordering is
// enforced: end may be earlier in the day than start.
func ParseTimeRange(s string) (start, end TimeOfDay, err error) {
	parts := strings.Split(s, "-")
	if len(parts) != 2 {
		return TimeOfDay{}, TimeOfDay{}, Errorf(EFORMAT, "invalid time range %q: expected \"start - end\"", s)
	}

	start, err = ParseTimeOfDay(parts[0], DefaultTimeLayout)
	if err != nil {
		return TimeOfDay{}, TimeOfDay{}, err
	}

	end, err = ParseTimeOfDay(parts[1], DefaultTimeLayout)
	if err != nil {
		return TimeOfDay{}, TimeOfDay{}, err
	}

	return start, end, nil
}
