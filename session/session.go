// Package session classifies a trade's entry time against the global FX
// session windows (Sydney, Tokyo, London, New York), all expressed as
// UTC time-of-day with wraparound across midnight.
package session

import (
	"fmt"
	"strings"
	"time"
)

// Window is a named trading window in UTC minutes-of-day. End < Start
// means the window wraps across midnight.
type Window struct {
	Name  string
	Start int
	End   int
}

func minutes(h, m int) int { return h*60 + m }

// Table is the fixed session table, [start, end) in UTC.
var Table = []Window{
	{Name: "Sydney", Start: minutes(21, 0), End: minutes(6, 0)},
	{Name: "Tokyo", Start: minutes(0, 0), End: minutes(9, 0)},
	{Name: "London", Start: minutes(8, 0), End: minutes(17, 0)},
	{Name: "New York", Start: minutes(13, 0), End: minutes(22, 0)},
}

// Labels for the two non-session classifications.
const (
	Closed  = "Closed"
	Invalid = "Invalid Date/Time"
)

// Contains reports whether the UTC minute-of-day t falls inside the
// window, honoring midnight wraparound.
func (w Window) Contains(t int) bool {
	if w.Start < w.End {
		return w.Start <= t && t < w.End
	}
	return t >= w.Start || t < w.End
}

// At returns the names of all sessions open at the given UTC instant.
func At(t time.Time) []string {
	utc := t.UTC()
	mod := minutes(utc.Hour(), utc.Minute())

	var open []string
	for _, w := range Table {
		if w.Contains(mod) {
			open = append(open, w.Name)
		}
	}
	return open
}

// Label reduces an open-session set to the display label: every pairwise
// overlap as "A+B" joined by " / " when several are open, the bare name
// when one is, Closed when none.
func Label(open []string) string {
	switch len(open) {
	case 0:
		return Closed
	case 1:
		return open[0]
	}

	var overlaps []string
	for i := 0; i < len(open); i++ {
		for j := i + 1; j < len(open); j++ {
			overlaps = append(overlaps, open[i]+"+"+open[j])
		}
	}
	return strings.Join(overlaps, " / ")
}

// Classify localizes a date and wall-clock string to the named IANA
// timezone, converts to UTC, and labels the open sessions. An
// unrecognized timezone falls back to UTC; an unparseable date/time
// yields the Invalid label rather than an error.
func Classify(date, clock, tz string) string {
	t, err := Localize(date, clock, tz)
	if err != nil {
		return Invalid
	}
	return Label(At(t))
}

// Localize parses date ("2006-01-02") and clock ("15:04", bare hour
// allowed) in the named timezone. Unknown timezones are treated as UTC.
func Localize(date, clock, tz string) (time.Time, error) {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		loc = time.UTC
	}

	if !strings.Contains(clock, ":") {
		clock += ":00"
	}

	t, err := time.ParseInLocation("2006-01-02 15:04", date+" "+clock, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date/time: %w", err)
	}
	return t, nil
}
