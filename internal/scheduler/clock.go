package scheduler

import (
	"fmt"
	"strconv"
	"strings"
)

// Clock is a wall-clock position within one day.
type Clock struct {
	Hour   int
	Minute int
}

// DefaultDayStart is the policy start-of-day for days without an
// explicit first anchor.
var DefaultDayStart = Clock{Hour: 9, Minute: 0}

// endOfDay is the clamp value for schedules that run past midnight.
// Overflowing items collapse here instead of rolling to the next day.
var endOfDay = Clock{Hour: 23, Minute: 59}

// ParseClock parses an "HH:MM" (or "H:MM") string. ok is false for
// anything that does not resolve to a valid time of day.
func ParseClock(s string) (Clock, bool) {
	parts := strings.SplitN(strings.TrimSpace(s), ":", 2)
	if len(parts) != 2 {
		return Clock{}, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return Clock{}, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return Clock{}, false
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return Clock{}, false
	}
	return Clock{Hour: h, Minute: m}, true
}

// String formats the clock as zero-padded "HH:MM".
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// Minutes returns the clock position as minutes since midnight.
func (c Clock) Minutes() int {
	return c.Hour*60 + c.Minute
}

// Advance returns the clock moved forward by min minutes, normalizing
// minute overflow into hours and clamping at 23:59 once the hour passes
// midnight.
func (c Clock) Advance(min int) Clock {
	if min < 0 {
		min = 0
	}
	next := Clock{Hour: c.Hour, Minute: c.Minute + min}
	next.Hour += next.Minute / 60
	next.Minute %= 60
	if next.Hour >= 24 {
		return endOfDay
	}
	return next
}

// Before reports whether c is strictly earlier than other.
func (c Clock) Before(other Clock) bool {
	return c.Minutes() < other.Minutes()
}
