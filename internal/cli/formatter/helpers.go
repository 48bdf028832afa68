package formatter

import (
	"fmt"
	"time"
)

// FormatMinutes renders a duration in minutes as "45m", "1h" or "1h30m".
func FormatMinutes(min int) string {
	if min <= 0 {
		return "0m"
	}
	h, m := min/60, min%60
	switch {
	case h == 0:
		return fmt.Sprintf("%dm", m)
	case m == 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dh%02dm", h, m)
	}
}

// DayLabel renders a day header such as "Day 2" or, when the trip has a
// start date, "Day 2 · Tue, Jun 03".
func DayLabel(day int, startDate *time.Time) string {
	if startDate == nil {
		return fmt.Sprintf("Day %d", day)
	}
	date := startDate.AddDate(0, 0, day-1)
	return fmt.Sprintf("Day %d · %s", day, date.Format("Mon, Jan 02"))
}

// Truncate shortens s to max runes, appending an ellipsis when cut.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max == 1 {
		return "…"
	}
	return string(runes[:max-1]) + "…"
}
