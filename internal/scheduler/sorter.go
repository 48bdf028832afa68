package scheduler

import (
	"sort"

	"github.com/alexanderramin/itinera/internal/domain"
)

// anchorSentinel sorts items without a usable start-time anchor after
// every real time of day (max real key is 23*60+59).
const anchorSentinel = 9999

// anchorKey returns the item's start time as minutes since midnight,
// or anchorSentinel when the anchor is absent or unparseable.
func anchorKey(it domain.ItineraryItem) int {
	c, ok := ParseClock(it.StartTime)
	if !ok {
		return anchorSentinel
	}
	return c.Minutes()
}

// CanonicalSort orders items by (day asc, order asc). When either side
// lacks an assigned order, the comparison falls back to the parsed
// start-time anchor; full ties keep their original relative order
// (stable sort), which preserves insertion order.
func CanonicalSort(items []domain.ItineraryItem) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]

		dayA, dayB := a.Day, b.Day
		if dayA < 1 {
			dayA = domain.DefaultDay
		}
		if dayB < 1 {
			dayB = domain.DefaultDay
		}
		if dayA != dayB {
			return dayA < dayB
		}

		if a.Order != nil && b.Order != nil {
			if *a.Order != *b.Order {
				return *a.Order < *b.Order
			}
			return false
		}

		keyA, keyB := anchorKey(a), anchorKey(b)
		return keyA < keyB
	})
}
