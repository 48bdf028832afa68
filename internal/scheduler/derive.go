package scheduler

import "github.com/alexanderramin/itinera/internal/domain"

// Derive computes the per-day timeline for items using the default
// 09:00 day start. See DeriveFrom.
func Derive(items []domain.ItineraryItem) []domain.ItineraryItem {
	return DeriveFrom(items, DefaultDayStart)
}

// DeriveFrom is the time-derivation engine: it returns a new slice in
// canonical (day, order) sequence with DerivedTime filled in and
// duration/day defaults applied. It is total and side-effect free: the
// input slice is never mutated, identity and payload fields pass
// through unchanged, and no combination of odd-but-typed input fails.
//
// A running clock walks each day, resetting to dayStart on day
// transitions. An explicit start-time anchor is adopted when the clock
// is still at day start or the anchor is not earlier than the clock;
// an earlier anchor after the clock has advanced is ignored so that
// the accumulated sequence never overlaps.
func DeriveFrom(items []domain.ItineraryItem, dayStart Clock) []domain.ItineraryItem {
	if len(items) == 0 {
		return []domain.ItineraryItem{}
	}

	out := make([]domain.ItineraryItem, len(items))
	copy(out, items)
	CanonicalSort(out)

	clock := dayStart
	atDayStart := true
	prevDay := 0

	for i := range out {
		it := &out[i]
		if it.Day < 1 {
			it.Day = domain.DefaultDay
		}
		if it.DurationMin <= 0 {
			it.DurationMin = domain.DefaultDurationMin
		}

		if it.Day != prevDay {
			clock = dayStart
			atDayStart = true
			prevDay = it.Day
		}

		if anchor, ok := ParseClock(it.StartTime); ok {
			if atDayStart || !anchor.Before(clock) {
				clock = anchor
			}
		}

		it.DerivedTime = clock.String()
		clock = clock.Advance(it.DurationMin)
		atDayStart = false
	}

	return out
}
