package domain

import "time"

// Default values applied once at the ingestion boundary. Consumers may
// assume an item that passed through Normalize carries valid Day and
// DurationMin values.
const (
	DefaultDay         = 1
	DefaultDurationMin = 60
)

// ItineraryItem is the per-day schedulable unit of a trip. The engine
// owns Day, Order, StartTime, DurationMin and DerivedTime; everything
// else is display payload carried through untouched.
type ItineraryItem struct {
	ID     string
	TripID string

	// Day is the 1-based trip day the item belongs to.
	Day int
	// Order ranks the item within its day. Nil means "not yet assigned";
	// the scheduler then falls back to the start-time anchor for ordering.
	Order *int
	// StartTime is an optional "HH:MM" anchor. Empty means "derive from
	// the predecessor's end time".
	StartTime string
	// DurationMin is the planned visit length in minutes.
	DurationMin int
	// DerivedTime is the computed "HH:MM" arrival estimate. Output only:
	// always recomputed, never persisted as a source of truth.
	DerivedTime string

	// Display payload.
	Name     string
	Kind     PlaceKind
	Lat      float64
	Lng      float64
	Tags     []string
	Favorite bool
	Notes    string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Normalize applies the ingestion defaults: day floors to 1 and
// non-positive durations become DefaultDurationMin. StartTime is left
// as-is; the scheduler treats unparseable anchors as absent.
func (it *ItineraryItem) Normalize() {
	if it.Day < 1 {
		it.Day = DefaultDay
	}
	if it.DurationMin <= 0 {
		it.DurationMin = DefaultDurationMin
	}
	if it.Kind == "" {
		it.Kind = PlaceOther
	}
}

// OrderValue returns the assigned order rank, or fallback when unset.
func (it *ItineraryItem) OrderValue(fallback int) int {
	if it.Order == nil {
		return fallback
	}
	return *it.Order
}
