package contract

// OrderWrite is one persistence instruction: assign Order to the item
// with ItemID. Emitted for every item whose order changed during a
// coordinator mutation.
type OrderWrite struct {
	ItemID string `json:"item_id"`
	Order  int    `json:"order"`
}

// WriteBatch is the minimal set of order-index assignments the storage
// collaborator must persist after a mutation. The coordinator emits it;
// it never blocks on its completion.
type WriteBatch struct {
	TripID string       `json:"trip_id"`
	Writes []OrderWrite `json:"writes"`
}

// Empty reports whether the batch carries no writes.
func (b WriteBatch) Empty() bool {
	return len(b.Writes) == 0
}

// PlaceCandidate is what the place-search/AI collaborator hands the
// engine: a place plus optional scheduling hints. The engine validates
// only the numeric/time shape, not place semantics.
type PlaceCandidate struct {
	Name      string   `json:"name"`
	Kind      string   `json:"kind,omitempty"`
	Lat       float64  `json:"lat,omitempty"`
	Lng       float64  `json:"lng,omitempty"`
	Tags      []string `json:"tags,omitempty"`
	Notes     string   `json:"notes,omitempty"`
	Favorite  bool     `json:"favorite,omitempty"`
	Day       *int     `json:"day,omitempty"`
	StartTime *string  `json:"start_time,omitempty"`
	// DurationMin and SuggestedMin are alternate duration hints; the
	// ingestion boundary coalesces them into one typed value.
	DurationMin  *int `json:"duration_min,omitempty"`
	SuggestedMin *int `json:"suggested_min,omitempty"`
}

// ItemEdit is a direct field edit (start time, duration, day) that
// triggers re-derivation without changing the item's order.
type ItemEdit struct {
	StartTime   *string
	DurationMin *int
	Day         *int
	Name        *string
	Notes       *string
	Favorite    *bool
}
