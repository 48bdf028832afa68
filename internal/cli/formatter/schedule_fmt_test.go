package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/itinera/internal/domain"
	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestFormatSchedule_GroupsByDay(t *testing.T) {
	trip := &domain.Trip{ID: "t1", Name: "Kyoto", Destination: "Japan"}
	items := []domain.ItineraryItem{
		{Day: 1, Order: intPtr(0), Name: "Fushimi Inari", Kind: domain.PlaceSight, DurationMin: 90, DerivedTime: "09:00"},
		{Day: 1, Order: intPtr(1), Name: "Lunch", Kind: domain.PlaceFood, DurationMin: 60, DerivedTime: "10:30", StartTime: "12:00"},
		{Day: 2, Order: intPtr(0), Name: "Arashiyama", Kind: domain.PlaceSight, DurationMin: 120, DerivedTime: "09:00"},
	}

	out := FormatSchedule(trip, items)

	assert.Contains(t, out, "KYOTO — JAPAN")
	assert.Contains(t, out, "Day 1")
	assert.Contains(t, out, "Day 2")
	assert.Contains(t, out, "Fushimi Inari")
	assert.Contains(t, out, "[food]")
	assert.Contains(t, out, "1h30m")

	// Day 1 appears before day 2's single item.
	assert.Less(t, strings.Index(out, "Fushimi Inari"), strings.Index(out, "Arashiyama"))
}

func TestFormatSchedule_Empty(t *testing.T) {
	out := FormatSchedule(&domain.Trip{Name: "Empty"}, nil)
	assert.Contains(t, out, "No places yet")
}

func TestFormatTripList(t *testing.T) {
	start := time.Date(2026, 6, 2, 0, 0, 0, 0, time.UTC)
	trips := []*domain.Trip{
		{ID: "aaaaaaaa-1111-2222-3333-444444444444", Name: "Kyoto", Destination: "Japan", StartDate: &start, Days: 5},
		{ID: "bbbbbbbb-1111-2222-3333-444444444444", Name: "Lisbon", Days: 3},
	}

	out := FormatTripList(trips)

	assert.Contains(t, out, "aaaaaaaa")
	assert.Contains(t, out, "2026-06-02")
	assert.Contains(t, out, "Lisbon")
	assert.NotContains(t, out, "aaaaaaaa-1111", "IDs are shortened")
}

func TestDayLabel(t *testing.T) {
	assert.Equal(t, "Day 3", DayLabel(3, nil))

	start := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "Day 2 · Tue, Jun 02", DayLabel(2, &start))
}

func TestFormatMinutes(t *testing.T) {
	tests := []struct {
		min  int
		want string
	}{
		{0, "0m"},
		{45, "45m"},
		{60, "1h"},
		{90, "1h30m"},
		{125, "2h05m"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatMinutes(tt.min))
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "long tex…", Truncate("long text here", 9))
	assert.Equal(t, "", Truncate("x", 0))
}
