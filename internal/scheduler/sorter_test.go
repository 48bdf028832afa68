package scheduler

import (
	"testing"

	"github.com/alexanderramin/itinera/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeItem(id string, day int, order *int, startTime string) domain.ItineraryItem {
	return domain.ItineraryItem{
		ID:        id,
		Day:       day,
		Order:     order,
		StartTime: startTime,
	}
}

func ids(items []domain.ItineraryItem) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

func TestCanonicalSort_DayBeforeOrder(t *testing.T) {
	items := []domain.ItineraryItem{
		makeItem("d2-first", 2, domain.IntPtr(0), ""),
		makeItem("d1-last", 1, domain.IntPtr(5), ""),
	}

	CanonicalSort(items)

	assert.Equal(t, []string{"d1-last", "d2-first"}, ids(items), "day dominates order")
}

func TestCanonicalSort_OrderWithinDay(t *testing.T) {
	items := []domain.ItineraryItem{
		makeItem("b", 1, domain.IntPtr(2), ""),
		makeItem("c", 1, domain.IntPtr(7), ""),
		makeItem("a", 1, domain.IntPtr(0), ""),
	}

	CanonicalSort(items)

	assert.Equal(t, []string{"a", "b", "c"}, ids(items))
}

func TestCanonicalSort_MissingOrderFallsBackToAnchor(t *testing.T) {
	items := []domain.ItineraryItem{
		makeItem("late", 1, nil, "15:00"),
		makeItem("early", 1, nil, "08:30"),
		makeItem("ordered", 1, domain.IntPtr(1), ""),
	}

	CanonicalSort(items)

	// "ordered" has an order but its neighbors don't, so all comparisons
	// on day 1 fall back to the anchor; no-anchor sorts as very late.
	assert.Equal(t, []string{"early", "late", "ordered"}, ids(items))
}

func TestCanonicalSort_MissingAnchorSortsLast(t *testing.T) {
	items := []domain.ItineraryItem{
		makeItem("no-anchor", 1, nil, ""),
		makeItem("bad-anchor", 1, nil, "25:99"),
		makeItem("anchored", 1, nil, "23:59"),
	}

	CanonicalSort(items)

	require.Equal(t, "anchored", items[0].ID, "real anchor beats sentinel")
	// Both sentinel items keep their insertion order.
	assert.Equal(t, []string{"no-anchor", "bad-anchor"}, ids(items[1:]))
}

func TestCanonicalSort_StableOnFullTies(t *testing.T) {
	items := []domain.ItineraryItem{
		makeItem("first-in", 1, nil, ""),
		makeItem("second-in", 1, nil, ""),
		makeItem("third-in", 1, nil, ""),
	}

	CanonicalSort(items)

	assert.Equal(t, []string{"first-in", "second-in", "third-in"}, ids(items),
		"full ties preserve insertion order")
}

func TestCanonicalSort_DayZeroGroupsWithDayOne(t *testing.T) {
	items := []domain.ItineraryItem{
		makeItem("day1", 1, domain.IntPtr(0), ""),
		makeItem("day0", 0, domain.IntPtr(1), ""),
	}

	CanonicalSort(items)

	assert.Equal(t, []string{"day1", "day0"}, ids(items),
		"day<1 compares as day 1, then order decides")
}
