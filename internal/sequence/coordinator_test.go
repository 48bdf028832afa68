package sequence

import (
	"testing"

	"github.com/alexanderramin/itinera/internal/contract"
	"github.com/alexanderramin/itinera/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedItems() []domain.ItineraryItem {
	return []domain.ItineraryItem{
		{ID: "a", TripID: "t1", Day: 1, Order: domain.IntPtr(0), Name: "Museum", DurationMin: 60},
		{ID: "b", TripID: "t1", Day: 1, Order: domain.IntPtr(1), Name: "Lunch", DurationMin: 90},
		{ID: "c", TripID: "t1", Day: 2, Order: domain.IntPtr(0), Name: "Park", DurationMin: 45},
	}
}

func itemIDs(items []domain.ItineraryItem) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

func findItem(t *testing.T, c *Coordinator, id string) domain.ItineraryItem {
	t.Helper()
	for _, it := range c.Items() {
		if it.ID == id {
			return it
		}
	}
	t.Fatalf("item %s not found", id)
	return domain.ItineraryItem{}
}

func TestNew_DerivesImmediately(t *testing.T) {
	c := New("t1", seedItems())

	items := c.Items()
	require.Len(t, items, 3)
	assert.Equal(t, []string{"a", "b", "c"}, itemIDs(items))
	assert.Equal(t, "09:00", items[0].DerivedTime)
	assert.Equal(t, "10:00", items[1].DerivedTime)
	assert.Equal(t, "09:00", items[2].DerivedTime, "day 2 resets")
}

func TestInsert_AppendsAfterDayMax(t *testing.T) {
	c := New("t1", seedItems())

	inserted, batch := c.Insert(domain.ItineraryItem{ID: "d", TripID: "t1", Name: "Dinner"}, 1, nil)

	require.NotNil(t, inserted.Order)
	assert.Equal(t, 2, *inserted.Order, "max order in day 1 is 1, so append at 2")
	assert.Equal(t, 60, inserted.DurationMin, "duration defaulted at the boundary")
	require.Len(t, batch.Writes, 1, "only the new item is written")
	assert.Equal(t, contract.OrderWrite{ItemID: "d", Order: 2}, batch.Writes[0])
	assert.Equal(t, []string{"a", "b", "d", "c"}, itemIDs(c.Items()))
}

func TestInsert_EmptyDayStartsAtZero(t *testing.T) {
	c := New("t1", nil)

	inserted, _ := c.Insert(domain.ItineraryItem{ID: "a", Name: "Castle"}, 3, nil)

	assert.Equal(t, 0, *inserted.Order)
	assert.Equal(t, 3, inserted.Day)
}

func TestInsert_ExplicitIndexHonored(t *testing.T) {
	c := New("t1", seedItems())

	inserted, _ := c.Insert(domain.ItineraryItem{ID: "d", Name: "Coffee"}, 1, domain.IntPtr(0))

	assert.Equal(t, 0, *inserted.Order)
	// Order 0 ties with "a"; the stable sort keeps "a" first, the new
	// item lands right behind it until the next full resequence.
	assert.Equal(t, []string{"a", "d", "b", "c"}, itemIDs(c.Items()))
}

func TestRemove_NoRenumbering(t *testing.T) {
	c := New("t1", seedItems())

	require.True(t, c.Remove("a"))

	items := c.Items()
	assert.Equal(t, []string{"b", "c"}, itemIDs(items))
	assert.Equal(t, 1, *items[0].Order, "gap tolerated until next resequence")
	assert.Equal(t, "09:00", items[0].DerivedTime, "schedule re-derived after removal")

	assert.False(t, c.Remove("missing"))
}

func TestMove_SpliceAndFlatRenumber(t *testing.T) {
	// Scenario D: move the last flat element to the front.
	items := []domain.ItineraryItem{
		{ID: "a", Day: 1, Order: domain.IntPtr(0), Name: "A", Tags: []string{"keep"}},
		{ID: "b", Day: 1, Order: domain.IntPtr(1), Name: "B"},
		{ID: "c", Day: 1, Order: domain.IntPtr(2), Name: "C"},
		{ID: "d", Day: 1, Order: domain.IntPtr(3), Name: "D"},
	}
	c := New("t1", items)

	batch, err := c.Move(3, 0)
	require.NoError(t, err)

	got := c.Items()
	assert.Equal(t, []string{"d", "a", "b", "c"}, itemIDs(got))
	for i, it := range got {
		require.NotNil(t, it.Order)
		assert.Equal(t, i, *it.Order, "order equals flat position")
	}

	// Every item shifted, so every item is in the batch.
	require.Len(t, batch.Writes, 4)
	assert.Equal(t, "t1", batch.TripID)

	// Unrelated fields untouched.
	assert.Equal(t, []string{"keep"}, findItem(t, c, "a").Tags)
	assert.Equal(t, "A", findItem(t, c, "a").Name)
}

func TestMove_BatchOnlyContainsChangedOrders(t *testing.T) {
	c := New("t1", seedItems())

	// Swap the two day-1 items; day-2 "c" keeps order 0... but the flat
	// renumber assigns it position 2, so it changes too.
	batch, err := c.Move(0, 1)
	require.NoError(t, err)

	written := make(map[string]int, len(batch.Writes))
	for _, w := range batch.Writes {
		written[w.ItemID] = w.Order
	}
	assert.Equal(t, map[string]int{"a": 1, "b": 0, "c": 2}, written)
}

func TestMove_OutOfRange(t *testing.T) {
	c := New("t1", seedItems())

	_, err := c.Move(-1, 0)
	assert.Error(t, err)
	_, err = c.Move(0, 3)
	assert.Error(t, err)
	_, err = c.Move(5, 0)
	assert.Error(t, err)
}

func TestBatchInsert_ContiguousRunHonorsDays(t *testing.T) {
	c := New("t1", seedItems())

	batch := c.BatchInsert([]domain.ItineraryItem{
		{ID: "x", Day: 2, Name: "Shrine"},
		{ID: "y", Day: 2, Name: "Ramen"},
		{ID: "z", Day: 3, Name: "Onsen"},
	}, 5)

	require.Len(t, batch.Writes, 3)
	assert.Equal(t, contract.OrderWrite{ItemID: "x", Order: 5}, batch.Writes[0])
	assert.Equal(t, contract.OrderWrite{ItemID: "y", Order: 6}, batch.Writes[1])
	assert.Equal(t, contract.OrderWrite{ItemID: "z", Order: 7}, batch.Writes[2])

	assert.Equal(t, 3, findItem(t, c, "z").Day, "caller-assigned day honored")
	assert.Equal(t, []string{"a", "b", "c", "x", "y", "z"}, itemIDs(c.Items()))
}

func TestEdit_RederivesWithoutChangingOrder(t *testing.T) {
	c := New("t1", seedItems())

	start := "11:00"
	require.True(t, c.Edit("b", contract.ItemEdit{StartTime: &start}))

	b := findItem(t, c, "b")
	assert.Equal(t, 1, *b.Order, "order untouched by direct edits")
	assert.Equal(t, "11:00", b.DerivedTime, "later anchor opens a gap")

	assert.False(t, c.Edit("missing", contract.ItemEdit{}))
}

func TestEdit_InvalidDurationFallsBackToDefault(t *testing.T) {
	c := New("t1", seedItems())

	bad := -5
	require.True(t, c.Edit("a", contract.ItemEdit{DurationMin: &bad}))
	assert.Equal(t, 60, findItem(t, c, "a").DurationMin)
}

func TestApplySnapshot_FullReplace(t *testing.T) {
	c := New("t1", seedItems())
	_, err := c.Move(0, 2)
	require.NoError(t, err)

	// A snapshot arriving before the move is flushed clobbers it.
	c.ApplySnapshot(seedItems())

	assert.Equal(t, []string{"a", "b", "c"}, itemIDs(c.Items()),
		"last snapshot wins over unflushed local state")
}

func TestResequence_DensifiesGaps(t *testing.T) {
	c := New("t1", []domain.ItineraryItem{
		{ID: "a", Day: 1, Order: domain.IntPtr(4)},
		{ID: "b", Day: 1, Order: domain.IntPtr(9)},
		{ID: "c", Day: 2, Order: domain.IntPtr(7)},
	})

	batch := c.Resequence()

	require.Len(t, batch.Writes, 3)
	for i, it := range c.Items() {
		assert.Equal(t, i, *it.Order)
	}

	// Re-running is a no-op.
	assert.True(t, c.Resequence().Empty())
}

func TestRoundTrip_PersistedOrdersReproduceSchedule(t *testing.T) {
	c := New("t1", seedItems())
	batch, err := c.Move(2, 0)
	require.NoError(t, err)
	want := c.Items()

	// Simulate the store applying the batch to its rows and pushing a
	// fresh snapshot.
	rows := seedItems()
	for _, w := range batch.Writes {
		for i := range rows {
			if rows[i].ID == w.ItemID {
				rows[i].Order = domain.IntPtr(w.Order)
			}
		}
	}
	fresh := New("t1", rows)

	got := fresh.Items()
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i].ID, got[i].ID)
		assert.Equal(t, want[i].DerivedTime, got[i].DerivedTime)
	}
}
