// Package sequence owns the canonical in-memory item sequence for one
// trip and turns user intents (insert, remove, drag-reorder, batch
// append) into a re-derived schedule plus a minimal batch of order
// writes for the storage collaborator. It performs no I/O.
package sequence

import (
	"fmt"

	"github.com/alexanderramin/itinera/internal/contract"
	"github.com/alexanderramin/itinera/internal/domain"
	"github.com/alexanderramin/itinera/internal/scheduler"
)

// Coordinator holds the locally-owned canonical sequence. It is not
// safe for concurrent use; the owning service serializes mutations
// (single writer per client).
type Coordinator struct {
	tripID   string
	dayStart scheduler.Clock
	items    []domain.ItineraryItem
}

// New builds a coordinator around an initial snapshot, deriving the
// schedule immediately so Items is always in canonical order.
func New(tripID string, items []domain.ItineraryItem) *Coordinator {
	return NewWithDayStart(tripID, items, scheduler.DefaultDayStart)
}

// NewWithDayStart is New with a non-default day-start policy.
func NewWithDayStart(tripID string, items []domain.ItineraryItem, dayStart scheduler.Clock) *Coordinator {
	c := &Coordinator{tripID: tripID, dayStart: dayStart}
	c.ApplySnapshot(items)
	return c
}

// TripID returns the trip this coordinator owns.
func (c *Coordinator) TripID() string {
	return c.tripID
}

// Items returns a copy of the canonical sequence in derived order.
func (c *Coordinator) Items() []domain.ItineraryItem {
	out := make([]domain.ItineraryItem, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of items in the sequence.
func (c *Coordinator) Len() int {
	return len(c.items)
}

// ApplySnapshot fully replaces the local sequence with an authoritative
// snapshot from the storage collaborator (last snapshot wins). Any
// unflushed local reorder is clobbered; that race is accepted, the
// store is the source of truth.
func (c *Coordinator) ApplySnapshot(items []domain.ItineraryItem) {
	c.items = scheduler.DeriveFrom(items, c.dayStart)
}

// Insert places a new item on atDay. With atIndex it takes that exact
// order rank; otherwise it appends after the day's current maximum.
// Other items are not renumbered.
func (c *Coordinator) Insert(item domain.ItineraryItem, atDay int, atIndex *int) (domain.ItineraryItem, contract.WriteBatch) {
	if atDay >= 1 {
		item.Day = atDay
	}
	item.Normalize()

	order := domain.IntFromPtrWithDefault(c.nextOrderInDay(item.Day), atIndex)
	item.Order = &order

	c.items = append(c.items, item)
	c.rederive()

	return item, contract.WriteBatch{
		TripID: c.tripID,
		Writes: []contract.OrderWrite{{ItemID: item.ID, Order: order}},
	}
}

// BatchInsert appends a contiguous run of new items, assigning order =
// startIndex + position-in-run and honoring each item's caller-assigned
// day. Used for AI bulk inserts.
func (c *Coordinator) BatchInsert(items []domain.ItineraryItem, startIndex int) contract.WriteBatch {
	writes := make([]contract.OrderWrite, 0, len(items))
	for i, item := range items {
		item.Normalize()
		order := startIndex + i
		item.Order = &order
		c.items = append(c.items, item)
		writes = append(writes, contract.OrderWrite{ItemID: item.ID, Order: order})
	}
	c.rederive()

	return contract.WriteBatch{TripID: c.tripID, Writes: writes}
}

// Remove deletes the item by id. Remaining items keep their order
// values; gaps are tolerated until the next full resequence.
func (c *Coordinator) Remove(id string) bool {
	for i, it := range c.items {
		if it.ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			c.rederive()
			return true
		}
	}
	return false
}

// Move relocates the element at fromIndex to toIndex in the flat
// all-days sequence (splice semantics), then renumbers the entire
// visible sequence: every item's order becomes its position in the new
// flat array. The emitted batch carries every item whose order changed.
func (c *Coordinator) Move(fromIndex, toIndex int) (contract.WriteBatch, error) {
	n := len(c.items)
	if fromIndex < 0 || fromIndex >= n {
		return contract.WriteBatch{TripID: c.tripID}, fmt.Errorf("move: from index %d out of range [0,%d)", fromIndex, n)
	}
	if toIndex < 0 || toIndex >= n {
		return contract.WriteBatch{TripID: c.tripID}, fmt.Errorf("move: to index %d out of range [0,%d)", toIndex, n)
	}

	before := c.orderByID()

	moved := c.items[fromIndex]
	rest := append(c.items[:fromIndex:fromIndex], c.items[fromIndex+1:]...)
	c.items = make([]domain.ItineraryItem, 0, n)
	c.items = append(c.items, rest[:toIndex]...)
	c.items = append(c.items, moved)
	c.items = append(c.items, rest[toIndex:]...)

	for i := range c.items {
		order := i
		c.items[i].Order = &order
	}
	c.rederive()

	return c.diffOrders(before), nil
}

// Edit applies a direct field edit and re-derives without touching the
// item's order. Reports whether the item was found.
func (c *Coordinator) Edit(id string, edit contract.ItemEdit) bool {
	for i := range c.items {
		if c.items[i].ID != id {
			continue
		}
		it := &c.items[i]
		if edit.StartTime != nil {
			it.StartTime = *edit.StartTime
		}
		if edit.DurationMin != nil {
			it.DurationMin = *edit.DurationMin
		}
		if edit.Day != nil {
			it.Day = *edit.Day
		}
		if edit.Name != nil {
			it.Name = *edit.Name
		}
		if edit.Notes != nil {
			it.Notes = *edit.Notes
		}
		if edit.Favorite != nil {
			it.Favorite = *edit.Favorite
		}
		it.Normalize()
		c.rederive()
		return true
	}
	return false
}

// Resequence renumbers every item to its flat position, densifying
// order values after accumulated gaps. Emits writes for changed items.
func (c *Coordinator) Resequence() contract.WriteBatch {
	before := c.orderByID()
	for i := range c.items {
		order := i
		c.items[i].Order = &order
	}
	c.rederive()
	return c.diffOrders(before)
}

func (c *Coordinator) rederive() {
	c.items = scheduler.DeriveFrom(c.items, c.dayStart)
}

// AppendIndex returns a flat order rank safe for batch appends: past
// both the sequence length and every assigned order value.
func (c *Coordinator) AppendIndex() int {
	next := len(c.items)
	for _, it := range c.items {
		if it.Order != nil && *it.Order+1 > next {
			next = *it.Order + 1
		}
	}
	return next
}

// nextOrderInDay returns max(order in day)+1, or 0 for an empty day.
func (c *Coordinator) nextOrderInDay(day int) int {
	next := 0
	for _, it := range c.items {
		if it.Day != day || it.Order == nil {
			continue
		}
		if *it.Order+1 > next {
			next = *it.Order + 1
		}
	}
	return next
}

func (c *Coordinator) orderByID() map[string]*int {
	m := make(map[string]*int, len(c.items))
	for _, it := range c.items {
		m[it.ID] = it.Order
	}
	return m
}

func (c *Coordinator) diffOrders(before map[string]*int) contract.WriteBatch {
	batch := contract.WriteBatch{TripID: c.tripID}
	for _, it := range c.items {
		if it.Order == nil {
			continue
		}
		old, existed := before[it.ID]
		if !existed || old == nil || *old != *it.Order {
			batch.Writes = append(batch.Writes, contract.OrderWrite{ItemID: it.ID, Order: *it.Order})
		}
	}
	return batch
}
