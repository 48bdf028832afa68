package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_Defaults(t *testing.T) {
	tests := []struct {
		name        string
		item        ItineraryItem
		wantDay     int
		wantDur     int
		wantKind    PlaceKind
	}{
		{"zero value", ItineraryItem{}, 1, 60, PlaceOther},
		{"negative day", ItineraryItem{Day: -3, DurationMin: 45, Kind: PlaceFood}, 1, 45, PlaceFood},
		{"negative duration", ItineraryItem{Day: 2, DurationMin: -10}, 2, 60, PlaceOther},
		{"valid passes through", ItineraryItem{Day: 4, DurationMin: 90, Kind: PlaceSight}, 4, 90, PlaceSight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.item.Normalize()
			assert.Equal(t, tt.wantDay, tt.item.Day)
			assert.Equal(t, tt.wantDur, tt.item.DurationMin)
			assert.Equal(t, tt.wantKind, tt.item.Kind)
		})
	}
}

func TestNormalize_LeavesStartTimeAlone(t *testing.T) {
	it := ItineraryItem{StartTime: "not-a-time"}
	it.Normalize()
	assert.Equal(t, "not-a-time", it.StartTime, "scheduler decides what unparseable anchors mean")
}

func TestOrderValue(t *testing.T) {
	it := ItineraryItem{}
	assert.Equal(t, 7, it.OrderValue(7))

	it.Order = IntPtr(3)
	assert.Equal(t, 3, it.OrderValue(7))
}
