package testutil

import (
	"time"

	"github.com/alexanderramin/itinera/internal/domain"
	"github.com/google/uuid"
)

// Trip options
type TripOption func(*domain.Trip)

func WithDestination(d string) TripOption {
	return func(t *domain.Trip) {
		t.Destination = d
	}
}

func WithTripDays(n int) TripOption {
	return func(t *domain.Trip) {
		t.Days = n
	}
}

func WithStartDate(d time.Time) TripOption {
	return func(t *domain.Trip) {
		t.StartDate = &d
	}
}

func NewTestTrip(name string, opts ...TripOption) *domain.Trip {
	now := time.Now().UTC()
	t := &domain.Trip{
		ID:          uuid.New().String(),
		Name:        name,
		Destination: "Testville",
		Days:        3,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Item options
type ItemOption func(*domain.ItineraryItem)

func WithDay(d int) ItemOption {
	return func(it *domain.ItineraryItem) {
		it.Day = d
	}
}

func WithOrder(o int) ItemOption {
	return func(it *domain.ItineraryItem) {
		it.Order = &o
	}
}

func WithoutOrder() ItemOption {
	return func(it *domain.ItineraryItem) {
		it.Order = nil
	}
}

func WithStartTime(s string) ItemOption {
	return func(it *domain.ItineraryItem) {
		it.StartTime = s
	}
}

func WithDuration(min int) ItemOption {
	return func(it *domain.ItineraryItem) {
		it.DurationMin = min
	}
}

func WithKind(k domain.PlaceKind) ItemOption {
	return func(it *domain.ItineraryItem) {
		it.Kind = k
	}
}

func WithTags(tags ...string) ItemOption {
	return func(it *domain.ItineraryItem) {
		it.Tags = tags
	}
}

func WithFavorite() ItemOption {
	return func(it *domain.ItineraryItem) {
		it.Favorite = true
	}
}

func WithCoords(lat, lng float64) ItemOption {
	return func(it *domain.ItineraryItem) {
		it.Lat = lat
		it.Lng = lng
	}
}

func NewTestItem(tripID, name string, opts ...ItemOption) *domain.ItineraryItem {
	now := time.Now().UTC()
	order := 0
	it := &domain.ItineraryItem{
		ID:          uuid.New().String(),
		TripID:      tripID,
		Day:         1,
		Order:       &order,
		DurationMin: 60,
		Name:        name,
		Kind:        domain.PlaceSight,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for _, opt := range opts {
		opt(it)
	}
	return it
}
