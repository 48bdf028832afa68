package repository

import (
	"context"

	"github.com/alexanderramin/itinera/internal/contract"
	"github.com/alexanderramin/itinera/internal/domain"
)

type TripRepo interface {
	Create(ctx context.Context, t *domain.Trip) error
	GetByID(ctx context.Context, id string) (*domain.Trip, error)
	List(ctx context.Context) ([]*domain.Trip, error)
	Update(ctx context.Context, t *domain.Trip) error
	Delete(ctx context.Context, id string) error
}

type ItemRepo interface {
	Create(ctx context.Context, it *domain.ItineraryItem) error
	GetByID(ctx context.Context, id string) (*domain.ItineraryItem, error)
	// ListByTrip returns the snapshot shape: all items of a trip ordered
	// by day then position ascending (unassigned positions last).
	ListByTrip(ctx context.Context, tripID string) ([]domain.ItineraryItem, error)
	// ListFavorites returns favorited items across all trips, newest
	// first, for quick re-adding.
	ListFavorites(ctx context.Context) ([]domain.ItineraryItem, error)
	Update(ctx context.Context, it *domain.ItineraryItem) error
	Delete(ctx context.Context, id string) error
	// ApplyOrderWrites persists a batch of order-index assignments.
	// Callers wrap it in a transaction for all-or-nothing semantics.
	ApplyOrderWrites(ctx context.Context, writes []contract.OrderWrite) error
}
