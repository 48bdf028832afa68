package service

import (
	"context"

	"github.com/alexanderramin/itinera/internal/contract"
	"github.com/alexanderramin/itinera/internal/domain"
	"github.com/alexanderramin/itinera/internal/importer"
)

type TripService interface {
	Create(ctx context.Context, t *domain.Trip) error
	GetByID(ctx context.Context, id string) (*domain.Trip, error)
	List(ctx context.Context) ([]*domain.Trip, error)
	Update(ctx context.Context, t *domain.Trip) error
	Delete(ctx context.Context, id string) error
}

// ItineraryService owns one reorder coordinator per open trip and
// bridges it to the storage collaborator. Mutations apply optimistically
// in memory and return immediately; persistence runs fire-and-forget,
// ordered per trip, and failures are reported through the observer,
// never rolled back.
type ItineraryService interface {
	// Schedule returns the current derived schedule, hydrating the
	// coordinator from the store on first access.
	Schedule(ctx context.Context, tripID string) ([]domain.ItineraryItem, error)
	AddPlace(ctx context.Context, tripID string, cand contract.PlaceCandidate, atDay int, atIndex *int) (domain.ItineraryItem, error)
	MoveItem(ctx context.Context, tripID string, fromIndex, toIndex int) ([]domain.ItineraryItem, error)
	RemoveItem(ctx context.Context, tripID, itemID string) error
	EditItem(ctx context.Context, tripID, itemID string, edit contract.ItemEdit) (domain.ItineraryItem, error)
	// ImportSuggestions batch-appends externally produced candidates.
	// Returns the number of items added.
	ImportSuggestions(ctx context.Context, tripID string, schema *importer.SuggestionSchema) (int, error)
	// Resequence densifies order values across the whole trip.
	Resequence(ctx context.Context, tripID string) error
	// CloseTrip tears down the trip's snapshot subscription (trip
	// switch). In-flight writes are not cancelled.
	CloseTrip(tripID string)
	// Flush blocks until all fire-and-forget writes have completed.
	Flush()
}
