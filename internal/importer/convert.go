package importer

import (
	"time"

	"github.com/alexanderramin/itinera/internal/contract"
	"github.com/alexanderramin/itinera/internal/domain"
	"github.com/alexanderramin/itinera/internal/scheduler"
	"github.com/google/uuid"
)

// Convert transforms validated suggestions into itinerary items ready
// for the coordinator. Call ValidateSuggestions first; Convert assumes
// the schema is valid and resolves every soft issue by substitution:
// duration hints coalesce (duration_min, then suggested_min, then 60),
// days floor to 1, unknown kinds become "other" and unparseable start
// times are dropped.
func Convert(tripID string, suggestions []contract.PlaceCandidate) []domain.ItineraryItem {
	now := time.Now().UTC()

	items := make([]domain.ItineraryItem, 0, len(suggestions))
	for _, s := range suggestions {
		it := domain.ItineraryItem{
			ID:          uuid.New().String(),
			TripID:      tripID,
			Day:         domain.IntFromPtrWithDefault(domain.DefaultDay, s.Day),
			DurationMin: domain.IntFromPtrWithDefault(domain.DefaultDurationMin, s.DurationMin, s.SuggestedMin),
			Name:        s.Name,
			Kind:        placeKind(s.Kind),
			Lat:         s.Lat,
			Lng:         s.Lng,
			Tags:        s.Tags,
			Favorite:    s.Favorite,
			Notes:       s.Notes,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if s.StartTime != nil {
			if _, ok := scheduler.ParseClock(*s.StartTime); ok {
				it.StartTime = *s.StartTime
			}
		}
		it.Normalize()
		items = append(items, it)
	}
	return items
}

func placeKind(s string) domain.PlaceKind {
	if domain.ValidPlaceKinds[s] {
		return domain.PlaceKind(s)
	}
	return domain.PlaceOther
}
