// Package places is the boundary to the place-search/enrichment
// collaborator. The engine consumes candidates through the Searcher
// port; geocoding and external lookups live behind it, out of scope.
package places

import (
	"context"
	"sort"
	"strings"

	"github.com/alexanderramin/itinera/internal/contract"
	"github.com/alexanderramin/itinera/internal/repository"
)

// Searcher resolves a free-text query to place candidates.
type Searcher interface {
	Search(ctx context.Context, query string, limit int) ([]contract.PlaceCandidate, error)
}

// FavoriteSearcher searches the user's own favorited items, the
// quick-re-add path. Matching is case-insensitive on name and tags.
type FavoriteSearcher struct {
	items repository.ItemRepo
}

// NewFavoriteSearcher creates a Searcher over the item store.
func NewFavoriteSearcher(items repository.ItemRepo) *FavoriteSearcher {
	return &FavoriteSearcher{items: items}
}

func (s *FavoriteSearcher) Search(ctx context.Context, query string, limit int) ([]contract.PlaceCandidate, error) {
	favorites, err := s.items.ListFavorites(ctx)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(query))
	var out []contract.PlaceCandidate
	for _, it := range favorites {
		if q != "" && !matches(q, it.Name, it.Tags) {
			continue
		}
		dur := it.DurationMin
		out = append(out, contract.PlaceCandidate{
			Name:        it.Name,
			Kind:        string(it.Kind),
			Lat:         it.Lat,
			Lng:         it.Lng,
			Tags:        it.Tags,
			Notes:       it.Notes,
			Favorite:    true,
			DurationMin: &dur,
		})
	}

	// Dedupe by name; favorites saved on several trips collapse to one.
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	out = dedupeByName(out)

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func matches(q, name string, tags []string) bool {
	if strings.Contains(strings.ToLower(name), q) {
		return true
	}
	for _, tag := range tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

func dedupeByName(in []contract.PlaceCandidate) []contract.PlaceCandidate {
	out := in[:0]
	var prev string
	for _, c := range in {
		if c.Name == prev {
			continue
		}
		out = append(out, c)
		prev = c.Name
	}
	return out
}
