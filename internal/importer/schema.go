// Package importer ingests externally produced place suggestions
// (AI recommendations, exported search results) into itinerary items.
// All field defaulting happens here, once, at the boundary; consumers
// downstream see fully typed records.
package importer

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/alexanderramin/itinera/internal/contract"
)

// SuggestionSchema is the on-disk JSON shape handed over by the
// place-search/AI collaborator.
type SuggestionSchema struct {
	// StartIndex optionally pins the order of the first suggestion;
	// omitted means "append after the trip's current maximum".
	StartIndex  *int                      `json:"start_index,omitempty"`
	Suggestions []contract.PlaceCandidate `json:"suggestions"`
}

// ParseSuggestions decodes a suggestion document. Unknown fields are
// rejected so a malformed export fails loudly instead of silently
// dropping data.
func ParseSuggestions(r io.Reader) (*SuggestionSchema, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var schema SuggestionSchema
	if err := dec.Decode(&schema); err != nil {
		return nil, fmt.Errorf("decoding suggestion file: %w", err)
	}
	return &schema, nil
}
