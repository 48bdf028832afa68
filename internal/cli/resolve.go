package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// resolveTripID resolves a trip reference which can be:
//   - An exact trip name (case-insensitive)
//   - A full UUID
//   - A UUID prefix
func resolveTripID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("trip is required")
	}

	trips, err := app.Trips.List(ctx)
	if err != nil {
		return "", err
	}

	for _, t := range trips {
		if strings.EqualFold(t.Name, input) {
			return t.ID, nil
		}
	}

	for _, t := range trips {
		if t.ID == input {
			return t.ID, nil
		}
	}

	var matches []string
	for _, t := range trips {
		if strings.HasPrefix(t.ID, input) {
			matches = append(matches, t.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("trip not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("trip ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

// resolveItemID resolves an item reference within a trip which can be:
//   - A flat schedule index as printed by `itinera show`
//   - A full item UUID or UUID prefix
func resolveItemID(ctx context.Context, app *App, tripID, input string) (string, error) {
	items, err := app.Itinerary.Schedule(ctx, tripID)
	if err != nil {
		return "", err
	}

	if index, err := strconv.Atoi(input); err == nil {
		if index < 0 || index >= len(items) {
			return "", fmt.Errorf("item index %d out of range [0,%d)", index, len(items))
		}
		return items[index].ID, nil
	}

	var matches []string
	for _, it := range items {
		if it.ID == input {
			return it.ID, nil
		}
		if strings.HasPrefix(it.ID, input) {
			matches = append(matches, it.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("item not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("item ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}
