package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/itinera/internal/contract"
	"github.com/alexanderramin/itinera/internal/domain"
)

// FormatSchedule renders the derived schedule grouped by day. Items are
// expected in canonical order; a flat index prefixes each row so move
// and remove commands can address items by position.
func FormatSchedule(trip *domain.Trip, items []domain.ItineraryItem) string {
	var b strings.Builder

	title := trip.Name
	if trip.Destination != "" {
		title += " — " + trip.Destination
	}
	b.WriteString(Header(title))
	b.WriteString("\n")

	if len(items) == 0 {
		b.WriteString("\n" + Dim("No places yet. Add one with `itinera place add`."))
		return b.String()
	}

	day := 0
	for i, it := range items {
		if it.Day != day {
			day = it.Day
			b.WriteString("\n" + StyleBold.Render(DayLabel(day, trip.StartDate)) + "\n")
		}
		b.WriteString(formatScheduleRow(i, it))
		b.WriteString("\n")
	}
	return b.String()
}

func formatScheduleRow(index int, it domain.ItineraryItem) string {
	star := " "
	if it.Favorite {
		star = StyleYellow.Render("★")
	}

	anchor := " "
	if it.StartTime != "" {
		// Pinned start times are marked so derived slots read differently.
		anchor = StyleBlue.Render("⚓")
	}

	line := fmt.Sprintf("  %s %s%s %s %s %s %s",
		Dim(fmt.Sprintf("%2d", index)),
		StyleGreen.Render(it.DerivedTime),
		anchor,
		star,
		it.Name,
		KindBadge(it.Kind),
		Dim(FormatMinutes(it.DurationMin)),
	)
	if it.Notes != "" {
		line += "\n      " + Dim(Truncate(it.Notes, 70))
	}
	return line
}

// FormatTripList renders the trip table.
func FormatTripList(trips []*domain.Trip) string {
	rows := make([][]string, 0, len(trips))
	for _, t := range trips {
		start := Dim("—")
		if t.StartDate != nil {
			start = t.StartDate.Format("2006-01-02")
		}
		rows = append(rows, []string{
			t.ID[:8],
			t.Name,
			t.Destination,
			start,
			fmt.Sprintf("%d", t.Days),
		})
	}
	return RenderTable([]string{"ID", "NAME", "DESTINATION", "START", "DAYS"}, rows)
}

// FormatCandidates renders place-search results.
func FormatCandidates(cands []contract.PlaceCandidate) string {
	rows := make([][]string, 0, len(cands))
	for _, c := range cands {
		dur := ""
		if c.DurationMin != nil {
			dur = FormatMinutes(*c.DurationMin)
		}
		rows = append(rows, []string{
			c.Name,
			KindBadge(domain.PlaceKind(c.Kind)),
			dur,
			Dim(strings.Join(c.Tags, ", ")),
		})
	}
	return RenderTable([]string{"NAME", "KIND", "DURATION", "TAGS"}, rows)
}
