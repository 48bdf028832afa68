package cli

import (
	"fmt"
	"strconv"

	"github.com/alexanderramin/itinera/internal/cli/formatter"
	"github.com/alexanderramin/itinera/internal/contract"
	"github.com/alexanderramin/itinera/internal/domain"
	"github.com/alexanderramin/itinera/internal/scheduler"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// itineraHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func itineraHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func kindOptions() []huh.Option[string] {
	kinds := []domain.PlaceKind{
		domain.PlaceSight,
		domain.PlaceFood,
		domain.PlaceLodging,
		domain.PlaceTransit,
		domain.PlaceActivity,
		domain.PlaceShopping,
		domain.PlaceOther,
	}
	options := make([]huh.Option[string], 0, len(kinds))
	for _, k := range kinds {
		options = append(options, huh.NewOption(string(k), string(k)))
	}
	return options
}

// runAddPlaceForm collects place fields interactively, filling cand and
// day in place.
func runAddPlaceForm(cand *contract.PlaceCandidate, day *int) error {
	var dayStr, timeStr, durStr string
	if *day > 0 {
		dayStr = strconv.Itoa(*day)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Place Name").
				Value(&cand.Name).
				Validate(validateRequired),
			huh.NewSelect[string]().
				Title("Kind").
				Options(kindOptions()...).
				Value(&cand.Kind),
			huh.NewInput().
				Title("Day").
				Placeholder("1").
				Value(&dayStr).
				Validate(validateOptionalPositiveInt),
			huh.NewInput().
				Title("Start Time (HH:MM, blank for flowing)").
				Placeholder("14:00").
				Value(&timeStr).
				Validate(validateOptionalClock),
			huh.NewInput().
				Title("Duration Minutes (blank for default)").
				Placeholder("60").
				Value(&durStr).
				Validate(validateOptionalPositiveInt),
			huh.NewText().
				Title("Notes").
				Value(&cand.Notes),
		),
	).WithTheme(itineraHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return err
	}

	if dayStr != "" {
		d, _ := strconv.Atoi(dayStr)
		*day = d
	}
	if timeStr != "" {
		cand.StartTime = &timeStr
	}
	if durStr != "" {
		d, _ := strconv.Atoi(durStr)
		cand.DurationMin = &d
	}
	return nil
}

func validateRequired(s string) error {
	if s == "" {
		return fmt.Errorf("required")
	}
	return nil
}

func validateOptionalPositiveInt(s string) error {
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return fmt.Errorf("must be a positive integer")
	}
	return nil
}

func validateOptionalClock(s string) error {
	if s == "" {
		return nil
	}
	if _, ok := scheduler.ParseClock(s); !ok {
		return fmt.Errorf("must be HH:MM")
	}
	return nil
}
