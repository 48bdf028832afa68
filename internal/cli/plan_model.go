package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/itinera/internal/cli/formatter"
	"github.com/alexanderramin/itinera/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type planKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	LiftUp  key.Binding
	PushDn  key.Binding
	Delete  key.Binding
	Refresh key.Binding
	Quit    key.Binding
}

var planKeys = planKeyMap{
	Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("j/k", "move cursor")),
	Down:    key.NewBinding(key.WithKeys("down", "j")),
	LiftUp:  key.NewBinding(key.WithKeys("shift+up", "K"), key.WithHelp("J/K", "move item")),
	PushDn:  key.NewBinding(key.WithKeys("shift+down", "J")),
	Delete:  key.NewBinding(key.WithKeys("d", "x"), key.WithHelp("d", "delete")),
	Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	Quit:    key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}

// planLoadedMsg carries a fresh derived schedule into the model.
type planLoadedMsg struct {
	items []domain.ItineraryItem
	err   error
}

// planModel is the interactive drag-reorder planner. Every move or
// delete goes through the itinerary service, so the schedule on screen
// is always the re-derived one.
type planModel struct {
	app  *App
	trip *domain.Trip

	items  []domain.ItineraryItem
	cursor int
	err    error
	quit   bool
}

func newPlanModel(app *App, trip *domain.Trip) *planModel {
	return &planModel{app: app, trip: trip}
}

func (m *planModel) Init() tea.Cmd {
	return m.load()
}

func (m *planModel) load() tea.Cmd {
	app, tripID := m.app, m.trip.ID
	return func() tea.Msg {
		items, err := app.Itinerary.Schedule(context.Background(), tripID)
		return planLoadedMsg{items: items, err: err}
	}
}

func (m *planModel) move(from, to int) tea.Cmd {
	app, tripID := m.app, m.trip.ID
	return func() tea.Msg {
		items, err := app.Itinerary.MoveItem(context.Background(), tripID, from, to)
		return planLoadedMsg{items: items, err: err}
	}
}

func (m *planModel) remove(itemID string) tea.Cmd {
	app, tripID := m.app, m.trip.ID
	return func() tea.Msg {
		if err := app.Itinerary.RemoveItem(context.Background(), tripID, itemID); err != nil {
			return planLoadedMsg{err: err}
		}
		items, err := app.Itinerary.Schedule(context.Background(), tripID)
		return planLoadedMsg{items: items, err: err}
	}
}

func (m *planModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case planLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.items = msg.items
		if m.cursor >= len(m.items) {
			m.cursor = len(m.items) - 1
		}
		if m.cursor < 0 {
			m.cursor = 0
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, planKeys.Quit):
			m.quit = true
			return m, tea.Quit
		case key.Matches(msg, planKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, planKeys.Down):
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case key.Matches(msg, planKeys.LiftUp):
			if m.cursor > 0 {
				from := m.cursor
				m.cursor--
				return m, m.move(from, from-1)
			}
		case key.Matches(msg, planKeys.PushDn):
			if m.cursor < len(m.items)-1 {
				from := m.cursor
				m.cursor++
				return m, m.move(from, from+1)
			}
		case key.Matches(msg, planKeys.Delete):
			if m.cursor < len(m.items) {
				return m, m.remove(m.items[m.cursor].ID)
			}
		case key.Matches(msg, planKeys.Refresh):
			return m, m.load()
		}
	}
	return m, nil
}

func (m *planModel) View() string {
	if m.quit {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n" + formatter.Header(m.trip.Name) + "\n")

	if m.err != nil {
		b.WriteString("\n  " + formatter.StyleRed.Render("Error: "+m.err.Error()) + "\n")
	}
	if len(m.items) == 0 {
		b.WriteString("\n  " + formatter.Dim("No places on this trip.") + "\n")
	}

	day := 0
	for i, it := range m.items {
		if it.Day != day {
			day = it.Day
			b.WriteString("\n  " + formatter.Bold(formatter.DayLabel(day, m.trip.StartDate)) + "\n")
		}

		cursor := "  "
		if i == m.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
		}
		b.WriteString(fmt.Sprintf("  %s%s  %s %s %s\n",
			cursor,
			formatter.StyleGreen.Render(it.DerivedTime),
			it.Name,
			formatter.KindBadge(it.Kind),
			formatter.Dim(formatter.FormatMinutes(it.DurationMin)),
		))
	}

	help := make([]string, 0, 5)
	for _, binding := range []key.Binding{planKeys.Up, planKeys.LiftUp, planKeys.Delete, planKeys.Refresh, planKeys.Quit} {
		h := binding.Help()
		help = append(help, h.Key+" "+h.Desc)
	}
	b.WriteString("\n  " + formatter.Dim(strings.Join(help, " · ")) + "\n")
	return b.String()
}
