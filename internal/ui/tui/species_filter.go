package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aalvaropc/pawsearch/internal/domain"
)

const gridColumns = 3

// SpeciesFilter is the disclosure panel over the species catalog. It never
// owns the selection: it reads it from the FilterState passed to View and
// reports intents (toggle, reset, apply) as messages.
type SpeciesFilter struct {
	keys       keyMap
	categories []domain.Category

	open   bool
	cursor int
}

func NewSpeciesFilter(keys keyMap) SpeciesFilter {
	return SpeciesFilter{keys: keys, categories: domain.Categories()}
}

func (s SpeciesFilter) Open() bool { return s.open }

// SetOpen shows or hides the panel. It has no effect on the filter.
func (s *SpeciesFilter) SetOpen(open bool) { s.open = open }

// Focused returns the category under the cursor.
func (s SpeciesFilter) Focused() domain.Category { return s.categories[s.cursor] }

func (s SpeciesFilter) Update(msg tea.Msg) (SpeciesFilter, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok || !s.open {
		return s, nil
	}

	switch {
	case key.Matches(km, s.keys.Left):
		s.move(-1)
	case key.Matches(km, s.keys.Right):
		s.move(1)
	case key.Matches(km, s.keys.Up):
		s.move(-gridColumns)
	case key.Matches(km, s.keys.Down):
		s.move(gridColumns)

	case key.Matches(km, s.keys.Toggle):
		return s, emit(speciesToggledMsg{Token: s.Focused().Token})
	case key.Matches(km, s.keys.Reset):
		return s, emit(filtersResetMsg{})
	case key.Matches(km, s.keys.Apply):
		s.open = false
		return s, emit(filtersAppliedMsg{})
	case key.Matches(km, s.keys.Close):
		s.open = false
	}
	return s, nil
}

func (s *SpeciesFilter) move(delta int) {
	next := s.cursor + delta
	if next < 0 || next >= len(s.categories) {
		return
	}
	s.cursor = next
}

// TriggerLabel is "Pets" with nothing selected and "N selected" otherwise.
func TriggerLabel(selected int) string {
	if selected == 0 {
		return "Pets"
	}
	return strconv.Itoa(selected) + " selected"
}

func (s SpeciesFilter) TriggerView(f domain.FilterState, th Theme) string {
	arrow := "▾"
	style := th.Trigger
	if s.open {
		arrow = "▴"
		style = th.TriggerActive
	}
	return style.Render("🐾 " + TriggerLabel(len(f.Selected())) + " " + arrow)
}

// View renders the panel body. It is empty while the panel is closed.
func (s SpeciesFilter) View(f domain.FilterState, th Theme) string {
	if !s.open {
		return ""
	}

	var rows []string
	for start := 0; start < len(s.categories); start += gridColumns {
		end := min(start+gridColumns, len(s.categories))

		cells := make([]string, 0, gridColumns)
		for i := start; i < end; i++ {
			cells = append(cells, s.renderToggle(i, f, th))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	buttons := lipgloss.JoinHorizontal(lipgloss.Top,
		th.Button.Render("Reset (r)"),
		th.ButtonPrimary.Render("Apply (enter)"),
	)

	return th.Panel.Render(strings.Join(rows, "\n") + "\n\n" + buttons)
}

func (s SpeciesFilter) renderToggle(i int, f domain.FilterState, th Theme) string {
	c := s.categories[i]

	mark := "[ ]"
	style := th.Chip
	if f.IsSelected(c.Token) {
		mark = "[x]"
		style = th.ChipSelected
	}
	if i == s.cursor {
		style = style.BorderForeground(th.ChipFocused.GetBorderTopForeground())
	}

	label := mark + " " + c.Icon + " " + c.Label
	return style.Width(24).Render(label)
}
