package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const queryPlaceholder = "Search by ID, name, email or phone"

// QueryInput is the free-text search field. It does not debounce, trim or
// validate; every change of the full value is reported as queryChangedMsg.
type QueryInput struct {
	input textinput.Model
}

func NewQueryInput() QueryInput {
	ti := textinput.New()
	ti.Placeholder = queryPlaceholder
	ti.Prompt = "🔎 "
	ti.CharLimit = 256
	ti.Width = 40
	return QueryInput{input: ti}
}

func (q QueryInput) Value() string { return q.input.Value() }

func (q *QueryInput) Focus() tea.Cmd { return q.input.Focus() }

func (q *QueryInput) Blur() { q.input.Blur() }

func (q QueryInput) Focused() bool { return q.input.Focused() }

func (q *QueryInput) SetWidth(w int) { q.input.Width = w }

func (q QueryInput) Update(msg tea.Msg) (QueryInput, tea.Cmd) {
	before := q.input.Value()

	var cmd tea.Cmd
	q.input, cmd = q.input.Update(msg)

	if after := q.input.Value(); after != before {
		return q, tea.Batch(cmd, emit(queryChangedMsg{Value: after}))
	}
	return q, cmd
}

func (q QueryInput) View() string { return q.input.View() }
