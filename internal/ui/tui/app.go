package tui

import (
	"context"
	"io"
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aalvaropc/pawsearch/internal/usecase"
)

const (
	headerTitle = "Customers and Pets"
	cardTitle   = "Customers Data"

	// rows used by everything above and below the results viewport
	chromeHeight = 14
)

type model struct {
	theme Theme
	deps  Deps
	keys  keyMap
	log   *slog.Logger

	ctrl   *usecase.Controller
	search *usecase.SearchCustomers

	query   QueryInput
	species SpeciesFilter
	spinner spinner.Model
	results viewport.Model
	help    help.Model

	width int
	ready bool
	toast string
}

func Run(deps Deps) error {
	m := newModel(deps)
	defer m.ctrl.Close()

	p := tea.NewProgram(wrapSafe(m, m.log), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	log := deps.Logger
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	keys := defaultKeyMap()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := model{
		theme:   DefaultTheme(),
		deps:    deps,
		keys:    keys,
		log:     log,
		ctrl:    usecase.NewController(),
		search:  usecase.NewSearchCustomers(deps.Searcher, log),
		query:   NewQueryInput(),
		species: NewSpeciesFilter(keys),
		spinner: sp,
		help:    help.New(),
	}
	m.query.Focus()

	if deps.ConfigErr != nil {
		log.Warn("config.fallback_defaults", "err", deps.ConfigErr)
		m.toast = userMessage(deps.ConfigErr)
	}
	return m
}

// Init issues the initial fetch with the empty filter.
func (m model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.startFetch())
}

func (m model) startFetch() tea.Cmd {
	ticket, ctx := m.ctrl.Begin(context.Background())
	return tea.Batch(cmdFetch(ctx, m.search, ticket), m.spinner.Tick)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		m.query.SetWidth(max(msg.Width-30, 10))

		h := max(msg.Height-chromeHeight, 3)
		if !m.ready {
			m.results = viewport.New(max(msg.Width-8, 10), h)
			m.ready = true
		} else {
			m.results.Width = max(msg.Width-8, 10)
			m.results.Height = h
		}
		m.syncResults()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case queryChangedMsg:
		gen, changed := m.ctrl.SetQuery(msg.Value)
		if !changed {
			return m, nil
		}
		return m, cmdDebounce(gen, m.deps.Debounce)

	case debounceElapsedMsg:
		if !m.ctrl.DebounceElapsed(msg.gen) {
			return m, nil
		}
		cmd := m.startFetch()
		m.syncResults()
		return m, cmd

	case speciesToggledMsg:
		if err := m.ctrl.ToggleSpecies(msg.Token); err != nil {
			m.log.Warn("filter.toggle_failed", "species", string(msg.Token), "err", err)
			m.toast = userMessage(err)
		}
		return m, nil

	case filtersResetMsg:
		m.ctrl.Reset()
		m.syncResults()
		return m, nil

	case filtersAppliedMsg:
		cmd := m.startFetch()
		focus := m.query.Focus()
		m.syncResults()
		return m, tea.Batch(cmd, focus)

	case customersFetchedMsg:
		if !m.ctrl.Complete(msg.result) {
			m.log.Debug("search.stale_dropped", "seq", msg.result.Seq)
			return m, nil
		}
		m.syncResults()
		m.results.GotoTop()
		return m, nil

	case spinner.TickMsg:
		if !m.ctrl.State().Loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.query, cmd = m.query.Update(msg)
	return m, cmd
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.toast = ""

	if msg.Type == tea.KeyCtrlC {
		m.ctrl.Close()
		return m, tea.Quit
	}

	if m.species.Open() {
		if key.Matches(msg, m.keys.Filters) {
			m.species.SetOpen(false)
			focus := m.query.Focus()
			return m, focus
		}
		var cmd tea.Cmd
		m.species, cmd = m.species.Update(msg)
		if !m.species.Open() {
			focus := m.query.Focus()
			return m, tea.Batch(cmd, focus)
		}
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.ctrl.Close()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Filters):
		m.species.SetOpen(true)
		m.query.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		cmd := m.startFetch()
		m.syncResults()
		return m, cmd

	case key.Matches(msg, m.keys.Scroll):
		var cmd tea.Cmd
		m.results, cmd = m.results.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.query, cmd = m.query.Update(msg)
	return m, cmd
}

func (m *model) syncResults() {
	if !m.ready {
		return
	}
	m.results.SetContent(renderResultList(m.ctrl.State(), m.theme, m.results.Width))
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)

	header := m.theme.Title.Render(headerTitle) + "\n" +
		m.theme.Subtitle.Render("Find customers by contact details or by their pets") + "\n"

	filterRow := lipgloss.JoinHorizontal(lipgloss.Center,
		m.query.View(),
		"  ",
		m.species.TriggerView(m.ctrl.Filter(), m.theme),
	)

	var panel string
	if m.species.Open() {
		panel = "\n" + m.species.View(m.ctrl.Filter(), m.theme)
	}

	heading := cardTitle
	if m.ctrl.State().Loading() {
		heading += " " + m.spinner.View()
	}

	var body string
	if m.ready {
		body = m.results.View()
	} else {
		body = renderResultList(m.ctrl.State(), m.theme, 0)
	}
	card := m.theme.Card.Render(m.theme.Heading.Render(heading) + "\n" + body)

	var toast string
	if m.toast != "" {
		toast = "\n" + m.theme.Toast.Render(clampString(m.toast, m.width-4))
	}

	var helpView string
	if m.species.Open() {
		helpView = m.help.View(panelKeys{m.keys})
	} else {
		helpView = m.help.View(m.keys)
	}

	return wrap.Render(header + "\n" + filterRow + panel + "\n\n" + card + toast + "\n" + m.theme.Help.Render(helpView))
}
