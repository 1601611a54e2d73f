package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Filters key.Binding
	Refresh key.Binding
	Quit    key.Binding
	Scroll  key.Binding

	// Species panel
	Left   key.Binding
	Right  key.Binding
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Reset  key.Binding
	Apply  key.Binding
	Close  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Filters: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "pets filter")),
		Refresh: key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "search again")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit")),
		Scroll:  key.NewBinding(key.WithKeys("pgup", "pgdown"), key.WithHelp("pgup/pgdn", "scroll")),

		Left:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Toggle: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle")),
		Reset:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Apply:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply")),
		Close:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
	}
}

// panelKeys is the help.KeyMap shown while the species panel is open.
type panelKeys struct{ keyMap }

func (k panelKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Apply, k.Reset, k.Close}
}

func (k panelKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Left, k.Right, k.Up, k.Down}, k.ShortHelp()}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Filters, k.Refresh, k.Scroll, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
