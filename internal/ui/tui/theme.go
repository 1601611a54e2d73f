package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Help     lipgloss.Style
	Card     lipgloss.Style
	Heading  lipgloss.Style
	Toast    lipgloss.Style

	// Result list
	Name        lipgloss.Style
	Muted       lipgloss.Style
	Error       lipgloss.Style
	Tag         lipgloss.Style
	Placeholder lipgloss.Style

	// Species filter
	Trigger       lipgloss.Style
	TriggerActive lipgloss.Style
	Panel         lipgloss.Style
	Chip          lipgloss.Style
	ChipSelected  lipgloss.Style
	ChipFocused   lipgloss.Style
	Button        lipgloss.Style
	ButtonPrimary lipgloss.Style
}

func DefaultTheme() Theme {
	chip := lipgloss.NewStyle().
		Padding(0, 1).
		MarginRight(1).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("245"))

	return Theme{
		Title:    lipgloss.NewStyle().Bold(true),
		Subtitle: lipgloss.NewStyle().Faint(true),
		Help:     lipgloss.NewStyle().Faint(true),
		Card: lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")),
		Heading: lipgloss.NewStyle().Bold(true).MarginBottom(1),
		Toast:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")),

		Name:        lipgloss.NewStyle().Bold(true),
		Muted:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Tag:         lipgloss.NewStyle().Padding(0, 1).Background(lipgloss.Color("238")),
		Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color("238")),

		Trigger: lipgloss.NewStyle().
			Padding(0, 1).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("245")),
		TriggerActive: lipgloss.NewStyle().
			Padding(0, 1).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("33")),
		Panel: lipgloss.NewStyle().
			Padding(1, 1).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("245")),
		Chip:          chip,
		ChipSelected:  chip.Foreground(lipgloss.Color("231")).Background(lipgloss.Color("26")).BorderForeground(lipgloss.Color("26")),
		ChipFocused:   chip.BorderForeground(lipgloss.Color("33")),
		Button:        lipgloss.NewStyle().Padding(0, 2).MarginRight(2).BorderStyle(lipgloss.RoundedBorder()),
		ButtonPrimary: lipgloss.NewStyle().Padding(0, 2).BorderStyle(lipgloss.RoundedBorder()).Foreground(lipgloss.Color("231")).Background(lipgloss.Color("26")),
	}
}
