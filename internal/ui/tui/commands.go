package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aalvaropc/pawsearch/internal/usecase"
)

func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

// cmdDebounce fires debounceElapsedMsg for gen once d has passed.
func cmdDebounce(gen uint64, d time.Duration) tea.Cmd {
	if d <= 0 {
		return emit(debounceElapsedMsg{gen: gen})
	}
	return tea.Tick(d, func(time.Time) tea.Msg {
		return debounceElapsedMsg{gen: gen}
	})
}

// cmdFetch runs one ticket off the update loop. ctx is owned by the
// controller and is cancelled when the ticket is superseded.
func cmdFetch(ctx context.Context, uc *usecase.SearchCustomers, t usecase.FetchTicket) tea.Cmd {
	return func() tea.Msg {
		return customersFetchedMsg{result: uc.Execute(ctx, t)}
	}
}
