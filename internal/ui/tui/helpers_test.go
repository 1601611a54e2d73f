package tui

import (
	"context"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aalvaropc/pawsearch/internal/domain"
)

// collect runs cmd and every command nested in a batch, returning the
// messages produced within a short window. Slow commands such as cursor
// blinks and spinner ticks are skipped.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}

	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()

	select {
	case msg := <-ch:
		if batch, ok := msg.(tea.BatchMsg); ok {
			var out []tea.Msg
			for _, c := range batch {
				out = append(out, collect(c)...)
			}
			return out
		}
		if msg == nil {
			return nil
		}
		return []tea.Msg{msg}
	case <-time.After(50 * time.Millisecond):
		return nil
	}
}

func find[T any](msgs []tea.Msg) (T, bool) {
	for _, m := range msgs {
		if v, ok := m.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

type fakeSearcher struct {
	mu        sync.Mutex
	customers []domain.Customer
	err       error
	queries   []domain.SearchQuery
}

func (f *fakeSearcher) Search(_ context.Context, q domain.SearchQuery) ([]domain.Customer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queries = append(f.queries, q)
	if f.err != nil {
		return nil, f.err
	}
	return f.customers, nil
}

func (f *fakeSearcher) last() domain.SearchQuery {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.queries) == 0 {
		return domain.SearchQuery{}
	}
	return f.queries[len(f.queries)-1]
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var ann = domain.Customer{
	ID:    "1",
	Name:  "Ann",
	Email: "a@x.com",
	Phone: "555",
	Pets:  []domain.Pet{{ID: "p1", Name: "Rex", Species: "dog"}},
}
