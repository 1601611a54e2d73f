package domain

import "fmt"

// FilterState is the free-text query plus the selected species, in the order
// they were selected. The zero value is an empty filter.
type FilterState struct {
	text     string
	selected []Species
}

func (f *FilterState) SetText(text string) { f.text = text }

func (f FilterState) Text() string { return f.text }

// Toggle flips the membership of token. Unknown tokens are rejected so the
// selection is always a subset of the catalog.
func (f *FilterState) Toggle(token Species) error {
	if !IsKnownSpecies(token) {
		return &OpError{
			Op:   "domain.filter.toggle",
			Kind: KindInvalidFilter,
			Err:  fmt.Errorf("%w: %q", ErrUnknownSpecies, string(token)),
		}
	}

	for i, s := range f.selected {
		if s == token {
			f.selected = append(f.selected[:i:i], f.selected[i+1:]...)
			return nil
		}
	}
	f.selected = append(f.selected, token)
	return nil
}

func (f FilterState) IsSelected(token Species) bool {
	for _, s := range f.selected {
		if s == token {
			return true
		}
	}
	return false
}

// Selected returns a copy of the selected species in selection order.
func (f FilterState) Selected() []Species {
	out := make([]Species, len(f.selected))
	copy(out, f.selected)
	return out
}

func (f *FilterState) ClearSpecies() { f.selected = nil }

// Query snapshots the filter into the parameters of the next fetch.
func (f FilterState) Query() SearchQuery {
	return SearchQuery{Text: f.text, Species: f.Selected()}
}
