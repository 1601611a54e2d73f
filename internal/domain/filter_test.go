package domain

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFilterToggleIsInvolution(t *testing.T) {
	var f FilterState
	if err := f.Toggle(SpeciesCat); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	before := f.Selected()

	for _, tok := range []Species{SpeciesDog, SpeciesAny, SpeciesCat} {
		if err := f.Toggle(tok); err != nil {
			t.Fatalf("toggle %s: %v", tok, err)
		}
		if err := f.Toggle(tok); err != nil {
			t.Fatalf("toggle %s again: %v", tok, err)
		}
		if diff := cmp.Diff(before, f.Selected()); diff != "" {
			t.Fatalf("double toggle of %s changed selection (-before +after):\n%s", tok, diff)
		}
	}
}

func TestFilterToggleKeepsSelectionOrder(t *testing.T) {
	var f FilterState
	for _, tok := range []Species{SpeciesRat, SpeciesDog, SpeciesAny, SpeciesBird} {
		if err := f.Toggle(tok); err != nil {
			t.Fatalf("toggle: %v", err)
		}
	}
	if err := f.Toggle(SpeciesDog); err != nil {
		t.Fatalf("toggle: %v", err)
	}

	want := []Species{SpeciesRat, SpeciesAny, SpeciesBird}
	if diff := cmp.Diff(want, f.Selected()); diff != "" {
		t.Fatalf("selection mismatch (-want +got):\n%s", diff)
	}
	if f.IsSelected(SpeciesDog) {
		t.Fatalf("dog should be deselected")
	}
	if !f.IsSelected(SpeciesAny) {
		t.Fatalf("any should stay selected alongside other tokens")
	}
}

func TestFilterToggleRejectsUnknown(t *testing.T) {
	var f FilterState
	err := f.Toggle("iguana")
	if !IsKind(err, KindInvalidFilter) {
		t.Fatalf("expected invalid_filter, got %v", err)
	}
	if len(f.Selected()) != 0 {
		t.Fatalf("unknown token must not be added")
	}
}

func TestFilterSelectedIsCopy(t *testing.T) {
	var f FilterState
	_ = f.Toggle(SpeciesDog)
	_ = f.Toggle(SpeciesCat)

	sel := f.Selected()
	sel[0] = SpeciesRat

	if !f.IsSelected(SpeciesDog) || f.IsSelected(SpeciesRat) {
		t.Fatalf("filter mutated through Selected()")
	}

	q := f.Query()
	_ = f.Toggle(SpeciesDog)
	if len(q.Species) != 2 {
		t.Fatalf("query snapshot changed after toggle: %v", q.Species)
	}
}

func TestFilterClearSpeciesKeepsText(t *testing.T) {
	var f FilterState
	f.SetText("ann")
	_ = f.Toggle(SpeciesDog)
	f.ClearSpecies()

	if len(f.Selected()) != 0 {
		t.Fatalf("expected empty selection")
	}
	if f.Text() != "ann" {
		t.Fatalf("expected text to survive ClearSpecies, got %q", f.Text())
	}
}
