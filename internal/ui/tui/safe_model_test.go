package tui

import (
	"testing"
)

func TestSafeModel_RecoversUpdatePanic(t *testing.T) {
	// A zero model has no controller, so any filter message panics.
	s := wrapSafe(model{}, nil)

	next, cmd := s.Update(queryChangedMsg{Value: "x"})

	sm, ok := next.(safeModel)
	if !ok {
		t.Fatalf("expected safeModel, got %T", next)
	}
	if cmd != nil {
		t.Fatalf("expected no command after a panic")
	}
	if sm.m.toast != "Unexpected error (see logs)" {
		t.Fatalf("expected error toast, got %q", sm.m.toast)
	}
}

func TestSafeModel_RecoversViewPanic(t *testing.T) {
	s := wrapSafe(model{}, nil)

	if got := s.View(); got != "Unexpected error (see logs)" {
		t.Fatalf("unexpected view %q", got)
	}
}
