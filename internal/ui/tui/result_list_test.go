package tui

import (
	"strings"
	"testing"

	"github.com/aalvaropc/pawsearch/internal/domain"
)

func TestRenderResultList_LoadingShowsEightPlaceholders(t *testing.T) {
	st := domain.FetchState{Status: domain.FetchLoading, Customers: []domain.Customer{ann}}

	out := renderResultList(st, DefaultTheme(), 0)

	lines := strings.Split(out, "\n")
	if len(lines) != placeholderRows {
		t.Fatalf("expected %d rows, got %d:\n%s", placeholderRows, len(lines), out)
	}
	for i, l := range lines {
		if !strings.Contains(l, placeholderGlyph) {
			t.Fatalf("row %d is not a placeholder: %q", i, l)
		}
	}
	if strings.Contains(out, "Ann") {
		t.Fatalf("loading must not render customers, got:\n%s", out)
	}
}

func TestRenderResultList_ErrorShowsOnlyMessage(t *testing.T) {
	st := domain.FetchState{
		Status:    domain.FetchError,
		Customers: []domain.Customer{ann},
		Message:   domain.GenericFailureMessage,
	}

	out := renderResultList(st, DefaultTheme(), 0)

	if !strings.Contains(out, domain.GenericFailureMessage) {
		t.Fatalf("expected generic message, got:\n%s", out)
	}
	if strings.Contains(out, "Ann") || strings.Contains(out, emptyStateText) {
		t.Fatalf("error branch must be exclusive, got:\n%s", out)
	}
}

func TestRenderResultList_Empty(t *testing.T) {
	for _, status := range []domain.FetchStatus{domain.FetchIdle, domain.FetchSuccess} {
		out := renderResultList(domain.FetchState{Status: status}, DefaultTheme(), 0)
		if !strings.Contains(out, emptyStateText) {
			t.Fatalf("status %s: expected empty state, got:\n%s", status, out)
		}
	}
}

func TestRenderResultList_Rows(t *testing.T) {
	bob := domain.Customer{ID: "2", Name: "Bob", Email: "b@x.com", Phone: "777", Pets: []domain.Pet{}}
	st := domain.FetchState{Status: domain.FetchSuccess, Customers: []domain.Customer{ann, bob}}

	out := renderResultList(st, DefaultTheme(), 0)

	for _, want := range []string{"Ann", "a@x.com • 555", "Rex (dog)", "Bob", "b@x.com • 777"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in:\n%s", want, out)
		}
	}
	if strings.Index(out, "Ann") > strings.Index(out, "Bob") {
		t.Fatalf("rows out of order:\n%s", out)
	}

	// Bob has no pets: his block ends at the contact line.
	if !strings.HasSuffix(strings.TrimRight(out, " "), "b@x.com • 777") {
		t.Fatalf("expected no tag row for a customer without pets:\n%s", out)
	}
}

func TestRenderResultList_ClampsLongNames(t *testing.T) {
	long := domain.Customer{Name: strings.Repeat("n", 50), Email: "e", Phone: "p"}
	st := domain.FetchState{Status: domain.FetchSuccess, Customers: []domain.Customer{long}}

	out := renderResultList(st, DefaultTheme(), 10)

	if strings.Contains(out, strings.Repeat("n", 11)) {
		t.Fatalf("expected name clamped to 10 runes, got:\n%s", out)
	}
	if !strings.Contains(out, "…") {
		t.Fatalf("expected ellipsis, got:\n%s", out)
	}
}

func TestClampString(t *testing.T) {
	cases := []struct {
		in   string
		max  int
		want string
	}{
		{"hello", 0, "hello"},
		{"hello", 5, "hello"},
		{"hello world", 5, "hell…"},
		{"🐕🐕🐕", 2, "🐕…"},
	}
	for _, c := range cases {
		if got := clampString(c.in, c.max); got != c.want {
			t.Errorf("clampString(%q, %d) = %q, want %q", c.in, c.max, got, c.want)
		}
	}
}
