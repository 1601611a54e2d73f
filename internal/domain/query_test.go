package domain

import (
	"net/url"
	"testing"
)

func TestSearchQueryValues(t *testing.T) {
	cases := []struct {
		name        string
		q           SearchQuery
		wantText    string
		hasText     bool
		wantSpecies string
		hasSpecies  bool
	}{
		{name: "empty", q: SearchQuery{}},
		{name: "text only", q: SearchQuery{Text: "ann"}, wantText: "ann", hasText: true},
		{name: "text not trimmed", q: SearchQuery{Text: "  ann "}, wantText: "  ann ", hasText: true},
		{
			name:        "species in selection order",
			q:           SearchQuery{Species: []Species{SpeciesCat, SpeciesDog}},
			wantSpecies: "cat,dog",
			hasSpecies:  true,
		},
		{
			name:        "both",
			q:           SearchQuery{Text: "a@x.com", Species: []Species{SpeciesAny}},
			wantText:    "a@x.com",
			hasText:     true,
			wantSpecies: "any",
			hasSpecies:  true,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			v := c.q.Values()

			if _, ok := v[ParamSearchText]; ok != c.hasText {
				t.Fatalf("searchText present=%v, want %v", ok, c.hasText)
			}
			if got := v.Get(ParamSearchText); got != c.wantText {
				t.Fatalf("searchText=%q, want %q", got, c.wantText)
			}
			if _, ok := v[ParamSpecies]; ok != c.hasSpecies {
				t.Fatalf("species present=%v, want %v", ok, c.hasSpecies)
			}
			if got := v.Get(ParamSpecies); got != c.wantSpecies {
				t.Fatalf("species=%q, want %q", got, c.wantSpecies)
			}
		})
	}
}

func TestSearchQueryEncodeRoundTrip(t *testing.T) {
	q := SearchQuery{Text: "ann & bob", Species: []Species{SpeciesRat, SpeciesBird}}

	parsed, err := url.ParseQuery(q.Encode())
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if parsed.Get(ParamSearchText) != "ann & bob" {
		t.Fatalf("unexpected searchText %q", parsed.Get(ParamSearchText))
	}
	if parsed.Get(ParamSpecies) != "rat,bird" {
		t.Fatalf("unexpected species %q", parsed.Get(ParamSpecies))
	}

	if (SearchQuery{}).Encode() != "" {
		t.Fatalf("empty query should encode to empty string")
	}
}
