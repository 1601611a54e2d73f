package domain

import (
	"fmt"
	"strings"
)

// Species is a short token used both for filtering and for categorizing a pet.
type Species string

const (
	SpeciesAny     Species = "any"
	SpeciesDog     Species = "dog"
	SpeciesCat     Species = "cat"
	SpeciesBird    Species = "bird"
	SpeciesHamster Species = "hamster"
	SpeciesRat     Species = "rat"
)

// Category is one row of the species catalog.
type Category struct {
	Token Species
	Label string
	Icon  string
}

var categories = [...]Category{
	{Token: SpeciesAny, Label: "Any Animal", Icon: "🐾"},
	{Token: SpeciesDog, Label: "Dogs", Icon: "🐕"},
	{Token: SpeciesCat, Label: "Cats", Icon: "🐈"},
	{Token: SpeciesBird, Label: "Birds", Icon: "🐦"},
	{Token: SpeciesHamster, Label: "Hamsters", Icon: "🐹"},
	{Token: SpeciesRat, Label: "Rats", Icon: "🐀"},
}

// Categories returns the species catalog in display order.
// The returned slice is a copy.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories[:])
	return out
}

// LookupCategory finds the catalog row for a token.
func LookupCategory(token Species) (Category, bool) {
	for _, c := range categories {
		if c.Token == token {
			return c, true
		}
	}
	return Category{}, false
}

func IsKnownSpecies(token Species) bool {
	_, ok := LookupCategory(token)
	return ok
}

// ParseSpeciesList parses a comma-separated list such as "dog,cat".
// Blank entries are skipped, duplicates keep their first position and
// unknown tokens fail with KindInvalidFilter.
func ParseSpeciesList(s string) ([]Species, error) {
	out := []Species{}
	seen := map[Species]bool{}

	for _, part := range strings.Split(s, ",") {
		tok := Species(strings.ToLower(strings.TrimSpace(part)))
		if tok == "" {
			continue
		}
		if !IsKnownSpecies(tok) {
			return nil, &OpError{
				Op:   "domain.parse_species",
				Kind: KindInvalidFilter,
				Err:  fmt.Errorf("%w: %q", ErrUnknownSpecies, string(tok)),
			}
		}
		if seen[tok] {
			continue
		}
		seen[tok] = true
		out = append(out, tok)
	}
	return out, nil
}
