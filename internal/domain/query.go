package domain

import (
	"net/url"
	"strings"
)

const (
	ParamSearchText = "searchText"
	ParamSpecies    = "species"
)

// SearchQuery is the input of a single customer search.
type SearchQuery struct {
	Text    string
	Species []Species
}

// Values builds the query parameters. Empty dimensions are omitted entirely;
// the text is sent verbatim.
func (q SearchQuery) Values() url.Values {
	v := url.Values{}
	if q.Text != "" {
		v.Set(ParamSearchText, q.Text)
	}
	if len(q.Species) > 0 {
		tokens := make([]string, len(q.Species))
		for i, s := range q.Species {
			tokens[i] = string(s)
		}
		v.Set(ParamSpecies, strings.Join(tokens, ","))
	}
	return v
}

func (q SearchQuery) Encode() string {
	return q.Values().Encode()
}
