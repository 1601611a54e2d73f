package tui

import (
	"github.com/aalvaropc/pawsearch/internal/domain"
	"github.com/aalvaropc/pawsearch/internal/usecase"
)

// queryChangedMsg carries the full input value after every edit.
type queryChangedMsg struct {
	Value string
}

type speciesToggledMsg struct {
	Token domain.Species
}

type filtersResetMsg struct{}

type filtersAppliedMsg struct{}

type debounceElapsedMsg struct {
	gen uint64
}

type customersFetchedMsg struct {
	result usecase.FetchResult
}
