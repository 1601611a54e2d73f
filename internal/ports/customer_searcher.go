package ports

import (
	"context"

	"github.com/aalvaropc/pawsearch/internal/domain"
)

// CustomerSearcher queries the customer-search endpoint.
type CustomerSearcher interface {
	Search(ctx context.Context, q domain.SearchQuery) ([]domain.Customer, error)
}
