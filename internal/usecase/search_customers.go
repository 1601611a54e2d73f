package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/aalvaropc/pawsearch/internal/domain"
	"github.com/aalvaropc/pawsearch/internal/ports"
)

type SearchCustomers struct {
	searcher ports.CustomerSearcher
	log      *slog.Logger
}

func NewSearchCustomers(s ports.CustomerSearcher, log *slog.Logger) *SearchCustomers {
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &SearchCustomers{searcher: s, log: log}
}

// Execute runs one ticket against the searcher. It never panics on a nil
// searcher; the failure is reported through FetchResult.Err.
func (uc *SearchCustomers) Execute(ctx context.Context, t FetchTicket) FetchResult {
	if uc.searcher == nil {
		return FetchResult{Seq: t.Seq, Err: &domain.OpError{
			Op:   "usecase.search",
			Kind: domain.KindExecution,
			Err:  errors.New("customer searcher is nil"),
		}}
	}

	start := time.Now()
	uc.log.Info("search.start",
		"seq", t.Seq,
		"search_text", t.Query.Text,
		"species", t.Query.Species,
	)

	customers, err := uc.searcher.Search(ctx, t.Query)
	latency := time.Since(start).Milliseconds()

	switch {
	case err != nil && errors.Is(err, context.Canceled):
		uc.log.Debug("search.cancelled", "seq", t.Seq, "latency_ms", latency)
		return FetchResult{Seq: t.Seq, Err: err}
	case err != nil:
		uc.log.Error("search.failed",
			"seq", t.Seq,
			"kind", string(domain.KindOf(err)),
			"err", err,
			"latency_ms", latency,
		)
		return FetchResult{Seq: t.Seq, Err: err}
	}

	uc.log.Info("search.ok", "seq", t.Seq, "count", len(customers), "latency_ms", latency)
	return FetchResult{Seq: t.Seq, Customers: customers}
}
