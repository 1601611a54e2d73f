package usecase

import (
	"context"

	"github.com/aalvaropc/pawsearch/internal/domain"
)

// FetchTicket identifies one issued fetch. Only the most recently issued
// ticket may change the displayed results.
type FetchTicket struct {
	Seq   uint64
	Query domain.SearchQuery
}

// FetchResult is the outcome of executing a ticket.
type FetchResult struct {
	Seq       uint64
	Customers []domain.Customer
	Err       error
}

// Controller owns the filter state and the fetch state of the search panel.
//
// Trigger policy: text changes fetch automatically once the debounce for the
// latest change elapses (empty text included), species changes fetch only on
// Apply. Every fetch gets a sequence number; completions for anything but the
// latest ticket are dropped, and issuing a ticket cancels the previous one.
//
// Controller is not safe for concurrent use. It is driven from the Bubble Tea
// update loop, which is single-threaded.
type Controller struct {
	filter domain.FilterState
	fetch  domain.FetchState

	seq     uint64
	pending bool
	cancel  context.CancelFunc

	textGen uint64
}

func NewController() *Controller {
	return &Controller{
		fetch: domain.FetchState{Status: domain.FetchIdle, Customers: []domain.Customer{}},
	}
}

func (c *Controller) Filter() domain.FilterState { return c.filter }

func (c *Controller) State() domain.FetchState { return c.fetch }

// SetQuery records the text and returns the debounce generation a later
// DebounceElapsed call must present. changed is false when the text is the same.
func (c *Controller) SetQuery(text string) (gen uint64, changed bool) {
	if text == c.filter.Text() {
		return c.textGen, false
	}
	c.filter.SetText(text)
	c.textGen++
	return c.textGen, true
}

// DebounceElapsed reports whether gen still belongs to the latest text change.
func (c *Controller) DebounceElapsed(gen uint64) bool {
	return gen == c.textGen
}

func (c *Controller) ToggleSpecies(token domain.Species) error {
	return c.filter.Toggle(token)
}

// Reset clears the species selection and the displayed results. It does not
// fetch; an in-flight fetch is cancelled and its result will be dropped.
func (c *Controller) Reset() {
	c.filter.ClearSpecies()
	c.invalidate()
	c.fetch = domain.FetchState{Status: domain.FetchIdle, Customers: []domain.Customer{}}
}

// Begin issues a new fetch: status becomes loading, the previous error is
// cleared and the previous results stay until this fetch resolves. The
// returned context is cancelled when a newer ticket is issued or on Reset.
func (c *Controller) Begin(parent context.Context) (FetchTicket, context.Context) {
	c.invalidate()

	c.seq++
	ctx, cancel := context.WithCancel(parent)
	c.cancel = cancel
	c.pending = true

	c.fetch.Status = domain.FetchLoading
	c.fetch.Message = ""

	return FetchTicket{Seq: c.seq, Query: c.filter.Query()}, ctx
}

// Complete applies a result and reports whether it was applied. Stale results
// leave the state untouched.
func (c *Controller) Complete(res FetchResult) bool {
	if !c.pending || res.Seq != c.seq {
		return false
	}
	c.pending = false
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}

	if res.Err != nil {
		c.fetch.Status = domain.FetchError
		c.fetch.Message = domain.GenericFailureMessage
		return true
	}

	customers := res.Customers
	if customers == nil {
		customers = []domain.Customer{}
	}
	c.fetch = domain.FetchState{Status: domain.FetchSuccess, Customers: customers}
	return true
}

// InFlight reports whether the latest ticket is still outstanding.
func (c *Controller) InFlight() bool { return c.pending }

// Close cancels any outstanding fetch.
func (c *Controller) Close() { c.invalidate() }

func (c *Controller) invalidate() {
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	if c.pending {
		c.pending = false
		c.seq++
	}
}
