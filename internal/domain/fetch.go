package domain

// FetchStatus is the lifecycle of the most recent customer fetch.
type FetchStatus string

const (
	FetchIdle    FetchStatus = "idle"
	FetchLoading FetchStatus = "loading"
	FetchSuccess FetchStatus = "success"
	FetchError   FetchStatus = "error"
)

// FetchState drives rendering of the result list. Customers keeps the last
// successfully fetched list; it is not cleared while a fetch is in flight
// nor replaced when a fetch fails.
type FetchState struct {
	Status    FetchStatus
	Customers []Customer
	Message   string
}

func (s FetchState) Loading() bool { return s.Status == FetchLoading }
