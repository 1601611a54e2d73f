package domain

import (
	"errors"
	"fmt"
)

// GenericFailureMessage is the only text a user ever sees for a failed fetch.
const GenericFailureMessage = "Something went wrong. Please try again."

// Sentinel errors for broad classification.
var (
	ErrNotFound         = errors.New("not found")
	ErrInvalidConfig    = errors.New("invalid config")
	ErrUnknownSpecies   = errors.New("unknown species")
	ErrUnexpectedStatus = errors.New("unexpected status")
	ErrMalformedPayload = errors.New("malformed payload")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindNotFound         ErrorKind = "not_found"
	KindInvalidConfig    ErrorKind = "invalid_config"
	KindInvalidFilter    ErrorKind = "invalid_filter"
	KindTransport        ErrorKind = "transport"
	KindHTTPStatus       ErrorKind = "http_status"
	KindMalformedPayload ErrorKind = "malformed_payload"
	KindExecution        ErrorKind = "execution"
)

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op   string
	Kind ErrorKind
	Path string // Optional: relevant file path or URL
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsKind helps callers classify errors without depending on infra packages.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}

// KindOf returns the kind of the outermost OpError in err's chain, or "" if none.
func KindOf(err error) ErrorKind {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind
	}
	return ""
}
