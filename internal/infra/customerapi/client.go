// Package customerapi talks to the remote customer-search endpoint.
package customerapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/aalvaropc/pawsearch/internal/domain"
	"github.com/aalvaropc/pawsearch/internal/infra/httpclient"
	"github.com/aalvaropc/pawsearch/internal/ports"
)

type Client struct {
	baseURL string
	path    string
	exec    *httpclient.Executor
	locate  resultsLocator
	log     *slog.Logger
	newID   func() string
}

type Option func(*Client)

func WithExecutor(e *httpclient.Executor) Option {
	return func(c *Client) { c.exec = e }
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.log = l }
}

// WithRequestIDs overrides X-Request-ID generation (useful for tests).
func WithRequestIDs(gen func() string) Option {
	return func(c *Client) { c.newID = gen }
}

// New builds a Client from the API section of the config.
func New(cfg domain.APIConfig, opts ...Option) (*Client, error) {
	resultsPath := strings.TrimSpace(cfg.ResultsPath)
	if resultsPath == "" {
		resultsPath = domain.DefaultConfig().API.ResultsPath
	}
	locate, err := compileResultsPath(resultsPath)
	if err != nil {
		return nil, err
	}

	hc := httpclient.DefaultConfig()
	if cfg.Timeout > 0 {
		hc.Timeout = cfg.Timeout
	}

	c := &Client{
		baseURL: cfg.BaseURL,
		path:    cfg.Path,
		exec: httpclient.NewExecutor(
			httpclient.WithClient(httpclient.New(hc)),
			httpclient.WithTimeout(hc.Timeout),
		),
		locate: locate,
		log:    slog.New(slog.NewJSONHandler(io.Discard, nil)),
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

var _ ports.CustomerSearcher = (*Client)(nil)

func (c *Client) Search(ctx context.Context, q domain.SearchQuery) ([]domain.Customer, error) {
	reqID := c.newID()

	req, err := httpclient.BuildSearchRequest(ctx, c.baseURL, c.path, q, reqID)
	if err != nil {
		return nil, err
	}

	resp, err := c.exec.Do(ctx, req)
	if err != nil {
		c.log.Warn("customerapi.transport_failed",
			"request_id", reqID,
			"url", req.URL.String(),
			"cause", classifyTransport(err),
			"err", err,
		)
		return nil, &domain.OpError{
			Op:   "customerapi.search",
			Kind: domain.KindTransport,
			Path: req.URL.String(),
			Err:  err,
		}
	}

	c.log.Debug("customerapi.response",
		"request_id", reqID,
		"url", req.URL.String(),
		"status", resp.Status,
		"status_text", http.StatusText(resp.Status),
		"latency_ms", resp.Duration.Milliseconds(),
		"body_bytes", len(resp.BodyBytes),
		"truncated", resp.Truncated,
	)

	if resp.Status < 200 || resp.Status > 299 {
		return nil, &domain.OpError{
			Op:   "customerapi.search",
			Kind: domain.KindHTTPStatus,
			Path: req.URL.String(),
			Err:  fmt.Errorf("%w: %d", domain.ErrUnexpectedStatus, resp.Status),
		}
	}
	if resp.Truncated {
		return nil, malformed(errors.New("response body exceeds size limit"))
	}

	return decodeCustomers(ctx, resp.BodyBytes, c.locate)
}

func classifyTransport(err error) string {
	if errors.Is(err, context.Canceled) {
		return "cancelled"
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return "timeout"
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return "dns"
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return "timeout"
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return "connection"
	}
	return "unknown"
}
