package httpclient

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/aalvaropc/pawsearch/internal/domain"
)

const HeaderRequestID = "X-Request-ID"

// BuildSearchRequest builds GET <baseURL><path>?<query>. Empty query
// dimensions are omitted, so an empty filter yields a bare path.
func BuildSearchRequest(ctx context.Context, baseURL, path string, q domain.SearchQuery, requestID string) (*http.Request, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, &domain.OpError{
			Op:   "httpclient.build",
			Kind: domain.KindInvalidConfig,
			Err:  errors.New("base url is empty"),
		}
	}

	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil || u.Scheme == "" || u.Host == "" {
		if err == nil {
			err = errors.New("base url must be absolute")
		}
		return nil, &domain.OpError{
			Op:   "httpclient.build",
			Kind: domain.KindInvalidConfig,
			Path: baseURL,
			Err:  err,
		}
	}

	if path != "" && !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	u.Path += path
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "httpclient.build",
			Kind: domain.KindInvalidConfig,
			Path: u.String(),
			Err:  err,
		}
	}

	req.Header.Set("Accept", "application/json")
	if requestID != "" {
		req.Header.Set(HeaderRequestID, requestID)
	}
	return req, nil
}
