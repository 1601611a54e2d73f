package httpclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aalvaropc/pawsearch/internal/domain"
)

func TestBuildSearchRequest_QueryParams(t *testing.T) {
	var got *http.Request
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	q := domain.SearchQuery{Text: "ann", Species: []domain.Species{domain.SpeciesCat, domain.SpeciesDog}}
	req, err := BuildSearchRequest(context.Background(), server.URL+"/", "/api/customers", q, "req-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("failed request: %v", err)
	}
	resp.Body.Close()

	if got.Method != http.MethodGet {
		t.Fatalf("expected GET, got %s", got.Method)
	}
	if got.URL.Path != "/api/customers" {
		t.Fatalf("expected path /api/customers, got %s", got.URL.Path)
	}
	if v := got.URL.Query().Get("searchText"); v != "ann" {
		t.Fatalf("expected searchText=ann, got %q", v)
	}
	if v := got.URL.Query().Get("species"); v != "cat,dog" {
		t.Fatalf("expected species=cat,dog, got %q", v)
	}
	if got.Header.Get(HeaderRequestID) != "req-1" {
		t.Fatalf("expected request id header")
	}
	if got.Header.Get("Accept") != "application/json" {
		t.Fatalf("expected Accept: application/json")
	}
}

func TestBuildSearchRequest_EmptyFilterOmitsParams(t *testing.T) {
	req, err := BuildSearchRequest(context.Background(), "http://example.test", "api/customers", domain.SearchQuery{}, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.URL.RawQuery != "" {
		t.Fatalf("expected no query string, got %q", req.URL.RawQuery)
	}
	if req.URL.Path != "/api/customers" {
		t.Fatalf("expected leading slash to be added, got %q", req.URL.Path)
	}
	if req.Header.Get(HeaderRequestID) != "" {
		t.Fatalf("did not expect request id header")
	}
}

func TestBuildSearchRequest_InvalidBaseURL(t *testing.T) {
	for _, base := range []string{"", "   ", "localhost:3000/x", "/relative"} {
		_, err := BuildSearchRequest(context.Background(), base, "/api/customers", domain.SearchQuery{}, "")
		if err == nil {
			t.Errorf("expected error for base url %q", base)
			continue
		}
		if !domain.IsKind(err, domain.KindInvalidConfig) {
			t.Errorf("expected invalid_config for %q, got %v", base, err)
		}
	}
}
