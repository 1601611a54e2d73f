package customerapi

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/PaesslerAG/jsonpath"

	"github.com/aalvaropc/pawsearch/internal/domain"
)

// resultsLocator finds the customer list inside a decoded response body.
type resultsLocator func(ctx context.Context, doc any) (any, error)

func compileResultsPath(expr string) (resultsLocator, error) {
	eval, err := jsonpath.New(expr)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "customerapi.results_path",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("invalid jsonpath %q: %w", expr, err),
		}
	}
	return func(ctx context.Context, doc any) (any, error) {
		return eval(ctx, doc)
	}, nil
}

// decodeCustomers applies the payload policy:
//   - body is not a JSON object -> malformed
//   - results field absent or null -> zero customers
//   - results field present but not a list of customers -> malformed
func decodeCustomers(ctx context.Context, body []byte, locate resultsLocator) ([]domain.Customer, error) {
	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, malformed(fmt.Errorf("response body is not valid JSON: %w", err))
	}
	if _, ok := doc.(map[string]any); !ok {
		return nil, malformed(fmt.Errorf("response body is %s, want object", jsonKind(doc)))
	}

	// A lookup error means the path does not resolve in this document.
	raw, err := locate(ctx, doc)
	if err != nil || raw == nil {
		return []domain.Customer{}, nil
	}

	list, ok := raw.([]any)
	if !ok {
		return nil, malformed(fmt.Errorf("results field is %s, want array", jsonKind(raw)))
	}

	b, err := json.Marshal(list)
	if err != nil {
		return nil, malformed(err)
	}

	out := make([]domain.Customer, 0, len(list))
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, malformed(fmt.Errorf("results do not match the customer shape: %w", err))
	}
	for i := range out {
		if out[i].Pets == nil {
			out[i].Pets = []domain.Pet{}
		}
	}
	return out, nil
}

func malformed(err error) error {
	return &domain.OpError{
		Op:   "customerapi.decode",
		Kind: domain.KindMalformedPayload,
		Err:  fmt.Errorf("%w: %v", domain.ErrMalformedPayload, err),
	}
}

func jsonKind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case float64:
		return "number"
	case bool:
		return "boolean"
	default:
		return fmt.Sprintf("%T", v)
	}
}
