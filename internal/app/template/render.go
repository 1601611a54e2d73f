package template

import (
	"fmt"
	"os"
	"strings"

	"github.com/aalvaropc/pawsearch/internal/domain"
)

// Lookup resolves a placeholder name to its value.
type Lookup func(name string) (string, bool)

// Env resolves placeholders from the process environment.
func Env() Lookup { return os.LookupEnv }

// Vars resolves placeholders from a fixed map.
func Vars(vars map[string]string) Lookup {
	return func(name string) (string, bool) {
		v, ok := vars[name]
		return v, ok
	}
}

// RenderString replaces {{NAME}} placeholders with values from lookup.
// It returns an error if a variable is missing or a placeholder is malformed.
func RenderString(input string, lookup Lookup) (string, error) {
	if input == "" || !strings.Contains(input, "{{") {
		return input, nil
	}

	var out strings.Builder
	rest := input
	for {
		start := strings.Index(rest, "{{")
		if start == -1 {
			out.WriteString(rest)
			return out.String(), nil
		}

		out.WriteString(rest[:start])
		rest = rest[start+2:]

		end := strings.Index(rest, "}}")
		if end == -1 {
			return "", renderErr(fmt.Errorf("unclosed template expression in %q", input))
		}

		key := strings.TrimSpace(rest[:end])
		if key == "" {
			return "", renderErr(fmt.Errorf("empty template expression in %q", input))
		}

		value, ok := lookup(key)
		if !ok {
			return "", renderErr(fmt.Errorf("missing variable %q", key))
		}

		out.WriteString(value)
		rest = rest[end+2:]
	}
}

func renderErr(err error) error {
	return &domain.OpError{
		Op:   "template.render",
		Kind: domain.KindInvalidConfig,
		Err:  err,
	}
}
