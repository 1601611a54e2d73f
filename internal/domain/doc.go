// Package domain contains the core model for pawsearch: customers, pets, the
// species catalog, filter state and fetch state.
//
// The domain is transport-agnostic: it does not depend on YAML parsing,
// net/http, or the terminal. Infra and UI packages map into/from these types.
package domain
