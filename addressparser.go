// Package addressparser decomposes unstructured street-address strings into
// labeled fields using country-specific, condition-gated regex cascades.
//
// Parsing is a pure function from an input string to an optional map of
// capture-group names to captured substrings. The shipped country trees are
// built once at initialization and shared read-only, so all entry points are
// safe for concurrent use.
package addressparser

import (
	"address_parser/internal/address"
	"address_parser/internal/registry"
	"address_parser/parsing"

	// Country parsers register themselves with the registry.
	_ "address_parser/internal/parsers"
)

// Address is the structured form of a parse result.
type Address = address.Address

// Parse normalizes value and dispatches it to the parse trees registered for
// country (ISO 3166-1 alpha-2 code). It returns the named captures of the
// first tree that matched, absent when none did.
func Parse(country, value string) (parsing.Captures, bool) {
	return registry.Default().Dispatch(country, address.Normalize(value))
}

// ParseAddress is Parse with the captures mapped onto a structured Address.
func ParseAddress(country, value string) (*Address, bool) {
	caps, ok := Parse(country, value)
	if !ok {
		return nil, false
	}
	return address.FromCaptures(caps), true
}

// Countries returns the country codes that have a dedicated parser.
func Countries() []string {
	return registry.Default().Countries()
}
