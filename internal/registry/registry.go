// Package registry provides a country parser registry for dispatching
// address values to appropriate parse trees.
package registry

import (
	"sort"
	"strings"
	"sync"

	"address_parser/parsing"
)

// Parser is implemented by each country address parser.
type Parser interface {
	// Name returns the parser's unique identifier.
	Name() string

	// Countries returns the ISO 3166-1 alpha-2 codes this parser handles.
	// Empty slice means the parser is a fallback, tried for any country
	// without a dedicated parser (and after a dedicated parser that
	// produced nothing).
	Countries() []string

	// QuickCheck performs a fast string check before expensive regex.
	// Returns true if the value MIGHT be parseable (false = definitely
	// skip). This should use strings.Contains/HasPrefix, NOT regex.
	QuickCheck(value string) bool

	// Priority determines order when multiple parsers handle the same
	// country. Lower number = checked first.
	Priority() int

	// Parse attempts to decompose the value, absent when not applicable.
	Parse(value string) (parsing.Captures, bool)
}

// Registry holds all registered parsers organised for dispatch by country.
type Registry struct {
	mu sync.RWMutex

	// byCountry maps alpha-2 codes to parser slices, sorted by Priority
	// (ascending).
	byCountry map[string][]Parser

	// fallback holds parsers tried when no dedicated parser matched.
	fallback []Parser

	// sorted tracks whether parsers have been sorted.
	sorted bool
}

// New creates a new Registry instance.
func New() *Registry {
	return &Registry{
		byCountry: make(map[string][]Parser),
	}
}

// Global default registry.
var defaultRegistry = New()

// Default returns the global registry instance.
func Default() *Registry {
	return defaultRegistry
}

// Register adds a parser to the default registry.
// Called during init() in each country parser package.
func Register(p Parser) {
	defaultRegistry.Register(p)
}

// Register adds a parser to the registry.
func (r *Registry) Register(p Parser) {
	r.mu.Lock()
	defer r.mu.Unlock()

	countries := p.Countries()
	if len(countries) == 0 {
		r.fallback = append(r.fallback, p)
	} else {
		for _, country := range countries {
			code := strings.ToUpper(country)
			r.byCountry[code] = append(r.byCountry[code], p)
		}
	}
	r.sorted = false
}

// Sort sorts all parser slices by priority. Called lazily by Dispatch.
func (r *Registry) Sort() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sorted {
		return
	}

	for country := range r.byCountry {
		parsers := r.byCountry[country]
		sort.Slice(parsers, func(i, j int) bool {
			return parsers[i].Priority() < parsers[j].Priority()
		})
	}

	sort.Slice(r.fallback, func(i, j int) bool {
		return r.fallback[i].Priority() < r.fallback[j].Priority()
	})

	r.sorted = true
}

// Dispatch routes a value to the parsers for country and returns the first
// present result. Dedicated parsers are tried first, fallbacks after.
func (r *Registry) Dispatch(country, value string) (parsing.Captures, bool) {
	r.mu.RLock()
	if !r.sorted {
		r.mu.RUnlock()
		r.Sort()
		r.mu.RLock()
	}
	defer r.mu.RUnlock()

	if parsers, ok := r.byCountry[strings.ToUpper(country)]; ok {
		for _, p := range parsers {
			// Quick check before expensive parse.
			if !p.QuickCheck(value) {
				continue
			}
			if caps, ok := p.Parse(value); ok {
				return caps, true
			}
		}
	}

	for _, p := range r.fallback {
		if !p.QuickCheck(value) {
			continue
		}
		if caps, ok := p.Parse(value); ok {
			return caps, true
		}
	}

	return nil, false
}

// Countries returns all country codes that have parsers registered.
func (r *Registry) Countries() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	codes := make([]string, 0, len(r.byCountry))
	for code := range r.byCountry {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
