package regexengine

import (
	"sync"
	"time"

	"github.com/dlclark/regexp2"
)

// DefaultMatchTimeout bounds a single match attempt on the backtracking
// engine. Address inputs are short, so a well-formed corpus never gets near
// this; it is the engine's guard against pathological backtracking.
const DefaultMatchTimeout = 250 * time.Millisecond

// Backtracking is an Engine backed by dlclark/regexp2. Unlike Std it supports
// lookarounds and unicode-aware word boundaries, which the address pattern
// corpus relies on. Patterns are compiled in RE2-compat mode so the (?P<name>)
// group syntax works on both engines.
type Backtracking struct {
	mu      sync.RWMutex
	cache   map[cacheKey]*regexp2.Regexp
	timeout time.Duration
}

// NewBacktracking creates a regexp2-backed engine with the default match
// timeout.
func NewBacktracking() *Backtracking {
	return &Backtracking{
		cache:   make(map[cacheKey]*regexp2.Regexp),
		timeout: DefaultMatchTimeout,
	}
}

func (e *Backtracking) get(pattern string, anchorStart, anchorEnd bool) (*regexp2.Regexp, error) {
	key := cacheKey{pattern, anchorStart, anchorEnd}

	e.mu.RLock()
	re := e.cache[key]
	e.mu.RUnlock()
	if re != nil {
		return re, nil
	}

	re, err := regexp2.Compile(anchored(pattern, anchorStart, anchorEnd), regexp2.RE2)
	if err != nil {
		return nil, err
	}
	re.MatchTimeout = e.timeout

	e.mu.Lock()
	e.cache[key] = re
	e.mu.Unlock()
	return re, nil
}

// Compile validates pattern.
func (e *Backtracking) Compile(pattern string) error {
	if pattern == "" {
		return nil
	}
	_, err := e.get(pattern, false, false)
	return err
}

// Matches reports whether input matches pattern under the given anchoring.
// A match timeout counts as no match.
func (e *Backtracking) Matches(pattern, input string, anchorStart, anchorEnd bool) bool {
	if pattern == "" {
		return true
	}
	re, err := e.get(pattern, anchorStart, anchorEnd)
	if err != nil {
		return false
	}
	ok, err := re.MatchString(input)
	return err == nil && ok
}

// Capture matches pattern against input and extracts named groups.
func (e *Backtracking) Capture(pattern, input string, anchorStart, anchorEnd bool) (map[string]string, bool) {
	if pattern == "" {
		return map[string]string{}, true
	}
	re, err := e.get(pattern, anchorStart, anchorEnd)
	if err != nil {
		return nil, false
	}

	m, err := re.FindStringMatch(input)
	if err != nil || m == nil {
		return nil, false
	}

	captures := make(map[string]string)
	for _, g := range m.Groups() {
		if isNumericName(g.Name) {
			continue
		}
		if len(g.Captures) == 0 {
			// Group did not participate in the match.
			continue
		}
		captures[g.Name] = g.String()
	}
	return captures, true
}
