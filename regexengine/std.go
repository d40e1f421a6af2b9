package regexengine

import (
	"regexp"
	"sync"
)

// Std is an Engine backed by the standard library's RE2 implementation.
// It has linear-time matching but no lookarounds and an ASCII-only \b, which
// restricts the pattern vocabulary it can serve.
type Std struct {
	mu    sync.RWMutex
	cache map[cacheKey]*regexp.Regexp
}

type cacheKey struct {
	pattern     string
	anchorStart bool
	anchorEnd   bool
}

// NewStd creates a stdlib-backed engine with an empty pattern cache.
func NewStd() *Std {
	return &Std{cache: make(map[cacheKey]*regexp.Regexp)}
}

func (e *Std) get(pattern string, anchorStart, anchorEnd bool) (*regexp.Regexp, error) {
	key := cacheKey{pattern, anchorStart, anchorEnd}

	e.mu.RLock()
	re := e.cache[key]
	e.mu.RUnlock()
	if re != nil {
		return re, nil
	}

	re, err := regexp.Compile(anchored(pattern, anchorStart, anchorEnd))
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	e.cache[key] = re
	e.mu.Unlock()
	return re, nil
}

// Compile validates pattern.
func (e *Std) Compile(pattern string) error {
	if pattern == "" {
		return nil
	}
	_, err := e.get(pattern, false, false)
	return err
}

// Matches reports whether input matches pattern under the given anchoring.
func (e *Std) Matches(pattern, input string, anchorStart, anchorEnd bool) bool {
	if pattern == "" {
		return true
	}
	re, err := e.get(pattern, anchorStart, anchorEnd)
	if err != nil {
		return false
	}
	return re.MatchString(input)
}

// Capture matches pattern against input and extracts named groups.
func (e *Std) Capture(pattern, input string, anchorStart, anchorEnd bool) (map[string]string, bool) {
	if pattern == "" {
		return map[string]string{}, true
	}
	re, err := e.get(pattern, anchorStart, anchorEnd)
	if err != nil {
		return nil, false
	}

	loc := re.FindStringSubmatchIndex(input)
	if loc == nil {
		return nil, false
	}

	captures := make(map[string]string)
	for i, name := range re.SubexpNames() {
		if i == 0 || name == "" {
			continue
		}
		lo, hi := loc[2*i], loc[2*i+1]
		if lo < 0 {
			// Group did not participate in the match.
			continue
		}
		captures[name] = input[lo:hi]
	}
	return captures, true
}
