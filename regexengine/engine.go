// Package regexengine abstracts the regular-expression primitives used by the
// address parse tree, so the engine can be swapped without touching the tree.
package regexengine

// Engine is the contract the parse tree builds on. Implementations must be
// safe for concurrent use.
//
// Pattern validity is established up front: the tree calls Compile for every
// pattern at construction time, so Matches and Capture only ever see patterns
// that compiled. A pattern that fails to compile is a programmer error in the
// pattern corpus, not a runtime condition.
type Engine interface {
	// Compile validates a pattern without matching anything.
	Compile(pattern string) error

	// Matches reports whether input contains a match of pattern consistent
	// with the requested anchoring. The empty pattern always matches.
	Matches(pattern, input string, anchorStart, anchorEnd bool) bool

	// Capture matches pattern against input and returns the named capture
	// groups that participated in the match. Groups that did not participate
	// are omitted; a participating group that captured nothing maps to "".
	// The second return is false when there is no match. The empty pattern
	// matches and yields an empty map.
	Capture(pattern, input string, anchorStart, anchorEnd bool) (map[string]string, bool)
}

// anchored wraps pattern with the requested anchors. The pattern is grouped
// first so alternations keep their meaning.
func anchored(pattern string, anchorStart, anchorEnd bool) string {
	if !anchorStart && !anchorEnd {
		return pattern
	}
	pattern = `(?:` + pattern + `)`
	if anchorStart {
		pattern = `\A` + pattern
	}
	if anchorEnd {
		pattern += `\z`
	}
	return pattern
}

// isNumericName reports whether a capture-group name is a positional index
// rather than a real name.
func isNumericName(name string) bool {
	if name == "" {
		return true
	}
	for i := 0; i < len(name); i++ {
		if name[i] < '0' || name[i] > '9' {
			return false
		}
	}
	return true
}
