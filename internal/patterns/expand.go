// Package patterns provides shared regex building blocks for address parsing.
// This file contains the {PLACEHOLDER} expansion used to compose them.

package patterns

import "strings"

// Expand replaces {PLACEHOLDER} references with their base-pattern fragments.
// Entries in local overlay the global Base table, so a country cascade can
// override a fragment without touching the shared vocabulary.
//
// Expansion is a single pass: fragments must not reference other fragments.
func Expand(pattern string, local map[string]string) string {
	result := pattern
	for name, fragment := range local {
		result = strings.ReplaceAll(result, "{"+name+"}", fragment)
	}
	for name, fragment := range Base {
		if _, overridden := local[name]; overridden {
			continue
		}
		result = strings.ReplaceAll(result, "{"+name+"}", fragment)
	}
	return result
}
