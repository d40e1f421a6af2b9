package address

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Normalize prepares a raw address value for matching: NFC normalization so
// composed and decomposed accents compare equal, then collapsing every
// whitespace run (including line breaks) to a single space and trimming.
// The country patterns are written against this canonical form.
func Normalize(value string) string {
	value = norm.NFC.String(value)
	fields := strings.Fields(value)
	return strings.Join(fields, " ")
}
