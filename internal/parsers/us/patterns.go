// Package us provides parse-tree definitions for United States street
// addresses.
package us

import (
	"address_parser/internal/patterns"
	"address_parser/parsing"
)

// localPatterns overlay the shared building blocks with US-only vocabulary.
var localPatterns = map[string]string{
	"STREET_TYPES_US": `street|st|avenue|ave|road|rd|boulevard|blvd|drive|dr|lane|ln|way|court|ct|place|pl|terrace|ter|parkway|pkwy`,
}

// Pattern sources. US street lines put the house number first; unit, floor
// and PO Box markers follow the street name.
// Example: "123 Main St Apt 4 2nd floor"
const (
	// Groups: HOUSE_NUMBER, STREET_NAME
	streetLocationPattern = `(?i)^(?P<HOUSE_NUMBER>{HOUSE_NUMBER})\s+(?P<STREET_NAME>[^,#]+?)(?:\s*,|\s+(?=(?:{APT_TERMS_US}|{FLOOR_TERMS_US}|#))|$)`

	// Groups: APT, APT_NUM
	apartmentPattern = `(?i)(?P<APT>(?:\b(?:{APT_TERMS_US})|#)\s*#?\s*(?P<APT_NUM>\d+[a-z]?))`

	// Groups: FLOOR
	floorPattern = `(?i)\b(?P<FLOOR>\d+)(?:st|nd|rd|th)?\s*(?:{FLOOR_TERMS_US})\b`

	// Whole-string PO Box form.
	// Groups: PO_BOX
	poBoxPattern = `(?i)(?:{PO_BOX_US})\s*#?\s*(?P<PO_BOX>\d+)`

	// Bare street name fallback, accepted only with a street-type suffix.
	// Groups: STREET_NAME
	bareStreetPattern = `(?i)(?P<STREET_NAME>[^,\d]+\b(?:{STREET_TYPES_US}))\.?`
)

// buildTree assembles the US street-address tree.
func buildTree() *parsing.Node {
	expand := func(p string) string { return patterns.Expand(p, localPatterns) }

	poBox := parsing.NewDecomposition(expand(poBoxPattern))

	withNumber := parsing.NewExtractParts(`\d`,
		parsing.NewExtractPart("", expand(streetLocationPattern)),
		parsing.NewExtractPart("", expand(apartmentPattern)),
		parsing.NewExtractPart("", expand(floorPattern)),
	)

	bareStreet := parsing.NewDecomposition(expand(bareStreetPattern))

	return parsing.NewCascade("", poBox, withNumber, bareStreet)
}
