// Package de provides parse-tree definitions for German street addresses.
package de

import (
	"address_parser/internal/patterns"
	"address_parser/parsing"
)

// localPatterns overlay the shared building blocks with German street types.
var localPatterns = map[string]string{
	"STREET_TYPES_DE": `straße|strasse|str\.?|weg|allee|platz|gasse|ring|damm|ufer`,
}

// Pattern sources. German street lines put the house number after the street
// name without a comma, floors use OG/Stock/Etage markers and apartments use
// Wohnung/Whg.
// Example: "Implerstraße 73a 2. OG Wohnung 5"
const (
	// A house number is terminal: followed by the end of the value, a comma,
	// or a trailing floor/apartment marker. Digits inside a street name
	// ("Straße des 17. Juni") stay in STREET_NAME.
	houseNumberEnd = `(?=\s*(?:,|$)|\s+(?:\d+\s*\.?\s*(?:{FLOOR_TERMS_DE})\b|(?:{APT_TERMS_DE})\s*\.?\s*\d))`

	// Groups: STREET_NAME, HOUSE_NUMBER
	streetLocationPattern = `(?i)^(?P<STREET_NAME>{STREET_NAME})\s*,?\s*(?P<HOUSE_NUMBER>\d+(?:\s*[a-z]\b)?)\b` + houseNumberEnd

	// Groups: FLOOR
	floorPattern = `(?i)\b(?P<FLOOR>\d+)\s*\.?\s*(?:{FLOOR_TERMS_DE})\b`

	// Groups: APT, APT_NUM
	apartmentPattern = `(?i)\b(?P<APT>(?:{APT_TERMS_DE})\s*\.?\s*(?P<APT_NUM>\d+[a-z]?))`

	// Bare street name fallback, accepted only with a street-type suffix.
	// Groups: STREET_NAME
	bareStreetPattern = `(?i)(?P<STREET_NAME>[^,\d]*(?:{STREET_TYPES_DE}))`
)

// buildTree assembles the German street-address tree.
func buildTree() *parsing.Node {
	expand := func(p string) string { return patterns.Expand(p, localPatterns) }

	withNumber := parsing.NewExtractParts(`\d`,
		parsing.NewExtractPart("", expand(streetLocationPattern)),
		parsing.NewExtractPart("", expand(floorPattern)),
		parsing.NewExtractPart("", expand(apartmentPattern)),
	)

	bareStreet := parsing.NewDecomposition(expand(bareStreetPattern))

	return parsing.NewCascade("", withNumber, bareStreet)
}
