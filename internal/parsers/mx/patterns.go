// Package mx provides parse-tree definitions for Mexican street addresses.
package mx

import (
	"address_parser/internal/patterns"
	"address_parser/parsing"
)

// localPatterns overlay the shared building blocks with Mexican street types.
var localPatterns = map[string]string{
	"STREET_TYPES_MX": `calle|c\.?|avenida|av\.?|boulevard|blvd\.?|calzada|calz\.?|camino|carretera|privada|priv\.?|prolongaci[óo]n|andador|circuito|eje`,
}

// Pattern sources. Mexican street lines put the house number after the street
// name; interior apartments use Int./Depto markers and cross references use
// "entre calles".
// Example: "Calle Juárez 123 Int. 4 Piso 2 entre calles Hidalgo y Morelos"
const (
	// A house number is terminal: followed by the end of the value, a comma,
	// or a trailing interior/floor/cross-street marker. Digits inside a street
	// name ("Calle 5 de Mayo") stay in STREET_NAME.
	houseNumberEnd = `(?=\s*(?:,|$)|\s+(?:(?:{APT_TERMS_MX})\s*\d|(?:{FLOOR_TERMS_MX})\s*\d|(?:{BETWEEN_TERMS_MX})\s))`

	// Groups: STREET_NAME, HOUSE_NUMBER
	streetLocationPattern = `(?i)^(?P<STREET_NAME>{STREET_NAME})\s*,?\s+(?P<HOUSE_NUMBER>{HOUSE_NUMBER})\b` + houseNumberEnd

	// Groups: APT, APT_NUM
	apartmentPattern = `(?i)\b(?P<APT>(?:{APT_TERMS_MX})\s*(?P<APT_NUM>\d+[a-z]?))`

	// Groups: FLOOR
	floorPattern = `(?i)\b(?:{FLOOR_TERMS_MX})\s*(?P<FLOOR>\d+)`

	// Groups: BETWEEN_STREETS
	betweenCondition = `(?i){BETWEEN_TERMS_MX}`
	betweenPattern   = `(?i)(?:{BETWEEN_TERMS_MX})\s+(?P<BETWEEN_STREETS>[^,]+?)\s*(?:,|$)`

	// Bare street name fallback, accepted only with a street-type prefix.
	// Groups: STREET_NAME
	bareStreetPattern = `(?i)(?P<STREET_NAME>(?:{STREET_TYPES_MX})\b[^,]*)`
)

// buildTree assembles the Mexican street-address tree.
func buildTree() *parsing.Node {
	expand := func(p string) string { return patterns.Expand(p, localPatterns) }

	withNumber := parsing.NewExtractParts(`\d`,
		parsing.NewExtractPart("", expand(streetLocationPattern)),
		parsing.NewExtractPart("", expand(apartmentPattern)),
		parsing.NewExtractPart("", expand(floorPattern)),
		parsing.NewExtractPart(expand(betweenCondition), expand(betweenPattern)),
	)

	bareStreet := parsing.NewDecomposition(expand(bareStreetPattern))

	return parsing.NewCascade("", withNumber, bareStreet)
}
