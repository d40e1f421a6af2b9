// Package br provides parse-tree definitions for Brazilian street addresses.
package br

import (
	"address_parser/internal/patterns"
	"address_parser/parsing"
)

// Pattern sources, composed from the shared building blocks. Brazilian street
// lines put the house number after the street name, comma separated, with
// apartment, floor and landmark markers trailing in free order.
// Example: "Avenida Mem de Sá, 1234 apto 12 1 andar referência: foo"
const (
	// A house number is terminal: followed by the end of the value, a comma,
	// or a trailing apartment/floor/landmark marker. Digits inside a street
	// name ("Rua 7 de Setembro") stay in STREET_NAME.
	houseNumberEnd = `(?=\s*(?:,|$)|\s+(?:(?:{APT_TERMS_BR})\s*\d|\d+\s*[ºo]?\s*(?:{FLOOR_TERMS_BR})\b|(?:{LANDMARK_TERMS_BR})\s*:?\s))`

	// Groups: STREET_NAME, HOUSE_NUMBER
	streetLocationPattern = `(?i)^(?P<STREET_NAME>{STREET_NAME})\s*,?\s+(?P<HOUSE_NUMBER>{HOUSE_NUMBER})\b` + houseNumberEnd

	// Groups: APT, APT_NUM
	apartmentPattern = `(?i)\b(?P<APT>(?:{APT_TERMS_BR})\s*(?P<APT_NUM>\d+[a-z]?))`

	// Groups: FLOOR
	floorPattern = `(?i)\b(?P<FLOOR>\d+)\s*[ºo]?\s*(?:{FLOOR_TERMS_BR})\b`

	// Groups: LANDMARK
	landmarkCondition = `(?i){LANDMARK_TERMS_BR}`
	landmarkPattern   = `(?i)(?:{LANDMARK_TERMS_BR})\s*:?\s*(?P<LANDMARK>{REST})$`

	// Bare street name fallback for values without a house number.
	// Groups: STREET_NAME
	bareStreetPattern = `(?i)(?P<STREET_NAME>(?:{STREET_TYPES_BR})\b[^,]*)`
)

// buildTree assembles the Brazilian street-address tree. Pieces run
// generic-to-specific so a later match refines an earlier one.
func buildTree() *parsing.Node {
	expand := func(p string) string { return patterns.Expand(p, nil) }

	withNumber := parsing.NewExtractParts(`\d`,
		parsing.NewExtractPart("", expand(streetLocationPattern)),
		parsing.NewExtractPart("", expand(apartmentPattern)),
		parsing.NewExtractPart("", expand(floorPattern)),
		parsing.NewExtractPart(expand(landmarkCondition), expand(landmarkPattern)),
	)

	bareStreet := parsing.NewDecomposition(expand(bareStreetPattern))

	return parsing.NewCascade("", withNumber, bareStreet)
}
