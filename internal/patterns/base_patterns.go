// Package patterns provides shared regex building blocks for address parsing.
// This file contains the base-pattern table for placeholder composition.

package patterns

// Base defines reusable regex components for pattern composition. Country
// cascades reference them with {PATTERN_NAME} syntax; see Expand.
//
// All fragments are written for case-insensitive matching (the country trees
// prepend (?i)) and avoid capture groups of their own, so the composing
// pattern stays in control of what is surfaced.
var Base = map[string]string{
	// House numbers: "1234", "73a", "12-14", "120/2".
	"HOUSE_NUMBER": `\d+[a-z]?(?:\s*[-/]\s*\d+[a-z]?)?`,

	// A street name fragment: anything up to a separating comma or newline.
	"STREET_NAME": `[^,\n]+?`,

	// Generic catch-all for trailing free text.
	"REST": `.+`,

	// Brazil.
	"STREET_TYPES_BR":   `avenida|av\.?|rua|r\.?|travessa|tv\.?|alameda|al\.?|pra[çc]a|rodovia|estrada|largo`,
	"APT_TERMS_BR":      `apartamento|apto\.?|apt\.?|ap\.?`,
	"FLOOR_TERMS_BR":    `andar`,
	"LANDMARK_TERMS_BR": `refer[êe]ncia|ref\.?`,

	// United States. The "#" unit marker is not a word, so it is handled
	// where it is used instead of living behind a \b here.
	"APT_TERMS_US":   `apartment|apt\.?|unit|suite|ste\.?`,
	"FLOOR_TERMS_US": `floor|fl\.?`,
	"PO_BOX_US":      `p\.?\s*o\.?\s*box|post\s+office\s+box`,

	// Germany.
	"APT_TERMS_DE":   `wohnung|whg\.?|apartment`,
	"FLOOR_TERMS_DE": `obergeschoss|untergeschoss|erdgeschoss|stock(?:werk)?|etage|og|eg`,

	// Mexico.
	"APT_TERMS_MX":     `departamento|depto\.?|dpto\.?|interior|int\.?`,
	"FLOOR_TERMS_MX":   `piso`,
	"BETWEEN_TERMS_MX": `entre\s+(?:calles?|la\s+calle)`,
}
