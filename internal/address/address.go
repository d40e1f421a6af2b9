// Package address provides the structured-address data model populated from
// parse-tree captures.
package address

import "address_parser/parsing"

// Capture-group identifiers used by the shipped country cascades. Callers
// supplying their own pattern corpus may use any names they like; these are
// the ones the structured Address knows about.
const (
	FieldStreetName     = "STREET_NAME"
	FieldHouseNumber    = "HOUSE_NUMBER"
	FieldApartment      = "APT"
	FieldApartmentNum   = "APT_NUM"
	FieldFloor          = "FLOOR"
	FieldLandmark       = "LANDMARK"
	FieldBetweenStreets = "BETWEEN_STREETS"
	FieldPOBox          = "PO_BOX"
)

// knownFields is the set of group names mapped onto Address struct fields.
var knownFields = map[string]bool{
	FieldStreetName:     true,
	FieldHouseNumber:    true,
	FieldApartment:      true,
	FieldApartmentNum:   true,
	FieldFloor:          true,
	FieldLandmark:       true,
	FieldBetweenStreets: true,
	FieldPOBox:          true,
}

// Address is a structured street address assembled from named captures.
type Address struct {
	StreetName     string `json:"street_name,omitempty"`
	HouseNumber    string `json:"house_number,omitempty"`
	Apartment      string `json:"apartment,omitempty"`     // full marker, e.g. "apto 12"
	ApartmentNum   string `json:"apartment_num,omitempty"` // just the number, e.g. "12"
	Floor          string `json:"floor,omitempty"`
	Landmark       string `json:"landmark,omitempty"`
	BetweenStreets string `json:"between_streets,omitempty"`
	POBox          string `json:"po_box,omitempty"`

	// Extra holds captures outside the known vocabulary, keyed by group name.
	Extra map[string]string `json:"extra,omitempty"`
}

// FromCaptures maps a capture result onto the structured form.
func FromCaptures(c parsing.Captures) *Address {
	a := &Address{
		StreetName:     c.Get(FieldStreetName, ""),
		HouseNumber:    c.Get(FieldHouseNumber, ""),
		Apartment:      c.Get(FieldApartment, ""),
		ApartmentNum:   c.Get(FieldApartmentNum, ""),
		Floor:          c.Get(FieldFloor, ""),
		Landmark:       c.Get(FieldLandmark, ""),
		BetweenStreets: c.Get(FieldBetweenStreets, ""),
		POBox:          c.Get(FieldPOBox, ""),
	}
	for name, value := range c {
		if knownFields[name] {
			continue
		}
		if a.Extra == nil {
			a.Extra = make(map[string]string)
		}
		a.Extra[name] = value
	}
	return a
}
