package mx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStreetAndHouseNumber(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantStreet string
		wantNumber string
	}{
		{"plain", "Calle Juárez 123", "Calle Juárez", "123"},
		{"comma", "Avenida Insurgentes Sur, 601", "Avenida Insurgentes Sur", "601"},
		{"abbreviated", "Av. Reforma 222", "Av. Reforma", "222"},
		{"numbered street name", "Calle 5 de Mayo 15", "Calle 5 de Mayo", "15"},
		{"numbered street comma", "Avenida 16 de Septiembre, 82", "Avenida 16 de Septiembre", "82"},
	}

	parser := &Parser{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			caps, ok := parser.Parse(tt.input)
			require.True(t, ok)
			assert.Equal(t, tt.wantStreet, caps["STREET_NAME"])
			assert.Equal(t, tt.wantNumber, caps["HOUSE_NUMBER"])
		})
	}
}

func TestInteriorFloorAndBetweenStreets(t *testing.T) {
	parser := &Parser{}
	caps, ok := parser.Parse("Calle Juárez 123 Int. 4 Piso 2 entre calles Hidalgo y Morelos")
	require.True(t, ok)

	assert.Equal(t, "Calle Juárez", caps["STREET_NAME"])
	assert.Equal(t, "123", caps["HOUSE_NUMBER"])
	assert.Equal(t, "Int. 4", caps["APT"])
	assert.Equal(t, "4", caps["APT_NUM"])
	assert.Equal(t, "2", caps["FLOOR"])
	assert.Equal(t, "Hidalgo y Morelos", caps["BETWEEN_STREETS"])
}

func TestApartmentVariants(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantApt string
	}{
		{"depto", "Calle 5 de Mayo 20 Depto 3", "Depto 3"},
		{"departamento", "Av. Juárez 100 Departamento 7b", "Departamento 7b"},
		{"interior", "Calle Morelos 55 Interior 2", "Interior 2"},
	}

	parser := &Parser{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			caps, ok := parser.Parse(tt.input)
			require.True(t, ok)
			assert.Equal(t, tt.wantApt, caps["APT"])
		})
	}
}

func TestNumberedStreetNameWithApartment(t *testing.T) {
	parser := &Parser{}
	caps, ok := parser.Parse("Calle 5 de Mayo 20 Depto 3")
	require.True(t, ok)
	assert.Equal(t, "Calle 5 de Mayo", caps["STREET_NAME"])
	assert.Equal(t, "20", caps["HOUSE_NUMBER"])
	assert.Equal(t, "3", caps["APT_NUM"])
}

func TestBareStreetName(t *testing.T) {
	parser := &Parser{}

	caps, ok := parser.Parse("Calle Madero")
	require.True(t, ok)
	assert.Equal(t, "Calle Madero", caps["STREET_NAME"])
	assert.NotContains(t, caps, "HOUSE_NUMBER")

	// A numbered street name alone is still just a street name.
	caps, ok = parser.Parse("Calle 5 de Mayo")
	require.True(t, ok)
	assert.Equal(t, "Calle 5 de Mayo", caps["STREET_NAME"])
	assert.NotContains(t, caps, "HOUSE_NUMBER")
}

func TestNoMatch(t *testing.T) {
	parser := &Parser{}

	_, ok := parser.Parse("")
	assert.False(t, ok)

	_, ok = parser.Parse("Centro")
	assert.False(t, ok, "a bare neighborhood name is not an address")
}
