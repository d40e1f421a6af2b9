package br

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFullAddress(t *testing.T) {
	parser := &Parser{}
	caps, ok := parser.Parse("Avenida Mem de Sá, 1234 apto 12 1 andar referência: foo")
	require.True(t, ok)

	assert.Equal(t, "Avenida Mem de Sá", caps["STREET_NAME"])
	assert.Equal(t, "1234", caps["HOUSE_NUMBER"])
	assert.Equal(t, "apto 12", caps["APT"])
	assert.Equal(t, "12", caps["APT_NUM"])
	assert.Equal(t, "1", caps["FLOOR"])
	assert.Equal(t, "foo", caps["LANDMARK"])
}

func TestStreetAndNumberOnly(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantStreet string
		wantNumber string
	}{
		{"comma separated", "Rua Afonso Camargo, 805", "Rua Afonso Camargo", "805"},
		{"no comma", "Avenida Paulista 1000", "Avenida Paulista", "1000"},
		{"number with suffix", "Rua Augusta, 1500b", "Rua Augusta", "1500b"},
		{"numbered street name", "Rua 7 de Setembro, 1000", "Rua 7 de Setembro", "1000"},
		{"numbered street no comma", "Avenida 9 de Julho 450", "Avenida 9 de Julho", "450"},
	}

	parser := &Parser{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			caps, ok := parser.Parse(tt.input)
			require.True(t, ok)
			assert.Equal(t, tt.wantStreet, caps["STREET_NAME"])
			assert.Equal(t, tt.wantNumber, caps["HOUSE_NUMBER"])
			assert.NotContains(t, caps, "APT")
			assert.NotContains(t, caps, "FLOOR")
		})
	}
}

func TestApartmentVariants(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantApt string
		wantNum string
	}{
		{"apto", "Rua Bela Cintra, 500 apto 71", "apto 71", "71"},
		{"ap", "Avenida Paulista 1000 ap 33", "ap 33", "33"},
		{"apartamento", "Rua Oscar Freire, 200 apartamento 12b", "apartamento 12b", "12b"},
	}

	parser := &Parser{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			caps, ok := parser.Parse(tt.input)
			require.True(t, ok)
			assert.Equal(t, tt.wantApt, caps["APT"])
			assert.Equal(t, tt.wantNum, caps["APT_NUM"])
		})
	}
}

func TestFloorVariants(t *testing.T) {
	parser := &Parser{}

	caps, ok := parser.Parse("Rua Haddock Lobo, 595 10º andar")
	require.True(t, ok)
	assert.Equal(t, "10", caps["FLOOR"])

	caps, ok = parser.Parse("Rua Haddock Lobo, 595 3 andar")
	require.True(t, ok)
	assert.Equal(t, "3", caps["FLOOR"])
}

func TestLandmark(t *testing.T) {
	parser := &Parser{}
	caps, ok := parser.Parse("Rua das Flores, 10 referência: ao lado do mercado")
	require.True(t, ok)
	assert.Equal(t, "ao lado do mercado", caps["LANDMARK"])
}

func TestNumberedStreetNameWithApartment(t *testing.T) {
	parser := &Parser{}
	caps, ok := parser.Parse("Rua 7 de Setembro, 1000 apto 5")
	require.True(t, ok)
	assert.Equal(t, "Rua 7 de Setembro", caps["STREET_NAME"])
	assert.Equal(t, "1000", caps["HOUSE_NUMBER"])
	assert.Equal(t, "apto 5", caps["APT"])
}

func TestBareStreetName(t *testing.T) {
	parser := &Parser{}

	caps, ok := parser.Parse("Rua Augusta")
	require.True(t, ok)
	assert.Equal(t, "Rua Augusta", caps["STREET_NAME"])
	assert.NotContains(t, caps, "HOUSE_NUMBER")

	// A numbered street name alone is still just a street name.
	caps, ok = parser.Parse("Rua 7 de Setembro")
	require.True(t, ok)
	assert.Equal(t, "Rua 7 de Setembro", caps["STREET_NAME"])
	assert.NotContains(t, caps, "HOUSE_NUMBER")
}

func TestNoMatch(t *testing.T) {
	parser := &Parser{}

	_, ok := parser.Parse("1234")
	assert.False(t, ok, "a bare number is not an address")

	_, ok = parser.Parse("")
	assert.False(t, ok)
}

func TestParseIsDeterministic(t *testing.T) {
	parser := &Parser{}
	first, ok1 := parser.Parse("Avenida Mem de Sá, 1234 apto 12")
	second, ok2 := parser.Parse("Avenida Mem de Sá, 1234 apto 12")
	assert.Equal(t, ok1, ok2)
	assert.Equal(t, first, second)
}
