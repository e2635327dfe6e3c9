package serviceline

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func entryQty(entries []Entry, name string) decimal.Decimal {
	for _, e := range entries {
		if e.ServiceName == name {
			return e.Quantity
		}
	}
	return decimal.NewFromInt(-1)
}

func TestParseSinglePatterns(t *testing.T) {
	cases := []struct {
		name     string
		block    string
		service  string
		quantity string
	}{
		{"global it services", "Global IT Services - Soporte remoto 5", "Global IT Services - Soporte remoto", "5"},
		{"office 365 tier", "Office 365 Business Premium 12", "Office 365 Business Premium", "12"},
		{"office 365 e5", "Office365 E5 3", "Office 365 E5", "3"},
		{"guarding platform", "Global Guarding Platform - Monitoreo 8", "Global Guarding Platform - Monitoreo", "8"},
		{"mark-up", "Mark-up infraestructura 1,5", "Mark-up infraestructura", "1.5"},
		{"localization fragment", "Servicio localizacion (10 disp.)", "Servicio localizacion", "10"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			entries := Parse(tc.block)
			if assert.Len(t, entries, 1) {
				assert.Equal(t, tc.service, entries[0].ServiceName)
				assert.Equal(t, tc.quantity, entries[0].Quantity.String())
			}
		})
	}
}

func TestParseMultipleEntries(t *testing.T) {
	block := "Global IT Services - Soporte 5 Office 365 Business Basic 20 Servicio localizacion (7 disp.)"
	entries := Parse(block)

	assert.Len(t, entries, 3)
	assert.Equal(t, "5", entryQty(entries, "Global IT Services - Soporte").String())
	assert.Equal(t, "20", entryQty(entries, "Office 365 Business Basic").String())
	assert.Equal(t, "7", entryQty(entries, "Servicio localizacion").String())
}

func TestParseDropsNonPositiveQuantities(t *testing.T) {
	assert.Empty(t, Parse("Servicio localizacion (0 disp.)"))
	assert.Empty(t, Parse("Office 365 E3 0"))
}

func TestParseUnknownTextYieldsNothing(t *testing.T) {
	assert.Empty(t, Parse("No encontrado"))
	assert.Empty(t, Parse(""))
	assert.Empty(t, Parse("Office 365 Ultimate 4"))
}
