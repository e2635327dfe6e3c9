package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeAmount(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"dot thousands comma decimal", "1.234,56", "1234.56"},
		{"comma decimal only", "1234,56", "1234.56"},
		{"canonical", "1234.56", "1234.56"},
		{"multiple dots keeps last", "1.234.567.89", "1234567.89"},
		{"currency symbol", "$ 2.500,00", "2500"},
		{"currency code", "1.234,56 COP", "1234.56"},
		{"usd lowercase", "usd 99,90", "99.9"},
		{"embedded whitespace", "1 234,56", "1234.56"},
		{"integer", "500", "500"},
		{"garbage", "abc", "0"},
		{"empty", "", "0"},
		{"negative clamped", "-12,50", "0"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NormalizeAmount(tc.in).String())
		})
	}
}

func TestNormalizeAmountSimple(t *testing.T) {
	// The legacy variant always treats '.' as a thousands separator, so a
	// canonical dot-decimal input loses its fraction marker.
	assert.Equal(t, "1234.56", NormalizeAmountSimple("1.234,56").String())
	assert.Equal(t, "123456", NormalizeAmountSimple("1234.56").String())
	assert.Equal(t, "0", NormalizeAmountSimple("n/a").String())
}
