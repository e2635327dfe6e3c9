package extract

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	reMoneySpace    = regexp.MustCompile(`\s+`)
	reCurrencyCodes = regexp.MustCompile(`(?i)(USD|COP|EUR|MXN)`)
)

// NormalizeAmount parses a locale-ambiguous amount string into a decimal.
//
// Separator disambiguation: when both '.' and ',' appear, '.' is a thousands
// separator and ',' the decimal point. A lone ',' is the decimal point. With
// only '.' present, everything but the last occurrence is a thousands
// separator; a single '.' is assumed already canonical.
//
// Unparseable or negative input yields zero, never an error and never NaN: a
// bad amount must not abort persistence of an otherwise usable record.
func NormalizeAmount(raw string) decimal.Decimal {
	s := reMoneySpace.ReplaceAllString(raw, "")
	s = strings.ReplaceAll(s, "$", "")
	s = reCurrencyCodes.ReplaceAllString(s, "")

	hasDot := strings.Contains(s, ".")
	hasComma := strings.Contains(s, ",")
	switch {
	case hasDot && hasComma:
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	case hasComma:
		s = strings.ReplaceAll(s, ",", ".")
	case strings.Count(s, ".") > 1:
		last := strings.LastIndex(s, ".")
		s = strings.ReplaceAll(s[:last], ".", "") + s[last:]
	}

	d, err := decimal.NewFromString(s)
	if err != nil || d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// NormalizeAmountSimple is the legacy variant kept for older format code
// paths: strips whitespace and '.', and ',' unconditionally becomes the
// decimal point. Same fail-soft zero policy as NormalizeAmount.
func NormalizeAmountSimple(raw string) decimal.Decimal {
	s := reMoneySpace.ReplaceAllString(raw, "")
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")

	d, err := decimal.NewFromString(s)
	if err != nil || d.IsNegative() {
		return decimal.Zero
	}
	return d
}
