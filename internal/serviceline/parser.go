// Package serviceline mines service/quantity entries out of the stored
// line-item text at report time. The raw block is persisted once; its
// structured content is re-derived on every read.
package serviceline

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Entry is one service occurrence derived from an invoice's line-item text.
type Entry struct {
	ServiceName string          `json:"service_name"`
	Quantity    decimal.Decimal `json:"quantity"`
}

// office365Tiers is the closed set of license tiers that appear on vendor
// invoices. New tiers require a new pattern entry, deliberately: free-form
// matching produced garbage service names.
var office365Tiers = []string{
	"Business Basic",
	"Business Standard",
	"Business Premium",
	"Exchange Online",
	"E3",
	"E5",
}

type pattern struct {
	re     *regexp.Regexp
	rename func(m []string) string
}

var qty = `(\d+(?:[.,]\d+)?)`

var patterns = []pattern{
	{
		re:     regexp.MustCompile(`Global IT Services\s*-\s*([^\d\n]+?)\s+` + qty),
		rename: func(m []string) string { return "Global IT Services - " + strings.TrimSpace(m[1]) },
	},
	{
		re:     regexp.MustCompile(`Office\s*365\s+(` + strings.Join(office365Tiers, "|") + `)\s+` + qty),
		rename: func(m []string) string { return "Office 365 " + m[1] },
	},
	{
		re:     regexp.MustCompile(`Global Guarding Platform\s*-\s*([^\d\n]+?)\s+` + qty),
		rename: func(m []string) string { return "Global Guarding Platform - " + strings.TrimSpace(m[1]) },
	},
	{
		re:     regexp.MustCompile(`Mark-up\s+([^\d\n]+?)\s+` + qty),
		rename: func(m []string) string { return "Mark-up " + strings.TrimSpace(m[1]) },
	},
	{
		// Fragment emitted by the global-avl extractor.
		re:     regexp.MustCompile(`Servicio localizacion \((\d+) disp\.\)`),
		rename: func(m []string) string { return "Servicio localizacion" },
	},
}

// Parse runs every sub-pattern independently over block and returns all
// entries with a strictly positive quantity. A block may yield zero, one, or
// many entries.
func Parse(block string) []Entry {
	var entries []Entry
	for _, p := range patterns {
		for _, m := range p.re.FindAllStringSubmatch(block, -1) {
			q := parseQuantity(m[len(m)-1])
			if !q.IsPositive() {
				continue
			}
			entries = append(entries, Entry{ServiceName: p.rename(m), Quantity: q})
		}
	}
	return entries
}

func parseQuantity(raw string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.ReplaceAll(raw, ",", "."))
	if err != nil {
		return decimal.Zero
	}
	return d
}
