package extract

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// classicExtractor handles the original layout where pdf text extraction
// glues labels to their values ("Number123456", "Date2024/05/10") and the
// line-item table follows the MarkerClassicHeader row.
type classicExtractor struct{}

var (
	reClassicNumber = regexp.MustCompile(`Number(\d+)`)
	reClassicDate   = regexp.MustCompile(`Date(\d{4}/\d{2}/\d{2})`)

	// Decimal-comma money tokens on the COP line, e.g. "1.234,56".
	reClassicMoney = regexp.MustCompile(`\d[\d\s.]*\d,\d{2}`)
)

func (classicExtractor) Format() FormatKind { return FormatClassic }

func (classicExtractor) Extract(text string) Fields {
	f := Fields{Format: FormatClassic}
	f.InvoiceNumber = firstGroup(reClassicNumber, text, "classic.number")
	f.IssueDate = normalizedDateField(firstGroup(reClassicDate, text, "classic.date"), "classic.date.invalid")
	f.DueDate = FindDueDate(text)
	f.CustomerName = Miss("classic.customer_name")
	f.LineItemText = classicBlock(text)
	f.Amount = classicAmount(text)
	return f
}

// classicBlock takes everything between the table header and the next
// terminator token. The terminator is sometimes absent on one-page invoices,
// in which case the remainder of the document is the block.
func classicBlock(text string) Field {
	block, ok := betweenMarkers(text, MarkerClassicHeader, "Amount", "Valor total")
	if !ok {
		return Miss("classic.block")
	}
	return Hit(collapseLines(block))
}

// classicAmount finds the first line mentioning COP and takes the largest
// decimal-comma number on it: unit prices and subtotals are always smaller
// than the invoice total.
func classicAmount(text string) Field {
	for _, line := range strings.Split(text, "\n") {
		if !strings.Contains(line, "COP") {
			continue
		}
		tokens := reClassicMoney.FindAllString(line, -1)
		if len(tokens) == 0 {
			return Miss("classic.amount.no_tokens")
		}
		max := decimal.Zero
		for _, tok := range tokens {
			if v := NormalizeAmount(tok); v.GreaterThan(max) {
				max = v
			}
		}
		return Hit(max.StringFixed(2))
	}
	return Miss("classic.amount")
}

// normalizedDateField re-renders a found date field as ISO, degrading to a
// miss when the value is not a real calendar date.
func normalizedDateField(f Field, invalidPattern string) Field {
	if !f.Found {
		return f
	}
	iso, ok := NormalizeDate(f.Value)
	if !ok {
		return Miss(invalidPattern)
	}
	return Hit(iso)
}
