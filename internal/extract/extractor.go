package extract

import (
	"github.com/shopspring/decimal"
)

// Fields is the raw extraction result for one document. String fields carry
// their miss reason when a pattern failed; Amount holds the canonical
// dot-decimal rendering when found.
type Fields struct {
	Format        FormatKind
	InvoiceNumber Field
	IssueDate     Field // ISO YYYY-MM-DD when found
	DueDate       Field // ISO YYYY-MM-DD when found
	CustomerName  Field
	LineItemText  Field
	Amount        Field // canonical dot-decimal string when found
}

// AmountDecimal returns the extracted amount, or zero when the amount
// pattern failed.
func (f Fields) AmountDecimal() decimal.Decimal {
	if !f.Amount.Found {
		return decimal.Zero
	}
	return NormalizeAmount(f.Amount.Value)
}

// CustomerBlock reproduces the legacy combined customer/description field
// that older readers expect: the customer name followed by the raw line-item
// text, or the sentinel when both are missing.
func (f Fields) CustomerBlock() string {
	name := f.CustomerName.Or("")
	items := f.LineItemText.Or("")
	switch {
	case name == "" && items == "":
		return SentinelNotFound
	case name == "":
		return items
	case items == "":
		return name
	default:
		return name + " " + items
	}
}

// Misses maps every degraded field to the pattern that failed, for
// diagnostics. An empty map means a fully extracted document.
func (f Fields) Misses() map[string]string {
	out := map[string]string{}
	add := func(name string, fld Field) {
		if !fld.Found && fld.Miss != "" {
			out[name] = fld.Miss
		}
	}
	add("invoice_number", f.InvoiceNumber)
	add("issue_date", f.IssueDate)
	add("due_date", f.DueDate)
	add("customer_name", f.CustomerName)
	add("line_item_text", f.LineItemText)
	add("amount", f.Amount)
	return out
}

// Extractor converts raw invoice text into Fields for one vendor format.
type Extractor interface {
	Format() FormatKind
	Extract(text string) Fields
}

var extractors = map[FormatKind]Extractor{
	FormatClassic:   classicExtractor{},
	FormatColombian: colombianExtractor{},
	FormatEnglish:   englishExtractor{},
	FormatGlobalAVL: globalAVLExtractor{},
	FormatUnknown:   unknownExtractor{},
}

// ForFormat returns the extractor registered for kind, falling back to the
// unknown extractor.
func ForFormat(kind FormatKind) Extractor {
	if e, ok := extractors[kind]; ok {
		return e
	}
	return extractors[FormatUnknown]
}

// amountField normalizes raw and wraps it as a found amount field.
func amountField(raw string) Field {
	return Hit(NormalizeAmount(raw).StringFixed(2))
}
