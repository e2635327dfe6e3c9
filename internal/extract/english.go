package extract

import "regexp"

// englishExtractor handles the all-caps US layout. The customer/description
// block is bounded by the DATEAMOUNT table marker and the closing courtesy
// boilerplate, the most complete of the historical strategies; an ATTN line
// supplies the customer name when present.
type englishExtractor struct{}

const (
	markerEnglishTable      = "DATEAMOUNT"
	markerEnglishBoilerText = "If you have any questions"
)

var (
	reEngNumber  = regexp.MustCompile(`INVOICE NUMBER\s*:?\s*(\S+)`)
	reEngDate    = regexp.MustCompile(`INVOICE DATE\s*:?\s*(\S+)`)
	reEngAttn    = regexp.MustCompile(`ATTN\s*:\s*([^\n]+)`)
	reEngNonDate = regexp.MustCompile(`[^0-9/]`)

	// Amount labels in priority order: the most specific one wins.
	engAmountPatterns = []struct {
		name string
		re   *regexp.Regexp
	}{
		{"TOTALUSD", regexp.MustCompile(`TOTALUSD\s*:?\s*\$?\s*([\d][\d.,]*)`)},
		{"TOTAL", regexp.MustCompile(`TOTAL\s*:?\s*\$?\s*([\d][\d.,]*)`)},
		{"AMOUNT", regexp.MustCompile(`AMOUNT\s*:?\s*\$?\s*([\d][\d.,]*)`)},
	}
)

func (englishExtractor) Format() FormatKind { return FormatEnglish }

func (englishExtractor) Extract(text string) Fields {
	f := Fields{Format: FormatEnglish}
	f.InvoiceNumber = firstGroup(reEngNumber, text, "english.number")
	f.IssueDate = englishDate(text)
	f.DueDate = Miss("english.due_date")

	f.CustomerName = firstGroup(reEngAttn, text, "english.attn")
	if f.CustomerName.Found {
		f.CustomerName = Hit(collapseLines(f.CustomerName.Value))
	}

	f.LineItemText = Miss("english.block")
	if block, ok := betweenMarkers(text, markerEnglishTable, markerEnglishBoilerText); ok {
		f.LineItemText = Hit(collapseLines(block))
	}

	f.Amount = Miss("english.amount")
	for _, p := range engAmountPatterns {
		if m := p.re.FindStringSubmatch(text); len(m) >= 2 {
			f.Amount = amountField(m[1])
			break
		}
	}
	return f
}

// englishDate takes the first token after INVOICE DATE, strips everything
// outside digits and slashes, and keeps it only when it forms a real
// calendar date.
func englishDate(text string) Field {
	m := reEngDate.FindStringSubmatch(text)
	if len(m) < 2 {
		return Miss("english.date")
	}
	cleaned := reEngNonDate.ReplaceAllString(m[1], "")
	if iso, ok := NormalizeDate(cleaned); ok {
		return Hit(iso)
	}
	return Miss("english.date.invalid")
}
