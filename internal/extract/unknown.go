package extract

// unknownExtractor is the maximal-sentinel fallback: no structured
// extraction is attempted, but a fixed-length prefix of the document is kept
// for manual inspection of formats that may deserve a dedicated extractor.
type unknownExtractor struct{}

// unknownPreviewRunes bounds the stored raw-text preview.
const unknownPreviewRunes = 500

func (unknownExtractor) Format() FormatKind { return FormatUnknown }

func (unknownExtractor) Extract(text string) Fields {
	preview := []rune(text)
	if len(preview) > unknownPreviewRunes {
		preview = preview[:unknownPreviewRunes]
	}
	return Fields{
		Format:        FormatUnknown,
		InvoiceNumber: Miss("unknown.number"),
		IssueDate:     Miss("unknown.issue_date"),
		DueDate:       Miss("unknown.due_date"),
		CustomerName:  Miss("unknown.customer_name"),
		LineItemText:  Hit(string(preview)),
		Amount:        Miss("unknown.amount"),
	}
}
