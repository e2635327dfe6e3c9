package extract

import "regexp"

// colombianExtractor handles DIAN-style electronic invoices ("Factura
// Electrónica" + NIT markers). Dates arrive as DD/MM/YYYY and are
// canonicalized to ISO here; the source system stored them raw.
type colombianExtractor struct{}

var (
	reColNumber  = regexp.MustCompile(`(?i)Factura\s*N[°ºo]\.?\s*:?\s*(\d+)`)
	reColFecha   = regexp.MustCompile(`Fecha\s*:?\s*(\d{2}/\d{2}/\d{4})`)
	reColCliente = regexp.MustCompile(`(?s)Cliente\s*:\s*(.*?)\s*NIT`)
	reColDetalle = regexp.MustCompile(`(?s)Descripción\s*:\s*(.*?)\s*Total\s*:`)
	reColTotal   = regexp.MustCompile(`Total\s*:\s*\$?\s*([\d][\d.,]*)`)
)

func (colombianExtractor) Format() FormatKind { return FormatColombian }

func (colombianExtractor) Extract(text string) Fields {
	f := Fields{Format: FormatColombian}
	f.InvoiceNumber = firstGroup(reColNumber, text, "colombian.number")

	f.IssueDate = Miss("colombian.fecha")
	if m := reColFecha.FindStringSubmatch(text); len(m) >= 2 {
		if iso, ok := NormalizeDateDMY(m[1]); ok {
			f.IssueDate = Hit(iso)
		} else {
			f.IssueDate = Miss("colombian.fecha.invalid")
		}
	}
	f.DueDate = Miss("colombian.due_date")

	f.CustomerName = firstGroup(reColCliente, text, "colombian.cliente")
	if f.CustomerName.Found {
		f.CustomerName = Hit(collapseLines(f.CustomerName.Value))
	}

	f.LineItemText = firstGroup(reColDetalle, text, "colombian.detalle")
	if f.LineItemText.Found {
		f.LineItemText = Hit(collapseLines(f.LineItemText.Value))
	}

	f.Amount = Miss("colombian.total")
	if m := reColTotal.FindStringSubmatch(text); len(m) >= 2 {
		f.Amount = amountField(m[1])
	}
	return f
}
