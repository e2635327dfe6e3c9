package extract

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// globalAVLExtractor handles Global AVL / Hiber Data Stream telemetry
// invoices. Beyond the labelled fields it walks the document line by line:
// once for the localization-service rows that feed reporting, and once for
// the Total line, where later and more specific labels override Sub-Total
// style false positives.
type globalAVLExtractor struct{}

var (
	reAVLNumber   = regexp.MustCompile(`Factura\s*[:#]?\s*([A-Za-z0-9-]+)`)
	reAVLFecha    = regexp.MustCompile(`Fecha\s*:?\s*(\d{4}/\d{2}/\d{2})`)
	reAVLCliente  = regexp.MustCompile(`(?s)Cliente\s*:\s*(.*?)\s*(?:RUT\s*:|Enviar a\s*:)`)
	reAVLServicio = regexp.MustCompile(`(\d+)\s+Servicio de localizacion`)
	reAVLMoney    = regexp.MustCompile(`[\d][\d.,]*`)
)

func (globalAVLExtractor) Format() FormatKind { return FormatGlobalAVL }

func (globalAVLExtractor) Extract(text string) Fields {
	f := Fields{Format: FormatGlobalAVL}
	f.InvoiceNumber = firstGroup(reAVLNumber, text, "globalavl.number")
	f.IssueDate = normalizedDateField(firstGroup(reAVLFecha, text, "globalavl.fecha"), "globalavl.fecha.invalid")
	f.DueDate = Miss("globalavl.due_date")

	f.CustomerName = firstGroup(reAVLCliente, text, "globalavl.cliente")
	if f.CustomerName.Found {
		f.CustomerName = Hit(collapseLines(f.CustomerName.Value))
	}

	f.LineItemText = avlServiceLines(text)
	f.Amount = avlTotal(text)
	return f
}

// avlServiceLines collects every "<n> Servicio de localizacion ..." row with
// a strictly positive quantity and renders the fragments the service-line
// parser understands.
func avlServiceLines(text string) Field {
	var frags []string
	for _, line := range strings.Split(text, "\n") {
		m := reAVLServicio.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil || n <= 0 {
			continue
		}
		frags = append(frags, fmt.Sprintf("Servicio localizacion (%d disp.)", n))
	}
	if len(frags) == 0 {
		return Miss("globalavl.servicios")
	}
	return Hit(strings.Join(frags, " "))
}

// avlTotal scans for lines whose trimmed text starts with the word Total but
// is neither Sub-Total nor "Total de", and takes the number from the last
// such line.
func avlTotal(text string) Field {
	result := Miss("globalavl.total")
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, "Total") ||
			strings.HasPrefix(trimmed, "Sub-Total") ||
			strings.HasPrefix(trimmed, "Total de") {
			continue
		}
		if tok := reAVLMoney.FindString(trimmed); tok != "" {
			result = amountField(tok)
		}
	}
	return result
}
