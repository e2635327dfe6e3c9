// Package pdftext turns PDF payloads into the plain text the extraction
// pipeline consumes.
package pdftext

import (
	"bytes"
	"strings"

	"github.com/ledongthuc/pdf"
	"go.uber.org/fx"
)

// Extractor converts a PDF document into plain text.
type Extractor interface {
	Text(data []byte) (string, error)
}

var Module = fx.Module("providers.pdftext",
	fx.Provide(New),
)

type ledongthucExtractor struct{}

func New() Extractor {
	return &ledongthucExtractor{}
}

// Text concatenates every page row by row. Words inside a row are joined
// without separators: vendor layouts place labels and values in adjacent
// cells, and downstream patterns rely on forms like "Number123456".
func (e *ledongthucExtractor) Text(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			return "", err
		}
		for _, row := range rows {
			for _, word := range row.Content {
				b.WriteString(word.S)
			}
			b.WriteString("\n")
		}
	}
	return b.String(), nil
}
