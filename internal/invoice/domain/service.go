package domain

import (
	"context"
	"errors"
)

// IngestTextRequest carries already-extracted plain text through the
// extraction pipeline.
type IngestTextRequest struct {
	Filename string `json:"filename"`
	Text     string `json:"text"`
}

type Service interface {
	// IngestPDF extracts text from a PDF payload and runs IngestText on it.
	IngestPDF(ctx context.Context, filename string, data []byte) (*Invoice, error)
	// IngestText classifies, extracts, and persists one document.
	IngestText(ctx context.Context, req IngestTextRequest) (*Invoice, error)
	List(ctx context.Context) ([]Invoice, error)
}

var (
	ErrEmptyDocument    = errors.New("empty_document")
	ErrPDFParse         = errors.New("pdf_parse_failed")
	ErrDuplicateInvoice = errors.New("duplicate_invoice")
)
