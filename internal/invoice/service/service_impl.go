package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/jesus-or/facturas/internal/config"
	"github.com/jesus-or/facturas/internal/extract"
	"github.com/jesus-or/facturas/internal/invoice/domain"
	"github.com/jesus-or/facturas/internal/observability"
	"github.com/jesus-or/facturas/internal/providers/pdftext"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB      *gorm.DB
	Log     *zap.Logger
	GenID   *snowflake.Node
	Repo    domain.Repository
	Rules   *config.RulesHolder
	PDF     pdftext.Extractor
	Metrics *observability.Metrics
}

type Service struct {
	db      *gorm.DB
	log     *zap.Logger
	genID   *snowflake.Node
	repo    domain.Repository
	rules   *config.RulesHolder
	pdf     pdftext.Extractor
	metrics *observability.Metrics
}

func New(p Params) domain.Service {
	return &Service{
		db:      p.DB,
		log:     p.Log.Named("invoice.service"),
		genID:   p.GenID,
		repo:    p.Repo,
		rules:   p.Rules,
		pdf:     p.PDF,
		metrics: p.Metrics,
	}
}

func (s *Service) IngestPDF(ctx context.Context, filename string, data []byte) (*domain.Invoice, error) {
	text, err := s.pdf.Text(data)
	if err != nil {
		s.log.Error("pdf text extraction failed", zap.String("file", filename), zap.Error(err))
		return nil, domain.ErrPDFParse
	}
	return s.IngestText(ctx, domain.IngestTextRequest{Filename: filename, Text: text})
}

func (s *Service) IngestText(ctx context.Context, req domain.IngestTextRequest) (*domain.Invoice, error) {
	text := extract.CleanText(req.Text)
	if text == "" {
		return nil, domain.ErrEmptyDocument
	}

	kind := extract.Classify(text, s.rules.Rules())
	s.metrics.Classified(kind)
	if kind == extract.FormatUnknown {
		// Distinct signal so operators can spot vendor formats that need a
		// dedicated extractor.
		s.log.Warn("unrecognized invoice format",
			zap.String("file", req.Filename),
			zap.String("preview", preview(text, 120)))
	}

	fields := extract.ForFormat(kind).Extract(text)
	misses := fields.Misses()
	for field, pattern := range misses {
		s.metrics.FieldMiss(kind, field)
		s.log.Debug("field degraded to sentinel",
			zap.String("file", req.Filename),
			zap.String("format", string(kind)),
			zap.String("field", field),
			zap.String("pattern", pattern))
	}

	inv := s.buildRecord(req.Filename, fields, misses)
	if err := s.repo.Insert(ctx, s.db, inv); err != nil {
		if errors.Is(err, domain.ErrDuplicateInvoice) {
			s.log.Warn("duplicate invoice rejected",
				zap.String("file", req.Filename),
				zap.String("invoice_number", inv.InvoiceNumber))
			return nil, err
		}
		s.log.Error("failed to persist invoice", zap.String("file", req.Filename), zap.Error(err))
		return nil, err
	}
	s.metrics.Ingested(kind)

	s.log.Info("invoice ingested",
		zap.String("file", req.Filename),
		zap.String("format", string(kind)),
		zap.String("invoice_number", inv.InvoiceNumber),
		zap.String("total_amount", inv.TotalAmount.StringFixed(2)))
	return inv, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Invoice, error) {
	return s.repo.List(ctx, s.db)
}

func (s *Service) buildRecord(filename string, fields extract.Fields, misses map[string]string) *domain.Invoice {
	meta := datatypes.JSONMap{}
	if len(misses) > 0 {
		missMeta := map[string]interface{}{}
		for k, v := range misses {
			missMeta[k] = v
		}
		meta["misses"] = missMeta
	}

	return &domain.Invoice{
		ID:              s.genID.Generate(),
		InvoiceNumber:   fields.InvoiceNumber.Or(extract.SentinelNotFound),
		IssueDate:       isoDate(fields.IssueDate),
		DueDate:         isoDate(fields.DueDate),
		CustomerBlock:   fields.CustomerBlock(),
		CustomerName:    fields.CustomerName.Or(""),
		RawLineItemText: fields.LineItemText.Or(""),
		TotalAmount:     fields.AmountDecimal(),
		Format:          string(fields.Format),
		SourceFile:      filename,
		Metadata:        meta,
		CreatedAt:       time.Now().UTC(),
	}
}

// isoDate converts a found ISO date field to a time pointer, null otherwise.
func isoDate(f extract.Field) *time.Time {
	if !f.Found {
		return nil
	}
	t, err := time.Parse("2006-01-02", f.Value)
	if err != nil {
		return nil
	}
	return &t
}

func preview(text string, n int) string {
	r := []rune(strings.TrimSpace(text))
	if len(r) > n {
		r = r[:n]
	}
	return string(r)
}
