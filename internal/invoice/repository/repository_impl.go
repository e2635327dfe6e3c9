package repository

import (
	"context"

	"github.com/jesus-or/facturas/internal/invoice/domain"
	pkgdb "github.com/jesus-or/facturas/pkg/db"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

// issueDateCol goes through clause quoting so the mixed-case legacy column
// name survives on every supported dialect.
var issueDateCol = clause.Column{Name: "FechaEmision"}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, inv *domain.Invoice) error {
	if err := db.WithContext(ctx).Create(inv).Error; err != nil {
		if pkgdb.IsDuplicateKeyErr(err) {
			return domain.ErrDuplicateInvoice
		}
		return err
	}
	return nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB) ([]domain.Invoice, error) {
	var invoices []domain.Invoice
	// The IS NULL key forces undated rows to the end regardless of how the
	// dialect orders NULLs on DESC.
	err := db.WithContext(ctx).
		Model(&domain.Invoice{}).
		Clauses(clause.OrderBy{Expression: clause.Expr{
			SQL:  "? IS NULL, ? DESC, ? DESC",
			Vars: []interface{}{issueDateCol, issueDateCol, clause.Column{Name: "id"}},
		}}).
		Find(&invoices).Error
	if err != nil {
		return nil, err
	}
	return invoices, nil
}

func (r *repo) ListExtracted(ctx context.Context, db *gorm.DB) ([]domain.Invoice, error) {
	var invoices []domain.Invoice
	err := db.WithContext(ctx).
		Model(&domain.Invoice{}).
		Where(clause.Expr{SQL: "? IS NOT NULL", Vars: []interface{}{issueDateCol}}).
		Order(clause.OrderByColumn{Column: issueDateCol}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}}).
		Find(&invoices).Error
	if err != nil {
		return nil, err
	}
	return invoices, nil
}
