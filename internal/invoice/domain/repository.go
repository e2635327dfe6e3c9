package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, inv *Invoice) error
	List(ctx context.Context, db *gorm.DB) ([]Invoice, error)
	// ListExtracted returns only rows with a parsed issue date, oldest first,
	// ready for month grouping.
	ListExtracted(ctx context.Context, db *gorm.DB) ([]Invoice, error)
}
