// Package domain defines the derived reporting structures. Nothing here is
// persisted; everything is recomputed from stored invoices on each read.
package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

// Trend describes month-over-month change for one service.
type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
	TrendNew    Trend = "new"
)

// MonthlyTotal is the dashboard series: one row per calendar month.
type MonthlyTotal struct {
	Month        string          `json:"month"` // YYYY-MM
	Total        decimal.Decimal `json:"total"`
	InvoiceCount int             `json:"invoice_count"`
}

// ServiceMonth aggregates one service within one calendar month.
type ServiceMonth struct {
	ServiceName   string          `json:"service_name"`
	Month         string          `json:"month"` // YYYY-MM
	TotalQuantity decimal.Decimal `json:"total_quantity"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	InvoiceCount  int             `json:"invoice_count"`
	InvoiceRefs   []string        `json:"invoice_refs"`
}

// Comparison pairs two months of the same service. PreviousMonth is empty on
// a service's first appearance, which is labelled new.
type Comparison struct {
	ServiceName   string          `json:"service_name"`
	CurrentMonth  string          `json:"current_month"`
	PreviousMonth string          `json:"previous_month,omitempty"`
	Delta         decimal.Decimal `json:"delta"`
	PercentChange decimal.Decimal `json:"percent_change"`
	Trend         Trend           `json:"trend"`
}

// ServiceReport is the full comparison view, sorted most-recent month first.
type ServiceReport struct {
	Monthly     []ServiceMonth `json:"monthly"`
	Comparisons []Comparison   `json:"comparisons"`
}

type Service interface {
	MonthlyTotals(ctx context.Context) ([]MonthlyTotal, error)
	ServiceReport(ctx context.Context) (ServiceReport, error)
}
