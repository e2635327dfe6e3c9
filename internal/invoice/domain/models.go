// Package domain contains persistence models and contracts for extracted
// invoices.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Invoice is one extracted invoice document. Column names keep the legacy
// Facturas schema so existing readers stay compatible; CustomerName and
// RawLineItemText split the historically overloaded Cliente field, which is
// still written in its combined form. The (NumeroFactura, ArchivoOrigen)
// unique index rejects re-ingesting the same document.
type Invoice struct {
	ID            snowflake.ID    `gorm:"primaryKey" json:"id"`
	InvoiceNumber string          `gorm:"column:NumeroFactura;type:text;not null;uniqueIndex:ux_facturas_numero_archivo,priority:1" json:"invoice_number"`
	IssueDate     *time.Time      `gorm:"column:FechaEmision" json:"issue_date,omitempty"`
	DueDate       *time.Time      `gorm:"column:FechaVencimiento" json:"due_date,omitempty"`
	CustomerBlock string          `gorm:"column:Cliente;type:text" json:"customer_block"`
	TotalAmount   decimal.Decimal `gorm:"column:MontoTotal;type:decimal(18,2);not null" json:"total_amount"`

	CustomerName    string            `gorm:"column:ClienteNombre;type:text" json:"customer_name"`
	RawLineItemText string            `gorm:"column:DetalleLineas;type:text" json:"raw_line_item_text"`
	Format          string            `gorm:"column:Formato;type:text;not null" json:"format"`
	SourceFile      string            `gorm:"column:ArchivoOrigen;type:text;uniqueIndex:ux_facturas_numero_archivo,priority:2" json:"source_file,omitempty"`
	Metadata        datatypes.JSONMap `gorm:"type:jsonb;not null;default:'{}'" json:"metadata"`
	CreatedAt       time.Time         `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName keeps the legacy table name.
func (Invoice) TableName() string { return "Facturas" }

// Month returns the calendar month of the issue date as YYYY-MM, or "" for
// records excluded from aggregation.
func (i Invoice) Month() string {
	if i.IssueDate == nil {
		return ""
	}
	return i.IssueDate.Format("2006-01")
}

// LineItemText returns the text the service-line parser should mine: the
// split column when present, the legacy combined block for old rows.
func (i Invoice) LineItemText() string {
	if i.RawLineItemText != "" {
		return i.RawLineItemText
	}
	return i.CustomerBlock
}
