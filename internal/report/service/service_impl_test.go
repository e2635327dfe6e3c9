package service

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	invoicedomain "github.com/jesus-or/facturas/internal/invoice/domain"
	invoicerepo "github.com/jesus-or/facturas/internal/invoice/repository"
	"github.com/jesus-or/facturas/internal/report/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func setupReportDB(t *testing.T) (*gorm.DB, *snowflake.Node) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	assert.NoError(t, err)
	assert.NoError(t, db.AutoMigrate(&invoicedomain.Invoice{}))
	assert.NoError(t, db.Exec(`DELETE FROM "Facturas"`).Error)

	node, err := snowflake.NewNode(1)
	assert.NoError(t, err)
	return db, node
}

func seedInvoice(t *testing.T, db *gorm.DB, node *snowflake.Node, number, isoDate, raw, block string, amount int64) {
	t.Helper()
	inv := &invoicedomain.Invoice{
		ID:              node.Generate(),
		InvoiceNumber:   number,
		CustomerBlock:   block,
		RawLineItemText: raw,
		TotalAmount:     decimal.NewFromInt(amount),
		Format:          "classic",
		Metadata:        datatypes.JSONMap{},
		CreatedAt:       time.Now().UTC(),
	}
	if isoDate != "" {
		d, err := time.Parse("2006-01-02", isoDate)
		assert.NoError(t, err)
		inv.IssueDate = &d
	}
	assert.NoError(t, db.Create(inv).Error)
}

func newReportService(db *gorm.DB) domain.Service {
	return New(Params{DB: db, Log: zap.NewNop(), Repo: invoicerepo.Provide()})
}

func TestMonthlyTotals(t *testing.T) {
	db, node := setupReportDB(t)
	seedInvoice(t, db, node, "A1", "2024-01-10", "Global IT Services - Soporte 5", "", 100)
	seedInvoice(t, db, node, "B1", "2024-01-15", "Office 365 E3 4", "", 100)
	seedInvoice(t, db, node, "A2", "2024-02-10", "Global IT Services - Soporte 7", "", 150)
	seedInvoice(t, db, node, "B2", "2024-02-12", "Office 365 E3 4", "", 103)
	seedInvoice(t, db, node, "ND", "", "Office 365 E3 4", "", 999) // no date, excluded

	totals, err := newReportService(db).MonthlyTotals(context.Background())
	assert.NoError(t, err)

	if assert.Len(t, totals, 2) {
		assert.Equal(t, "2024-01", totals[0].Month)
		assert.True(t, totals[0].Total.Equal(decimal.NewFromInt(200)), "got %s", totals[0].Total)
		assert.Equal(t, 2, totals[0].InvoiceCount)

		assert.Equal(t, "2024-02", totals[1].Month)
		assert.True(t, totals[1].Total.Equal(decimal.NewFromInt(253)), "got %s", totals[1].Total)
		assert.Equal(t, 2, totals[1].InvoiceCount)
	}
}

func TestServiceReportComparisons(t *testing.T) {
	db, node := setupReportDB(t)
	seedInvoice(t, db, node, "A1", "2024-01-10", "Global IT Services - Soporte 5", "", 100)
	seedInvoice(t, db, node, "A2", "2024-02-10", "Global IT Services - Soporte 7", "", 150)
	// Legacy row: the combined block still feeds the parser.
	seedInvoice(t, db, node, "B1", "2024-01-15", "", "Office 365 E3 4", 100)
	seedInvoice(t, db, node, "B2", "2024-02-12", "Office 365 E3 4", "", 103)

	rep, err := newReportService(db).ServiceReport(context.Background())
	assert.NoError(t, err)

	byKey := map[string]domain.Comparison{}
	for _, c := range rep.Comparisons {
		byKey[c.ServiceName+"|"+c.CurrentMonth] = c
	}
	assert.Len(t, rep.Comparisons, 4)

	first := byKey["Global IT Services - Soporte|2024-01"]
	assert.Equal(t, domain.TrendNew, first.Trend)
	assert.Equal(t, "", first.PreviousMonth)
	assert.True(t, first.Delta.Equal(decimal.NewFromInt(100)), "got %s", first.Delta)
	assert.True(t, first.PercentChange.Equal(decimal.NewFromInt(100)))

	up := byKey["Global IT Services - Soporte|2024-02"]
	assert.Equal(t, domain.TrendUp, up.Trend)
	assert.Equal(t, "2024-01", up.PreviousMonth)
	assert.True(t, up.Delta.Equal(decimal.NewFromInt(50)), "got %s", up.Delta)
	assert.True(t, up.PercentChange.Equal(decimal.NewFromInt(50)), "got %s", up.PercentChange)

	// +3% sits inside the stable band.
	stable := byKey["Office 365 E3|2024-02"]
	assert.Equal(t, domain.TrendStable, stable.Trend)
	assert.True(t, stable.Delta.Equal(decimal.NewFromInt(3)))

	// Most recent month first.
	assert.Equal(t, "2024-02", rep.Comparisons[0].CurrentMonth)
	assert.Equal(t, "2024-01", rep.Comparisons[len(rep.Comparisons)-1].CurrentMonth)
}

func TestServiceReportMonthlyCells(t *testing.T) {
	db, node := setupReportDB(t)
	seedInvoice(t, db, node, "A1", "2024-01-10", "Global IT Services - Soporte 5", "", 100)
	seedInvoice(t, db, node, "A3", "2024-01-20", "Global IT Services - Soporte 2", "", 40)

	rep, err := newReportService(db).ServiceReport(context.Background())
	assert.NoError(t, err)

	if assert.Len(t, rep.Monthly, 1) {
		cell := rep.Monthly[0]
		assert.Equal(t, "Global IT Services - Soporte", cell.ServiceName)
		assert.Equal(t, "2024-01", cell.Month)
		assert.True(t, cell.TotalQuantity.Equal(decimal.NewFromInt(7)), "got %s", cell.TotalQuantity)
		assert.True(t, cell.TotalAmount.Equal(decimal.NewFromInt(140)), "got %s", cell.TotalAmount)
		assert.Equal(t, 2, cell.InvoiceCount)
		assert.Equal(t, []string{"A1", "A3"}, cell.InvoiceRefs)
	}
}

func TestServiceReportDownTrend(t *testing.T) {
	db, node := setupReportDB(t)
	seedInvoice(t, db, node, "C1", "2024-03-01", "Servicio localizacion (10 disp.)", "", 200)
	seedInvoice(t, db, node, "C2", "2024-04-01", "Servicio localizacion (8 disp.)", "", 150)

	rep, err := newReportService(db).ServiceReport(context.Background())
	assert.NoError(t, err)

	var down *domain.Comparison
	for i := range rep.Comparisons {
		if rep.Comparisons[i].CurrentMonth == "2024-04" {
			down = &rep.Comparisons[i]
		}
	}
	if assert.NotNil(t, down) {
		assert.Equal(t, domain.TrendDown, down.Trend)
		assert.True(t, down.Delta.Equal(decimal.NewFromInt(-50)))
		assert.True(t, down.PercentChange.Equal(decimal.NewFromInt(-25)))
	}
}

func TestServiceReportEmpty(t *testing.T) {
	db, _ := setupReportDB(t)

	rep, err := newReportService(db).ServiceReport(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, rep.Monthly)
	assert.Empty(t, rep.Comparisons)
}
