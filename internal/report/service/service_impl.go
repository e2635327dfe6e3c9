package service

import (
	"context"
	"sort"

	invoicedomain "github.com/jesus-or/facturas/internal/invoice/domain"
	"github.com/jesus-or/facturas/internal/report/domain"
	"github.com/jesus-or/facturas/internal/serviceline"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// stableBandPercent: changes below this magnitude are reported as stable.
var stableBandPercent = decimal.NewFromInt(5)

var hundred = decimal.NewFromInt(100)

type Params struct {
	fx.In

	DB   *gorm.DB
	Log  *zap.Logger
	Repo invoicedomain.Repository
}

type Service struct {
	db   *gorm.DB
	log  *zap.Logger
	repo invoicedomain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:   p.DB,
		log:  p.Log.Named("report.service"),
		repo: p.Repo,
	}
}

func (s *Service) MonthlyTotals(ctx context.Context) ([]domain.MonthlyTotal, error) {
	invoices, err := s.repo.ListExtracted(ctx, s.db)
	if err != nil {
		return nil, err
	}

	byMonth := map[string]*domain.MonthlyTotal{}
	for _, inv := range invoices {
		month := inv.Month()
		agg, ok := byMonth[month]
		if !ok {
			agg = &domain.MonthlyTotal{Month: month}
			byMonth[month] = agg
		}
		agg.Total = agg.Total.Add(inv.TotalAmount)
		agg.InvoiceCount++
	}

	totals := make([]domain.MonthlyTotal, 0, len(byMonth))
	for _, agg := range byMonth {
		totals = append(totals, *agg)
	}
	// YYYY-MM is fixed width, lexical order is chronological.
	sort.Slice(totals, func(i, j int) bool { return totals[i].Month < totals[j].Month })
	return totals, nil
}

func (s *Service) ServiceReport(ctx context.Context) (domain.ServiceReport, error) {
	invoices, err := s.repo.ListExtracted(ctx, s.db)
	if err != nil {
		return domain.ServiceReport{}, err
	}

	type key struct{ service, month string }
	cells := map[key]*domain.ServiceMonth{}
	months := map[string][]string{} // service -> months in chronological order

	for _, inv := range invoices {
		month := inv.Month()
		entries := serviceline.Parse(inv.LineItemText())
		seen := map[string]bool{}
		for _, e := range entries {
			k := key{e.ServiceName, month}
			cell, ok := cells[k]
			if !ok {
				cell = &domain.ServiceMonth{ServiceName: e.ServiceName, Month: month}
				cells[k] = cell
				months[e.ServiceName] = append(months[e.ServiceName], month)
			}
			cell.TotalQuantity = cell.TotalQuantity.Add(e.Quantity)
			if !seen[e.ServiceName] {
				// One invoice contributes its total once per service even
				// when several lines of that service appear on it.
				cell.TotalAmount = cell.TotalAmount.Add(inv.TotalAmount)
				cell.InvoiceCount++
				cell.InvoiceRefs = append(cell.InvoiceRefs, inv.InvoiceNumber)
				seen[e.ServiceName] = true
			}
		}
	}

	report := domain.ServiceReport{}
	for svc, svcMonths := range months {
		sort.Strings(svcMonths)
		for i, month := range svcMonths {
			cur := cells[key{svc, month}]
			if i == 0 {
				report.Comparisons = append(report.Comparisons, domain.Comparison{
					ServiceName:   svc,
					CurrentMonth:  month,
					Delta:         cur.TotalAmount,
					PercentChange: hundred,
					Trend:         domain.TrendNew,
				})
				continue
			}
			prev := cells[key{svc, svcMonths[i-1]}]
			report.Comparisons = append(report.Comparisons, compare(cur, prev))
		}
	}

	for _, cell := range cells {
		report.Monthly = append(report.Monthly, *cell)
	}

	// Most recent month first for display, service name as tiebreaker.
	sort.Slice(report.Monthly, func(i, j int) bool {
		a, b := report.Monthly[i], report.Monthly[j]
		if a.Month != b.Month {
			return a.Month > b.Month
		}
		return a.ServiceName < b.ServiceName
	})
	sort.Slice(report.Comparisons, func(i, j int) bool {
		a, b := report.Comparisons[i], report.Comparisons[j]
		if a.CurrentMonth != b.CurrentMonth {
			return a.CurrentMonth > b.CurrentMonth
		}
		return a.ServiceName < b.ServiceName
	})
	return report, nil
}

func compare(cur, prev *domain.ServiceMonth) domain.Comparison {
	delta := cur.TotalAmount.Sub(prev.TotalAmount)
	pct := decimal.Zero
	if !prev.TotalAmount.IsZero() {
		pct = delta.Div(prev.TotalAmount).Mul(hundred)
	}

	trend := domain.TrendStable
	if pct.Abs().GreaterThanOrEqual(stableBandPercent) {
		if delta.IsPositive() {
			trend = domain.TrendUp
		} else {
			trend = domain.TrendDown
		}
	}

	return domain.Comparison{
		ServiceName:   cur.ServiceName,
		CurrentMonth:  cur.Month,
		PreviousMonth: prev.Month,
		Delta:         delta,
		PercentChange: pct,
		Trend:         trend,
	}
}
