package calculation

import (
	"github.com/immocalc/immo-vs-etf/internal/domain"
	"github.com/immocalc/immo-vs-etf/pkg/money"
)

// CashflowStats summarizes the after-tax cashflows of a projection.
// The break-even year is the first year whose cumulative cashflow is non-negative.
func CashflowStats(rows []domain.ProjectionRow) domain.CashflowStats {
	stats := domain.CashflowStats{ProjectionYears: len(rows)}
	if len(rows) == 0 {
		return stats
	}

	var cumulative float64
	for i, r := range rows {
		cf := r.CashflowAfterTax
		switch {
		case cf > 0:
			stats.TotalPositive += cf
		case cf < 0:
			stats.TotalNegative += cf
			stats.NegativeYears++
		}
		cumulative += cf
		if cumulative >= 0 && stats.BreakEvenYear == 0 {
			stats.BreakEvenYear = i + 1
		}
	}

	stats.TotalPositive = money.Round(stats.TotalPositive)
	stats.TotalNegative = money.Round(stats.TotalNegative)
	stats.Cumulative = money.Round(cumulative)
	stats.Average = money.Round(cumulative / float64(len(rows)))
	return stats
}

// CashflowStats runs the projection and summarizes its cashflows.
func (ce *CalculationEngine) CashflowStats(p *domain.InputParameters) domain.CashflowStats {
	return CashflowStats(ce.Projection(p))
}
