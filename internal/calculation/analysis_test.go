package calculation

import (
	"testing"

	"github.com/immocalc/immo-vs-etf/internal/domain"
	"github.com/stretchr/testify/assert"
)

func rowsWithCashflows(cashflows ...float64) []domain.ProjectionRow {
	rows := make([]domain.ProjectionRow, len(cashflows))
	for i, cf := range cashflows {
		rows[i] = domain.ProjectionRow{Year: i + 1, CashflowAfterTax: cf}
	}
	return rows
}

func TestCashflowStats(t *testing.T) {
	tests := []struct {
		name          string
		cashflows     []float64
		positive      float64
		negative      float64
		average       float64
		breakEvenYear int
		negativeYears int
	}{
		{
			name:          "recovers in year three",
			cashflows:     []float64{-100, 50, 60, 10},
			positive:      120,
			negative:      -100,
			average:       5,
			breakEvenYear: 3,
			negativeYears: 1,
		},
		{
			name:          "exact zero counts as break-even",
			cashflows:     []float64{-100, 100},
			positive:      100,
			negative:      -100,
			average:       0,
			breakEvenYear: 2,
			negativeYears: 1,
		},
		{
			name:          "positive from year one",
			cashflows:     []float64{20, -10},
			positive:      20,
			negative:      -10,
			average:       5,
			breakEvenYear: 1,
			negativeYears: 1,
		},
		{
			name:          "never breaks even",
			cashflows:     []float64{-10, -20},
			negative:      -30,
			average:       -15,
			breakEvenYear: 0,
			negativeYears: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := CashflowStats(rowsWithCashflows(tt.cashflows...))
			assert.Equal(t, tt.positive, stats.TotalPositive)
			assert.Equal(t, tt.negative, stats.TotalNegative)
			assert.Equal(t, tt.average, stats.Average)
			assert.Equal(t, tt.breakEvenYear, stats.BreakEvenYear)
			assert.Equal(t, tt.negativeYears, stats.NegativeYears)
			assert.Equal(t, len(tt.cashflows), stats.ProjectionYears)
			assert.Equal(t, tt.breakEvenYear > 0, stats.HasBreakEven())
		})
	}
}

func TestCashflowStats_Empty(t *testing.T) {
	assert.Equal(t, domain.CashflowStats{}, CashflowStats(nil))
}

func TestEngineCashflowStats(t *testing.T) {
	engine := NewCalculationEngine()

	stats := engine.CashflowStats(nil)
	assert.InDelta(t, -134405.6, stats.Cumulative, 0.01)
	assert.InDelta(t, -6720.28, stats.Average, 0.01)
	assert.Equal(t, 0.0, stats.TotalPositive)
	assert.Equal(t, 20, stats.NegativeYears)
	assert.False(t, stats.HasBreakEven())

	stats = engine.CashflowStats(defaultsWith(func(p *domain.InputParameters) { p.RentPerSqmMonth = 30 }))
	assert.Equal(t, 1, stats.BreakEvenYear)
	assert.InDelta(t, 110078.77, stats.Cumulative, 0.01)
}
