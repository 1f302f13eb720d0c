package calculation

import (
	"testing"

	"github.com/immocalc/immo-vs-etf/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjection_Defaults(t *testing.T) {
	engine := NewCalculationEngine()
	rows := engine.Projection(nil)

	require.Len(t, rows, 20)

	assert.Equal(t, domain.ProjectionRow{
		Year: 1, Rent: 9600, PropertyValue: 360000, RemainingDebt: 282240,
		InterestPaid: 10080, PrincipalPaid: 5760, CashflowAfterTax: -9760,
	}, rows[0])

	assert.Equal(t, 2, rows[1].Year)
	assert.Equal(t, 9744.0, rows[1].Rent)
	assert.Equal(t, 367200.0, rows[1].PropertyValue)
	assert.Equal(t, 276480.0, rows[1].RemainingDebt)
	assert.InDelta(t, 9878.4, rows[1].InterestPaid, 1e-9)
	assert.InDelta(t, -9450.4, rows[1].CashflowAfterTax, 1e-9)

	last := rows[19]
	assert.Equal(t, 20, last.Year)
	assert.InDelta(t, 12738.73, last.Rent, 1e-9)
	assert.InDelta(t, 524452.02, last.PropertyValue, 1e-9)
	assert.InDelta(t, 172800, last.RemainingDebt, 1e-9)
	assert.InDelta(t, 6249.6, last.InterestPaid, 1e-9)
	assert.InDelta(t, -3575.55, last.CashflowAfterTax, 1e-9)
}

func TestProjection_DebtNonIncreasing(t *testing.T) {
	engine := NewCalculationEngine()

	// 10% principal pays off the loan in year 10.
	p := defaultsWith(func(p *domain.InputParameters) {
		p.AmortizationPct = 10
		p.HoldingYears = 15
	})
	rows := engine.Projection(p)
	require.Len(t, rows, 15)

	for i := 1; i < len(rows); i++ {
		assert.LessOrEqual(t, rows[i].RemainingDebt, rows[i-1].RemainingDebt)
		assert.GreaterOrEqual(t, rows[i].RemainingDebt, 0.0)
	}
	assert.Equal(t, 0.0, rows[9].RemainingDebt)
	assert.Equal(t, 0.0, rows[10].PrincipalPaid)
	assert.Equal(t, 0.0, rows[10].InterestPaid)
}

func TestProjection_FinalPayoffCapped(t *testing.T) {
	engine := NewCalculationEngine()

	// 30% principal: 86400 per year, only 28800 left in year 4.
	rows := engine.Projection(defaultsWith(func(p *domain.InputParameters) {
		p.AmortizationPct = 30
		p.HoldingYears = 5
	}))
	assert.Equal(t, 86400.0, rows[2].PrincipalPaid)
	assert.Equal(t, 28800.0, rows[3].PrincipalPaid)
	assert.Equal(t, 0.0, rows[3].RemainingDebt)
	assert.Equal(t, 0.0, rows[4].PrincipalPaid)
}

func TestProjection_EscalationStartsInYearTwo(t *testing.T) {
	engine := NewCalculationEngine()
	p := defaultsWith(func(p *domain.InputParameters) {
		p.AppreciationPct = 10
		p.RentGrowthPct = 5
		p.HoldingYears = 2
	})
	rows := engine.Projection(p)

	assert.Equal(t, p.AnnualRent(), rows[0].Rent)
	assert.Equal(t, p.PurchasePrice, rows[0].PropertyValue)
	assert.InDelta(t, p.AnnualRent()*1.05, rows[1].Rent, 0.005)
	assert.InDelta(t, p.PurchasePrice*1.10, rows[1].PropertyValue, 0.005)
}

func TestProjection_NegativeGrowth(t *testing.T) {
	engine := NewCalculationEngine()
	rows := engine.Projection(defaultsWith(func(p *domain.InputParameters) {
		p.AppreciationPct = -2
		p.HoldingYears = 3
	}))
	assert.Equal(t, 352800.0, rows[1].PropertyValue)
	assert.Equal(t, 345744.0, rows[2].PropertyValue)
}

func TestProjection_NoHoldingYears(t *testing.T) {
	engine := NewCalculationEngine()
	rows := engine.Projection(defaultsWith(func(p *domain.InputParameters) { p.HoldingYears = 0 }))
	assert.Empty(t, rows)
}
