package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultInputs(t *testing.T) {
	p := DefaultInputs()

	assert.Equal(t, 360000.0, p.PurchasePrice)
	assert.Equal(t, 1990, p.ConstructionYear)
	assert.Equal(t, 20, p.HoldingYears)
	assert.True(t, p.UseDynamicTax)
	assert.False(t, p.ChurchTax)
	assert.Equal(t, 9600.0, p.AnnualRent())
	assert.Equal(t, 288000.0, p.LoanAmount())
	assert.InDelta(t, 10.02, p.AcquisitionCostPct(), 1e-9)
}

func TestInputParameters_LoanAmount(t *testing.T) {
	testCases := []struct {
		name     string
		price    float64
		equity   float64
		expected float64
	}{
		{"partly financed", 360000, 72000, 288000},
		{"fully financed", 200000, 0, 200000},
		{"cash purchase", 200000, 200000, 0},
		{"equity exceeds price", 200000, 250000, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := DefaultInputs()
			p.PurchasePrice = tc.price
			p.Equity = tc.equity
			assert.Equal(t, tc.expected, p.LoanAmount())
			assert.GreaterOrEqual(t, p.LoanAmount(), 0.0)
		})
	}
}

func TestInputParameters_GenerateAssumptions(t *testing.T) {
	p := DefaultInputs()
	assumptions := p.GenerateAssumptions()

	require.NotEmpty(t, assumptions)
	assert.Contains(t, assumptions[0], "2.0%")
	assert.Contains(t, assumptions[4], "80000 EUR")

	p.UseDynamicTax = false
	assumptions = p.GenerateAssumptions()
	assert.Contains(t, assumptions[4], "42.0%")
}

func TestAnnualSnapshot_Value(t *testing.T) {
	snapshot := AnnualSnapshot{
		{ID: RowAnnualRent, Label: "Jährliche Mieteinnahmen (gesamt)", Value: 9600},
		{ID: RowLoanAmount, Label: "Darlehensbetrag", Value: 288000},
	}

	v, ok := snapshot.Value(RowAnnualRent)
	assert.True(t, ok)
	assert.Equal(t, 9600.0, v)

	_, ok = snapshot.Value(RowTaxLossBenefit)
	assert.False(t, ok)
	assert.Equal(t, 0.0, snapshot.ValueOrZero(RowTaxLossBenefit))
	assert.Equal(t, []string{"Jährliche Mieteinnahmen (gesamt)", "Darlehensbetrag"}, snapshot.Labels())
}

func TestProjectionRow_Equity(t *testing.T) {
	row := ProjectionRow{PropertyValue: 360000, RemainingDebt: 282240}
	assert.Equal(t, 77760.0, row.Equity())
}

func TestTaxBracket(t *testing.T) {
	b := TaxBracket{Min: 11605, Max: 17005, Rate: 14}
	assert.True(t, b.Contains(11605))
	assert.True(t, b.Contains(17005))
	assert.False(t, b.Contains(17005.5))
	assert.False(t, b.IsTopBracket())
}

func TestAfARule_Applies(t *testing.T) {
	r := AfARule{YearFrom: 2023, YearTo: 2029, Rate: 3}
	assert.False(t, r.Applies(2022))
	assert.True(t, r.Applies(2023))
	assert.True(t, r.Applies(2029))
	assert.False(t, r.Applies(2030))
}

func TestETFType_Valid(t *testing.T) {
	assert.True(t, ETFAccumulating.Valid())
	assert.True(t, ETFDistributing.Valid())
	assert.False(t, ETFType("bond").Valid())
}
