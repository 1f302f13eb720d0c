package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeComparison_ETFAhead(t *testing.T) {
	v := AnalyzeComparison(buildTestReport())
	assert.Equal(t, "ETF", v.Winner)
	assert.False(t, v.PropertyWins)
	assert.InDelta(t, 34500, v.Advantage, 1e-9)
	assert.InDelta(t, 34500.0/96500.0*100, v.AdvantagePct, 1e-9)
	assert.Equal(t, 0, v.BreakEvenYear)
}

func TestAnalyzeComparison_PropertyAhead(t *testing.T) {
	r := buildTestReport()
	r.Comparison.AdvantageProperty = 10000
	r.CashflowStats.BreakEvenYear = 3
	v := AnalyzeComparison(r)
	assert.Equal(t, "Immobilie", v.Winner)
	assert.True(t, v.PropertyWins)
	assert.InDelta(t, 10000, v.Advantage, 1e-9)
	assert.Equal(t, 3, v.BreakEvenYear)
}

func TestAnalyzeComparison_ZeroETFValue(t *testing.T) {
	r := buildTestReport()
	r.Comparison.NetETFValue = 0
	assert.Zero(t, AnalyzeComparison(r).AdvantagePct)
}
