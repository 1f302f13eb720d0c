package calculation

import (
	"math"
	"testing"

	"github.com/immocalc/immo-vs-etf/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestBreakEvenETFReturn_Defaults(t *testing.T) {
	engine := NewCalculationEngine()
	result := engine.BreakEvenETFReturn(nil)

	assert.True(t, result.Found)
	assert.InDelta(t, -2.626, result.ETFReturnPct, 0.01)
	assert.LessOrEqual(t, math.Abs(result.Comparison.AdvantageProperty), 1.0)
	assert.Greater(t, result.Iterations, 0)
	assert.LessOrEqual(t, result.Iterations, 60)
}

func TestBreakEvenETFReturn_BracketsTheCrossing(t *testing.T) {
	engine := NewCalculationEngine()
	result := engine.BreakEvenETFReturn(nil)

	below := engine.ImmoVsEtf(defaultsWith(func(p *domain.InputParameters) { p.ETFReturnPct = result.ETFReturnPct - 0.5 }))
	above := engine.ImmoVsEtf(defaultsWith(func(p *domain.InputParameters) { p.ETFReturnPct = result.ETFReturnPct + 0.5 }))
	assert.True(t, below.PropertyWins())
	assert.False(t, above.PropertyWins())
}

func TestBreakEvenETFReturn_NoCrossing(t *testing.T) {
	engine := NewCalculationEngine()
	logger := &recordingLogger{}
	engine.SetLogger(logger)

	// Property bought outright that keeps doubling in value beats any ETF return in range.
	p := defaultsWith(func(p *domain.InputParameters) {
		p.Equity = 360000
		p.AppreciationPct = 100
	})
	result := engine.BreakEvenETFReturn(p)

	assert.False(t, result.Found)
	assert.Equal(t, p.ETFReturnPct, result.ETFReturnPct)
	assert.Equal(t, 0, result.Iterations)
	assert.NotEmpty(t, logger.lines)
}
