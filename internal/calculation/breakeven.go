package calculation

import (
	"math"

	"github.com/immocalc/immo-vs-etf/internal/domain"
	"github.com/immocalc/immo-vs-etf/pkg/money"
)

// Search bracket for the break-even ETF return, in percent.
const (
	breakEvenMinReturn     = -50.0
	breakEvenMaxReturn     = 30.0
	breakEvenTolerance     = 1.0 // euros of advantage
	breakEvenMaxIterations = 60
)

// BreakEvenETFReturn finds the ETF return at which the property and the ETF
// alternative end with the same net value. The advantage of the property falls
// as the ETF return rises, so the crossing is found by bisection.
// A nil p uses the current inputs.
func (ce *CalculationEngine) BreakEvenETFReturn(p *domain.InputParameters) domain.BreakEvenResult {
	in := ce.resolve(p)

	advantageAt := func(ret float64) domain.ComparisonResult {
		test := in
		test.ETFReturnPct = ret
		return ce.ImmoVsEtf(&test)
	}

	minRate, maxRate := breakEvenMinReturn, breakEvenMaxReturn
	low := advantageAt(minRate)
	high := advantageAt(maxRate)
	if low.AdvantageProperty < 0 || high.AdvantageProperty > 0 {
		ce.Logger.Warnf("break-even: no crossing between %.0f%% and %.0f%% (advantage %.2f .. %.2f)",
			minRate, maxRate, low.AdvantageProperty, high.AdvantageProperty)
		return domain.BreakEvenResult{
			ETFReturnPct: in.ETFReturnPct,
			Found:        false,
			Comparison:   advantageAt(in.ETFReturnPct),
		}
	}

	var testRate float64
	var result domain.ComparisonResult
	iterations := 0
	for iterations < breakEvenMaxIterations {
		iterations++
		testRate = (minRate + maxRate) / 2
		result = advantageAt(testRate)

		if ce.Debug {
			ce.Logger.Debugf("break-even iteration %d: etf_return=%.6f%% advantage=%.2f", iterations, testRate, result.AdvantageProperty)
		}

		if math.Abs(result.AdvantageProperty) <= breakEvenTolerance {
			break
		}
		if result.AdvantageProperty > 0 {
			// Property still ahead, ETF needs a higher return
			minRate = testRate
		} else {
			maxRate = testRate
		}
	}

	return domain.BreakEvenResult{
		ETFReturnPct: money.RoundTo(testRate, 4),
		Found:        true,
		Iterations:   iterations,
		Comparison:   result,
	}
}
