package output

import (
	"math"

	"github.com/immocalc/immo-vs-etf/internal/domain"
)

// Verdict states which investment ends ahead and by how much.
type Verdict struct {
	Winner        string
	Advantage     float64 // absolute difference in net value
	AdvantagePct  float64 // relative to the net ETF value
	PropertyWins  bool
	BreakEvenYear int
}

// AnalyzeComparison derives the headline verdict from a report.
func AnalyzeComparison(r *domain.Report) Verdict {
	c := r.Comparison
	v := Verdict{
		Winner:        "ETF",
		Advantage:     math.Abs(c.AdvantageProperty),
		PropertyWins:  c.PropertyWins(),
		BreakEvenYear: r.CashflowStats.BreakEvenYear,
	}
	if v.PropertyWins {
		v.Winner = "Immobilie"
	}
	if c.NetETFValue != 0 {
		v.AdvantagePct = math.Abs(c.AdvantageProperty / c.NetETFValue * 100)
	}
	return v
}
