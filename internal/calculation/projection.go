package calculation

import (
	"math"

	"github.com/immocalc/immo-vs-etf/internal/domain"
	"github.com/immocalc/immo-vs-etf/pkg/money"
)

// Projection generates one row per holding year.
//
// Principal is a fixed share of the initial loan, capped by the remaining balance
// in the payoff year. Rent and property value escalate from year 2 onward.
// A nil p uses the current inputs.
func (ce *CalculationEngine) Projection(p *domain.InputParameters) []domain.ProjectionRow {
	in := ce.resolve(p)
	if in.HoldingYears <= 0 {
		return []domain.ProjectionRow{}
	}

	afaRate := ce.AfACalc.CalculateAfARate(in.ConstructionYear).Rate
	taxRate := ce.effectiveTaxRate(in)

	remaining := in.LoanAmount()
	propertyValue := in.PurchasePrice
	rent := in.AnnualRent()
	annualPrincipal := math.Max(0, (in.PurchasePrice-in.Equity)*in.AmortizationPct/100)

	rows := make([]domain.ProjectionRow, 0, in.HoldingYears)
	for year := 1; year <= in.HoldingYears; year++ {
		interest := remaining * in.InterestPct / 100
		principal := math.Min(annualPrincipal, remaining)
		remaining = math.Max(0, remaining-principal)

		if year > 1 {
			rent *= 1 + in.RentGrowthPct/100
			propertyValue *= 1 + in.AppreciationPct/100
		}

		f := computeYear(in, rent, propertyValue, interest, principal, afaRate, taxRate)

		if ce.Debug {
			ce.Logger.Debugf("year %d: rent=%.2f value=%.2f debt=%.2f interest=%.2f principal=%.2f tax=%.2f cashflow=%.2f",
				year, rent, propertyValue, remaining, interest, principal, f.Tax, f.Cashflow)
		}

		rows = append(rows, domain.ProjectionRow{
			Year:             year,
			Rent:             money.Round(rent),
			PropertyValue:    money.Round(propertyValue),
			RemainingDebt:    money.Round(remaining),
			InterestPaid:     money.Round(interest),
			PrincipalPaid:    money.Round(principal),
			CashflowAfterTax: money.Round(f.Cashflow),
		})
	}
	return rows
}
