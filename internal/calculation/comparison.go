package calculation

import (
	"math"

	"github.com/immocalc/immo-vs-etf/internal/domain"
	"github.com/immocalc/immo-vs-etf/pkg/money"
)

// equityFundExemption is the partial exemption of equity ETFs, in percent.
const equityFundExemption = 30

// ImmoVsEtf compares selling the property at the end of the holding period with
// investing the equity and the property's carrying costs in an equity ETF.
// A nil p uses the current inputs.
func (ce *CalculationEngine) ImmoVsEtf(p *domain.InputParameters) domain.ComparisonResult {
	in := ce.resolve(p)

	// Without projection years the sale happens at purchase price and full debt.
	saleValue, debt := in.PurchasePrice, in.LoanAmount()
	if projection := ce.Projection(&in); len(projection) > 0 {
		last := projection[len(projection)-1]
		saleValue, debt = last.PropertyValue, last.RemainingDebt
	}
	netSaleProceeds := saleValue - saleValue*in.SellingCostPct/100 - debt

	annual := ce.CalcAnnual(&in)
	annualCosts := annual.ValueOrZero(domain.RowLoanPayment) +
		annual.ValueOrZero(domain.RowOperatingCosts) +
		annual.ValueOrZero(domain.RowReserves)
	monthly := annualCosts / 12

	etf := ce.ETFCalc.CalculateETFTaxes(domain.ETFParameters{
		MonthlyInvestment:     monthly,
		InvestmentPeriodYears: in.HoldingYears,
		ExpectedAnnualReturn:  in.ETFReturnPct,
		Type:                  domain.ETFAccumulating,
		PartialExemptionRate:  equityFundExemption,
		HasChurchTax:          in.ChurchTax,
	})

	equityReturn := in.Equity * math.Pow(1+in.ETFReturnPct/100, float64(in.HoldingYears))
	equityTax := ce.ETFCalc.CalculateSimplifiedETFTax(in.Equity, equityReturn, equityFundExemption, in.ChurchTax)
	fvEquity := equityReturn - equityTax

	totalETFValue := etf.TotalGrossReturn + equityReturn
	totalETFTaxes := etf.TotalTaxes + equityTax
	netETFValue := etf.NetReturn + fvEquity

	if ce.Debug {
		ce.Logger.Debugf("comparison: monthly=%.2f etf_net=%.2f equity_net=%.2f sale=%.2f",
			monthly, etf.NetReturn, fvEquity, netSaleProceeds)
	}

	return domain.ComparisonResult{
		NetSaleProceeds:     money.Round(netSaleProceeds),
		MonthlyContribution: money.Round(monthly),
		FVMonthlyContrib:    money.Round(etf.NetReturn),
		FVEquity:            money.Round(fvEquity),
		TotalETFValue:       money.Round(totalETFValue),
		TotalETFTaxes:       money.Round(totalETFTaxes),
		NetETFValue:         money.Round(netETFValue),
		AdvantageProperty:   money.Round(netSaleProceeds - netETFValue),
		ETFTaxDetails:       &etf,
	}
}

// EquityProgression tracks property equity against a simplified ETF path year by year.
// The ETF starts with the equity and each year adds twelve contributions equal to
// the year-1 after-tax cashflow, half-year weighted.
func (ce *CalculationEngine) EquityProgression(p *domain.InputParameters) []domain.EquityPoint {
	in := ce.resolve(p)
	projection := ce.Projection(&in)

	monthly := math.Abs(ce.CalcAnnual(&in).ValueOrZero(domain.RowCashflowAfterTax)) / 12
	r := in.ETFReturnPct / 100

	points := make([]domain.EquityPoint, 0, len(projection))
	value := in.Equity
	for _, row := range projection {
		value = value*(1+r) + monthly*12*(1+r/2)
		points = append(points, domain.EquityPoint{
			Year:           row.Year,
			PropertyValue:  row.PropertyValue,
			RemainingDebt:  row.RemainingDebt,
			PropertyEquity: money.Round(row.Equity()),
			ETFValue:       math.Round(value),
		})
	}
	return points
}
