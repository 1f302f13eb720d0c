package calculation

import (
	"math"

	"github.com/immocalc/immo-vs-etf/internal/domain"
)

// ETF TAX ASSUMPTIONS:
//
// 1. Returns compound monthly at the rate equivalent to the expected annual return.
// 2. Capital gains are taxed at the 25% flat rate plus 5.5% solidarity surcharge and,
//    optionally, 8% church tax, each computed on the flat tax.
// 3. Accumulating funds pay Vorabpauschale every year: 70% of the 2.6% base rate on the
//    fund value at the start of the year. The tax paid is credited against the final tax.
// 4. The 1,000 saver's allowance is spread over the years for the Vorabpauschale and
//    applied again in full at final settlement.

// ETFTaxCalculator projects monthly savings plans and German capital gains taxes.
type ETFTaxCalculator struct {
	Year                int
	CapitalGainsTaxRate float64 // percent
	SolidarityTaxRate   float64 // percent of capital gains tax
	ChurchTaxRate       float64 // percent of capital gains tax
	BasicAllowance      float64 // Sparer-Pauschbetrag
	BaseInterestRate    float64 // Basiszins, percent
	LumpSumFactor       float64 // share of the base return taxed as Vorabpauschale
}

// NewETFTaxCalculator2024 creates an ETF tax calculator with 2024 parameters.
func NewETFTaxCalculator2024() *ETFTaxCalculator {
	return &ETFTaxCalculator{
		Year:                2024,
		CapitalGainsTaxRate: 25,
		SolidarityTaxRate:   5.5,
		ChurchTaxRate:       8,
		BasicAllowance:      1000,
		BaseInterestRate:    2.6,
		LumpSumFactor:       0.7,
	}
}

// monthlyRate converts an annual return in percent to the equivalent monthly rate.
// Returns below -100% are treated as a total loss.
func monthlyRate(annualReturnPct float64) float64 {
	base := math.Max(0, 1+annualReturnPct/100)
	return math.Pow(base, 1.0/12) - 1
}

// annuityValue is the value of months monthly contributions at the given monthly rate.
func annuityValue(monthly, rate float64, months int) float64 {
	if months <= 0 {
		return 0
	}
	if rate == 0 {
		return monthly * float64(months)
	}
	return monthly * (math.Pow(1+rate, float64(months)) - 1) / rate
}

// CalculateETFTaxes projects the savings plan and computes all taxes due.
func (ec *ETFTaxCalculator) CalculateETFTaxes(params domain.ETFParameters) domain.ETFTaxCalculation {
	years := params.InvestmentPeriodYears
	months := years * 12
	rate := monthlyRate(params.ExpectedAnnualReturn)

	totalInvestment := params.MonthlyInvestment * float64(months)
	totalGrossReturn := annuityValue(params.MonthlyInvestment, rate, months)
	totalCapitalGains := totalGrossReturn - totalInvestment

	lumpSums, details, totalLumpSum, advanceTaxCredit := ec.advanceLumpSums(params, rate)

	partialExemptionAmount := totalCapitalGains * params.PartialExemptionRate / 100
	taxableCapitalGains := math.Max(0, totalCapitalGains-partialExemptionAmount-ec.BasicAllowance)

	capitalGainsTax, solidarityTax, churchTax := ec.flatTax(taxableCapitalGains, params.HasChurchTax)
	grossFinalTax := capitalGainsTax + solidarityTax + churchTax
	finalTaxDue := math.Max(0, grossFinalTax-advanceTaxCredit)
	totalTaxes := advanceTaxCredit + finalTaxDue

	netReturn := totalGrossReturn - totalTaxes

	return domain.ETFTaxCalculation{
		TotalInvestment:        totalInvestment,
		TotalGrossReturn:       totalGrossReturn,
		TotalCapitalGains:      totalCapitalGains,
		AnnualAdvanceLumpSums:  lumpSums,
		TotalAdvanceLumpSum:    totalLumpSum,
		TaxableCapitalGains:    taxableCapitalGains,
		CapitalGainsTax:        capitalGainsTax,
		SolidarityTax:          solidarityTax,
		ChurchTax:              churchTax,
		TotalTaxes:             totalTaxes,
		NetReturn:              netReturn,
		EffectiveReturnRate:    effectiveReturnRate(totalInvestment, netReturn, years),
		PartialExemptionRate:   params.PartialExemptionRate,
		PartialExemptionAmount: partialExemptionAmount,
		YearlyAdvanceLumpSums:  details,
		FinalTax: domain.FinalTaxCalculation{
			TotalGains:       totalCapitalGains,
			ExemptAmount:     partialExemptionAmount + ec.BasicAllowance,
			TaxableAmount:    taxableCapitalGains,
			GrossTax:         grossFinalTax,
			AdvanceTaxCredit: advanceTaxCredit,
			FinalTaxDue:      finalTaxDue,
		},
	}
}

// advanceLumpSums computes the yearly Vorabpauschale of an accumulating fund.
// Distributing funds return empty schedules.
func (ec *ETFTaxCalculator) advanceLumpSums(params domain.ETFParameters, rate float64) ([]float64, []domain.AdvanceLumpSumYear, float64, float64) {
	lumpSums := []float64{}
	details := []domain.AdvanceLumpSumYear{}
	if params.Type != domain.ETFAccumulating || params.InvestmentPeriodYears <= 0 {
		return lumpSums, details, 0, 0
	}

	surcharge := (1 + ec.SolidarityTaxRate/100) * (1 + churchFactor(params.HasChurchTax, ec.ChurchTaxRate))
	allowancePerYear := ec.BasicAllowance / float64(params.InvestmentPeriodYears)

	var totalLumpSum, totalTaxPaid float64
	for year := 1; year <= params.InvestmentPeriodYears; year++ {
		startValue := annuityValue(params.MonthlyInvestment, rate, (year-1)*12)
		endValue := annuityValue(params.MonthlyInvestment, rate, year*12)

		lumpSum := math.Max(0, startValue*ec.BaseInterestRate/100*ec.LumpSumFactor)
		taxable := lumpSum * (1 - params.PartialExemptionRate/100)
		tax := math.Max(0, taxable-allowancePerYear) * ec.CapitalGainsTaxRate / 100 * surcharge

		totalLumpSum += lumpSum
		totalTaxPaid += tax
		lumpSums = append(lumpSums, lumpSum)
		details = append(details, domain.AdvanceLumpSumYear{
			Year:               year,
			YearStartValue:     startValue,
			YearEndValue:       endValue,
			LumpSum:            lumpSum,
			TaxOnLumpSum:       tax,
			RemainingTaxCredit: totalTaxPaid,
		})
	}
	return lumpSums, details, totalLumpSum, totalTaxPaid
}

func churchFactor(hasChurchTax bool, ratePct float64) float64 {
	if !hasChurchTax {
		return 0
	}
	return ratePct / 100
}

// flatTax returns capital gains tax, solidarity surcharge and church tax on a taxable amount.
func (ec *ETFTaxCalculator) flatTax(taxable float64, hasChurchTax bool) (float64, float64, float64) {
	capitalGainsTax := taxable * ec.CapitalGainsTaxRate / 100
	solidarityTax := capitalGainsTax * ec.SolidarityTaxRate / 100
	churchTax := capitalGainsTax * churchFactor(hasChurchTax, ec.ChurchTaxRate)
	return capitalGainsTax, solidarityTax, churchTax
}

// effectiveReturnRate is the annualized after-tax return in percent.
func effectiveReturnRate(investment, netReturn float64, years int) float64 {
	if investment <= 0 || years <= 0 {
		return 0
	}
	ratio := netReturn / investment
	if ratio <= 0 {
		return -100
	}
	return (math.Pow(ratio, 1/float64(years)) - 1) * 100
}

// CalculateSimplifiedETFTax taxes a single lump-sum investment at disposal.
// There is no Vorabpauschale component.
func (ec *ETFTaxCalculator) CalculateSimplifiedETFTax(totalInvestment, finalValue, partialExemptionRate float64, hasChurchTax bool) float64 {
	gains := finalValue - totalInvestment
	exempt := gains*partialExemptionRate/100 + ec.BasicAllowance
	taxable := math.Max(0, gains-exempt)

	capitalGainsTax, solidarityTax, churchTax := ec.flatTax(taxable, hasChurchTax)
	return capitalGainsTax + solidarityTax + churchTax
}

// PartialExemptionRates returns the Teilfreistellung reference table.
func (ec *ETFTaxCalculator) PartialExemptionRates() []domain.PartialExemption {
	return []domain.PartialExemption{
		{FundType: "Aktienfonds (≥51% Aktien)", Rate: 30},
		{FundType: "Mischfonds (≥25% Aktien)", Rate: 15},
		{FundType: "Immobilienfonds", Rate: 60},
		{FundType: "Andere Fonds", Rate: 0},
	}
}

// RecommendedETFType returns the fund type that is usually cheaper to hold long term.
func (ec *ETFTaxCalculator) RecommendedETFType() domain.ETFType {
	return domain.ETFAccumulating
}

// TaxRateOnGains is the share of capital gains paid as tax, in percent.
func (ec *ETFTaxCalculator) TaxRateOnGains(calc domain.ETFTaxCalculation) float64 {
	if calc.TotalCapitalGains == 0 {
		return 0
	}
	return calc.TotalTaxes / calc.TotalCapitalGains * 100
}
