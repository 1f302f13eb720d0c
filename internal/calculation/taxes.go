package calculation

import (
	"math"

	"github.com/immocalc/immo-vs-etf/internal/domain"
	"github.com/immocalc/immo-vs-etf/pkg/money"
)

// TAX CALCULATION ASSUMPTIONS:
//
// 1. Income tax uses a simplified 2024 table of five bands. The two progression
//    zones are summed at a flat midpoint rate (19% and 33%) while the marginal
//    rate is interpolated linearly across each zone.
// 2. The 0% basic-allowance band is skipped without consuming income, so the
//    first taxed euro falls into the 19% zone once taxable income exceeds 11,604.
// 3. Solidarity surcharge (5.5%) only once income tax exceeds 972.
// 4. Church tax is a flat 8% of income tax (Bavaria/Baden-Wuerttemberg level).
// 5. Only the 1,000 employee lump sum is deducted from gross income.

// progressionZone describes a band whose marginal rate rises linearly.
type progressionZone struct {
	StartRate float64
	EndRate   float64
	FlatRate  float64
}

// TaxCalculator handles German income tax calculations.
type TaxCalculator struct {
	Year                int
	StandardDeduction   float64
	SolidarityRate      float64 // fraction of income tax
	SolidarityThreshold float64
	ChurchTaxRate       float64 // fraction of income tax
	Brackets            []domain.TaxBracket
	zones               map[float64]progressionZone // keyed by bracket Min
}

// NewTaxCalculator2024 creates a tax calculator with the 2024 bands.
func NewTaxCalculator2024() *TaxCalculator {
	return &TaxCalculator{
		Year:                2024,
		StandardDeduction:   1000, // Werbungskostenpauschale
		SolidarityRate:      0.055,
		SolidarityThreshold: 972,
		ChurchTaxRate:       0.08,
		Brackets: []domain.TaxBracket{
			{Min: 0, Max: 11604, Rate: 0, Description: "Grundfreibetrag"},
			{Min: 11605, Max: 17005, Rate: 14, Description: "Eingangssteuersatz (progressiv 14-24%)"},
			{Min: 17006, Max: 66760, Rate: 24, Description: "Erste Progressionszone (progressiv 24-42%)"},
			{Min: 66761, Max: 277825, Rate: 42, Description: "Proportionalzone"},
			{Min: 277826, Max: math.Inf(1), Rate: 45, Description: "Spitzensteuersatz"},
		},
		zones: map[float64]progressionZone{
			11605: {StartRate: 14, EndRate: 24, FlatRate: 19},
			17006: {StartRate: 24, EndRate: 42, FlatRate: 33},
		},
	}
}

// CalculateIncomeTax calculates income tax, surcharges and rates for a gross annual income.
func (tc *TaxCalculator) CalculateIncomeTax(grossAnnualIncome float64, hasChurchTax bool) domain.TaxResult {
	taxableIncome := math.Max(0, grossAnnualIncome-tc.StandardDeduction)
	incomeTax := tc.progressiveTax(taxableIncome)

	var solidarityTax float64
	if incomeTax > tc.SolidarityThreshold {
		solidarityTax = incomeTax * tc.SolidarityRate
	}
	var churchTax float64
	if hasChurchTax {
		churchTax = incomeTax * tc.ChurchTaxRate
	}
	totalTax := incomeTax + solidarityTax + churchTax

	var averageTaxRate float64
	if taxableIncome > 0 {
		averageTaxRate = totalTax / taxableIncome * 100
	}

	return domain.TaxResult{
		GrossIncome:     grossAnnualIncome,
		TaxableIncome:   taxableIncome,
		IncomeTax:       incomeTax,
		SolidarityTax:   solidarityTax,
		ChurchTax:       churchTax,
		TotalTax:        totalTax,
		MarginalTaxRate: tc.MarginalTaxRate(taxableIncome),
		AverageTaxRate:  averageTaxRate,
		NetIncome:       grossAnnualIncome - totalTax,
		TotalDeductions: tc.StandardDeduction,
	}
}

// progressiveTax sums band amounts at their flat rates and rounds to whole euros.
func (tc *TaxCalculator) progressiveTax(taxableIncome float64) float64 {
	if len(tc.Brackets) == 0 || taxableIncome <= tc.Brackets[0].Max {
		return 0
	}

	var tax float64
	remaining := taxableIncome
	for _, bracket := range tc.Brackets {
		if remaining <= 0 {
			break
		}
		if bracket.Rate == 0 {
			continue
		}
		size := bracket.Max - bracket.Min + 1
		inBracket := math.Min(remaining, size)
		tax += inBracket * tc.flatRate(bracket) / 100
		remaining -= inBracket
	}
	return math.Round(tax)
}

func (tc *TaxCalculator) flatRate(bracket domain.TaxBracket) float64 {
	if zone, ok := tc.zones[bracket.Min]; ok {
		return zone.FlatRate
	}
	return bracket.Rate
}

// bracketIndex finds the band for an income. Bands are treated as contiguous,
// so fractional incomes between two integer bounds fall into the upper band.
func (tc *TaxCalculator) bracketIndex(income float64) int {
	if len(tc.Brackets) == 0 || income < tc.Brackets[0].Min {
		return -1
	}
	for i, bracket := range tc.Brackets {
		if income <= bracket.Max {
			return i
		}
	}
	return len(tc.Brackets) - 1
}

// MarginalTaxRate returns the marginal rate in percent for a taxable income.
// Inside a progression zone the rate is interpolated by position in the band.
func (tc *TaxCalculator) MarginalTaxRate(taxableIncome float64) float64 {
	i := tc.bracketIndex(taxableIncome)
	if i < 0 {
		return 0
	}
	bracket := tc.Brackets[i]
	zone, ok := tc.zones[bracket.Min]
	if !ok {
		return bracket.Rate
	}
	factor := (taxableIncome - bracket.Min) / (bracket.Max - bracket.Min)
	factor = math.Max(0, math.Min(1, factor))
	return zone.StartRate + factor*(zone.EndRate-zone.StartRate)
}

// TaxBracketInfo returns the band descriptor an income falls into.
func (tc *TaxCalculator) TaxBracketInfo(income float64) (domain.TaxBracket, bool) {
	i := tc.bracketIndex(income)
	if i < 0 {
		return domain.TaxBracket{}, false
	}
	return tc.Brackets[i], true
}

// TaxBrackets returns a copy of the band table.
func (tc *TaxCalculator) TaxBrackets() []domain.TaxBracket {
	return append([]domain.TaxBracket(nil), tc.Brackets...)
}

// EffectiveTaxRateForRealEstate is the rate applied to rental profit or loss.
// Surcharges are added as a share of the marginal rate itself, not of the tax
// liability; the result is rounded to two decimals.
func (tc *TaxCalculator) EffectiveTaxRateForRealEstate(grossAnnualIncome float64, hasChurchTax bool) float64 {
	result := tc.CalculateIncomeTax(grossAnnualIncome, hasChurchTax)

	rate := result.MarginalTaxRate
	if result.SolidarityTax > 0 {
		rate += result.MarginalTaxRate * tc.SolidarityRate
	}
	if hasChurchTax {
		rate += result.MarginalTaxRate * tc.ChurchTaxRate
	}
	return money.Round(rate)
}

// MarginalTaxBenefitRate is the tax saved per euro of rental loss, in percent.
func (tc *TaxCalculator) MarginalTaxBenefitRate(grossAnnualIncome float64, hasChurchTax bool) float64 {
	return tc.EffectiveTaxRateForRealEstate(grossAnnualIncome, hasChurchTax)
}

// CalculateRealEstateTaxBenefit compares the tax with and without offsetting a
// rental loss against gross income. The sign of annualLoss is ignored.
func (tc *TaxCalculator) CalculateRealEstateTaxBenefit(grossAnnualIncome, annualLoss float64, hasChurchTax bool) domain.RealEstateTaxBenefit {
	loss := math.Abs(annualLoss)

	normal := tc.CalculateIncomeTax(grossAnnualIncome, hasChurchTax)
	adjusted := tc.CalculateIncomeTax(math.Max(0, grossAnnualIncome-loss), hasChurchTax)

	savings := normal.TotalTax - adjusted.TotalTax
	effectiveLoss := loss - savings

	return domain.RealEstateTaxBenefit{
		AnnualRealEstateLoss:       loss,
		TaxSavingsFromLoss:         savings,
		EffectiveAfterTaxLoss:      effectiveLoss,
		MonthlyTaxBenefit:          savings / 12,
		AnnualTaxBenefit:           savings,
		NetCashflowAfterTaxBenefit: -effectiveLoss,
		NormalTax:                  normal.TotalTax,
		TaxWithRealEstateLoss:      adjusted.TotalTax,
	}
}
