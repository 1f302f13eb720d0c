package domain

import "math"

// TaxBracket is one band of the progressive income tax table.
// Rate is the nominal rate in percent; Max is +Inf for the top band.
type TaxBracket struct {
	Min         float64 `json:"min" yaml:"min"`
	Max         float64 `json:"max" yaml:"max"`
	Rate        float64 `json:"rate" yaml:"rate"`
	Description string  `json:"description" yaml:"description"`
}

// Contains reports whether income falls into the band.
func (b TaxBracket) Contains(income float64) bool {
	return income >= b.Min && income <= b.Max
}

// IsTopBracket reports whether the band is open-ended.
func (b TaxBracket) IsTopBracket() bool {
	return math.IsInf(b.Max, 1)
}

// TaxResult is the income tax breakdown for one gross annual income.
type TaxResult struct {
	GrossIncome     float64 `json:"gross_income"`
	TaxableIncome   float64 `json:"taxable_income"`
	IncomeTax       float64 `json:"income_tax"`
	SolidarityTax   float64 `json:"solidarity_tax"`
	ChurchTax       float64 `json:"church_tax"`
	TotalTax        float64 `json:"total_tax"`
	MarginalTaxRate float64 `json:"marginal_tax_rate"`
	AverageTaxRate  float64 `json:"average_tax_rate"`
	NetIncome       float64 `json:"net_income"`
	TotalDeductions float64 `json:"total_deductions"`
}

// RealEstateTaxBenefit is the tax saved by offsetting a rental loss against income.
type RealEstateTaxBenefit struct {
	AnnualRealEstateLoss       float64 `json:"annual_real_estate_loss"`
	TaxSavingsFromLoss         float64 `json:"tax_savings_from_loss"`
	EffectiveAfterTaxLoss      float64 `json:"effective_after_tax_loss"`
	MonthlyTaxBenefit          float64 `json:"monthly_tax_benefit"`
	AnnualTaxBenefit           float64 `json:"annual_tax_benefit"`
	NetCashflowAfterTaxBenefit float64 `json:"net_cashflow_after_tax_benefit"`
	NormalTax                  float64 `json:"normal_tax"`
	TaxWithRealEstateLoss      float64 `json:"tax_with_real_estate_loss"`
}
