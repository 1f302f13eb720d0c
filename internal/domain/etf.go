package domain

// ETFType distinguishes accumulating from distributing funds.
type ETFType string

const (
	ETFAccumulating ETFType = "accumulating"
	ETFDistributing ETFType = "distributing"
)

// Valid reports whether the type is one of the known fund types.
func (t ETFType) Valid() bool {
	return t == ETFAccumulating || t == ETFDistributing
}

// ETFParameters describes a monthly savings plan.
type ETFParameters struct {
	MonthlyInvestment     float64 `json:"monthly_investment" yaml:"monthly_investment"`
	InvestmentPeriodYears int     `json:"investment_period_years" yaml:"investment_period_years"`
	ExpectedAnnualReturn  float64 `json:"expected_annual_return" yaml:"expected_annual_return"` // percent
	Type                  ETFType `json:"etf_type" yaml:"etf_type"`
	PartialExemptionRate  float64 `json:"partial_exemption_rate" yaml:"partial_exemption_rate"` // percent
	HasChurchTax          bool    `json:"has_church_tax" yaml:"has_church_tax"`
}

// AdvanceLumpSumYear is one year of Vorabpauschale taxation.
type AdvanceLumpSumYear struct {
	Year               int     `json:"year"`
	YearStartValue     float64 `json:"year_start_value"`
	YearEndValue       float64 `json:"year_end_value"`
	LumpSum            float64 `json:"lump_sum"`
	TaxOnLumpSum       float64 `json:"tax_on_lump_sum"`
	RemainingTaxCredit float64 `json:"remaining_tax_credit"`
}

// FinalTaxCalculation is the settlement at disposal.
type FinalTaxCalculation struct {
	TotalGains       float64 `json:"total_gains"`
	ExemptAmount     float64 `json:"exempt_amount"`
	TaxableAmount    float64 `json:"taxable_amount"`
	GrossTax         float64 `json:"gross_tax"`
	AdvanceTaxCredit float64 `json:"advance_tax_credit"`
	FinalTaxDue      float64 `json:"final_tax_due"`
}

// ETFTaxCalculation is the full outcome of a monthly savings plan after German taxes.
type ETFTaxCalculation struct {
	TotalInvestment   float64 `json:"total_investment"`
	TotalGrossReturn  float64 `json:"total_gross_return"`
	TotalCapitalGains float64 `json:"total_capital_gains"`

	AnnualAdvanceLumpSums []float64 `json:"annual_advance_lump_sums"`
	TotalAdvanceLumpSum   float64   `json:"total_advance_lump_sum"`

	TaxableCapitalGains float64 `json:"taxable_capital_gains"`
	CapitalGainsTax     float64 `json:"capital_gains_tax"`
	SolidarityTax       float64 `json:"solidarity_tax"`
	ChurchTax           float64 `json:"church_tax"`
	TotalTaxes          float64 `json:"total_taxes"`

	NetReturn           float64 `json:"net_return"`
	EffectiveReturnRate float64 `json:"effective_return_rate"`

	PartialExemptionRate   float64 `json:"partial_exemption_rate"`
	PartialExemptionAmount float64 `json:"partial_exemption_amount"`

	YearlyAdvanceLumpSums []AdvanceLumpSumYear `json:"yearly_advance_lump_sums"`
	FinalTax              FinalTaxCalculation  `json:"final_tax_calculation"`
}

// PartialExemption is one row of the Teilfreistellung reference table.
type PartialExemption struct {
	FundType string  `json:"fund_type"`
	Rate     float64 `json:"rate"`
}
