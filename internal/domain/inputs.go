package domain

import "fmt"

// InputParameters is the flat parameter set every calculation is derived from.
// Percentages are expressed as whole numbers (3.5 means 3.5%).
type InputParameters struct {
	// Property
	PurchasePrice      float64 `yaml:"kaufpreis" json:"kaufpreis"`
	LivingArea         float64 `yaml:"wohnflaeche_qm" json:"wohnflaeche_qm"`
	RentPerSqmMonth    float64 `yaml:"miete_pro_qm_monat" json:"miete_pro_qm_monat"`
	BuildingSharePct   float64 `yaml:"anteil_gebaeude_pct" json:"anteil_gebaeude_pct"`
	ConstructionYear   int     `yaml:"baujahr" json:"baujahr"`
	TransferTaxPct     float64 `yaml:"grunderwerbsteuer_pct" json:"grunderwerbsteuer_pct"`
	NotaryPct          float64 `yaml:"notar_grundbuch_pct" json:"notar_grundbuch_pct"`
	AgentPct           float64 `yaml:"makler_pct" json:"makler_pct"`
	ReservesPerSqmYear float64 `yaml:"ruecklagen_eur_pro_qm_jahr" json:"ruecklagen_eur_pro_qm_jahr"`
	OperatingCostPct   float64 `yaml:"betriebskosten_pct_von_miete" json:"betriebskosten_pct_von_miete"`
	VacancyPct         float64 `yaml:"vacancy_pct" json:"vacancy_pct"`

	// Financing
	Equity          float64 `yaml:"eigenkapital" json:"eigenkapital"`
	InterestPct     float64 `yaml:"zins_pct" json:"zins_pct"`
	AmortizationPct float64 `yaml:"tilgung_pct" json:"tilgung_pct"`
	FixedRateYears  int     `yaml:"zinsbindung_jahre" json:"zinsbindung_jahre"` // informational only

	// Taxes
	GrossAnnualIncome float64 `yaml:"jahreseinkommen_brutto" json:"jahreseinkommen_brutto"`
	ChurchTax         bool    `yaml:"kirchensteuer" json:"kirchensteuer"`
	ManualTaxRatePct  float64 `yaml:"steuersatz_pct" json:"steuersatz_pct"`
	UseDynamicTax     bool    `yaml:"use_dynamic_tax" json:"use_dynamic_tax"`

	// Market
	AppreciationPct float64 `yaml:"wertsteigerung_pct" json:"wertsteigerung_pct"`
	RentGrowthPct   float64 `yaml:"mietsteigerung_pct" json:"mietsteigerung_pct"`
	HoldingYears    int     `yaml:"haltejahre" json:"haltejahre"`
	SellingCostPct  float64 `yaml:"verkaufskosten_pct" json:"verkaufskosten_pct"`
	ETFReturnPct    float64 `yaml:"etf_rendite_pct" json:"etf_rendite_pct"`
}

// DefaultInputs returns the documented default parameter set.
func DefaultInputs() InputParameters {
	return InputParameters{
		PurchasePrice:      360000,
		LivingArea:         80,
		RentPerSqmMonth:    10,
		BuildingSharePct:   78,
		ConstructionYear:   1990,
		TransferTaxPct:     5,
		NotaryPct:          1.45,
		AgentPct:           3.57,
		ReservesPerSqmYear: 14,
		OperatingCostPct:   20,
		VacancyPct:         5,

		Equity:          72000,
		InterestPct:     3.5,
		AmortizationPct: 2,
		FixedRateYears:  10,

		GrossAnnualIncome: 80000,
		ChurchTax:         false,
		ManualTaxRatePct:  42,
		UseDynamicTax:     true,

		AppreciationPct: 2,
		RentGrowthPct:   1.5,
		HoldingYears:    20,
		SellingCostPct:  5,
		ETFReturnPct:    6,
	}
}

// AnnualRent is the unescalated yearly rent (area * rent per sqm * 12).
func (p InputParameters) AnnualRent() float64 {
	return p.RentPerSqmMonth * p.LivingArea * 12
}

// LoanAmount is the financed amount, clamped at zero when equity exceeds the price.
func (p InputParameters) LoanAmount() float64 {
	if p.PurchasePrice-p.Equity < 0 {
		return 0
	}
	return p.PurchasePrice - p.Equity
}

// AcquisitionCostPct sums transfer tax, notary and agent percentages.
func (p InputParameters) AcquisitionCostPct() float64 {
	return p.TransferTaxPct + p.NotaryPct + p.AgentPct
}

// String gives a short identifier for log lines.
func (p InputParameters) String() string {
	return fmt.Sprintf("price=%.0f equity=%.0f rent=%.2f/sqm years=%d etf=%.2f%%",
		p.PurchasePrice, p.Equity, p.RentPerSqmMonth, p.HoldingYears, p.ETFReturnPct)
}

// GenerateAssumptions lists the modelling assumptions derived from the actual parameter values
func (p InputParameters) GenerateAssumptions() []string {
	taxNote := fmt.Sprintf("Rental profit/loss taxed at a flat %.1f%% (manual rate)", p.ManualTaxRatePct)
	if p.UseDynamicTax && p.GrossAnnualIncome > 0 {
		taxNote = fmt.Sprintf("Rental profit/loss taxed at the marginal rate for %.0f EUR gross income (incl. surcharges)", p.GrossAnnualIncome)
	}
	return []string{
		fmt.Sprintf("Property appreciation: %.1f%% annually from year 2", p.AppreciationPct),
		fmt.Sprintf("Rent growth: %.1f%% annually from year 2", p.RentGrowthPct),
		fmt.Sprintf("Loan principal: fixed %.1f%% of the initial loan per year (straight-line)", p.AmortizationPct),
		fmt.Sprintf("Loan interest: %.2f%% on the remaining balance for the whole holding period", p.InterestPct),
		taxNote,
		fmt.Sprintf("ETF return: %.1f%% annually, accumulating fund, 30%% partial exemption", p.ETFReturnPct),
		"ETF contribution: annual loan payment, operating costs and reserves invested monthly",
		"Vorabpauschale: 2.6% base rate, 1,000 EUR allowance spread across the holding period",
		"Income tax: 2024 bands held constant (no inflation indexing)",
	}
}
