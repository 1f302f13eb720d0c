package domain

// Stable identifiers of the rows in an AnnualSnapshot.
const (
	RowAnnualRent        = "annual_rent"
	RowOperatingCosts    = "operating_costs"
	RowVacancyLoss       = "vacancy_loss"
	RowReserves          = "reserves"
	RowDepreciation      = "depreciation"
	RowInterest          = "interest"
	RowPrincipal         = "principal"
	RowLoanPayment       = "loan_payment"
	RowTaxableIncome     = "taxable_income"
	RowEffectiveTaxRate  = "effective_tax_rate"
	RowIncomeTax         = "income_tax"
	RowCashflowAfterTax  = "cashflow_after_tax"
	RowTaxLossBenefit    = "tax_loss_benefit"
	RowEffectiveCashflow = "effective_cashflow_after_benefit"
	RowLoanAmount        = "loan_amount"
	RowAcquisitionCosts  = "acquisition_costs"
)

// AnnualRow is one labeled figure of the annual snapshot.
type AnnualRow struct {
	ID    string  `json:"id" yaml:"id"`
	Label string  `json:"key" yaml:"key"`
	Value float64 `json:"value" yaml:"value"`
}

// AnnualSnapshot is the ordered one-year breakdown at current parameter levels.
type AnnualSnapshot []AnnualRow

// Value returns the value of the row with the given ID.
func (s AnnualSnapshot) Value(id string) (float64, bool) {
	for _, r := range s {
		if r.ID == id {
			return r.Value, true
		}
	}
	return 0, false
}

// ValueOrZero returns the row value or zero when the row is absent.
func (s AnnualSnapshot) ValueOrZero(id string) float64 {
	v, _ := s.Value(id)
	return v
}

// Labels returns the display labels in order.
func (s AnnualSnapshot) Labels() []string {
	labels := make([]string, len(s))
	for i, r := range s {
		labels[i] = r.Label
	}
	return labels
}

// ProjectionRow is a single year of the holding-period projection.
type ProjectionRow struct {
	Year             int     `json:"year" yaml:"year"`
	Rent             float64 `json:"mieteinnahmen" yaml:"mieteinnahmen"`
	PropertyValue    float64 `json:"immobilienwert" yaml:"immobilienwert"`
	RemainingDebt    float64 `json:"restschuld" yaml:"restschuld"`
	InterestPaid     float64 `json:"zinsaufwand" yaml:"zinsaufwand"`
	PrincipalPaid    float64 `json:"tilgung" yaml:"tilgung"`
	CashflowAfterTax float64 `json:"cashflow_nach_steuern" yaml:"cashflow_nach_steuern"`
}

// Equity returns property value minus remaining debt.
func (r ProjectionRow) Equity() float64 {
	return r.PropertyValue - r.RemainingDebt
}

// ComparisonResult is the final property-versus-ETF outcome.
type ComparisonResult struct {
	NetSaleProceeds     float64 `json:"net_sale_proceeds"`
	MonthlyContribution float64 `json:"monthly_contribution"`
	FVMonthlyContrib    float64 `json:"fv_monthly_contrib"`
	FVEquity            float64 `json:"fv_eigenkapital"`
	TotalETFValue       float64 `json:"total_etf_value"`
	TotalETFTaxes       float64 `json:"total_etf_taxes"`
	NetETFValue         float64 `json:"net_etf_value"`
	AdvantageProperty   float64 `json:"advantage_immo"`

	ETFTaxDetails *ETFTaxCalculation `json:"etf_tax_details,omitempty"`
}

// PropertyWins reports whether the property outperforms the ETF alternative.
func (c ComparisonResult) PropertyWins() bool {
	return c.AdvantageProperty > 0
}

// CashflowStats summarizes the after-tax cashflows of a projection.
type CashflowStats struct {
	TotalPositive   float64 `json:"total_positive_cashflow"`
	TotalNegative   float64 `json:"total_negative_cashflow"`
	Average         float64 `json:"average_cashflow"`
	Cumulative      float64 `json:"cumulative_cashflow"`
	BreakEvenYear   int     `json:"break_even_year"` // 0 when the cumulative cashflow never turns non-negative
	NegativeYears   int     `json:"negative_years"`
	ProjectionYears int     `json:"projection_years"`
}

// HasBreakEven reports whether the cumulative cashflow reaches zero within the horizon.
func (s CashflowStats) HasBreakEven() bool {
	return s.BreakEvenYear > 0
}

// EquityPoint is one year of the wealth progression chart.
type EquityPoint struct {
	Year           int     `json:"year"`
	PropertyValue  float64 `json:"property_value"`
	RemainingDebt  float64 `json:"remaining_debt"`
	PropertyEquity float64 `json:"property_equity"`
	ETFValue       float64 `json:"etf_value"`
}

// BreakEvenResult is the ETF return at which property and ETF end up equal.
type BreakEvenResult struct {
	ETFReturnPct float64          `json:"etf_return_pct"`
	Found        bool             `json:"found"`
	Iterations   int              `json:"iterations"`
	Comparison   ComparisonResult `json:"comparison"`
}
