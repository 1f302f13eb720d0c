package domain

// Report bundles everything the formatters render for one parameter set.
type Report struct {
	Inputs        InputParameters  `json:"inputs"`
	Annual        AnnualSnapshot   `json:"annual"`
	Projection    []ProjectionRow  `json:"projection"`
	Comparison    ComparisonResult `json:"comparison"`
	CashflowStats CashflowStats    `json:"cashflow_stats"`
	Equity        []EquityPoint    `json:"equity_progression"`
	AfA           AfAInfo          `json:"afa"`
	IncomeTax     TaxResult        `json:"income_tax"`
	Assumptions   []string         `json:"assumptions"`
}
