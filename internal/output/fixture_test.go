package output

import "github.com/immocalc/immo-vs-etf/internal/domain"

func buildTestReport() *domain.Report {
	inputs := domain.DefaultInputs()
	inputs.HoldingYears = 2
	return &domain.Report{
		Inputs: inputs,
		Annual: domain.AnnualSnapshot{
			{ID: domain.RowAnnualRent, Label: "Jahreskaltmiete", Value: 9600},
			{ID: domain.RowEffectiveTaxRate, Label: "Steuersatz", Value: 44.31},
			{ID: domain.RowCashflowAfterTax, Label: "Cashflow nach Steuern", Value: -5683.21},
		},
		Projection: []domain.ProjectionRow{
			{Year: 1, Rent: 9600, PropertyValue: 360000, RemainingDebt: 318326.4, InterestPaid: 11261.16, PrincipalPaid: 6434.95, CashflowAfterTax: -5683.21},
			{Year: 2, Rent: 9744, PropertyValue: 367200, RemainingDebt: 311891.45, InterestPaid: 11261.16, PrincipalPaid: 6434.95, CashflowAfterTax: -5600.5},
		},
		Comparison: domain.ComparisonResult{
			NetSaleProceeds:     62000,
			MonthlyContribution: 473.6,
			FVMonthlyContrib:    11500,
			FVEquity:            86000,
			TotalETFValue:       98000,
			TotalETFTaxes:       1500,
			NetETFValue:         96500,
			AdvantageProperty:   -34500,
		},
		CashflowStats: domain.CashflowStats{
			TotalNegative:   -11283.71,
			Average:         -5641.86,
			Cumulative:      -11283.71,
			NegativeYears:   2,
			ProjectionYears: 2,
		},
		Equity: []domain.EquityPoint{
			{Year: 1, PropertyValue: 360000, RemainingDebt: 318326.4, PropertyEquity: 41673.6, ETFValue: 86373},
			{Year: 2, PropertyValue: 367200, RemainingDebt: 311891.45, PropertyEquity: 55308.55, ETFValue: 101608},
		},
		AfA: domain.AfAInfo{
			CurrentRule: domain.AfARule{YearFrom: 1925, YearTo: 2022, Rate: 2, Description: "Gebäude ab 1925", Details: "2% über 50 Jahre"},
			BuildingAge: 34,
		},
		IncomeTax: domain.TaxResult{GrossIncome: 80000, TaxableIncome: 79000, IncomeTax: 21179, MarginalTaxRate: 44.31, AverageTaxRate: 26.47},
	}
}
