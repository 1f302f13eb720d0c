package output

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/immocalc/immo-vs-etf/internal/domain"
)

// ConsoleVerboseFormatter renders the detailed console report via the pluggable interface.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string { return "console" }

func (c ConsoleVerboseFormatter) Format(r *domain.Report) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, "=================================================================================")
	fmt.Fprintln(&buf, "DETAILED REAL ESTATE VS. ETF ANALYSIS")
	fmt.Fprintln(&buf, "=================================================================================")
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
	for _, a := range reportAssumptions(r) {
		fmt.Fprintf(&buf, "• %s\n", a)
	}
	fmt.Fprintln(&buf)

	writeAnnualSnapshot(&buf, r)
	writeTaxSituation(&buf, r)
	writeProjectionTable(&buf, r)
	writeCashflowStats(&buf, r)
	writeComparison(&buf, r)
	writeETFTaxDetails(&buf, r)

	return buf.Bytes(), nil
}

func writeAnnualSnapshot(w io.Writer, r *domain.Report) {
	fmt.Fprintln(w, "ANNUAL CASHFLOW (YEAR 1)")
	fmt.Fprintln(w, strings.Repeat("=", 50))
	width := 0
	for _, row := range r.Annual {
		if n := len([]rune(row.Label)); n > width {
			width = n
		}
	}
	for _, row := range r.Annual {
		value := FormatCurrency(row.Value)
		if row.ID == domain.RowEffectiveTaxRate {
			value = FormatPercentage(row.Value)
		}
		pad := width - len([]rune(row.Label))
		fmt.Fprintf(w, "  %s:%s %18s\n", row.Label, strings.Repeat(" ", pad), value)
	}
	fmt.Fprintln(w)
}

func writeTaxSituation(w io.Writer, r *domain.Report) {
	t := r.IncomeTax
	fmt.Fprintln(w, "TAX SITUATION")
	fmt.Fprintln(w, strings.Repeat("=", 50))
	if !r.Inputs.UseDynamicTax {
		fmt.Fprintf(w, "  Manual tax rate:        %s\n", FormatPercentage(r.Inputs.ManualTaxRatePct))
	}
	fmt.Fprintf(w, "  Gross income:           %s\n", FormatCurrency(t.GrossIncome))
	fmt.Fprintf(w, "  Taxable income:         %s\n", FormatCurrency(t.TaxableIncome))
	fmt.Fprintf(w, "  Income tax:             %s\n", FormatCurrency(t.IncomeTax))
	fmt.Fprintf(w, "  Solidarity surcharge:   %s\n", FormatCurrency(t.SolidarityTax))
	if r.Inputs.ChurchTax {
		fmt.Fprintf(w, "  Church tax:             %s\n", FormatCurrency(t.ChurchTax))
	}
	fmt.Fprintf(w, "  Marginal rate:          %s\n", FormatPercentage(t.MarginalTaxRate))
	fmt.Fprintf(w, "  Average rate:           %s\n", FormatPercentage(t.AverageTaxRate))
	fmt.Fprintln(w)

	a := r.AfA
	fmt.Fprintf(w, "  AfA rule:               %s (%s)\n", a.CurrentRule.Description, FormatPercentage(a.CurrentRule.Rate))
	fmt.Fprintf(w, "  Building age:           %d years\n", a.BuildingAge)
	for _, opt := range a.SpecialOptions {
		fmt.Fprintf(w, "  Option: %s\n", opt)
	}
	fmt.Fprintln(w)
}

func writeProjectionTable(w io.Writer, r *domain.Report) {
	fmt.Fprintln(w, "PROJECTION")
	fmt.Fprintln(w, strings.Repeat("=", 110))
	fmt.Fprintf(w, "%-5s %18s %18s %18s %16s %16s %18s\n",
		"Year", "Rent", "Property Value", "Remaining Debt", "Interest", "Principal", "Cashflow")
	fmt.Fprintln(w, strings.Repeat("-", 110))
	for _, row := range r.Projection {
		fmt.Fprintf(w, "%-5d %18s %18s %18s %16s %16s %18s\n",
			row.Year,
			FormatCurrency(row.Rent),
			FormatCurrency(row.PropertyValue),
			FormatCurrency(row.RemainingDebt),
			FormatCurrency(row.InterestPaid),
			FormatCurrency(row.PrincipalPaid),
			FormatCurrency(row.CashflowAfterTax),
		)
	}
	fmt.Fprintln(w)
}

func writeCashflowStats(w io.Writer, r *domain.Report) {
	s := r.CashflowStats
	fmt.Fprintln(w, "CASHFLOW STATISTICS")
	fmt.Fprintln(w, strings.Repeat("=", 50))
	fmt.Fprintf(w, "  Total positive:         %s\n", FormatCurrency(s.TotalPositive))
	fmt.Fprintf(w, "  Total negative:         %s\n", FormatCurrency(s.TotalNegative))
	fmt.Fprintf(w, "  Average per year:       %s\n", FormatCurrency(s.Average))
	fmt.Fprintf(w, "  Cumulative:             %s\n", FormatCurrency(s.Cumulative))
	if s.HasBreakEven() {
		fmt.Fprintf(w, "  Break-even year:        %d\n", s.BreakEvenYear)
	} else {
		fmt.Fprintln(w, "  Break-even year:        N/A")
	}
	fmt.Fprintln(w)
}

func writeComparison(w io.Writer, r *domain.Report) {
	c := r.Comparison
	fmt.Fprintln(w, "PROPERTY VS. ETF")
	fmt.Fprintln(w, strings.Repeat("=", 50))
	fmt.Fprintf(w, "  Net sale proceeds:      %s\n", FormatCurrency(c.NetSaleProceeds))
	fmt.Fprintf(w, "  Monthly ETF savings:    %s\n", FormatCurrency(c.MonthlyContribution))
	fmt.Fprintf(w, "  ETF savings plan (net): %s\n", FormatCurrency(c.FVMonthlyContrib))
	fmt.Fprintf(w, "  ETF equity (net):       %s\n", FormatCurrency(c.FVEquity))
	fmt.Fprintf(w, "  ETF total (gross):      %s\n", FormatCurrency(c.TotalETFValue))
	fmt.Fprintf(w, "  ETF taxes:              %s\n", FormatCurrency(c.TotalETFTaxes))
	fmt.Fprintf(w, "  ETF total (net):        %s\n", FormatCurrency(c.NetETFValue))
	fmt.Fprintln(w)

	v := AnalyzeComparison(r)
	fmt.Fprintf(w, "RESULT: %s ahead by %s (%s)\n", v.Winner, FormatCurrency(v.Advantage), FormatPercentage(v.AdvantagePct))
	fmt.Fprintln(w)
}

func writeETFTaxDetails(w io.Writer, r *domain.Report) {
	d := r.Comparison.ETFTaxDetails
	if d == nil {
		return
	}
	fmt.Fprintln(w, "ETF TAX DETAILS (SAVINGS PLAN)")
	fmt.Fprintln(w, strings.Repeat("=", 50))
	fmt.Fprintf(w, "  Total invested:         %s\n", FormatCurrency(d.TotalInvestment))
	fmt.Fprintf(w, "  Capital gains:          %s\n", FormatCurrency(d.TotalCapitalGains))
	fmt.Fprintf(w, "  Partial exemption:      %s (%s)\n", FormatCurrency(d.PartialExemptionAmount), FormatPercentage(d.PartialExemptionRate))
	fmt.Fprintf(w, "  Vorabpauschale total:   %s\n", FormatCurrency(d.TotalAdvanceLumpSum))
	fmt.Fprintf(w, "  Advance tax credit:     %s\n", FormatCurrency(d.FinalTax.AdvanceTaxCredit))
	fmt.Fprintf(w, "  Final tax due:          %s\n", FormatCurrency(d.FinalTax.FinalTaxDue))
	fmt.Fprintf(w, "  Effective return:       %s\n", FormatPercentage(d.EffectiveReturnRate))
}
