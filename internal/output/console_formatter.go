package output

import (
	"bytes"
	"fmt"

	"github.com/immocalc/immo-vs-etf/internal/domain"
)

// ConsoleFormatter provides a concise console summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "summary" }

func (c ConsoleFormatter) Format(r *domain.Report) ([]byte, error) {
	var buf bytes.Buffer
	cmp := r.Comparison
	fmt.Fprintln(&buf, "IMMOBILIE VS. ETF SUMMARY")
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "Kaufpreis: %s  Eigenkapital: %s  Haltedauer: %d Jahre\n",
		FormatCurrency(r.Inputs.PurchasePrice), FormatCurrency(r.Inputs.Equity), r.Inputs.HoldingYears)
	fmt.Fprintf(&buf, "Cashflow Jahr 1: %s\n", FormatCurrency(r.Annual.ValueOrZero(domain.RowCashflowAfterTax)))
	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "Immobilie (netto nach Verkauf): %s\n", FormatCurrency(cmp.NetSaleProceeds))
	fmt.Fprintf(&buf, "ETF (netto nach Steuern):       %s\n", FormatCurrency(cmp.NetETFValue))

	v := AnalyzeComparison(r)
	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "Vorteil: %s (Δ %s / %s)\n", v.Winner, FormatCurrency(v.Advantage), FormatPercentage(v.AdvantagePct))
	return buf.Bytes(), nil
}
