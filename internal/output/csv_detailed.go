package output

import (
	"bytes"
	"encoding/csv"

	"github.com/immocalc/immo-vs-etf/internal/domain"
)

// CSVDetailedExporter joins the projection with the equity progression and
// running cashflow per year.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

func (c CSVDetailedExporter) Format(r *domain.Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Year", "Rent", "PropertyValue", "RemainingDebt", "Interest", "Principal", "Cashflow", "CumulativeCashflow", "PropertyEquity", "ETFValue", "CashflowPositive"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	etfByYear := make(map[int]domain.EquityPoint, len(r.Equity))
	for _, p := range r.Equity {
		etfByYear[p.Year] = p
	}

	var cumulative float64
	for _, yr := range r.Projection {
		cumulative += yr.CashflowAfterTax
		eq := etfByYear[yr.Year]
		row := []string{
			intToString(yr.Year),
			FormatAmount(yr.Rent),
			FormatAmount(yr.PropertyValue),
			FormatAmount(yr.RemainingDebt),
			FormatAmount(yr.InterestPaid),
			FormatAmount(yr.PrincipalPaid),
			FormatAmount(yr.CashflowAfterTax),
			FormatAmount(cumulative),
			FormatAmount(yr.Equity()),
			FormatAmount(eq.ETFValue),
			boolToString(yr.CashflowAfterTax >= 0),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
