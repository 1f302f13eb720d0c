package output

import (
	"bytes"
	"encoding/csv"

	"github.com/immocalc/immo-vs-etf/internal/domain"
)

// CSVProjectionExporter writes one row per projection year.
type CSVProjectionExporter struct{}

func (c CSVProjectionExporter) Name() string { return "csv" }

func (c CSVProjectionExporter) Format(r *domain.Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"year", "mieteinnahmen", "immobilienwert", "restschuld", "zinsaufwand", "tilgung", "cashflow_nach_steuern"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, yr := range r.Projection {
		row := []string{
			intToString(yr.Year),
			FormatAmount(yr.Rent),
			FormatAmount(yr.PropertyValue),
			FormatAmount(yr.RemainingDebt),
			FormatAmount(yr.InterestPaid),
			FormatAmount(yr.PrincipalPaid),
			FormatAmount(yr.CashflowAfterTax),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
