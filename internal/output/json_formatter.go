package output

import (
	json "github.com/goccy/go-json"

	"github.com/immocalc/immo-vs-etf/internal/domain"
)

// JSONFormatter serializes the report as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(r *domain.Report) ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}
