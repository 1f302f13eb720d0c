package output

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/immocalc/immo-vs-etf/internal/domain"
)

func TestConsoleSummaryFormatter(t *testing.T) {
	out, err := ConsoleFormatter{}.Format(buildTestReport())
	require.NoError(t, err)
	content := string(out)
	assert.Contains(t, content, "IMMOBILIE VS. ETF SUMMARY")
	assert.Contains(t, content, "Vorteil: ETF")
	assert.Contains(t, content, "34.500,00 €")
	assert.Contains(t, content, "-5.683,21 €")
}

func TestConsoleVerboseFormatter(t *testing.T) {
	out, err := ConsoleVerboseFormatter{}.Format(buildTestReport())
	require.NoError(t, err)
	content := string(out)
	assert.True(t, strings.HasPrefix(content, "====="))
	assert.Contains(t, content, "DETAILED REAL ESTATE VS. ETF ANALYSIS")
	assert.Contains(t, content, "Jahreskaltmiete:")
	assert.Contains(t, content, "44,31 %")
	assert.Contains(t, content, "Break-even year:        N/A")
	assert.Contains(t, content, "RESULT: ETF ahead by 34.500,00 €")
	for _, a := range DefaultAssumptions {
		assert.Contains(t, content, a)
	}
}

func TestConsoleVerboseFormatter_UsesReportAssumptions(t *testing.T) {
	r := buildTestReport()
	r.Assumptions = []string{"Custom assumption"}
	out, err := ConsoleVerboseFormatter{}.Format(r)
	require.NoError(t, err)
	assert.Contains(t, string(out), "• Custom assumption")
	assert.NotContains(t, string(out), DefaultAssumptions[0])
}

func TestCSVProjectionExporter(t *testing.T) {
	out, err := CSVProjectionExporter{}.Format(buildTestReport())
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "year,mieteinnahmen,immobilienwert,restschuld,zinsaufwand,tilgung,cashflow_nach_steuern", lines[0])
	assert.Equal(t, "1,9600.00,360000.00,318326.40,11261.16,6434.95,-5683.21", lines[1])
}

func TestCSVDetailedExporter(t *testing.T) {
	out, err := CSVDetailedExporter{}.Format(buildTestReport())
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "Year,Rent,PropertyValue"))
	fields := strings.Split(lines[2], ",")
	require.Len(t, fields, 11)
	assert.Equal(t, "-11283.71", fields[7])
	assert.Equal(t, "55308.55", fields[8])
	assert.Equal(t, "101608.00", fields[9])
	assert.Equal(t, "false", fields[10])
}

func TestJSONFormatter(t *testing.T) {
	out, err := JSONFormatter{}.Format(buildTestReport())
	require.NoError(t, err)
	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Contains(t, decoded, "comparison")
	assert.Contains(t, decoded, "projection")
	cmp := decoded["comparison"].(map[string]interface{})
	assert.InDelta(t, -34500, cmp["advantage_immo"], 1e-9)
}

func TestHTMLFormatter(t *testing.T) {
	out, err := HTMLFormatter{}.Format(buildTestReport())
	require.NoError(t, err)
	content := string(out)
	assert.True(t, strings.HasPrefix(content, "<!DOCTYPE html>"))
	assert.Contains(t, content, "ETF besser um 34.500,00 €")
	assert.Contains(t, content, "Jahreskaltmiete")
	assert.Contains(t, content, `class="negative"`)
	assert.Contains(t, content, "etf_value")
}

func TestResolveFormatter(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"console", "console"},
		{"verbose", "console"},
		{"LITE", "summary"},
		{" csv-detailed ", "detailed-csv"},
		{"html-report", "html"},
		{"json", "json"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			f, err := ResolveFormatter(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, f.Name())
		})
	}

	_, err := ResolveFormatter("pdf")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))
	assert.Contains(t, err.Error(), "detailed-csv")
}

func TestAvailableFormatterNames(t *testing.T) {
	assert.Equal(t, []string{"console", "csv", "detailed-csv", "html", "json", "summary"}, AvailableFormatterNames())
	assert.Contains(t, AvailableFormatAliases(), "csv-projection")
}

func TestFileExtension(t *testing.T) {
	assert.Equal(t, "csv", FileExtension("detailed-csv"))
	assert.Equal(t, "csv", FileExtension("csv-projection"))
	assert.Equal(t, "html", FileExtension("html"))
	assert.Equal(t, "json", FileExtension("json"))
	assert.Equal(t, "txt", FileExtension("summary"))
}

func TestWriteFormatted(t *testing.T) {
	orig := nowFunc
	nowFunc = func() time.Time { return time.Date(2024, 3, 1, 12, 30, 45, 0, time.UTC) }
	defer func() { nowFunc = orig }()

	dir := filepath.Join(t.TempDir(), "reports")
	f := FormatterFunc{ID: "fixed", F: func(*domain.Report) ([]byte, error) { return []byte("ok"), nil }}
	name, err := WriteFormatted(f, buildTestReport(), dir, "txt")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "immo_vs_etf_20240301_123045.txt"), name)
	data, err := os.ReadFile(name)
	require.NoError(t, err)
	assert.Equal(t, "ok", string(data))
}
