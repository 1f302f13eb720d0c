package output

import (
	"fmt"
	"io"
	"os"

	"github.com/immocalc/immo-vs-etf/internal/domain"
	"gopkg.in/yaml.v3"
)

// GenerateReport renders the report with the named formatter and writes it to a
// timestamped file in dir. It returns the file name.
func GenerateReport(report *domain.Report, format, dir string) (string, error) {
	f, err := ResolveFormatter(format)
	if err != nil {
		return "", err
	}
	return WriteFormatted(f, report, dir, FileExtension(f.Name()))
}

// RenderReport renders the report with the named formatter to w.
func RenderReport(w io.Writer, report *domain.Report, format string) error {
	f, err := ResolveFormatter(format)
	if err != nil {
		return err
	}
	data, err := f.Format(report)
	if err != nil {
		return fmt.Errorf("%s formatter: %w", f.Name(), err)
	}
	_, err = w.Write(data)
	return err
}

// SaveInputs writes the parameter set as YAML so a run can be reproduced.
func SaveInputs(inputs *domain.InputParameters, filename string) error {
	b, err := yaml.Marshal(inputs)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}
