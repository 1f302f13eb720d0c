package config

import (
	"fmt"
	"os"

	"github.com/immocalc/immo-vs-etf/internal/domain"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of input parameter files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads input parameters from a YAML (or JSON) file.
// Keys missing from the file keep their documented defaults.
func (ip *InputParser) LoadFromFile(filename string) (*domain.InputParameters, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	inputs, err := ip.Parse(data)
	if err != nil {
		return nil, err
	}

	if err := ip.ValidateInputs(inputs); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return inputs, nil
}

// Parse decodes YAML onto the default parameter set without validating it.
func (ip *InputParser) Parse(data []byte) (*domain.InputParameters, error) {
	inputs := domain.DefaultInputs()
	if err := yaml.Unmarshal(data, &inputs); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return &inputs, nil
}

// ValidateInputs enforces the accepted input ranges.
// The calculation engine itself saturates instead of rejecting.
func (ip *InputParser) ValidateInputs(p *domain.InputParameters) error {
	if p == nil {
		return fmt.Errorf("no input parameters provided")
	}

	// Property
	if p.PurchasePrice <= 0 {
		return fmt.Errorf("kaufpreis must be positive")
	}
	if p.LivingArea <= 0 {
		return fmt.Errorf("wohnflaeche_qm must be positive")
	}
	if p.RentPerSqmMonth < 0 {
		return fmt.Errorf("miete_pro_qm_monat cannot be negative")
	}
	if err := percentBetween("anteil_gebaeude_pct", p.BuildingSharePct, 0, 100); err != nil {
		return err
	}
	if p.ConstructionYear < 1800 || p.ConstructionYear > 2100 {
		return fmt.Errorf("baujahr must be between 1800 and 2100")
	}
	for _, f := range []namedValue{
		{"grunderwerbsteuer_pct", p.TransferTaxPct},
		{"notar_grundbuch_pct", p.NotaryPct},
		{"makler_pct", p.AgentPct},
		{"ruecklagen_eur_pro_qm_jahr", p.ReservesPerSqmYear},
		{"eigenkapital", p.Equity},
		{"jahreseinkommen_brutto", p.GrossAnnualIncome},
	} {
		if f.value < 0 {
			return fmt.Errorf("%s cannot be negative", f.name)
		}
	}
	if err := percentBetween("betriebskosten_pct_von_miete", p.OperatingCostPct, 0, 100); err != nil {
		return err
	}
	if err := percentBetween("vacancy_pct", p.VacancyPct, 0, 100); err != nil {
		return err
	}

	// Financing
	if err := percentBetween("zins_pct", p.InterestPct, 0, 20); err != nil {
		return err
	}
	if err := percentBetween("tilgung_pct", p.AmortizationPct, 0, 20); err != nil {
		return err
	}
	if p.FixedRateYears < 0 || p.FixedRateYears > 40 {
		return fmt.Errorf("zinsbindung_jahre must be between 0 and 40")
	}

	// Taxes
	if err := percentBetween("steuersatz_pct", p.ManualTaxRatePct, 0, 100); err != nil {
		return err
	}

	// Market
	for _, f := range []namedValue{
		{"wertsteigerung_pct", p.AppreciationPct},
		{"mietsteigerung_pct", p.RentGrowthPct},
		{"etf_rendite_pct", p.ETFReturnPct},
	} {
		if f.value <= -100 {
			return fmt.Errorf("%s cannot be -100%% or less", f.name)
		}
	}
	if p.HoldingYears < 1 || p.HoldingYears > 50 {
		return fmt.Errorf("haltejahre must be between 1 and 50")
	}
	if err := percentBetween("verkaufskosten_pct", p.SellingCostPct, 0, 100); err != nil {
		return err
	}

	return nil
}

// namedValue pairs a field with its value so checks run in a fixed order.
type namedValue struct {
	name  string
	value float64
}

func percentBetween(name string, v, lo, hi float64) error {
	if v < lo || v > hi {
		return fmt.Errorf("%s must be between %g and %g", name, lo, hi)
	}
	return nil
}

// CreateExampleInputs creates the example input parameter set
func (ip *InputParser) CreateExampleInputs() *domain.InputParameters {
	inputs := domain.DefaultInputs()
	return &inputs
}

// SaveToFile writes input parameters as YAML.
func (ip *InputParser) SaveToFile(p *domain.InputParameters, filename string) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to encode inputs: %w", err)
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filename, err)
	}
	return nil
}
