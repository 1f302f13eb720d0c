package calculation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateAfARate(t *testing.T) {
	calculator := NewAfACalculator()

	tests := []struct {
		year        int
		rate        float64
		description string
	}{
		{1800, 2.5, "Altbauten vor 1925"},
		{1924, 2.5, "Altbauten vor 1925"},
		{1925, 2.0, "Standardsatz"},
		{1990, 2.0, "Standardsatz"},
		{2022, 2.0, "Standardsatz"},
		{2023, 3.0, "Erhöhte AfA (2023-2029)"},
		{2029, 3.0, "Erhöhte AfA (2023-2029)"},
		{2030, 2.0, "Standardsatz (ab 2030)"},
		{10000, 2.0, "Standardsatz"},
	}

	for _, tt := range tests {
		rule := calculator.CalculateAfARate(tt.year)
		assert.Equal(t, tt.rate, rule.Rate, "year %d", tt.year)
		assert.Equal(t, tt.description, rule.Description, "year %d", tt.year)
	}
}

func TestMaxDepreciationYears(t *testing.T) {
	calculator := NewAfACalculator()

	assert.Equal(t, 40, calculator.MaxDepreciationYears(2.5))
	assert.Equal(t, 50, calculator.MaxDepreciationYears(2.0))
	assert.Equal(t, 33, calculator.MaxDepreciationYears(3.0))
	assert.Equal(t, 50, calculator.MaxDepreciationYears(7))
}

func TestCalculateAfA(t *testing.T) {
	calculator := NewAfACalculator()

	t.Run("building within schedule", func(t *testing.T) {
		calc := calculator.CalculateAfA(1990, 280800, 2024)
		assert.Equal(t, 2.0, calc.Rate)
		assert.InDelta(t, 5616, calc.AnnualAmount, 1e-9)
		assert.Equal(t, 16, calc.RemainingYears)
		assert.InDelta(t, 5616*34, calc.TotalDepreciation, 1e-6)
	})

	t.Run("fully depreciated", func(t *testing.T) {
		calc := calculator.CalculateAfA(1900, 100000, 2024)
		assert.Equal(t, 2.5, calc.Rate)
		assert.Equal(t, 0, calc.RemainingYears)
		assert.InDelta(t, 100000, calc.TotalDepreciation, 1e-6)
	})

	t.Run("future construction year", func(t *testing.T) {
		calc := calculator.CalculateAfA(2026, 100000, 2024)
		assert.Equal(t, 3.0, calc.Rate)
		assert.Equal(t, 35, calc.RemainingYears)
		assert.Equal(t, 0.0, calc.TotalDepreciation)
	})
}

func TestCalculateScenarios(t *testing.T) {
	calculator := NewAfACalculator()

	scenarios := calculator.CalculateScenarios(1990, 200000, 2024)
	assert.Equal(t, 2.0, scenarios.Standard.Rate)
	assert.InDelta(t, 20000, scenarios.Monument.AnnualAmount, 1e-9)
	assert.Equal(t, 200000.0, scenarios.Monument.TotalDepreciation)
	require.NotNil(t, scenarios.SupportedArea)
	assert.InDelta(t, 8000, scenarios.SupportedArea.AnnualAmount, 1e-9)
	assert.InDelta(t, 80000, scenarios.SupportedArea.TotalDepreciation, 1e-9)

	scenarios = calculator.CalculateScenarios(2023, 200000, 2024)
	assert.Nil(t, scenarios.SupportedArea)
}

func TestPossibleSpecialDepreciations(t *testing.T) {
	calculator := NewAfACalculator()

	assert.Equal(t, []string{SpecialOptionMonument, SpecialOptionSupportedArea}, calculator.PossibleSpecialDepreciations(1990))
	assert.Equal(t, []string{SpecialOptionMonument, SpecialOptionSupportedArea, SpecialOptionNewRental}, calculator.PossibleSpecialDepreciations(2020))
	assert.Equal(t, []string{SpecialOptionMonument, SpecialOptionNewRental}, calculator.PossibleSpecialDepreciations(2024))
}

func TestAllAfARules(t *testing.T) {
	calculator := NewAfACalculator()

	rules := calculator.AllAfARules()
	require.Len(t, rules, 4)
	for i := 1; i < len(rules); i++ {
		assert.Equal(t, rules[i-1].YearTo+1, rules[i].YearFrom, "rules must not overlap or leave gaps")
	}
}

func TestAfAInfo(t *testing.T) {
	SetNowFunc(func() time.Time { return time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC) })
	defer SetNowFunc(nil)

	calculator := NewAfACalculator()

	info := calculator.AfAInfo(1990)
	assert.Equal(t, 35, info.BuildingAge)
	assert.Equal(t, 2.0, info.CurrentRule.Rate)
	assert.False(t, info.IsNewBuilding)
	assert.False(t, info.IsOldBuilding)

	info = calculator.AfAInfo(1930)
	assert.True(t, info.IsOldBuilding)

	info = calculator.AfAInfo(2021)
	assert.True(t, info.IsNewBuilding)
	assert.Len(t, info.SpecialOptions, 3)
}

func TestCurrentScenarios_SharesClockWithAfAInfo(t *testing.T) {
	SetNowFunc(func() time.Time { return time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC) })
	defer SetNowFunc(nil)

	calculator := NewAfACalculator()

	info := calculator.AfAInfo(1990)
	scenarios := calculator.CurrentScenarios(1990, 200000)
	assert.Equal(t, 35, info.BuildingAge)
	assert.Equal(t, 50-info.BuildingAge, scenarios.Standard.RemainingYears)
	assert.InDelta(t, 140000, scenarios.Standard.TotalDepreciation, 1e-9)
	assert.Equal(t, calculator.CalculateScenarios(1990, 200000, 2025), scenarios)
}
