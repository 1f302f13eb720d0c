package calculation

import (
	"github.com/immocalc/immo-vs-etf/internal/domain"
	"github.com/immocalc/immo-vs-etf/pkg/dateutil"
)

// Special depreciation option texts.
const (
	SpecialOptionMonument      = "Denkmalschutz: 10% über 10 Jahre, dann 2% über weitere Jahre"
	SpecialOptionSupportedArea = "Fördergebiet: 4% über 10 Jahre, dann 2,5% über weitere Jahre"
	SpecialOptionNewRental     = "Mietwohnungsneubau (§7b): 5% über 4 Jahre zusätzlich zur normalen AfA"
)

var (
	afaRulePre1925 = domain.AfARule{
		YearFrom:    0,
		YearTo:      1924,
		Rate:        2.5,
		Description: "Altbauten vor 1925",
		Details:     "Gebäude vor 1925: 2,5% über 40 Jahre",
	}
	afaRuleStandard = domain.AfARule{
		YearFrom:    1925,
		YearTo:      2022,
		Rate:        2.0,
		Description: "Standardsatz",
		Details:     "Gebäude 1925-2022: 2% über 50 Jahre",
	}
)

// AfACalculator maps construction years to building depreciation rates.
type AfACalculator struct {
	Rules []domain.AfARule
}

// NewAfACalculator creates a calculator with the current statutory rule table.
func NewAfACalculator() *AfACalculator {
	return &AfACalculator{
		Rules: []domain.AfARule{
			afaRulePre1925,
			afaRuleStandard,
			{
				YearFrom:    2023,
				YearTo:      2029,
				Rate:        3.0,
				Description: "Erhöhte AfA (2023-2029)",
				Details:     "Gebäude ab 2023: 3% über 33,33 Jahre (befristet bis 2029)",
			},
			{
				YearFrom:    2030,
				YearTo:      9999,
				Rate:        2.0,
				Description: "Standardsatz (ab 2030)",
				Details:     "Gebäude ab 2030: voraussichtlich wieder 2% über 50 Jahre",
			},
		},
	}
}

// CalculateAfARate selects the rule for a construction year.
// Years outside the table fall back to the standard rate.
func (ac *AfACalculator) CalculateAfARate(constructionYear int) domain.AfARule {
	if constructionYear < 1925 {
		return afaRulePre1925
	}
	for _, rule := range ac.Rules {
		if rule.Applies(constructionYear) {
			return rule
		}
	}
	return afaRuleStandard
}

// MaxDepreciationYears returns the schedule length for a rate.
func (ac *AfACalculator) MaxDepreciationYears(rate float64) int {
	switch rate {
	case 2.5:
		return 40
	case 2.0:
		return 50
	case 3.0:
		return 33 // 100/3, truncated
	default:
		return 50
	}
}

// CalculateAfA computes the depreciation schedule of a building value as of currentYear.
func (ac *AfACalculator) CalculateAfA(constructionYear int, buildingValue float64, currentYear int) domain.AfACalculation {
	rule := ac.CalculateAfARate(constructionYear)
	annual := buildingValue * rule.Rate / 100

	age := currentYear - constructionYear
	maxYears := ac.MaxDepreciationYears(rule.Rate)
	remaining := maxYears - age
	if remaining < 0 {
		remaining = 0
	}
	// Buildings completed in the future have nothing depreciated yet.
	depreciatedYears := min(dateutil.YearsUntil(constructionYear, currentYear), maxYears)

	return domain.AfACalculation{
		Rate:              rule.Rate,
		AnnualAmount:      annual,
		Description:       rule.Description,
		RemainingYears:    remaining,
		TotalDepreciation: annual * float64(depreciatedYears),
		Rule:              rule,
	}
}

// CalculateScenarios compares the standard schedule with monument protection and,
// for buildings up to 2022, the supported-area schedule.
func (ac *AfACalculator) CalculateScenarios(constructionYear int, buildingValue float64, currentYear int) domain.AfAScenarios {
	scenarios := domain.AfAScenarios{
		Standard: ac.CalculateAfA(constructionYear, buildingValue, currentYear),
		Monument: domain.AfACalculation{
			Rate:              10,
			AnnualAmount:      buildingValue * 0.10,
			Description:       "Denkmalschutz (10 Jahre)",
			RemainingYears:    10,
			TotalDepreciation: buildingValue,
			Rule: domain.AfARule{
				YearFrom:    constructionYear,
				YearTo:      constructionYear + 10,
				Rate:        10,
				Description: "Denkmalschutz",
				Details:     "10% über 10 Jahre, danach 2% über weitere Jahre",
			},
		},
	}

	if constructionYear <= 2022 {
		scenarios.SupportedArea = &domain.AfACalculation{
			Rate:              4,
			AnnualAmount:      buildingValue * 0.04,
			Description:       "Fördergebiet (10 Jahre)",
			RemainingYears:    10,
			TotalDepreciation: buildingValue * 0.4,
			Rule: domain.AfARule{
				YearFrom:    constructionYear,
				YearTo:      constructionYear + 10,
				Rate:        4,
				Description: "Fördergebiet",
				Details:     "4% über 10 Jahre, danach 2,5% über weitere Jahre",
			},
		}
	}
	return scenarios
}

// CurrentScenarios is CalculateScenarios evaluated in the current calendar year,
// read from the same clock as the building age in AfAInfo.
func (ac *AfACalculator) CurrentScenarios(constructionYear int, buildingValue float64) domain.AfAScenarios {
	return ac.CalculateScenarios(constructionYear, buildingValue, nowFunc().Year())
}

// PossibleSpecialDepreciations lists advisory special depreciation options.
func (ac *AfACalculator) PossibleSpecialDepreciations(constructionYear int) []string {
	options := []string{SpecialOptionMonument}
	if constructionYear <= 2022 {
		options = append(options, SpecialOptionSupportedArea)
	}
	if constructionYear >= 2019 {
		options = append(options, SpecialOptionNewRental)
	}
	return options
}

// AllAfARules returns a copy of the rule table for comparison display.
func (ac *AfACalculator) AllAfARules() []domain.AfARule {
	return append([]domain.AfARule(nil), ac.Rules...)
}

// AfAInfo summarizes the rule, building age and options for a construction year.
func (ac *AfACalculator) AfAInfo(constructionYear int) domain.AfAInfo {
	return domain.AfAInfo{
		CurrentRule:    ac.CalculateAfARate(constructionYear),
		BuildingAge:    dateutil.BuildingAge(constructionYear, nowFunc()),
		SpecialOptions: ac.PossibleSpecialDepreciations(constructionYear),
		IsNewBuilding:  constructionYear >= 2020,
		IsOldBuilding:  constructionYear < 1950,
	}
}
