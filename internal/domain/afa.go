package domain

// AfARule maps a construction-year range to a building depreciation rate.
type AfARule struct {
	YearFrom    int     `json:"year_from" yaml:"year_from"`
	YearTo      int     `json:"year_to" yaml:"year_to"`
	Rate        float64 `json:"rate" yaml:"rate"`
	Description string  `json:"description" yaml:"description"`
	Details     string  `json:"details" yaml:"details"`
}

// Applies reports whether the rule covers the construction year.
func (r AfARule) Applies(year int) bool {
	return year >= r.YearFrom && year <= r.YearTo
}

// AfACalculation is the depreciation schedule for a concrete building value.
type AfACalculation struct {
	Rate              float64 `json:"rate"`
	AnnualAmount      float64 `json:"annual_amount"`
	Description       string  `json:"description"`
	RemainingYears    int     `json:"remaining_years"`
	TotalDepreciation float64 `json:"total_depreciation"`
	Rule              AfARule `json:"rule"`
}

// AfAScenarios compares the standard schedule with special depreciation options.
type AfAScenarios struct {
	Standard      AfACalculation  `json:"standard"`
	Monument      AfACalculation  `json:"monument"`
	SupportedArea *AfACalculation `json:"supported_area,omitempty"`
}

// AfAInfo is the display summary for a construction year.
type AfAInfo struct {
	CurrentRule    AfARule  `json:"current_rule"`
	BuildingAge    int      `json:"building_age"`
	SpecialOptions []string `json:"special_options"`
	IsNewBuilding  bool     `json:"is_new_building"`
	IsOldBuilding  bool     `json:"is_old_building"`
}
