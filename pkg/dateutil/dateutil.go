// Package dateutil holds calendar helpers for building ages and depreciation periods.
package dateutil

import "time"

// BuildingAge returns the age in whole years of a building completed in
// constructionYear, as of the given date. Future construction years yield a
// negative age.
func BuildingAge(constructionYear int, atDate time.Time) int {
	return atDate.Year() - constructionYear
}

// YearsUntil returns the number of full calendar years from one year to another.
func YearsUntil(fromYear, toYear int) int {
	if toYear < fromYear {
		return 0
	}
	return toYear - fromYear
}
