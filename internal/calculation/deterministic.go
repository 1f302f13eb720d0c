package calculation

import "time"

// nowFunc returns the current time (override in tests for determinism).
// Only building-age figures depend on it; the cashflow model never does.
var nowFunc = time.Now

// SetNowFunc overrides the time provider (use only in tests).
func SetNowFunc(f func() time.Time) {
	if f == nil {
		nowFunc = time.Now
		return
	}
	nowFunc = f
}
