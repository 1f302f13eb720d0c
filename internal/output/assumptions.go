package output

import "github.com/immocalc/immo-vs-etf/internal/domain"

// DefaultAssumptions lists the modelling assumptions for the documented default
// inputs. Used when a report carries none.
var DefaultAssumptions = domain.DefaultInputs().GenerateAssumptions()

func reportAssumptions(r *domain.Report) []string {
	if len(r.Assumptions) > 0 {
		return r.Assumptions
	}
	return DefaultAssumptions
}
