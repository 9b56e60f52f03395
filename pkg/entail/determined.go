package entail

import (
	"github.com/operator-framework/entail/pkg/rules"
)

// DeterminedVars returns one literal for every variable whose value
// is the same in every model of r: +v if v is forced true, -v if
// forced false. The result is in ascending variable order with at
// most one entry per variable. O(HighestVariable) oracle queries.
func DeterminedVars(r *rules.RuleSet) ([]int, error) {
	var determined []int
	for v := 1; v <= r.HighestVariable(); v++ {
		canBeFalse, err := r.SatisfiableWith(-v)
		if err != nil {
			return nil, err
		}
		if !canBeFalse {
			determined = append(determined, v)
			continue
		}
		canBeTrue, err := r.SatisfiableWith(v)
		if err != nil {
			return nil, err
		}
		if !canBeTrue {
			determined = append(determined, -v)
		}
	}
	return determined, nil
}
