package entail

import (
	"github.com/operator-framework/entail/pkg/rules"
)

// EqualVars returns every unordered pair of distinct undetermined
// variables that carry the same truth value in every model of r, in
// ascending lexicographic order. A pair qualifies exactly when each
// variable is a hard conclusion of the other.
//
// Pairs are checked independently rather than propagated through a
// transitive closure, so the output of an equivalence class of size k
// is all of its k*(k-1)/2 pairs. A determined variable can never
// satisfy IsHardConclusion in either role, so both members of a pair
// are required to be undetermined up front; this only saves oracle
// calls and never changes the result.
func EqualVars(r *rules.RuleSet) ([][2]int, error) {
	determined, err := DeterminedVars(r)
	if err != nil {
		return nil, err
	}
	pinned := make(map[int]bool, len(determined))
	for _, lit := range determined {
		if lit < 0 {
			lit = -lit
		}
		pinned[lit] = true
	}

	var pairs [][2]int
	n := r.HighestVariable()
	for i := 1; i <= n; i++ {
		if pinned[i] {
			continue
		}
		for j := i + 1; j <= n; j++ {
			if pinned[j] {
				continue
			}
			forward, err := IsHardConclusion(r, i, j)
			if err != nil {
				return nil, err
			}
			if !forward {
				continue
			}
			backward, err := IsHardConclusion(r, j, i)
			if err != nil {
				return nil, err
			}
			if backward {
				pairs = append(pairs, [2]int{i, j})
			}
		}
	}
	return pairs, nil
}
