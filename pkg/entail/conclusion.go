// Package entail answers semantic questions about a rule set in terms
// of a bounded number of satisfiability queries: entailment between
// two literals, variables pinned to a fixed value, and pairs of
// variables forced to always agree.
//
// Every function is a stateless, pure function of the rule set and
// its arguments and never mutates it. A TimeoutError from the
// underlying Oracle aborts the whole operation; no partial result is
// returned.
package entail

import (
	"github.com/operator-framework/entail/pkg/rules"
)

// IsLogicalConclusion reports whether every model of r in which
// premise holds also makes conclusion hold. The vacuous case counts:
// a premise that holds in no model entails everything, since there is
// no counter-model. One oracle query.
func IsLogicalConclusion(r *rules.RuleSet, premise, conclusion int) (bool, error) {
	sat, err := r.SatisfiableWith(premise, -conclusion)
	if err != nil {
		return false, err
	}
	return !sat, nil
}

// IsHardConclusion reports whether premise entails conclusion and the
// entailment is non-vacuous on the conclusion side: some model of r,
// irrespective of premise, makes conclusion false. This filters out
// entailments that hold only because the conclusion variable is
// already pinned by the rules. At most two oracle queries.
func IsHardConclusion(r *rules.RuleSet, premise, conclusion int) (bool, error) {
	entails, err := IsLogicalConclusion(r, premise, conclusion)
	if err != nil || !entails {
		return false, err
	}
	return r.SatisfiableWith(-conclusion)
}
