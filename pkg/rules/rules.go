// Package rules exposes a CNF rule set as a queryable, incrementally
// extensible object. A RuleSet owns one Oracle handle for its whole
// lifetime and is the only component allowed to mutate it.
package rules

import (
	"time"

	"github.com/operator-framework/entail/pkg/oracle"
)

// RuleSet is a conjunction of clauses accumulated strictly by
// addition. A RuleSet that exists and has not returned a
// ContradictionError always has at least one model.
//
// Query methods are pure: repeated invocation against an unmutated
// RuleSet yields identical results. Mutations (New, AddFact,
// AddClause) must be serialized relative to all other calls; the type
// performs no locking of its own.
type RuleSet struct {
	o oracle.Oracle
}

type Option func(c *config)

type config struct {
	oracle  oracle.Oracle
	timeout time.Duration
}

// WithOracle substitutes the Oracle backing the rule set. The RuleSet
// takes sole ownership of the handle; sharing it across instances
// yields undefined behavior.
func WithOracle(o oracle.Oracle) Option {
	return func(c *config) {
		c.oracle = o
	}
}

// WithTimeout sets the per-query budget of the default Oracle. It has
// no effect when combined with WithOracle.
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		c.timeout = d
	}
}

// New asserts the given clauses in input order and returns the
// resulting rule set. If any clause makes the running conjunction
// unsatisfiable, New fails with a ContradictionError and no usable
// RuleSet is returned.
func New(clauses [][]int, options ...Option) (*RuleSet, error) {
	var c config
	for _, option := range options {
		option(&c)
	}
	if c.oracle == nil {
		c.oracle = oracle.New(oracle.WithTimeout(c.timeout))
	}
	r := &RuleSet{o: c.oracle}
	for _, clause := range clauses {
		if err := r.o.AddClause(clause); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// AddFact permanently asserts that lit holds, i.e. adds the singleton
// clause {lit}. On a ContradictionError the rule set is no longer
// trustworthy and must be discarded.
func (r *RuleSet) AddFact(lit int) error {
	return r.o.AddClause([]int{lit})
}

// AddClause permanently asserts the disjunction of the given
// literals. On a ContradictionError the rule set is no longer
// trustworthy and must be discarded.
func (r *RuleSet) AddClause(clause []int) error {
	return r.o.AddClause(clause)
}

// Satisfiable reports whether the rule set has at least one model.
func (r *RuleSet) Satisfiable() (bool, error) {
	return r.o.Satisfiable()
}

// SatisfiableWith reports whether the rule set has a model in which
// every given literal holds. The literals are a temporary conjunction
// and do not persist.
func (r *RuleSet) SatisfiableWith(lits ...int) (bool, error) {
	return r.o.SatisfiableAssuming(lits)
}

// SatisfiableUnderClauses reports whether the rule set extended by
// the given temporary clauses has a model. The clauses do not
// persist.
func (r *RuleSet) SatisfiableUnderClauses(clauses [][]int) (bool, error) {
	return r.o.SatisfiableUnderClauses(clauses)
}

// Model returns one model of the rule set, or false if there is
// none. Position i-1 holds +i if variable i is true in the model and
// -i otherwise; a rule set without variables yields an empty model,
// not false.
func (r *RuleSet) Model() ([]int, bool, error) {
	return r.o.ModelAssuming(nil)
}

// ModelWith returns one model in which every given literal holds, or
// false if there is none.
func (r *RuleSet) ModelWith(lits ...int) ([]int, bool, error) {
	return r.o.ModelAssuming(lits)
}

// HighestVariable returns the largest variable referenced by any
// asserted clause, or 0 if the rule set is empty.
func (r *RuleSet) HighestVariable() int {
	return r.o.HighestVariable()
}
