package oracle

import (
	"time"

	"github.com/go-air/gini"
	"github.com/go-air/gini/inter"
	"github.com/go-air/gini/z"
)

const (
	satisfiable   = 1
	unsatisfiable = -1
)

// giniOracle owns a single gini solver handle. gini cannot reject a
// clause at assertion time the way an eager solver can, so AddClause
// runs one unconditional solve afterwards to keep the "alive implies
// satisfiable" invariant; a failed mutation leaves the handle
// poisoned.
type giniOracle struct {
	g        *gini.Gini
	timeout  time.Duration
	highest  int
	poisoned *ContradictionError
	buffer   []z.Lit
}

// New returns an Oracle backed by a fresh gini solver.
func New(options ...Option) Oracle {
	o := &giniOracle{g: gini.New()}
	for _, option := range options {
		option(o)
	}
	return o
}

type Option func(o *giniOracle)

// WithTimeout bounds every decision call by d. A non-positive d
// disables the budget, in which case queries never time out.
func WithTimeout(d time.Duration) Option {
	return func(o *giniOracle) {
		o.timeout = d
	}
}

func (o *giniOracle) AddClause(clause []int) error {
	if o.poisoned != nil {
		return o.poisoned
	}
	high := o.highest
	for _, lit := range clause {
		o.g.Add(toLit(lit))
		if v := abs(lit); v > high {
			high = v
		}
	}
	o.g.Add(z.LitNull)
	ok, err := o.solve(o.g)
	if err != nil {
		return err
	}
	if !ok {
		o.poisoned = &ContradictionError{Clause: append([]int(nil), clause...)}
		return o.poisoned
	}
	o.highest = high
	return nil
}

func (o *giniOracle) Satisfiable() (bool, error) {
	if o.poisoned != nil {
		return false, o.poisoned
	}
	return o.solve(o.g)
}

func (o *giniOracle) SatisfiableAssuming(assumptions []int) (bool, error) {
	if o.poisoned != nil {
		return false, o.poisoned
	}
	o.assume(assumptions)
	return o.solve(o.g)
}

// SatisfiableUnderClauses queries a throwaway copy of the solver so
// that the temporary clauses never reach the owned handle.
func (o *giniOracle) SatisfiableUnderClauses(clauses [][]int) (bool, error) {
	if o.poisoned != nil {
		return false, o.poisoned
	}
	s := o.g.SCopy()
	for _, clause := range clauses {
		for _, lit := range clause {
			s.Add(toLit(lit))
		}
		s.Add(z.LitNull)
	}
	return o.solve(s)
}

func (o *giniOracle) ModelAssuming(assumptions []int) ([]int, bool, error) {
	sat, err := o.SatisfiableAssuming(assumptions)
	if err != nil || !sat {
		return nil, false, err
	}
	model := make([]int, o.highest)
	for v := 1; v <= o.highest; v++ {
		if o.g.Value(z.Var(v).Pos()) {
			model[v-1] = v
		} else {
			model[v-1] = -v
		}
	}
	return model, true, nil
}

func (o *giniOracle) HighestVariable() int {
	return o.highest
}

func (o *giniOracle) assume(assumptions []int) {
	o.buffer = o.buffer[:0]
	for _, lit := range assumptions {
		o.buffer = append(o.buffer, toLit(lit))
	}
	o.g.Assume(o.buffer...)
}

// solve runs one decision call against s, honoring the configured
// budget. Assumptions pending on s are consumed either way.
func (o *giniOracle) solve(s inter.S) (bool, error) {
	if o.timeout <= 0 {
		return s.Solve() == satisfiable, nil
	}
	switch s.GoSolve().Try(o.timeout) {
	case satisfiable:
		return true, nil
	case unsatisfiable:
		return false, nil
	}
	return false, &TimeoutError{Budget: o.timeout}
}

// toLit translates a signed dimacs-coded literal to the solver's
// literal type.
func toLit(lit int) z.Lit {
	if lit < 0 {
		return z.Var(-lit).Neg()
	}
	return z.Var(lit).Pos()
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
