// Package oracle defines the satisfiability decision procedure
// consumed by the rules facade, along with its gini-backed default
// implementation.
//
// Clauses and assumptions are expressed in DIMACS coding: a literal is
// a signed non-zero int whose magnitude names a variable and whose
// sign gives its polarity. Zero is not a literal; passing one is a
// caller bug with undefined behavior.
package oracle

// Oracle values decide satisfiability of a growing CNF conjunction.
// Clause assertion is permanent; assumption-based queries are not.
// Implementations are not safe for concurrent use.
type Oracle interface {
	// AddClause permanently asserts the disjunction of the given
	// literals. It fails with a ContradictionError if the resulting
	// conjunction has no model, after which the Oracle is unusable.
	AddClause(clause []int) error

	// Satisfiable reports whether the asserted conjunction has at
	// least one model.
	Satisfiable() (bool, error)

	// SatisfiableAssuming reports whether the asserted conjunction
	// extended by the given unit assumptions has a model. The
	// assumptions do not persist beyond the call.
	SatisfiableAssuming(assumptions []int) (bool, error)

	// SatisfiableUnderClauses reports whether the asserted
	// conjunction extended by the given temporary clauses has a
	// model. The clauses do not persist beyond the call.
	SatisfiableUnderClauses(clauses [][]int) (bool, error)

	// ModelAssuming returns a complete assignment satisfying the
	// asserted conjunction and the given unit assumptions, or false
	// if there is none. Position i-1 of the returned slice holds +i
	// if variable i is true in the model and -i otherwise.
	ModelAssuming(assumptions []int) ([]int, bool, error)

	// HighestVariable returns the largest variable referenced by any
	// accepted clause, or 0 if none has been asserted. Assumption
	// literals never contribute.
	HighestVariable() int
}
