package oracle

import (
	"errors"
	"fmt"
	"time"
)

// ContradictionError reports a mutation that would leave the
// conjunction without a model. The instance that produced it must be
// discarded; every subsequent call on it fails with the same error.
type ContradictionError struct {
	// Clause is the rejected clause, or nil when the error comes
	// from reusing an already-contradicted instance.
	Clause []int
}

func (e *ContradictionError) Error() string {
	if len(e.Clause) == 0 {
		return "rule set is contradicted"
	}
	return fmt.Sprintf("clause %v contradicts the rule set", e.Clause)
}

// TimeoutError reports a query that exceeded the solver's per-query
// budget. The result of the query is unknown; it is never retried and
// no partial answer is substituted.
type TimeoutError struct {
	Budget time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("solver exceeded its budget of %s", e.Budget)
}

// IsContradiction reports whether any error in err's chain is a
// ContradictionError.
func IsContradiction(err error) bool {
	var ce *ContradictionError
	return errors.As(err, &ce)
}

// IsTimeout reports whether any error in err's chain is a
// TimeoutError.
func IsTimeout(err error) bool {
	var te *TimeoutError
	return errors.As(err, &te)
}
