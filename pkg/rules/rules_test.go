package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/operator-framework/entail/pkg/oracle"
)

func TestNew(t *testing.T) {
	type tc struct {
		Name        string
		Clauses     [][]int
		Highest     int
		Contradicts bool
	}

	for _, tt := range []tc{
		{
			Name: "empty rule set",
		},
		{
			Name:    "single clause",
			Clauses: [][]int{{1, 2}},
			Highest: 2,
		},
		{
			Name:    "truth table fixture",
			Clauses: [][]int{{1, 3}, {2}, {4, -1}},
			Highest: 4,
		},
		{
			Name:        "direct contradiction",
			Clauses:     [][]int{{1}, {-1}},
			Contradicts: true,
		},
		{
			Name:        "contradiction through a chain",
			Clauses:     [][]int{{1}, {-1, 2}, {-2, 3}, {-3}},
			Contradicts: true,
		},
	} {
		t.Run(tt.Name, func(t *testing.T) {
			r, err := New(tt.Clauses)
			if tt.Contradicts {
				require.Error(t, err)
				assert.True(t, oracle.IsContradiction(err))
				assert.Nil(t, r)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.Highest, r.HighestVariable())

			sat, err := r.Satisfiable()
			require.NoError(t, err)
			assert.True(t, sat)
		})
	}
}

func TestAddFactContradiction(t *testing.T) {
	r, err := New([][]int{{1, 3}, {2}, {4, -1}})
	require.NoError(t, err)

	require.NoError(t, r.AddFact(1))

	err = r.AddFact(-1)
	require.Error(t, err)
	assert.True(t, oracle.IsContradiction(err))

	// The instance is poisoned rather than half-mutated.
	_, err = r.Satisfiable()
	assert.True(t, oracle.IsContradiction(err))
}

func TestSatisfiableWith(t *testing.T) {
	r, err := New([][]int{{1, 3}, {2}, {4, -1}})
	require.NoError(t, err)

	type tc struct {
		Name string
		Lits []int
		Want bool
	}

	for _, tt := range []tc{
		{Name: "positive premise", Lits: []int{1}, Want: true},
		{Name: "premise without its conclusion", Lits: []int{1, -4}, Want: false},
		{Name: "forced variable denied", Lits: []int{-2}, Want: false},
		{Name: "both branches open", Lits: []int{-1}, Want: true},
	} {
		t.Run(tt.Name, func(t *testing.T) {
			sat, err := r.SatisfiableWith(tt.Lits...)
			require.NoError(t, err)
			assert.Equal(t, tt.Want, sat)
		})
	}
}

func TestSatisfiableUnderClauses(t *testing.T) {
	r, err := New([][]int{{1, 2}})
	require.NoError(t, err)

	sat, err := r.SatisfiableUnderClauses([][]int{{-1}, {-2}})
	require.NoError(t, err)
	assert.False(t, sat)

	// Temporary clauses are gone afterwards.
	sat, err = r.Satisfiable()
	require.NoError(t, err)
	assert.True(t, sat)
	assert.Equal(t, 2, r.HighestVariable())
}

func TestModel(t *testing.T) {
	clauses := [][]int{{1, 3}, {2}, {4, -1}}
	r, err := New(clauses)
	require.NoError(t, err)

	model, ok, err := r.Model()
	require.NoError(t, err)
	require.True(t, ok)
	assertValidModel(t, clauses, model)
}

func TestModelWith(t *testing.T) {
	clauses := [][]int{{1, 3}, {2}, {4, -1}}
	r, err := New(clauses)
	require.NoError(t, err)

	model, ok, err := r.ModelWith(-1)
	require.NoError(t, err)
	require.True(t, ok)
	assertValidModel(t, clauses, model)
	assert.Equal(t, -1, model[0])
	assert.Equal(t, 3, model[2]) // {1,3} with 1 false forces 3

	model, ok, err = r.ModelWith(1)
	require.NoError(t, err)
	require.True(t, ok)
	assertValidModel(t, clauses, model)
	assert.Equal(t, 4, model[3]) // {4,-1} with 1 true forces 4

	_, ok, err = r.ModelWith(1, -4)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestEmptyRuleSetModel(t *testing.T) {
	r, err := New(nil)
	require.NoError(t, err)

	model, ok, err := r.Model()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NotNil(t, model)
	assert.Len(t, model, 0)
}

func TestQueryIdempotence(t *testing.T) {
	r, err := New([][]int{{-1, 2}, {-2, 1}})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		sat, err := r.SatisfiableWith(1, -2)
		require.NoError(t, err)
		assert.False(t, sat)

		sat, err = r.Satisfiable()
		require.NoError(t, err)
		assert.True(t, sat)
	}
}

func TestWithOracle(t *testing.T) {
	r, err := New(nil, WithOracle(stubOracle{highest: 7}))
	require.NoError(t, err)
	assert.Equal(t, 7, r.HighestVariable())

	sat, err := r.Satisfiable()
	require.NoError(t, err)
	assert.True(t, sat)
}

// assertValidModel checks the bit-exact model contract: position i-1
// holds exactly +i or -i, and every clause is satisfied.
func assertValidModel(t *testing.T, clauses [][]int, model []int) {
	t.Helper()
	for i, lit := range model {
		if lit != i+1 && lit != -(i+1) {
			t.Fatalf("position %d holds %d, want %d or %d", i, lit, i+1, -(i + 1))
		}
	}
	for _, clause := range clauses {
		satisfied := false
		for _, lit := range clause {
			v := lit
			if v < 0 {
				v = -v
			}
			if model[v-1] == lit {
				satisfied = true
				break
			}
		}
		if !satisfied {
			t.Fatalf("model %v does not satisfy clause %v", model, clause)
		}
	}
}

type stubOracle struct {
	highest int
}

func (o stubOracle) AddClause([]int) error { return nil }

func (o stubOracle) Satisfiable() (bool, error) { return true, nil }

func (o stubOracle) SatisfiableAssuming([]int) (bool, error) { return true, nil }

func (o stubOracle) SatisfiableUnderClauses([][]int) (bool, error) { return true, nil }

func (o stubOracle) ModelAssuming([]int) ([]int, bool, error) { return nil, false, nil }

func (o stubOracle) HighestVariable() int { return o.highest }
