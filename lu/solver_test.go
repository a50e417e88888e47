package lu_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/densolve/lu"
)

// TestSolve_Basic verifies a hand-checked 2×2 system: x = [1, 1].
func TestSolve_Basic(t *testing.T) {
	f := lu.NewFactorizer()
	_, err := f.Factor(mustMatrix(t, [][]float64{{2, 1}, {1, 3}}))
	require.NoError(t, err)

	b := []float64{3, 4}
	require.NoError(t, lu.NewSolver(f).Solve(b))

	assert.InDelta(t, 1.0, b[0], 1e-9)
	assert.InDelta(t, 1.0, b[1], 1e-9)
}

// TestSolve_PermutationReplay exercises a system whose first pivot must come
// from row 1; the anti-diagonal matrix is its own inverse, so the expected
// solution is exactly the swapped right-hand side.
func TestSolve_PermutationReplay(t *testing.T) {
	f := lu.NewFactorizer()
	_, err := f.Factor(mustMatrix(t, [][]float64{{0, 1}, {1, 0}}))
	require.NoError(t, err)

	pivots := f.Pivots()
	require.Len(t, pivots, 2)
	assert.Equal(t, 1, pivots[0], "column 0 must pivot on row 1")
	assert.Equal(t, -1, pivots[1], "one interchange flips the parity")

	det, err := f.Det()
	require.NoError(t, err)
	assert.Equal(t, -1.0, det)

	b := []float64{2, 5}
	require.NoError(t, lu.NewSolver(f).Solve(b))
	assert.Equal(t, []float64{5, 2}, b, "anti-diagonal solve is an exact swap")
}

// TestSolve_Preconditions verifies the binding-state and length checks, and
// that every failure leaves the caller's vector untouched.
func TestSolve_Preconditions(t *testing.T) {
	f := lu.NewFactorizer()
	s := lu.NewSolver(f)

	b := []float64{1, 2}
	assert.ErrorIs(t, s.Solve(b), lu.ErrNotFactored)
	assert.Equal(t, []float64{1, 2}, b)

	_, err := f.Factor(mustMatrix(t, [][]float64{{2, 1}, {1, 3}}))
	require.NoError(t, err)

	short := []float64{1}
	assert.ErrorIs(t, s.Solve(short), lu.ErrSizeMismatch)
	assert.Equal(t, []float64{1}, short)

	_, err = f.Factor(mustMatrix(t, [][]float64{{1, 1}, {1, 1}}))
	assert.ErrorIs(t, err, lu.ErrSingular)
	assert.ErrorIs(t, s.Solve(b), lu.ErrSingularFactor,
		"a Solver must refuse the singular factorization it is bound to")
	assert.Equal(t, []float64{1, 2}, b, "failed solve must not touch the rhs")

	assert.Panics(t, func() { lu.NewSolver(nil) })
}

// TestSolve_ManyRightHandSides verifies the factor-once/solve-many workflow
// against the gonum oracle, with the residual bounded by the condition
// estimate (machine epsilon × cond × ‖b‖).
func TestSolve_ManyRightHandSides(t *testing.T) {
	const n = 10
	rng := rand.New(rand.NewSource(42))
	rows := randomDominant(rng, n)

	f := lu.NewFactorizer()
	cond, err := f.Factor(mustMatrix(t, rows))
	require.NoError(t, err)

	a := mat.NewDense(n, n, flatten(rows))
	s := lu.NewSolver(f)

	for trial := 0; trial < 5; trial++ {
		b := make([]float64, n)
		for i := range b {
			b[i] = 2*rng.Float64() - 1
		}
		orig := append([]float64(nil), b...)

		require.NoError(t, s.Solve(b))

		// Residual bound: ‖A·x − b‖∞ ≤ small multiple of ε·cond·‖b‖∞.
		bnorm := 0.0
		for _, v := range orig {
			bnorm = math.Max(bnorm, math.Abs(v))
		}
		limit := 64 * lu.Epsilon * cond * bnorm
		for i := 0; i < n; i++ {
			r := -orig[i]
			for j := 0; j < n; j++ {
				r += rows[i][j] * b[j]
			}
			assert.LessOrEqual(t, math.Abs(r), limit, "residual too large at row %d, trial %d", i, trial)
		}

		// Cross-check the solution against gonum.
		var want mat.VecDense
		require.NoError(t, want.SolveVec(a, mat.NewVecDense(n, orig)))
		for i := 0; i < n; i++ {
			assert.InDelta(t, want.AtVec(i), b[i], 1e-9, "solution mismatch at %d, trial %d", i, trial)
		}
	}
}

// TestSolve_WritesBack pins the write-back contract: the caller's slice
// holds the solution after a successful solve, not a stale copy.
func TestSolve_WritesBack(t *testing.T) {
	f := lu.NewFactorizer()
	_, err := f.Factor(mustMatrix(t, [][]float64{{5}}))
	require.NoError(t, err)

	b := []float64{10}
	require.NoError(t, lu.NewSolver(f).Solve(b))
	assert.Equal(t, []float64{2}, b)
}
