// SPDX-License-Identifier: MIT

package lu

// Solver computes solutions of A·x = b against the factorization bound in
// one Factorizer. It owns a working vector for the duration of each solve,
// reused across calls, so steady-state solving does not allocate.
//
// A Solver is single-threaded by contract; use independent Solver (and
// Factorizer) instances for concurrent solves.
type Solver struct {
	f    *Factorizer
	work []float64 // owned working copy of the right-hand side
}

// NewSolver binds a Solver to f. The Factorizer does not need to be
// factored yet; Solve checks the binding state per call, so one Solver can
// follow f through successive rebinds.
//
// Panics when f is nil (programmer error).
func NewSolver(f *Factorizer) *Solver {
	if f == nil {
		panic("lu: NewSolver: nil Factorizer")
	}

	return &Solver{f: f}
}

// Solve overwrites rhs with the solution x of A·x = rhs, where A is the
// matrix factored by the bound Factorizer. The computation runs on an owned
// working copy and is written back to rhs only on success, so a failed
// solve leaves the caller's slice untouched.
//
// Historical note: the classic decomp/solve pairing left the result in an
// internal buffer and never surfaced it; writing the solution back into rhs
// is a deliberate correction here.
//
// Failure modes:
//   - ErrNotFactored: the Factorizer has no bound factorization.
//   - ErrSingularFactor: the bound factorization is singular; its buffer
//     may be unfinished and any "solution" would be numerically
//     meaningless, so the solve is refused.
//   - ErrSizeMismatch: len(rhs) differs from the factorization order.
//
// Complexity: O(n²) time, no steady-state allocation.
func (s *Solver) Solve(rhs []float64) error {
	n := s.f.n
	if n == 0 {
		return luErrorf(opSolve, ErrNotFactored)
	}
	if s.f.status == StatusSingular {
		return luErrorf(opSolve, ErrSingularFactor)
	}
	if len(rhs) != n {
		return luErrorf(opSolve, ErrSizeMismatch)
	}

	// Work on the owned copy; rhs stays intact until success.
	if cap(s.work) < n {
		s.work = make([]float64, n)
	}
	s.work = s.work[:n]
	copy(s.work, rhs)

	solveInPlace(n, s.f.stride, s.f.lum, s.f.pivot, s.work)
	copy(rhs, s.work)

	return nil
}

// solveInPlace solves a triangularized system in place over b: permutation
// replay with forward elimination, then back substitution. a and pivot come
// from a completed decomposition of order n with the given row stride.
// Shared by Solver.Solve and the condition estimator.
func solveInPlace(n, stride int, a []float64, pivot []int, b []float64) {
	if n == 1 {
		// Trivial.
		b[0] /= a[0]

		return
	}

	// Forward elimination: replay the row interchanges recorded during
	// elimination and apply the stored multipliers.
	for k := 0; k < n-1; k++ {
		m := pivot[k]
		t := b[m]
		b[m] = b[k]
		b[k] = t
		for i := k + 1; i < n; i++ {
			b[i] += a[i*stride+k] * t
		}
	}

	// Back substitution.
	for k := n - 1; k >= 0; k-- {
		t := b[k]
		for j := k + 1; j < n; j++ {
			t -= a[k*stride+j] * b[j]
		}
		b[k] = t / a[k*stride+k]
	}
}
