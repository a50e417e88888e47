// SPDX-License-Identifier: MIT

package lu

import (
	"fmt"
	"math"

	"github.com/katalvlaran/densolve/dense"
)

// Factorizer owns the combined L/U factor buffer and the row-permutation
// record produced from one input matrix at a time. Factor releases and
// reallocates both on every call, so re-factoring never aliases prior state.
//
// The zero value is not bound to any factorization; NewFactorizer applies
// options on top of it. A Factorizer is single-threaded by contract.
type Factorizer struct {
	opts   options
	n      int       // order of the bound factorization, 0 when unbound
	stride int       // row stride of the factor buffer, stride >= n
	lum    []float64 // combined factors: multipliers below, U on/above the diagonal
	pivot  []int     // pivot[k] = pivot row of step k; pivot[n-1] = interchange parity ±1
	cond   float64   // condition estimate of the bound factorization
	status Status    // outcome of the bound factorization
}

// NewFactorizer constructs an unbound Factorizer with the given options.
func NewFactorizer(opts ...Option) *Factorizer {
	f := &Factorizer{opts: defaultOptions()}
	for _, opt := range opts {
		opt(&f.opts)
	}

	return f
}

// luErrorf wraps err with an operation tag, preserving the sentinel for
// errors.Is. Use only when err != nil.
func luErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// Operation name constants for unified error wrapping.
const (
	opFactor = "Factor"
	opSolve  = "Solve"
	opDet    = "Det"
)

// Factor copies m into an owned buffer, triangularizes it in place by
// Gaussian elimination with partial pivoting, and estimates the condition
// number of m. The caller's matrix is never mutated; the previous
// factorization owned by f, if any, is released first (rebind).
//
// On success the owned buffer holds an upper triangular U and a permuted
// version of I−L such that P·A = L·U, and cond is the estimated 1-norm
// condition number, floored at 1. For the linear system A·x = b, relative
// changes in A and b may cause relative changes cond times as large in x.
//
// Failure modes:
//   - ErrBadMatrix (nil, empty, or non-square m) and ErrWorkspace (scratch
//     unobtainable under WithWorkspace): fail fast, f keeps whatever
//     factorization it held before the call.
//   - ErrSingular: cond is CondSingular (or cond+1 == cond), the rebind has
//     happened, and the factor buffer may be only partially eliminated;
//     Solve and Det refuse such a factorization.
//
// Complexity: O(n³) time, O(n²) owned memory, O(n) scratch.
func (f *Factorizer) Factor(m *dense.Matrix) (float64, error) {
	// Fail fast on malformed input; nothing is mutated past this point
	// until the workspace is secured.
	if err := dense.ValidateSquare(m); err != nil {
		return 0, luErrorf(opFactor, ErrBadMatrix)
	}
	n := m.Rows()

	// Secure the scratch workspace before the rebind so an undersized
	// caller-supplied slice cannot cost us the prior factorization.
	work, err := f.scratch(n)
	if err != nil {
		return 0, luErrorf(opFactor, err)
	}

	// Rebind: release prior buffers, then copy the input into owned,
	// contiguous storage. In-place elimination destroys the copy, not m.
	f.release()
	f.n, f.stride = n, n
	f.lum = make([]float64, n*n)
	f.pivot = make([]int, n)
	src, srcStride := m.Data(), m.Stride()
	for i := 0; i < n; i++ {
		copy(f.lum[i*n:(i+1)*n], src[i*srcStride:i*srcStride+n])
	}

	cond, derr := f.decompose(work)
	f.cond = cond
	f.status = StatusOf(derr)
	if derr != nil {
		return cond, luErrorf(opFactor, derr)
	}

	return cond, nil
}

// release drops the owned buffers of the previous factorization. Called on
// every rebind so stale factors can never be observed through the queries.
func (f *Factorizer) release() {
	f.n, f.stride = 0, 0
	f.lum, f.pivot = nil, nil
	f.cond = 0
	f.status = StatusOK
}

// scratch obtains the n-element workspace: the caller-supplied slice when
// WithWorkspace was given, a fresh allocation otherwise. The workspace is
// handed to decompose for the duration of one Factor call and referenced
// nowhere else, so it is released on every exit path by scope alone.
func (f *Factorizer) scratch(n int) ([]float64, error) {
	if f.opts.workspace != nil {
		if len(f.opts.workspace) < n {
			return nil, ErrWorkspace
		}

		return f.opts.workspace[:n], nil
	}

	return make([]float64, n), nil
}

// decompose runs the elimination and the condition estimate over the bound
// buffer. It returns the condition estimate and ErrSingular when exact or
// near singularity is detected; on early singular exits the buffer is left
// in its current, unfinished state.
func (f *Factorizer) decompose(work []float64) (float64, error) {
	n, stride, a := f.n, f.stride, f.lum
	eps := f.opts.epsilon

	f.pivot[n-1] = 1
	if n == 1 {
		// One element only.
		if a[0] == 0 {
			return CondSingular, ErrSingular
		}

		return 1.0, nil
	}

	// 1-norm of the pre-elimination matrix; scales all near-zero tests.
	anorm := 0.0
	for j := 0; j < n; j++ {
		t := 0.0
		for i := 0; i < n; i++ {
			t += math.Abs(a[i*stride+j])
		}
		if t > anorm {
			anorm = t
		}
	}

	// Gaussian elimination with partial pivoting.
	for k := 0; k < n-1; k++ {
		// Pivot row m: largest magnitude in the lower part of column k.
		m := k
		pvt := math.Abs(a[k*stride+k])
		for i := k + 1; i < n; i++ {
			if t := math.Abs(a[i*stride+k]); t > pvt {
				m, pvt = i, t
			}
		}
		f.pivot[k] = m

		if m != k {
			// Interchange rows m and k over the lower partition and
			// flip the accumulated parity.
			f.pivot[n-1] = -f.pivot[n-1]
			for j := k; j < n; j++ {
				a[m*stride+j], a[k*stride+j] = a[k*stride+j], a[m*stride+j]
			}
		}
		// Row k is now the pivot row.
		pivotValue := a[k*stride+k]

		if math.Abs(pivotValue) < anorm*eps {
			// Singular or nearly singular: stop here, buffer unfinished.
			return CondSingular, ErrSingular
		}

		// Eliminate the lower partition by rows, storing each multiplier
		// in the slot it just zeroed. Multipliers negligible against
		// anorm·eps contribute nothing; skip their row updates.
		for i := k + 1; i < n; i++ {
			t := -(a[i*stride+k] / pivotValue)
			a[i*stride+k] = t
			if math.Abs(t) > anorm*eps {
				for j := k + 1; j < n; j++ {
					a[i*stride+j] += a[k*stride+j] * t
				}
			}
		}
	}

	return f.estimateCondition(work, anorm)
}

// estimateCondition performs one step of inverse iteration on the 1-norm,
// LINPACK-style: cond = anorm · (estimate of ‖A⁻¹‖₁). The estimate solves
// Aᵀ·y = e through the stored factors, with each unit component of e signed
// to maximize growth, then A·z = y with the ordinary solve kernel;
// the estimate is ‖z‖₁/‖y‖₁.
func (f *Factorizer) estimateCondition(work []float64, anorm float64) (float64, error) {
	n, stride, a := f.n, f.stride, f.lum
	eps := f.opts.epsilon

	// Solve Uᵀ·w = e, choosing each e component in {+1,−1} against the
	// running dot product. A near-zero diagonal here is singularity that
	// elimination alone cannot observe.
	for k := 0; k < n; k++ {
		t := 0.0
		for i := 0; i < k; i++ {
			t += a[i*stride+k] * work[i]
		}
		ek := 1.0
		if t < 0 {
			ek = -1.0
		}
		d := a[k*stride+k]
		if math.Abs(d) < anorm*eps {
			return CondSingular, ErrSingular
		}
		work[k] = -(ek + t) / d
	}

	// Apply (I−L)ᵀ and replay the interchanges to finish y.
	for k := n - 2; k >= 0; k-- {
		t := 0.0
		for i := k + 1; i < n; i++ {
			t += a[i*stride+k] * work[i]
		}
		work[k] = t
		if m := f.pivot[k]; m != k {
			work[m], work[k] = work[k], work[m]
		}
	}

	ynorm := 0.0
	for i := 0; i < n; i++ {
		ynorm += math.Abs(work[i])
	}

	// Solve A·z = y with the ordinary factorization.
	solveInPlace(n, stride, a, f.pivot, work)

	znorm := 0.0
	for i := 0; i < n; i++ {
		znorm += math.Abs(work[i])
	}

	cond := anorm * znorm / ynorm
	if cond < 1.0 {
		cond = 1.0
	}
	if cond+1.0 == cond {
		// Invertible on paper, singular to working precision.
		return cond, ErrSingular
	}

	return cond, nil
}

// Order returns the order of the bound factorization, 0 when unbound.
func (f *Factorizer) Order() int { return f.n }

// Cond returns the condition estimate of the bound factorization;
// meaningful only after Factor.
func (f *Factorizer) Cond() float64 { return f.cond }

// Status returns the outcome of the bound factorization; meaningful only
// after Factor.
func (f *Factorizer) Status() Status { return f.status }

// Pivots returns a copy of the row-permutation record: entries 0..n-2 hold
// the pivot-row index chosen at each elimination step, entry n-1 holds the
// accumulated interchange parity, +1 or −1. Returns nil when unbound.
func (f *Factorizer) Pivots() []int {
	if f.n == 0 {
		return nil
	}
	out := make([]int, f.n)
	copy(out, f.pivot)

	return out
}

// Det recovers the determinant of the factored matrix as the interchange
// parity times the product of the diagonal entries of U.
//
// Fails with ErrNotFactored when unbound and ErrSingularFactor when the
// bound factorization is singular (its buffer may be unfinished, so the
// diagonal product would be meaningless).
func (f *Factorizer) Det() (float64, error) {
	if f.n == 0 {
		return 0, luErrorf(opDet, ErrNotFactored)
	}
	if f.status == StatusSingular {
		return 0, luErrorf(opDet, ErrSingularFactor)
	}

	det := float64(f.pivot[f.n-1])
	for i := 0; i < f.n; i++ {
		det *= f.lum[i*f.stride+i]
	}

	return det, nil
}
