// Package lu factors dense square matrices by Gaussian elimination with
// partial pivoting and solves linear systems A·x = b against the retained
// factorization, estimating the condition number along the way.
//
// What:
//
//   - Factorizer consumes a dense.Matrix and produces an owned combined
//     L/U buffer, a row-permutation record, a condition estimate, and a
//     status. The caller's matrix is copied in and never mutated.
//   - Solver consumes a Factorizer's factors plus a right-hand-side vector
//     and produces the solution in place: permutation replay, forward
//     elimination, back substitution.
//   - Det recovers the determinant from the pivot parity and the diagonal.
//
// Why:
//
//   - Simulation codes factor once and solve many right-hand sides; the
//     factor/solve split avoids re-eliminating per solve.
//   - The condition estimate (one LINPACK-style inverse-iteration step on
//     the 1-norm) flags near-singular systems explicitly instead of letting
//     them degrade into silently wrong answers.
//
// Algorithm, after Forsythe, Malcolm & Moler, "Computer Methods for
// Mathematical Computations":
//
//  1. anorm = 1-norm of the pre-elimination matrix; all near-zero tests
//     are scaled by anorm·ε.
//  2. For k = 0..n-2: pick the largest-magnitude pivot in column k, swap
//     rows, store multipliers in the eliminated sub-column, update the
//     trailing block. A pivot below anorm·ε terminates early as singular.
//  3. Solve Aᵀ·y = e through the stored factors with growth-maximizing
//     unit signs, then A·z = y with the ordinary solve kernel;
//     cond = anorm·‖z‖₁/‖y‖₁, floored at 1. cond+1 == cond in float64
//     means singular to working precision even when elimination finished.
//
// Errors:
//
//   - ErrBadMatrix: nil, empty, or non-square input; nothing is mutated.
//   - ErrWorkspace: scratch workspace unobtainable; prior state intact.
//   - ErrSingular: singular to working precision; the condition estimate
//     is CondSingular and the factor buffer may be only partially complete.
//   - ErrSizeMismatch, ErrNotFactored, ErrSingularFactor: Solve/Det
//     preconditions.
//
// Complexity:
//
//   - Factor: O(n³) time, O(n²) memory (owned factor buffer) + O(n) scratch.
//   - Solve:  O(n²) time, no steady-state allocation.
//
// Concurrency: instances are single-threaded by contract. A Factorizer
// exclusively owns its factor buffer and pivot record, a Solver its working
// vector; use independent instances for concurrent solves.
//
// See example_test.go for full walkthroughs.
package lu
