// Package densolve solves dense square linear systems A·x = b by Gaussian
// elimination with partial pivoting, and tells you when not to trust the
// answer.
//
// 🚀 What is densolve?
//
//	A small, deterministic library for the classic factor-then-solve
//	workflow of simulation codes and numerical routines:
//		• LU factorization: in-place elimination with partial pivoting
//		• Condition estimate: one LINPACK-style inverse-iteration step,
//		  so near-singular systems are flagged instead of silently solved
//		• Triangular solves: permutation replay, forward elimination,
//		  back substitution against a retained factorization
//		• Derived queries: determinant, pivot record, status
//
// ✨ Why choose densolve?
//
//   - Explicit singularity detection – a status and a condition number,
//     never a silent wrong answer
//   - Owned buffers – each Factorizer owns its factor storage and pivot
//     record; each Solver owns its working vector; no hidden sharing
//   - Pure Go – no cgo, deterministic single pass, no global state
//
// Under the hood, everything is organized under two subpackages:
//
//	dense/ — row-major float64 storage with an explicit row stride
//	lu/    — the Factorizer / Solver pair and the condition estimator
//
// Quick sketch:
//
//	f := lu.NewFactorizer()
//	cond, err := f.Factor(m)      // m stays intact; f owns the factors
//	s := lu.NewSolver(f)
//	err = s.Solve(b)              // b becomes the solution x
//
// Dive into README.md and the package example tests for full walkthroughs.
//
//	go get github.com/katalvlaran/densolve/lu
package densolve
