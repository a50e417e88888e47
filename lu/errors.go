// SPDX-License-Identifier: MIT
// Package lu: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the lu
// package. All routines MUST return these sentinels and tests MUST check
// them via errors.Is. No routine panics on user-triggered error conditions;
// panics are reserved for programmer errors in option constructors.

package lu

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "lu: ..." for consistency and to allow easy
// grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.
//
// ERROR PRIORITY (documented, enforced in tests):
// bad input -> workspace -> singular; Solve/Det check binding state before
// rhs length.

var (
	// ErrBadMatrix is returned when the input matrix is nil, empty, or not
	// square. Raised before any mutation of the Factorizer; a prior
	// factorization, if any, remains bound and usable.
	ErrBadMatrix = errors.New("lu: matrix must be non-empty and square")

	// ErrWorkspace is returned when the n-element scratch workspace cannot
	// be obtained (a caller-supplied slice from WithWorkspace is too
	// short). Raised before any mutation of the Factorizer.
	ErrWorkspace = errors.New("lu: cannot obtain scratch workspace")

	// ErrSingular reports that the matrix is singular to working precision.
	// Factor still records the condition sentinel and retains the (possibly
	// unfinished) factor buffer; the caller decides whether to proceed.
	ErrSingular = errors.New("lu: matrix is singular to working precision")

	// ErrSizeMismatch indicates that a right-hand-side vector length does
	// not match the factorization order.
	ErrSizeMismatch = errors.New("lu: right-hand side length does not match factorization order")

	// ErrNotFactored indicates that no factorization is bound yet.
	ErrNotFactored = errors.New("lu: no factorization bound")

	// ErrSingularFactor indicates that a solve or determinant was attempted
	// against a factorization flagged singular. The factor buffer of a
	// singular factorization may be unfinished; results would be
	// meaningless, so the operation is refused outright.
	ErrSingularFactor = errors.New("lu: factorization is singular, refusing to use it")
)

// StatusOf maps a Factor error to the status taxonomy. A nil error maps to
// StatusOK. Unrecognized errors map to StatusBadInput, the catch-all for
// caller mistakes.
func StatusOf(err error) Status {
	switch {
	case err == nil:
		return StatusOK
	case errors.Is(err, ErrWorkspace):
		return StatusAllocFailed
	case errors.Is(err, ErrSingular):
		return StatusSingular
	default:
		return StatusBadInput
	}
}
