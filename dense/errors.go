// SPDX-License-Identifier: MIT
// Package dense: sentinel error set.
// This file defines ONLY package-level sentinel errors. All constructors and
// accessors MUST return these sentinels and tests MUST check them via
// errors.Is. No function in this package panics on user-triggered conditions.

package dense

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "dense: ..." for consistency and to allow
// easy grepping across logs. Do not %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.

var (
	// ErrInvalidDimensions indicates that requested dimensions are
	// non-positive, or that a backing slice is too short for the requested
	// shape and stride.
	ErrInvalidDimensions = errors.New("dense: invalid dimensions")

	// ErrStrideTooSmall indicates that a row stride smaller than the column
	// count was requested; rows would overlap.
	ErrStrideTooSmall = errors.New("dense: stride smaller than column count")

	// ErrIndexOutOfBounds indicates that a row or column index is outside
	// the logical shape. Public indexers (At/Set/Row) MUST return this,
	// not panic.
	ErrIndexOutOfBounds = errors.New("dense: index out of bounds")

	// ErrRagged indicates that FromRows received rows of differing lengths.
	ErrRagged = errors.New("dense: ragged rows")

	// ErrNonSquare signals that a square matrix was required but the input
	// wasn't.
	ErrNonSquare = errors.New("dense: matrix is not square")

	// ErrNilMatrix indicates that a nil *Matrix was used where a value is
	// required.
	ErrNilMatrix = errors.New("dense: nil matrix")
)
