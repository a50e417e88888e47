// SPDX-License-Identifier: MIT
// Package lu: status taxonomy, numeric policy constants, and functional
// configuration for the Factorizer. Defaults are documented constants;
// WithX constructors validate strongly and panic on nonsensical values
// (programmer error, not runtime input).

package lu

import (
	"fmt"
	"math"
)

// Status classifies the outcome of the most recent successful rebind of a
// Factorizer. Values mirror the classic decomp flag taxonomy.
//
//   - StatusOK          — factorization complete and numerically trustworthy.
//   - StatusAllocFailed — scratch workspace could not be obtained.
//   - StatusBadInput    — nil, empty, or non-square input.
//   - StatusSingular    — singular to working precision; the factor buffer
//     may be only partially complete and MUST NOT be solved against.
type Status int

const (
	// StatusOK marks a complete, trustworthy factorization.
	StatusOK Status = iota

	// StatusAllocFailed marks a workspace-acquisition failure.
	StatusAllocFailed

	// StatusBadInput marks malformed input (nil, empty, or non-square).
	StatusBadInput

	// StatusSingular marks a matrix singular to working precision.
	StatusSingular
)

// String implements fmt.Stringer for logs and test failure messages.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusAllocFailed:
		return "allocation failed"
	case StatusBadInput:
		return "bad input"
	case StatusSingular:
		return "singular"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Numeric policy.
const (
	// Epsilon is the machine-epsilon scale for float64 near-zero tests.
	// A pivot or diagonal below Norm1(A)·Epsilon is treated as zero.
	Epsilon = 2.2e-16

	// CondSingular is the condition-estimate sentinel reported when exact
	// or near singularity is detected.
	CondSingular = 1.0e+32
)

// options carries the internal configuration state; fields are unexported,
// public APIs consume ...Option.
type options struct {
	workspace []float64 // caller-supplied scratch, nil means allocate per call
	epsilon   float64   // near-zero threshold scale, > 0 and finite
}

// defaultOptions returns the documented defaults.
func defaultOptions() options {
	return options{workspace: nil, epsilon: Epsilon}
}

// Option mutates the Factorizer configuration at construction time.
type Option func(*options)

// WithWorkspace makes the Factorizer use ws as its scratch workspace instead
// of allocating one per Factor call, enabling allocation-free refactoring in
// steady state. A Factor call on a matrix of order n fails with ErrWorkspace
// when len(ws) < n, leaving any prior factorization untouched.
//
// Panics when ws is nil (programmer error: pass no option instead).
func WithWorkspace(ws []float64) Option {
	if ws == nil {
		panic("lu: WithWorkspace: nil workspace")
	}

	return func(o *options) { o.workspace = ws }
}

// WithEpsilon overrides the near-zero threshold scale used for pivot and
// diagonal tests. Larger values declare singularity more eagerly; the
// default is the float64 machine epsilon.
//
// Panics when eps is non-positive, NaN, or infinite (programmer error).
func WithEpsilon(eps float64) Option {
	if eps <= 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic(fmt.Sprintf("lu: WithEpsilon: invalid epsilon %v", eps))
	}

	return func(o *options) { o.epsilon = eps }
}
