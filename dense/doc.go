// Package dense provides row-major float64 matrix storage with an explicit
// row stride, the buffer type consumed by the lu factorization package.
//
// What:
//
//   - Matrix wraps a flat []float64 of logical shape rows×cols whose rows
//     start every stride elements (stride ≥ cols).
//   - New allocates zeroed storage; FromRows copies a [][]float64 in;
//     NewStrided views a sub-block of caller-owned storage without copying.
//   - At/Set are bounds-checked; Row hands out a mutable row view for
//     kernels that sweep rows; Norm1 computes the matrix 1-norm.
//
// Why:
//
//   - Elimination kernels want contiguous cache-friendly rows, not [][].
//   - The stride field keeps "factor a sub-block of a larger allocation"
//     possible even when callers always pass stride == cols.
//
// Errors:
//
//   - ErrInvalidDimensions: non-positive shape or undersized backing slice.
//   - ErrStrideTooSmall: stride < cols.
//   - ErrIndexOutOfBounds: row or column index outside the logical shape.
//   - ErrRagged: FromRows input rows differ in length.
//   - ErrNonSquare: a square matrix was required but rows != cols.
//   - ErrNilMatrix: a nil *Matrix was passed where a value is required.
//
// Complexity: all accessors O(1); constructors and Norm1 O(rows·cols).
package dense
