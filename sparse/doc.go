// Package sparse implements the list-of-lists (LIL) sparse matrix
// container and the row-level primitives shared by the multiply
// kernels.
//
// The sparse package provides:
//
//   - Entry / Row — one stored value and one ordered row. Rows keep
//     strictly increasing column indices with no duplicates; absence is
//     the algebraic identity, explicit zeros are legal stored values
//     (min-plus needs a stored 0 on the diagonal, for example).
//   - Matrix[T] — fixed-shape matrix as one Row per row index with a
//     cached nonzero count. Rows are independently replaceable
//     (SetRow), mergeable with a combiner (MergeRow), and whole
//     matrices support Clear, Swap, Clone, Build and ExtractTuples.
//   - Row primitives — Dot (semiring-reduced product of two rows),
//     MaskCursor (amortized O(|row|) advance-and-check mask scanning),
//     MaskedMerge and MaskedAccum (the "z" replace/merge write-back
//     building blocks).
//
// Matrices are exclusively owned by their caller: nothing in this
// package retains a reference past the call, and SetRow/MergeRow copy
// their input rows.
//
// All mutators validate fail-fast and return package sentinels
// (errors.Is-matchable); no public operation panics on user data.
package sparse
