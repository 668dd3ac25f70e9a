// Package apsp computes all-pairs shortest paths over the min-plus
// (tropical) semiring, built entirely on the mxm core.
//
// The distance matrix starts as the edge-length matrix with a zero
// diagonal and is repeatedly squared under (min, +):
//
//	D' = D min.+ Dᵀᵀ = D min.+ D
//
// Each squaring doubles the maximum path length captured, so the
// fixpoint is reached in at most ⌈log₂ n⌉ rounds. Unreachable pairs
// simply stay absent — absence is the semiring's +Inf, no sentinel
// value is ever stored — while the zero diagonal is a stored explicit
// zero.
//
// This package doubles as the reference consumer of the multiply core:
// one semiring swap turns ordinary matrix multiplication into a
// shortest-path solver.
package apsp
