// Package algebra defines the pluggable algebraic objects consumed by
// the sparse kernels: binary operators (combiners and accumulators) and
// semirings.
//
// The algebra package provides:
//
//   - BinaryOp[T] — a plain binary operator over one scalar type; used
//     both as the accumulator in masked/accumulated multiplies and as
//     the duplicate combiner during tuple ingestion.
//   - Semiring[T, R] — the "+.*" pairing: a multiplicative operator
//     T×T→R and an additive combine R×R→R. The additive operator must
//     be associative and commutative; the kernels rely on it to reduce
//     dot-product terms in column order.
//   - A stock catalog: Plus, Times, Min, Max, First, Second operators
//     and PlusTimes, MinPlus, MaxMin, OrAnd semirings.
//
// There is no explicit additive identity anywhere: "no term produced"
// is signalled out of band (sparse.Dot's ok result), so absence never
// needs a sentinel value.
package algebra
