// Package gbtl is a sparse linear-algebra playground in the GraphBLAS
// style: list-of-lists sparse matrices, user-supplied semirings, and a
// masked, accumulated matrix-multiply core.
//
// 🚀 What is gbtl?
//
//	A deterministic, single-threaded library that brings together:
//		• algebra/ — binary operators, accumulators and semirings
//		  (plus-times, min-plus, max-min, or-and) over generic scalars
//		• sparse/  — the LIL (list-of-lists) sparse matrix container with
//		  sorted, duplicate-free rows, plus the row-level primitives:
//		  semiring dot products, masked merge and masked accumulate
//		• mxm/     — the core: C<M,z> = C accum (A +.* Bᵀ) in six
//		  masked/accumulated variants with short-circuit and
//		  aliasing-safety rules
//		• apsp/    — all-pairs shortest paths by min-plus squaring,
//		  built entirely on the mxm core
//
// ✨ Why choose gbtl?
//
//   - Explicit algebra – every reduction names its semiring; nothing is
//     hard-wired to (+, ×)
//   - Rock-solid sparse semantics – absence is the identity, explicit
//     zeros survive, rows stay sorted and duplicate-free
//   - Deterministic – fixed loop orders, no global state, no
//     data-dependent reordering
//   - Pure Go – no cgo, generics for scalar types
//
// Quick sketch (plus-times, no mask, replace):
//
//	A (2×3)          Bᵀ (3×2)         C = A +.* Bᵀ
//	[1 . 2]          [1 .]            [1 4]
//	[. . .]    ×     [. .]      =     [. .]
//	                 [. 2]
//
// Start with sparse.New and algebra.PlusTimes, then call
// mxm.NoMaskNoAccum. See each package's doc.go and examples.
package gbtl
