// Package mxm implements masked, accumulated sparse matrix multiply
// with an implicitly transposed right operand:
//
//	C<M,z> = C accum (A +.* Bᵀ)
//
// Because B is row-transposed, every output cell C[i][j] is the
// semiring dot product of row i of A with row j of B — row-vs-row, no
// column access anywhere.
//
// Six entry points cover the masking/accumulation combinations:
//
//	NoMaskNoAccum    C = A +.* Bᵀ
//	NoMaskAccum      C = C accum (A +.* Bᵀ)
//	MaskNoAccum      C<M,z>  = A +.* Bᵀ
//	MaskAccum        C<M,z>  = C accum (A +.* Bᵀ)
//	CompMaskNoAccum  C<¬M,z> = A +.* Bᵀ
//	CompMaskAccum    C<¬M,z> = C accum (A +.* Bᵀ)
//
// Masks are structural: only the presence of a column gates a write,
// never its value. The "z" descriptor is the replace flag
// (WithReplace): replace discards prior C entries outside the mask,
// merge (the default) preserves them.
//
// Each entry point short-circuits on provably empty work, guards the
// one supported aliasing case (C and B being the same matrix) through
// a call-scoped temporary, and otherwise writes whole rows directly
// into C. All other operand aliasing (A with C, M with anything) is
// out of contract. Everything is single-threaded and deterministic:
// fixed row order, fixed column order, no global state.
//
// Shape preconditions are validated fail-fast at every entry point:
// A.NCols == B.NCols, C.NRows == A.NRows, C.NCols == B.NRows, and the
// mask (when present) has C's shape. Algebraic emptiness — empty
// operands, empty masks, dot products over disjoint patterns — is
// never an error.
package mxm
