// SPDX-License-Identifier: MIT

// Package mxm: the six orchestration entry points.
//
// Purpose:
//   - Validate the shape contract fail-fast (this is the "calling
//     layer" of the kernel preconditions; kernels re-check nothing).
//   - Short-circuit before any work when emptiness makes the result
//     structurally known.
//   - Detect C/B aliasing by object identity and reroute through a
//     call-scoped temporary: the kernel then always runs in its
//     no-accum replace form, and the replace / merge / accum-then-merge
//     write-back replays row by row from the temporary against the
//     still-unmodified C.
//
// Determinism & Policy:
//   - Entry points never change the loop orders of the kernels.
//   - Early returns (validation failures, short-circuits) emit no
//     trace; a trace always describes a completed multiply.

package mxm

import (
	"github.com/wanbaocheng/gbtl/algebra"
	"github.com/wanbaocheng/gbtl/sparse"
)

// NoMaskNoAccum computes C = A +.* Bᵀ, overwriting C entirely.
//
// Implementation:
//   - Stage 1: validate shapes and the semiring.
//   - Stage 2: short-circuit — an empty A or B makes every dot product
//     empty, so C is simply cleared.
//   - Stage 3: run the kernel; if C and B are the same matrix, run it
//     into a temporary and swap, so row writes to C cannot clobber B
//     rows still to be read.
//
// The replace flag is meaningless without a mask and is ignored;
// options are still accepted for WithTrace.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrNilOperator.
//
// Complexity: O(A.NRows × B.NRows) row pairs, each O(|A[i]| + |B[j]|).
func NoMaskNoAccum[T, R any](
	c *sparse.Matrix[R],
	ring algebra.Semiring[T, R],
	a, b *sparse.Matrix[T],
	opts ...Option,
) error {
	if err := validateOperands(c, a, b); err != nil {
		return mxmErrorf(opNoMaskNoAccum, err)
	}
	if ring == nil {
		return mxmErrorf(opNoMaskNoAccum, ErrNilOperator)
	}
	o := gatherOptions(opts...)

	// C = (A +.* Bᵀ): nothing times nothing is nothing.
	if a.NVals() == 0 || b.NVals() == 0 {
		c.Clear()

		return nil
	}

	if aliased(c, b) {
		tmp, err := sparse.New[R](c.NRows(), c.NCols())
		if err != nil {
			return mxmErrorf(opNoMaskNoAccum, err)
		}
		noMaskNoAccumKernel(tmp, ring, a, b)
		_ = c.Swap(tmp) // same shape by construction
	} else {
		noMaskNoAccumKernel(c, ring, a, b)
	}

	o.emit(c)

	return nil
}

// NoMaskAccum computes C = C accum (A +.* Bᵀ).
//
// Implementation:
//   - Stage 1: validate shapes, semiring and accumulator.
//   - Stage 2: short-circuit — an empty A or B produces nothing to
//     accumulate, so C is returned unchanged.
//   - Stage 3: if C and B alias, the accumulation must see C's
//     original values: run the plain no-accum kernel into a temporary,
//     then MergeRow the temporary into C row by row. Otherwise run the
//     accumulating kernel directly.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrNilOperator.
//
// Complexity: as NoMaskNoAccum plus O(NVals) merge work.
func NoMaskAccum[T, R any](
	c *sparse.Matrix[R],
	accum algebra.BinaryOp[R],
	ring algebra.Semiring[T, R],
	a, b *sparse.Matrix[T],
	opts ...Option,
) error {
	if err := validateOperands(c, a, b); err != nil {
		return mxmErrorf(opNoMaskAccum, err)
	}
	if ring == nil || accum == nil {
		return mxmErrorf(opNoMaskAccum, ErrNilOperator)
	}
	o := gatherOptions(opts...)

	// C = C + (A +.* Bᵀ): nothing new to fold in.
	if a.NVals() == 0 || b.NVals() == 0 {
		return nil
	}

	if aliased(c, b) {
		tmp, err := sparse.New[R](c.NRows(), c.NCols())
		if err != nil {
			return mxmErrorf(opNoMaskAccum, err)
		}
		noMaskNoAccumKernel(tmp, ring, a, b)
		for i := 0; i < c.NRows(); i++ {
			_ = c.MergeRow(i, tmp.RowView(i), accum)
		}
	} else {
		noMaskAccumKernel(c, accum, ring, a, b)
	}

	o.emit(c)

	return nil
}

// MaskNoAccum computes C<M,z> = A +.* Bᵀ:
//
//	C =             [M .* (A +.* Bᵀ)]   z = replace
//	C = [¬M .* C] ∪ [M .* (A +.* Bᵀ)]   z = merge (default)
//
// Implementation:
//   - Stage 1: validate shapes (incl. the mask) and the semiring.
//   - Stage 2: short-circuits — with replace, empty A, B or M leaves
//     no surviving entry, so clear; without replace an empty M admits
//     no write at all, so C is returned unchanged.
//   - Stage 3: aliased C/B runs the kernel in replace form into a
//     temporary, then either swaps (replace) or masked-merges the
//     temporary against the original C rows (merge).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrNilOperator.
//
// Complexity: as NoMaskNoAccum; the mask prunes dot products.
func MaskNoAccum[T, R, TM any](
	c *sparse.Matrix[R],
	m *sparse.Matrix[TM],
	ring algebra.Semiring[T, R],
	a, b *sparse.Matrix[T],
	opts ...Option,
) error {
	if err := validateOperands(c, a, b); err != nil {
		return mxmErrorf(opMaskNoAccum, err)
	}
	if err := validateMask(c, m); err != nil {
		return mxmErrorf(opMaskNoAccum, err)
	}
	if ring == nil {
		return mxmErrorf(opMaskNoAccum, ErrNilOperator)
	}
	o := gatherOptions(opts...)

	if o.replace && (a.NVals() == 0 || b.NVals() == 0 || m.NVals() == 0) {
		c.Clear()

		return nil
	}
	if !o.replace && m.NVals() == 0 {
		return nil // nothing passes an empty mask; untouched columns survive
	}

	if aliased(c, b) {
		tmp, err := sparse.New[R](c.NRows(), c.NCols())
		if err != nil {
			return mxmErrorf(opMaskNoAccum, err)
		}
		maskNoAccumKernel(tmp, m, ring, a, b, true)

		if o.replace {
			_ = c.Swap(tmp)
		} else {
			for i := 0; i < c.NRows(); i++ {
				// C[i] = [¬M .* C] ∪ T[i]
				_ = c.SetRow(i, sparse.MaskedMerge(m.RowView(i), false, c.RowView(i), tmp.RowView(i)))
			}
		}
	} else {
		maskNoAccumKernel(c, m, ring, a, b, o.replace)
	}

	o.emit(c)

	return nil
}

// MaskAccum computes C<M,z> = C accum (A +.* Bᵀ):
//
//	C =             [M .* (C accum T)]   z = replace
//	C = [¬M .* C] ∪ [M .* (C accum T)]   z = merge (default)
//
// with T = A +.* Bᵀ.
//
// Implementation:
//   - Stage 1: validate shapes (incl. the mask), semiring, accumulator.
//   - Stage 2: short-circuit — an empty M admits nothing either way:
//     replace clears C, merge leaves it unchanged. Empty A or B does
//     NOT short here: masked accumulation must still re-emit C's
//     masked entries.
//   - Stage 3: aliased C/B computes T into a temporary via the
//     no-accum replace kernel, then replays Z = masked_accum(M, accum,
//     C, T) and the replace/merge write-back row by row.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrNilOperator.
func MaskAccum[T, R, TM any](
	c *sparse.Matrix[R],
	m *sparse.Matrix[TM],
	accum algebra.BinaryOp[R],
	ring algebra.Semiring[T, R],
	a, b *sparse.Matrix[T],
	opts ...Option,
) error {
	if err := validateOperands(c, a, b); err != nil {
		return mxmErrorf(opMaskAccum, err)
	}
	if err := validateMask(c, m); err != nil {
		return mxmErrorf(opMaskAccum, err)
	}
	if ring == nil || accum == nil {
		return mxmErrorf(opMaskAccum, ErrNilOperator)
	}
	o := gatherOptions(opts...)

	if m.NVals() == 0 {
		if o.replace {
			c.Clear()
		}

		return nil
	}

	if aliased(c, b) {
		tmp, err := sparse.New[R](c.NRows(), c.NCols())
		if err != nil {
			return mxmErrorf(opMaskAccum, err)
		}
		maskNoAccumKernel(tmp, m, ring, a, b, true)

		for i := 0; i < c.NRows(); i++ {
			mRow, cRow := m.RowView(i), c.RowView(i)
			// Z[i] = (M .* C) accum T[i]
			zRow := sparse.MaskedAccum(mRow, false, accum, cRow, tmp.RowView(i))
			if o.replace {
				_ = c.SetRow(i, zRow)
			} else {
				_ = c.SetRow(i, sparse.MaskedMerge(mRow, false, cRow, zRow))
			}
		}
	} else {
		maskAccumKernel(c, m, accum, ring, a, b, o.replace)
	}

	o.emit(c)

	return nil
}

// CompMaskNoAccum computes C<¬M,z> = A +.* Bᵀ:
//
//	C =            [¬M .* (A +.* Bᵀ)]   z = replace
//	C = [M .* C] ∪ [¬M .* (A +.* Bᵀ)]   z = merge (default)
//
// Implementation:
//   - Short-circuit — with replace, empty A or B leaves nothing (the
//     complement of an empty mask is "all", but empty operands still
//     produce no values), so clear. No merge-mode short-circuit: an
//     empty M under complement behaves like no mask at all.
//   - Aliased C/B handled as MaskNoAccum with complement semantics.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrNilOperator.
func CompMaskNoAccum[T, R, TM any](
	c *sparse.Matrix[R],
	m *sparse.Matrix[TM],
	ring algebra.Semiring[T, R],
	a, b *sparse.Matrix[T],
	opts ...Option,
) error {
	if err := validateOperands(c, a, b); err != nil {
		return mxmErrorf(opCompMaskNoAccum, err)
	}
	if err := validateMask(c, m); err != nil {
		return mxmErrorf(opCompMaskNoAccum, err)
	}
	if ring == nil {
		return mxmErrorf(opCompMaskNoAccum, ErrNilOperator)
	}
	o := gatherOptions(opts...)

	if o.replace && (a.NVals() == 0 || b.NVals() == 0) {
		c.Clear()

		return nil
	}

	if aliased(c, b) {
		tmp, err := sparse.New[R](c.NRows(), c.NCols())
		if err != nil {
			return mxmErrorf(opCompMaskNoAccum, err)
		}
		compMaskNoAccumKernel(tmp, m, ring, a, b, true)

		if o.replace {
			_ = c.Swap(tmp)
		} else {
			for i := 0; i < c.NRows(); i++ {
				// C[i] = [M .* C] ∪ T[i]
				_ = c.SetRow(i, sparse.MaskedMerge(m.RowView(i), true, c.RowView(i), tmp.RowView(i)))
			}
		}
	} else {
		compMaskNoAccumKernel(c, m, ring, a, b, o.replace)
	}

	o.emit(c)

	return nil
}

// CompMaskAccum computes C<¬M,z> = C accum (A +.* Bᵀ):
//
//	C =            [¬M .* (C accum T)]   z = replace
//	C = [M .* C] ∪ [¬M .* (C accum T)]   z = merge (default)
//
// There is deliberately NO unconditional short-circuit: the complement
// of an empty mask admits every column, so even with empty A or B the
// accumulate step must still visit C's existing entries.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrNilOperator.
func CompMaskAccum[T, R, TM any](
	c *sparse.Matrix[R],
	m *sparse.Matrix[TM],
	accum algebra.BinaryOp[R],
	ring algebra.Semiring[T, R],
	a, b *sparse.Matrix[T],
	opts ...Option,
) error {
	if err := validateOperands(c, a, b); err != nil {
		return mxmErrorf(opCompMaskAccum, err)
	}
	if err := validateMask(c, m); err != nil {
		return mxmErrorf(opCompMaskAccum, err)
	}
	if ring == nil || accum == nil {
		return mxmErrorf(opCompMaskAccum, ErrNilOperator)
	}
	o := gatherOptions(opts...)

	if aliased(c, b) {
		tmp, err := sparse.New[R](c.NRows(), c.NCols())
		if err != nil {
			return mxmErrorf(opCompMaskAccum, err)
		}
		compMaskNoAccumKernel(tmp, m, ring, a, b, true)

		for i := 0; i < c.NRows(); i++ {
			mRow, cRow := m.RowView(i), c.RowView(i)
			// Z[i] = (¬M .* C) accum T[i]
			zRow := sparse.MaskedAccum(mRow, true, accum, cRow, tmp.RowView(i))
			if o.replace {
				_ = c.SetRow(i, zRow)
			} else {
				_ = c.SetRow(i, sparse.MaskedMerge(mRow, true, cRow, zRow))
			}
		}
	} else {
		compMaskAccumKernel(c, m, accum, ring, a, b, o.replace)
	}

	o.emit(c)

	return nil
}
