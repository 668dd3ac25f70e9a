// SPDX-License-Identifier: MIT

// Package mxm: the six row kernels.
//
// Each kernel walks every row i of A against every non-empty row j of
// B, reduces the pair with the semiring dot product, and writes the
// resulting contribution row into C under its masking/accumulation
// rule. Kernels validate nothing (preconditions are enforced by the
// entry points in mxm.go) and write rows that are sorted and in
// bounds by construction; SetRow/MergeRow errors are therefore
// structurally impossible and are discarded.
//
// Emptiness rules shared by all kernels:
//   - An empty row j of B is skipped: its dot product produces no
//     term, which must surface as "no value", not as a stored zero.
//   - Dot returning ok=false (disjoint patterns) contributes nothing.

package mxm

import (
	"github.com/wanbaocheng/gbtl/algebra"
	"github.com/wanbaocheng/gbtl/sparse"
)

// noMaskNoAccumKernel: C = A +.* Bᵀ. Every destination row is
// overwritten, including rows that compute empty (an empty row of A
// yields an empty output row — C holds exactly the computed result).
func noMaskNoAccumKernel[T, R any](
	c *sparse.Matrix[R],
	ring algebra.Semiring[T, R],
	a, b *sparse.Matrix[T],
) {
	for i := 0; i < a.NRows(); i++ {
		aRow := a.RowView(i)
		if aRow.IsEmpty() {
			_ = c.SetRow(i, nil)
			continue
		}

		var cRow sparse.Row[R]
		for j := 0; j < b.NRows(); j++ {
			bRow := b.RowView(j)
			if bRow.IsEmpty() {
				continue
			}
			if t, ok := sparse.Dot(aRow, bRow, ring); ok {
				cRow = append(cRow, sparse.Entry[R]{Col: j, Val: t})
			}
		}

		_ = c.SetRow(i, cRow) // set even if it is empty
	}
}

// noMaskAccumKernel: C = C accum (A +.* Bᵀ). Rows producing no new
// values leave C untouched; everything else folds in via MergeRow.
func noMaskAccumKernel[T, R any](
	c *sparse.Matrix[R],
	accum algebra.BinaryOp[R],
	ring algebra.Semiring[T, R],
	a, b *sparse.Matrix[T],
) {
	for i := 0; i < a.NRows(); i++ {
		aRow := a.RowView(i)
		if aRow.IsEmpty() {
			continue // nothing to accumulate into row i
		}

		var tRow sparse.Row[R]
		for j := 0; j < b.NRows(); j++ {
			bRow := b.RowView(j)
			if bRow.IsEmpty() {
				continue
			}
			if t, ok := sparse.Dot(aRow, bRow, ring); ok {
				tRow = append(tRow, sparse.Entry[R]{Col: j, Val: t})
			}
		}

		if !tRow.IsEmpty() {
			_ = c.MergeRow(i, tRow, accum)
		}
	}
}

// maskNoAccumKernel: C<M,z> = A +.* Bᵀ. The mask gates both the
// computation (columns j absent from M[i] are never dotted) and the
// write-back.
func maskNoAccumKernel[T, R, TM any](
	c *sparse.Matrix[R],
	m *sparse.Matrix[TM],
	ring algebra.Semiring[T, R],
	a, b *sparse.Matrix[T],
	replace bool,
) {
	for i := 0; i < a.NRows(); i++ {
		aRow, mRow := a.RowView(i), m.RowView(i)

		var tRow sparse.Row[R]
		if !aRow.IsEmpty() && !mRow.IsEmpty() {
			cur := sparse.NewMaskCursor(mRow)
			for j := 0; j < b.NRows(); j++ {
				bRow := b.RowView(j)
				if bRow.IsEmpty() || !cur.Test(j) {
					continue
				}
				if t, ok := sparse.Dot(aRow, bRow, ring); ok {
					tRow = append(tRow, sparse.Entry[R]{Col: j, Val: t})
				}
			}
		}

		if replace {
			_ = c.SetRow(i, tRow) // C[i] = T[i]
		} else {
			// C[i] = [¬M .* C] ∪ T[i]
			_ = c.SetRow(i, sparse.MaskedMerge(mRow, false, c.RowView(i), tRow))
		}
	}
}

// maskAccumKernel: C<M,z> = C accum (A +.* Bᵀ).
// Z[i] = masked_accum(M, accum, C[i], T[i]) first, then replace or
// merge Z into C.
func maskAccumKernel[T, R, TM any](
	c *sparse.Matrix[R],
	m *sparse.Matrix[TM],
	accum algebra.BinaryOp[R],
	ring algebra.Semiring[T, R],
	a, b *sparse.Matrix[T],
	replace bool,
) {
	for i := 0; i < a.NRows(); i++ {
		aRow, mRow := a.RowView(i), m.RowView(i)

		var tRow sparse.Row[R]
		if !aRow.IsEmpty() && !mRow.IsEmpty() {
			cur := sparse.NewMaskCursor(mRow)
			for j := 0; j < b.NRows(); j++ {
				bRow := b.RowView(j)
				if bRow.IsEmpty() || !cur.Test(j) {
					continue
				}
				if t, ok := sparse.Dot(aRow, bRow, ring); ok {
					tRow = append(tRow, sparse.Entry[R]{Col: j, Val: t})
				}
			}
		}

		cRow := c.RowView(i)
		zRow := sparse.MaskedAccum(mRow, false, accum, cRow, tRow)
		if replace {
			_ = c.SetRow(i, zRow)
		} else {
			_ = c.SetRow(i, sparse.MaskedMerge(mRow, false, cRow, zRow))
		}
	}
}

// compMaskNoAccumKernel: C<¬M,z> = A +.* Bᵀ. The complement of an
// empty mask row admits every column, so an empty M[i] cannot short
// the computation the way the uncomplemented kernel does.
func compMaskNoAccumKernel[T, R, TM any](
	c *sparse.Matrix[R],
	m *sparse.Matrix[TM],
	ring algebra.Semiring[T, R],
	a, b *sparse.Matrix[T],
	replace bool,
) {
	for i := 0; i < a.NRows(); i++ {
		aRow, mRow := a.RowView(i), m.RowView(i)

		var tRow sparse.Row[R]
		if !aRow.IsEmpty() { // no mask shortcut under complement
			cur := sparse.NewMaskCursor(mRow)
			for j := 0; j < b.NRows(); j++ {
				bRow := b.RowView(j)
				if bRow.IsEmpty() || cur.Test(j) {
					continue
				}
				if t, ok := sparse.Dot(aRow, bRow, ring); ok {
					tRow = append(tRow, sparse.Entry[R]{Col: j, Val: t})
				}
			}
		}

		if replace {
			_ = c.SetRow(i, tRow)
		} else {
			// C[i] = [M .* C] ∪ T[i]
			_ = c.SetRow(i, sparse.MaskedMerge(mRow, true, c.RowView(i), tRow))
		}
	}
}

// compMaskAccumKernel: C<¬M,z> = C accum (A +.* Bᵀ).
func compMaskAccumKernel[T, R, TM any](
	c *sparse.Matrix[R],
	m *sparse.Matrix[TM],
	accum algebra.BinaryOp[R],
	ring algebra.Semiring[T, R],
	a, b *sparse.Matrix[T],
	replace bool,
) {
	for i := 0; i < a.NRows(); i++ {
		aRow, mRow := a.RowView(i), m.RowView(i)

		var tRow sparse.Row[R]
		if !aRow.IsEmpty() { // no mask shortcut under complement
			cur := sparse.NewMaskCursor(mRow)
			for j := 0; j < b.NRows(); j++ {
				bRow := b.RowView(j)
				if bRow.IsEmpty() || cur.Test(j) {
					continue
				}
				if t, ok := sparse.Dot(aRow, bRow, ring); ok {
					tRow = append(tRow, sparse.Entry[R]{Col: j, Val: t})
				}
			}
		}

		cRow := c.RowView(i)
		zRow := sparse.MaskedAccum(mRow, true, accum, cRow, tRow)
		if replace {
			_ = c.SetRow(i, zRow)
		} else {
			_ = c.SetRow(i, sparse.MaskedMerge(mRow, true, cRow, zRow))
		}
	}
}
