// SPDX-License-Identifier: MIT

// Package sparse: shared row-level primitives of the multiply kernels.
//
// Purpose:
//   - Dot          — semiring-reduced product of two sparse rows.
//   - MaskCursor   — amortized O(|mask row|) advance-and-check scan.
//   - MaskedMerge  — the "z" replace/merge write-back combinator.
//   - MaskedAccum  — mask-gated accumulate of existing and new rows.
//
// Determinism & Policy:
//   - All walks are two-pointer scans over sorted rows in fixed
//     column-ascending order; no allocation beyond the result row.
//   - Masks are structural: only the presence of a column matters,
//     never its stored value.

package sparse

import "github.com/wanbaocheng/gbtl/algebra"

// Dot reduces two aligned rows into a single scalar under the
// semiring: terms ring.Mul(a[col], b[col]) for every column present in
// both rows, folded left to right with ring.Add.
//
// The second result reports whether any term was produced; false means
// the sparsity patterns are disjoint (or a row is empty) and the
// caller must treat the result as "no value", never as a zero.
//
// Complexity: O(len(a) + len(b)).
func Dot[T, R any](a, b Row[T], ring algebra.Semiring[T, R]) (R, bool) {
	var acc R
	ok := false

	var p, q int
	for p < len(a) && q < len(b) {
		switch {
		case a[p].Col < b[q].Col:
			p++
		case a[p].Col > b[q].Col:
			q++
		default:
			term := ring.Mul(a[p].Val, b[q].Val)
			if ok {
				acc = ring.Add(acc, term)
			} else {
				acc, ok = term, true
			}
			p++
			q++
		}
	}

	return acc, ok
}

// MaskCursor scans a mask row alongside an ascending column stream.
// Test columns MUST be queried in non-decreasing order; the cursor
// only ever advances, which keeps a whole-row scan amortized
// O(len(mask row)) instead of O(queries × len(mask row)).
type MaskCursor[TM any] struct {
	row Row[TM]
	pos int
}

// NewMaskCursor returns a cursor positioned before the first entry of
// the mask row. Complexity: O(1).
func NewMaskCursor[TM any](row Row[TM]) MaskCursor[TM] {
	return MaskCursor[TM]{row: row}
}

// Test advances past all mask columns below col and reports whether
// col itself is present in the mask row. Structural check only: the
// mask value is never inspected. Callers apply complement semantics by
// comparing the result against their complement flag.
//
// Complexity: amortized O(1) per call for ascending col sequences.
func (c *MaskCursor[TM]) Test(col int) bool {
	for c.pos < len(c.row) && c.row[c.pos].Col < col {
		c.pos++
	}

	return c.pos < len(c.row) && c.row[c.pos].Col == col
}

// MaskedMerge computes the replace/merge write-back row:
// entries of existing whose column FAILS the (possibly complemented)
// mask test are kept, entries of update whose column PASSES it are
// written, update winning on overlap. Everything else is dropped.
//
// In GraphBLAS terms the result is [¬M .* existing] ∪ [M .* update]
// (mask sides swapped when complement is true).
//
// Returns a freshly allocated row (nil when empty).
// Complexity: O(len(existing) + len(update) + len(mask)).
func MaskedMerge[T, TM any](mask Row[TM], complement bool, existing, update Row[T]) Row[T] {
	var out Row[T]
	cur := NewMaskCursor(mask)

	var p, q int
	for p < len(existing) || q < len(update) {
		// Pick the next column in the union of both rows.
		switch {
		case q >= len(update) || (p < len(existing) && existing[p].Col < update[q].Col):
			if cur.Test(existing[p].Col) == complement { // fails the mask test
				out = append(out, existing[p])
			}
			p++
		case p >= len(existing) || update[q].Col < existing[p].Col:
			if cur.Test(update[q].Col) != complement { // passes the mask test
				out = append(out, update[q])
			}
			q++
		default: // same column on both sides
			if cur.Test(update[q].Col) != complement {
				out = append(out, update[q]) // update wins inside the mask
			} else {
				out = append(out, existing[p]) // existing survives outside
			}
			p++
			q++
		}
	}

	return out
}

// MaskedAccum computes the mask-gated accumulate row: for every column
// passing the (possibly complemented) mask test,
//
//	both present  → accum(existing, update)
//	existing only → existing
//	update only   → update
//
// Columns failing the test are dropped entirely; the caller folds them
// back via MaskedMerge when merge semantics are requested.
//
// Returns a freshly allocated row (nil when empty).
// Complexity: O(len(existing) + len(update) + len(mask)).
func MaskedAccum[T, TM any](mask Row[TM], complement bool, accum algebra.BinaryOp[T], existing, update Row[T]) Row[T] {
	var out Row[T]
	cur := NewMaskCursor(mask)

	var p, q int
	for p < len(existing) || q < len(update) {
		switch {
		case q >= len(update) || (p < len(existing) && existing[p].Col < update[q].Col):
			if cur.Test(existing[p].Col) != complement {
				out = append(out, existing[p])
			}
			p++
		case p >= len(existing) || update[q].Col < existing[p].Col:
			if cur.Test(update[q].Col) != complement {
				out = append(out, update[q])
			}
			q++
		default:
			if cur.Test(existing[p].Col) != complement {
				out = append(out, Entry[T]{
					Col: existing[p].Col,
					Val: accum(existing[p].Val, update[q].Val),
				})
			}
			p++
			q++
		}
	}

	return out
}
