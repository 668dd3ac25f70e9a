// SPDX-License-Identifier: MIT

// Package sparse: the LIL (list-of-lists) matrix container.
//
// Purpose:
//   - One Row per row index, fixed shape, cached nonzero count.
//   - Whole-row single-writer mutations (SetRow / MergeRow) with no
//     partial-row visibility; the multiply kernels never touch
//     individual cells.
//
// Determinism & Policy:
//   - Fixed iteration orders everywhere (row-major, column-ascending).
//   - All mutators validate fail-fast and return plain sentinels.

package sparse

import (
	"fmt"
	"sort"
	"strings"

	"github.com/wanbaocheng/gbtl/algebra"
)

// Matrix is a row-major sparse matrix over scalar type T.
// The zero value is not usable; construct with New.
type Matrix[T any] struct {
	nrows int      // fixed at construction
	ncols int      // fixed at construction
	rows  []Row[T] // one Row per row index; nil means empty row
	nvals int      // cached total number of stored entries
}

// New returns an empty nrows×ncols matrix.
//
// Implementation:
//   - Stage 1: validate nrows > 0 and ncols > 0.
//   - Stage 2: allocate the row table (all rows nil ⇒ nvals 0).
//
// Errors:
//   - ErrBadShape on non-positive dimensions.
//
// Complexity: O(nrows) allocation, O(1) per row.
func New[T any](nrows, ncols int) (*Matrix[T], error) {
	if nrows <= 0 || ncols <= 0 {
		return nil, ErrBadShape
	}

	return &Matrix[T]{
		nrows: nrows,
		ncols: ncols,
		rows:  make([]Row[T], nrows),
	}, nil
}

// NRows returns the number of rows. Complexity: O(1).
func (m *Matrix[T]) NRows() int { return m.nrows }

// NCols returns the number of columns. Complexity: O(1).
func (m *Matrix[T]) NCols() int { return m.ncols }

// NVals returns the total number of stored entries. Complexity: O(1).
func (m *Matrix[T]) NVals() int { return m.nvals }

// RowView returns the stored row i WITHOUT copying.
// The returned slice is backing storage: callers must treat it as
// read-only and must not hold it across mutations of row i.
// Out-of-range i yields nil (same shape as an empty row).
// Complexity: O(1).
func (m *Matrix[T]) RowView(i int) Row[T] {
	if i < 0 || i >= m.nrows {
		return nil
	}

	return m.rows[i]
}

// SetRow replaces row i with a copy of row (whole-row replace; an
// empty or nil row clears row i).
//
// Implementation:
//   - Stage 1: validate i and the row invariant (sorted, in-bounds).
//   - Stage 2: copy the input (caller keeps ownership of its slice),
//     install, adjust nvals by the length delta.
//
// Errors:
//   - ErrOutOfRange  (bad i, or a column outside [0, NCols)).
//   - ErrUnsortedRow (columns not strictly increasing).
//
// Complexity: O(len(row)).
func (m *Matrix[T]) SetRow(i int, row Row[T]) error {
	if i < 0 || i >= m.nrows {
		return ErrOutOfRange
	}
	if err := rowInvariant(row, m.ncols); err != nil {
		return err
	}

	m.nvals += len(row) - len(m.rows[i])
	m.rows[i] = row.Clone()

	return nil
}

// MergeRow merges row into row i: columns present on one side only are
// kept as-is, overlapping columns are replaced by
// combine(existing, incoming). An empty input row is a no-op.
//
// Implementation:
//   - Stage 1: validate i, the row invariant, and combine != nil.
//   - Stage 2: two-pointer union of the sorted rows into a fresh
//     slice; install, adjust nvals.
//
// Errors:
//   - ErrOutOfRange, ErrUnsortedRow (as SetRow), ErrNilCombine.
//
// Complexity: O(len(existing) + len(row)).
func (m *Matrix[T]) MergeRow(i int, row Row[T], combine algebra.BinaryOp[T]) error {
	if i < 0 || i >= m.nrows {
		return ErrOutOfRange
	}
	if err := rowInvariant(row, m.ncols); err != nil {
		return err
	}
	if combine == nil {
		return ErrNilCombine
	}
	if len(row) == 0 {
		return nil // nothing to fold in
	}

	existing := m.rows[i]
	merged := make(Row[T], 0, len(existing)+len(row))
	var p, q int // cursors into existing and row
	for p < len(existing) && q < len(row) {
		switch {
		case existing[p].Col < row[q].Col:
			merged = append(merged, existing[p])
			p++
		case existing[p].Col > row[q].Col:
			merged = append(merged, row[q])
			q++
		default: // overlap: existing first, incoming second
			merged = append(merged, Entry[T]{Col: existing[p].Col, Val: combine(existing[p].Val, row[q].Val)})
			p++
			q++
		}
	}
	merged = append(merged, existing[p:]...)
	merged = append(merged, row[q:]...)

	m.nvals += len(merged) - len(existing)
	m.rows[i] = merged

	return nil
}

// Clear removes every stored entry; the shape is unchanged.
// Complexity: O(NRows).
func (m *Matrix[T]) Clear() {
	m.rows = make([]Row[T], m.nrows)
	m.nvals = 0
}

// Swap exchanges the contents of m and o. Both matrices must have the
// same shape; after the call each holds the other's rows and nvals.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity: O(1) (slice headers only).
func (m *Matrix[T]) Swap(o *Matrix[T]) error {
	if o == nil {
		return ErrNilMatrix
	}
	if m.nrows != o.nrows || m.ncols != o.ncols {
		return ErrDimensionMismatch
	}

	m.rows, o.rows = o.rows, m.rows
	m.nvals, o.nvals = o.nvals, m.nvals

	return nil
}

// Clone returns a deep copy, independent of the original.
// Complexity: O(NRows + NVals).
func (m *Matrix[T]) Clone() *Matrix[T] {
	out := &Matrix[T]{
		nrows: m.nrows,
		ncols: m.ncols,
		rows:  make([]Row[T], m.nrows),
		nvals: m.nvals,
	}
	for i, r := range m.rows {
		out.rows[i] = r.Clone()
	}

	return out
}

// At returns the value stored at (i, j) and whether it is present.
// Absence is not an error: (zero T, false, nil) for an in-bounds hole.
//
// Errors:
//   - ErrOutOfRange on bad indices.
//
// Complexity: O(log len(row)) binary search.
func (m *Matrix[T]) At(i, j int) (T, bool, error) {
	var zero T
	if i < 0 || i >= m.nrows || j < 0 || j >= m.ncols {
		return zero, false, ErrOutOfRange
	}

	row := m.rows[i]
	k := sort.Search(len(row), func(p int) bool { return row[p].Col >= j })
	if k < len(row) && row[k].Col == j {
		return row[k].Val, true, nil
	}

	return zero, false, nil
}

// SetAt stores v at (i, j), inserting or replacing a single entry.
// Intended for setup code (diagonals, fixtures); kernels write whole
// rows instead.
//
// Errors:
//   - ErrOutOfRange on bad indices.
//
// Complexity: O(len(row)) worst case for the insert shift.
func (m *Matrix[T]) SetAt(i, j int, v T) error {
	if i < 0 || i >= m.nrows || j < 0 || j >= m.ncols {
		return ErrOutOfRange
	}

	row := m.rows[i]
	k := sort.Search(len(row), func(p int) bool { return row[p].Col >= j })
	if k < len(row) && row[k].Col == j {
		row[k].Val = v // replace in place

		return nil
	}

	row = append(row, Entry[T]{})
	copy(row[k+1:], row[k:])
	row[k] = Entry[T]{Col: j, Val: v}
	m.rows[i] = row
	m.nvals++

	return nil
}

// Build replaces the matrix contents from coordinate tuples
// (rows[k], cols[k], vals[k]). Tuples may arrive in any order.
// Duplicate coordinates are combined with dup in input order; a nil
// dup makes duplicates an error.
//
// Implementation:
//   - Stage 1: validate lengths and every index.
//   - Stage 2: sort a permutation of tuple indices by (row, col) with
//     a stable sort, so dup sees duplicates in input order.
//   - Stage 3: emit rows left to right, folding duplicates.
//
// Errors:
//   - ErrBadTuples, ErrOutOfRange, ErrDuplicateEntry.
//
// Complexity: O(n log n) for n tuples.
func (m *Matrix[T]) Build(rows, cols []int, vals []T, dup algebra.BinaryOp[T]) error {
	if len(rows) != len(cols) || len(rows) != len(vals) {
		return ErrBadTuples
	}
	for k := range rows {
		if rows[k] < 0 || rows[k] >= m.nrows || cols[k] < 0 || cols[k] >= m.ncols {
			return ErrOutOfRange
		}
	}

	order := make([]int, len(rows))
	for k := range order {
		order[k] = k
	}
	sort.SliceStable(order, func(a, b int) bool {
		ka, kb := order[a], order[b]
		if rows[ka] != rows[kb] {
			return rows[ka] < rows[kb]
		}

		return cols[ka] < cols[kb]
	})

	fresh := make([]Row[T], m.nrows)
	nvals := 0
	for _, k := range order {
		r := fresh[rows[k]]
		if n := len(r); n > 0 && r[n-1].Col == cols[k] {
			if dup == nil {
				return ErrDuplicateEntry
			}
			r[n-1].Val = dup(r[n-1].Val, vals[k])
			continue
		}
		fresh[rows[k]] = append(r, Entry[T]{Col: cols[k], Val: vals[k]})
		nvals++
	}

	m.rows = fresh
	m.nvals = nvals

	return nil
}

// ExtractTuples returns the stored entries as parallel coordinate
// slices in row-major, column-ascending order.
// Complexity: O(NRows + NVals).
func (m *Matrix[T]) ExtractTuples() (rows, cols []int, vals []T) {
	rows = make([]int, 0, m.nvals)
	cols = make([]int, 0, m.nvals)
	vals = make([]T, 0, m.nvals)
	for i, r := range m.rows {
		for _, e := range r {
			rows = append(rows, i)
			cols = append(cols, e.Col)
			vals = append(vals, e.Val)
		}
	}

	return rows, cols, vals
}

// String renders the matrix for verbose traces and test failures:
// shape, nvals, then one line per non-empty row.
// Complexity: O(NRows + NVals).
func (m *Matrix[T]) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%dx%d, nvals=%d", m.nrows, m.ncols, m.nvals)
	for i, r := range m.rows {
		if len(r) == 0 {
			continue
		}
		fmt.Fprintf(&b, "\n  row %d:", i)
		for _, e := range r {
			fmt.Fprintf(&b, " (%d,%v)", e.Col, e.Val)
		}
	}

	return b.String()
}

// Equal reports structural equality of two matrices: same shape and
// identical stored entries (presence AND value). It distinguishes a
// stored zero from absence, matching the container's semantics.
// Nil handling: two nils are equal; nil vs non-nil is not.
// Complexity: O(NRows + NVals).
func Equal[T comparable](a, b *Matrix[T]) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.nrows != b.nrows || a.ncols != b.ncols || a.nvals != b.nvals {
		return false
	}
	for i := range a.rows {
		ra, rb := a.rows[i], b.rows[i]
		if len(ra) != len(rb) {
			return false
		}
		for k := range ra {
			if ra[k] != rb[k] {
				return false
			}
		}
	}

	return true
}

// Transpose returns a fresh NCols×NRows matrix with rows and columns
// swapped. Row-major ascending input order yields sorted output rows
// with no extra sort.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity: O(NRows + NVals).
func Transpose[T any](m *Matrix[T]) (*Matrix[T], error) {
	if m == nil {
		return nil, ErrNilMatrix
	}

	out := &Matrix[T]{
		nrows: m.ncols,
		ncols: m.nrows,
		rows:  make([]Row[T], m.ncols),
		nvals: m.nvals,
	}
	for i, r := range m.rows {
		for _, e := range r {
			// i ascends across the outer loop, so each output row is
			// appended in increasing column order.
			out.rows[e.Col] = append(out.rows[e.Col], Entry[T]{Col: i, Val: e.Val})
		}
	}

	return out, nil
}
