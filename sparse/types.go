// SPDX-License-Identifier: MIT

// Package sparse: domain types for rows and entries.
// This file intentionally contains ONLY the row-level types and their
// invariant helpers; the Matrix container lives in matrix.go and the
// row algorithms in row_ops.go per the global conventions.

package sparse

// Entry is one stored value at column Col within a row.
// A stored zero value is a legal entry: presence, not value, is what
// distinguishes an entry from structural absence.
type Entry[T any] struct {
	Col int // column index, 0-based
	Val T   // stored value
}

// Row is an ordered sequence of entries.
// Invariant: strictly increasing Col, no duplicates. A nil or empty
// Row is the canonical empty row. The zero nvals of a new Matrix
// relies on every row being nil.
type Row[T any] []Entry[T]

// IsEmpty reports whether the row holds no entries.
// Complexity: O(1).
func (r Row[T]) IsEmpty() bool { return len(r) == 0 }

// Clone returns an independent copy of the row (nil for an empty row).
// Complexity: O(len(r)).
func (r Row[T]) Clone() Row[T] {
	if len(r) == 0 {
		return nil
	}
	out := make(Row[T], len(r))
	copy(out, r)

	return out
}

// rowInvariant checks that cols are strictly increasing and inside
// [0, ncols). Returns the violated sentinel, or nil.
// Complexity: O(len(r)).
func rowInvariant[T any](r Row[T], ncols int) error {
	prev := -1
	for _, e := range r {
		if e.Col < 0 || e.Col >= ncols {
			return ErrOutOfRange
		}
		if e.Col <= prev {
			return ErrUnsortedRow
		}
		prev = e.Col
	}

	return nil
}
