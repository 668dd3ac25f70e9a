// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors. All public
// operations MUST return these sentinels and tests MUST check them via
// errors.Is. No operation panics on user-triggered conditions; panics
// are reserved for programmer errors in private helpers (if any).

package sparse

import "errors"

// Every message is prefixed with "sparse: ..." for consistency and to
// allow easy grepping across logs. If context is essential, wrap with
// fmt.Errorf("ctx: %w", ErrX) at the outer boundary — callers still
// match via errors.Is.

var (
	// ErrBadShape is returned when a requested shape is invalid
	// (nrows <= 0 or ncols <= 0). Constructors validate before
	// allocation.
	ErrBadShape = errors.New("sparse: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside the
	// matrix bounds. Public indexers MUST return this, not panic.
	ErrOutOfRange = errors.New("sparse: index out of range")

	// ErrDimensionMismatch indicates incompatible shapes between two
	// matrices (e.g., Swap with different dimensions).
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")

	// ErrNilMatrix indicates that a nil *Matrix was passed where a
	// matrix is required.
	ErrNilMatrix = errors.New("sparse: nil matrix")

	// ErrUnsortedRow signals a row whose column indices are not
	// strictly increasing (out of order or duplicated). SetRow and
	// MergeRow reject such input instead of corrupting the container
	// invariant.
	ErrUnsortedRow = errors.New("sparse: row columns not strictly increasing")

	// ErrBadTuples signals Build input slices of mismatched lengths.
	ErrBadTuples = errors.New("sparse: tuple slices length mismatch")

	// ErrDuplicateEntry signals a duplicate (row, col) pair during
	// Build when no duplicate combiner was supplied.
	ErrDuplicateEntry = errors.New("sparse: duplicate entry without combiner")

	// ErrNilCombine indicates a nil combiner passed to MergeRow.
	ErrNilCombine = errors.New("sparse: nil combine operator")
)
