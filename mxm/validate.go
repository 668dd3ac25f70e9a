// SPDX-License-Identifier: MIT

// Package mxm: central shape validators.
// All six entry points funnel through these; kernels assume the
// preconditions hold and never re-check.

package mxm

import (
	"fmt"

	"github.com/wanbaocheng/gbtl/sparse"
)

// Operation name constants for unified error wrapping (no magic
// strings at call sites).
const (
	opNoMaskNoAccum   = "NoMaskNoAccum"
	opNoMaskAccum     = "NoMaskAccum"
	opMaskNoAccum     = "MaskNoAccum"
	opMaskAccum       = "MaskAccum"
	opCompMaskNoAccum = "CompMaskNoAccum"
	opCompMaskAccum   = "CompMaskAccum"
)

// mxmErrorf wraps err with an operation tag, preserving the sentinel
// for errors.Is. Call only with err != nil.
func mxmErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validateOperands checks the A·Bᵀ shape contract:
// A.NCols == B.NCols (dot alignment), C.NRows == A.NRows,
// C.NCols == B.NRows.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func validateOperands[T, R any](c *sparse.Matrix[R], a, b *sparse.Matrix[T]) error {
	if c == nil || a == nil || b == nil {
		return ErrNilMatrix
	}
	if a.NCols() != b.NCols() || c.NRows() != a.NRows() || c.NCols() != b.NRows() {
		return ErrDimensionMismatch
	}

	return nil
}

// validateMask checks that the mask exists and has C's shape.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func validateMask[R, TM any](c *sparse.Matrix[R], m *sparse.Matrix[TM]) error {
	if m == nil {
		return ErrNilMatrix
	}
	if m.NRows() != c.NRows() || m.NCols() != c.NCols() {
		return ErrDimensionMismatch
	}

	return nil
}

// aliased reports whether x and y are the same matrix object. The
// interface comparison matches only on identical dynamic type AND
// pointer, so matrices of different scalar types are never aliased —
// the Go analog of the reference-identity check in the aliasing
// contract.
func aliased(x, y any) bool { return x == y }
