// SPDX-License-Identifier: MIT
// Package mxm: sentinel error set (unified, consistent).
// Entry points MUST return these sentinels (wrapped with the operation
// tag) and tests MUST check them via errors.Is. Kernels themselves
// never produce errors: every algebraic condition (empty operand,
// empty mask, empty dot product) is a legitimate state, not a failure.

package mxm

import "errors"

var (
	// ErrNilMatrix indicates a nil output, operand or mask matrix.
	ErrNilMatrix = errors.New("mxm: nil matrix")

	// ErrDimensionMismatch indicates operand shapes violating the
	// A·Bᵀ preconditions (see the package doc).
	ErrDimensionMismatch = errors.New("mxm: dimension mismatch")

	// ErrNilOperator indicates a nil semiring or accumulator.
	ErrNilOperator = errors.New("mxm: nil operator")
)
