// SPDX-License-Identifier: MIT

// Package algebra: core operator and semiring types.
// This file intentionally contains ONLY the type definitions and the
// generic constructors; the stock catalog lives in ops.go and
// semirings.go per the global conventions.

package algebra

import "golang.org/x/exp/constraints"

// Number bounds the scalar types accepted by the stock numeric
// operators and semirings. Custom semirings over other types (bool,
// structs, ...) are built with NewSemiring directly.
type Number interface {
	constraints.Integer | constraints.Float
}

// BinaryOp is a binary operator over a single scalar type T.
//
// Used as:
//   - the accumulator combining an existing output value with a newly
//     computed one (first argument = existing, second = incoming),
//   - the combiner in Matrix.MergeRow and Matrix.Build.
//
// Accumulators and additive operators are expected to be associative;
// additive operators of a semiring must also be commutative. Neither
// property is checked at runtime — it is part of the caller's contract.
type BinaryOp[T any] func(a, b T) T

// Semiring supplies the two operators of a GraphBLAS-style semiring:
// Mul pairs one value from each operand row (the "." in "+.*") and Add
// reduces the resulting terms (the "+"). The input scalar T and the
// result scalar R may differ.
//
// Implementations must be stateless: the kernels call Add/Mul in fixed
// column order and assume identical results for identical arguments.
type Semiring[T, R any] interface {
	// Add combines two already-produced terms. Associative, commutative.
	Add(a, b R) R

	// Mul pairs two aligned operand values into a term.
	Mul(a, b T) R
}

// funcSemiring adapts two plain functions into a Semiring.
type funcSemiring[T, R any] struct {
	add BinaryOp[R]
	mul func(a, b T) R
}

func (s funcSemiring[T, R]) Add(a, b R) R { return s.add(a, b) }
func (s funcSemiring[T, R]) Mul(a, b T) R { return s.mul(a, b) }

// NewSemiring builds a Semiring from an additive combine and a
// multiplicative pairing. Both functions must be non-nil; a nil
// operator is a programmer error and panics with a stable message.
//
// Complexity: O(1); the returned value is an immutable pair of funcs.
func NewSemiring[T, R any](add BinaryOp[R], mul func(a, b T) R) Semiring[T, R] {
	if add == nil || mul == nil {
		panic(panicNilOperator)
	}

	return funcSemiring[T, R]{add: add, mul: mul}
}

// panicNilOperator is the stable message for nil operator arguments
// (programmer error; public kernels never panic on user data).
const panicNilOperator = "algebra: NewSemiring: nil operator"
