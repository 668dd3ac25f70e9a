// SPDX-License-Identifier: MIT

// Package algebra: stock binary operators.
// Every constructor returns a fresh BinaryOp value; operators carry no
// state, so the values are freely shareable and reusable.

package algebra

// Plus returns the arithmetic addition operator a+b.
// Associative and commutative; valid as a semiring Add and as an
// accumulator.
func Plus[T Number]() BinaryOp[T] {
	return func(a, b T) T { return a + b }
}

// Times returns the arithmetic multiplication operator a*b.
// Associative and commutative.
func Times[T Number]() BinaryOp[T] {
	return func(a, b T) T { return a * b }
}

// Min returns the minimum operator min(a,b).
// Associative, commutative and idempotent; the additive operator of
// the min-plus (tropical) semiring.
func Min[T Number]() BinaryOp[T] {
	return func(a, b T) T {
		if b < a {
			return b
		}

		return a
	}
}

// Max returns the maximum operator max(a,b).
// Associative, commutative and idempotent.
func Max[T Number]() BinaryOp[T] {
	return func(a, b T) T {
		if b > a {
			return b
		}

		return a
	}
}

// First returns the operator selecting its first argument.
// Useful as an accumulator that keeps existing output values, and as a
// duplicate combiner with "first tuple wins" semantics.
func First[T any]() BinaryOp[T] {
	return func(a, _ T) T { return a }
}

// Second returns the operator selecting its second argument.
// As an accumulator this overwrites existing values with incoming ones.
func Second[T any]() BinaryOp[T] {
	return func(_, b T) T { return b }
}
