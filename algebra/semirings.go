// SPDX-License-Identifier: MIT

// Package algebra: stock semiring catalog.
// All stock semirings keep T == R; mixed-type semirings are built with
// NewSemiring directly.

package algebra

// PlusTimes returns the conventional arithmetic semiring (+, ×).
// This is the semiring of ordinary matrix multiplication.
//
// Complexity: O(1) construction; operators are allocation-free.
func PlusTimes[T Number]() Semiring[T, T] {
	return NewSemiring[T, T](Plus[T](), Times[T]())
}

// MinPlus returns the tropical semiring (min, +), the algebra of
// shortest paths: pairing adds edge lengths, reduction keeps the
// shortest alternative.
//
// Absent entries play the role of +Inf; no sentinel value is stored.
func MinPlus[T Number]() Semiring[T, T] {
	return NewSemiring[T, T](Min[T](), Plus[T]())
}

// MaxMin returns the (max, min) semiring used for bottleneck/capacity
// problems: pairing keeps the narrowest link, reduction the widest
// alternative.
func MaxMin[T Number]() Semiring[T, T] {
	return NewSemiring[T, T](Max[T](), Min[T]())
}

// OrAnd returns the boolean semiring (∨, ∧), the algebra of
// reachability: a dot product is true iff some aligned pair is
// (true, true).
func OrAnd() Semiring[bool, bool] {
	return NewSemiring[bool, bool](
		func(a, b bool) bool { return a || b },
		func(a, b bool) bool { return a && b },
	)
}
