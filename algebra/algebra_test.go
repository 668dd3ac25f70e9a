// Package algebra_test contains unit tests for the operator and
// semiring catalog.
package algebra_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wanbaocheng/gbtl/algebra"
)

func TestOperators_Basic(t *testing.T) {
	t.Parallel()

	require.Equal(t, 7.0, algebra.Plus[float64]()(3, 4))
	require.Equal(t, 12, algebra.Times[int]()(3, 4))
	require.Equal(t, 3, algebra.Min[int]()(3, 4))
	require.Equal(t, 3, algebra.Min[int]()(4, 3))
	require.Equal(t, 4.0, algebra.Max[float64]()(3, 4))
	require.Equal(t, 4.0, algebra.Max[float64]()(4, 3))
	require.Equal(t, "a", algebra.First[string]()("a", "b"))
	require.Equal(t, "b", algebra.Second[string]()("a", "b"))
}

func TestOperators_AccumulatorArgumentOrder(t *testing.T) {
	t.Parallel()

	// First keeps the existing output value, Second the incoming one.
	require.Equal(t, 1, algebra.First[int]()(1, 2))
	require.Equal(t, 2, algebra.Second[int]()(1, 2))
}

func TestPlusTimes(t *testing.T) {
	t.Parallel()

	ring := algebra.PlusTimes[int]()
	require.Equal(t, 10, ring.Add(4, 6))
	require.Equal(t, 24, ring.Mul(4, 6))
}

func TestMinPlus(t *testing.T) {
	t.Parallel()

	ring := algebra.MinPlus[float64]()
	require.Equal(t, 4.0, ring.Add(4, 6))  // shortest alternative wins
	require.Equal(t, 10.0, ring.Mul(4, 6)) // path lengths add
}

func TestMaxMin(t *testing.T) {
	t.Parallel()

	ring := algebra.MaxMin[int]()
	require.Equal(t, 6, ring.Add(4, 6)) // widest alternative
	require.Equal(t, 4, ring.Mul(4, 6)) // narrowest link
}

func TestOrAnd(t *testing.T) {
	t.Parallel()

	ring := algebra.OrAnd()
	require.True(t, ring.Add(false, true))
	require.False(t, ring.Add(false, false))
	require.True(t, ring.Mul(true, true))
	require.False(t, ring.Mul(true, false))
}

func TestNewSemiring_Mixed_Types(t *testing.T) {
	t.Parallel()

	// Pair ints into booleans: "some aligned pair is equal".
	ring := algebra.NewSemiring[int, bool](
		func(a, b bool) bool { return a || b },
		func(a, b int) bool { return a == b },
	)
	require.True(t, ring.Mul(3, 3))
	require.False(t, ring.Mul(3, 4))
	require.True(t, ring.Add(false, true))
}

func TestNewSemiring_NilOperatorPanics(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() {
		algebra.NewSemiring[int, int](nil, func(a, b int) int { return a * b })
	})
	require.Panics(t, func() {
		algebra.NewSemiring[int, int](algebra.Plus[int](), nil)
	})
}
