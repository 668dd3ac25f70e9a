// Package sparse_test contains unit tests for the LIL container.
package sparse_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wanbaocheng/gbtl/algebra"
	"github.com/wanbaocheng/gbtl/sparse"
)

// mustNew builds a matrix or fails the test.
func mustNew(t *testing.T, nrows, ncols int) *sparse.Matrix[float64] {
	t.Helper()
	m, err := sparse.New[float64](nrows, ncols)
	require.NoError(t, err)

	return m
}

func TestNew_BadShape(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct{ r, c int }{{0, 3}, {3, 0}, {-1, 3}, {3, -1}, {0, 0}} {
		_, err := sparse.New[float64](tc.r, tc.c)
		require.ErrorIs(t, err, sparse.ErrBadShape)
	}
}

func TestNew_Empty(t *testing.T) {
	t.Parallel()

	m := mustNew(t, 3, 4)
	require.Equal(t, 3, m.NRows())
	require.Equal(t, 4, m.NCols())
	require.Zero(t, m.NVals())
	for i := 0; i < 3; i++ {
		require.True(t, m.RowView(i).IsEmpty())
	}
}

func TestSetRow_ReplaceAndClear(t *testing.T) {
	t.Parallel()

	m := mustNew(t, 2, 5)
	row := sparse.Row[float64]{{Col: 1, Val: 1.5}, {Col: 4, Val: -2}}
	require.NoError(t, m.SetRow(0, row))
	require.Equal(t, 2, m.NVals())

	// The container copies: mutating the caller's slice is invisible.
	row[0].Val = 99
	v, ok, err := m.At(0, 1)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 1.5, v)

	// Whole-row replace adjusts nvals by the delta.
	require.NoError(t, m.SetRow(0, sparse.Row[float64]{{Col: 0, Val: 7}}))
	require.Equal(t, 1, m.NVals())

	// Nil clears the row.
	require.NoError(t, m.SetRow(0, nil))
	require.Zero(t, m.NVals())
}

func TestSetRow_Validation(t *testing.T) {
	t.Parallel()

	m := mustNew(t, 2, 3)
	require.ErrorIs(t, m.SetRow(-1, nil), sparse.ErrOutOfRange)
	require.ErrorIs(t, m.SetRow(2, nil), sparse.ErrOutOfRange)
	require.ErrorIs(t, m.SetRow(0, sparse.Row[float64]{{Col: 3, Val: 1}}), sparse.ErrOutOfRange)
	require.ErrorIs(t, m.SetRow(0, sparse.Row[float64]{{Col: -1, Val: 1}}), sparse.ErrOutOfRange)
	require.ErrorIs(t,
		m.SetRow(0, sparse.Row[float64]{{Col: 2, Val: 1}, {Col: 1, Val: 1}}),
		sparse.ErrUnsortedRow)
	require.ErrorIs(t,
		m.SetRow(0, sparse.Row[float64]{{Col: 1, Val: 1}, {Col: 1, Val: 2}}),
		sparse.ErrUnsortedRow)
	// Failed writes must not corrupt the matrix.
	require.Zero(t, m.NVals())
}

func TestMergeRow_CombineOnOverlap(t *testing.T) {
	t.Parallel()

	m := mustNew(t, 1, 6)
	require.NoError(t, m.SetRow(0, sparse.Row[float64]{{Col: 0, Val: 1}, {Col: 2, Val: 2}, {Col: 5, Val: 3}}))

	incoming := sparse.Row[float64]{{Col: 2, Val: 10}, {Col: 3, Val: 4}}
	require.NoError(t, m.MergeRow(0, incoming, algebra.Plus[float64]()))

	want := sparse.Row[float64]{{Col: 0, Val: 1}, {Col: 2, Val: 12}, {Col: 3, Val: 4}, {Col: 5, Val: 3}}
	require.Equal(t, want, m.RowView(0))
	require.Equal(t, 4, m.NVals())
}

func TestMergeRow_EmptyIncomingIsNoop(t *testing.T) {
	t.Parallel()

	m := mustNew(t, 1, 3)
	require.NoError(t, m.SetRow(0, sparse.Row[float64]{{Col: 1, Val: 9}}))
	require.NoError(t, m.MergeRow(0, nil, algebra.Plus[float64]()))
	require.Equal(t, sparse.Row[float64]{{Col: 1, Val: 9}}, m.RowView(0))
}

func TestMergeRow_Validation(t *testing.T) {
	t.Parallel()

	m := mustNew(t, 1, 3)
	require.ErrorIs(t, m.MergeRow(5, nil, algebra.Plus[float64]()), sparse.ErrOutOfRange)
	require.ErrorIs(t,
		m.MergeRow(0, sparse.Row[float64]{{Col: 1, Val: 1}}, nil),
		sparse.ErrNilCombine)
}

func TestClearAndSwap(t *testing.T) {
	t.Parallel()

	a := mustNew(t, 2, 2)
	b := mustNew(t, 2, 2)
	require.NoError(t, a.SetRow(0, sparse.Row[float64]{{Col: 0, Val: 1}}))
	require.NoError(t, b.SetRow(1, sparse.Row[float64]{{Col: 0, Val: 1}, {Col: 1, Val: 2}}))

	require.NoError(t, a.Swap(b))
	require.Equal(t, 2, a.NVals())
	require.Equal(t, 1, b.NVals())

	a.Clear()
	require.Zero(t, a.NVals())
	require.True(t, a.RowView(1).IsEmpty())

	c := mustNew(t, 3, 2)
	require.ErrorIs(t, a.Swap(c), sparse.ErrDimensionMismatch)
	require.ErrorIs(t, a.Swap(nil), sparse.ErrNilMatrix)
}

func TestClone_Independent(t *testing.T) {
	t.Parallel()

	m := mustNew(t, 2, 3)
	require.NoError(t, m.SetRow(1, sparse.Row[float64]{{Col: 0, Val: 5}}))

	cp := m.Clone()
	require.True(t, sparse.Equal(m, cp))

	require.NoError(t, cp.SetAt(1, 2, 8))
	require.False(t, sparse.Equal(m, cp))
	require.Equal(t, 1, m.NVals())
}

func TestAtSetAt(t *testing.T) {
	t.Parallel()

	m := mustNew(t, 2, 4)
	require.NoError(t, m.SetAt(0, 2, 3))
	require.NoError(t, m.SetAt(0, 0, 1))
	require.NoError(t, m.SetAt(0, 2, 5)) // replace, not insert
	require.Equal(t, 2, m.NVals())
	require.Equal(t, sparse.Row[float64]{{Col: 0, Val: 1}, {Col: 2, Val: 5}}, m.RowView(0))

	v, ok, err := m.At(0, 1)
	require.NoError(t, err)
	require.False(t, ok) // absence is not an error
	require.Zero(t, v)

	_, _, err = m.At(0, 4)
	require.ErrorIs(t, err, sparse.ErrOutOfRange)
	require.ErrorIs(t, m.SetAt(2, 0, 1), sparse.ErrOutOfRange)
}

func TestExplicitZero_IsStored(t *testing.T) {
	t.Parallel()

	m := mustNew(t, 1, 2)
	require.NoError(t, m.SetAt(0, 0, 0)) // explicit zero
	require.Equal(t, 1, m.NVals())

	_, ok, err := m.At(0, 0)
	require.NoError(t, err)
	require.True(t, ok) // presence, despite zero value

	other := mustNew(t, 1, 2)
	require.False(t, sparse.Equal(m, other)) // stored zero != absence
}

func TestBuild_SortsAndCombines(t *testing.T) {
	t.Parallel()

	m := mustNew(t, 3, 3)
	rows := []int{2, 0, 0, 2, 0}
	cols := []int{1, 2, 0, 1, 2}
	vals := []float64{5, 1, 7, 3, 2}

	// Duplicates without a combiner are rejected.
	require.ErrorIs(t, m.Build(rows, cols, vals, nil), sparse.ErrDuplicateEntry)

	// With Plus, duplicates fold in input order.
	require.NoError(t, m.Build(rows, cols, vals, algebra.Plus[float64]()))
	require.Equal(t, 3, m.NVals())
	require.Equal(t, sparse.Row[float64]{{Col: 0, Val: 7}, {Col: 2, Val: 3}}, m.RowView(0))
	require.Equal(t, sparse.Row[float64]{{Col: 1, Val: 8}}, m.RowView(2))
}

func TestBuild_Validation(t *testing.T) {
	t.Parallel()

	m := mustNew(t, 2, 2)
	require.ErrorIs(t, m.Build([]int{0}, []int{0, 1}, []float64{1}, nil), sparse.ErrBadTuples)
	require.ErrorIs(t, m.Build([]int{2}, []int{0}, []float64{1}, nil), sparse.ErrOutOfRange)
	require.ErrorIs(t, m.Build([]int{0}, []int{-1}, []float64{1}, nil), sparse.ErrOutOfRange)
}

func TestExtractTuples_RowMajorOrder(t *testing.T) {
	t.Parallel()

	m := mustNew(t, 2, 3)
	require.NoError(t, m.SetRow(0, sparse.Row[float64]{{Col: 1, Val: 1}, {Col: 2, Val: 2}}))
	require.NoError(t, m.SetRow(1, sparse.Row[float64]{{Col: 0, Val: 3}}))

	rows, cols, vals := m.ExtractTuples()
	require.Equal(t, []int{0, 0, 1}, rows)
	require.Equal(t, []int{1, 2, 0}, cols)
	require.Equal(t, []float64{1, 2, 3}, vals)
}

func TestTranspose(t *testing.T) {
	t.Parallel()

	m := mustNew(t, 2, 3)
	require.NoError(t, m.SetRow(0, sparse.Row[float64]{{Col: 0, Val: 1}, {Col: 2, Val: 2}}))
	require.NoError(t, m.SetRow(1, sparse.Row[float64]{{Col: 2, Val: 3}}))

	tr, err := sparse.Transpose(m)
	require.NoError(t, err)
	require.Equal(t, 3, tr.NRows())
	require.Equal(t, 2, tr.NCols())
	require.Equal(t, m.NVals(), tr.NVals())
	require.Equal(t, sparse.Row[float64]{{Col: 0, Val: 1}}, tr.RowView(0))
	require.True(t, tr.RowView(1).IsEmpty())
	require.Equal(t, sparse.Row[float64]{{Col: 0, Val: 2}, {Col: 1, Val: 3}}, tr.RowView(2))

	_, err = sparse.Transpose[float64](nil)
	require.ErrorIs(t, err, sparse.ErrNilMatrix)
}

func TestEqual_NilAndShape(t *testing.T) {
	t.Parallel()

	a := mustNew(t, 2, 2)
	b := mustNew(t, 2, 3)
	require.False(t, sparse.Equal(a, b))
	require.False(t, sparse.Equal(a, nil))
	require.True(t, sparse.Equal[float64](nil, nil))
}

func TestString_ShapeAndRows(t *testing.T) {
	t.Parallel()

	m := mustNew(t, 2, 2)
	require.NoError(t, m.SetAt(1, 0, 4))
	s := m.String()
	require.Contains(t, s, "2x2, nvals=1")
	require.Contains(t, s, "row 1: (0,4)")
}
