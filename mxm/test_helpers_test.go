// Package mxm_test — shared helpers for the multiply tests.
//
// The tests validate the sparse kernels against a brute-force dense
// evaluator: matrices are mirrored into [][]float64 grids where the
// sentinel `none` marks structural absence, the dense grids are
// combined cell by cell per the documented formulas, and the sparse
// result is converted back and compared.
package mxm_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wanbaocheng/gbtl/sparse"
)

// none marks a structurally absent cell in dense mirrors. Test values
// stay in single digits, so the collision risk is zero.
const none = math.MaxFloat64

// emptyDense allocates an all-absent nrows×ncols grid.
func emptyDense(nrows, ncols int) [][]float64 {
	d := make([][]float64, nrows)
	for i := range d {
		d[i] = make([]float64, ncols)
		for j := range d[i] {
			d[i][j] = none
		}
	}

	return d
}

// fromDense builds a sparse matrix from a dense mirror.
func fromDense(t *testing.T, d [][]float64) *sparse.Matrix[float64] {
	t.Helper()

	m, err := sparse.New[float64](len(d), len(d[0]))
	require.NoError(t, err)
	for i, row := range d {
		var r sparse.Row[float64]
		for j, v := range row {
			if v != none {
				r = append(r, sparse.Entry[float64]{Col: j, Val: v})
			}
		}
		require.NoError(t, m.SetRow(i, r))
	}

	return m
}

// toDense mirrors a sparse matrix back into a dense grid.
func toDense(m *sparse.Matrix[float64]) [][]float64 {
	d := emptyDense(m.NRows(), m.NCols())
	rows, cols, vals := m.ExtractTuples()
	for k := range rows {
		d[rows[k]][cols[k]] = vals[k]
	}

	return d
}

// maskFromDense builds a structural bool mask from a presence grid.
func maskFromDense(t *testing.T, present [][]bool) *sparse.Matrix[bool] {
	t.Helper()

	m, err := sparse.New[bool](len(present), len(present[0]))
	require.NoError(t, err)
	for i, row := range present {
		var r sparse.Row[bool]
		for j, p := range row {
			if p {
				r = append(r, sparse.Entry[bool]{Col: j, Val: true})
			}
		}
		require.NoError(t, m.SetRow(i, r))
	}

	return m
}

// complementPresence flips a presence grid cell by cell.
func complementPresence(present [][]bool) [][]bool {
	out := make([][]bool, len(present))
	for i, row := range present {
		out[i] = make([]bool, len(row))
		for j, p := range row {
			out[i][j] = !p
		}
	}

	return out
}

// refMxM computes T = A +.* Bᵀ densely under plus-times: cell (i,j) is
// the sum of a[i][k]*b[j][k] over columns present on both sides, or
// none when no aligned pair exists.
func refMxM(a, b [][]float64) [][]float64 {
	out := emptyDense(len(a), len(b))
	for i := range a {
		for j := range b {
			acc, ok := 0.0, false
			for k := range a[i] {
				if a[i][k] == none || b[j][k] == none {
					continue
				}
				acc += a[i][k] * b[j][k]
				ok = true
			}
			if ok {
				out[i][j] = acc
			}
		}
	}

	return out
}

// refApply evaluates the masked/accumulated write-back densely:
//
//	pass(i,j) = hasMask ? present[i][j] != complement : true
//	pass, no accum:  result = t
//	pass, accum:     both → accum(c,t); one side → that side; neither → none
//	fail, replace:   result = none
//	fail, merge:     result = c
//
// accum == nil selects the no-accum (overwrite) form.
func refApply(
	c, t [][]float64,
	present [][]bool,
	hasMask, complement bool,
	accum func(a, b float64) float64,
	replace bool,
) [][]float64 {
	out := emptyDense(len(c), len(c[0]))
	for i := range c {
		for j := range c[i] {
			pass := true
			if hasMask {
				pass = present[i][j] != complement
			}

			switch {
			case !pass && replace:
				// stays none
			case !pass:
				out[i][j] = c[i][j]
			case accum == nil:
				out[i][j] = t[i][j]
			case c[i][j] != none && t[i][j] != none:
				out[i][j] = accum(c[i][j], t[i][j])
			case c[i][j] != none:
				out[i][j] = c[i][j]
			default:
				out[i][j] = t[i][j] // none stays none
			}
		}
	}

	return out
}

// randomDense fills an nrows×ncols grid at the given density with
// single-digit values from a seeded source.
func randomDense(r *rand.Rand, nrows, ncols int, density float64) [][]float64 {
	d := emptyDense(nrows, ncols)
	for i := range d {
		for j := range d[i] {
			if r.Float64() < density {
				d[i][j] = float64(1 + r.Intn(9))
			}
		}
	}

	return d
}

// randomPresence fills an nrows×ncols presence grid at the given
// density.
func randomPresence(r *rand.Rand, nrows, ncols int, density float64) [][]bool {
	p := make([][]bool, nrows)
	for i := range p {
		p[i] = make([]bool, ncols)
		for j := range p[i] {
			p[i][j] = r.Float64() < density
		}
	}

	return p
}
