// SPDX-License-Identifier: MIT

// Package apsp: min-plus squaring driver.
//
// Determinism & Policy:
//   - Fixed squaring schedule; convergence detected by structural
//     equality, capped at ⌈log₂ n⌉ + 1 rounds.
//   - The input graph is never mutated; every round writes into a
//     fresh matrix because the multiply contract forbids the output
//     aliasing its first operand.

package apsp

import (
	"errors"
	"fmt"

	"github.com/wanbaocheng/gbtl/algebra"
	"github.com/wanbaocheng/gbtl/mxm"
	"github.com/wanbaocheng/gbtl/sparse"
)

// ErrNonSquare signals a graph matrix that is not n×n.
var ErrNonSquare = errors.New("apsp: graph matrix is not square")

// opDistances tags wrapped errors from Distances.
const opDistances = "Distances"

// Distances returns the all-pairs shortest-path matrix of a directed
// graph given as an n×n edge-length matrix: entry (i, j) is the length
// of the cheapest path i→j, the diagonal is 0, and absent entries mean
// "no path".
//
// Implementation:
//   - Stage 1: validate (non-nil, square); clone the input and force a
//     zero diagonal (a vertex reaches itself for free).
//   - Stage 2: square D under (min, +) until the distance matrix stops
//     changing. The multiply core consumes B pre-transposed, so each
//     round passes Dᵀ — making the effective right operand (Dᵀ)ᵀ = D.
//
// Behavior highlights:
//   - Negative edge weights are accepted but negative cycles are out
//     of contract (the fixpoint cap stops the loop, the distances are
//     then meaningless, as with any min-plus formulation).
//
// Errors:
//   - ErrNonSquare, sparse.ErrNilMatrix.
//
// Complexity:
//   - O(log n) multiplies of O(n²) row pairs each; O(NVals) per round
//     for the transpose and the convergence check.
func Distances[T algebra.Number](graph *sparse.Matrix[T]) (*sparse.Matrix[T], error) {
	if graph == nil {
		return nil, fmt.Errorf("%s: %w", opDistances, sparse.ErrNilMatrix)
	}
	n := graph.NRows()
	if n != graph.NCols() {
		return nil, fmt.Errorf("%s: %w", opDistances, ErrNonSquare)
	}

	ring := algebra.MinPlus[T]()

	dist := graph.Clone()
	for i := 0; i < n; i++ {
		// Zero diagonal: an explicit stored 0, not absence.
		if err := dist.SetAt(i, i, 0); err != nil {
			return nil, fmt.Errorf("%s: %w", opDistances, err)
		}
	}

	// ⌈log₂ n⌉ squarings reach every simple path; one extra round
	// proves the fixpoint.
	rounds := 1
	for span := 1; span < n; span *= 2 {
		rounds++
	}

	for r := 0; r < rounds; r++ {
		dt, err := sparse.Transpose(dist)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", opDistances, err)
		}
		next, err := sparse.New[T](n, n)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", opDistances, err)
		}
		// next = dist min.+ (dt)ᵀ = dist min.+ dist
		if err = mxm.NoMaskNoAccum(next, ring, dist, dt); err != nil {
			return nil, fmt.Errorf("%s: %w", opDistances, err)
		}
		if sparse.Equal(dist, next) {
			break // fixpoint: no shorter path exists
		}
		dist = next
	}

	return dist, nil
}
