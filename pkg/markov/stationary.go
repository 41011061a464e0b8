package markov

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// StationaryDistribution returns the probability vector pi with
// pi P = pi and sum(pi) = 1, found by a direct linear solve with one
// balance equation swapped for the normalization constraint. The
// distribution is unique only for irreducible chains; supplying a
// reducible chain is a caller error and surfaces as a wrapped solver
// failure.
func (c *Chain) StationaryDistribution() ([]float64, error) {
	n := c.n
	a := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			a.Set(i, j, c.transition.At(j, i))
		}
		a.Set(i, i, a.At(i, i)-1)
	}
	// Normalization replaces the last (redundant) balance row.
	for j := 0; j < n; j++ {
		a.Set(n-1, j, 1)
	}
	b := mat.NewVecDense(n, nil)
	b.SetVec(n-1, 1)

	var pi mat.VecDense
	if err := pi.SolveVec(a, b); err != nil {
		return nil, fmt.Errorf("stationary distribution: %w", err)
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = pi.AtVec(i)
	}
	return out, nil
}
