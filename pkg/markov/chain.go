// Package markov provides finite-state Markov chains whose states carry
// growth values, the driving process for the asset pricing model.
package markov

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// RowSumTol is how far a transition row may deviate from summing to
// exactly one before New rejects it.
const RowSumTol = 1e-9

// ErrInvalidChain is returned by New when the transition matrix or the
// state values do not describe a valid chain.
var ErrInvalidChain = errors.New("invalid markov chain")

// Chain is a Markov chain over states 0..n-1 together with the growth
// multiplier attached to each state. A Chain is immutable once
// constructed; accessors hand out copies.
type Chain struct {
	transition *mat.Dense
	values     []float64
	n          int
}

// New validates the transition matrix and state values and builds a
// chain. Every row of transition must be a probability distribution:
// non-negative entries summing to one within RowSumTol. One state value
// per state is required, and each must be positive and finite, since
// the pricing kernels raise them to arbitrary real powers.
func New(transition [][]float64, stateValues []float64) (*Chain, error) {
	n := len(transition)
	if n == 0 {
		return nil, fmt.Errorf("%w: empty transition matrix", ErrInvalidChain)
	}
	if len(stateValues) != n {
		return nil, fmt.Errorf("%w: %d states but %d state values", ErrInvalidChain, n, len(stateValues))
	}
	p := mat.NewDense(n, n, nil)
	for i, row := range transition {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrInvalidChain, i, len(row), n)
		}
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
				return nil, fmt.Errorf("%w: transition[%d][%d] = %v", ErrInvalidChain, i, j, v)
			}
			p.Set(i, j, v)
		}
		if sum := floats.Sum(row); math.Abs(sum-1) > RowSumTol {
			return nil, fmt.Errorf("%w: row %d sums to %v, want 1", ErrInvalidChain, i, sum)
		}
	}
	for i, v := range stateValues {
		if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			return nil, fmt.Errorf("%w: state value %d = %v, want positive and finite", ErrInvalidChain, i, v)
		}
	}
	values := make([]float64, n)
	copy(values, stateValues)
	return &Chain{transition: p, values: values, n: n}, nil
}

// N returns the number of states.
func (c *Chain) N() int { return c.n }

// TransitionAt returns the probability of moving from state i to state j.
func (c *Chain) TransitionAt(i, j int) float64 { return c.transition.At(i, j) }

// Transition returns a copy of the transition matrix.
func (c *Chain) Transition() *mat.Dense { return mat.DenseCopyOf(c.transition) }

// StateValue returns the growth value attached to state i.
func (c *Chain) StateValue(i int) float64 { return c.values[i] }

// StateValues returns a copy of the per-state growth values.
func (c *Chain) StateValues() []float64 {
	out := make([]float64, c.n)
	copy(out, c.values)
	return out
}
