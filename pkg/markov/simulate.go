package markov

import (
	"errors"
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Simulate draws a sample path of steps transitions starting from the
// given state and returns the visited state indices, length steps+1
// with the start state first. Pass a rand.Source for reproducible
// paths; a nil src draws from the shared global source.
func (c *Chain) Simulate(steps, start int, src rand.Source) ([]int, error) {
	if steps < 0 {
		return nil, errors.New("steps must be non-negative")
	}
	if start < 0 || start >= c.n {
		return nil, fmt.Errorf("start state %d out of range [0, %d)", start, c.n)
	}
	// One categorical sampler per transition row, all sharing src.
	rows := make([]distuv.Categorical, c.n)
	for i := 0; i < c.n; i++ {
		w := make([]float64, c.n)
		mat.Row(w, i, c.transition)
		rows[i] = distuv.NewCategorical(w, src)
	}
	path := make([]int, steps+1)
	path[0] = start
	state := start
	for t := 1; t <= steps; t++ {
		state = int(rows[state].Rand())
		path[t] = state
	}
	return path, nil
}

// SimulateValues draws a sample path like Simulate but maps each
// visited state through its growth value.
func (c *Chain) SimulateValues(steps, start int, src rand.Source) ([]float64, error) {
	path, err := c.Simulate(steps, start, src)
	if err != nil {
		return nil, err
	}
	vals := make([]float64, len(path))
	for i, s := range path {
		vals[i] = c.values[s]
	}
	return vals, nil
}
