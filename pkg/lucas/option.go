package lucas

import (
	"errors"
	"fmt"
	"math"

	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Defaults applied to CallOptionParams fields left at zero.
const (
	DefaultTolerance = 1e-8
	DefaultMaxIter   = 500000
)

// CallOptionParams configures the option value iteration. A zero
// Tolerance or MaxIter selects the package default. Horizons lists the
// finite horizons at which to snapshot the option value; horizon t is
// the value after t Bellman updates, so horizon 0 is the all-zero
// starting vector.
type CallOptionParams struct {
	Coupon    float64
	Strike    float64
	Horizons  []int
	Tolerance float64
	MaxIter   int
}

// CallOptionResult carries the converged option value together with
// the requested finite-horizon snapshots.
type CallOptionResult struct {
	// Price is the infinite-horizon option value per state.
	Price []float64
	// AtHorizon maps each requested horizon to the option value after
	// that many Bellman updates. Horizons past the convergence point
	// map to the converged value, which later iterates match within
	// the tolerance.
	AtHorizon map[int][]float64
	// Iterations is the number of Bellman updates performed.
	Iterations int
}

// CallOption prices a perpetual call option on the consol bond with
// the given coupon: the right, exercisable in any period, to buy the
// consol at the strike price. The option value w solves the optimal
// stopping problem
//
//	w = max(beta * Pcheck * w, consol - strike)
//
// elementwise, computed by iterating the Bellman update from the zero
// vector until successive iterates differ by at most Tolerance in the
// sup norm. The update is a contraction for any model whose consol
// price exists, but MaxIter bounds the loop so a mis-specified model
// cannot spin forever.
func (m *Model) CallOption(params CallOptionParams) (*CallOptionResult, error) {
	tol := params.Tolerance
	if tol == 0 {
		tol = DefaultTolerance
	}
	if tol < 0 || math.IsNaN(tol) {
		return nil, errors.New("tolerance must be positive")
	}
	maxIter := params.MaxIter
	if maxIter == 0 {
		maxIter = DefaultMaxIter
	}
	if maxIter < 0 {
		return nil, errors.New("max iterations must be positive")
	}
	wanted := make(map[int]bool, len(params.Horizons))
	for _, h := range params.Horizons {
		if h < 0 {
			return nil, fmt.Errorf("horizon %d is negative", h)
		}
		wanted[h] = true
	}

	vbar, err := m.ConsolPrice(params.Coupon)
	if err != nil {
		return nil, err
	}
	exercise := make([]float64, m.n)
	for i, v := range vbar {
		exercise[i] = v - params.Strike
	}

	res := &CallOptionResult{AtHorizon: make(map[int][]float64, len(wanted))}
	w := make([]float64, m.n)
	wNext := make([]float64, m.n)
	wVec := mat.NewVecDense(m.n, w)
	var cont mat.VecDense
	it := 0
	for {
		if wanted[it] {
			snap := make([]float64, m.n)
			copy(snap, w)
			res.AtHorizon[it] = snap
		}
		cont.MulVec(m.pcheck, wVec)
		for i := range wNext {
			wNext[i] = math.Max(m.beta*cont.AtVec(i), exercise[i])
		}
		gap := floats.Distance(w, wNext, math.Inf(1))
		copy(w, wNext)
		it++
		if gap <= tol {
			break
		}
		if it >= maxIter {
			return nil, fmt.Errorf("%w: gap %v above tolerance %v after %d iterations", ErrDidNotConverge, gap, tol, it)
		}
	}
	log.Debug().Int("iterations", it).Float64("tolerance", tol).Msg("option-iteration-converged")

	res.Price = w
	res.Iterations = it
	for h := range wanted {
		if _, ok := res.AtHorizon[h]; !ok {
			snap := make([]float64, m.n)
			copy(snap, w)
			res.AtHorizon[h] = snap
		}
	}
	return res, nil
}
