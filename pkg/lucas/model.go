// Package lucas prices assets in a Lucas endowment economy whose
// dividend growth follows a finite-state Markov chain: the tree itself,
// a consol bond, and a perpetual call option on the consol.
//
// The representative agent has CRRA utility with risk aversion gamma
// and discount factor beta. Both pricing kernels are reweightings of
// the chain's transition matrix and are derived once, at construction,
// since a Model never changes after NewModel returns. Tree prices come
// out as price-dividend ratios, one entry per chain state; consol and
// option prices are plain state-wise prices.
package lucas

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/domino14/markovassets/pkg/markov"
)

var (
	// ErrInvalidModel is returned by NewModel for parameters outside
	// the model's domain.
	ErrInvalidModel = errors.New("invalid pricing model")

	// ErrSingularSystem is returned when a pricing system has no
	// unique solution, which happens once beta times the spectral
	// radius of the relevant kernel reaches one.
	ErrSingularSystem = errors.New("pricing system is singular")

	// ErrDidNotConverge is returned when the option value iteration
	// fails to reach its tolerance within the iteration bound.
	ErrDidNotConverge = errors.New("value iteration did not converge")
)

// Model prices claims on an endowment stream whose gross growth rate
// moves on a finite Markov chain. A Model is immutable and safe to
// share; it never mutates its chain.
type Model struct {
	beta  float64
	gamma float64
	chain *markov.Chain
	n     int

	// transition reweighted by growth^(1-gamma); prices dividend claims
	ptilde *mat.Dense
	// transition reweighted by growth^(-gamma); prices fixed payments
	pcheck *mat.Dense
}

// NewModel builds a pricing model from a discount factor beta in (0,1),
// a risk aversion coefficient gamma, and a chain.
func NewModel(beta, gamma float64, chain *markov.Chain) (*Model, error) {
	if chain == nil {
		return nil, fmt.Errorf("%w: nil chain", ErrInvalidModel)
	}
	if math.IsNaN(beta) || beta <= 0 || beta >= 1 {
		return nil, fmt.Errorf("%w: discount factor %v outside (0, 1)", ErrInvalidModel, beta)
	}
	if math.IsNaN(gamma) || math.IsInf(gamma, 0) {
		return nil, fmt.Errorf("%w: risk aversion %v", ErrInvalidModel, gamma)
	}
	m := &Model{beta: beta, gamma: gamma, chain: chain, n: chain.N()}
	m.ptilde = m.kernel(1 - gamma)
	m.pcheck = m.kernel(-gamma)
	return m, nil
}

// kernel reweights each transition column by the destination state's
// growth value raised to expo.
func (m *Model) kernel(expo float64) *mat.Dense {
	k := mat.NewDense(m.n, m.n, nil)
	for j := 0; j < m.n; j++ {
		w := math.Pow(m.chain.StateValue(j), expo)
		for i := 0; i < m.n; i++ {
			k.Set(i, j, m.chain.TransitionAt(i, j)*w)
		}
	}
	return k
}

// Beta returns the discount factor.
func (m *Model) Beta() float64 { return m.beta }

// Gamma returns the risk aversion coefficient.
func (m *Model) Gamma() float64 { return m.gamma }

// Chain returns the chain the model prices against.
func (m *Model) Chain() *markov.Chain { return m.chain }

// PTilde returns a copy of the kernel that prices dividend claims.
func (m *Model) PTilde() *mat.Dense { return mat.DenseCopyOf(m.ptilde) }

// PCheck returns a copy of the kernel that prices fixed payments.
func (m *Model) PCheck() *mat.Dense { return mat.DenseCopyOf(m.pcheck) }
