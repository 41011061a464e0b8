package lucas

import (
	"errors"
	"math"
	"testing"

	"github.com/matryer/is"
	"gonum.org/v1/gonum/floats"

	"github.com/domino14/markovassets/pkg/markov"
)

const Epsilon = 1e-3

func withinEpsilon(got, want []float64) bool {
	return floats.Distance(got, want, math.Inf(1)) < Epsilon
}

// growthChain is the five-state example economy: persistent states
// (0.0125 everywhere, 0.9375 added down the diagonal) with growth
// running from 5% boom down to 5% bust.
func growthChain(t testing.TB) *markov.Chain {
	t.Helper()
	n := 5
	p := make([][]float64, n)
	for i := range p {
		p[i] = make([]float64, n)
		for j := range p[i] {
			p[i][j] = 0.0125
		}
		p[i][i] += 0.9375
	}
	c, err := markov.New(p, []float64{1.05, 1.025, 1.0, 0.975, 0.95})
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func growthModel(t testing.TB) *Model {
	t.Helper()
	m, err := NewModel(0.94, 2.0, growthChain(t))
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func TestNewModel(t *testing.T) {
	is := is.New(t)
	m := growthModel(t)
	is.Equal(m.Beta(), 0.94)
	is.Equal(m.Gamma(), 2.0)
	is.Equal(m.Chain().N(), 5)
}

func TestNewModelRejectsNilChain(t *testing.T) {
	is := is.New(t)
	_, err := NewModel(0.94, 2.0, nil)
	is.True(errors.Is(err, ErrInvalidModel))
}

func TestNewModelRejectsBadBeta(t *testing.T) {
	is := is.New(t)
	chain := growthChain(t)
	for _, beta := range []float64{0, 1, -0.5, 1.5, math.NaN()} {
		_, err := NewModel(beta, 2.0, chain)
		is.True(errors.Is(err, ErrInvalidModel))
	}
}

func TestNewModelRejectsBadGamma(t *testing.T) {
	is := is.New(t)
	chain := growthChain(t)
	_, err := NewModel(0.94, math.NaN(), chain)
	is.True(errors.Is(err, ErrInvalidModel))
	_, err = NewModel(0.94, math.Inf(1), chain)
	is.True(errors.Is(err, ErrInvalidModel))
}

func TestKernelsReduceToTransition(t *testing.T) {
	is := is.New(t)
	chain := growthChain(t)

	// gamma = 1 makes the tree kernel exponent vanish.
	m, err := NewModel(0.94, 1.0, chain)
	is.NoErr(err)
	pt := m.PTilde()
	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			is.True(math.Abs(pt.At(i, j)-chain.TransitionAt(i, j)) < 1e-15)
		}
	}

	// gamma = 0 makes the bond kernel exponent vanish.
	m, err = NewModel(0.94, 0.0, chain)
	is.NoErr(err)
	pc := m.PCheck()
	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			is.True(math.Abs(pc.At(i, j)-chain.TransitionAt(i, j)) < 1e-15)
		}
	}
}

func TestKernelValues(t *testing.T) {
	is := is.New(t)
	m := growthModel(t)
	pt, pc := m.PTilde(), m.PCheck()

	// Spot checks against hand-computed reweightings at gamma = 2:
	// Ptilde scales column j by 1/lambda_j, Pcheck by 1/lambda_j^2.
	is.True(math.Abs(pt.At(0, 0)-0.95/1.05) < 1e-12)
	is.True(math.Abs(pt.At(0, 4)-0.0125/0.95) < 1e-12)
	is.True(math.Abs(pc.At(0, 0)-0.95/(1.05*1.05)) < 1e-12)
	is.True(math.Abs(pc.At(4, 4)-0.95/(0.95*0.95)) < 1e-12)
}

func TestKernelAccessorsReturnCopies(t *testing.T) {
	is := is.New(t)
	m := growthModel(t)
	pt := m.PTilde()
	want := pt.At(0, 0)
	pt.Set(0, 0, 1234)
	is.Equal(m.PTilde().At(0, 0), want)
}
