package lucas

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// TreePrice returns the price-dividend ratio of the Lucas tree in each
// state: the v solving (I - beta*Ptilde) v = beta*Ptilde*1.
//
// A unique solution exists only while beta times the spectral radius of
// Ptilde stays below one. Keeping beta and gamma inside that region is
// the caller's responsibility; outside it the solve fails with
// ErrSingularSystem.
func (m *Model) TreePrice() ([]float64, error) {
	d := make([]float64, m.n)
	for i := range d {
		d[i] = 1
	}
	v, err := m.solvePricing(m.ptilde, d)
	if err != nil {
		return nil, fmt.Errorf("tree price: %w", err)
	}
	return v, nil
}

// ConsolPrice returns the state-wise price of a perpetual bond paying
// coupon each period: the p solving
// (I - beta*Pcheck) p = beta*Pcheck*(coupon*1). The spectral radius
// precondition of TreePrice applies with Pcheck in place of Ptilde.
func (m *Model) ConsolPrice(coupon float64) ([]float64, error) {
	d := make([]float64, m.n)
	for i := range d {
		d[i] = coupon
	}
	p, err := m.solvePricing(m.pcheck, d)
	if err != nil {
		return nil, fmt.Errorf("consol price: %w", err)
	}
	return p, nil
}

// solvePricing solves (I - beta*K) x = K*(beta*d) for x.
func (m *Model) solvePricing(k *mat.Dense, d []float64) ([]float64, error) {
	n := m.n
	a := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := -m.beta * k.At(i, j)
			if i == j {
				v++
			}
			a.Set(i, j, v)
		}
	}
	bd := make([]float64, n)
	for i := range bd {
		bd[i] = m.beta * d[i]
	}
	var rhs mat.VecDense
	rhs.MulVec(k, mat.NewVecDense(n, bd))

	var x mat.VecDense
	if err := x.SolveVec(a, &rhs); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSingularSystem, err)
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = x.AtVec(i)
	}
	return out, nil
}
