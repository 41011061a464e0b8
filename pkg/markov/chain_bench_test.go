package markov

import (
	"testing"

	"golang.org/x/exp/rand"
)

// The classic two-state simulator workload: long sample paths on a
// persistent low/high chain.
func BenchmarkSimulateTwoState(b *testing.B) {
	c, err := New([][]float64{
		{0.9, 0.1},
		{0.2, 0.8},
	}, []float64{0.95, 1.05})
	if err != nil {
		b.Fatal(err)
	}
	src := rand.NewSource(1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := c.Simulate(10000, 0, src); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkStationaryDistribution(b *testing.B) {
	n := 25
	p := make([][]float64, n)
	values := make([]float64, n)
	for i := range p {
		p[i] = make([]float64, n)
		for j := range p[i] {
			p[i][j] = 0.5 / float64(n-1)
		}
		p[i][i] = 0.5
		values[i] = 1
	}
	c, err := New(p, values)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := c.StationaryDistribution(); err != nil {
			b.Fatal(err)
		}
	}
}
