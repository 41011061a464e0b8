package scenario

import (
	"github.com/rs/zerolog/log"

	"github.com/domino14/markovassets/pkg/lucas"
)

// Result is a full scenario evaluation.
type Result struct {
	TreePrice   []float64
	ConsolPrice []float64
	CallOption  *lucas.CallOptionResult
}

// Run prices the tree, the consol, and the call option on the consol
// for the scenario's chain and parameters.
func (s *Scenario) Run() (*Result, error) {
	model, err := s.BuildModel()
	if err != nil {
		return nil, err
	}
	log.Info().Str("scenario", s.Name).Int("states", model.Chain().N()).Msg("running-scenario")

	tree, err := model.TreePrice()
	if err != nil {
		return nil, err
	}
	consol, err := model.ConsolPrice(s.Coupon)
	if err != nil {
		return nil, err
	}
	opt, err := model.CallOption(lucas.CallOptionParams{
		Coupon:    s.Coupon,
		Strike:    s.Strike,
		Horizons:  s.Horizons,
		Tolerance: s.Tolerance,
	})
	if err != nil {
		return nil, err
	}
	return &Result{TreePrice: tree, ConsolPrice: consol, CallOption: opt}, nil
}
