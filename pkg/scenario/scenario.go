// Package scenario loads complete pricing scenarios, a chain plus every
// model parameter, from YAML documents and evaluates them in one pass.
package scenario

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/domino14/markovassets/pkg/lucas"
	"github.com/domino14/markovassets/pkg/markov"
)

// ChainSpec is the YAML form of a Markov chain.
type ChainSpec struct {
	Transition  [][]float64 `yaml:"transition"`
	StateValues []float64   `yaml:"state_values"`
}

// Scenario bundles a chain with the pricing parameters for a full
// evaluation: tree, consol, and the call option on the consol.
type Scenario struct {
	Name           string    `yaml:"name"`
	DiscountFactor float64   `yaml:"discount_factor"`
	RiskAversion   float64   `yaml:"risk_aversion"`
	Coupon         float64   `yaml:"coupon"`
	Strike         float64   `yaml:"strike"`
	Horizons       []int     `yaml:"horizons"`
	Tolerance      float64   `yaml:"tolerance"`
	Chain          ChainSpec `yaml:"chain"`
}

// Load reads a scenario YAML file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario file: %w", err)
	}
	return Parse(data)
}

// Parse unmarshals a scenario document and validates it.
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scenario yaml: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks the fields the markov and lucas constructors do not
// already cover.
func (s *Scenario) Validate() error {
	if len(s.Chain.Transition) == 0 {
		return errors.New("chain.transition is required")
	}
	if len(s.Chain.StateValues) == 0 {
		return errors.New("chain.state_values is required")
	}
	if s.DiscountFactor <= 0 || s.DiscountFactor >= 1 {
		return fmt.Errorf("discount_factor must be in (0, 1), got %v", s.DiscountFactor)
	}
	if s.Tolerance < 0 {
		return fmt.Errorf("tolerance must be non-negative, got %v", s.Tolerance)
	}
	for _, h := range s.Horizons {
		if h < 0 {
			return fmt.Errorf("horizons must be non-negative, got %d", h)
		}
	}
	return nil
}

// BuildChain constructs the markov.Chain the scenario describes.
func (s *Scenario) BuildChain() (*markov.Chain, error) {
	return markov.New(s.Chain.Transition, s.Chain.StateValues)
}

// BuildModel constructs the lucas.Model the scenario describes.
func (s *Scenario) BuildModel() (*lucas.Model, error) {
	chain, err := s.BuildChain()
	if err != nil {
		return nil, err
	}
	return lucas.NewModel(s.DiscountFactor, s.RiskAversion, chain)
}
