package chain

import (
	"github.com/aretw0/decaytable/pkg/domain"
)

// Lookup gives read access to decay lines. *domain.Table implements it.
type Lookup interface {
	Lines(mother string) ([]domain.DecayLine, bool)
}

// Chain is a mother particle with all its decay modes expanded.
type Chain struct {
	Mother string
	Modes  []Mode
}

// Mode is one decay mode of a chain.
type Mode struct {
	BF          float64
	Products    []Product
	Model       string
	ModelParams []domain.Param
}

// Product is a final-state particle, expanded into Sub when it decays further.
type Product struct {
	Name string
	Sub  *Chain
}

// IsLeaf reports whether the product is not expanded.
func (p Product) IsLeaf() bool {
	return p.Sub == nil
}

// Names returns the product names of the mode, in order.
func (m Mode) Names() []string {
	out := make([]string, len(m.Products))
	for i, p := range m.Products {
		out[i] = p.Name
	}
	return out
}

// BF returns the branching fraction of the top-level mode when the chain has exactly one.
func (c *Chain) BF() (float64, error) {
	if len(c.Modes) != 1 {
		return 0, ambiguous(c)
	}
	return c.Modes[0].BF, nil
}

// IsFlat reports whether the chain is a single mode with no sub-decays.
func (c *Chain) IsFlat() bool {
	if len(c.Modes) != 1 {
		return false
	}
	for _, p := range c.Modes[0].Products {
		if !p.IsLeaf() {
			return false
		}
	}
	return true
}

// NumDecays counts the modes in the chain, sub-decays included.
func (c *Chain) NumDecays() int {
	n := 0
	for _, m := range c.Modes {
		n++
		for _, p := range m.Products {
			if p.Sub != nil {
				n += p.Sub.NumDecays()
			}
		}
	}
	return n
}
