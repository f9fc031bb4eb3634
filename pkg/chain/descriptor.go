package chain

import (
	"sort"
	"strings"
)

// Default descriptor patterns.
const (
	DefaultOuter = "{mother} -> {daughters}"
	DefaultInner = "({mother} -> {daughters})"
)

// Descriptor renders c as text. outer formats the top-level decay and inner
// every sub-decay; empty patterns select the defaults. Daughters are sorted
// by name, e.g. "D*+ -> (D0 -> (K_S0 -> pi+ pi-) (pi0 -> gamma gamma)) pi+".
func Descriptor(c *Chain, outer, inner string) (string, error) {
	if outer == "" {
		outer = DefaultOuter
	}
	if inner == "" {
		inner = DefaultInner
	}
	return describe(c, outer, inner)
}

func describe(c *Chain, pattern, inner string) (string, error) {
	if len(c.Modes) != 1 {
		return "", ambiguous(c)
	}
	products := append([]Product(nil), c.Modes[0].Products...)
	sort.SliceStable(products, func(i, j int) bool {
		return products[i].Name < products[j].Name
	})

	parts := make([]string, len(products))
	for i, p := range products {
		if p.IsLeaf() {
			parts[i] = p.Name
			continue
		}
		s, err := describe(p.Sub, inner, inner)
		if err != nil {
			return "", err
		}
		parts[i] = s
	}
	r := strings.NewReplacer("{mother}", c.Mother, "{daughters}", strings.Join(parts, " "))
	return r.Replace(pattern), nil
}
