package chain

import (
	"fmt"
	"math"
	"strings"

	"github.com/aretw0/decaytable/pkg/domain"
)

// Flatten collapses c into a single mode holding its genuinely final
// particles, sorted by name, and the combined branching fraction. Products
// listed in stable are kept as they are. Only the top-level model is kept.
//
// Every (sub)chain must carry exactly one mode. Flattening a flat chain
// returns an equal chain.
func Flatten(c *Chain, stable ...string) (*Chain, error) {
	if len(c.Modes) != 1 {
		return nil, ambiguous(c)
	}
	skip := toSet(stable)
	modes, keys, err := collectModes(c, skip)
	if err != nil {
		return nil, err
	}
	if err := checkAcyclic(c.Mother, modes); err != nil {
		return nil, err
	}

	top := c.Modes[0]
	fs := NewDaughters(top.Names()...)
	bf := top.BF

	for {
		replaced := false
		for _, k := range keys {
			n := fs[k]
			if n <= 0 {
				continue
			}
			m := modes[k]
			bf *= math.Pow(m.BF, float64(n))
			for i := 0; i < n; i++ {
				fs.Add(m.Names()...)
			}
			fs.Remove(k, n)
			replaced = true
		}
		if !replaced {
			break
		}
	}

	products := make([]Product, 0, fs.Len())
	for _, n := range fs.List() {
		products = append(products, Product{Name: n})
	}
	return &Chain{
		Mother: c.Mother,
		Modes: []Mode{{
			BF:          bf,
			Products:    products,
			Model:       top.Model,
			ModelParams: top.ModelParams,
		}},
	}, nil
}

// collectModes maps every expanded, non-stable particle to its single mode.
// keys holds the mother first, then particles in discovery order.
func collectModes(c *Chain, skip map[string]bool) (map[string]Mode, []string, error) {
	modes := make(map[string]Mode)
	var keys []string
	queue := []*Chain{c}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if len(cur.Modes) != 1 {
			return nil, nil, ambiguous(cur)
		}
		if _, seen := modes[cur.Mother]; seen {
			continue
		}
		modes[cur.Mother] = cur.Modes[0]
		keys = append(keys, cur.Mother)
		for _, p := range cur.Modes[0].Products {
			if p.Sub != nil && !skip[p.Name] {
				queue = append(queue, p.Sub)
			}
		}
	}
	return modes, keys, nil
}

// checkAcyclic rejects particles that reappear in their own expansion.
func checkAcyclic(root string, modes map[string]Mode) error {
	const (
		visiting = 1
		done     = 2
	)
	state := make(map[string]int, len(modes))
	var visit func(name string, path []string) error
	visit = func(name string, path []string) error {
		path = append(path[:len(path):len(path)], name)
		switch state[name] {
		case visiting:
			return fmt.Errorf("%w: %s", domain.ErrDecayCycle, strings.Join(path, " -> "))
		case done:
			return nil
		}
		state[name] = visiting
		for _, d := range modes[name].Names() {
			if _, ok := modes[d]; ok {
				if err := visit(d, path); err != nil {
					return err
				}
			}
		}
		state[name] = done
		return nil
	}
	return visit(root, nil)
}

func ambiguous(c *Chain) error {
	return fmt.Errorf("%w: %s has %d modes", domain.ErrAmbiguousChain, c.Mother, len(c.Modes))
}
