package chain

import (
	"fmt"
	"strings"

	"github.com/aretw0/decaytable/pkg/domain"
)

// DefaultMaxDepth bounds chain expansion when a Builder does not set one.
const DefaultMaxDepth = 64

// Builder expands decay chains from a Lookup.
type Builder struct {
	Lookup         Lookup
	MaxDepth       int // zero means DefaultMaxDepth
	MaxFinalStates int // zero means DefaultMaxFinalStates
}

// Build expands mother using the default builder settings.
func Build(lookup Lookup, mother string, stable ...string) (*Chain, error) {
	return Builder{Lookup: lookup}.Build(mother, stable...)
}

// Build expands every decay mode of mother recursively. Particles in stable,
// and particles without decay lines, stay leaves. The root is always expanded.
func (b Builder) Build(mother string, stable ...string) (*Chain, error) {
	if _, ok := b.Lookup.Lines(mother); !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrDecayNotFound, mother)
	}
	e := &expansion{
		Builder: b,
		stable:  toSet(stable),
		onPath:  make(map[string]bool),
	}
	if e.MaxDepth <= 0 {
		e.MaxDepth = DefaultMaxDepth
	}
	return e.chain(mother)
}

type expansion struct {
	Builder
	stable map[string]bool
	onPath map[string]bool
	path   []string
}

func (e *expansion) chain(mother string) (*Chain, error) {
	if e.onPath[mother] {
		return nil, fmt.Errorf("%w: %s -> %s", domain.ErrDecayCycle, strings.Join(e.path, " -> "), mother)
	}
	if len(e.path) >= e.MaxDepth {
		return nil, fmt.Errorf("%w: more than %d levels below %s", domain.ErrChainTooDeep, e.MaxDepth, e.path[0])
	}
	e.onPath[mother] = true
	e.path = append(e.path, mother)
	defer func() {
		delete(e.onPath, mother)
		e.path = e.path[:len(e.path)-1]
	}()

	lines, _ := e.Lookup.Lines(mother)
	c := &Chain{Mother: mother, Modes: make([]Mode, 0, len(lines))}
	for _, line := range lines {
		mode := Mode{
			BF:          line.BF,
			Model:       line.Model,
			ModelParams: line.ModelParams,
			Products:    make([]Product, 0, len(line.Daughters)),
		}
		for _, d := range line.Daughters {
			p := Product{Name: d}
			if e.expands(d) {
				sub, err := e.chain(d)
				if err != nil {
					return nil, err
				}
				p.Sub = sub
			}
			mode.Products = append(mode.Products, p)
		}
		c.Modes = append(c.Modes, mode)
	}
	return c, nil
}

func (e *expansion) expands(name string) bool {
	if e.stable[name] {
		return false
	}
	lines, ok := e.Lookup.Lines(name)
	return ok && len(lines) > 0
}

func toSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return set
}
