package chain

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aretw0/decaytable/pkg/domain"
)

// DefaultMaxFinalStates bounds FinalStates when a Builder does not set MaxFinalStates.
const DefaultMaxFinalStates = 100000

// FinalState is one exclusive final state of a mother with its summed branching fraction.
type FinalState struct {
	BF        float64
	Daughters Daughters
}

// FinalStates enumerates the exclusive final states of mother using the default builder settings.
func FinalStates(lookup Lookup, mother string, stable ...string) ([]FinalState, error) {
	return Builder{Lookup: lookup}.FinalStates(mother, stable...)
}

// FinalStates expands every mode of every decaying particle below mother and
// returns the distinct final states, identical ones merged with their
// branching fractions summed. Results are sorted by decreasing branching fraction.
func (b Builder) FinalStates(mother string, stable ...string) ([]FinalState, error) {
	if _, ok := b.Lookup.Lines(mother); !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrDecayNotFound, mother)
	}
	e := &enumeration{
		expansion: expansion{
			Builder: b,
			stable:  toSet(stable),
			onPath:  make(map[string]bool),
		},
		memo:  make(map[string][]FinalState),
		limit: b.MaxFinalStates,
	}
	if e.MaxDepth <= 0 {
		e.MaxDepth = DefaultMaxDepth
	}
	if e.limit <= 0 {
		e.limit = DefaultMaxFinalStates
	}

	states, err := e.decay(mother)
	if err != nil {
		return nil, err
	}
	out := append([]FinalState(nil), states...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].BF != out[j].BF {
			return out[i].BF > out[j].BF
		}
		return out[i].Daughters.String() < out[j].Daughters.String()
	})
	return out, nil
}

type enumeration struct {
	expansion
	memo  map[string][]FinalState
	limit int
}

// particle returns the final states a single product can end up in.
func (e *enumeration) particle(name string) ([]FinalState, error) {
	if !e.expands(name) {
		return []FinalState{{BF: 1, Daughters: NewDaughters(name)}}, nil
	}
	return e.decay(name)
}

func (e *enumeration) decay(mother string) ([]FinalState, error) {
	if states, ok := e.memo[mother]; ok {
		return states, nil
	}
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
	var all []FinalState
	for _, line := range lines {
		combos := []FinalState{{BF: line.BF, Daughters: Daughters{}}}
		for _, d := range line.Daughters {
			opts, err := e.particle(d)
			if err != nil {
				return nil, err
			}
			combos = cross(combos, opts)
			if len(combos) > e.limit {
				return nil, fmt.Errorf("%w: %s exceeds %d", domain.ErrTooManyFinalStates, mother, e.limit)
			}
		}
		all = append(all, combos...)
	}
	states := compact(all)
	e.memo[mother] = states
	return states, nil
}

func cross(left, right []FinalState) []FinalState {
	out := make([]FinalState, 0, len(left)*len(right))
	for _, l := range left {
		for _, r := range right {
			out = append(out, FinalState{BF: l.BF * r.BF, Daughters: l.Daughters.Merge(r.Daughters)})
		}
	}
	return out
}

// compact merges identical final states, keeping first-seen order.
func compact(states []FinalState) []FinalState {
	index := make(map[string]int, len(states))
	out := make([]FinalState, 0, len(states))
	for _, s := range states {
		key := s.Daughters.String()
		if i, ok := index[key]; ok {
			out[i].BF += s.BF
			continue
		}
		index[key] = len(out)
		out = append(out, s)
	}
	return out
}
