package domain

import (
	"fmt"
)

// PhotosFlag is the global radiative-correction setting of a decay file.
type PhotosFlag int

const (
	PhotosNo PhotosFlag = iota
	PhotosYes
)

func (f PhotosFlag) String() string {
	if f == PhotosYes {
		return "yes"
	}
	return "no"
}

// Lineshape is a SetLineshapePW setting: the partial wave used for one
// mother and daughter pair.
type Lineshape struct {
	Particles [3]string // mother, daughter, daughter
	Wave      int
}

// Table is the resolved decay table: mother name to ordered decay lines.
// It is immutable once built; accessors hand out copies.
type Table struct {
	order  []string
	decays map[string][]DecayLine
}

// NewTable freezes an insertion-ordered list of decays. Mother names must be unique.
func NewTable(decays []Decay) (*Table, error) {
	t := &Table{
		order:  make([]string, 0, len(decays)),
		decays: make(map[string][]DecayLine, len(decays)),
	}
	for _, d := range decays {
		if _, dup := t.decays[d.Mother]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateMother, d.Mother)
		}
		t.order = append(t.order, d.Mother)
		t.decays[d.Mother] = d.Clone().Lines
	}
	return t, nil
}

// Len returns the number of mothers in the table.
func (t *Table) Len() int {
	return len(t.order)
}

// Mothers returns the mother names in insertion order.
func (t *Table) Mothers() []string {
	return append([]string(nil), t.order...)
}

// Has reports whether mother has decay lines.
func (t *Table) Has(mother string) bool {
	_, ok := t.decays[mother]
	return ok
}

// Lines returns a copy of the decay lines of mother.
func (t *Table) Lines(mother string) ([]DecayLine, bool) {
	lines, ok := t.decays[mother]
	if !ok {
		return nil, false
	}
	out := make([]DecayLine, len(lines))
	for i, l := range lines {
		out[i] = l.Clone()
	}
	return out, true
}

// Decays returns copies of all decays in insertion order.
func (t *Table) Decays() []Decay {
	out := make([]Decay, 0, len(t.order))
	for _, m := range t.order {
		lines, _ := t.Lines(m)
		out = append(out, Decay{Mother: m, Lines: lines})
	}
	return out
}
