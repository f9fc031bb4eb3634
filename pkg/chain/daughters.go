package chain

import (
	"sort"
	"strings"

	"github.com/aretw0/decaytable/pkg/domain"
	"github.com/aretw0/decaytable/pkg/ports"
)

// Daughters is a multiset of particle names.
type Daughters map[string]int

// NewDaughters counts names.
func NewDaughters(names ...string) Daughters {
	d := make(Daughters, len(names))
	d.Add(names...)
	return d
}

// Add inserts one occurrence of each name.
func (d Daughters) Add(names ...string) {
	for _, n := range names {
		d[n]++
	}
}

// Remove drops up to n occurrences of name.
func (d Daughters) Remove(name string, n int) {
	if d[name] <= n {
		delete(d, name)
		return
	}
	d[name] -= n
}

// Merge returns the union of both multisets.
func (d Daughters) Merge(other Daughters) Daughters {
	out := d.Clone()
	for n, c := range other {
		out[n] += c
	}
	return out
}

// Clone returns a copy.
func (d Daughters) Clone() Daughters {
	out := make(Daughters, len(d))
	for n, c := range d {
		if c > 0 {
			out[n] = c
		}
	}
	return out
}

// Len returns the number of particles, counting repeats.
func (d Daughters) Len() int {
	n := 0
	for _, c := range d {
		if c > 0 {
			n += c
		}
	}
	return n
}

// List returns the particles sorted by name, repeats included.
func (d Daughters) List() []string {
	out := make([]string, 0, d.Len())
	for n, c := range d {
		for i := 0; i < c; i++ {
			out = append(out, n)
		}
	}
	sort.Strings(out)
	return out
}

func (d Daughters) String() string {
	return strings.Join(d.List(), " ")
}

// ChargeConjugate returns the conjugate final state. Names the database
// cannot invert get the ChargeConj(name) placeholder.
func (d Daughters) ChargeConjugate(db ports.ParticleDB) Daughters {
	out := make(Daughters, len(d))
	for n, c := range d {
		if c <= 0 {
			continue
		}
		cc := domain.ConjugatePlaceholder(n)
		if db != nil {
			if anti, err := db.Invert(n); err == nil {
				cc = anti
			}
		}
		out[cc] += c
	}
	return out
}
