package extract

// Pair is one ChargeConj declaration.
type Pair struct {
	Particle  string
	Conjugate string
}

// Pairs is the ConjugatePairTable: explicit conjugates in declaration order,
// queryable in either direction.
type Pairs struct {
	order   []Pair
	forward map[string]string
	reverse map[string]string
}

// NewPairs creates an empty pair table.
func NewPairs() *Pairs {
	return &Pairs{
		forward: make(map[string]string),
		reverse: make(map[string]string),
	}
}

// Add records a declaration. A later declaration for the same particle replaces the earlier one.
func (p *Pairs) Add(particle, conjugate string) {
	if old, ok := p.forward[particle]; !ok {
		p.order = append(p.order, Pair{Particle: particle, Conjugate: conjugate})
	} else {
		delete(p.reverse, old)
		for i := range p.order {
			if p.order[i].Particle == particle {
				p.order[i].Conjugate = conjugate
			}
		}
	}
	p.forward[particle] = conjugate
	p.reverse[conjugate] = particle
}

// Forward returns the conjugate declared for particle.
func (p *Pairs) Forward(particle string) (string, bool) {
	c, ok := p.forward[particle]
	return c, ok
}

// Reverse returns the particle whose declared conjugate is name.
func (p *Pairs) Reverse(name string) (string, bool) {
	c, ok := p.reverse[name]
	return c, ok
}

// Lookup checks the forward table first, then the reverse one.
func (p *Pairs) Lookup(name string) (string, bool) {
	if c, ok := p.forward[name]; ok {
		return c, true
	}
	return p.Reverse(name)
}

// List returns the declarations in order.
func (p *Pairs) List() []Pair {
	return append([]Pair(nil), p.order...)
}

// Map returns the declarations as particle -> conjugate.
func (p *Pairs) Map() map[string]string {
	out := make(map[string]string, len(p.forward))
	for k, v := range p.forward {
		out[k] = v
	}
	return out
}

// Len returns the number of declarations.
func (p *Pairs) Len() int {
	return len(p.order)
}
