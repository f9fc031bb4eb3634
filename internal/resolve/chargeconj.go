package resolve

import (
	"fmt"

	"github.com/aretw0/decaytable/internal/extract"
	"github.com/aretw0/decaytable/pkg/domain"
	"github.com/aretw0/decaytable/pkg/ports"
)

// Conjugator resolves conjugate particle names using the file's ChargeConj
// declarations and, when set, a particle database.
type Conjugator struct {
	Pairs *extract.Pairs
	DB    ports.ParticleDB
}

// Source finds the particle whose decay a CDecay request for ccName mirrors.
func (c Conjugator) Source(ccName string) string {
	if c.Pairs != nil {
		if m, ok := c.Pairs.Lookup(ccName); ok {
			return m
		}
	}
	return c.invert(ccName)
}

func (c Conjugator) invert(name string) string {
	if c.DB != nil {
		if anti, err := c.DB.Invert(name); err == nil {
			return anti
		}
	}
	return domain.ConjugatePlaceholder(name)
}

// walk holds the memo of one conjugation so a name maps consistently within it.
type walk struct {
	Conjugator
	cache map[string]string
}

func (c Conjugator) newWalk(mother, ccMother string) *walk {
	w := &walk{Conjugator: c, cache: make(map[string]string)}
	if c.Pairs != nil {
		for _, p := range c.Pairs.List() {
			w.cache[p.Particle] = p.Conjugate
		}
	}
	w.cache[mother] = ccMother
	return w
}

func (w *walk) conjugate(name string) string {
	if cc, ok := w.cache[name]; ok {
		return cc
	}
	var cc string
	if rev, ok := w.lookupReverse(name); ok {
		cc = rev
	} else {
		cc = w.invert(name)
	}
	w.cache[name] = cc
	return cc
}

func (w *walk) lookupReverse(name string) (string, bool) {
	if w.Pairs == nil {
		return "", false
	}
	return w.Pairs.Reverse(name)
}

// Conjugate returns a deep copy of d with every particle name, mother
// included, replaced by its conjugate. The mother becomes ccMother.
func (c Conjugator) Conjugate(d domain.Decay, ccMother string) domain.Decay {
	w := c.newWalk(d.Mother, ccMother)
	out := d.Clone()
	out.Mother = w.conjugate(d.Mother)
	out.Line = 0
	for i := range out.Lines {
		for j, name := range out.Lines[i].Daughters {
			out.Lines[i].Daughters[j] = w.conjugate(name)
		}
	}
	return out
}

// ConjugateDecays synthesizes the decay of every requested conjugate mother.
// Requests shadowed by a literal Decay, requests without a source decay and
// requests on self-conjugate particles are skipped with a diagnostic.
func ConjugateDecays(decays []domain.Decay, requests []string, c Conjugator, diags *domain.Diagnostics) []domain.Decay {
	n := len(decays)
	for _, ccName := range requests {
		if _, ok := indexOf(decays[:n], ccName); ok {
			diags.Add(domain.DiagCDecayShadowed,
				fmt.Sprintf("%s is defined with both Decay and CDecay; the CDecay is ignored", ccName),
				ccName)
			continue
		}

		mother := c.Source(ccName)
		i, ok := indexOf(decays[:n], mother)
		if !ok {
			diags.Add(domain.DiagSourceNotFound,
				fmt.Sprintf("CDecay %s: no Decay statement for %s, conjugate skipped", ccName, mother),
				ccName)
			continue
		}

		if c.DB != nil && ports.IsSelfConjugate(c.DB, mother) {
			diags.Add(domain.DiagSelfConjugateRequest,
				fmt.Sprintf("CDecay %s: %s is self-conjugate, conjugate skipped", ccName, mother),
				ccName, mother)
			continue
		}

		decays = append(decays, c.Conjugate(decays[i], ccName))
	}
	return decays
}
