package resolve

import "github.com/aretw0/decaytable/pkg/domain"

// SubstituteParameters resolves symbolic model parameters. Numeral tokens
// become numbers, Define names become their value, anything else stays
// symbolic since some models take string arguments.
func SubstituteParameters(decays []domain.Decay, defs map[string]float64) {
	for i := range decays {
		for j := range decays[i].Lines {
			params := decays[i].Lines[j].ModelParams
			for k, p := range params {
				params[k] = resolveParam(p, defs)
			}
		}
	}
}

func resolveParam(p domain.Param, defs map[string]float64) domain.Param {
	if p.IsNumber() {
		return p
	}
	if v, ok := domain.ParseNumeral(p.Sym); ok {
		return domain.Number(v)
	}
	if v, ok := defs[p.Sym]; ok {
		return domain.Number(v)
	}
	return p
}
