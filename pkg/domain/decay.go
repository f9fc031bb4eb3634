package domain

import (
	"regexp"
	"strconv"
	"strings"
)

// Param is a single decay-model parameter: either a number or a symbolic name.
// Symbols that look like numerals are coerced by the parameter resolver.
type Param struct {
	Num     float64
	Sym     string
	numeric bool
}

// Number creates a numeric parameter.
func Number(v float64) Param {
	return Param{Num: v, numeric: true}
}

// Symbol creates a symbolic parameter.
func Symbol(s string) Param {
	return Param{Sym: s}
}

// IsNumber reports whether the parameter holds a numeric value.
func (p Param) IsNumber() bool {
	return p.numeric
}

func (p Param) String() string {
	if p.numeric {
		return strconv.FormatFloat(p.Num, 'g', -1, 64)
	}
	return p.Sym
}

// Any returns the parameter as float64 or string.
func (p Param) Any() any {
	if p.numeric {
		return p.Num
	}
	return p.Sym
}

var numeral = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// IsNumeral reports whether s is a decimal numeric literal as accepted in decay files.
func IsNumeral(s string) bool {
	return numeral.MatchString(s)
}

// ParseNumeral parses a numeric literal; ok is false for anything that is not a numeral.
func ParseNumeral(s string) (float64, bool) {
	if !IsNumeral(s) {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// ConjugatePlaceholder names the conjugate of a particle no lookup could resolve.
func ConjugatePlaceholder(name string) string {
	return "ChargeConj(" + name + ")"
}

// IsConjugatePlaceholder reports whether name was produced by ConjugatePlaceholder.
func IsConjugatePlaceholder(name string) bool {
	return strings.HasPrefix(name, "ChargeConj(") && strings.HasSuffix(name, ")")
}

// FormatParams joins parameters with single spaces.
func FormatParams(params []Param) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = p.String()
	}
	return strings.Join(parts, " ")
}

// DecayLine is one decay mode of a mother particle.
type DecayLine struct {
	BF          float64
	Daughters   []string // ordered, repeats allowed
	Model       string
	ModelParams []Param

	// ModelAlias names the ModelAlias the model was taken from. A line whose
	// Model is empty but ModelAlias is set still awaits alias resolution.
	ModelAlias string

	// UsesRadiativeCorrection is set by a per-line PHOTOS flag or a global yesPhotos.
	UsesRadiativeCorrection bool
}

// Clone returns a deep copy of the line.
func (l DecayLine) Clone() DecayLine {
	out := l
	out.Daughters = append([]string(nil), l.Daughters...)
	if l.ModelParams != nil {
		out.ModelParams = append([]Param(nil), l.ModelParams...)
	}
	return out
}

// Decay groups the decay lines declared for one mother.
type Decay struct {
	Mother string
	Lines  []DecayLine
	Line   int // source line of the Decay statement, 0 if synthesized
}

// Clone returns a deep copy of the decay.
func (d Decay) Clone() Decay {
	out := Decay{Mother: d.Mother, Line: d.Line}
	if d.Lines != nil {
		out.Lines = make([]DecayLine, len(d.Lines))
		for i, l := range d.Lines {
			out.Lines[i] = l.Clone()
		}
	}
	return out
}
