// Package extract walks a decay-file syntax tree once and collects its
// statements into lookup tables.
package extract

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/aretw0/decaytable/pkg/cst"
	"github.com/aretw0/decaytable/pkg/domain"
)

// CopyDirective is a CopyDecay statement.
type CopyDirective struct {
	Target string
	Source string
}

// Bundle holds every table produced by Extract.
type Bundle struct {
	Definitions  map[string]float64
	Aliases      map[string]string
	ChargeConj   *Pairs
	ModelAliases map[string]ModelAlias
	Copies       []CopyDirective
	JetSet       map[string]map[int]domain.Param
	Pythia       map[string]domain.Param
	Lineshapes   []domain.Lineshape

	Photos         domain.PhotosFlag
	PhotosDeclared int // number of yesPhotos/noPhotos statements

	// Decays holds the literal Decay blocks in file order, duplicates included.
	Decays []domain.Decay

	// CDecays lists the mothers of CDecay statements, sorted.
	CDecays []string
}

// ModelAlias is the expansion of a ModelAlias statement.
type ModelAlias struct {
	Model  string
	Params []domain.Param
}

// Extract scans root and returns its statement tables. The tree is not modified.
func Extract(root *cst.Node) (*Bundle, error) {
	if root == nil || root.Kind != cst.KindFile {
		return nil, malformed(root, "expected file root")
	}
	if err := noNilChildren(root); err != nil {
		return nil, err
	}

	b := &Bundle{
		Definitions:  make(map[string]float64),
		Aliases:      make(map[string]string),
		ChargeConj:   NewPairs(),
		ModelAliases: make(map[string]ModelAlias),
		JetSet:       make(map[string]map[int]domain.Param),
		Pythia:       make(map[string]domain.Param),
	}
	cdecays := make(map[string]bool)

	for _, stmt := range root.Children {
		var err error
		switch stmt.Kind {
		case cst.KindDecay:
			err = b.decay(stmt)
		case cst.KindDefine:
			err = b.define(stmt)
		case cst.KindAlias:
			var a, c string
			if a, c, err = particlePair(stmt); err == nil {
				b.Aliases[a] = c
			}
		case cst.KindChargeConj:
			var p, q string
			if p, q, err = particlePair(stmt); err == nil {
				b.ChargeConj.Add(p, q)
			}
		case cst.KindCopyDecay:
			var target, source string
			if target, source, err = particlePair(stmt); err == nil {
				b.Copies = append(b.Copies, CopyDirective{Target: target, Source: source})
			}
		case cst.KindModelAlias:
			err = b.modelAlias(stmt)
		case cst.KindCDecay:
			if err = shape(stmt, cst.KindParticle); err == nil {
				cdecays[stmt.Child(0).Value] = true
			}
		case cst.KindGlobalPhotos:
			err = b.photos(stmt)
		case cst.KindJetSetDef:
			err = b.jetset(stmt)
		case cst.KindPythiaDef:
			err = b.pythia(stmt)
		case cst.KindLineshapePW:
			err = b.lineshape(stmt)
		default:
			err = malformed(stmt, "unexpected statement")
		}
		if err != nil {
			return nil, err
		}
	}

	for m := range cdecays {
		b.CDecays = append(b.CDecays, m)
	}
	sort.Strings(b.CDecays)
	b.applyGlobalPhotos()
	return b, nil
}

func (b *Bundle) define(n *cst.Node) error {
	if err := shape(n, cst.KindLabel, cst.KindValue); err != nil {
		return err
	}
	v, ok := domain.ParseNumeral(n.Child(1).Value)
	if !ok {
		return malformed(n, fmt.Sprintf("definition %s is not a number: %q", n.Child(0).Value, n.Child(1).Value))
	}
	b.Definitions[n.Child(0).Value] = v
	return nil
}

func (b *Bundle) modelAlias(n *cst.Node) error {
	if len(n.Children) != 2 || n.Child(0).Kind != cst.KindLabel || n.Child(1).Kind != cst.KindModel {
		return malformed(n, "expected label and model")
	}
	name, params, label, err := model(n.Child(1))
	if err != nil {
		return err
	}
	if label {
		return malformed(n, "model alias must name a model, not another alias")
	}
	b.ModelAliases[n.Child(0).Value] = ModelAlias{Model: name, Params: params}
	return nil
}

func (b *Bundle) photos(n *cst.Node) error {
	if len(n.Children) != 1 {
		return malformed(n, "expected yes or no")
	}
	switch n.Child(0).Kind {
	case cst.KindYes:
		b.Photos = domain.PhotosYes
	case cst.KindNo:
		b.Photos = domain.PhotosNo
	default:
		return malformed(n, "expected yes or no")
	}
	b.PhotosDeclared++
	return nil
}

func (b *Bundle) jetset(n *cst.Node) error {
	if len(n.Children) != 3 || n.Child(0).Kind != cst.KindLabel || n.Child(1).Kind != cst.KindValue {
		return malformed(n, "expected PARAM(N)=VALUE")
	}
	idx, err := strconv.Atoi(n.Child(1).Value)
	if err != nil {
		return malformed(n, fmt.Sprintf("parameter index %q is not an integer", n.Child(1).Value))
	}
	val, err := engineParam(n.Child(2))
	if err != nil {
		return err
	}
	name := n.Child(0).Value
	if b.JetSet[name] == nil {
		b.JetSet[name] = make(map[int]domain.Param)
	}
	b.JetSet[name][idx] = val
	return nil
}

func (b *Bundle) pythia(n *cst.Node) error {
	if len(n.Children) != 3 || n.Child(0).Kind != cst.KindLabel || n.Child(1).Kind != cst.KindLabel {
		return malformed(n, "expected MODULE:SETTING=VALUE")
	}
	val, err := engineParam(n.Child(2))
	if err != nil {
		return err
	}
	b.Pythia[n.Child(0).Value+":"+n.Child(1).Value] = val
	return nil
}

func (b *Bundle) lineshape(n *cst.Node) error {
	if err := shape(n, cst.KindParticle, cst.KindParticle, cst.KindParticle, cst.KindValue); err != nil {
		return err
	}
	wave, err := strconv.Atoi(n.Child(3).Value)
	if err != nil {
		return malformed(n, fmt.Sprintf("partial wave %q is not an integer", n.Child(3).Value))
	}
	b.Lineshapes = append(b.Lineshapes, domain.Lineshape{
		Particles: [3]string{n.Child(0).Value, n.Child(1).Value, n.Child(2).Value},
		Wave:      wave,
	})
	return nil
}

func (b *Bundle) decay(n *cst.Node) error {
	if len(n.Children) == 0 || n.Child(0).Kind != cst.KindParticle {
		return malformed(n, "expected mother particle")
	}
	d := domain.Decay{Mother: n.Child(0).Value, Line: n.Line}
	for _, ln := range n.Children[1:] {
		line, err := decayLine(ln)
		if err != nil {
			return err
		}
		d.Lines = append(d.Lines, line)
	}
	b.Decays = append(b.Decays, d)
	return nil
}

// applyGlobalPhotos marks every line as radiatively corrected when the
// file-wide flag, whose last declaration wins, is yes.
func (b *Bundle) applyGlobalPhotos() {
	if b.Photos != domain.PhotosYes {
		return
	}
	for i := range b.Decays {
		for j := range b.Decays[i].Lines {
			b.Decays[i].Lines[j].UsesRadiativeCorrection = true
		}
	}
}

func decayLine(n *cst.Node) (domain.DecayLine, error) {
	var line domain.DecayLine
	if n.Kind != cst.KindDecayLine || len(n.Children) < 2 {
		return line, malformed(n, "expected branching fraction and model")
	}
	if n.Child(0).Kind != cst.KindValue {
		return line, malformed(n, "expected branching fraction")
	}
	bf, ok := domain.ParseNumeral(n.Child(0).Value)
	if !ok || bf < 0 {
		return line, malformed(n, fmt.Sprintf("invalid branching fraction %q", n.Child(0).Value))
	}
	line.BF = bf

	last := n.Children[len(n.Children)-1]
	if last.Kind != cst.KindModel {
		return line, malformed(n, "decay line must end with a model")
	}
	middle := n.Children[1 : len(n.Children)-1]
	line.Daughters = make([]string, 0, len(middle))
	for i, c := range middle {
		switch {
		case c.Kind == cst.KindParticle:
			line.Daughters = append(line.Daughters, c.Value)
		case c.Kind == cst.KindPhotos && i == len(middle)-1:
			line.UsesRadiativeCorrection = true
		default:
			return line, malformed(c, "expected particle")
		}
	}

	name, params, label, err := model(last)
	if err != nil {
		return line, err
	}
	if label {
		line.ModelAlias = name
	} else {
		line.Model = name
		line.ModelParams = params
	}
	return line, nil
}

// model reads a model node. label reports a ModelAlias reference.
func model(n *cst.Node) (name string, params []domain.Param, label bool, err error) {
	if len(n.Children) == 0 || len(n.Children) > 2 {
		return "", nil, false, malformed(n, "expected model name and optional options")
	}
	head := n.Child(0)
	switch head.Kind {
	case cst.KindModelName:
	case cst.KindModelLabel:
		label = true
	default:
		return "", nil, false, malformed(n, "expected model name or model label")
	}
	if opts := n.Child(1); opts != nil {
		if opts.Kind != cst.KindModelOptions {
			return "", nil, false, malformed(n, "expected model options")
		}
		if label {
			return "", nil, false, malformed(n, "model alias reference takes no options")
		}
		for _, o := range opts.Children {
			p, err := param(o)
			if err != nil {
				return "", nil, false, err
			}
			params = append(params, p)
		}
	}
	return head.Value, params, label, nil
}

// param keeps raw option text symbolic; numeral coercion happens during resolution.
func param(n *cst.Node) (domain.Param, error) {
	if n.Kind != cst.KindValue && n.Kind != cst.KindLabel {
		return domain.Param{}, malformed(n, "expected value or label")
	}
	return domain.Symbol(n.Value), nil
}

func engineParam(n *cst.Node) (domain.Param, error) {
	p, err := param(n)
	if err != nil {
		return p, err
	}
	if v, ok := domain.ParseNumeral(p.Sym); ok {
		return domain.Number(v), nil
	}
	return p, nil
}

func particlePair(n *cst.Node) (string, string, error) {
	if err := shape(n, cst.KindParticle, cst.KindParticle); err != nil {
		return "", "", err
	}
	return n.Child(0).Value, n.Child(1).Value, nil
}

// noNilChildren rejects hand-built trees holding nil child pointers.
func noNilChildren(n *cst.Node) error {
	for i, c := range n.Children {
		if c == nil {
			return malformed(n, fmt.Sprintf("child %d is nil", i))
		}
		if err := noNilChildren(c); err != nil {
			return err
		}
	}
	return nil
}

// shape checks that n has exactly the given leaf children.
func shape(n *cst.Node, kinds ...cst.Kind) error {
	if len(n.Children) != len(kinds) {
		return malformed(n, fmt.Sprintf("expected %d children, found %d", len(kinds), len(n.Children)))
	}
	for i, k := range kinds {
		if n.Children[i].Kind != k {
			return malformed(n, fmt.Sprintf("child %d: expected %s, found %s", i, k, n.Children[i].Kind))
		}
	}
	return nil
}

func malformed(n *cst.Node, detail string) error {
	if n == nil {
		return &domain.MalformedInputError{Kind: "nil", Detail: detail}
	}
	return &domain.MalformedInputError{Kind: n.Kind.String(), Line: n.Line, Detail: detail}
}
