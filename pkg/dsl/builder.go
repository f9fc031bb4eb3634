package dsl

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aretw0/decaytable/pkg/cst"
	"github.com/aretw0/decaytable/pkg/domain"
)

// Builder manages the decay-file construction. Statements keep the order in
// which they were added.
type Builder struct {
	stmts  []statement
	decays map[string]*DecayBuilder
}

type statement struct {
	node  *cst.Node
	decay *DecayBuilder
}

// New creates a new decay-file builder.
func New() *Builder {
	return &Builder{decays: make(map[string]*DecayBuilder)}
}

func (b *Builder) add(n *cst.Node) *Builder {
	b.stmts = append(b.stmts, statement{node: n})
	return b
}

// Define adds a numeric definition usable as a model parameter.
func (b *Builder) Define(name string, value float64) *Builder {
	return b.add(cst.Tree(cst.KindDefine, cst.Leaf(cst.KindLabel, name), cst.Leaf(cst.KindValue, number(value))))
}

// Alias declares name as an alias of canonical.
func (b *Builder) Alias(name, canonical string) *Builder {
	return b.add(cst.Tree(cst.KindAlias, cst.Leaf(cst.KindParticle, name), cst.Leaf(cst.KindParticle, canonical)))
}

// ChargeConj declares conjugate as the antiparticle of particle.
func (b *Builder) ChargeConj(particle, conjugate string) *Builder {
	return b.add(cst.Tree(cst.KindChargeConj, cst.Leaf(cst.KindParticle, particle), cst.Leaf(cst.KindParticle, conjugate)))
}

// ModelAlias names a model with fixed parameters.
func (b *Builder) ModelAlias(name, model string, params ...any) *Builder {
	return b.add(cst.Tree(cst.KindModelAlias, cst.Leaf(cst.KindLabel, name), modelNode(cst.KindModelName, model, params)))
}

// CopyDecay gives target the decay modes of source.
func (b *Builder) CopyDecay(target, source string) *Builder {
	return b.add(cst.Tree(cst.KindCopyDecay, cst.Leaf(cst.KindParticle, target), cst.Leaf(cst.KindParticle, source)))
}

// CDecay requests the charge-conjugate decay of mother.
func (b *Builder) CDecay(mother string) *Builder {
	return b.add(cst.Tree(cst.KindCDecay, cst.Leaf(cst.KindParticle, mother)))
}

// Photos sets the global radiative-correction flag.
func (b *Builder) Photos(on bool) *Builder {
	if on {
		return b.add(cst.Tree(cst.KindGlobalPhotos, cst.Leaf(cst.KindYes, "yesPhotos")))
	}
	return b.add(cst.Tree(cst.KindGlobalPhotos, cst.Leaf(cst.KindNo, "noPhotos")))
}

// Decay returns the block for mother, creating it on first use.
func (b *Builder) Decay(mother string) *DecayBuilder {
	if db, ok := b.decays[mother]; ok {
		return db
	}
	db := &DecayBuilder{mother: mother}
	b.decays[mother] = db
	b.stmts = append(b.stmts, statement{decay: db})
	return db
}

// Build compiles the statements into a file syntax tree.
func (b *Builder) Build() (*cst.Node, error) {
	root := cst.Tree(cst.KindFile)
	for _, s := range b.stmts {
		if s.decay == nil {
			root.Children = append(root.Children, s.node.Clone())
			continue
		}
		n, err := s.decay.node()
		if err != nil {
			return nil, err
		}
		root.Children = append(root.Children, n)
	}
	return root, nil
}

// Text renders the statements as decay-file source.
func (b *Builder) Text() (string, error) {
	root, err := b.Build()
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	for _, stmt := range root.Children {
		writeStatement(&sb, stmt)
	}
	sb.WriteString("End\n")
	return sb.String(), nil
}

// DecayBuilder provides a fluent API for the modes of one mother.
type DecayBuilder struct {
	mother string
	modes  []*ModeBuilder
}

// Mode starts a decay mode. It must be finished with Model or Alias.
func (d *DecayBuilder) Mode(bf float64, daughters ...string) *ModeBuilder {
	m := &ModeBuilder{decay: d, bf: bf, daughters: daughters}
	d.modes = append(d.modes, m)
	return m
}

func (d *DecayBuilder) node() (*cst.Node, error) {
	n := cst.Tree(cst.KindDecay, cst.Leaf(cst.KindParticle, d.mother))
	for i, m := range d.modes {
		if m.model == nil {
			return nil, fmt.Errorf("decay of %s: mode %d has no model", d.mother, i+1)
		}
		if m.bf < 0 {
			return nil, fmt.Errorf("decay of %s: mode %d has negative branching fraction", d.mother, i+1)
		}
		line := cst.Tree(cst.KindDecayLine, cst.Leaf(cst.KindValue, number(m.bf)))
		for _, p := range m.daughters {
			line.Children = append(line.Children, cst.Leaf(cst.KindParticle, p))
		}
		if m.photos {
			line.Children = append(line.Children, cst.Leaf(cst.KindPhotos, "PHOTOS"))
		}
		line.Children = append(line.Children, m.model.Clone())
		n.Children = append(n.Children, line)
	}
	return n, nil
}

// ModeBuilder configures one decay mode.
type ModeBuilder struct {
	decay     *DecayBuilder
	bf        float64
	daughters []string
	photos    bool
	model     *cst.Node
}

// Photos enables radiative corrections for this mode.
func (m *ModeBuilder) Photos() *ModeBuilder {
	m.photos = true
	return m
}

// Model finishes the mode with a model and its parameters. Parameters may be
// numbers, or strings naming a Define or a model-specific label.
func (m *ModeBuilder) Model(name string, params ...any) *DecayBuilder {
	m.model = modelNode(cst.KindModelName, name, params)
	return m.decay
}

// Alias finishes the mode with a reference to a ModelAlias.
func (m *ModeBuilder) Alias(label string) *DecayBuilder {
	m.model = cst.Tree(cst.KindModel, cst.Leaf(cst.KindModelLabel, label))
	return m.decay
}

func modelNode(kind cst.Kind, name string, params []any) *cst.Node {
	model := cst.Tree(cst.KindModel, cst.Leaf(kind, name))
	if len(params) == 0 {
		return model
	}
	opts := cst.Tree(cst.KindModelOptions)
	for _, p := range params {
		text := param(p)
		k := cst.KindLabel
		if domain.IsNumeral(text) {
			k = cst.KindValue
		}
		opts.Children = append(opts.Children, cst.Leaf(k, text))
	}
	model.Children = append(model.Children, opts)
	return model
}

func param(p any) string {
	switch v := p.(type) {
	case float64:
		return number(v)
	case int:
		return strconv.Itoa(v)
	case domain.Param:
		return v.String()
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

func number(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
