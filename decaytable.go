package decaytable

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/decaytable/internal/compiler"
	"github.com/aretw0/decaytable/internal/resolve"
	"github.com/aretw0/decaytable/pkg/chain"
	"github.com/aretw0/decaytable/pkg/cst"
	"github.com/aretw0/decaytable/pkg/domain"
	"github.com/aretw0/decaytable/pkg/observability"
	"github.com/aretw0/decaytable/pkg/ports"
	"github.com/aretw0/decaytable/pkg/registry"
)

// Parser reads decay files and answers queries about the resolved decay table.
// A Parser is not safe for concurrent Parse calls; queries on a parsed
// Parser only read the frozen table.
type Parser struct {
	Name string

	src       []byte
	tree      *cst.Node
	db        ports.ParticleDB
	models    *registry.Registry
	includeCC bool
	maxDepth  int
	metrics   *observability.Metrics
	hooks     domain.LifecycleHooks
	logger    *slog.Logger

	result *resolve.Result
	diags  domain.Diagnostics
}

// Option defines a functional option for configuring the Parser.
type Option func(*Parser)

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Parser) {
		p.logger = logger
	}
}

// WithParticleDB sets the particle database used for charge conjugation.
// Without one, unknown conjugates become ChargeConj(name) placeholders.
func WithParticleDB(db ports.ParticleDB) Option {
	return func(p *Parser) {
		p.db = db
	}
}

// WithChargeConjugates toggles CDecay synthesis (default: enabled).
func WithChargeConjugates(enabled bool) Option {
	return func(p *Parser) {
		p.includeCC = enabled
	}
}

// WithModels replaces the set of recognized decay models.
func WithModels(models *registry.Registry) Option {
	return func(p *Parser) {
		p.models = models
	}
}

// WithMetrics records pipeline metrics in m.
func WithMetrics(m *observability.Metrics) Option {
	return func(p *Parser) {
		p.metrics = m
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(p *Parser) {
		p.hooks = hooks
	}
}

// WithMaxDepth bounds decay chain expansion (default: chain.DefaultMaxDepth).
func WithMaxDepth(depth int) Option {
	return func(p *Parser) {
		p.maxDepth = depth
	}
}

// New reads one or more decay files. Their contents are concatenated, and
// every "End" line is dropped so only the implicit end of input terminates the file.
func New(filenames []string, opts ...Option) (*Parser, error) {
	if len(filenames) == 0 {
		return nil, fmt.Errorf("at least one decay file is required")
	}
	var buf bytes.Buffer
	names := make([]string, 0, len(filenames))
	for _, fn := range filenames {
		f, err := os.Open(fn)
		if err != nil {
			return nil, fmt.Errorf("failed to open decay file: %w", err)
		}
		err = appendWithoutEnd(&buf, f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", fn, err)
		}
		names = append(names, filepath.Base(fn))
	}
	return newParser(strings.Join(names, ","), buf.Bytes(), opts), nil
}

// FromString creates a parser over decay-file content held in memory.
func FromString(content string, opts ...Option) *Parser {
	return newParser("<string>", []byte(content), opts)
}

// FromTree creates a parser over an already built syntax tree, such as the
// one produced by the dsl package.
func FromTree(root *cst.Node, opts ...Option) *Parser {
	p := newParser("<tree>", nil, opts)
	p.tree = root.Clone()
	return p
}

func newParser(name string, src []byte, opts []Option) *Parser {
	p := &Parser{Name: name, src: src, includeCC: true}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	p.logger = p.logger.With("source", p.Name)
	return p
}

func appendWithoutEnd(buf *bytes.Buffer, r io.Reader) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	first := true
	for sc.Scan() {
		line := sc.Text()
		if first {
			line = strings.TrimPrefix(line, "\ufeff")
			first = false
		}
		trimmed := strings.TrimLeft(line, " \t")
		if strings.HasPrefix(trimmed, "End") && !strings.HasPrefix(trimmed, "Enddecay") {
			continue
		}
		buf.WriteString(line)
		buf.WriteByte('\n')
	}
	buf.WriteByte('\n')
	return sc.Err()
}

// Parse resolves the input into a decay table. Parsing again is allowed and
// re-runs the whole pipeline, recording a reparse diagnostic.
func (p *Parser) Parse() error {
	hooks := observability.Chain(p.hooks, p.metrics.Hooks())

	var diags domain.Diagnostics
	if p.result != nil {
		d := diags.Add(domain.DiagReparse, "input is being parsed again")
		p.logger.Warn("decay file diagnostic", "kind", d.Kind.String(), "names", d.Names, "msg", d.Message)
		hooks.Diagnostic(d)
	}

	pipeline := &resolve.Pipeline{
		Parser:    compiler.NewParser(p.models),
		DB:        p.db,
		IncludeCC: p.includeCC,
		Logger:    p.logger,
		Hooks:     hooks,
	}
	var (
		res *resolve.Result
		err error
	)
	if p.tree != nil {
		res, err = pipeline.Resolve(p.tree)
	} else {
		res, err = pipeline.Run(p.src)
	}
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", p.Name, err)
	}

	p.result = res
	p.diags = append(diags, res.Diagnostics...)
	p.logger.Debug("decay table ready", "decays", res.Table.Len(), "diagnostics", len(p.diags))
	return nil
}

// Parsed reports whether Parse has succeeded at least once.
func (p *Parser) Parsed() bool {
	return p.result != nil
}

// Diagnostics returns the recoverable findings of the last Parse.
func (p *Parser) Diagnostics() domain.Diagnostics {
	return append(domain.Diagnostics(nil), p.diags...)
}

// Table returns the resolved decay table.
func (p *Parser) Table() (*domain.Table, error) {
	if p.result == nil {
		return nil, domain.ErrNotParsed
	}
	return p.result.Table, nil
}

// NumberOfDecays returns the number of mothers in the table.
func (p *Parser) NumberOfDecays() (int, error) {
	t, err := p.Table()
	if err != nil {
		return 0, err
	}
	return t.Len(), nil
}

// ListDecayMotherNames returns the mothers in table order.
func (p *Parser) ListDecayMotherNames() ([]string, error) {
	t, err := p.Table()
	if err != nil {
		return nil, err
	}
	return t.Mothers(), nil
}

// DecayModeDetails returns the decay lines of mother.
func (p *Parser) DecayModeDetails(mother string) ([]domain.DecayLine, error) {
	t, err := p.Table()
	if err != nil {
		return nil, err
	}
	lines, ok := t.Lines(mother)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrDecayNotFound, mother)
	}
	return lines, nil
}

// ListDecayModes returns the final states of every decay line of mother.
func (p *Parser) ListDecayModes(mother string) ([][]string, error) {
	lines, err := p.DecayModeDetails(mother)
	if err != nil {
		return nil, err
	}
	out := make([][]string, len(lines))
	for i, l := range lines {
		out[i] = l.Daughters
	}
	return out, nil
}

// BuildDecayChains expands mother into a nested chain, stopping at stable particles.
func (p *Parser) BuildDecayChains(mother string, stable ...string) (*chain.Chain, error) {
	t, err := p.Table()
	if err != nil {
		return nil, err
	}
	return chain.Builder{Lookup: t, MaxDepth: p.maxDepth}.Build(mother, stable...)
}

// FinalStates enumerates the exclusive final states of mother.
func (p *Parser) FinalStates(mother string, stable ...string) ([]chain.FinalState, error) {
	t, err := p.Table()
	if err != nil {
		return nil, err
	}
	return chain.Builder{Lookup: t, MaxDepth: p.maxDepth}.FinalStates(mother, stable...)
}

// Definitions returns the Define statements.
func (p *Parser) Definitions() (map[string]float64, error) {
	if p.result == nil {
		return nil, domain.ErrNotParsed
	}
	return copyMap(p.result.Bundle.Definitions), nil
}

// Aliases returns the Alias statements as alias -> particle.
func (p *Parser) Aliases() (map[string]string, error) {
	if p.result == nil {
		return nil, domain.ErrNotParsed
	}
	return copyMap(p.result.Bundle.Aliases), nil
}

// ChargeConjugates returns the ChargeConj statements as particle -> conjugate.
func (p *Parser) ChargeConjugates() (map[string]string, error) {
	if p.result == nil {
		return nil, domain.ErrNotParsed
	}
	return p.result.Bundle.ChargeConj.Map(), nil
}

// ChargeConjugateDecays returns the mothers named by CDecay statements, sorted.
func (p *Parser) ChargeConjugateDecays() ([]string, error) {
	if p.result == nil {
		return nil, domain.ErrNotParsed
	}
	return append([]string(nil), p.result.Bundle.CDecays...), nil
}

// DecaysToCopy returns the CopyDecay statements as copy -> source.
func (p *Parser) DecaysToCopy() (map[string]string, error) {
	if p.result == nil {
		return nil, domain.ErrNotParsed
	}
	out := make(map[string]string, len(p.result.Bundle.Copies))
	for _, c := range p.result.Bundle.Copies {
		out[c.Target] = c.Source
	}
	return out, nil
}

// ModelAliases returns the ModelAlias statements as alias -> model and options.
func (p *Parser) ModelAliases() (map[string][]string, error) {
	if p.result == nil {
		return nil, domain.ErrNotParsed
	}
	out := make(map[string][]string, len(p.result.Bundle.ModelAliases))
	for name, ma := range p.result.Bundle.ModelAliases {
		tokens := []string{ma.Model}
		for _, prm := range ma.Params {
			tokens = append(tokens, prm.String())
		}
		out[name] = tokens
	}
	return out, nil
}

// GlobalPhotos returns the file-wide PHOTOS flag.
func (p *Parser) GlobalPhotos() (domain.PhotosFlag, error) {
	if p.result == nil {
		return domain.PhotosNo, domain.ErrNotParsed
	}
	return p.result.Bundle.Photos, nil
}

// JetSetDefinitions returns the JetSetPar settings as PARAM -> index -> value.
func (p *Parser) JetSetDefinitions() (map[string]map[int]domain.Param, error) {
	if p.result == nil {
		return nil, domain.ErrNotParsed
	}
	out := make(map[string]map[int]domain.Param, len(p.result.Bundle.JetSet))
	for k, v := range p.result.Bundle.JetSet {
		out[k] = copyMap(v)
	}
	return out, nil
}

// PythiaDefinitions returns the Pythia settings as MODULE:SETTING -> value.
func (p *Parser) PythiaDefinitions() (map[string]domain.Param, error) {
	if p.result == nil {
		return nil, domain.ErrNotParsed
	}
	return copyMap(p.result.Bundle.Pythia), nil
}

// LineshapeDefinitions returns the SetLineshapePW statements in file order.
func (p *Parser) LineshapeDefinitions() ([]domain.Lineshape, error) {
	if p.result == nil {
		return nil, domain.ErrNotParsed
	}
	return append([]domain.Lineshape(nil), p.result.Bundle.Lineshapes...), nil
}

func copyMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
