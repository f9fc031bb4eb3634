package resolve

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/decaytable/internal/compiler"
	"github.com/aretw0/decaytable/internal/extract"
	"github.com/aretw0/decaytable/pkg/cst"
	"github.com/aretw0/decaytable/pkg/domain"
	"github.com/aretw0/decaytable/pkg/ports"
)

// Result is the outcome of a successful pipeline run.
type Result struct {
	Bundle      *extract.Bundle
	Table       *domain.Table
	Diagnostics domain.Diagnostics
}

// Pipeline drives a decay file from text to a frozen table.
type Pipeline struct {
	Parser    *compiler.Parser
	DB        ports.ParticleDB // optional
	IncludeCC bool
	Logger    *slog.Logger
	Hooks     domain.LifecycleHooks
}

type run struct {
	*Pipeline
	log      *slog.Logger
	diags    domain.Diagnostics
	reported int
}

// Run parses src and resolves it.
func (p *Pipeline) Run(src []byte) (*Result, error) {
	parser := p.Parser
	if parser == nil {
		parser = compiler.NewParser(nil)
	}
	r := p.start()
	var root *cst.Node
	err := r.stage(domain.StageCompile, func() (int, error) {
		var err error
		root, err = parser.Parse(src)
		return 0, err
	})
	if err != nil {
		return nil, err
	}
	return r.resolve(root)
}

// Resolve runs every stage on an already built syntax tree.
func (p *Pipeline) Resolve(root *cst.Node) (*Result, error) {
	return p.start().resolve(root)
}

func (p *Pipeline) start() *run {
	log := p.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &run{Pipeline: p, log: log}
}

func (r *run) resolve(root *cst.Node) (*Result, error) {
	var (
		b      *extract.Bundle
		decays []domain.Decay
		table  *domain.Table
	)

	err := r.stage(domain.StageExtract, func() (int, error) {
		var err error
		if b, err = extract.Extract(root); err != nil {
			return 0, err
		}
		if b.PhotosDeclared > 1 {
			r.diags.Add(domain.DiagPhotosRedeclared,
				fmt.Sprintf("global PHOTOS flag set %d times; using the last one (%s)", b.PhotosDeclared, b.Photos))
		}
		decays = b.Decays
		return len(decays), nil
	})
	if err != nil {
		return nil, err
	}

	steps := []struct {
		stage domain.Stage
		fn    func() error
	}{
		{domain.StageModelAlias, func() error {
			return ExpandModelAliases(decays, b.ModelAliases)
		}},
		{domain.StageParameters, func() error {
			SubstituteParameters(decays, b.Definitions)
			return nil
		}},
		{domain.StageCopyDecay, func() error {
			decays = CopyDecays(decays, b.Copies, &r.diags)
			return nil
		}},
		{domain.StageChargeConj, func() error {
			if r.IncludeCC {
				decays = ConjugateDecays(decays, b.CDecays, Conjugator{Pairs: b.ChargeConj, DB: r.DB}, &r.diags)
			}
			return nil
		}},
		{domain.StageDuplicates, func() error {
			decays = RemoveDuplicates(decays, &r.diags)
			return nil
		}},
		{domain.StageFreezeTable, func() error {
			var err error
			table, err = domain.NewTable(decays)
			return err
		}},
	}
	for _, s := range steps {
		if err := r.stage(s.stage, func() (int, error) {
			err := s.fn()
			return len(decays), err
		}); err != nil {
			return nil, err
		}
	}

	return &Result{Bundle: b, Table: table, Diagnostics: r.diags}, nil
}

// stage times fn, reports its outcome and flushes the diagnostics it produced.
func (r *run) stage(name domain.Stage, fn func() (int, error)) error {
	start := time.Now()
	n, err := fn()
	ev := &domain.StageEvent{Stage: name, Decays: n, Duration: time.Since(start), Err: err}
	r.Hooks.Stage(ev)

	for _, d := range r.diags[r.reported:] {
		r.log.Warn("decay file diagnostic", "kind", d.Kind.String(), "names", d.Names, "msg", d.Message)
		r.Hooks.Diagnostic(d)
	}
	r.reported = len(r.diags)

	if err != nil {
		r.log.Error("resolution stage failed", "stage", string(name), "error", err)
		return fmt.Errorf("%s stage: %w", name, err)
	}
	r.log.Debug("resolution stage done", "stage", string(name), "decays", n, "duration", ev.Duration)
	return nil
}
