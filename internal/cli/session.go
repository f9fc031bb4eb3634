package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/decaytable"
	"github.com/aretw0/decaytable/internal/config"
	"github.com/aretw0/decaytable/internal/logging"
	"github.com/aretw0/decaytable/pkg/adapters/file"
	"github.com/aretw0/decaytable/pkg/adapters/memory"
	"github.com/aretw0/decaytable/pkg/domain"
	"github.com/aretw0/decaytable/pkg/observability"
	"github.com/aretw0/decaytable/pkg/ports"
	"github.com/prometheus/client_golang/prometheus"
)

// Session is a parsed set of decay files plus the settings used to query it.
type Session struct {
	Parser *decaytable.Parser
	Config config.Config
	DB     ports.ParticleDB
	Logger *slog.Logger

	stable   []string
	registry *prometheus.Registry
}

// Open loads the configuration, reads and parses the decay files.
func Open(opts Options) (*Session, error) {
	if len(opts.Files) == 0 {
		return nil, fmt.Errorf("no decay file given")
	}

	path := opts.ConfigPath
	if path == "" {
		path = config.DefaultPath
	}
	cfg, err := config.Load(path, opts.ConfigPath != "")
	if err != nil {
		return nil, err
	}
	if opts.ParticleDB != "" {
		cfg.ParticleDB = opts.ParticleDB
	}
	if opts.LogLevel != "" {
		cfg.LogLevel = opts.LogLevel
	}
	if opts.Debug {
		cfg.LogLevel = "debug"
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	logger := logging.New(level)

	db, err := loadParticles(cfg.ParticleDB)
	if err != nil {
		return nil, err
	}

	s := &Session{
		Config: cfg,
		DB:     db,
		Logger: logger,
		stable: mergeStable(cfg.Stable, opts.Stable),
	}

	parserOpts := []decaytable.Option{
		decaytable.WithLogger(logger),
		decaytable.WithParticleDB(db),
		decaytable.WithChargeConjugates(cfg.IncludeChargeConjugates() && !opts.NoCC),
		decaytable.WithMaxDepth(cfg.MaxDepth),
	}
	if opts.Debug {
		parserOpts = append(parserOpts, decaytable.WithLifecycleHooks(createDebugHooks(logger)))
	}
	if opts.Metrics {
		s.registry = prometheus.NewRegistry()
		parserOpts = append(parserOpts, decaytable.WithMetrics(observability.NewMetrics(s.registry)))
	}

	p, err := decaytable.New(opts.Files, parserOpts...)
	if err != nil {
		return nil, err
	}
	if err := p.Parse(); err != nil {
		return nil, err
	}
	s.Parser = p
	return s, nil
}

// Stable returns the configured stable particles.
func (s *Session) Stable() []string {
	return s.stable
}

// WriteMetrics dumps the collected metrics when they were requested.
func (s *Session) WriteMetrics(w io.Writer) error {
	if s.registry == nil {
		return nil
	}
	return observability.WriteText(w, s.registry)
}

func loadParticles(path string) (ports.ParticleDB, error) {
	if path == "" {
		return memory.Default(), nil
	}
	db, err := file.Load(path)
	if err != nil {
		return nil, err
	}
	return db, nil
}

// mergeStable appends the flag values to the configured list, without repeats.
func mergeStable(lists ...[]string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, l := range lists {
		for _, s := range l {
			if s != "" && !seen[s] {
				seen[s] = true
				out = append(out, s)
			}
		}
	}
	return out
}

func createDebugHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnStage: func(e *domain.StageEvent) {
			logger.Debug("Stage", "stage", string(e.Stage), "decays", e.Decays, "duration", e.Duration)
		},
	}
}
