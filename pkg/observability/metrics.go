package observability

import (
	"io"

	"github.com/aretw0/decaytable/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// Metrics holds the pipeline collectors.
type Metrics struct {
	Diagnostics   *prometheus.CounterVec
	StageDuration *prometheus.HistogramVec
	StageFailures *prometheus.CounterVec
	Decays        prometheus.Gauge
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Diagnostics: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "decaytable_diagnostics_total",
				Help: "Recoverable diagnostics emitted while resolving decay files",
			},
			[]string{"kind"},
		),
		StageDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "decaytable_stage_duration_seconds",
				Help:    "Duration of resolution pipeline stages",
				Buckets: prometheus.ExponentialBuckets(1e-5, 4, 10),
			},
			[]string{"stage"},
		),
		StageFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "decaytable_stage_failures_total",
				Help: "Pipeline stages that aborted with a fatal error",
			},
			[]string{"stage"},
		),
		Decays: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "decaytable_decays",
			Help: "Decays held by the last resolved table",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.Diagnostics, m.StageDuration, m.StageFailures, m.Decays)
	}
	return m
}

// Hooks returns lifecycle hooks feeding the collectors. A nil receiver yields no-op hooks.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	if m == nil {
		return domain.LifecycleHooks{}
	}
	return domain.LifecycleHooks{
		OnStage: func(ev *domain.StageEvent) {
			m.StageDuration.WithLabelValues(string(ev.Stage)).Observe(ev.Duration.Seconds())
			if ev.Err != nil {
				m.StageFailures.WithLabelValues(string(ev.Stage)).Inc()
				return
			}
			if ev.Stage == domain.StageFreezeTable {
				m.Decays.Set(float64(ev.Decays))
			}
		},
		OnDiagnostic: func(d domain.Diagnostic) {
			m.Diagnostics.WithLabelValues(d.Kind.String()).Inc()
		},
	}
}

// Chain combines hooks so each callback fires in order.
func Chain(hooks ...domain.LifecycleHooks) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnStage: func(ev *domain.StageEvent) {
			for _, h := range hooks {
				h.Stage(ev)
			}
		},
		OnDiagnostic: func(d domain.Diagnostic) {
			for _, h := range hooks {
				h.Diagnostic(d)
			}
		},
	}
}

// WriteText dumps every metric gathered from g in the Prometheus text format.
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
