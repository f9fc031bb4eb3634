/*
Package observability exposes Prometheus collectors for the decay file pipeline.

Metrics plugs into domain.LifecycleHooks, so any parse run can be observed
without the resolver knowing about Prometheus:

	reg := prometheus.NewRegistry()
	m := observability.NewMetrics(reg)
	p, _ := decaytable.FromString(src, decaytable.WithMetrics(m))
*/
package observability
