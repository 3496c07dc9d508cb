package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

// Module provides a private registry, the Prometheus collector and the Recorder view of it.
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewRegistry,
		func(reg *prometheus.Registry) prometheus.Gatherer { return reg },
		func(reg *prometheus.Registry) prometheus.Registerer { return reg },
		fx.Annotate(
			func(reg *prometheus.Registry) *Collector { return NewCollector(reg) },
			fx.As(new(Recorder)),
		),
	),
)
