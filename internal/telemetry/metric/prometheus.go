package metric

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Parse results other than decode error kinds.
const (
	ResultOK      = "ok"
	ResultIOError = "io_error"
)

// Registry holds the config metrics.
type Registry struct {
	registry *prometheus.Registry

	Parses     *prometheus.CounterVec
	Reloads    prometheus.Counter
	Profiles   prometheus.Gauge
	LastReload prometheus.Gauge
}

// NewRegistry creates a registry with all config metrics registered.
func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),
		Parses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "atlascfg",
			Subsystem: "config",
			Name:      "parse_total",
			Help:      "Config parse attempts by result (ok, io_error or decode error kind).",
		}, []string{"result"}),
		Reloads: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "atlascfg",
			Subsystem: "config",
			Name:      "reloads_total",
			Help:      "Config file change notifications handled.",
		}),
		Profiles: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "atlascfg",
			Subsystem: "config",
			Name:      "profiles",
			Help:      "Profiles in the last successfully parsed config.",
		}),
		LastReload: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "atlascfg",
			Subsystem: "config",
			Name:      "last_success_timestamp_seconds",
			Help:      "Unix time of the last successful parse.",
		}),
	}

	r.registry.MustRegister(r.Parses, r.Reloads, r.Profiles, r.LastReload)
	return r
}

// ObserveParse records one parse attempt. profiles is only used when
// result is ResultOK.
func (r *Registry) ObserveParse(result string, profiles int) {
	r.Parses.WithLabelValues(result).Inc()
	if result == ResultOK {
		r.Profiles.Set(float64(profiles))
		r.LastReload.Set(float64(time.Now().Unix()))
	}
}

// Gatherer returns the underlying gatherer.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.registry
}

// WriteTextfile atomically writes all metrics to path in the text
// exposition format.
func (r *Registry) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.Gatherer())
}
