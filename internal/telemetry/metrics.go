// Package telemetry wires a local-only observability stack for an nroads
// run: in-process Prometheus counters/histograms and an OpenTelemetry trace
// that never touches the network.
package telemetry

import (
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// Metrics counts command dispatch outcomes and a handful of domain events
// against a private registry. There is no HTTP handler anywhere in this
// package: network access is out of scope, so the only consumer of these
// counters is Snapshot.
type Metrics struct {
	registry *prometheus.Registry

	commands            *prometheus.CounterVec
	routesCreated       prometheus.Counter
	segmentsRemoved     prometheus.Counter
	routeSearchDuration prometheus.Histogram
}

// NewMetrics builds a fresh, unregistered-with-the-world Metrics instance.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	commands := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "nroads_commands_total",
		Help: "Number of road map commands dispatched, by command name and outcome.",
	}, []string{"command", "outcome"})

	routesCreated := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "routes_created_total",
		Help: "Number of routes successfully created by newRoute or createRoute.",
	})

	segmentsRemoved := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "segments_removed_total",
		Help: "Number of road segments successfully removed by removeRoad.",
	})

	routeSearchDuration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "route_search_duration_seconds",
		Help:    "Wall-clock time spent inside a Map operation that invokes the route search engine.",
		Buckets: prometheus.DefBuckets,
	})

	registry.MustRegister(commands, routesCreated, segmentsRemoved, routeSearchDuration)

	return &Metrics{
		registry:            registry,
		commands:            commands,
		routesCreated:       routesCreated,
		segmentsRemoved:     segmentsRemoved,
		routeSearchDuration: routeSearchDuration,
	}
}

// Observe records the outcome of dispatching a single command line.
func (m *Metrics) Observe(command string, accepted bool) {
	outcome := "rejected"
	if accepted {
		outcome = "accepted"
	}
	m.commands.WithLabelValues(command, outcome).Inc()
}

// ObserveRouteCreated records a successful newRoute or createRoute.
func (m *Metrics) ObserveRouteCreated() {
	m.routesCreated.Inc()
}

// ObserveSegmentRemoved records a successful removeRoad.
func (m *Metrics) ObserveSegmentRemoved() {
	m.segmentsRemoved.Inc()
}

// ObserveRouteSearchDuration records the wall-clock time spent in a Map
// operation that calls into the route search engine (newRoute, extendRoute,
// removeRoad), regardless of whether the search succeeded.
func (m *Metrics) ObserveRouteSearchDuration(d time.Duration) {
	m.routeSearchDuration.Observe(d.Seconds())
}

// Snapshot renders every counter and histogram in Prometheus text exposition
// format.
func (m *Metrics) Snapshot() (string, error) {
	families, err := m.registry.Gather()
	if err != nil {
		return "", err
	}

	var buf strings.Builder
	enc := expfmt.NewEncoder(&buf, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}
