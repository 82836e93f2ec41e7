// Package metrics exposes the Prometheus collectors the host driver uses to
// observe tick cost, per-system cost, collision volume, and prediction
// reconciliation outcomes.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"siegefall/internal/core/ecs"
	"siegefall/internal/prediction"
)

// Metrics bundles every collector behind its own registry rather than the
// package-global prometheus.DefaultRegisterer: a host can run more than one
// simulation instance (or a test suite can construct more than one
// Metrics), and registering the same collector names twice against the
// default registry panics.
type Metrics struct {
	Registry *prometheus.Registry

	TickDuration   prometheus.Histogram
	SystemDuration *prometheus.HistogramVec

	CollisionPairsTotal prometheus.Counter
	BagOverflowTotal    prometheus.Counter

	ReconcileTotal *prometheus.CounterVec

	PredictedFrame prometheus.Gauge
	ConfirmedFrame prometheus.Gauge
}

// New builds a Metrics bundle and registers every collector against its own
// fresh registry.
func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),

		TickDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "siegefall_tick_duration_seconds",
			Help:    "Wall-clock time to run one full pipeline tick.",
			Buckets: prometheus.DefBuckets,
		}),
		SystemDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "siegefall_system_duration_seconds",
			Help:    "Wall-clock time to run a single pipeline System.",
			Buckets: prometheus.DefBuckets,
		}, []string{"system"}),

		CollisionPairsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "siegefall_collision_pairs_total",
			Help: "Total narrowphase collision pairs recorded across all ticks.",
		}),
		BagOverflowTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "siegefall_collision_bag_overflow_total",
			Help: "Total Collision.Others insertions silently dropped due to the fixed capacity.",
		}),

		ReconcileTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "siegefall_reconcile_total",
			Help: "Total prediction reconciliations by classified state.",
		}, []string{"state"}),

		PredictedFrame: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "siegefall_predicted_frame",
			Help: "Largest local tick the prediction controller has advanced beyond confirmed_frame.",
		}),
		ConfirmedFrame: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "siegefall_confirmed_frame",
			Help: "Largest server frame applied into confirmed_world.",
		}),
	}

	m.Registry.MustRegister(
		m.TickDuration,
		m.SystemDuration,
		m.CollisionPairsTotal,
		m.BagOverflowTotal,
		m.ReconcileTotal,
		m.PredictedFrame,
		m.ConfirmedFrame,
	)
	return m
}

// ObserveSystems records one duration observation per System in pipeline,
// keyed by SystemType. Callers that time each System's Execute individually
// report the same slice of durations the pipeline produced, in the same
// order the pipeline registered its Systems.
func (m *Metrics) ObserveSystems(pipeline *ecs.StateMachine, durationsSeconds []float64) {
	systems := pipeline.Systems()
	n := len(systems)
	if len(durationsSeconds) < n {
		n = len(durationsSeconds)
	}
	for i := 0; i < n; i++ {
		m.SystemDuration.WithLabelValues(string(systems[i].Type())).Observe(durationsSeconds[i])
	}
}

// ObserveReconcile records a Reconcile outcome and refreshes the frame
// gauges from the controller's current state.
func (m *Metrics) ObserveReconcile(c *prediction.Controller, action prediction.Action) {
	m.ReconcileTotal.WithLabelValues(action.State.String()).Inc()
	m.PredictedFrame.Set(float64(c.PredictedFrame()))
	m.ConfirmedFrame.Set(float64(c.ConfirmedFrame()))
}
