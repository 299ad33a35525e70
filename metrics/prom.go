package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// PromSink records dispatch events in Prometheus metrics.
type PromSink struct {
	events   *prometheus.CounterVec
	distance prometheus.Histogram
	score    prometheus.Histogram
}

// NewPromSink registers dispatch metrics on the provided Prometheus
// registerer. If reg is nil, the default registerer is used. Collectors
// that are already registered are reused.
func NewPromSink(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	events := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "dispatch_events_total",
		Help: "Total number of order dispatch attempts",
	}, []string{"robot_id", "outcome"})
	distance := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "dispatch_route_length_cells",
		Help:    "Length of planned routes in cells",
		Buckets: prometheus.LinearBuckets(0, 10, 12),
	})
	score := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "dispatch_optimization_score",
		Help:    "Optimization score of planned routes",
		Buckets: prometheus.LinearBuckets(0, 10, 11),
	})

	if err := register(reg, &events); err != nil {
		return nil, err
	}
	if err := registerHist(reg, &distance); err != nil {
		return nil, err
	}
	if err := registerHist(reg, &score); err != nil {
		return nil, err
	}
	return &PromSink{events: events, distance: distance, score: score}, nil
}

func register(reg prometheus.Registerer, cv **prometheus.CounterVec) error {
	if err := reg.Register(*cv); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			*cv = are.ExistingCollector.(*prometheus.CounterVec)
			return nil
		}
		return err
	}
	return nil
}

func registerHist(reg prometheus.Registerer, h *prometheus.Histogram) error {
	if err := reg.Register(*h); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			*h = are.ExistingCollector.(prometheus.Histogram)
			return nil
		}
		return err
	}
	return nil
}

// RecordDispatch increments the event counter and observes route metrics
// for each record.
func (s *PromSink) RecordDispatch(records []DispatchRecord) error {
	for _, r := range records {
		s.events.WithLabelValues(r.RobotID, r.Outcome).Inc()
		if r.Outcome == "planned" {
			s.distance.Observe(float64(r.TotalDistance))
			s.score.Observe(r.OptimizationScore)
		}
	}
	return nil
}
