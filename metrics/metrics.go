// Package metrics records dispatch events for observability. Sinks are
// pluggable: Prometheus for scraping, InfluxDB for time series, a fan-out
// multi sink, and a no-op sink for tests and disabled setups.
package metrics

import "time"

// DispatchRecord is one order-dispatch event to be recorded.
type DispatchRecord struct {
	OrderID           string
	RobotID           string
	Outcome           string
	TotalDistance     int
	EstimatedTime     float64
	EnergyConsumption float64
	OptimizationScore float64
	DispatchTime      time.Time
}

// Sink records dispatch results for observability purposes.
type Sink interface {
	RecordDispatch(records []DispatchRecord) error
}

// NopSink implements Sink with no-op methods.
type NopSink struct{}

func (NopSink) RecordDispatch([]DispatchRecord) error { return nil }
