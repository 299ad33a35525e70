package metrics

import "fmt"

// Config selects and parameterizes the metrics sinks.
type Config struct {
	// Backend is one of "nop", "prometheus", "influx" or "multi"
	// (prometheus plus influx).
	Backend      string `json:"backend"`
	PromAddr     string `json:"prom_addr"`
	InfluxURL    string `json:"influx_url"`
	InfluxToken  string `json:"influx_token"`
	InfluxOrg    string `json:"influx_org"`
	InfluxBucket string `json:"influx_bucket"`
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.Backend == "" {
		c.Backend = "nop"
	}
	if c.PromAddr == "" {
		c.PromAddr = ":9090"
	}
}

// NewSink builds the sink described by the config.
func NewSink(cfg Config) (Sink, error) {
	switch cfg.Backend {
	case "", "nop":
		return NopSink{}, nil
	case "prometheus":
		return NewPromSink(nil)
	case "influx":
		return NewInfluxSinkWithFallback(cfg), nil
	case "multi":
		prom, err := NewPromSink(nil)
		if err != nil {
			return nil, err
		}
		return NewMultiSink(prom, NewInfluxSinkWithFallback(cfg)), nil
	default:
		return nil, fmt.Errorf("metrics: unknown backend %q", cfg.Backend)
	}
}
