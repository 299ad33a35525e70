package simulator

import "fmt"

// Config holds the simulation driver parameters.
type Config struct {
	// TickSeconds is the interval between simulation ticks.
	TickSeconds float64 `json:"tick_seconds"`
	// OrdersPerTick is how many new orders are admitted each tick.
	OrdersPerTick int `json:"orders_per_tick"`
	// FleetSize is the number of robots seeded at startup.
	FleetSize int `json:"fleet_size"`
	// Seed fixes the random source; zero means time-based.
	Seed int64 `json:"seed"`
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.TickSeconds == 0 {
		c.TickSeconds = 1.5
	}
	if c.OrdersPerTick == 0 {
		c.OrdersPerTick = 1
	}
	if c.FleetSize == 0 {
		c.FleetSize = 4
	}
}

// Validate checks mandatory fields.
func (c Config) Validate() error {
	if c.TickSeconds <= 0 {
		return fmt.Errorf("tick_seconds must be positive")
	}
	if c.OrdersPerTick < 0 {
		return fmt.Errorf("orders_per_tick must not be negative")
	}
	if c.FleetSize <= 0 {
		return fmt.Errorf("fleet_size must be positive")
	}
	return nil
}
