package config

import "fmt"

// GridConfig sets the generated warehouse dimensions.
type GridConfig struct {
	Rows int `json:"rows"`
	Cols int `json:"cols"`
}

// SetDefaults applies the standard 50x50 floor.
func (c *GridConfig) SetDefaults() {
	if c.Rows == 0 {
		c.Rows = 50
	}
	if c.Cols == 0 {
		c.Cols = 50
	}
}

// Validate checks the dimensions.
func (c GridConfig) Validate() error {
	if c.Rows <= 0 || c.Cols <= 0 {
		return fmt.Errorf("grid dimensions must be positive, got %dx%d", c.Rows, c.Cols)
	}
	return nil
}
