package model

import "time"

// InventoryItem is a stocked product at a fixed shelf location. The dispatch
// engine only reads the location; quantities are adjusted by the store owner.
type InventoryItem struct {
	ID            int       `json:"id"`
	Name          string    `json:"name"`
	Category      string    `json:"category"`
	Quantity      int       `json:"quantity"`
	Location      Position  `json:"location"`
	Price         float64   `json:"price"`
	Weight        float64   `json:"weight"`
	Supplier      string    `json:"supplier,omitempty"`
	LastRestocked time.Time `json:"last_restocked"`
	MinStock      int       `json:"min_stock_level"`
	MaxStock      int       `json:"max_stock_level"`
}

// StockStatus buckets the current quantity against the stock bounds.
func (i InventoryItem) StockStatus() string {
	switch {
	case i.Quantity <= i.MinStock:
		return "low"
	case float64(i.Quantity) >= float64(i.MaxStock)*0.8:
		return "high"
	default:
		return "normal"
	}
}
