package simulator

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/warebotics/waresim/core/demand"
	"github.com/warebotics/waresim/core/grid"
	"github.com/warebotics/waresim/core/model"
	"github.com/warebotics/waresim/store"
)

// SeedInventory stocks the warehouse from the demand table: each popular
// product of each category is placed on the next free shelf in registry
// order. Categories are walked in sorted order so seeding is reproducible
// under a fixed seed.
func SeedInventory(g *grid.Grid, table demand.Table, rng *rand.Rand) *store.InventoryStore {
	inv := store.NewInventoryStore()
	shelves := g.Shelves()
	idx := 0
	id := 1
	for _, category := range sortedCategories(table) {
		for _, product := range table.Categories[category].PopularProducts {
			if idx >= len(shelves) {
				return inv
			}
			inv.Add(model.InventoryItem{
				ID:            id,
				Name:          product,
				Category:      category,
				Quantity:      20 + rng.Intn(81),
				Location:      shelves[idx].Position,
				Price:         float64(5+rng.Intn(495)) + 0.99,
				Weight:        0.1 + rng.Float64()*4.9,
				LastRestocked: time.Now().AddDate(0, 0, -rng.Intn(30)),
				MinStock:      10,
				MaxStock:      100 + rng.Intn(101),
			})
			idx++
			id++
		}
	}
	return inv
}

// SeedFleet creates n idle robots parked at the warehouse entrances
// (cycling through them when n exceeds the entrance count).
func SeedFleet(n int, g *grid.Grid) *store.FleetStore {
	entrances := g.Entrances()
	robots := make([]model.Robot, n)
	for i := 0; i < n; i++ {
		pos := model.Position{}
		if len(entrances) > 0 {
			pos = entrances[i%len(entrances)]
		}
		robots[i] = model.Robot{
			ID:          fmt.Sprintf("rob%03d", i+1),
			Position:    pos,
			Status:      model.RobotIdle,
			Battery:     100,
			Speed:       1,
			Capacity:    50,
			LastService: time.Now(),
		}
	}
	return store.NewFleetStore(robots...)
}

func sortedCategories(table demand.Table) []string {
	out := make([]string, 0, len(table.Categories))
	for name := range table.Categories {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
