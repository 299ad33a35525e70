package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warebotics/waresim/core/model"
)

func newTestInventory() *InventoryStore {
	return NewInventoryStore(
		model.InventoryItem{ID: 1, Name: "Chips", Category: "packaged-food", Quantity: 10, Location: model.Position{Row: 1, Col: 1}},
		model.InventoryItem{ID: 2, Name: "iPhone", Category: "mobile-phones", Quantity: 5, Location: model.Position{Row: 2, Col: 1}},
		model.InventoryItem{ID: 3, Name: "Chips", Category: "packaged-food", Quantity: 99, Location: model.Position{Row: 3, Col: 1}},
	)
}

func TestResolveFirstMatchWins(t *testing.T) {
	inv := newTestInventory()
	item, ok := inv.Resolve("Chips")
	require.True(t, ok)
	assert.Equal(t, 1, item.ID, "duplicate names resolve to the earliest entry")

	_, ok = inv.Resolve("Nothing")
	assert.False(t, ok)
}

func TestDeductFloorsAtZero(t *testing.T) {
	inv := newTestInventory()
	assert.True(t, inv.Deduct("iPhone", 3))
	item, _ := inv.Resolve("iPhone")
	assert.Equal(t, 2, item.Quantity)

	assert.True(t, inv.Deduct("iPhone", 10))
	item, _ = inv.Resolve("iPhone")
	assert.Equal(t, 0, item.Quantity)

	// Deduct hits the first matching entry only.
	assert.True(t, inv.Deduct("Chips", 4))
	items := inv.Items()
	assert.Equal(t, 6, items[0].Quantity)
	assert.Equal(t, 99, items[2].Quantity)

	assert.False(t, inv.Deduct("Nothing", 1))
}

func TestCategoriesSortedDistinct(t *testing.T) {
	inv := newTestInventory()
	assert.Equal(t, []string{"mobile-phones", "packaged-food"}, inv.Categories())

	empty := NewInventoryStore()
	assert.Empty(t, empty.Categories())
}

func TestAddAndItemsSnapshot(t *testing.T) {
	inv := NewInventoryStore()
	inv.Add(model.InventoryItem{ID: 1, Name: "Toaster"})
	items := inv.Items()
	require.Len(t, items, 1)
	items[0].Name = "mutated"
	again := inv.Items()
	assert.Equal(t, "Toaster", again[0].Name, "Items must return a copy")
}
