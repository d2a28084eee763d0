package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInventoryItemLowStock(t *testing.T) {
	assert.True(t, (&InventoryItem{Quantity: 2, ReorderLevel: 5}).LowStock())
	assert.True(t, (&InventoryItem{Quantity: 5, ReorderLevel: 5}).LowStock())
	assert.False(t, (&InventoryItem{Quantity: 6, ReorderLevel: 5}).LowStock())
}
