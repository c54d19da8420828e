package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCart_AddItemMergesSameProduct(t *testing.T) {
	cart := NewCart("user1")

	cart.AddItem(CartItem{ProductID: "p1", Name: "Notebook", Price: 12.5, Quantity: 2})
	cart.AddItem(CartItem{ProductID: "p1", Name: "Notebook", Price: 12.5, Quantity: 3})

	if assert.Len(t, cart.Items, 1) {
		assert.Equal(t, 5, cart.Items[0].Quantity)
	}
	assert.Equal(t, 62.5, cart.Total)
	assert.Equal(t, 5, cart.ItemCount)
}

func TestCart_AddDifferentProducts(t *testing.T) {
	cart := NewCart("user1")

	cart.AddItem(CartItem{ProductID: "p1", Price: 10, Quantity: 1})
	cart.AddItem(CartItem{ProductID: "p2", Price: 0.1, Quantity: 3})

	assert.Len(t, cart.Items, 2)
	assert.Equal(t, 10.3, cart.Total)
	assert.Equal(t, 4, cart.ItemCount)
}

func TestCart_UpdateQuantity(t *testing.T) {
	cart := NewCart("user1")
	cart.AddItem(CartItem{ProductID: "p1", Price: 4, Quantity: 1})

	assert.True(t, cart.UpdateQuantity("p1", 3))
	assert.Equal(t, 12.0, cart.Total)

	assert.False(t, cart.UpdateQuantity("missing", 3))

	assert.True(t, cart.UpdateQuantity("p1", 0))
	assert.True(t, cart.IsEmpty())
	assert.Equal(t, 0.0, cart.Total)
	assert.Equal(t, 0, cart.ItemCount)
}

func TestCart_RemoveAndClear(t *testing.T) {
	cart := NewCart("user1")
	cart.AddItem(CartItem{ProductID: "p1", Price: 4, Quantity: 1})
	cart.AddItem(CartItem{ProductID: "p2", Price: 6, Quantity: 2})

	assert.True(t, cart.RemoveItem("p1"))
	assert.False(t, cart.RemoveItem("p1"))
	assert.Equal(t, 12.0, cart.Total)

	cart.Clear()
	assert.True(t, cart.IsEmpty())
	assert.Equal(t, 0, cart.ItemCount)
}
