package storekit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartAddSameProductIncrements(t *testing.T) {
	cart := NewCart()
	shirt := Product{ID: "p1", Name: "Shirt", Price: 20, DiscountPrice: floatPtr(15)}

	cart.AddItem(shirt, 1)
	cart.AddItem(shirt, 1)

	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, 2*15.0, cart.Total())
	assert.Equal(t, 2, cart.ItemCount())
}

func TestCartTotalPrefersDiscountPrice(t *testing.T) {
	cart := NewCart()
	cart.AddItem(Product{ID: "p1", Price: 100, DiscountPrice: floatPtr(80)}, 2)
	cart.AddItem(Product{ID: "p2", Price: 10}, 3)

	assert.Equal(t, 2*80.0+3*10.0, cart.Total())
	assert.Equal(t, 5, cart.ItemCount())
	assert.Equal(t, 2, cart.Len())
}

func TestCartQuantityCoercedToOne(t *testing.T) {
	cart := NewCart()
	cart.AddItem(Product{ID: "p1", Price: 5}, 0)
	cart.AddItem(Product{ID: "p2", Price: 5}, -4)

	for _, item := range cart.Items() {
		assert.Equal(t, 1, item.Quantity)
	}
}

func TestCartRemoveDeletesOutright(t *testing.T) {
	cart := NewCart()
	cart.AddItem(Product{ID: "p1", Price: 10}, 3)

	assert.True(t, cart.RemoveItem("p1"))
	assert.False(t, cart.RemoveItem("p1"))
	assert.Empty(t, cart.Items())
	assert.Zero(t, cart.Total())
	assert.Zero(t, cart.ItemCount())
}

func TestCartClear(t *testing.T) {
	cart := NewCart()
	cart.AddItem(Product{ID: "p1", Price: 10}, 1)
	cart.AddItem(Product{ID: "p2", Price: 20}, 2)

	cart.Clear()

	assert.Empty(t, cart.Items())
	assert.Zero(t, cart.Len())

	// The cart is reusable after a clear.
	cart.AddItem(Product{ID: "p3", Price: 7}, 1)
	assert.Equal(t, 7.0, cart.Total())
}

func TestCartItemsInsertionOrder(t *testing.T) {
	cart := NewCart()
	cart.AddItem(Product{ID: "b", Price: 1}, 1)
	cart.AddItem(Product{ID: "a", Price: 1}, 1)
	cart.AddItem(Product{ID: "c", Price: 1}, 1)
	cart.RemoveItem("a")
	cart.AddItem(Product{ID: "a", Price: 1}, 1)

	var ids []string
	for _, item := range cart.Items() {
		ids = append(ids, item.Product.ID)
	}
	assert.Equal(t, []string{"b", "c", "a"}, ids)
}
