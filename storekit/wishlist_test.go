package storekit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWishlistAddIsIdempotent(t *testing.T) {
	wl := NewWishlist()
	shoes := Product{ID: "p1", Name: "Shoes"}

	assert.True(t, wl.AddItem(shoes))
	assert.False(t, wl.AddItem(shoes))
	assert.Equal(t, 1, wl.Len())
	assert.True(t, wl.Contains("p1"))
}

func TestWishlistRemove(t *testing.T) {
	wl := NewWishlist()
	wl.AddItem(Product{ID: "p1"})

	assert.True(t, wl.RemoveItem("p1"))
	assert.False(t, wl.RemoveItem("p1"))
	assert.False(t, wl.Contains("p1"))
	assert.Zero(t, wl.Len())
}

func TestWishlistClearAndOrder(t *testing.T) {
	wl := NewWishlist()
	wl.AddItem(Product{ID: "b"})
	wl.AddItem(Product{ID: "a"})

	items := wl.Items()
	assert.Equal(t, "b", items[0].ID)
	assert.Equal(t, "a", items[1].ID)

	wl.Clear()
	assert.Empty(t, wl.Items())
	assert.False(t, wl.Contains("b"))
}
