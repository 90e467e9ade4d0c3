package storekit

import "sync"

// CartItem is one cart line: a product and how many of it.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Cart is the process-wide shopping cart. All mutations funnel through
// AddItem/RemoveItem/Clear and are atomic with respect to reads: a snapshot
// taken with Items, Total or ItemCount never observes a half-applied change.
// Totals are always derived from the items, never stored, so they cannot
// drift.
type Cart struct {
	mu    sync.Mutex
	items map[string]*CartItem
	order []string
}

// NewCart returns an empty cart.
func NewCart() *Cart {
	return &Cart{items: make(map[string]*CartItem)}
}

// AddItem puts quantity units of the product in the cart. Adding a product
// that is already present increments its quantity instead of duplicating the
// entry. A quantity below 1 is coerced to 1.
func (c *Cart) AddItem(p Product, quantity int) {
	if quantity < 1 {
		quantity = 1
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if item, ok := c.items[p.ID]; ok {
		item.Quantity += quantity
		return
	}
	c.items[p.ID] = &CartItem{Product: p, Quantity: quantity}
	c.order = append(c.order, p.ID)
}

// RemoveItem deletes the entry outright regardless of quantity. It reports
// whether the product was present.
func (c *Cart) RemoveItem(productID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.items[productID]; !ok {
		return false
	}
	delete(c.items, productID)
	for i, id := range c.order {
		if id == productID {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return true
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[string]*CartItem)
	c.order = nil
}

// Items returns the cart lines in insertion order.
func (c *Cart) Items() []CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := make([]CartItem, 0, len(c.order))
	for _, id := range c.order {
		items = append(items, *c.items[id])
	}
	return items
}

// Total is the sum of effective prices times quantities.
func (c *Cart) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	var total float64
	for _, item := range c.items {
		total += item.Product.EffectivePrice() * float64(item.Quantity)
	}
	return total
}

// ItemCount is the sum of all quantities.
func (c *Cart) ItemCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	var count int
	for _, item := range c.items {
		count += item.Quantity
	}
	return count
}

// Len returns the number of distinct products in the cart.
func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}
