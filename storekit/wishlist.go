package storekit

import "sync"

// Wishlist is a saved-products collection keyed by product id. Unlike the
// cart it has no quantities; adding a product twice is a no-op.
type Wishlist struct {
	mu    sync.Mutex
	items map[string]Product
	order []string
}

// NewWishlist returns an empty wishlist.
func NewWishlist() *Wishlist {
	return &Wishlist{items: make(map[string]Product)}
}

// AddItem saves the product. It reports whether the product was newly added.
func (w *Wishlist) AddItem(p Product) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.items[p.ID]; ok {
		return false
	}
	w.items[p.ID] = p
	w.order = append(w.order, p.ID)
	return true
}

// RemoveItem deletes the product. It reports whether it was present.
func (w *Wishlist) RemoveItem(productID string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.items[productID]; !ok {
		return false
	}
	delete(w.items, productID)
	for i, id := range w.order {
		if id == productID {
			w.order = append(w.order[:i], w.order[i+1:]...)
			break
		}
	}
	return true
}

// Clear empties the wishlist.
func (w *Wishlist) Clear() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.items = make(map[string]Product)
	w.order = nil
}

// Contains reports whether the product is saved.
func (w *Wishlist) Contains(productID string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	_, ok := w.items[productID]
	return ok
}

// Items returns the saved products in insertion order.
func (w *Wishlist) Items() []Product {
	w.mu.Lock()
	defer w.mu.Unlock()

	items := make([]Product, 0, len(w.order))
	for _, id := range w.order {
		items = append(items, w.items[id])
	}
	return items
}

// Len returns the number of saved products.
func (w *Wishlist) Len() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.items)
}
