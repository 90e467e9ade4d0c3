// Package storekit is the client-side core of the Velora storefront: it keeps
// the URL query string, the resolved category, the fetched product list and the
// cart/wishlist in sync with the backend REST API.
package storekit

// Product is the storefront's read-only view of a catalog product, as returned
// by GET /store/products.
type Product struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Brand         string   `json:"brand,omitempty"`
	Price         float64  `json:"price"`
	DiscountPrice *float64 `json:"discount_price,omitempty"`
	Category      string   `json:"category,omitempty"`
	Images        []string `json:"images,omitempty"`
	Rating        float64  `json:"rating"`
	NumReviews    int      `json:"num_reviews"`
	Stock         int      `json:"stock"`
	IsActive      bool     `json:"is_active"`
}

// EffectivePrice returns the discounted price when one is set.
func (p Product) EffectivePrice() float64 {
	if p.DiscountPrice != nil {
		return *p.DiscountPrice
	}
	return p.Price
}

// Category mirrors the storefront category tree. Categories are fetched once
// per page load and treated as immutable on the client.
type Category struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Slug          string     `json:"slug"`
	SubCategories []Category `json:"subcategories,omitempty"`
}
