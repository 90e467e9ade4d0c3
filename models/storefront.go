package models

// StorefrontProduct is the customer-facing product shape returned by the
// storefront list and detail endpoints. Field names line up with the client
// SDK's Product type, so keep the JSON tags stable.
type StorefrontProduct struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Brand         string    `json:"brand,omitempty"`
	Price         float64   `json:"price"`
	DiscountPrice *float64  `json:"discount_price,omitempty"`
	Category      string    `json:"category,omitempty"`
	Images        ImageList `json:"images"`
	Rating        float64   `json:"rating"`
	NumReviews    int       `json:"num_reviews"`
	Stock         int       `json:"stock"`
	IsActive      bool      `json:"is_active"`
}

// StorefrontCategory represents a category in the storefront tree
type StorefrontCategory struct {
	ID            string               `json:"id"`
	Name          string               `json:"name"`
	Slug          string               `json:"slug"`
	ParentID      *string              `json:"parent_id"`
	ProductCount  int                  `json:"product_count"`
	Subcategories []StorefrontCategory `json:"subcategories,omitempty"`
}
