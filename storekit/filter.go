package storekit

import (
	"math"
	"net/url"
	"strconv"
	"strings"
)

// DefaultLimit is the fixed page size for storefront list views.
const DefaultLimit = 12

// FilterParams is the structured form of a product browse query. The zero
// value means "no filters, first page" and encodes to the empty string.
type FilterParams struct {
	Category  string
	Brand     string
	MinPrice  *float64
	MaxPrice  *float64
	MinRating *float64
	InStock   bool
	IsActive  bool
	Page      int
	Limit     int
}

// Encode serializes the filters as a URL query string. Only fields that
// deviate from their defaults are written; absent fields are omitted rather
// than serialized as empty strings, so the query stays shareable and short.
func (f FilterParams) Encode() string {
	v := url.Values{}
	if f.Category != "" {
		v.Set("category", f.Category)
	}
	if f.Brand != "" {
		v.Set("brand", f.Brand)
	}
	if f.MinPrice != nil {
		v.Set("minPrice", formatNumber(*f.MinPrice))
	}
	if f.MaxPrice != nil {
		v.Set("maxPrice", formatNumber(*f.MaxPrice))
	}
	if f.MinRating != nil {
		v.Set("minRating", formatNumber(*f.MinRating))
	}
	if f.InStock {
		v.Set("inStock", "true")
	}
	if f.IsActive {
		v.Set("isActive", "true")
	}
	if f.Page > 1 {
		v.Set("page", strconv.Itoa(f.Page))
	}
	if f.Limit > 0 && f.Limit != DefaultLimit {
		v.Set("limit", strconv.Itoa(f.Limit))
	}
	return v.Encode()
}

// DecodeFilterParams parses a query string (with or without a leading "?")
// into FilterParams. Decoding is permissive: malformed numerics decode to
// absent instead of propagating NaN, booleans activate only on the literal
// "true", and page falls back to 1 when absent or invalid.
func DecodeFilterParams(query string) FilterParams {
	f := FilterParams{Page: 1, Limit: DefaultLimit}

	v, err := url.ParseQuery(strings.TrimPrefix(query, "?"))
	if err != nil {
		return f
	}

	f.Category = v.Get("category")
	f.Brand = v.Get("brand")
	f.MinPrice = parseNumber(v.Get("minPrice"))
	f.MaxPrice = parseNumber(v.Get("maxPrice"))
	f.MinRating = parseNumber(v.Get("minRating"))
	f.InStock = v.Get("inStock") == "true"
	f.IsActive = v.Get("isActive") == "true"

	if page, err := strconv.Atoi(v.Get("page")); err == nil && page >= 1 {
		f.Page = page
	}
	if limit, err := strconv.Atoi(v.Get("limit")); err == nil && limit >= 1 {
		f.Limit = limit
	}
	return f
}

// The With* setters return a copy with the field applied and Page reset to 1,
// so narrowing a result set never strands the user on an out-of-range page.

func (f FilterParams) WithCategory(category string) FilterParams {
	f.Category = category
	f.Page = 1
	return f
}

func (f FilterParams) WithBrand(brand string) FilterParams {
	f.Brand = brand
	f.Page = 1
	return f
}

func (f FilterParams) WithPriceRange(min, max *float64) FilterParams {
	f.MinPrice = min
	f.MaxPrice = max
	f.Page = 1
	return f
}

func (f FilterParams) WithMinRating(rating float64) FilterParams {
	f.MinRating = &rating
	f.Page = 1
	return f
}

func (f FilterParams) WithInStock(inStock bool) FilterParams {
	f.InStock = inStock
	f.Page = 1
	return f
}

// WithPage moves pagination without touching the filters themselves.
func (f FilterParams) WithPage(page int) FilterParams {
	if page < 1 {
		page = 1
	}
	f.Page = page
	return f
}

func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}

func parseNumber(s string) *float64 {
	if s == "" {
		return nil
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	// ParseFloat accepts "NaN" and "Inf"; treat them as absent too
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return nil
	}
	return &n
}
