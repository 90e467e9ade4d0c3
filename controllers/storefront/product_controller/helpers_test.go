package product_controller

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ctxWithQuery(t *testing.T, rawQuery string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/store/products?"+rawQuery, nil)
	return c
}

func TestParsePaginationDefaults(t *testing.T) {
	page, limit := parsePagination(ctxWithQuery(t, ""))
	assert.Equal(t, 1, page)
	assert.Equal(t, 12, limit)
}

func TestParsePaginationClamps(t *testing.T) {
	page, limit := parsePagination(ctxWithQuery(t, "page=-2&limit=9999"))
	assert.Equal(t, 1, page)
	assert.Equal(t, 12, limit)

	page, limit = parsePagination(ctxWithQuery(t, "page=3&limit=24"))
	assert.Equal(t, 3, page)
	assert.Equal(t, 24, limit)
}

func TestBuildProductConditionsDefaultsToActive(t *testing.T) {
	conditions, args := buildProductConditions(ctxWithQuery(t, ""))
	require.Len(t, conditions, 1)
	assert.Equal(t, "p.is_active = TRUE", conditions[0])
	assert.Empty(t, args)
}

func TestBuildProductConditionsIsActiveOverride(t *testing.T) {
	conditions, _ := buildProductConditions(ctxWithQuery(t, "isActive=false"))
	assert.Equal(t, "p.is_active = FALSE", conditions[0])

	// Anything but the literal booleans falls back to the storefront default.
	conditions, _ = buildProductConditions(ctxWithQuery(t, "isActive=maybe"))
	assert.Equal(t, "p.is_active = TRUE", conditions[0])
}

func TestBuildProductConditionsPriceRange(t *testing.T) {
	conditions, args := buildProductConditions(ctxWithQuery(t, "minPrice=10&maxPrice=50"))
	require.Len(t, conditions, 3)
	assert.Contains(t, conditions[1], "COALESCE(p.discount_price, p.price) >=")
	assert.Contains(t, conditions[2], "COALESCE(p.discount_price, p.price) <=")
	assert.Equal(t, []interface{}{10.0, 50.0}, args)
}

func TestBuildProductConditionsSkipsMalformedNumbers(t *testing.T) {
	conditions, args := buildProductConditions(ctxWithQuery(t, "minPrice=cheap&minRating=lots"))
	assert.Len(t, conditions, 1) // only the is_active default
	assert.Empty(t, args)
}

func TestBuildProductConditionsSkipsNonFiniteNumbers(t *testing.T) {
	conditions, args := buildProductConditions(ctxWithQuery(t, "minPrice=NaN&maxPrice=Inf&minRating=-Inf"))
	assert.Len(t, conditions, 1) // only the is_active default
	assert.Empty(t, args)
}

func TestBuildProductConditionsInStockLiteralTrue(t *testing.T) {
	conditions, _ := buildProductConditions(ctxWithQuery(t, "inStock=true"))
	assert.Contains(t, conditions, "p.stock > 0")

	conditions, _ = buildProductConditions(ctxWithQuery(t, "inStock=false"))
	assert.NotContains(t, conditions, "p.stock > 0")

	conditions, _ = buildProductConditions(ctxWithQuery(t, "inStock=1"))
	assert.NotContains(t, conditions, "p.stock > 0")
}

func TestBuildProductConditionsCategoryArgs(t *testing.T) {
	_, args := buildProductConditions(ctxWithQuery(t, "category=shoes"))
	// The category predicate matches id or slug for both the category and its
	// parent lookup, so the value binds four times.
	assert.Equal(t, []interface{}{"shoes", "shoes", "shoes", "shoes"}, args)
}

func TestBuildStorefrontOrderClause(t *testing.T) {
	assert.Equal(t, "COALESCE(p.discount_price, p.price) ASC", buildStorefrontOrderClause("price", "asc"))
	assert.Equal(t, "p.rating DESC", buildStorefrontOrderClause("rating", "desc"))
	assert.Equal(t, "p.name ASC", buildStorefrontOrderClause("name", "ASC"))
	assert.Equal(t, "p.created_at DESC", buildStorefrontOrderClause("anything-else", "asc"))
	assert.Equal(t, "p.created_at DESC", buildStorefrontOrderClause("newest", "desc"))
}
