package product_controller

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/velora-commerce/velora-storefront/config"
	"github.com/velora-commerce/velora-storefront/models"
)

// ─────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────

func parsePagination(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "12"))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 12
	}

	return page, limit
}

// buildStorefrontOrderClause builds the ORDER BY clause shared by handlers.
func buildStorefrontOrderClause(sortBy, sortOrder string) string {
	order := "DESC"
	if strings.ToUpper(sortOrder) == "ASC" {
		order = "ASC"
	}

	switch sortBy {
	case "price":
		return fmt.Sprintf("COALESCE(p.discount_price, p.price) %s", order)
	case "name":
		return fmt.Sprintf("p.name %s", order)
	case "rating":
		return fmt.Sprintf("p.rating %s", order)
	case "newest":
		return fmt.Sprintf("p.created_at %s", order)
	default:
		return "p.created_at DESC"
	}
}

// buildProductConditions turns the filter query parameters into SQL
// conditions. Malformed numeric values are skipped rather than rejected, so a
// bad URL degrades to a broader result set instead of an error.
func buildProductConditions(c *gin.Context) (conditions []string, args []interface{}) {
	// Storefront defaults to active products; an explicit isActive parameter
	// (admin preview) overrides it.
	switch c.Query("isActive") {
	case "true":
		conditions = append(conditions, "p.is_active = TRUE")
	case "false":
		conditions = append(conditions, "p.is_active = FALSE")
	default:
		conditions = append(conditions, "p.is_active = TRUE")
	}

	// Category filter accepts the category id or its slug, and includes the
	// category's own subcategories.
	if category := strings.TrimSpace(c.Query("category")); category != "" {
		cond := `p.category_id IN (
			SELECT id FROM categories
			WHERE id::text = ? OR LOWER(slug) = LOWER(?)
			UNION
			SELECT id FROM categories
			WHERE parent_id IN (
				SELECT id FROM categories
				WHERE id::text = ? OR LOWER(slug) = LOWER(?)
			)
		)`
		conditions = append(conditions, cond)
		args = append(args, category, category, category, category)
	}

	if brand := strings.TrimSpace(c.Query("brand")); brand != "" {
		conditions = append(conditions, "LOWER(p.brand) = LOWER(?)")
		args = append(args, brand)
	}

	if minPrice, ok := parseFiniteQuery(c, "minPrice"); ok {
		conditions = append(conditions, "COALESCE(p.discount_price, p.price) >= ?")
		args = append(args, minPrice)
	}
	if maxPrice, ok := parseFiniteQuery(c, "maxPrice"); ok {
		conditions = append(conditions, "COALESCE(p.discount_price, p.price) <= ?")
		args = append(args, maxPrice)
	}
	if minRating, ok := parseFiniteQuery(c, "minRating"); ok {
		conditions = append(conditions, "p.rating >= ?")
		args = append(args, minRating)
	}

	if c.Query("inStock") == "true" {
		conditions = append(conditions, "p.stock > 0")
	}

	return conditions, args
}

// parseFiniteQuery reads a numeric query parameter. ParseFloat accepts "NaN"
// and "Inf"; neither belongs in a SQL comparison, so non-finite values are
// skipped like any other malformed number.
func parseFiniteQuery(c *gin.Context, key string) (float64, bool) {
	raw := c.Query(key)
	if raw == "" {
		return 0, false
	}
	n, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

// ─────────────────────────────────────────────────────────────
// Database fetcher
// ─────────────────────────────────────────────────────────────

func fetchStorefrontProductsFromDB(
	whereClause string,
	orderClause string,
	args []interface{},
	page int,
	limit int,
) ([]models.StorefrontProduct, int, error) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	offset := (page - 1) * limit

	// Count query
	countQuery := fmt.Sprintf(`
		SELECT COUNT(p.id)
		FROM products p
		WHERE %s
	`, whereClause)

	var totalCount int64
	if err := config.DB.
		WithContext(ctx).
		Raw(countQuery, args...).
		Scan(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	// Data query
	dataQuery := fmt.Sprintf(`
		SELECT
			p.id::text AS id,
			p.name,
			p.brand,
			p.price,
			p.discount_price,
			c.name AS category,
			p.images,
			p.rating,
			p.num_reviews,
			p.stock,
			p.is_active
		FROM products p
		LEFT JOIN categories c ON c.id = p.category_id
		WHERE %s
		ORDER BY %s
		LIMIT ? OFFSET ?
	`, whereClause, orderClause)

	dataArgs := append(args, limit, offset)

	products := make([]models.StorefrontProduct, 0)

	if err := config.DB.
		WithContext(ctx).
		Raw(dataQuery, dataArgs...).
		Scan(&products).Error; err != nil {
		return nil, 0, err
	}

	return products, int(totalCount), nil
}
