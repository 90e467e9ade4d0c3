package category_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/velora-commerce/velora-storefront/cache"
	"github.com/velora-commerce/velora-storefront/config"
	"github.com/velora-commerce/velora-storefront/models"
)

// GetCategories godoc
// @Summary Get storefront categories
// @Description Get all active categories with product counts as a parent/subcategory tree
// @Tags Storefront - Categories
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /store/categories [get]
func GetCategories(c *gin.Context) {
	if parents, ok := cache.GetCategoryTree(); ok {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Categories fetched successfully", parents))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	query := `
		SELECT
			c.id::text AS id,
			c.name,
			c.slug,
			c.parent_id::text AS parent_id,
			COUNT(DISTINCT p.id)::int AS product_count
		FROM categories c
		LEFT JOIN products p ON p.category_id = c.id AND p.is_active = TRUE
		WHERE c.status = 'Active'
		GROUP BY c.id, c.name, c.slug, c.parent_id
		ORDER BY c.name ASC
	`

	var allCategories []models.StorefrontCategory
	if err := config.DB.WithContext(ctx).Raw(query).Scan(&allCategories).Error; err != nil {
		log.Printf("ERROR fetching categories: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch categories"))
		return
	}

	parents := buildCategoryTree(allCategories)
	cache.SetCategoryTree(parents)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Categories fetched successfully", parents))
}

// buildCategoryTree nests subcategories under their parents. Parent product
// counts roll up the counts of their children.
func buildCategoryTree(all []models.StorefrontCategory) []models.StorefrontCategory {
	categoriesMap := make(map[string]*models.StorefrontCategory)
	parentOrder := make([]string, 0)

	for i := range all {
		cat := &all[i]
		categoriesMap[cat.ID] = cat
		if cat.ParentID == nil {
			parentOrder = append(parentOrder, cat.ID)
		}
	}

	for i := range all {
		cat := &all[i]
		if cat.ParentID == nil {
			continue
		}
		if parent, exists := categoriesMap[*cat.ParentID]; exists {
			parent.Subcategories = append(parent.Subcategories, *cat)
			parent.ProductCount += cat.ProductCount
		}
	}

	parents := make([]models.StorefrontCategory, 0, len(parentOrder))
	for _, id := range parentOrder {
		parents = append(parents, *categoriesMap[id])
	}
	return parents
}
