package product_controller

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/velora-commerce/velora-storefront/models"
)

// GetStorefrontProducts godoc
// @Summary Get storefront products with filters
// @Description Retrieve storefront products with optional category, brand, price range, rating and availability filters.
// @Tags Storefront - Products
// @Produce json
// @Param category query string false "Category id or slug"
// @Param brand query string false "Brand name"
// @Param minPrice query number false "Minimum effective price"
// @Param maxPrice query number false "Maximum effective price"
// @Param minRating query number false "Minimum rating"
// @Param inStock query bool false "Only in-stock products (literal true)"
// @Param isActive query bool false "Override the active-only default"
// @Param sortBy query string false "Sort by field (newest, price, name, rating)" default(newest)
// @Param sortOrder query string false "Sort order (asc | desc)" default(desc)
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(12)
// @Success 200 {object} models.ApiResponse "Products fetched successfully"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /store/products [get]
func GetStorefrontProducts(c *gin.Context) {
	page, limit := parsePagination(c)

	conditions, args := buildProductConditions(c)
	whereClause := strings.Join(conditions, " AND ")
	orderClause := buildStorefrontOrderClause(
		c.DefaultQuery("sortBy", "newest"),
		c.DefaultQuery("sortOrder", "desc"),
	)

	products, totalCount, err := fetchStorefrontProductsFromDB(
		whereClause,
		orderClause,
		args,
		page,
		limit,
	)
	if err != nil {
		log.Printf("ERROR in fetchStorefrontProductsFromDB: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch products"))
		return
	}

	totalPages := (totalCount + limit - 1) / limit

	c.JSON(http.StatusOK, models.PaginatedResponse(
		c,
		"Products fetched successfully",
		products,
		&models.Pagination{
			Page:       page,
			Limit:      limit,
			Total:      totalCount,
			TotalPages: totalPages,
		},
	))
}
