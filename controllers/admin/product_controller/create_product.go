package product_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/velora-commerce/velora-storefront/cache"
	"github.com/velora-commerce/velora-storefront/config"
	"github.com/velora-commerce/velora-storefront/models"
)

// CreateProduct godoc
// @Summary Create a product
// @Tags Admin - Products
// @Accept json
// @Produce json
// @Param product body models.ProductRequest true "Product payload"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/products [post]
func CreateProduct(c *gin.Context) {
	var req models.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	if req.DiscountPrice != nil && *req.DiscountPrice >= req.Price {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Discount price must be lower than the regular price"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var category models.Category
	if err := config.DB.WithContext(ctx).First(&category, "id = ?", req.CategoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Category not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}

	product := models.Product{
		Name:          req.Name,
		Description:   req.Description,
		Brand:         req.Brand,
		Price:         req.Price,
		DiscountPrice: req.DiscountPrice,
		CategoryID:    req.CategoryID,
		Images:        models.ImageList(req.Images),
		Stock:         req.Stock,
		IsActive:      true,
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}

	if err := config.DB.WithContext(ctx).Create(&product).Error; err != nil {
		log.Printf("ERROR creating product: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create product"))
		return
	}
	product.CategoryName = &category.Name

	cache.InvalidateContent()
	cache.InvalidateCategoryTree()
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Product created", product))
}
