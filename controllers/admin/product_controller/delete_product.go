package product_controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/velora-commerce/velora-storefront/cache"
	"github.com/velora-commerce/velora-storefront/config"
	"github.com/velora-commerce/velora-storefront/models"
)

// DeleteProduct godoc
// @Summary Delete a product
// @Description Also removes the product from carts, wishlists and curated sections.
// @Tags Admin - Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/products/{id} [delete]
func DeleteProduct(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	err = config.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&models.Product{}, "id = ?", productID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		if err := tx.Delete(&models.CartItem{}, "product_id = ?", productID).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.WishlistItem{}, "product_id = ?", productID).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.SectionEntry{}, "product_id = ?", productID).Error; err != nil {
			return err
		}
		return tx.Delete(&models.SpecialDeal{}, "product_id = ?", productID).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete product"))
		return
	}

	cache.InvalidateContent()
	cache.InvalidateCategoryTree()
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product deleted", nil))
}
