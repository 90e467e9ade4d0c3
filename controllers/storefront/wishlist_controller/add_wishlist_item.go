package wishlist_controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/velora-commerce/velora-storefront/config"
	"github.com/velora-commerce/velora-storefront/models"
)

// AddWishlistItem godoc
// @Summary Save a product to the session wishlist
// @Description Idempotent: saving an already-saved product is a no-op
// @Tags Storefront - Wishlist
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "Guest session id"
// @Param item body models.AddWishlistItemRequest true "Product to save"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /store/wishlist [post]
func AddWishlistItem(c *gin.Context) {
	session, ok := sessionID(c)
	if !ok {
		return
	}

	var req models.AddWishlistItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var product models.Product
	if err := config.DB.WithContext(ctx).
		First(&product, "id = ? AND is_active = TRUE", req.ProductID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}

	item := models.WishlistItem{SessionID: session, ProductID: req.ProductID}
	if err := config.DB.WithContext(ctx).
		Where("session_id = ? AND product_id = ?", session, req.ProductID).
		FirstOrCreate(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update wishlist"))
		return
	}

	items, err := loadWishlist(session)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch wishlist"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Item saved to wishlist", items))
}
