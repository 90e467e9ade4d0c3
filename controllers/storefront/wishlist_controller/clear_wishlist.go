package wishlist_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/velora-commerce/velora-storefront/config"
	"github.com/velora-commerce/velora-storefront/models"
)

// ClearWishlist godoc
// @Summary Empty the session wishlist
// @Tags Storefront - Wishlist
// @Produce json
// @Param X-Session-ID header string true "Guest session id"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /store/wishlist [delete]
func ClearWishlist(c *gin.Context) {
	session, ok := sessionID(c)
	if !ok {
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := config.DB.WithContext(ctx).
		Where("session_id = ?", session).
		Delete(&models.WishlistItem{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to clear wishlist"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Wishlist cleared", make([]models.WishlistItem, 0)))
}
