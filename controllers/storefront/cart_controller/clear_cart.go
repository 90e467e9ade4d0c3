package cart_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/velora-commerce/velora-storefront/config"
	"github.com/velora-commerce/velora-storefront/models"
)

// ClearCart godoc
// @Summary Empty the session cart
// @Description Deletes every cart entry for the session. Confirmation happens client-side.
// @Tags Storefront - Cart
// @Produce json
// @Param X-Session-ID header string true "Guest session id"
// @Success 200 {object} models.ApiResponse{data=models.CartSummary}
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /store/cart [delete]
func ClearCart(c *gin.Context) {
	session, ok := sessionID(c)
	if !ok {
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := config.DB.WithContext(ctx).
		Where("session_id = ?", session).
		Delete(&models.CartItem{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to clear cart"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart cleared", &models.CartSummary{
		Items: make([]models.CartItem, 0),
	}))
}
