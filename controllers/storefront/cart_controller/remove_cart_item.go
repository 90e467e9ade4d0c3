package cart_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/velora-commerce/velora-storefront/config"
	"github.com/velora-commerce/velora-storefront/models"
)

// RemoveCartItem godoc
// @Summary Remove a product from the session cart
// @Description Deletes the cart entry outright regardless of quantity
// @Tags Storefront - Cart
// @Produce json
// @Param X-Session-ID header string true "Guest session id"
// @Param productId path string true "Product ID"
// @Success 200 {object} models.ApiResponse{data=models.CartSummary}
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /store/cart/{productId} [delete]
func RemoveCartItem(c *gin.Context) {
	session, ok := sessionID(c)
	if !ok {
		return
	}

	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product id"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Removing an absent product is a no-op, not an error
	if err := config.DB.WithContext(ctx).
		Where("session_id = ? AND product_id = ?", session, productID).
		Delete(&models.CartItem{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update cart"))
		return
	}

	summary, err := loadCartSummary(session)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch cart"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Item removed from cart", summary))
}
