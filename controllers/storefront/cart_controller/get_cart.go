package cart_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/velora-commerce/velora-storefront/models"
)

// GetCart godoc
// @Summary Get the session cart
// @Description Returns the cart items with derived total and item count
// @Tags Storefront - Cart
// @Produce json
// @Param X-Session-ID header string true "Guest session id"
// @Success 200 {object} models.ApiResponse{data=models.CartSummary}
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /store/cart [get]
func GetCart(c *gin.Context) {
	session, ok := sessionID(c)
	if !ok {
		return
	}

	summary, err := loadCartSummary(session)
	if err != nil {
		log.Printf("ERROR loading cart for session %s: %v", session, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch cart"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart fetched successfully", summary))
}
