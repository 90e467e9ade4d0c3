package cart_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/velora-commerce/velora-storefront/config"
	"github.com/velora-commerce/velora-storefront/models"
)

// AddCartItem godoc
// @Summary Add a product to the session cart
// @Description Adds quantity units of a product; adding an existing product increments its quantity
// @Tags Storefront - Cart
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "Guest session id"
// @Param item body models.AddCartItemRequest true "Product and quantity"
// @Success 200 {object} models.ApiResponse{data=models.CartSummary}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /store/cart [post]
func AddCartItem(c *gin.Context) {
	session, ok := sessionID(c)
	if !ok {
		return
	}

	var req models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}
	if req.Quantity < 1 {
		req.Quantity = 1
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// The product must exist and be purchasable
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

	// Increment on conflict, insert otherwise
	var item models.CartItem
	err := config.DB.WithContext(ctx).
		Where("session_id = ? AND product_id = ?", session, req.ProductID).
		First(&item).Error
	switch {
	case err == nil:
		if err := config.DB.WithContext(ctx).
			Model(&item).
			UpdateColumn("quantity", gorm.Expr("quantity + ?", req.Quantity)).Error; err != nil {
			log.Printf("ERROR incrementing cart item: %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update cart"))
			return
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		item = models.CartItem{
			SessionID: session,
			ProductID: req.ProductID,
			Quantity:  req.Quantity,
		}
		if err := config.DB.WithContext(ctx).Create(&item).Error; err != nil {
			log.Printf("ERROR creating cart item: %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update cart"))
			return
		}
	default:
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}

	summary, err := loadCartSummary(session)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch cart"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Item added to cart", summary))
}
