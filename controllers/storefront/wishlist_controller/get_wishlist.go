package wishlist_controller

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/velora-commerce/velora-storefront/config"
	"github.com/velora-commerce/velora-storefront/models"
)

func sessionID(c *gin.Context) (string, bool) {
	id := strings.TrimSpace(c.GetHeader("X-Session-ID"))
	if id == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "X-Session-ID header required"))
		return "", false
	}
	return id, true
}

func loadWishlist(session string) ([]models.WishlistItem, error) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	items := make([]models.WishlistItem, 0)
	err := config.DB.WithContext(ctx).
		Preload("Product").
		Preload("Product.Category").
		Where("session_id = ?", session).
		Order("created_at ASC").
		Find(&items).Error
	return items, err
}

// GetWishlist godoc
// @Summary Get the session wishlist
// @Tags Storefront - Wishlist
// @Produce json
// @Param X-Session-ID header string true "Guest session id"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /store/wishlist [get]
func GetWishlist(c *gin.Context) {
	session, ok := sessionID(c)
	if !ok {
		return
	}

	items, err := loadWishlist(session)
	if err != nil {
		log.Printf("ERROR loading wishlist for session %s: %v", session, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch wishlist"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Wishlist fetched successfully", items))
}
