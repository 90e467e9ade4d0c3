package cart_controller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/velora-commerce/velora-storefront/config"
	"github.com/velora-commerce/velora-storefront/models"
)

// sessionID extracts the guest session from the X-Session-ID header. Carts
// belong to a browser session, not an account; session issuance is the
// frontend's job.
func sessionID(c *gin.Context) (string, bool) {
	id := strings.TrimSpace(c.GetHeader("X-Session-ID"))
	if id == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "X-Session-ID header required"))
		return "", false
	}
	return id, true
}

// loadCartSummary reads the session's cart rows and derives the totals.
// Totals are never stored, so they cannot drift from the items.
func loadCartSummary(session string) (*models.CartSummary, error) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	items := make([]models.CartItem, 0)
	if err := config.DB.WithContext(ctx).
		Preload("Product").
		Preload("Product.Category").
		Where("session_id = ?", session).
		Order("created_at ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}

	summary := &models.CartSummary{Items: items}
	for _, item := range items {
		if item.Product == nil {
			continue
		}
		summary.Total += item.Product.EffectivePrice() * float64(item.Quantity)
		summary.ItemCount += item.Quantity
	}
	return summary, nil
}
