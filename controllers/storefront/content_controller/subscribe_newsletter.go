package content_controller

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/velora-commerce/velora-storefront/config"
	"github.com/velora-commerce/velora-storefront/models"
)

// SubscribeNewsletter godoc
// @Summary Subscribe an email to the newsletter
// @Description Idempotent: an already-subscribed email gets the same success response
// @Tags Storefront - Content
// @Accept json
// @Produce json
// @Param subscription body models.SubscribeRequest true "Email to subscribe"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /store/newsletter/subscribe [post]
func SubscribeNewsletter(c *gin.Context) {
	var req models.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "A valid email is required"))
		return
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Raw pgx path: signup storms around campaigns make this the hottest
	// write in the app, and ON CONFLICT keeps it a single round trip.
	query := `
		INSERT INTO newsletter_subscribers (id, email, subscribed_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (email) DO NOTHING
	`
	if _, err := config.Pool.Exec(ctx, query, uuid.Must(uuid.NewV7()), email); err != nil {
		log.Printf("ERROR subscribing %s: %v", email, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to subscribe"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Subscribed to newsletter", gin.H{"email": email}))
}
