package newsletter_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/velora-commerce/velora-storefront/config"
	"github.com/velora-commerce/velora-storefront/models"
)

// DeleteSubscriber godoc
// @Summary Remove a newsletter subscriber
// @Tags Admin - Newsletter
// @Produce json
// @Param id path string true "Subscriber ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/newsletter/subscribers/{id} [delete]
func DeleteSubscriber(c *gin.Context) {
	subscriberID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Subscriber not found"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	result := config.DB.WithContext(ctx).Delete(&models.NewsletterSubscriber{}, "id = ?", subscriberID)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete subscriber"))
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Subscriber not found"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Subscriber removed", nil))
}
