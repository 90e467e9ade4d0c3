package newsletter_controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/velora-commerce/velora-storefront/config"
	"github.com/velora-commerce/velora-storefront/models"
)

// GetSubscribers godoc
// @Summary List newsletter subscribers
// @Tags Admin - Newsletter
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(50)
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/newsletter/subscribers [get]
func GetSubscribers(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit < 1 {
		limit = 50
	}
	if limit > 200 {
		limit = 200
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var total int64
	if err := config.DB.WithContext(ctx).Model(&models.NewsletterSubscriber{}).Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to count subscribers"))
		return
	}

	subscribers := make([]models.NewsletterSubscriber, 0)
	if err := config.DB.WithContext(ctx).
		Order("subscribed_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&subscribers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch subscribers"))
		return
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	meta := &models.Pagination{Page: page, Limit: limit, Total: int(total), TotalPages: totalPages}
	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Subscribers fetched successfully", subscribers, meta))
}
