package content_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/velora-commerce/velora-storefront/config"
	"github.com/velora-commerce/velora-storefront/models"
)

// GetFAQs godoc
// @Summary Get published FAQs
// @Tags Storefront - Content
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /store/faqs [get]
func GetFAQs(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	faqs := make([]models.FAQ, 0)
	if err := config.DB.WithContext(ctx).
		Where("is_active = TRUE").
		Order("sort_order ASC, created_at ASC").
		Find(&faqs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch FAQs"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "FAQs fetched successfully", faqs))
}
