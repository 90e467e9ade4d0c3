package auth_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/velora-commerce/velora-storefront/config"
	"github.com/velora-commerce/velora-storefront/middleware"
	"github.com/velora-commerce/velora-storefront/models"
)

// GetAdminMe godoc
// @Summary Get the authenticated admin's profile
// @Tags Admin - Auth
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.Admin}
// @Failure 401 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/me [get]
func GetAdminMe(c *gin.Context) {
	adminID, ok := middleware.GetAdminIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Not authenticated"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var admin models.Admin
	if err := config.DB.WithContext(ctx).First(&admin, "id = ?", adminID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch profile"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Profile fetched successfully", admin))
}
