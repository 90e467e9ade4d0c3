package application_controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/velora-commerce/velora-storefront/config"
	"github.com/velora-commerce/velora-storefront/models"
)

// GetApplicationByID godoc
// @Summary Fetch a single application with its form details
// @Tags Admin - Applications
// @Produce json
// @Param id path string true "Application ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/applications/{id} [get]
func GetApplicationByID(c *gin.Context) {
	applicationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Application not found"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var application models.Application
	if err := config.DB.WithContext(ctx).First(&application, "id = ?", applicationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Application not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Application fetched successfully", application))
}
