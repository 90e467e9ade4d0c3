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

// UpdateApplicationStatus godoc
// @Summary Move an application through the review pipeline
// @Tags Admin - Applications
// @Accept json
// @Produce json
// @Param id path string true "Application ID"
// @Param status body models.UpdateApplicationStatusRequest true "New status"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/applications/{id}/status [patch]
func UpdateApplicationStatus(c *gin.Context) {
	applicationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Application not found"))
		return
	}

	var req models.UpdateApplicationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
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

	application.Status = req.Status
	if err := config.DB.WithContext(ctx).Save(&application).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update application"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Application status updated", application))
}
