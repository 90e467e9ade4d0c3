package application_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/velora-commerce/velora-storefront/config"
	"github.com/velora-commerce/velora-storefront/models"
)

// DeleteApplication godoc
// @Summary Delete an application
// @Tags Admin - Applications
// @Produce json
// @Param id path string true "Application ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/applications/{id} [delete]
func DeleteApplication(c *gin.Context) {
	applicationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Application not found"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	result := config.DB.WithContext(ctx).Delete(&models.Application{}, "id = ?", applicationID)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete application"))
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Application not found"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Application deleted", nil))
}
