package application_controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/velora-commerce/velora-storefront/config"
	"github.com/velora-commerce/velora-storefront/models"
)

// GetApplications godoc
// @Summary List developer and investor applications
// @Tags Admin - Applications
// @Produce json
// @Param type query string false "Filter by form type" Enums(developer, investor)
// @Param status query string false "Filter by status" Enums(pending, reviewed, accepted, rejected)
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/applications [get]
func GetApplications(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	query := config.DB.WithContext(ctx).Model(&models.Application{})
	if formType := c.Query("type"); formType != "" {
		if !models.ValidApplicationType(models.ApplicationType(formType)) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Unknown application type"))
			return
		}
		query = query.Where("type = ?", formType)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to count applications"))
		return
	}

	applications := make([]models.Application, 0)
	if err := query.
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&applications).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch applications"))
		return
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	meta := &models.Pagination{Page: page, Limit: limit, Total: int(total), TotalPages: totalPages}
	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Applications fetched successfully", applications, meta))
}
