package content_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"github.com/velora-commerce/velora-storefront/config"
	"github.com/velora-commerce/velora-storefront/models"
)

// SubmitApplication godoc
// @Summary Submit a developer or investor application
// @Tags Storefront - Content
// @Accept json
// @Produce json
// @Param application body models.ApplicationRequest true "Application form"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /store/applications [post]
func SubmitApplication(c *gin.Context) {
	var req models.ApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}
	if !models.ValidApplicationType(req.Type) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Unknown application type"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	application := models.Application{
		Type:    req.Type,
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
		Details: datatypes.JSONMap(req.Details),
	}
	if err := config.DB.WithContext(ctx).Create(&application).Error; err != nil {
		log.Printf("ERROR creating application: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to submit application"))
		return
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Application submitted", application))
}
