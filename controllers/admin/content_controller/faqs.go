package content_controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/velora-commerce/velora-storefront/config"
	"github.com/velora-commerce/velora-storefront/models"
)

// GetFAQs godoc
// @Summary List all FAQs (including inactive)
// @Tags Admin - Content
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/content/faqs [get]
func GetFAQs(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	faqs := make([]models.FAQ, 0)
	if err := config.DB.WithContext(ctx).
		Order("sort_order ASC, created_at ASC").
		Find(&faqs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch FAQs"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "FAQs fetched successfully", faqs))
}

// CreateFAQ godoc
// @Summary Create an FAQ
// @Tags Admin - Content
// @Accept json
// @Produce json
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/content/faqs [post]
func CreateFAQ(c *gin.Context) {
	var req models.FAQRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	faq := models.FAQ{
		Question:  req.Question,
		Answer:    req.Answer,
		SortOrder: req.SortOrder,
		IsActive:  true,
	}
	if err := config.DB.WithContext(ctx).Create(&faq).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create FAQ"))
		return
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "FAQ created", faq))
}

// UpdateFAQ godoc
// @Summary Update an FAQ
// @Tags Admin - Content
// @Accept json
// @Produce json
// @Param id path string true "FAQ ID"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/content/faqs/{id} [patch]
func UpdateFAQ(c *gin.Context) {
	faqID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "FAQ not found"))
		return
	}

	var req models.UpdateFAQRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var faq models.FAQ
	if err := config.DB.WithContext(ctx).First(&faq, "id = ?", faqID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "FAQ not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}

	if req.Question != nil {
		faq.Question = *req.Question
	}
	if req.Answer != nil {
		faq.Answer = *req.Answer
	}
	if req.SortOrder != nil {
		faq.SortOrder = *req.SortOrder
	}
	if req.IsActive != nil {
		faq.IsActive = *req.IsActive
	}

	if err := config.DB.WithContext(ctx).Save(&faq).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update FAQ"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "FAQ updated", faq))
}

// DeleteFAQ godoc
// @Summary Delete an FAQ
// @Tags Admin - Content
// @Produce json
// @Param id path string true "FAQ ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/content/faqs/{id} [delete]
func DeleteFAQ(c *gin.Context) {
	faqID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "FAQ not found"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	result := config.DB.WithContext(ctx).Delete(&models.FAQ{}, "id = ?", faqID)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete FAQ"))
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "FAQ not found"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "FAQ deleted", nil))
}
