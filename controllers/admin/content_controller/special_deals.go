package content_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/velora-commerce/velora-storefront/config"
	"github.com/velora-commerce/velora-storefront/models"
)

// GetSpecialDeals godoc
// @Summary List all special deals (including inactive and expired)
// @Tags Admin - Content
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/content/special-deals [get]
func GetSpecialDeals(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	deals := make([]models.SpecialDeal, 0)
	if err := config.DB.WithContext(ctx).
		Preload("Product").
		Order("sort_order ASC, created_at DESC").
		Find(&deals).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch special deals"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Special deals fetched successfully", deals))
}

// CreateSpecialDeal godoc
// @Summary Create a special deal for a product
// @Description Multipart form; an optional "image" file overrides the product image
// @Tags Admin - Content
// @Accept mpfd
// @Produce json
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/content/special-deals [post]
func CreateSpecialDeal(c *gin.Context) {
	var req models.SpecialDealRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var product models.Product
	if err := config.DB.WithContext(ctx).First(&product, "id = ?", req.ProductID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Product not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}

	imageURL, err := uploadImageIfPresent(c, "image", "velora/special-deals")
	if err != nil {
		log.Printf("ERROR uploading special deal image: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Image upload failed"))
		return
	}

	deal := models.SpecialDeal{
		ProductID: req.ProductID,
		DealPrice: req.DealPrice,
		ImageURL:  imageURL,
		EndsAt:    req.EndsAt,
		SortOrder: req.SortOrder,
		IsActive:  true,
	}
	if err := config.DB.WithContext(ctx).Create(&deal).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create special deal"))
		return
	}
	deal.Product = &product

	invalidateContent()
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Special deal created", deal))
}

// UpdateSpecialDeal godoc
// @Summary Update a special deal
// @Tags Admin - Content
// @Accept mpfd
// @Produce json
// @Param id path string true "Deal ID"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/content/special-deals/{id} [patch]
func UpdateSpecialDeal(c *gin.Context) {
	dealID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Special deal not found"))
		return
	}

	var req models.UpdateSpecialDealRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var deal models.SpecialDeal
	if err := config.DB.WithContext(ctx).First(&deal, "id = ?", dealID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Special deal not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}

	if req.DealPrice != nil {
		deal.DealPrice = *req.DealPrice
	}
	if req.EndsAt != nil {
		deal.EndsAt = req.EndsAt
	}
	if req.SortOrder != nil {
		deal.SortOrder = *req.SortOrder
	}
	if req.IsActive != nil {
		deal.IsActive = *req.IsActive
	}

	imageURL, err := uploadImageIfPresent(c, "image", "velora/special-deals")
	if err != nil {
		log.Printf("ERROR uploading special deal image: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Image upload failed"))
		return
	}
	if imageURL != "" {
		deal.ImageURL = imageURL
	}

	if err := config.DB.WithContext(ctx).Save(&deal).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update special deal"))
		return
	}

	invalidateContent()
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Special deal updated", deal))
}

// DeleteSpecialDeal godoc
// @Summary Delete a special deal
// @Tags Admin - Content
// @Produce json
// @Param id path string true "Deal ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/content/special-deals/{id} [delete]
func DeleteSpecialDeal(c *gin.Context) {
	dealID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Special deal not found"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	result := config.DB.WithContext(ctx).Delete(&models.SpecialDeal{}, "id = ?", dealID)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete special deal"))
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Special deal not found"))
		return
	}

	invalidateContent()
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Special deal deleted", nil))
}
