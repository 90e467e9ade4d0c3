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

// GetHeroBanners godoc
// @Summary List all hero banners (including inactive)
// @Tags Admin - Content
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/content/hero-banners [get]
func GetHeroBanners(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	banners := make([]models.HeroBanner, 0)
	if err := config.DB.WithContext(ctx).
		Order("sort_order ASC, created_at DESC").
		Find(&banners).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch hero banners"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Hero banners fetched successfully", banners))
}

// CreateHeroBanner godoc
// @Summary Create a hero banner
// @Description Multipart form with the banner fields plus an "image" file
// @Tags Admin - Content
// @Accept mpfd
// @Produce json
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/content/hero-banners [post]
func CreateHeroBanner(c *gin.Context) {
	var req models.HeroBannerRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	imageURL, err := uploadImageIfPresent(c, "image", "velora/hero-banners")
	if err != nil {
		log.Printf("ERROR uploading hero banner image: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Image upload failed"))
		return
	}
	if imageURL == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Banner image is required"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	banner := models.HeroBanner{
		Title:     req.Title,
		Subtitle:  req.Subtitle,
		ImageURL:  imageURL,
		CTALabel:  req.CTALabel,
		CTAURL:    req.CTAURL,
		SortOrder: req.SortOrder,
		IsActive:  true,
	}
	if err := config.DB.WithContext(ctx).Create(&banner).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create hero banner"))
		return
	}

	invalidateContent()
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Hero banner created", banner))
}

// UpdateHeroBanner godoc
// @Summary Update a hero banner
// @Description Partial multipart update; a new "image" file replaces the current one
// @Tags Admin - Content
// @Accept mpfd
// @Produce json
// @Param id path string true "Banner ID"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/content/hero-banners/{id} [patch]
func UpdateHeroBanner(c *gin.Context) {
	bannerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Hero banner not found"))
		return
	}

	var req models.UpdateHeroBannerRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var banner models.HeroBanner
	if err := config.DB.WithContext(ctx).First(&banner, "id = ?", bannerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Hero banner not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}

	if req.Title != nil {
		banner.Title = *req.Title
	}
	if req.Subtitle != nil {
		banner.Subtitle = *req.Subtitle
	}
	if req.CTALabel != nil {
		banner.CTALabel = *req.CTALabel
	}
	if req.CTAURL != nil {
		banner.CTAURL = *req.CTAURL
	}
	if req.SortOrder != nil {
		banner.SortOrder = *req.SortOrder
	}
	if req.IsActive != nil {
		banner.IsActive = *req.IsActive
	}

	imageURL, err := uploadImageIfPresent(c, "image", "velora/hero-banners")
	if err != nil {
		log.Printf("ERROR uploading hero banner image: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Image upload failed"))
		return
	}
	if imageURL != "" {
		banner.ImageURL = imageURL
	}

	if err := config.DB.WithContext(ctx).Save(&banner).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update hero banner"))
		return
	}

	invalidateContent()
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Hero banner updated", banner))
}

// DeleteHeroBanner godoc
// @Summary Delete a hero banner
// @Tags Admin - Content
// @Produce json
// @Param id path string true "Banner ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/content/hero-banners/{id} [delete]
func DeleteHeroBanner(c *gin.Context) {
	bannerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Hero banner not found"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	result := config.DB.WithContext(ctx).Delete(&models.HeroBanner{}, "id = ?", bannerID)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete hero banner"))
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Hero banner not found"))
		return
	}

	invalidateContent()
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Hero banner deleted", nil))
}
