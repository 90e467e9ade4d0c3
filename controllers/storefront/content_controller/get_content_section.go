package content_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/velora-commerce/velora-storefront/cache"
	"github.com/velora-commerce/velora-storefront/config"
	"github.com/velora-commerce/velora-storefront/models"
)

// GetContentSection godoc
// @Summary Get a marketing content section
// @Description Returns one of the curated homepage sections. The section key set is closed: hero-banners, special-deals, best-sellers, new-arrivals, trending.
// @Tags Storefront - Content
// @Produce json
// @Param section path string true "Section key"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /store/content/{section} [get]
func GetContentSection(c *gin.Context) {
	key := c.Param("section")

	if data, ok := cache.GetSection(key); ok {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Content fetched successfully", data))
		return
	}

	// Closed key set: every known key maps to an explicit loader, anything
	// else is a 404 rather than a table probe.
	var (
		data any
		err  error
	)
	switch key {
	case "hero-banners":
		data, err = loadHeroBanners()
	case "special-deals":
		data, err = loadSpecialDeals()
	default:
		section, ok := models.ParseSectionType(key)
		if !ok {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Unknown content section"))
			return
		}
		data, err = loadSectionEntries(section)
	}
	if err != nil {
		log.Printf("ERROR loading content section %q: %v", key, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch content"))
		return
	}

	cache.SetSection(key, data)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Content fetched successfully", data))
}

func loadHeroBanners() ([]models.HeroBanner, error) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	banners := make([]models.HeroBanner, 0)
	err := config.DB.WithContext(ctx).
		Where("is_active = TRUE").
		Order("sort_order ASC, created_at DESC").
		Find(&banners).Error
	return banners, err
}

func loadSpecialDeals() ([]models.SpecialDeal, error) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	deals := make([]models.SpecialDeal, 0)
	err := config.DB.WithContext(ctx).
		Preload("Product").
		Where("is_active = TRUE AND (ends_at IS NULL OR ends_at > NOW())").
		Order("sort_order ASC, created_at DESC").
		Find(&deals).Error
	return deals, err
}

func loadSectionEntries(section models.SectionType) ([]models.SectionEntry, error) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	entries := make([]models.SectionEntry, 0)
	err := config.DB.WithContext(ctx).
		Preload("Product").
		Preload("Product.Category").
		Where("section = ? AND is_active = TRUE", section).
		Order("sort_order ASC, created_at DESC").
		Find(&entries).Error
	return entries, err
}
