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

// sectionFromParam resolves the :section URL key or writes a 404 and returns
// false. Only the closed set of curated sections is accepted here.
func sectionFromParam(c *gin.Context) (models.SectionType, bool) {
	section, ok := models.ParseSectionType(c.Param("section"))
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Unknown content section"))
	}
	return section, ok
}

// GetSectionEntries godoc
// @Summary List the entries of a curated section (including inactive)
// @Tags Admin - Content
// @Produce json
// @Param section path string true "Section key" Enums(best-sellers, new-arrivals, trending)
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/content/sections/{section} [get]
func GetSectionEntries(c *gin.Context) {
	section, ok := sectionFromParam(c)
	if !ok {
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	entries := make([]models.SectionEntry, 0)
	if err := config.DB.WithContext(ctx).
		Preload("Product").
		Where("section = ?", section).
		Order("sort_order ASC, created_at DESC").
		Find(&entries).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch section entries"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Section entries fetched successfully", entries))
}

// CreateSectionEntry godoc
// @Summary Pin a product into a curated section
// @Tags Admin - Content
// @Accept json
// @Produce json
// @Param section path string true "Section key" Enums(best-sellers, new-arrivals, trending)
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/content/sections/{section} [post]
func CreateSectionEntry(c *gin.Context) {
	section, ok := sectionFromParam(c)
	if !ok {
		return
	}

	var req models.SectionEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
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

	var existing int64
	config.DB.WithContext(ctx).Model(&models.SectionEntry{}).
		Where("section = ? AND product_id = ?", section, req.ProductID).
		Count(&existing)
	if existing > 0 {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "Product is already in this section"))
		return
	}

	entry := models.SectionEntry{
		Section:   section,
		ProductID: req.ProductID,
		SortOrder: req.SortOrder,
		IsActive:  true,
	}
	if req.IsActive != nil {
		entry.IsActive = *req.IsActive
	}
	if err := config.DB.WithContext(ctx).Create(&entry).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create section entry"))
		return
	}
	entry.Product = &product

	invalidateContent()
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Section entry created", entry))
}

// UpdateSectionEntry godoc
// @Summary Update a section entry's sort order or visibility
// @Tags Admin - Content
// @Accept json
// @Produce json
// @Param section path string true "Section key" Enums(best-sellers, new-arrivals, trending)
// @Param id path string true "Entry ID"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/content/sections/{section}/{id} [patch]
func UpdateSectionEntry(c *gin.Context) {
	section, ok := sectionFromParam(c)
	if !ok {
		return
	}
	entryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Section entry not found"))
		return
	}

	var req models.UpdateSectionEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var entry models.SectionEntry
	if err := config.DB.WithContext(ctx).
		First(&entry, "id = ? AND section = ?", entryID, section).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Section entry not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}

	if req.SortOrder != nil {
		entry.SortOrder = *req.SortOrder
	}
	if req.IsActive != nil {
		entry.IsActive = *req.IsActive
	}

	if err := config.DB.WithContext(ctx).Save(&entry).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update section entry"))
		return
	}

	invalidateContent()
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Section entry updated", entry))
}

// DeleteSectionEntry godoc
// @Summary Remove a product from a curated section
// @Tags Admin - Content
// @Produce json
// @Param section path string true "Section key" Enums(best-sellers, new-arrivals, trending)
// @Param id path string true "Entry ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/content/sections/{section}/{id} [delete]
func DeleteSectionEntry(c *gin.Context) {
	section, ok := sectionFromParam(c)
	if !ok {
		return
	}
	entryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Section entry not found"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	result := config.DB.WithContext(ctx).
		Delete(&models.SectionEntry{}, "id = ? AND section = ?", entryID, section)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete section entry"))
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Section entry not found"))
		return
	}

	invalidateContent()
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Section entry deleted", nil))
}
