package filter_controller

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/velora-commerce/velora-storefront/config"
	"github.com/velora-commerce/velora-storefront/models"
)

// GetFilterMetadata godoc
// @Summary Get all filter metadata
// @Description Returns availability counts, categories, price range and brands for storefront filters
// @Tags Storefront - Filters
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.FilterMetadata}
// @Failure 500 {object} models.ApiResponse
// @Router /store/filters/metadata [get]
func GetFilterMetadata(c *gin.Context) {
	db := config.DB

	// Run the independent aggregate queries concurrently
	var wg sync.WaitGroup
	var mu sync.Mutex

	metadata := &models.FilterMetadata{}
	var errs []error

	wg.Add(1)
	go func() {
		defer wg.Done()
		availability, err := getAvailabilityCounts(db)
		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			errs = append(errs, err)
		} else {
			metadata.Availability = availability
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		categories, err := getCategoriesWithSubcategories(db)
		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			errs = append(errs, err)
		} else {
			metadata.Categories = categories
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		priceRange, err := getPriceRange(db)
		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			errs = append(errs, err)
		} else {
			metadata.PriceRange = priceRange
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		brands, err := getBrands(db)
		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			errs = append(errs, err)
		} else {
			metadata.Brands = brands
		}
	}()

	wg.Wait()

	if len(errs) > 0 {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch filter metadata"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Filter metadata fetched", metadata))
}

func getAvailabilityCounts(db *gorm.DB) (*models.AvailabilityData, error) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	query := `
		SELECT
			COUNT(p.id) FILTER (WHERE p.stock > 0)::int AS in_stock,
			COUNT(p.id) FILTER (WHERE p.stock = 0)::int AS out_of_stock
		FROM products p
		WHERE p.is_active = TRUE
	`

	var availability models.AvailabilityData
	if err := db.WithContext(ctx).Raw(query).Scan(&availability).Error; err != nil {
		return nil, err
	}
	return &availability, nil
}

func getCategoriesWithSubcategories(db *gorm.DB) ([]models.CategoryData, error) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	query := `
		SELECT
			c.id::text AS id,
			c.name,
			c.slug,
			COALESCE(c.parent_id::text, '') AS parent_id
		FROM categories c
		WHERE c.status = 'Active'
		ORDER BY c.name ASC
	`

	var flat []models.CategoryData
	if err := db.WithContext(ctx).Raw(query).Scan(&flat).Error; err != nil {
		return nil, err
	}

	byID := make(map[string]*models.CategoryData)
	for i := range flat {
		byID[flat[i].ID] = &flat[i]
	}

	roots := make([]models.CategoryData, 0)
	for i := range flat {
		cat := &flat[i]
		if cat.ParentID == "" {
			continue
		}
		if parent, ok := byID[cat.ParentID]; ok {
			parent.Subcategories = append(parent.Subcategories, *cat)
		}
	}
	for i := range flat {
		if flat[i].ParentID == "" {
			roots = append(roots, flat[i])
		}
	}
	return roots, nil
}

func getPriceRange(db *gorm.DB) (*models.PriceRangeData, error) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	query := `
		SELECT
			COALESCE(MIN(COALESCE(p.discount_price, p.price)), 0) AS min,
			COALESCE(MAX(COALESCE(p.discount_price, p.price)), 0) AS max
		FROM products p
		WHERE p.is_active = TRUE
	`

	var priceRange models.PriceRangeData
	if err := db.WithContext(ctx).Raw(query).Scan(&priceRange).Error; err != nil {
		return nil, err
	}
	return &priceRange, nil
}

func getBrands(db *gorm.DB) ([]models.BrandData, error) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	query := `
		SELECT p.brand AS name, COUNT(p.id)::int AS count
		FROM products p
		WHERE p.is_active = TRUE AND p.brand <> ''
		GROUP BY p.brand
		ORDER BY count DESC, name ASC
	`

	brands := make([]models.BrandData, 0)
	if err := db.WithContext(ctx).Raw(query).Scan(&brands).Error; err != nil {
		return nil, err
	}
	return brands, nil
}
