package content_controller

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/velora-commerce/velora-storefront/cache"
	"github.com/velora-commerce/velora-storefront/services"
)

var cloudinaryService *services.CloudinaryService

// InitCloudinary wires the shared Cloudinary service used for content images.
func InitCloudinary(cloudName, apiKey, apiSecret string) error {
	var err error
	cloudinaryService, err = services.NewCloudinaryService(cloudName, apiKey, apiSecret)
	return err
}

// uploadImageIfPresent uploads the named multipart file field to Cloudinary
// and returns its secure URL. An absent field returns "" with no error, so
// callers can treat the image as optional.
func uploadImageIfPresent(c *gin.Context, field, folder string) (string, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		// Absent file field, not a failure
		return "", nil
	}
	if cloudinaryService == nil {
		return "", fmt.Errorf("cloudinary service not initialized")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	return cloudinaryService.UploadImage(ctx, file, "", folder)
}

// invalidateContent drops the storefront content cache after any mutation.
func invalidateContent() {
	cache.InvalidateContent()
}
