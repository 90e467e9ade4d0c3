package auth_controller

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/velora-commerce/velora-storefront/config"
	"github.com/velora-commerce/velora-storefront/models"
	"github.com/velora-commerce/velora-storefront/services"
)

const adminTokenTTL = 7 * 24 * time.Hour

// AdminLogin godoc
// @Summary Admin login
// @Description Validates credentials and issues a JWT as cookie and response body
// @Tags Admin - Auth
// @Accept json
// @Produce json
// @Param credentials body models.AdminLoginRequest true "Email and password"
// @Success 200 {object} models.ApiResponse{data=models.AdminLoginResponse}
// @Failure 400 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/login [post]
func AdminLogin(c *gin.Context) {
	var req models.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Email and password are required"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var admin models.Admin
	err := config.DB.WithContext(ctx).
		First(&admin, "email = ? AND status = 'active'", strings.ToLower(strings.TrimSpace(req.Email))).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Same message as a bad password so accounts can't be enumerated
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid email or password"))
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid email or password"))
		return
	}

	token, err := services.GetJWTService().GenerateAdminJWT(admin.ID.String(), admin.Email)
	if err != nil {
		log.Printf("ERROR generating admin JWT: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to issue token"))
		return
	}

	now := time.Now()
	if err := config.DB.WithContext(ctx).
		Model(&admin).
		UpdateColumn("last_login_at", now).Error; err != nil {
		log.Printf("WARN updating last_login_at for %s: %v", admin.Email, err)
	}
	admin.LastLoginAt = &now

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("admin_token", token, int(adminTokenTTL.Seconds()), "/", "", false, true)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Login successful", models.AdminLoginResponse{
		Token: token,
		Admin: admin,
	}))
}
