package auth_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/velora-commerce/velora-storefront/models"
)

// AdminLogout godoc
// @Summary Admin logout
// @Description Clears the admin session cookie
// @Tags Admin - Auth
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /admin/logout [post]
func AdminLogout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("admin_token", "", -1, "/", "", false, true)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Logged out", nil))
}
