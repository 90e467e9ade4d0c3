package admin_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/velora-commerce/velora-storefront/controllers/admin/application_controller"
	"github.com/velora-commerce/velora-storefront/controllers/admin/auth_controller"
	"github.com/velora-commerce/velora-storefront/controllers/admin/content_controller"
	"github.com/velora-commerce/velora-storefront/controllers/admin/newsletter_controller"
	"github.com/velora-commerce/velora-storefront/controllers/admin/product_controller"
	"github.com/velora-commerce/velora-storefront/middleware"
)

// SetupAdminRoutes mounts the back office under /admin. Login is the only
// public route; everything else sits behind the admin JWT middleware.
func SetupAdminRoutes(rg *gin.RouterGroup) {
	admin := rg.Group("/admin")

	// ════════════════════════════════════════════════════════════
	// Public Routes (No Auth Required)
	// ════════════════════════════════════════════════════════════

	admin.POST("/login", auth_controller.AdminLogin)

	// ════════════════════════════════════════════════════════════
	// Protected Routes (Auth Required)
	// ════════════════════════════════════════════════════════════

	protected := admin.Group("")
	protected.Use(middleware.AdminAuthMiddleware())
	{
		// Auth
		protected.POST("/logout", auth_controller.AdminLogout)
		protected.GET("/me", auth_controller.GetAdminMe)

		// Products
		protected.GET("/products", product_controller.GetProducts)
		protected.POST("/products", product_controller.CreateProduct)
		protected.PATCH("/products/:id", product_controller.UpdateProduct)
		protected.DELETE("/products/:id", product_controller.DeleteProduct)

		// Hero banners
		protected.GET("/content/hero-banners", content_controller.GetHeroBanners)
		protected.POST("/content/hero-banners", content_controller.CreateHeroBanner)
		protected.PATCH("/content/hero-banners/:id", content_controller.UpdateHeroBanner)
		protected.DELETE("/content/hero-banners/:id", content_controller.DeleteHeroBanner)

		// Special deals
		protected.GET("/content/special-deals", content_controller.GetSpecialDeals)
		protected.POST("/content/special-deals", content_controller.CreateSpecialDeal)
		protected.PATCH("/content/special-deals/:id", content_controller.UpdateSpecialDeal)
		protected.DELETE("/content/special-deals/:id", content_controller.DeleteSpecialDeal)

		// Curated sections (best-sellers, new-arrivals, trending)
		protected.GET("/content/sections/:section", content_controller.GetSectionEntries)
		protected.POST("/content/sections/:section", content_controller.CreateSectionEntry)
		protected.PATCH("/content/sections/:section/:id", content_controller.UpdateSectionEntry)
		protected.DELETE("/content/sections/:section/:id", content_controller.DeleteSectionEntry)

		// FAQs
		protected.GET("/content/faqs", content_controller.GetFAQs)
		protected.POST("/content/faqs", content_controller.CreateFAQ)
		protected.PATCH("/content/faqs/:id", content_controller.UpdateFAQ)
		protected.DELETE("/content/faqs/:id", content_controller.DeleteFAQ)

		// Newsletter
		protected.GET("/newsletter/subscribers", newsletter_controller.GetSubscribers)
		protected.DELETE("/newsletter/subscribers/:id", newsletter_controller.DeleteSubscriber)

		// Applications
		protected.GET("/applications", application_controller.GetApplications)
		protected.GET("/applications/:id", application_controller.GetApplicationByID)
		protected.PATCH("/applications/:id/status", application_controller.UpdateApplicationStatus)
		protected.DELETE("/applications/:id", application_controller.DeleteApplication)
	}
}
