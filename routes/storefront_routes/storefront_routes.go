package storefront_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/velora-commerce/velora-storefront/controllers/storefront/cart_controller"
	"github.com/velora-commerce/velora-storefront/controllers/storefront/category_controller"
	"github.com/velora-commerce/velora-storefront/controllers/storefront/content_controller"
	"github.com/velora-commerce/velora-storefront/controllers/storefront/filter_controller"
	"github.com/velora-commerce/velora-storefront/controllers/storefront/product_controller"
	"github.com/velora-commerce/velora-storefront/controllers/storefront/wishlist_controller"
)

// SetupStorefrontRoutes mounts the public shopping surface. Nothing here
// requires authentication; cart and wishlist are keyed by the X-Session-ID
// header instead.
func SetupStorefrontRoutes(rg *gin.RouterGroup) {
	store := rg.Group("/store")

	// ════════════════════════════════════════════════════════════
	// Catalog
	// ════════════════════════════════════════════════════════════

	store.GET("/products", product_controller.GetStorefrontProducts)
	store.GET("/products/:id", product_controller.GetStorefrontProductByID)
	store.GET("/categories", category_controller.GetCategories)
	store.GET("/categories/:id", category_controller.GetCategoryByID)
	store.GET("/filters/metadata", filter_controller.GetFilterMetadata)

	// ════════════════════════════════════════════════════════════
	// Marketing Content
	// ════════════════════════════════════════════════════════════

	store.GET("/content/:section", content_controller.GetContentSection)
	store.GET("/faqs", content_controller.GetFAQs)
	store.POST("/newsletter/subscribe", content_controller.SubscribeNewsletter)
	store.POST("/applications", content_controller.SubmitApplication)

	// ════════════════════════════════════════════════════════════
	// Guest Cart & Wishlist (X-Session-ID keyed)
	// ════════════════════════════════════════════════════════════

	cart := store.Group("/cart")
	{
		cart.GET("", cart_controller.GetCart)
		cart.POST("", cart_controller.AddCartItem)
		cart.DELETE("/:productId", cart_controller.RemoveCartItem)
		cart.DELETE("", cart_controller.ClearCart)
	}

	wishlist := store.Group("/wishlist")
	{
		wishlist.GET("", wishlist_controller.GetWishlist)
		wishlist.POST("", wishlist_controller.AddWishlistItem)
		wishlist.DELETE("/:productId", wishlist_controller.RemoveWishlistItem)
		wishlist.DELETE("", wishlist_controller.ClearWishlist)
	}
}
