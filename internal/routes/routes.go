package routes

import (
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"blackstone_back_end/internal/handlers"
	"blackstone_back_end/internal/handlers/admin"
	"blackstone_back_end/internal/handlers/coupon"
	"blackstone_back_end/internal/handlers/order"
	"blackstone_back_end/internal/handlers/product"
	"blackstone_back_end/internal/handlers/user"
	"blackstone_back_end/internal/middleware"
)

func RegisterRoutes(r *gin.Engine) {
	// CORS : origines front depuis l'env, fallback dev
	allowedOrigins := []string{"http://localhost:3000"}
	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		allowedOrigins = strings.Split(origins, ",")
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api")
	api.Use(middleware.APIRateLimit())

	// ── Public : vitrine ──────────────────────────────────────────
	api.GET("/products", product.GetAllProducts)
	api.GET("/products/hot", product.GetHotProducts)
	api.GET("/products/featured", product.GetFeaturedProducts)
	api.GET("/products/search", product.SearchProducts)
	api.GET("/products/:id", product.GetProductByID)
	api.GET("/products/:id/reviews", product.GetProductReviews)
	api.GET("/categories", product.GetAllCategories)
	api.GET("/settings", admin.GetSettings)
	api.GET("/hot-offers", admin.GetActiveHotOffers)
	api.GET("/coupons/validate", coupon.ValidateCoupon)
	api.GET("/marketing/modal", handlers.GetMarketingModal)
	api.POST("/marketing/subscribe", handlers.Subscribe)
	api.POST("/contact", handlers.SubmitContactMessage)

	// ── Public : comptes ──────────────────────────────────────────
	api.POST("/register", middleware.RegisterRateLimit(), user.Register)
	api.POST("/login", middleware.LoginRateLimit(), user.Login)
	api.GET("/auth/:provider", user.BeginOAuth)
	api.GET("/auth/:provider/callback", user.OAuthCallback)

	// ── Authentifié : client connecté ─────────────────────────────
	auth := api.Group("")
	auth.Use(middleware.AuthRequired())
	{
		auth.GET("/profile", user.GetProfile)
		auth.PUT("/profile", user.UpdateProfile)
		auth.PUT("/profile/password", user.ChangePassword)

		auth.GET("/cart", user.GetCart)
		auth.POST("/cart", user.AddToCart)
		auth.PUT("/cart", user.UpdateCartItem)
		auth.DELETE("/cart", user.ClearCart)
		auth.DELETE("/cart/:product_id", user.RemoveFromCart)

		auth.POST("/orders/checkout", order.Checkout)
		auth.GET("/orders/quote", order.Quote)
		auth.GET("/orders/user", order.GetMyOrders)
		auth.GET("/orders/:id", order.GetOrderByID)
		auth.GET("/orders/:id/qr", order.GetOrderTrackingQR)

		auth.POST("/products/:id/reviews", product.CreateReview)
	}

	// ── Back office : admin uniquement ────────────────────────────
	adminGroup := api.Group("/admin")
	adminGroup.Use(middleware.AuthRequired(), middleware.RequireAdmin)
	{
		adminGroup.POST("/products", product.CreateProduct)
		adminGroup.PUT("/products/:id", middleware.AuditPriceChanges(), product.UpdateProduct)
		adminGroup.DELETE("/products/:id", product.SoftDeleteProduct)
		adminGroup.POST("/products/:id/restore", product.RestoreProduct)
		adminGroup.GET("/products/trash", product.GetTrashedProducts)
		adminGroup.POST("/products/:id/images", product.UploadProductImage)

		adminGroup.POST("/categories", product.CreateCategory)
		adminGroup.PUT("/categories/:id", product.UpdateCategory)
		adminGroup.DELETE("/categories/:id", product.DeleteCategory)

		adminGroup.GET("/orders", order.GetAllOrders)
		adminGroup.PUT("/orders/:id/status", order.UpdateOrderStatus)
		adminGroup.DELETE("/orders/:id", order.DeleteOrder)

		adminGroup.GET("/coupons", coupon.GetAllCoupons)
		adminGroup.POST("/coupons", coupon.CreateCoupon)
		adminGroup.PUT("/coupons/:code", coupon.UpdateCoupon)
		adminGroup.DELETE("/coupons/:code", coupon.DeleteCoupon)

		adminGroup.PUT("/settings", admin.UpdateSettings)

		adminGroup.GET("/hot-offers", admin.GetAllHotOffers)
		adminGroup.POST("/hot-offers", admin.CreateHotOffer)
		adminGroup.PUT("/hot-offers/:id", admin.UpdateHotOffer)
		adminGroup.DELETE("/hot-offers/:id", admin.DeleteHotOffer)

		adminGroup.GET("/customers", admin.GetAllCustomers)
		adminGroup.PUT("/customers/:id/status", admin.UpdateCustomerStatus)
		adminGroup.POST("/change-password", user.AdminChangePassword)

		adminGroup.GET("/contact-messages", handlers.GetContactMessages)
	}
}
