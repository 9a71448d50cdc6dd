package routes

import (
	"net/http"
	"time"

	"shootflow/handlers"
	"shootflow/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers login, logout and device endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/login", hb.LoginHandler)

		// Protected routes (require authentication)
		api.Use(middleware.JWTAuthMiddleware(hb.AccountRepo))
		api.POST("/logout", hb.LogoutHandler)
	}

	accounts := r.Group("/api/accounts")
	{
		accounts.Use(middleware.JWTAuthMiddleware(hb.AccountRepo))
		accounts.PUT("/fcm-token", hb.UpdateFCMTokenHandler)
	}
}

// RegisterCatalogRoutes registers the read-only catalog plus the admin CRUD
// surface.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.AccountRepo))
		api.GET("/services", hb.ListServicesHandler)
		api.GET("/categories", hb.ListCategoriesHandler)
	}

	admin := r.Group("/api/admin")
	{
		admin.Use(middleware.JWTAuthMiddleware(hb.AccountRepo), middleware.RequireAdmin())
		admin.GET("/services", hb.ListServicesHandler)
		admin.GET("/services/:id", hb.GetServiceHandler)
		admin.POST("/services", hb.CreateServiceHandler)
		admin.PUT("/services/:id", hb.UpdateServiceHandler)
		admin.DELETE("/services/:id", hb.DeleteServiceHandler)

		admin.POST("/categories", hb.CreateCategoryHandler)
		admin.PUT("/categories/:id", hb.UpdateCategoryHandler)
		admin.DELETE("/categories/:id", hb.DeleteCategoryHandler)

		admin.POST("/accounts", hb.RegisterAccountHandler)
	}
}

// RegisterShootRoutes registers the booking and shoot lifecycle endpoints.
func RegisterShootRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/shoots")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.AccountRepo))
		api.POST("/quote", hb.QuoteHandler)
		api.GET("", hb.ListShootsHandler)
		api.GET("/:id", hb.GetShootHandler)
		api.POST("/:id/decline", hb.DeclineShootHandler)
		api.POST("/:id/media", hb.AttachMediaHandler)
		api.POST("/:id/upload", hb.UploadMediaHandler)

		// Endpoints that create or reshape shoots are admin-only.
		adminOnly := api.Group("")
		adminOnly.Use(middleware.RequireAdmin())
		adminOnly.POST("", hb.BookShootHandler)
		adminOnly.PATCH("/:id", hb.PatchShootHandler)
		adminOnly.POST("/:id/assign", hb.AssignPhotographerHandler)
		adminOnly.PUT("/:id/tour-links", hb.UpdateTourLinksHandler)
	}
}

// RegisterPhotographerRoutes registers roster and availability endpoints.
func RegisterPhotographerRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	users := r.Group("/api/users")
	{
		users.Use(middleware.JWTAuthMiddleware(hb.AccountRepo))
		users.GET("/photographers", hb.ListPhotographersHandler)
	}

	api := r.Group("/api/photographer")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.AccountRepo))
		api.GET("/availability", hb.GetAvailabilityHandler)
		api.PUT("/availability", hb.SetAvailabilityHandler)
		api.POST("/availability/for-booking", middleware.RequireAdmin(), hb.CandidatesHandler)
	}
}

// RegisterInvoiceRoutes registers photographer invoice endpoints.
func RegisterInvoiceRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/invoices")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.AccountRepo))
		api.GET("", hb.MyInvoicesHandler)
	}

	admin := r.Group("/api/admin/invoices")
	{
		admin.Use(middleware.JWTAuthMiddleware(hb.AccountRepo), middleware.RequireAdmin())
		admin.GET("/pending", hb.PendingInvoicesHandler)
		admin.POST("/:id/approve", hb.ApproveInvoiceHandler)
		admin.POST("/:id/reject", hb.RejectInvoiceHandler)
		admin.POST("/:id/pay", hb.PayInvoiceHandler)
		admin.POST("/aggregate", hb.AggregateInvoicesHandler)
	}
}

// RegisterAddressRoutes registers address autocomplete and property lookup.
func RegisterAddressRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/address")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.AccountRepo))
		api.GET("/search", hb.SearchAddressHandler)
		api.GET("/details", hb.AddressDetailsHandler)
		api.GET("/property", hb.PropertyMetricsHandler)
	}
}

// RegisterMediaRoutes registers delivery-URL and deletion endpoints.
func RegisterMediaRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/media")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.AccountRepo))
		api.GET("/url", hb.DownloadURLHandler)
		api.DELETE("", middleware.RequireAdmin(), hb.DeleteMediaHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterShootRoutes(r, hb)
	RegisterPhotographerRoutes(r, hb)
	RegisterInvoiceRoutes(r, hb)
	RegisterAddressRoutes(r, hb)
	RegisterMediaRoutes(r, hb)
	RegisterHealthRoute(r)
}
