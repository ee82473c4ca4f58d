package routes

import (
	"net/http"

	"github.com/andratama/topupstore-golang/internal/handlers"
	"github.com/andratama/topupstore-golang/internal/middleware"
	"github.com/gin-gonic/gin"
)

// CORSMiddleware allows the configured frontend origin to call the API with
// credentials (the session cookie).
func CORSMiddleware(frontendURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", frontendURL)
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

func SetupRouter(h *handlers.Handlers) *gin.Engine {
	router := gin.Default()

	router.Use(CORSMiddleware(h.Config.Server.FrontendURL))

	// Uploaded images are served straight off disk.
	router.Static("/uploads", h.Config.Upload.Dir)

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "API is running...")
	})

	authRequired := middleware.AuthRequired(h.Tokens)

	api := router.Group("/api")
	{
		// --- Auth ---
		api.POST("/auth/login", h.Login)
		api.POST("/auth/logout", h.Logout)
		api.GET("/auth/me", authRequired, h.Me)

		// --- Categories ---
		categories := api.Group("/categories")
		{
			categories.GET("", h.GetAllCategories)
			categories.GET("/:id", h.GetCategory)
			categories.POST("", authRequired, h.CreateCategory)
			categories.PUT("/:id", authRequired, h.UpdateCategory)
			categories.DELETE("/:id", authRequired, h.DeleteCategory)
		}

		// --- Products ---
		products := api.Group("/products")
		{
			products.GET("", h.GetAllProducts)
			products.GET("/:id", h.GetProduct)
			products.POST("", authRequired, h.CreateProduct)
			products.POST("/import", authRequired, h.ImportProducts)
			products.PUT("/:id", authRequired, h.UpdateProduct)
			products.DELETE("/:id", authRequired, h.DeleteProduct)
		}

		// --- Banners ---
		banners := api.Group("/banners")
		{
			banners.GET("", h.GetAllBanners)
			banners.GET("/:id", h.GetBanner)
			banners.POST("", authRequired, h.CreateBanner)
			banners.PUT("/:id", authRequired, h.UpdateBanner)
			banners.DELETE("/:id", authRequired, h.DeleteBanner)
		}

		// --- Upload ---
		api.POST("/upload", authRequired, h.UploadFile)

		// --- Currency & checkout ---
		api.GET("/currency", h.GetCurrency)
		api.PUT("/currency", h.SetCurrency)
		api.GET("/checkout/link", h.CheckoutLink)

		// --- Admin dashboard ---
		api.GET("/dashboard/stats", authRequired, h.GetDashboardStats)
	}

	return router
}
