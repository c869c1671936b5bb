package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/feral-file/ff-drop-engine/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Sale state (public read access)
		v1.GET("/status", handler.GetStatus)
		v1.GET("/sales", handler.ListSales)
		v1.GET("/wallets/:address/counters", handler.GetWalletCounters)

		// Metadata pass-through (public read access)
		v1.GET("/items/:id/metadata-uri", handler.GetItemMetadataURI)
		v1.GET("/collection/metadata-uri", handler.GetCollectionMetadataURI)

		// Purchase endpoints (open; the engine itself gates admissibility)
		v1.POST("/purchase", handler.Purchase)
		v1.POST("/presale-purchase", handler.PresalePurchase)

		// Owner/admin surface (requires authentication)
		admin := v1.Group("/admin", middleware.Auth(authCfg))
		{
			admin.POST("/mint", handler.AdminMint)
			admin.POST("/withdraw", handler.Withdraw)
			admin.POST("/finalize", handler.Finalize)
			admin.PUT("/sales-configuration", handler.SetSalesConfiguration)
			admin.PUT("/funds-recipient", handler.SetFundsRecipient)
			admin.PUT("/metadata-renderer", handler.SetMetadataRenderer)
		}
	}
}
