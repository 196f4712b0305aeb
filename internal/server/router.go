package server

import (
	"auction-storefront/internal/session"
	handler "auction-storefront/services/market/handler"

	"github.com/c2h5oh/datasize"
	"github.com/gin-gonic/gin"
)

// MarketService is everything the routes need from the sandbox service
type MarketService interface {
	handler.MarketServiceInterface
	Authenticator
}

// SetupRouter configures all Gin routes for the sandbox backend under /api
func SetupRouter(marketService MarketService, maxUpload datasize.ByteSize) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	if maxUpload > 0 {
		router.MaxMultipartMemory = int64(maxUpload.Bytes())
	}

	marketHandler := handler.NewMarketHandler(marketService, maxUpload)
	authenticated := RequireAuth(marketService)
	admin := RequireRole(session.RoleAdmin)

	api := router.Group("/api")

	products := api.Group("/products")
	{
		products.GET("", marketHandler.ListProductsHandler)
		products.GET("/export", marketHandler.ExportProductsHandler)
		products.GET("/:id", marketHandler.GetProductHandler)
		products.GET("/:id/image-url", marketHandler.GetImageURLHandler)
		products.GET("/:id/export", marketHandler.ExportProductHandler)
		products.POST("/:id/close", authenticated, admin, marketHandler.CloseProductHandler)
		products.POST("/import", authenticated, admin, marketHandler.ImportProductsHandler)
	}

	bids := api.Group("/bids")
	{
		bids.POST("", authenticated, marketHandler.PlaceBidHandler)
	}

	auth := api.Group("/auth")
	{
		auth.POST("/login", marketHandler.LoginHandler)
		auth.POST("/logout", authenticated, marketHandler.LogoutHandler)
		auth.POST("/import-users", authenticated, admin, marketHandler.ImportUsersHandler)
	}

	return router
}
