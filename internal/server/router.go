package server

import (
	"social-auction/services/auction/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(service handler.AuctionServiceInterface, allowedOrigins []string) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestIDMiddleware)     // correlation id for logs
	router.Use(RequestLoggerMiddleware) // custom request logging
	if len(allowedOrigins) > 0 {
		router.Use(CORSMiddleware(allowedOrigins))
	}

	h := handler.NewAuctionHandler(service)

	router.GET("/", h.RootHandler)
	router.GET("/health", h.HealthHandler)

	api := router.Group("/api")

	users := api.Group("/users")
	{
		users.GET("/:username", h.GetUserHandler)
		users.GET("/:username/auctions", h.GetUserAuctionsHandler)
		users.GET("/:username/bids", h.GetUserBidsHandler)
	}

	auctions := api.Group("/auctions")
	{
		auctions.GET("", h.ListAuctionsHandler)
		auctions.POST("", h.CreateAuctionHandler)
		auctions.GET("/:auction_id", h.GetAuctionHandler)
		auctions.GET("/:auction_id/bids", h.GetAuctionBidsHandler)
		auctions.POST("/:auction_id/bids", h.PlaceBidHandler)
		auctions.GET("/:auction_id/comments", h.GetCommentsHandler)
		auctions.POST("/:auction_id/comments", h.PostCommentHandler)
	}

	api.GET("/stats", h.StatsHandler)
	api.GET("/categories", h.CategoriesHandler)

	return router
}
