package handler

import (
	"net/http"

	"social-auction/services/auction/helpers"
	"social-auction/utils"

	"github.com/gin-gonic/gin"
)

// Version is reported by the welcome endpoint
const Version = "1.0.0"

// RootHandler handles GET /
func (h *AuctionHandler) RootHandler(c *gin.Context) {
	utils.JSONResponse(c, http.StatusOK, helpers.WelcomeResponse{
		Message: "Welcome to Social Auction API",
		Version: Version,
	})
}

// HealthHandler handles GET /health
func (h *AuctionHandler) HealthHandler(c *gin.Context) {
	utils.JSONResponse(c, http.StatusOK, gin.H{"status": "ok"})
}

// StatsHandler handles GET /api/stats
func (h *AuctionHandler) StatsHandler(c *gin.Context) {
	stats := h.service.PlatformStats()
	utils.JSONResponse(c, http.StatusOK, stats)
	helpers.LogSuccess("StatsHandler", "stats computed", map[string]any{
		"total_auctions": stats.TotalAuctions,
		"total_bids":     stats.TotalBids,
	})
}

// CategoriesHandler handles GET /api/categories
func (h *AuctionHandler) CategoriesHandler(c *gin.Context) {
	categories := h.service.Categories()
	if categories == nil {
		categories = []string{}
	}
	utils.JSONResponse(c, http.StatusOK, helpers.CategoriesResponse{Categories: categories})
}
