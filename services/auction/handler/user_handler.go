package handler

import (
	"net/http"

	model "social-auction/internal/models"
	"social-auction/services/auction/helpers"
	"social-auction/utils"

	"github.com/gin-gonic/gin"
)

// GetUserHandler handles GET /api/users/:username
func (h *AuctionHandler) GetUserHandler(c *gin.Context) {
	username := c.Param("username")
	user, err := h.service.GetUser(username)
	if err != nil {
		helpers.RespondError(c, "GetUserHandler", err, map[string]any{"username": username})
		return
	}

	utils.JSONResponse(c, http.StatusOK, user)
	helpers.LogSuccess("GetUserHandler", "user retrieved successfully", map[string]any{"username": username})
}

// GetUserAuctionsHandler handles GET /api/users/:username/auctions
func (h *AuctionHandler) GetUserAuctionsHandler(c *gin.Context) {
	username := c.Param("username")
	auctions, err := h.service.GetUserAuctions(username)
	if err != nil {
		helpers.RespondError(c, "GetUserAuctionsHandler", err, map[string]any{"username": username})
		return
	}

	if auctions == nil {
		auctions = []model.Auction{}
	}

	utils.JSONResponse(c, http.StatusOK, auctions)
	helpers.LogSuccess("GetUserAuctionsHandler", "auctions retrieved successfully", map[string]any{
		"username": username,
		"count":    len(auctions),
	})
}

// GetUserBidsHandler handles GET /api/users/:username/bids
func (h *AuctionHandler) GetUserBidsHandler(c *gin.Context) {
	username := c.Param("username")
	bids, err := h.service.GetUserBids(username)
	if err != nil {
		helpers.RespondError(c, "GetUserBidsHandler", err, map[string]any{"username": username})
		return
	}

	if bids == nil {
		bids = []model.Bid{}
	}

	utils.JSONResponse(c, http.StatusOK, bids)
	helpers.LogSuccess("GetUserBidsHandler", "bids retrieved successfully", map[string]any{
		"username": username,
		"count":    len(bids),
	})
}
