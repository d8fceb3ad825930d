package handler

//go:generate mockgen -source=auction_handler.go -destination=mock_service.go -package=handler

import (
	"net/http"

	model "social-auction/internal/models"
	"social-auction/services/auction/helpers"
	"social-auction/utils"

	"github.com/gin-gonic/gin"
)

type AuctionServiceInterface interface {
	GetUser(username string) (model.User, error)
	GetUserAuctions(username string) ([]model.Auction, error)
	GetUserBids(username string) ([]model.Bid, error)

	ListAuctions(filter model.AuctionFilter) ([]model.Auction, error)
	GetAuction(auctionID string) (model.Auction, error)
	CreateAuction(input model.NewAuction) (model.Auction, error)
	PlaceBid(auctionID, bidderUsername string, amount float64) (model.Auction, error)
	GetAuctionBids(auctionID string) ([]model.Bid, error)

	GetAuctionComments(auctionID string) ([]model.Comment, error)
	PostComment(auctionID, commenterUsername, content string) ([]model.Comment, error)

	PlatformStats() model.PlatformStats
	Categories() []string
}

type AuctionHandler struct {
	service AuctionServiceInterface
}

func NewAuctionHandler(service AuctionServiceInterface) *AuctionHandler {
	return &AuctionHandler{service: service}
}

// ListAuctionsHandler handles GET /api/auctions?category=&status=&limit=
func (h *AuctionHandler) ListAuctionsHandler(c *gin.Context) {
	limit, err := helpers.ParseLimit(c.Query("limit"))
	if err != nil {
		helpers.RespondError(c, "ListAuctionsHandler", err, map[string]any{"limit": c.Query("limit")})
		return
	}

	filter := model.AuctionFilter{
		Category: c.Query("category"),
		Status:   model.AuctionStatus(c.Query("status")),
		Limit:    limit,
	}

	auctions, err := h.service.ListAuctions(filter)
	if err != nil {
		helpers.RespondError(c, "ListAuctionsHandler", err, map[string]any{
			"category": filter.Category,
			"status":   filter.Status,
			"limit":    filter.Limit,
		})
		return
	}

	if auctions == nil {
		auctions = []model.Auction{}
	}

	utils.JSONResponse(c, http.StatusOK, auctions)
	helpers.LogSuccess("ListAuctionsHandler", "auctions retrieved successfully", map[string]any{
		"category": filter.Category,
		"status":   filter.Status,
		"count":    len(auctions),
	})
}

// GetAuctionHandler handles GET /api/auctions/:auction_id
func (h *AuctionHandler) GetAuctionHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	auction, err := h.service.GetAuction(auctionID)
	if err != nil {
		helpers.RespondError(c, "GetAuctionHandler", err, map[string]any{"auction_id": auctionID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, auction)
	helpers.LogSuccess("GetAuctionHandler", "auction retrieved successfully", map[string]any{"auction_id": auctionID})
}

// CreateAuctionHandler handles POST /api/auctions
func (h *AuctionHandler) CreateAuctionHandler(c *gin.Context) {
	var req helpers.CreateAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateAuctionHandler", err)
		return
	}

	auction, err := h.service.CreateAuction(model.NewAuction{
		Title:          req.Title,
		Description:    req.Description,
		SellerUsername: req.SellerUsername,
		StartPrice:     req.StartPrice,
		EndTime:        req.EndTime,
		Category:       req.Category,
		ImageURLs:      req.ImageURLs,
	})
	if err != nil {
		helpers.RespondError(c, "CreateAuctionHandler", err, map[string]any{"seller_username": req.SellerUsername})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, auction)
	helpers.LogSuccess("CreateAuctionHandler", "auction created successfully", map[string]any{
		"auction_id":      auction.ID,
		"seller_username": auction.SellerUsername,
		"start_price":     auction.StartPrice,
	})
}

// PlaceBidHandler handles POST /api/auctions/:auction_id/bids
func (h *AuctionHandler) PlaceBidHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")

	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	auction, err := h.service.PlaceBid(auctionID, req.BidderUsername, req.BidAmount)
	if err != nil {
		helpers.RespondError(c, "PlaceBidHandler", err, map[string]any{
			"auction_id":      auctionID,
			"bidder_username": req.BidderUsername,
			"bid_amount":      req.BidAmount,
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, auction)
	helpers.LogSuccess("PlaceBidHandler", "bid placed successfully", map[string]any{
		"auction_id":      auctionID,
		"bidder_username": req.BidderUsername,
		"bid_amount":      req.BidAmount,
		"bid_count":       auction.BidCount,
	})
}

// GetAuctionBidsHandler handles GET /api/auctions/:auction_id/bids
func (h *AuctionHandler) GetAuctionBidsHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	bids, err := h.service.GetAuctionBids(auctionID)
	if err != nil {
		helpers.RespondError(c, "GetAuctionBidsHandler", err, map[string]any{"auction_id": auctionID})
		return
	}

	if bids == nil {
		bids = []model.Bid{}
	}

	utils.JSONResponse(c, http.StatusOK, bids)
	helpers.LogSuccess("GetAuctionBidsHandler", "bids retrieved successfully", map[string]any{
		"auction_id": auctionID,
		"count":      len(bids),
	})
}
