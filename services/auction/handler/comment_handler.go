package handler

import (
	"net/http"

	model "social-auction/internal/models"
	"social-auction/services/auction/helpers"
	"social-auction/utils"

	"github.com/gin-gonic/gin"
)

// GetCommentsHandler handles GET /api/auctions/:auction_id/comments
func (h *AuctionHandler) GetCommentsHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	comments, err := h.service.GetAuctionComments(auctionID)
	if err != nil {
		helpers.RespondError(c, "GetCommentsHandler", err, map[string]any{"auction_id": auctionID})
		return
	}

	if comments == nil {
		comments = []model.Comment{}
	}

	utils.JSONResponse(c, http.StatusOK, comments)
	helpers.LogSuccess("GetCommentsHandler", "comments retrieved successfully", map[string]any{
		"auction_id": auctionID,
		"count":      len(comments),
	})
}

// PostCommentHandler handles POST /api/auctions/:auction_id/comments and
// responds with the auction's full comment thread.
func (h *AuctionHandler) PostCommentHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")

	var req helpers.PostCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PostCommentHandler", err)
		return
	}

	comments, err := h.service.PostComment(auctionID, req.CommenterUsername, req.Content)
	if err != nil {
		helpers.RespondError(c, "PostCommentHandler", err, map[string]any{
			"auction_id":         auctionID,
			"commenter_username": req.CommenterUsername,
		})
		return
	}

	if comments == nil {
		comments = []model.Comment{}
	}

	utils.JSONResponse(c, http.StatusOK, comments)
	helpers.LogSuccess("PostCommentHandler", "comment posted successfully", map[string]any{
		"auction_id":         auctionID,
		"commenter_username": req.CommenterUsername,
		"count":              len(comments),
	})
}
