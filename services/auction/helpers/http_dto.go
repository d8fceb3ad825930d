package helpers

import "time"

// Request/Response DTOs
type PlaceBidRequest struct {
	BidAmount      float64 `json:"bid_amount" binding:"required,gt=0"`
	BidderUsername string  `json:"bidder_username" binding:"required"`
}

type PostCommentRequest struct {
	Content           string `json:"content" binding:"required,min=1,max=500"`
	CommenterUsername string `json:"commenter_username" binding:"required"`
}

type CreateAuctionRequest struct {
	Title          string    `json:"title" binding:"required,min=1,max=100"`
	Description    string    `json:"description" binding:"required,min=1,max=1000"`
	SellerUsername string    `json:"seller_username" binding:"required"`
	StartPrice     float64   `json:"start_price" binding:"required,gt=0"`
	EndTime        time.Time `json:"end_time" binding:"required"`
	Category       string    `json:"category" binding:"required"`
	ImageURLs      []string  `json:"image_urls"`
}

type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

type WelcomeResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
}
