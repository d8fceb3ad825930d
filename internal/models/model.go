package models

import "time"

// AuctionStatus is the lifecycle state of an auction
type AuctionStatus string

const (
	StatusActive   AuctionStatus = "active"
	StatusEnded    AuctionStatus = "ended"
	StatusUpcoming AuctionStatus = "upcoming"
)

// IsValid reports whether s is one of the known statuses
func (s AuctionStatus) IsValid() bool {
	switch s {
	case StatusActive, StatusEnded, StatusUpcoming:
		return true
	default:
		return false
	}
}

// User represents a platform member. TotalAuctions and TotalBids are seeded
// display values and are not recomputed.
type User struct {
	ID              string    `json:"id"`
	Username        string    `json:"username"`
	AvatarURL       string    `json:"avatar_url"`
	ReputationScore int       `json:"reputation_score"`
	JoinedDate      time.Time `json:"joined_date"`
	TotalAuctions   int       `json:"total_auctions"`
	TotalBids       int       `json:"total_bids"`
}

// Auction represents a listing that accepts bids
type Auction struct {
	ID             string        `json:"id"`
	Title          string        `json:"title"`
	Description    string        `json:"description"`
	SellerUsername string        `json:"seller_username"`
	StartPrice     float64       `json:"start_price"`
	CurrentBid     float64       `json:"current_bid"`
	EndTime        time.Time     `json:"end_time"`
	Status         AuctionStatus `json:"status"`
	ImageURLs      []string      `json:"image_urls"`
	Category       string        `json:"category"`
	CreatedAt      time.Time     `json:"created_at"`
	BidCount       int           `json:"bid_count"`
	Watchers       int           `json:"watchers"`
}

// Bid represents an accepted bid on an auction
type Bid struct {
	ID             string    `json:"id"`
	AuctionID      string    `json:"auction_id"`
	BidderUsername string    `json:"bidder_username"`
	BidAmount      float64   `json:"bid_amount"`
	Timestamp      time.Time `json:"timestamp"`
}

// Comment represents a message posted on an auction
type Comment struct {
	ID                string    `json:"id"`
	AuctionID         string    `json:"auction_id"`
	CommenterUsername string    `json:"commenter_username"`
	Content           string    `json:"content"`
	Timestamp         time.Time `json:"timestamp"`
}

// NewAuction holds the seller-supplied fields of an auction to be created
type NewAuction struct {
	Title          string
	Description    string
	SellerUsername string
	StartPrice     float64
	EndTime        time.Time
	Category       string
	ImageURLs      []string
}

// AuctionFilter narrows the auction listing. Empty fields match everything.
type AuctionFilter struct {
	Category string
	Status   AuctionStatus
	Limit    int
}

// PlatformStats is the platform-wide summary served by /api/stats
type PlatformStats struct {
	TotalUsers          int     `json:"total_users"`
	TotalAuctions       int     `json:"total_auctions"`
	ActiveAuctions      int     `json:"active_auctions"`
	TotalBids           int     `json:"total_bids"`
	TotalAuctionValue   float64 `json:"total_auction_value"`
	AverageAuctionValue float64 `json:"average_auction_value"`
}
