// Package query holds the pure projections behind the list endpoints. None of
// these functions mutate their input slices.
package query

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"social-auction/internal/auctionerrors"
	model "social-auction/internal/models"
)

// Listing limits for GET /api/auctions
const (
	DefaultLimit = 20
	MinLimit     = 1
	MaxLimit     = 100
)

// ValidateLimit rejects limits outside [MinLimit, MaxLimit]. Out-of-range
// values are an error, never clamped.
func ValidateLimit(limit int) error {
	if limit < MinLimit || limit > MaxLimit {
		return fmt.Errorf("%w: limit must be between %d and %d, got %d", auctionerrors.ErrInvalidLimit, MinLimit, MaxLimit, limit)
	}
	return nil
}

// FilterAuctions applies the category and status filters as a conjunction,
// orders the result newest first and truncates it to filter.Limit.
// Auctions with equal created_at keep their encounter order.
func FilterAuctions(auctions []model.Auction, filter model.AuctionFilter) []model.Auction {
	out := make([]model.Auction, 0, len(auctions))
	for _, a := range auctions {
		if filter.Category != "" && !strings.EqualFold(a.Category, filter.Category) {
			continue
		}
		if filter.Status != "" && a.Status != filter.Status {
			continue
		}
		out = append(out, a)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	if filter.Limit >= 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out
}

// Categories returns the distinct auction categories in ascending order
func Categories(auctions []model.Auction) []string {
	seen := make(map[string]struct{}, len(auctions))
	categories := make([]string, 0, len(auctions))
	for _, a := range auctions {
		if _, ok := seen[a.Category]; ok {
			continue
		}
		seen[a.Category] = struct{}{}
		categories = append(categories, a.Category)
	}
	slices.Sort(categories)
	return categories
}

// AuctionsBySeller keeps the auctions listed by username, in input order
func AuctionsBySeller(auctions []model.Auction, username string) []model.Auction {
	out := make([]model.Auction, 0)
	for _, a := range auctions {
		if a.SellerUsername == username {
			out = append(out, a)
		}
	}
	return out
}

// BidsByBidder keeps the bids placed by username, in input order
func BidsByBidder(bids []model.Bid, username string) []model.Bid {
	out := make([]model.Bid, 0)
	for _, b := range bids {
		if b.BidderUsername == username {
			out = append(out, b)
		}
	}
	return out
}

// BidsForAuction returns the bids of one auction, newest first. Bids sharing
// a timestamp keep reverse insertion order, so the latest recorded leads.
func BidsForAuction(bids []model.Bid, auctionID string) []model.Bid {
	out := make([]model.Bid, 0)
	for i := len(bids) - 1; i >= 0; i-- {
		if bids[i].AuctionID == auctionID {
			out = append(out, bids[i])
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out
}

// CommentsForAuction returns the comments of one auction, oldest first
func CommentsForAuction(comments []model.Comment, auctionID string) []model.Comment {
	out := make([]model.Comment, 0)
	for _, c := range comments {
		if c.AuctionID == auctionID {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.Before(out[j].Timestamp)
	})
	return out
}

// Stats aggregates platform metrics. The average is 0 when there are no auctions.
func Stats(userCount int, auctions []model.Auction, bids []model.Bid) model.PlatformStats {
	stats := model.PlatformStats{
		TotalUsers:    userCount,
		TotalAuctions: len(auctions),
		TotalBids:     len(bids),
	}
	for _, a := range auctions {
		if a.Status == model.StatusActive {
			stats.ActiveAuctions++
		}
		stats.TotalAuctionValue += a.CurrentBid
	}
	if stats.TotalAuctions > 0 {
		stats.AverageAuctionValue = stats.TotalAuctionValue / float64(stats.TotalAuctions)
	}
	return stats
}
