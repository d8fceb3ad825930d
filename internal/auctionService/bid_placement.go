package auction

import (
	"fmt"
	"time"

	"social-auction/internal/auctionerrors"
	"social-auction/internal/models"
)

// PlaceBid validates a bid against the auction's current state and records it.
// Bids on the same auction are serialized from lookup to write, so a lower
// bid can never overwrite a higher one accepted concurrently.
func (s *AuctionService) PlaceBid(auctionID, bidderUsername string, amount float64) (models.Auction, error) {
	unlock := s.locks.Lock(auctionID)
	defer unlock()

	auction, err := s.repo.GetAuction(auctionID)
	if err != nil {
		return models.Auction{}, fmt.Errorf("service: failed to place bid on auction %s: %w", auctionID, err)
	}

	now := s.timestamp()
	if err := validateBid(auction, amount, now); err != nil {
		return models.Auction{}, err
	}

	bid := models.Bid{
		ID:             s.newID(),
		AuctionID:      auctionID,
		BidderUsername: bidderUsername,
		BidAmount:      amount,
		Timestamp:      now,
	}

	updated, err := s.repo.RecordBid(bid)
	if err != nil {
		return models.Auction{}, fmt.Errorf("service: failed to record bid for auction %s by %s: %w", auctionID, bidderUsername, err)
	}

	return updated, nil
}

// validateBid applies the acceptance rules in order: amount above the current
// bid, auction active, end time still ahead.
func validateBid(auction models.Auction, amount float64, now time.Time) error {
	if amount <= auction.CurrentBid {
		return fmt.Errorf("service: %w", &auctionerrors.BidTooLowError{CurrentBid: auction.CurrentBid})
	}
	if auction.Status != models.StatusActive {
		return fmt.Errorf("service: %w - status is %s", auctionerrors.ErrAuctionNotActive, auction.Status)
	}
	if !auction.EndTime.After(now) {
		return fmt.Errorf("service: %w - ended at %s", auctionerrors.ErrAuctionEnded, auction.EndTime.UTC().Format(time.RFC3339))
	}
	return nil
}
