package auction

import (
	"fmt"

	"social-auction/internal/models"
	"social-auction/internal/query"
)

// GetAuctionComments returns the comments of an auction, oldest first
func (s *AuctionService) GetAuctionComments(auctionID string) ([]models.Comment, error) {
	if _, err := s.repo.GetAuction(auctionID); err != nil {
		return nil, fmt.Errorf("service: failed to get comments for auction %s: %w", auctionID, err)
	}
	return query.CommentsForAuction(s.repo.ListComments(), auctionID), nil
}

// PostComment appends a comment and returns the auction's full comment
// thread, oldest first, ending with the new comment. Content length is
// checked by the HTTP binding before this is called.
func (s *AuctionService) PostComment(auctionID, commenterUsername, content string) ([]models.Comment, error) {
	if _, err := s.repo.GetAuction(auctionID); err != nil {
		return nil, fmt.Errorf("service: failed to post comment on auction %s: %w", auctionID, err)
	}

	comment := models.Comment{
		ID:                s.newID(),
		AuctionID:         auctionID,
		CommenterUsername: commenterUsername,
		Content:           content,
		Timestamp:         s.timestamp(),
	}

	if err := s.repo.AddComment(comment); err != nil {
		return nil, fmt.Errorf("service: failed to store comment on auction %s: %w", auctionID, err)
	}

	return query.CommentsForAuction(s.repo.ListComments(), auctionID), nil
}
