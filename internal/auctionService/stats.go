package auction

import (
	"social-auction/internal/models"
	"social-auction/internal/query"
)

// PlatformStats recomputes the platform summary from the store on every call
func (s *AuctionService) PlatformStats() models.PlatformStats {
	return query.Stats(s.repo.CountUsers(), s.repo.ListAuctions(), s.repo.ListBids())
}
