package auction

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"social-auction/internal/auctionerrors"
	"social-auction/internal/models"
	"social-auction/internal/query"
	"social-auction/internal/repository"

	"github.com/google/uuid"
)

// Field limits for auctions created through the API
const (
	MaxTitleLength       = 100
	MaxDescriptionLength = 1000
)

// AuctionService defines the business logic of the auction platform
type AuctionService struct {
	repo  repository.AuctionDB
	now   func() time.Time
	newID func() string
	locks *keyedMutex
}

// Option customizes an AuctionService
type Option func(*AuctionService)

// WithClock replaces the wall clock used for bid validation and timestamps
func WithClock(now func() time.Time) Option {
	return func(s *AuctionService) {
		s.now = now
	}
}

// WithIDGenerator replaces the uuid generator used for new records
func WithIDGenerator(newID func() string) Option {
	return func(s *AuctionService) {
		s.newID = newID
	}
}

// NewAuctionService creates a new AuctionService instance
func NewAuctionService(repo repository.AuctionDB, opts ...Option) *AuctionService {
	s := &AuctionService{
		repo:  repo,
		now:   time.Now,
		newID: uuid.NewString,
		locks: newKeyedMutex(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *AuctionService) timestamp() time.Time {
	return s.now().UTC()
}

// GetUser returns a user profile
func (s *AuctionService) GetUser(username string) (models.User, error) {
	user, err := s.repo.GetUser(username)
	if err != nil {
		return models.User{}, fmt.Errorf("service: failed to get user %s: %w", username, err)
	}
	return user, nil
}

// GetUserAuctions returns the auctions listed by a user
func (s *AuctionService) GetUserAuctions(username string) ([]models.Auction, error) {
	if _, err := s.repo.GetUser(username); err != nil {
		return nil, fmt.Errorf("service: failed to get auctions for user %s: %w", username, err)
	}
	return query.AuctionsBySeller(s.repo.ListAuctions(), username), nil
}

// GetUserBids returns the bids placed by a user
func (s *AuctionService) GetUserBids(username string) ([]models.Bid, error) {
	if _, err := s.repo.GetUser(username); err != nil {
		return nil, fmt.Errorf("service: failed to get bids for user %s: %w", username, err)
	}
	return query.BidsByBidder(s.repo.ListBids(), username), nil
}

// ListAuctions returns auctions matching filter, newest first
func (s *AuctionService) ListAuctions(filter models.AuctionFilter) ([]models.Auction, error) {
	if err := query.ValidateLimit(filter.Limit); err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, fmt.Errorf("service: %w - %q", auctionerrors.ErrInvalidStatus, filter.Status)
	}
	return query.FilterAuctions(s.repo.ListAuctions(), filter), nil
}

// GetAuction returns a single auction
func (s *AuctionService) GetAuction(auctionID string) (models.Auction, error) {
	auction, err := s.repo.GetAuction(auctionID)
	if err != nil {
		return models.Auction{}, fmt.Errorf("service: failed to get auction %s: %w", auctionID, err)
	}
	return auction, nil
}

// GetAuctionBids returns the bids of an auction, newest first
func (s *AuctionService) GetAuctionBids(auctionID string) ([]models.Bid, error) {
	if _, err := s.repo.GetAuction(auctionID); err != nil {
		return nil, fmt.Errorf("service: failed to get bids for auction %s: %w", auctionID, err)
	}
	return query.BidsForAuction(s.repo.ListBids(), auctionID), nil
}

// Categories returns the distinct auction categories in ascending order
func (s *AuctionService) Categories() []string {
	return query.Categories(s.repo.ListAuctions())
}

// CreateAuction validates and stores a new active auction
func (s *AuctionService) CreateAuction(input models.NewAuction) (models.Auction, error) {
	now := s.timestamp()
	if err := validateNewAuction(input, now); err != nil {
		return models.Auction{}, err
	}

	images := make([]string, len(input.ImageURLs))
	copy(images, input.ImageURLs)

	auction := models.Auction{
		ID:             s.newID(),
		Title:          input.Title,
		Description:    input.Description,
		SellerUsername: input.SellerUsername,
		StartPrice:     input.StartPrice,
		CurrentBid:     input.StartPrice,
		EndTime:        input.EndTime.UTC(),
		Status:         models.StatusActive,
		ImageURLs:      images,
		Category:       input.Category,
		CreatedAt:      now,
	}

	if err := s.repo.AddAuction(auction); err != nil {
		return models.Auction{}, fmt.Errorf("service: failed to create auction %s: %w", auction.ID, err)
	}
	return auction, nil
}

// validateNewAuction checks the seller-supplied fields of a new auction
func validateNewAuction(input models.NewAuction, now time.Time) error {
	if n := utf8.RuneCountInString(input.Title); n < 1 || n > MaxTitleLength {
		return fmt.Errorf("service: %w - title must be 1 to %d characters", auctionerrors.ErrInvalidAuction, MaxTitleLength)
	}
	if n := utf8.RuneCountInString(input.Description); n < 1 || n > MaxDescriptionLength {
		return fmt.Errorf("service: %w - description must be 1 to %d characters", auctionerrors.ErrInvalidAuction, MaxDescriptionLength)
	}
	if strings.TrimSpace(input.SellerUsername) == "" {
		return fmt.Errorf("service: %w - missing seller username", auctionerrors.ErrInvalidAuction)
	}
	if strings.TrimSpace(input.Category) == "" {
		return fmt.Errorf("service: %w - missing category", auctionerrors.ErrInvalidAuction)
	}
	if input.StartPrice <= 0 {
		return fmt.Errorf("service: %w - non-positive start price", auctionerrors.ErrInvalidAuction)
	}
	if !input.EndTime.After(now) {
		return fmt.Errorf("service: %w - end time must be in the future", auctionerrors.ErrInvalidAuction)
	}
	return nil
}
