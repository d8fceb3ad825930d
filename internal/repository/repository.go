package repository

//go:generate mockgen -source=repository.go -destination=mock_repository.go -package=repository

import (
	"fmt"
	"sync"

	"social-auction/internal/auctionerrors"
	model "social-auction/internal/models"
)

// AuctionDB defines the storage interface for users, auctions, bids and comments
type AuctionDB interface {
	AddUser(user model.User) error
	GetUser(username string) (model.User, error)
	CountUsers() int

	AddAuction(auction model.Auction) error
	GetAuction(auctionID string) (model.Auction, error)
	ListAuctions() []model.Auction

	AddBid(bid model.Bid) error
	RecordBid(bid model.Bid) (model.Auction, error)
	ListBids() []model.Bid

	AddComment(comment model.Comment) error
	ListComments() []model.Comment
}

// MemoryRepo is a concurrency-safe in-memory implementation of AuctionDB.
// Lookups by username and auction id are map based; bids and comments are
// append-only and kept in insertion order.
type MemoryRepo struct {
	mu           sync.RWMutex
	users        map[string]model.User    // key: username
	auctions     map[string]model.Auction // key: auctionID
	auctionOrder []string                 // auction ids in insertion order
	bids         []model.Bid
	comments     []model.Comment
}

// NewMemoryRepo creates a new, empty in-memory repository
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		users:    make(map[string]model.User),
		auctions: make(map[string]model.Auction),
	}
}

// AddUser stores a user keyed by username
func (r *MemoryRepo) AddUser(user model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.Username]; ok {
		return fmt.Errorf("add user %s: %w", user.Username, auctionerrors.ErrDuplicate)
	}
	r.users[user.Username] = user
	return nil
}

// GetUser returns the user with the given username
func (r *MemoryRepo) GetUser(username string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[username]
	if !ok {
		return model.User{}, fmt.Errorf("get user %s: %w", username, auctionerrors.ErrUserNotFound)
	}
	return user, nil
}

// CountUsers returns the number of stored users
func (r *MemoryRepo) CountUsers() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users)
}

// AddAuction stores an auction keyed by its id
func (r *MemoryRepo) AddAuction(auction model.Auction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.auctions[auction.ID]; ok {
		return fmt.Errorf("add auction %s: %w", auction.ID, auctionerrors.ErrDuplicate)
	}
	r.auctions[auction.ID] = cloneAuction(auction)
	r.auctionOrder = append(r.auctionOrder, auction.ID)
	return nil
}

// GetAuction returns the auction with the given id
func (r *MemoryRepo) GetAuction(auctionID string) (model.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	auction, ok := r.auctions[auctionID]
	if !ok {
		return model.Auction{}, fmt.Errorf("get auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	return cloneAuction(auction), nil
}

// ListAuctions returns every auction in insertion order
func (r *MemoryRepo) ListAuctions() []model.Auction {
	r.mu.RLock()
	defer r.mu.RUnlock()

	auctions := make([]model.Auction, 0, len(r.auctionOrder))
	for _, id := range r.auctionOrder {
		auctions = append(auctions, cloneAuction(r.auctions[id]))
	}
	return auctions
}

// AddBid appends a historical bid without touching the auction aggregates.
// It is used for seeding; live bids go through RecordBid.
func (r *MemoryRepo) AddBid(bid model.Bid) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.auctions[bid.AuctionID]; !ok {
		return fmt.Errorf("add bid for auction %s: %w", bid.AuctionID, auctionerrors.ErrAuctionNotFound)
	}
	r.bids = append(r.bids, bid)
	return nil
}

// RecordBid appends an accepted bid and moves the auction's current bid and
// bid count in the same critical section. It returns the updated auction.
func (r *MemoryRepo) RecordBid(bid model.Bid) (model.Auction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	auction, ok := r.auctions[bid.AuctionID]
	if !ok {
		return model.Auction{}, fmt.Errorf("record bid for auction %s: %w", bid.AuctionID, auctionerrors.ErrAuctionNotFound)
	}

	r.bids = append(r.bids, bid)
	auction.CurrentBid = bid.BidAmount
	auction.BidCount++
	r.auctions[bid.AuctionID] = auction

	return cloneAuction(auction), nil
}

// ListBids returns every bid in insertion order
func (r *MemoryRepo) ListBids() []model.Bid {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]model.Bid(nil), r.bids...)
}

// AddComment appends a comment to an existing auction
func (r *MemoryRepo) AddComment(comment model.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.auctions[comment.AuctionID]; !ok {
		return fmt.Errorf("add comment for auction %s: %w", comment.AuctionID, auctionerrors.ErrAuctionNotFound)
	}
	r.comments = append(r.comments, comment)
	return nil
}

// ListComments returns every comment in insertion order
func (r *MemoryRepo) ListComments() []model.Comment {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]model.Comment(nil), r.comments...)
}

// cloneAuction copies the image slice so callers never alias store memory
func cloneAuction(a model.Auction) model.Auction {
	images := make([]string, len(a.ImageURLs))
	copy(images, a.ImageURLs)
	a.ImageURLs = images
	return a
}
