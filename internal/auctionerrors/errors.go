package auctionerrors

import (
	"errors"
	"fmt"

	"social-auction/utils"
)

// Error kinds. Every error below wraps exactly one of these.
var (
	ErrNotFound       = errors.New("not found")
	ErrInvalidRequest = errors.New("invalid request")
	ErrDuplicate      = errors.New("already exists")
)

// ErrValidation marks field and schema violations (a subset of invalid requests)
var ErrValidation = fmt.Errorf("%w: validation failed", ErrInvalidRequest)

// Repository-level errors
var (
	ErrUserNotFound    = fmt.Errorf("user %w", ErrNotFound)
	ErrAuctionNotFound = fmt.Errorf("auction %w", ErrNotFound)
)

// business logic errors
var (
	ErrBidTooLow        = fmt.Errorf("%w: bid amount too low", ErrInvalidRequest)
	ErrAuctionNotActive = fmt.Errorf("%w: auction is not active", ErrInvalidRequest)
	ErrAuctionEnded     = fmt.Errorf("%w: auction has ended", ErrInvalidRequest)
)

// request validation errors
var (
	ErrInvalidLimit   = fmt.Errorf("%w: limit out of range", ErrValidation)
	ErrInvalidStatus  = fmt.Errorf("%w: unknown auction status", ErrValidation)
	ErrInvalidAuction = fmt.Errorf("%w: invalid auction fields", ErrValidation)
)

// BidTooLowError reports a rejected bid together with the bid it had to beat
type BidTooLowError struct {
	CurrentBid float64
}

func (e *BidTooLowError) Error() string {
	return "bid amount must be higher than current bid of " + utils.FormatCurrency(e.CurrentBid)
}

func (e *BidTooLowError) Unwrap() error {
	return ErrBidTooLow
}
