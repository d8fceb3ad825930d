// Package seed provides the demo dataset loaded into the store at startup.
package seed

import (
	"fmt"
	"time"

	model "social-auction/internal/models"
	"social-auction/internal/repository"

	"github.com/google/uuid"
)

// Data is a complete set of records to install into an empty store
type Data struct {
	Users    []model.User    `json:"users"`
	Auctions []model.Auction `json:"auctions"`
	Bids     []model.Bid     `json:"bids"`
	Comments []model.Comment `json:"comments"`
}

// Populate installs the demo dataset into repo with times relative to now
func Populate(repo repository.AuctionDB, now time.Time) error {
	data := Dataset(now)

	for _, u := range data.Users {
		if err := repo.AddUser(u); err != nil {
			return fmt.Errorf("seed user %s: %w", u.Username, err)
		}
	}
	for _, a := range data.Auctions {
		if err := repo.AddAuction(a); err != nil {
			return fmt.Errorf("seed auction %s: %w", a.ID, err)
		}
	}
	for _, b := range data.Bids {
		if err := repo.AddBid(b); err != nil {
			return fmt.Errorf("seed bid %s: %w", b.ID, err)
		}
	}
	for _, c := range data.Comments {
		if err := repo.AddComment(c); err != nil {
			return fmt.Errorf("seed comment %s: %w", c.ID, err)
		}
	}
	return nil
}

func days(n int) time.Duration { return time.Duration(n) * 24 * time.Hour }

func unsplash(photo, size string) string {
	return fmt.Sprintf("https://images.unsplash.com/photo-%s?%s", photo, size)
}

const (
	avatarSize = "w=150&h=150&fit=crop&crop=face"
	imageSize  = "w=800&h=600&fit=crop"
)

// Dataset returns the demo records. Bid counts and user counters are
// display values and intentionally larger than the seeded bid history.
func Dataset(now time.Time) Data {
	now = now.UTC()

	users := []model.User{
		{Username: "alex_collector", AvatarURL: unsplash("1472099645785-5658abf4ff4e", avatarSize), ReputationScore: 95, JoinedDate: now.Add(-days(365)), TotalAuctions: 15, TotalBids: 47},
		{Username: "vintage_hunter", AvatarURL: unsplash("1494790108755-2616b612b647", avatarSize), ReputationScore: 88, JoinedDate: now.Add(-days(200)), TotalAuctions: 8, TotalBids: 32},
		{Username: "tech_enthusiast", AvatarURL: unsplash("1507003211169-0a1dd7228f2d", avatarSize), ReputationScore: 92, JoinedDate: now.Add(-days(150)), TotalAuctions: 12, TotalBids: 28},
		{Username: "art_lover", AvatarURL: unsplash("1438761681033-6461ffad8d80", avatarSize), ReputationScore: 96, JoinedDate: now.Add(-days(300)), TotalAuctions: 20, TotalBids: 15},
		{Username: "gadget_guru", AvatarURL: unsplash("1500648767791-00dcc994a43e", avatarSize), ReputationScore: 89, JoinedDate: now.Add(-days(120)), TotalAuctions: 6, TotalBids: 41},
	}
	for i := range users {
		users[i].ID = uuid.NewString()
	}

	auctions := []model.Auction{
		{
			ID:             "auction_1",
			Title:          "Vintage Rolex Submariner 1960s",
			Description:    "A stunning vintage Rolex Submariner from the 1960s in excellent condition. This piece has been carefully maintained and comes with original documentation. The watch features the iconic black dial and bezel, automatic movement, and has been serviced recently.",
			SellerUsername: "alex_collector",
			StartPrice:     8500,
			CurrentBid:     12750,
			EndTime:        now.Add(6*time.Hour + 23*time.Minute),
			Status:         model.StatusActive,
			ImageURLs: []string{
				unsplash("1522312346375-d1a52e2b99b3", imageSize),
				unsplash("1524592094714-0f0654e20314", imageSize),
				unsplash("1547996160-81dfa63595aa", imageSize),
			},
			Category:  "Watches & Jewelry",
			CreatedAt: now.Add(-days(3)),
			BidCount:  8,
			Watchers:  24,
		},
		{
			ID:             "auction_2",
			Title:          "MacBook Pro M3 Max 16-inch (2024)",
			Description:    "Brand new MacBook Pro with M3 Max chip, 16-inch Liquid Retina XDR display, 36GB unified memory, and 1TB SSD storage. Space Black color. Still in original packaging with full warranty. Perfect for creative professionals and developers.",
			SellerUsername: "tech_enthusiast",
			StartPrice:     3200,
			CurrentBid:     3850,
			EndTime:        now.Add(days(1) + 12*time.Hour + 45*time.Minute),
			Status:         model.StatusActive,
			ImageURLs: []string{
				unsplash("1541807084-5c52b6b3adef", imageSize),
				unsplash("1496181133206-80ce9b88a853", imageSize),
			},
			Category:  "Electronics",
			CreatedAt: now.Add(-days(1)),
			BidCount:  5,
			Watchers:  18,
		},
		{
			ID:             "auction_3",
			Title:          "Original Picasso Lithograph 'The Dove'",
			Description:    "Authentic Pablo Picasso lithograph 'The Dove' from 1961. Limited edition print in excellent condition, professionally framed. Comes with certificate of authenticity. A masterpiece from one of the greatest artists of the 20th century.",
			SellerUsername: "art_lover",
			StartPrice:     15000,
			CurrentBid:     23500,
			EndTime:        now.Add(days(2) + 8*time.Hour + 15*time.Minute),
			Status:         model.StatusActive,
			ImageURLs: []string{
				unsplash("1578321272176-b7bbc0679853", imageSize),
				unsplash("1541961017774-22349e4a1262", imageSize),
			},
			Category:  "Art & Collectibles",
			CreatedAt: now.Add(-days(2)),
			BidCount:  12,
			Watchers:  35,
		},
		{
			ID:             "auction_4",
			Title:          "Gaming Setup: RTX 4090 + i9-13900K",
			Description:    "Ultimate gaming setup featuring NVIDIA RTX 4090, Intel i9-13900K, 64GB DDR5 RAM, 2TB NVMe SSD, custom water cooling. Built in premium Lian Li case with RGB lighting. Perfect for 4K gaming and content creation.",
			SellerUsername: "gadget_guru",
			StartPrice:     4500,
			CurrentBid:     5200,
			EndTime:        now.Add(18*time.Hour + 30*time.Minute),
			Status:         model.StatusActive,
			ImageURLs: []string{
				unsplash("1591488320449-011701bb6704", imageSize),
				unsplash("1593640408182-31c70c8268f5", imageSize),
			},
			Category:  "Electronics",
			CreatedAt: now.Add(-12 * time.Hour),
			BidCount:  6,
			Watchers:  22,
		},
		{
			ID:             "auction_5",
			Title:          "1967 Gibson Les Paul Standard",
			Description:    "Legendary 1967 Gibson Les Paul Standard in Cherry Sunburst finish. Original PAF humbuckers, incredible sustain and tone. This guitar has been owned by a professional musician and maintained in excellent condition. Includes original case.",
			SellerUsername: "vintage_hunter",
			StartPrice:     12000,
			CurrentBid:     18750,
			EndTime:        now.Add(days(3) + 2*time.Hour + 10*time.Minute),
			Status:         model.StatusActive,
			ImageURLs: []string{
				unsplash("1510915361894-db8b60106cb1", imageSize),
				unsplash("1493225457124-a3eb161ffa5f", imageSize),
			},
			Category:  "Musical Instruments",
			CreatedAt: now.Add(-(days(1) + 6*time.Hour)),
			BidCount:  9,
			Watchers:  31,
		},
		{
			ID:             "auction_6",
			Title:          "Rare 1st Edition Pokémon Base Set Charizard",
			Description:    "PSA 9 graded 1st Edition Base Set Charizard from 1998. This is one of the most iconic and valuable Pokémon cards ever made. The card is in near mint condition and has been professionally graded and authenticated by PSA.",
			SellerUsername: "alex_collector",
			StartPrice:     25000,
			CurrentBid:     35200,
			EndTime:        now.Add(days(4) + 15*time.Hour + 45*time.Minute),
			Status:         model.StatusActive,
			ImageURLs: []string{
				unsplash("1606107557195-0e29a4b5b4aa", imageSize),
				unsplash("1611751196844-c3b50e2dd03a", imageSize),
			},
			Category:  "Trading Cards",
			CreatedAt: now.Add(-18 * time.Hour),
			BidCount:  15,
			Watchers:  48,
		},
	}

	bids := []model.Bid{
		{AuctionID: "auction_1", BidderUsername: "vintage_hunter", BidAmount: 12750, Timestamp: now.Add(-15 * time.Minute)},
		{AuctionID: "auction_1", BidderUsername: "gadget_guru", BidAmount: 12000, Timestamp: now.Add(-2 * time.Hour)},
		{AuctionID: "auction_2", BidderUsername: "tech_enthusiast", BidAmount: 3850, Timestamp: now.Add(-45 * time.Minute)},
		{AuctionID: "auction_3", BidderUsername: "alex_collector", BidAmount: 23500, Timestamp: now.Add(-1 * time.Hour)},
		{AuctionID: "auction_6", BidderUsername: "vintage_hunter", BidAmount: 35200, Timestamp: now.Add(-30 * time.Minute)},
	}
	for i := range bids {
		bids[i].ID = uuid.NewString()
	}

	comments := []model.Comment{
		{AuctionID: "auction_1", CommenterUsername: "vintage_hunter", Content: "This is an absolutely stunning piece! The condition looks incredible for a 1960s Submariner. Do you have the service history documentation?", Timestamp: now.Add(-4 * time.Hour)},
		{AuctionID: "auction_1", CommenterUsername: "alex_collector", Content: "@vintage_hunter Yes, I have all the service records. The watch was last serviced 6 months ago by an authorized Rolex dealer.", Timestamp: now.Add(-(3*time.Hour + 45*time.Minute))},
		{AuctionID: "auction_2", CommenterUsername: "gadget_guru", Content: "Is this the model with the Space Black finish? The photos look amazing! Still has the plastic wrap on it?", Timestamp: now.Add(-8 * time.Hour)},
		{AuctionID: "auction_3", CommenterUsername: "art_lover", Content: "Magnificent piece! Picasso's dove series is truly iconic. The framing looks professional - is that included in the sale?", Timestamp: now.Add(-12 * time.Hour)},
		{AuctionID: "auction_6", CommenterUsername: "tech_enthusiast", Content: "PSA 9 Charizard! 🔥 This takes me back to childhood. The grading looks legitimate. Good luck to all bidders!", Timestamp: now.Add(-6 * time.Hour)},
	}
	for i := range comments {
		comments[i].ID = uuid.NewString()
	}

	return Data{Users: users, Auctions: auctions, Bids: bids, Comments: comments}
}
