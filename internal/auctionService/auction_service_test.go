package auction

import (
	"errors"
	"strings"
	"testing"
	"time"

	"social-auction/internal/auctionerrors"
	model "social-auction/internal/models"
	"social-auction/internal/repository"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

// newSeededService builds a service over a fresh store holding two users,
// three auctions, a few bids and comments.
func newSeededService(t *testing.T) (*AuctionService, *repository.MemoryRepo) {
	t.Helper()
	repo := repository.NewMemoryRepo()

	require.NoError(t, repo.AddUser(model.User{ID: "u1", Username: "alex_collector", ReputationScore: 95}))
	require.NoError(t, repo.AddUser(model.User{ID: "u2", Username: "vintage_hunter", ReputationScore: 88}))
	require.NoError(t, repo.AddUser(model.User{ID: "u3", Username: "lurker"}))

	a1 := activeAuction("auction_1", 12750, 8)
	a1.CreatedAt = fixedNow.Add(-72 * time.Hour)
	a2 := activeAuction("auction_2", 3850, 5)
	a2.SellerUsername = "vintage_hunter"
	a2.Category = "Electronics"
	a2.CreatedAt = fixedNow.Add(-24 * time.Hour)
	a3 := activeAuction("auction_3", 200, 0)
	a3.Category = "electronics"
	a3.Status = model.StatusEnded
	a3.CreatedAt = fixedNow.Add(-1 * time.Hour)

	for _, a := range []model.Auction{a1, a2, a3} {
		require.NoError(t, repo.AddAuction(a))
	}

	require.NoError(t, repo.AddBid(model.Bid{ID: "b1", AuctionID: "auction_1", BidderUsername: "vintage_hunter", BidAmount: 12000, Timestamp: fixedNow.Add(-2 * time.Hour)}))
	require.NoError(t, repo.AddBid(model.Bid{ID: "b2", AuctionID: "auction_1", BidderUsername: "vintage_hunter", BidAmount: 12750, Timestamp: fixedNow.Add(-15 * time.Minute)}))
	require.NoError(t, repo.AddBid(model.Bid{ID: "b3", AuctionID: "auction_2", BidderUsername: "alex_collector", BidAmount: 3850, Timestamp: fixedNow.Add(-45 * time.Minute)}))

	require.NoError(t, repo.AddComment(model.Comment{ID: "c1", AuctionID: "auction_1", CommenterUsername: "alex_collector", Content: "reply", Timestamp: fixedNow.Add(-3 * time.Hour)}))
	require.NoError(t, repo.AddComment(model.Comment{ID: "c2", AuctionID: "auction_1", CommenterUsername: "vintage_hunter", Content: "question", Timestamp: fixedNow.Add(-4 * time.Hour)}))

	ids := []string{"id-1", "id-2", "id-3", "id-4", "id-5"}
	next := 0
	service := NewAuctionService(repo, WithClock(fixedClock), WithIDGenerator(func() string {
		id := ids[next%len(ids)]
		next++
		return id
	}))
	return service, repo
}

func TestAuctionService_Users(t *testing.T) {
	service, _ := newSeededService(t)

	user, err := service.GetUser("alex_collector")
	require.NoError(t, err)
	require.Equal(t, 95, user.ReputationScore)

	auctions, err := service.GetUserAuctions("alex_collector")
	require.NoError(t, err)
	require.Len(t, auctions, 2)
	for _, a := range auctions {
		require.Equal(t, "alex_collector", a.SellerUsername)
	}

	bids, err := service.GetUserBids("vintage_hunter")
	require.NoError(t, err)
	require.Len(t, bids, 2)

	// known user with nothing listed is an empty result, not an error
	auctions, err = service.GetUserAuctions("lurker")
	require.NoError(t, err)
	require.NotNil(t, auctions)
	require.Empty(t, auctions)

	bids, err = service.GetUserBids("lurker")
	require.NoError(t, err)
	require.NotNil(t, bids)
	require.Empty(t, bids)

	for _, call := range []func() error{
		func() error { _, err := service.GetUser("ghost"); return err },
		func() error { _, err := service.GetUserAuctions("ghost"); return err },
		func() error { _, err := service.GetUserBids("ghost"); return err },
	} {
		err := call()
		require.Error(t, err)
		require.True(t, errors.Is(err, auctionerrors.ErrUserNotFound))
		require.True(t, errors.Is(err, auctionerrors.ErrNotFound))
	}
}

func TestAuctionService_ListAuctions(t *testing.T) {
	service, _ := newSeededService(t)

	tests := []struct {
		name          string
		filter        model.AuctionFilter
		wantIDs       []string
		expectedError error
	}{
		{name: "all_newest_first", filter: model.AuctionFilter{Limit: 20}, wantIDs: []string{"auction_3", "auction_2", "auction_1"}},
		{name: "limit_one", filter: model.AuctionFilter{Limit: 1}, wantIDs: []string{"auction_3"}},
		{name: "category", filter: model.AuctionFilter{Category: "Electronics", Limit: 20}, wantIDs: []string{"auction_3", "auction_2"}},
		{name: "status", filter: model.AuctionFilter{Status: model.StatusActive, Limit: 20}, wantIDs: []string{"auction_2", "auction_1"}},
		{name: "limit_zero", filter: model.AuctionFilter{Limit: 0}, expectedError: auctionerrors.ErrInvalidLimit},
		{name: "limit_too_large", filter: model.AuctionFilter{Limit: 101}, expectedError: auctionerrors.ErrInvalidLimit},
		{name: "unknown_status", filter: model.AuctionFilter{Status: "paused", Limit: 20}, expectedError: auctionerrors.ErrInvalidStatus},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			auctions, err := service.ListAuctions(tc.filter)
			if tc.expectedError != nil {
				require.Error(t, err)
				require.True(t, errors.Is(err, tc.expectedError), "expected error: %v, got: %v", tc.expectedError, err)
				require.True(t, errors.Is(err, auctionerrors.ErrValidation))
				return
			}
			require.NoError(t, err)

			got := make([]string, 0, len(auctions))
			for _, a := range auctions {
				got = append(got, a.ID)
			}
			require.Equal(t, tc.wantIDs, got)
		})
	}
}

func TestAuctionService_GetAuctionAndBids(t *testing.T) {
	service, _ := newSeededService(t)

	auction, err := service.GetAuction("auction_1")
	require.NoError(t, err)
	require.Equal(t, 12750.0, auction.CurrentBid)

	bids, err := service.GetAuctionBids("auction_1")
	require.NoError(t, err)
	require.Len(t, bids, 2)
	require.Equal(t, "b2", bids[0].ID, "newest bid first")
	require.Equal(t, "b1", bids[1].ID)

	bids, err = service.GetAuctionBids("auction_3")
	require.NoError(t, err)
	require.Empty(t, bids)

	_, err = service.GetAuction("nope")
	require.True(t, errors.Is(err, auctionerrors.ErrAuctionNotFound))

	_, err = service.GetAuctionBids("nope")
	require.True(t, errors.Is(err, auctionerrors.ErrAuctionNotFound))
}

func TestAuctionService_Categories(t *testing.T) {
	service, _ := newSeededService(t)
	require.Equal(t, []string{"Electronics", "Watches & Jewelry", "electronics"}, service.Categories())
}

func TestAuctionService_Comments(t *testing.T) {
	service, _ := newSeededService(t)

	comments, err := service.GetAuctionComments("auction_1")
	require.NoError(t, err)
	require.Len(t, comments, 2)
	require.Equal(t, "c2", comments[0].ID, "oldest comment first")

	comments, err = service.PostComment("auction_1", "lurker", "Is the box included?")
	require.NoError(t, err)
	require.Len(t, comments, 3)
	last := comments[len(comments)-1]
	require.Equal(t, "id-1", last.ID)
	require.Equal(t, "lurker", last.CommenterUsername)
	require.Equal(t, "Is the box included?", last.Content)
	require.Equal(t, fixedNow, last.Timestamp)
	require.Equal(t, "c2", comments[0].ID)
	require.Equal(t, "c1", comments[1].ID)

	// a second comment on the same instant still lands last
	comments, err = service.PostComment("auction_1", "alex_collector", "Yes")
	require.NoError(t, err)
	require.Len(t, comments, 4)
	require.Equal(t, "id-2", comments[3].ID)

	comments, err = service.PostComment("auction_2", "lurker", "first!")
	require.NoError(t, err)
	require.Len(t, comments, 1)

	_, err = service.PostComment("nope", "lurker", "hello")
	require.True(t, errors.Is(err, auctionerrors.ErrAuctionNotFound))

	_, err = service.GetAuctionComments("nope")
	require.True(t, errors.Is(err, auctionerrors.ErrAuctionNotFound))
}

func TestAuctionService_PlatformStats(t *testing.T) {
	service, _ := newSeededService(t)

	stats := service.PlatformStats()
	require.Equal(t, 3, stats.TotalUsers)
	require.Equal(t, 3, stats.TotalAuctions)
	require.Equal(t, 2, stats.ActiveAuctions)
	require.Equal(t, 3, stats.TotalBids)
	require.Equal(t, 16800.0, stats.TotalAuctionValue)
	require.Equal(t, 5600.0, stats.AverageAuctionValue)

	// stats are recomputed after a mutation
	_, err := service.PlaceBid("auction_2", "lurker", 4150)
	require.NoError(t, err)
	stats = service.PlatformStats()
	require.Equal(t, 4, stats.TotalBids)
	require.Equal(t, 17100.0, stats.TotalAuctionValue)

	empty := NewAuctionService(repository.NewMemoryRepo())
	require.Equal(t, model.PlatformStats{}, empty.PlatformStats())
}

func TestAuctionService_CreateAuction(t *testing.T) {
	valid := model.NewAuction{
		Title:          "1967 Gibson Les Paul",
		Description:    "Cherry Sunburst finish",
		SellerUsername: "vintage_hunter",
		StartPrice:     12000,
		EndTime:        fixedNow.Add(72 * time.Hour),
		Category:       "Musical Instruments",
	}

	mutate := func(f func(*model.NewAuction)) model.NewAuction {
		in := valid
		f(&in)
		return in
	}

	tests := []struct {
		name    string
		input   model.NewAuction
		wantErr bool
	}{
		{name: "valid", input: valid},
		{name: "valid_with_images", input: mutate(func(in *model.NewAuction) { in.ImageURLs = []string{"https://img/1.jpg"} })},
		{name: "empty_title", input: mutate(func(in *model.NewAuction) { in.Title = "" }), wantErr: true},
		{name: "long_title", input: mutate(func(in *model.NewAuction) { in.Title = strings.Repeat("x", MaxTitleLength+1) }), wantErr: true},
		{name: "max_title_multibyte", input: mutate(func(in *model.NewAuction) { in.Title = strings.Repeat("é", MaxTitleLength) })},
		{name: "empty_description", input: mutate(func(in *model.NewAuction) { in.Description = "" }), wantErr: true},
		{name: "long_description", input: mutate(func(in *model.NewAuction) { in.Description = strings.Repeat("x", MaxDescriptionLength+1) }), wantErr: true},
		{name: "missing_seller", input: mutate(func(in *model.NewAuction) { in.SellerUsername = " " }), wantErr: true},
		{name: "missing_category", input: mutate(func(in *model.NewAuction) { in.Category = "" }), wantErr: true},
		{name: "zero_price", input: mutate(func(in *model.NewAuction) { in.StartPrice = 0 }), wantErr: true},
		{name: "end_in_past", input: mutate(func(in *model.NewAuction) { in.EndTime = fixedNow.Add(-time.Minute) }), wantErr: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			repo := repository.NewMemoryRepo()
			service := NewAuctionService(repo, WithClock(fixedClock), WithIDGenerator(func() string { return "auction_new" }))

			auction, err := service.CreateAuction(tc.input)
			if tc.wantErr {
				require.Error(t, err)
				require.True(t, errors.Is(err, auctionerrors.ErrInvalidAuction))
				require.Empty(t, repo.ListAuctions())
				return
			}

			require.NoError(t, err)
			require.Equal(t, "auction_new", auction.ID)
			require.Equal(t, model.StatusActive, auction.Status)
			require.Equal(t, tc.input.StartPrice, auction.CurrentBid)
			require.Equal(t, 0, auction.BidCount)
			require.Equal(t, fixedNow, auction.CreatedAt)
			require.NotNil(t, auction.ImageURLs)

			stored, err := repo.GetAuction("auction_new")
			require.NoError(t, err)
			require.Equal(t, auction, stored)
		})
	}
}

func TestAuctionService_CreateAuction_RepoError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repository.NewMockAuctionDB(ctrl)
	service := NewAuctionService(mockRepo, WithClock(fixedClock))

	mockRepo.EXPECT().AddAuction(gomock.Any()).Return(auctionerrors.ErrDuplicate)

	_, err := service.CreateAuction(model.NewAuction{
		Title:          "t",
		Description:    "d",
		SellerUsername: "s",
		StartPrice:     1,
		EndTime:        fixedNow.Add(time.Hour),
		Category:       "c",
	})
	require.Error(t, err)
	require.True(t, errors.Is(err, auctionerrors.ErrDuplicate))
}

func TestAuctionService_RepoMissReportedAsNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repository.NewMockAuctionDB(ctrl)
	service := NewAuctionService(mockRepo)

	mockRepo.EXPECT().GetAuction("a9").Return(model.Auction{}, auctionerrors.ErrAuctionNotFound).Times(2)
	mockRepo.EXPECT().GetUser("u9").Return(model.User{}, auctionerrors.ErrUserNotFound)

	_, err := service.GetAuctionComments("a9")
	require.True(t, errors.Is(err, auctionerrors.ErrNotFound))
	_, err = service.PostComment("a9", "u", "hi")
	require.True(t, errors.Is(err, auctionerrors.ErrNotFound))
	_, err = service.GetUserBids("u9")
	require.True(t, errors.Is(err, auctionerrors.ErrNotFound))
}
