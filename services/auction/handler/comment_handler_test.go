package handler

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"social-auction/internal/auctionerrors"
	model "social-auction/internal/models"
	"social-auction/services/auction/helpers"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

// Test GetCommentsHandler
func TestGetCommentsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := NewMockAuctionServiceInterface(ctrl)
	router := newTestRouter(mockService)

	mockService.EXPECT().GetAuctionComments("auction_1").Return([]model.Comment{
		{ID: "c1", AuctionID: "auction_1", CommenterUsername: "vintage_hunter", Content: "stunning", Timestamp: now.Add(-4 * time.Hour)},
		{ID: "c2", AuctionID: "auction_1", CommenterUsername: "alex_collector", Content: "thanks", Timestamp: now.Add(-3 * time.Hour)},
	}, nil)
	mockService.EXPECT().GetAuctionComments("auction_4").Return(nil, nil)
	mockService.EXPECT().GetAuctionComments("nope").Return(nil, auctionerrors.ErrAuctionNotFound)

	w := doRequest(t, router, http.MethodGet, "/api/auctions/auction_1/comments", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var comments []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &comments))
	require.Len(t, comments, 2)
	require.Equal(t, "c1", comments[0]["id"])
	require.Equal(t, "vintage_hunter", comments[0]["commenter_username"])

	w = doRequest(t, router, http.MethodGet, "/api/auctions/auction_4/comments", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "[]", strings.TrimSpace(w.Body.String()))

	w = doRequest(t, router, http.MethodGet, "/api/auctions/nope/comments", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "Auction not found", decodeError(t, w)["message"])
}

// Test PostCommentHandler
func TestPostCommentHandler(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    any
		mockSetup      func(m *MockAuctionServiceInterface)
		expectedStatus int
		expectedLen    int
	}{
		{
			name:        "posted",
			requestBody: helpers.PostCommentRequest{Content: "Great watch", CommenterUsername: "art_lover"},
			mockSetup: func(m *MockAuctionServiceInterface) {
				m.EXPECT().PostComment("auction_1", "art_lover", "Great watch").Return([]model.Comment{
					{ID: "c1", AuctionID: "auction_1", CommenterUsername: "vintage_hunter", Content: "stunning", Timestamp: now.Add(-time.Hour)},
					{ID: "c2", AuctionID: "auction_1", CommenterUsername: "art_lover", Content: "Great watch", Timestamp: now},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedLen:    2,
		},
		{
			name:        "max_length_content",
			requestBody: helpers.PostCommentRequest{Content: strings.Repeat("a", 500), CommenterUsername: "art_lover"},
			mockSetup: func(m *MockAuctionServiceInterface) {
				m.EXPECT().PostComment("auction_1", "art_lover", gomock.Any()).Return([]model.Comment{{ID: "c1"}}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedLen:    1,
		},
		{
			name:           "empty_content",
			requestBody:    helpers.PostCommentRequest{Content: "", CommenterUsername: "art_lover"},
			mockSetup:      func(m *MockAuctionServiceInterface) {},
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name:           "content_too_long",
			requestBody:    helpers.PostCommentRequest{Content: strings.Repeat("a", 501), CommenterUsername: "art_lover"},
			mockSetup:      func(m *MockAuctionServiceInterface) {},
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name:           "missing_commenter",
			requestBody:    map[string]any{"content": "hello"},
			mockSetup:      func(m *MockAuctionServiceInterface) {},
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name:           "empty_commenter",
			requestBody:    map[string]any{"content": "hello", "commenter_username": ""},
			mockSetup:      func(m *MockAuctionServiceInterface) {},
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name:        "auction_not_found",
			requestBody: helpers.PostCommentRequest{Content: "hello", CommenterUsername: "art_lover"},
			mockSetup: func(m *MockAuctionServiceInterface) {
				m.EXPECT().PostComment("auction_1", "art_lover", "hello").Return(nil, auctionerrors.ErrAuctionNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			mockService := NewMockAuctionServiceInterface(ctrl)
			tc.mockSetup(mockService)
			router := newTestRouter(mockService)

			w := doRequest(t, router, http.MethodPost, "/api/auctions/auction_1/comments", tc.requestBody)
			require.Equal(t, tc.expectedStatus, w.Code)

			if tc.expectedStatus != http.StatusOK {
				decodeError(t, w)
				return
			}

			var comments []model.Comment
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &comments))
			require.Len(t, comments, tc.expectedLen)
		})
	}
}
