package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	auction "social-auction/internal/auctionService"
	model "social-auction/internal/models"
	"social-auction/internal/repository"
	"social-auction/internal/seed"
	"social-auction/internal/server"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

var seedTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

// tickingClock starts at seedTime and advances one second per reading so
// records created within one test keep a strict order.
type tickingClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *tickingClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(time.Second)
	return c.now
}

// SetupTestRouter initializes the router over a seeded in-memory repository.
// Extra auctions are stored after the demo dataset.
func SetupTestRouter(t *testing.T, extra ...model.Auction) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := repository.NewMemoryRepo()
	require.NoError(t, seed.Populate(repo, seedTime))
	for _, a := range extra {
		require.NoError(t, repo.AddAuction(a))
	}

	clock := &tickingClock{now: seedTime}
	service := auction.NewAuctionService(repo, auction.WithClock(clock.Now))
	return server.SetupRouter(service, nil)
}

// ExecuteRequest executes an HTTP request and returns the response recorder.
func ExecuteRequest(t *testing.T, router *gin.Engine, method, url string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody []byte
	switch v := body.(type) {
	case nil:
	case string:
		reqBody = []byte(v)
	case []byte:
		reqBody = v
	default:
		var err error
		reqBody, err = json.Marshal(v)
		require.NoError(t, err, "failed to marshal body")
	}

	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// ExecuteRequestAndParse executes a request and decodes the JSON body into out
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body, out any) *httptest.ResponseRecorder {
	t.Helper()

	w := ExecuteRequest(t, router, method, url, body)
	if out != nil && w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), out), "failed to unmarshal response: %s", w.Body.String())
	}
	return w
}

// errorBody is the envelope every failed request returns
type errorBody struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

func requireError(t *testing.T, w *httptest.ResponseRecorder, status int, message string) {
	t.Helper()

	require.Equal(t, status, w.Code, w.Body.String())
	var body errorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, status, body.Status)
	require.NotEmpty(t, body.Error)
	if message != "" {
		require.Equal(t, message, body.Message)
	}
}

func ids(auctions []model.Auction) []string {
	out := make([]string, len(auctions))
	for i, a := range auctions {
		out[i] = a.ID
	}
	return out
}
