package helpers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"social-auction/internal/auctionerrors"
	"social-auction/internal/query"
	"social-auction/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures.
// Malformed or constraint-violating bodies are 422, like query validation.
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusUnprocessableEntity, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	var tooLow *auctionerrors.BidTooLowError

	switch {
	case errors.Is(err, auctionerrors.ErrUserNotFound):
		return http.StatusNotFound, "User not found"
	case errors.Is(err, auctionerrors.ErrAuctionNotFound):
		return http.StatusNotFound, "Auction not found"
	case errors.Is(err, auctionerrors.ErrNotFound):
		return http.StatusNotFound, "not found"
	case errors.Is(err, auctionerrors.ErrInvalidLimit):
		return http.StatusUnprocessableEntity, fmt.Sprintf("limit must be between %d and %d", query.MinLimit, query.MaxLimit)
	case errors.Is(err, auctionerrors.ErrInvalidStatus):
		return http.StatusUnprocessableEntity, "status must be one of active, ended, upcoming"
	case errors.Is(err, auctionerrors.ErrValidation):
		return http.StatusUnprocessableEntity, "invalid request fields"
	case errors.As(err, &tooLow):
		return http.StatusBadRequest, tooLow.Error()
	case errors.Is(err, auctionerrors.ErrBidTooLow):
		return http.StatusBadRequest, "bid amount too low"
	case errors.Is(err, auctionerrors.ErrAuctionNotActive):
		return http.StatusBadRequest, "Auction is not active"
	case errors.Is(err, auctionerrors.ErrAuctionEnded):
		return http.StatusBadRequest, "Auction has ended"
	case errors.Is(err, auctionerrors.ErrInvalidRequest):
		return http.StatusBadRequest, "invalid request"
	case errors.Is(err, auctionerrors.ErrDuplicate):
		return http.StatusConflict, "resource already exists"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// ParseLimit reads the optional limit query value, defaulting to query.DefaultLimit
func ParseLimit(raw string) (int, error) {
	if raw == "" {
		return query.DefaultLimit, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: limit %q is not an integer", auctionerrors.ErrInvalidLimit, raw)
	}
	return limit, nil
}

// errInternal is the only detail a 5xx response carries
var errInternal = errors.New("internal server error")

// RespondError maps err, sends the error envelope and logs the failure
func RespondError(c *gin.Context, handlerName string, err error, ctx map[string]any) {
	status, message := MapErrorToHTTP(err)
	detail := err
	if status >= http.StatusInternalServerError {
		detail = errInternal
	}
	utils.JSONError(c, status, detail, message)

	fields := map[string]any{"handler": handlerName, "status": status, "error": err.Error()}
	for k, v := range ctx {
		fields[k] = v
	}
	if status >= http.StatusInternalServerError {
		utils.Error(handlerName+": request failed", fields)
		return
	}
	utils.Warn(handlerName+": request rejected", fields)
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
