package httpHandler

import (
	"net/http"

	"room-rental-server/apperrors"
	"room-rental-server/usecases"

	"github.com/gin-gonic/gin"
)

type SearchHistoryHandler struct {
	useCase *usecases.SearchHistoryUseCase
}

func NewSearchHistoryHandler(useCase *usecases.SearchHistoryUseCase) *SearchHistoryHandler {
	return &SearchHistoryHandler{
		useCase: useCase,
	}
}

// GetRecentSearches handles GET /api/v1/search-history?userId=
func (h *SearchHistoryHandler) GetRecentSearches(c *gin.Context) {
	userID, err := idQuery(c, "userId")
	if err != nil {
		writeError(c, err)
		return
	}

	entries, err := h.useCase.RecentSearches(userID, usecases.DefaultRecentSearches)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  entries,
		"count": len(entries),
	})
}

type recordSearchRequest struct {
	UserID uint   `json:"userId"`
	Query  string `json:"query"`
	Filter string `json:"filter"`
}

// RecordSearch handles POST /api/v1/search-history
func (h *SearchHistoryHandler) RecordSearch(c *gin.Context) {
	var req recordSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, apperrors.Validation("invalid request body"))
		return
	}

	entry, err := h.useCase.RecordSearch(req.UserID, req.Query, req.Filter)
	if err != nil {
		writeError(c, err)
		return
	}

	// Blank queries are deliberately not recorded.
	if entry == nil {
		c.JSON(http.StatusOK, gin.H{
			"message": "Nothing to record",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Search recorded successfully",
		"data":    entry,
	})
}
