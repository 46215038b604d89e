package httpHandler

import (
	"net/http"

	"room-rental-server/apperrors"
	"room-rental-server/usecases"

	"github.com/gin-gonic/gin"
)

type FavoriteHandler struct {
	useCase *usecases.FavoriteUseCase
}

func NewFavoriteHandler(useCase *usecases.FavoriteUseCase) *FavoriteHandler {
	return &FavoriteHandler{
		useCase: useCase,
	}
}

// GetFavorites handles GET /api/v1/favorites?userId=
func (h *FavoriteHandler) GetFavorites(c *gin.Context) {
	userID, err := idQuery(c, "userId")
	if err != nil {
		writeError(c, err)
		return
	}

	favorites, err := h.useCase.ListFavorites(userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  favorites,
		"count": len(favorites),
	})
}

type favoriteRequest struct {
	UserID    uint `json:"userId"`
	ListingID uint `json:"listingId"`
}

// AddFavorite handles POST /api/v1/favorites
func (h *FavoriteHandler) AddFavorite(c *gin.Context) {
	var req favoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, apperrors.Validation("invalid request body"))
		return
	}

	favorite, err := h.useCase.AddFavorite(req.UserID, req.ListingID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Favorite added successfully",
		"data":    favorite,
	})
}

// RemoveFavorite handles DELETE /api/v1/favorites?userId=&listingId=
func (h *FavoriteHandler) RemoveFavorite(c *gin.Context) {
	userID, err := idQuery(c, "userId")
	if err != nil {
		writeError(c, err)
		return
	}
	listingID, err := idQuery(c, "listingId")
	if err != nil {
		writeError(c, err)
		return
	}

	if err := h.useCase.RemoveFavorite(userID, listingID); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
	})
}
