package httpHandler

import (
	"net/http"

	"room-rental-server/apperrors"
	"room-rental-server/middleware"
	"room-rental-server/usecases"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	useCase *usecases.UserUseCase
}

func NewProfileHandler(useCase *usecases.UserUseCase) *ProfileHandler {
	return &ProfileHandler{
		useCase: useCase,
	}
}

// GetProfile handles GET /api/v1/profile
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	user, err := h.useCase.GetProfile(middleware.UserID(c))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": user,
	})
}

// UpdateProfile handles PUT /api/v1/profile
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var in usecases.UpdateProfileInput
	if err := c.ShouldBindJSON(&in); err != nil {
		writeError(c, apperrors.Validation("invalid request body"))
		return
	}

	user, err := h.useCase.UpdateProfile(middleware.UserID(c), in)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile updated successfully",
		"data":    user,
	})
}
