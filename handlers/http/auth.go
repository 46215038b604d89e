package httpHandler

import (
	"net/http"

	"room-rental-server/apperrors"
	"room-rental-server/usecases"
	"room-rental-server/utils"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	useCase *usecases.UserUseCase
}

func NewAuthHandler(useCase *usecases.UserUseCase) *AuthHandler {
	return &AuthHandler{
		useCase: useCase,
	}
}

// Register handles POST /api/v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var in usecases.RegisterInput
	if err := c.ShouldBindJSON(&in); err != nil {
		writeError(c, apperrors.Validation("invalid request body"))
		return
	}

	user, err := h.useCase.Register(in)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Account created successfully",
		"data":    user,
	})
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, apperrors.Validation("email and password are required"))
		return
	}

	user, err := h.useCase.Login(req.Email, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}

	token, err := utils.GenerateToken(user.ID)
	if err != nil {
		writeError(c, apperrors.Store("failed to issue token", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"data":  user,
	})
}
