package httpHandler

import (
	"net/http"

	"room-rental-server/apperrors"
	"room-rental-server/usecases"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	useCase *usecases.ReviewUseCase
}

func NewReviewHandler(useCase *usecases.ReviewUseCase) *ReviewHandler {
	return &ReviewHandler{
		useCase: useCase,
	}
}

// GetReviews handles GET /api/v1/reviews?listingId=
func (h *ReviewHandler) GetReviews(c *gin.Context) {
	listingID, err := idQuery(c, "listingId")
	if err != nil {
		writeError(c, err)
		return
	}

	summary, err := h.useCase.GetReviews(listingID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

type submitReviewRequest struct {
	UserID    uint   `json:"userId"`
	ListingID uint   `json:"listingId"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
}

// SubmitReview handles POST /api/v1/reviews
func (h *ReviewHandler) SubmitReview(c *gin.Context) {
	var req submitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, apperrors.Validation("invalid request body"))
		return
	}

	review, err := h.useCase.SubmitReview(req.UserID, req.ListingID, req.Rating, req.Comment)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Review submitted successfully",
		"data":    review,
	})
}
