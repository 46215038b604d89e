package httpHandler

import (
	"net/http"
	"strconv"

	"room-rental-server/apperrors"
	"room-rental-server/middleware"
	"room-rental-server/usecases"

	"github.com/gin-gonic/gin"
)

type ListingHandler struct {
	useCase *usecases.ListingUseCase
}

func NewListingHandler(useCase *usecases.ListingUseCase) *ListingHandler {
	return &ListingHandler{
		useCase: useCase,
	}
}

// GetAvailableListings handles GET /api/v1/listings
func (h *ListingHandler) GetAvailableListings(c *gin.Context) {
	listings, err := h.useCase.ListAvailable(c.Query("location"), c.Query("type"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  listings,
		"count": len(listings),
	})
}

// GetListing handles GET /api/v1/listings/:id
func (h *ListingHandler) GetListing(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		writeError(c, err)
		return
	}

	listing, err := h.useCase.GetListing(id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": listing,
	})
}

// CreateListing handles POST /api/v1/listings
func (h *ListingHandler) CreateListing(c *gin.Context) {
	var in usecases.CreateListingInput
	if err := c.ShouldBindJSON(&in); err != nil {
		writeError(c, apperrors.Validation("invalid request body"))
		return
	}

	listing, err := h.useCase.CreateListing(middleware.UserID(c), in)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Listing created successfully",
		"data":    listing,
	})
}

// UpdateListing handles PUT /api/v1/listings/:id
func (h *ListingHandler) UpdateListing(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		writeError(c, err)
		return
	}

	var in usecases.UpdateListingInput
	if err := c.ShouldBindJSON(&in); err != nil {
		writeError(c, apperrors.Validation("invalid request body"))
		return
	}

	listing, err := h.useCase.UpdateListing(id, middleware.UserID(c), in)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Listing updated successfully",
		"data":    listing,
	})
}

// DeleteListing handles DELETE /api/v1/listings/:id
func (h *ListingHandler) DeleteListing(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		writeError(c, err)
		return
	}

	if err := h.useCase.DeleteListing(id, middleware.UserID(c)); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Listing deleted successfully",
	})
}

// GetSimilarListings handles GET /api/v1/listings/:id/similar
func (h *ListingHandler) GetSimilarListings(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		writeError(c, err)
		return
	}

	limit := usecases.DefaultSimilarLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			writeError(c, apperrors.Validation("limit must be a positive integer"))
			return
		}
		limit = parsed
	}

	listings, err := h.useCase.FindSimilar(id, limit)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  listings,
		"count": len(listings),
	})
}

// GetOwnerListings handles GET /api/v1/dashboard/listings
func (h *ListingHandler) GetOwnerListings(c *gin.Context) {
	ownerID, err := idQuery(c, "ownerId")
	if err != nil {
		writeError(c, err)
		return
	}

	listings, err := h.useCase.ListByOwner(ownerID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  listings,
		"count": len(listings),
	})
}
