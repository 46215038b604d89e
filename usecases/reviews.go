package usecases

import (
	"room-rental-server/apperrors"
	"room-rental-server/entities"
	"room-rental-server/repositories"
)

// ReviewUseCase submits reviews and aggregates rating statistics.
type ReviewUseCase struct {
	ReviewRepo  repositories.ReviewRepository
	ListingRepo repositories.ListingRepository
	UserRepo    repositories.UserRepository
}

func NewReviewUseCase(reviewRepo repositories.ReviewRepository, listingRepo repositories.ListingRepository, userRepo repositories.UserRepository) *ReviewUseCase {
	return &ReviewUseCase{
		ReviewRepo:  reviewRepo,
		ListingRepo: listingRepo,
		UserRepo:    userRepo,
	}
}

// ReviewSummary is what a listing page renders: the reviews newest first
// plus their aggregate stats.
type ReviewSummary struct {
	Reviews       []entities.Review `json:"reviews"`
	AverageRating float64           `json:"averageRating"`
	TotalReviews  int               `json:"totalReviews"`
}

// AverageRating is the arithmetic mean of the ratings. An empty sequence
// averages to 0, never NaN.
func AverageRating(reviews []entities.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	return float64(sum) / float64(len(reviews))
}

// GetReviews returns a listing's reviews newest first, each carrying the
// reviewer's display name, together with the aggregate stats.
func (uc *ReviewUseCase) GetReviews(listingID uint) (*ReviewSummary, error) {
	if listingID == 0 {
		return nil, apperrors.Validation("listing id is required")
	}

	reviews, err := uc.ReviewRepo.GetByListingID(listingID)
	if err != nil {
		return nil, apperrors.FromStore(err, "", "")
	}

	userIDs := make([]uint, 0, len(reviews))
	for _, r := range reviews {
		userIDs = append(userIDs, r.UserID)
	}
	names, err := uc.UserRepo.GetNamesByIDs(userIDs)
	if err != nil {
		return nil, apperrors.FromStore(err, "", "")
	}
	for i := range reviews {
		reviews[i].ReviewerName = names[reviews[i].UserID]
	}

	return &ReviewSummary{
		Reviews:       reviews,
		AverageRating: AverageRating(reviews),
		TotalReviews:  len(reviews),
	}, nil
}

// SubmitReview creates a review after checking the rating range, the
// listing's existence and the one-review-per-user rule. A concurrent
// duplicate that slips past the pre-check still surfaces as a conflict via
// the store's unique index.
func (uc *ReviewUseCase) SubmitReview(userID, listingID uint, rating int, comment string) (*entities.Review, error) {
	if userID == 0 || listingID == 0 {
		return nil, apperrors.Validation("user id and listing id are required")
	}
	if rating < 1 || rating > 5 {
		return nil, apperrors.Validation("rating must be between 1 and 5")
	}

	if _, err := uc.ListingRepo.GetByID(listingID); err != nil {
		return nil, apperrors.FromStore(err, "listing not found", "")
	}

	exists, err := uc.ReviewRepo.ExistsByUserAndListing(userID, listingID)
	if err != nil {
		return nil, apperrors.FromStore(err, "", "")
	}
	if exists {
		return nil, apperrors.Conflict("you already reviewed this listing")
	}

	review := &entities.Review{
		UserID:    userID,
		ListingID: listingID,
		Rating:    rating,
		Comment:   comment,
	}
	if err := uc.ReviewRepo.Create(review); err != nil {
		return nil, apperrors.FromStore(err, "listing not found", "you already reviewed this listing")
	}

	if reviewer, err := uc.UserRepo.GetByID(userID); err == nil {
		review.ReviewerName = reviewer.Name
	}
	return review, nil
}
