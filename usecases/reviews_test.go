package usecases

import (
	"errors"
	"testing"

	"room-rental-server/apperrors"
	"room-rental-server/entities"
)

func TestAverageRating(t *testing.T) {
	t.Run("empty sequence averages to zero", func(t *testing.T) {
		if got := AverageRating(nil); got != 0 {
			t.Errorf("expected 0, got %v", got)
		}
	})

	t.Run("arithmetic mean", func(t *testing.T) {
		reviews := []entities.Review{{Rating: 5}, {Rating: 3}}
		if got := AverageRating(reviews); got != 4 {
			t.Errorf("expected 4, got %v", got)
		}
	})

	t.Run("non-integer mean", func(t *testing.T) {
		reviews := []entities.Review{{Rating: 5}, {Rating: 4}, {Rating: 4}}
		want := 13.0 / 3.0
		if got := AverageRating(reviews); got != want {
			t.Errorf("expected %v, got %v", want, got)
		}
	})
}

func newReviewFixture(t *testing.T) (*ReviewUseCase, *entities.User, *entities.Listing) {
	t.Helper()
	listingRepo := newFakeListingRepo()
	userRepo := newFakeUserRepo()
	reviewRepo := newFakeReviewRepo()

	owner := userRepo.mustUser("Dana", "dana@example.com", "555-0141")
	listingUC := NewListingUseCase(listingRepo, userRepo)
	listing, err := listingUC.CreateListing(owner.ID, CreateListingInput{
		Title: "Sunny Downtown Studio", Location: "Downtown", Type: entities.TypeStudio, Price: 1200, Capacity: 1,
	})
	if err != nil {
		t.Fatalf("create listing: %v", err)
	}
	return NewReviewUseCase(reviewRepo, listingRepo, userRepo), owner, listing
}

func TestSubmitReview(t *testing.T) {
	t.Run("rating outside 1..5 is rejected", func(t *testing.T) {
		uc, reviewer, listing := newReviewFixture(t)
		for _, rating := range []int{0, 6} {
			_, err := uc.SubmitReview(reviewer.ID, listing.ID, rating, "")
			if !errors.Is(err, apperrors.Validation("")) {
				t.Errorf("rating %d: expected validation error, got %v", rating, err)
			}
		}
	})

	t.Run("unknown listing is not found", func(t *testing.T) {
		uc, reviewer, _ := newReviewFixture(t)
		_, err := uc.SubmitReview(reviewer.ID, 999, 4, "")
		if !errors.Is(err, apperrors.NotFound("")) {
			t.Errorf("expected not-found, got %v", err)
		}
	})

	t.Run("second review for same pair conflicts", func(t *testing.T) {
		uc, reviewer, listing := newReviewFixture(t)
		if _, err := uc.SubmitReview(reviewer.ID, listing.ID, 5, "great room"); err != nil {
			t.Fatalf("first review: %v", err)
		}
		_, err := uc.SubmitReview(reviewer.ID, listing.ID, 3, "changed my mind")
		if !errors.Is(err, apperrors.Conflict("")) {
			t.Errorf("expected conflict, got %v", err)
		}
	})

	t.Run("created review carries the reviewer name", func(t *testing.T) {
		uc, reviewer, listing := newReviewFixture(t)
		review, err := uc.SubmitReview(reviewer.ID, listing.ID, 5, "great room")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if review.ReviewerName != reviewer.Name {
			t.Errorf("expected reviewer name %q, got %q", reviewer.Name, review.ReviewerName)
		}
	})
}

func TestGetReviews(t *testing.T) {
	uc, owner, listing := newReviewFixture(t)
	second := uc.UserRepo.(*fakeUserRepo).mustUser("Marcus", "marcus@example.com", "555-0178")

	if _, err := uc.SubmitReview(owner.ID, listing.ID, 5, "first"); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if _, err := uc.SubmitReview(second.ID, listing.ID, 3, "second"); err != nil {
		t.Fatalf("submit: %v", err)
	}

	summary, err := uc.GetReviews(listing.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("newest first with reviewer names", func(t *testing.T) {
		if len(summary.Reviews) != 2 {
			t.Fatalf("expected 2 reviews, got %d", len(summary.Reviews))
		}
		if summary.Reviews[0].Comment != "second" || summary.Reviews[1].Comment != "first" {
			t.Errorf("expected newest first, got %q then %q", summary.Reviews[0].Comment, summary.Reviews[1].Comment)
		}
		if summary.Reviews[0].ReviewerName != "Marcus" || summary.Reviews[1].ReviewerName != "Dana" {
			t.Errorf("reviewer names wrong: %q, %q", summary.Reviews[0].ReviewerName, summary.Reviews[1].ReviewerName)
		}
	})

	t.Run("aggregate stats", func(t *testing.T) {
		if summary.AverageRating != 4 {
			t.Errorf("expected average 4, got %v", summary.AverageRating)
		}
		if summary.TotalReviews != 2 {
			t.Errorf("expected 2 total, got %d", summary.TotalReviews)
		}
	})

	t.Run("listing without reviews has zero average", func(t *testing.T) {
		listingUC := NewListingUseCase(uc.ListingRepo, uc.UserRepo)
		empty, err := listingUC.CreateListing(owner.ID, CreateListingInput{
			Title: "Quiet House", Location: "Suburbs", Type: entities.TypeHouse, Price: 2000,
		})
		if err != nil {
			t.Fatalf("create listing: %v", err)
		}
		summary, err := uc.GetReviews(empty.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if summary.AverageRating != 0 || summary.TotalReviews != 0 {
			t.Errorf("expected zero stats, got %v/%d", summary.AverageRating, summary.TotalReviews)
		}
	})
}
