package repositories

import (
	"errors"

	"room-rental-server/db"
	"room-rental-server/entities"

	"gorm.io/gorm"
)

type reviewPgRepository struct {
	db db.Database
}

func NewReviewPgRepository(database db.Database) ReviewRepository {
	return &reviewPgRepository{db: database}
}

func (r *reviewPgRepository) Create(review *entities.Review) error {
	return r.db.GetDB().Create(review).Error
}

func (r *reviewPgRepository) GetByListingID(listingID uint) ([]entities.Review, error) {
	var reviews []entities.Review
	err := r.db.GetDB().Where("listing_id = ?", listingID).Order("created_at DESC").Find(&reviews).Error
	return reviews, err
}

func (r *reviewPgRepository) ExistsByUserAndListing(userID, listingID uint) (bool, error) {
	var review entities.Review
	err := r.db.GetDB().Where("user_id = ? AND listing_id = ?", userID, listingID).First(&review).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
