package repositories

import (
	"room-rental-server/db"
	"room-rental-server/entities"

	"gorm.io/gorm"
)

type favoritePgRepository struct {
	db db.Database
}

func NewFavoritePgRepository(database db.Database) FavoriteRepository {
	return &favoritePgRepository{db: database}
}

func (r *favoritePgRepository) Create(favorite *entities.Favorite) error {
	return r.db.GetDB().Create(favorite).Error
}

func (r *favoritePgRepository) GetByUserID(userID uint) ([]entities.Favorite, error) {
	var favorites []entities.Favorite
	err := r.db.GetDB().Where("user_id = ?", userID).Order("created_at DESC").Find(&favorites).Error
	return favorites, err
}

func (r *favoritePgRepository) Delete(userID, listingID uint) error {
	res := r.db.GetDB().Where("user_id = ? AND listing_id = ?", userID, listingID).Delete(&entities.Favorite{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
