package repositories

import (
	"room-rental-server/db"
	"room-rental-server/entities"
)

type listingPgRepository struct {
	db db.Database
}

func NewListingPgRepository(database db.Database) ListingRepository {
	return &listingPgRepository{db: database}
}

func (r *listingPgRepository) Create(listing *entities.Listing) error {
	return r.db.GetDB().Create(listing).Error
}

func (r *listingPgRepository) GetByID(id uint) (*entities.Listing, error) {
	var listing entities.Listing
	err := r.db.GetDB().Where("id = ?", id).First(&listing).Error
	if err != nil {
		return nil, err
	}
	return &listing, nil
}

func (r *listingPgRepository) GetByIDs(ids []uint) ([]entities.Listing, error) {
	var listings []entities.Listing
	if len(ids) == 0 {
		return listings, nil
	}
	err := r.db.GetDB().Where("id IN ?", ids).Find(&listings).Error
	return listings, err
}

func (r *listingPgRepository) GetAll() ([]entities.Listing, error) {
	var listings []entities.Listing
	err := r.db.GetDB().Order("id ASC").Find(&listings).Error
	return listings, err
}

func (r *listingPgRepository) GetByOwnerID(ownerID uint) ([]entities.Listing, error) {
	var listings []entities.Listing
	err := r.db.GetDB().Where("owner_id = ?", ownerID).Order("created_at DESC").Find(&listings).Error
	return listings, err
}

func (r *listingPgRepository) GetAvailable(location, listingType string) ([]entities.Listing, error) {
	q := r.db.GetDB().Where("available = ?", true)
	if location != "" {
		q = q.Where("location ILIKE ?", "%"+location+"%")
	}
	if listingType != "" {
		q = q.Where("type = ?", listingType)
	}

	var listings []entities.Listing
	err := q.Order("created_at DESC").Find(&listings).Error
	return listings, err
}

func (r *listingPgRepository) Update(listing *entities.Listing) error {
	return r.db.GetDB().Save(listing).Error
}

func (r *listingPgRepository) Delete(id uint) error {
	return r.db.GetDB().Where("id = ?", id).Delete(&entities.Listing{}).Error
}
