package repositories

import "room-rental-server/entities"

// Repositories return raw storage errors; use cases translate them into the
// application error taxonomy.

type ListingRepository interface {
	Create(listing *entities.Listing) error
	GetByID(id uint) (*entities.Listing, error)
	GetByIDs(ids []uint) ([]entities.Listing, error)
	GetAll() ([]entities.Listing, error)
	GetByOwnerID(ownerID uint) ([]entities.Listing, error)
	GetAvailable(location, listingType string) ([]entities.Listing, error)
	Update(listing *entities.Listing) error
	Delete(id uint) error
}

type UserRepository interface {
	Create(user *entities.User) error
	GetByID(id uint) (*entities.User, error)
	GetByEmail(email string) (*entities.User, error)
	GetNamesByIDs(ids []uint) (map[uint]string, error)
	Update(user *entities.User) error
}

type ReviewRepository interface {
	Create(review *entities.Review) error
	GetByListingID(listingID uint) ([]entities.Review, error)
	ExistsByUserAndListing(userID, listingID uint) (bool, error)
}

type FavoriteRepository interface {
	Create(favorite *entities.Favorite) error
	GetByUserID(userID uint) ([]entities.Favorite, error)
	Delete(userID, listingID uint) error
}

type SearchHistoryRepository interface {
	Create(entry *entities.SearchHistory) error
	GetRecentByUserID(userID uint, limit int) ([]entities.SearchHistory, error)
}
