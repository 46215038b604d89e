package usecases

import (
	"room-rental-server/apperrors"
	"room-rental-server/entities"
	"room-rental-server/repositories"
)

// FavoriteUseCase manages a user's saved listings.
type FavoriteUseCase struct {
	FavoriteRepo repositories.FavoriteRepository
	ListingRepo  repositories.ListingRepository
}

func NewFavoriteUseCase(favoriteRepo repositories.FavoriteRepository, listingRepo repositories.ListingRepository) *FavoriteUseCase {
	return &FavoriteUseCase{
		FavoriteRepo: favoriteRepo,
		ListingRepo:  listingRepo,
	}
}

// ListFavorites returns the user's favorites newest first, each with its
// listing embedded. Favorites whose listing has since been removed are
// skipped.
func (uc *FavoriteUseCase) ListFavorites(userID uint) ([]entities.Favorite, error) {
	if userID == 0 {
		return nil, apperrors.Validation("user id is required")
	}

	favorites, err := uc.FavoriteRepo.GetByUserID(userID)
	if err != nil {
		return nil, apperrors.FromStore(err, "", "")
	}

	listingIDs := make([]uint, 0, len(favorites))
	for _, f := range favorites {
		listingIDs = append(listingIDs, f.ListingID)
	}
	listings, err := uc.ListingRepo.GetByIDs(listingIDs)
	if err != nil {
		return nil, apperrors.FromStore(err, "", "")
	}
	byID := make(map[uint]*entities.Listing, len(listings))
	for i := range listings {
		byID[listings[i].ID] = &listings[i]
	}

	out := make([]entities.Favorite, 0, len(favorites))
	for _, f := range favorites {
		listing, ok := byID[f.ListingID]
		if !ok {
			continue
		}
		f.Listing = listing
		out = append(out, f)
	}
	return out, nil
}

// AddFavorite saves a listing for the user. Saving the same listing twice
// is a conflict.
func (uc *FavoriteUseCase) AddFavorite(userID, listingID uint) (*entities.Favorite, error) {
	if userID == 0 || listingID == 0 {
		return nil, apperrors.Validation("user id and listing id are required")
	}

	listing, err := uc.ListingRepo.GetByID(listingID)
	if err != nil {
		return nil, apperrors.FromStore(err, "listing not found", "")
	}

	favorite := &entities.Favorite{
		UserID:    userID,
		ListingID: listingID,
	}
	if err := uc.FavoriteRepo.Create(favorite); err != nil {
		return nil, apperrors.FromStore(err, "listing not found", "already favorited")
	}

	favorite.Listing = listing
	return favorite, nil
}

// RemoveFavorite deletes the (user, listing) favorite; removing one that
// does not exist is a not-found error.
func (uc *FavoriteUseCase) RemoveFavorite(userID, listingID uint) error {
	if userID == 0 || listingID == 0 {
		return apperrors.Validation("user id and listing id are required")
	}

	if err := uc.FavoriteRepo.Delete(userID, listingID); err != nil {
		return apperrors.FromStore(err, "favorite not found", "")
	}
	return nil
}
