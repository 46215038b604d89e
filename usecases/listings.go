package usecases

import (
	"strings"

	"room-rental-server/apperrors"
	"room-rental-server/entities"
	"room-rental-server/repositories"
)

// ListingUseCase owns catalog semantics: create/update/get/list plus the
// similarity recommendation built on top of the catalog.
type ListingUseCase struct {
	ListingRepo repositories.ListingRepository
	UserRepo    repositories.UserRepository
}

func NewListingUseCase(listingRepo repositories.ListingRepository, userRepo repositories.UserRepository) *ListingUseCase {
	return &ListingUseCase{
		ListingRepo: listingRepo,
		UserRepo:    userRepo,
	}
}

type CreateListingInput struct {
	Title             string   `json:"title"`
	Description       string   `json:"description"`
	Location          string   `json:"location"`
	Type              string   `json:"type"`
	Price             float64  `json:"price"`
	Capacity          int      `json:"capacity"`
	MinLease          int      `json:"minLease"`
	Image             string   `json:"image"`
	Furnished         bool     `json:"furnished"`
	UtilitiesIncluded bool     `json:"utilitiesIncluded"`
	Amenities         []string `json:"amenities"`
}

// UpdateListingInput carries a partial update; nil fields keep their prior
// values. Pointers are needed so false/zero can be set explicitly.
type UpdateListingInput struct {
	Title             *string  `json:"title"`
	Description       *string  `json:"description"`
	Location          *string  `json:"location"`
	Type              *string  `json:"type"`
	Price             *float64 `json:"price"`
	Capacity          *int     `json:"capacity"`
	MinLease          *int     `json:"minLease"`
	Image             *string  `json:"image"`
	Available         *bool    `json:"available"`
	Furnished         *bool    `json:"furnished"`
	UtilitiesIncluded *bool    `json:"utilitiesIncluded"`
	Amenities         []string `json:"amenities"`
}

func validAmenities(amenities []string) bool {
	for _, a := range amenities {
		if strings.TrimSpace(a) == "" {
			return false
		}
	}
	return true
}

// CreateListing validates the input, verifies the owner exists and stores a
// new listing. New listings start out available.
func (uc *ListingUseCase) CreateListing(ownerID uint, in CreateListingInput) (*entities.Listing, error) {
	if ownerID == 0 {
		return nil, apperrors.Validation("owner id is required")
	}
	if strings.TrimSpace(in.Title) == "" {
		return nil, apperrors.Validation("title is required")
	}
	if strings.TrimSpace(in.Location) == "" {
		return nil, apperrors.Validation("location is required")
	}
	if !entities.ValidListingType(in.Type) {
		return nil, apperrors.Validation("type must be one of apartment, house, studio, shared")
	}
	if in.Price < 0 || in.Capacity < 0 || in.MinLease < 0 {
		return nil, apperrors.Validation("price, capacity and minLease must be non-negative")
	}
	if !validAmenities(in.Amenities) {
		return nil, apperrors.Validation("amenities must not contain empty entries")
	}

	owner, err := uc.UserRepo.GetByID(ownerID)
	if err != nil {
		return nil, apperrors.FromStore(err, "owner not found", "")
	}

	listing := &entities.Listing{
		OwnerID:           ownerID,
		Title:             in.Title,
		Description:       in.Description,
		Location:          in.Location,
		Type:              in.Type,
		Price:             in.Price,
		Capacity:          in.Capacity,
		MinLease:          in.MinLease,
		Image:             in.Image,
		Available:         true,
		Furnished:         in.Furnished,
		UtilitiesIncluded: in.UtilitiesIncluded,
		Amenities:         in.Amenities,
	}
	if err := uc.ListingRepo.Create(listing); err != nil {
		return nil, apperrors.FromStore(err, "listing not found", "listing already exists")
	}

	listing.Owner = owner.Summary()
	return listing, nil
}

// UpdateListing applies a partial update. Only the listing's owner may
// change it.
func (uc *ListingUseCase) UpdateListing(id, userID uint, in UpdateListingInput) (*entities.Listing, error) {
	if id == 0 {
		return nil, apperrors.Validation("listing id is required")
	}

	existing, err := uc.ListingRepo.GetByID(id)
	if err != nil {
		return nil, apperrors.FromStore(err, "listing not found", "")
	}
	if userID != 0 && existing.OwnerID != userID {
		return nil, apperrors.Unauthorized("only the owner can update this listing")
	}

	if in.Title != nil {
		if strings.TrimSpace(*in.Title) == "" {
			return nil, apperrors.Validation("title must not be empty")
		}
		existing.Title = *in.Title
	}
	if in.Description != nil {
		existing.Description = *in.Description
	}
	if in.Location != nil {
		if strings.TrimSpace(*in.Location) == "" {
			return nil, apperrors.Validation("location must not be empty")
		}
		existing.Location = *in.Location
	}
	if in.Type != nil {
		if !entities.ValidListingType(*in.Type) {
			return nil, apperrors.Validation("type must be one of apartment, house, studio, shared")
		}
		existing.Type = *in.Type
	}
	if in.Price != nil {
		if *in.Price < 0 {
			return nil, apperrors.Validation("price must be non-negative")
		}
		existing.Price = *in.Price
	}
	if in.Capacity != nil {
		if *in.Capacity < 0 {
			return nil, apperrors.Validation("capacity must be non-negative")
		}
		existing.Capacity = *in.Capacity
	}
	if in.MinLease != nil {
		if *in.MinLease < 0 {
			return nil, apperrors.Validation("minLease must be non-negative")
		}
		existing.MinLease = *in.MinLease
	}
	if in.Image != nil {
		existing.Image = *in.Image
	}
	if in.Available != nil {
		existing.Available = *in.Available
	}
	if in.Furnished != nil {
		existing.Furnished = *in.Furnished
	}
	if in.UtilitiesIncluded != nil {
		existing.UtilitiesIncluded = *in.UtilitiesIncluded
	}
	if in.Amenities != nil {
		if !validAmenities(in.Amenities) {
			return nil, apperrors.Validation("amenities must not contain empty entries")
		}
		existing.Amenities = in.Amenities
	}

	if err := uc.ListingRepo.Update(existing); err != nil {
		return nil, apperrors.FromStore(err, "listing not found", "")
	}
	return existing, nil
}

// GetListing returns a listing with its owner contact summary attached.
func (uc *ListingUseCase) GetListing(id uint) (*entities.Listing, error) {
	if id == 0 {
		return nil, apperrors.Validation("listing id is required")
	}

	listing, err := uc.ListingRepo.GetByID(id)
	if err != nil {
		return nil, apperrors.FromStore(err, "listing not found", "")
	}

	owner, err := uc.UserRepo.GetByID(listing.OwnerID)
	if err != nil {
		return nil, apperrors.FromStore(err, "owner not found", "")
	}
	listing.Owner = owner.Summary()
	return listing, nil
}

// ListByOwner returns all of an owner's listings, newest first, including
// unavailable ones.
func (uc *ListingUseCase) ListByOwner(ownerID uint) ([]entities.Listing, error) {
	if ownerID == 0 {
		return nil, apperrors.Validation("owner id is required")
	}
	listings, err := uc.ListingRepo.GetByOwnerID(ownerID)
	if err != nil {
		return nil, apperrors.FromStore(err, "owner not found", "")
	}
	return listings, nil
}

// ListAvailable returns available listings, newest first, optionally
// narrowed by a location substring and an exact room type.
func (uc *ListingUseCase) ListAvailable(location, listingType string) ([]entities.Listing, error) {
	if listingType == entities.FilterAll {
		listingType = ""
	}
	listings, err := uc.ListingRepo.GetAvailable(location, listingType)
	if err != nil {
		return nil, apperrors.FromStore(err, "", "")
	}
	return listings, nil
}

// DeleteListing removes a listing. Only the listing's owner may delete it.
func (uc *ListingUseCase) DeleteListing(id, userID uint) error {
	if id == 0 {
		return apperrors.Validation("listing id is required")
	}

	existing, err := uc.ListingRepo.GetByID(id)
	if err != nil {
		return apperrors.FromStore(err, "listing not found", "")
	}
	if userID != 0 && existing.OwnerID != userID {
		return apperrors.Unauthorized("only the owner can delete this listing")
	}

	if err := uc.ListingRepo.Delete(id); err != nil {
		return apperrors.FromStore(err, "listing not found", "")
	}
	return nil
}
