package usecases

import (
	"sort"

	"room-rental-server/apperrors"
	"room-rental-server/entities"
)

// DefaultSimilarLimit bounds how many related listings a page view shows.
const DefaultSimilarLimit = 3

// similarPriceBand is the inclusive price distance that still counts as
// "similarly priced".
const similarPriceBand = 100

// SimilarTo selects up to limit listings related to anchor: same type, same
// location (exact) or price within the band. The anchor itself is never
// included. Candidates are taken in ascending id order so the result is
// deterministic regardless of how listings was ordered.
func SimilarTo(anchor *entities.Listing, listings []entities.Listing, limit int) []entities.Listing {
	if limit <= 0 {
		limit = DefaultSimilarLimit
	}

	candidates := make([]entities.Listing, len(listings))
	copy(candidates, listings)
	sort.Slice(candidates, func(i, j int) bool { return candidates[i].ID < candidates[j].ID })

	out := make([]entities.Listing, 0, limit)
	for _, l := range candidates {
		if l.ID == anchor.ID {
			continue
		}
		sameType := l.Type == anchor.Type
		sameLocation := l.Location == anchor.Location
		inPriceBand := l.Price >= anchor.Price-similarPriceBand && l.Price <= anchor.Price+similarPriceBand
		if !sameType && !sameLocation && !inPriceBand {
			continue
		}
		out = append(out, l)
		if len(out) == limit {
			break
		}
	}
	return out
}

// FindSimilar loads the anchor listing and recommends related listings from
// the catalog.
func (uc *ListingUseCase) FindSimilar(listingID uint, limit int) ([]entities.Listing, error) {
	if listingID == 0 {
		return nil, apperrors.Validation("listing id is required")
	}

	anchor, err := uc.ListingRepo.GetByID(listingID)
	if err != nil {
		return nil, apperrors.FromStore(err, "listing not found", "")
	}

	all, err := uc.ListingRepo.GetAll()
	if err != nil {
		return nil, apperrors.FromStore(err, "", "")
	}
	return SimilarTo(anchor, all, limit), nil
}
