package usecases

import (
	"strings"

	"room-rental-server/apperrors"
	"room-rental-server/entities"
	"room-rental-server/repositories"
)

// DefaultRecentSearches is how many history entries a suggestion list shows.
const DefaultRecentSearches = 10

// SearchHistoryUseCase records submitted searches and replays them as
// suggestions. Append-only; entries are never updated.
type SearchHistoryUseCase struct {
	HistoryRepo repositories.SearchHistoryRepository
}

func NewSearchHistoryUseCase(historyRepo repositories.SearchHistoryRepository) *SearchHistoryUseCase {
	return &SearchHistoryUseCase{HistoryRepo: historyRepo}
}

// RecordSearch appends a history entry. A blank query is a no-op, not an
// error, and returns a nil entry. Filter "all" is stored as the explicit
// no-filter marker so replaying the entry restores the unfiltered state.
func (uc *SearchHistoryUseCase) RecordSearch(userID uint, query, filter string) (*entities.SearchHistory, error) {
	if userID == 0 {
		return nil, apperrors.Validation("user id is required")
	}
	if strings.TrimSpace(query) == "" {
		return nil, nil
	}

	if filter == entities.FilterAll || filter == "" {
		filter = entities.FilterNone
	} else if !entities.ValidListingType(filter) {
		return nil, apperrors.Validation("filter must be a room type or all")
	}

	entry := &entities.SearchHistory{
		UserID: userID,
		Query:  query,
		Filter: filter,
	}
	if err := uc.HistoryRepo.Create(entry); err != nil {
		return nil, apperrors.FromStore(err, "", "")
	}
	return entry, nil
}

// RecentSearches returns the user's most recent entries, newest first.
func (uc *SearchHistoryUseCase) RecentSearches(userID uint, limit int) ([]entities.SearchHistory, error) {
	if userID == 0 {
		return nil, apperrors.Validation("user id is required")
	}
	if limit <= 0 || limit > DefaultRecentSearches {
		limit = DefaultRecentSearches
	}

	entries, err := uc.HistoryRepo.GetRecentByUserID(userID, limit)
	if err != nil {
		return nil, apperrors.FromStore(err, "", "")
	}
	return entries, nil
}
