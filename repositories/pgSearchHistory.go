package repositories

import (
	"room-rental-server/db"
	"room-rental-server/entities"
)

type searchHistoryPgRepository struct {
	db db.Database
}

func NewSearchHistoryPgRepository(database db.Database) SearchHistoryRepository {
	return &searchHistoryPgRepository{db: database}
}

func (r *searchHistoryPgRepository) Create(entry *entities.SearchHistory) error {
	return r.db.GetDB().Create(entry).Error
}

func (r *searchHistoryPgRepository) GetRecentByUserID(userID uint, limit int) ([]entities.SearchHistory, error) {
	var entries []entities.SearchHistory
	err := r.db.GetDB().Where("user_id = ?", userID).Order("created_at DESC").Limit(limit).Find(&entries).Error
	return entries, err
}
