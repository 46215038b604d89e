package entities

import "time"

// FilterNone is stored when a search ran without a type filter. It is kept
// distinct from the four room type literals so replaying the entry restores
// the "all" state.
const FilterNone = ""

// SearchHistory is one submitted search by a signed-in user. Entries are
// append-only; only the most recent few are ever read back.
type SearchHistory struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index:idx_search_history_user" json:"userId"`
	Query     string    `gorm:"not null" json:"query"`
	Filter    string    `json:"filter"` // room type, or FilterNone
	CreatedAt time.Time `json:"createdAt"`
}

func (SearchHistory) TableName() string {
	return "search_histories"
}
