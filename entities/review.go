package entities

import "time"

// Review is one user's rating of a listing. A user may review a given
// listing at most once; the unique index enforces the pair.
type Review struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_reviews_user_listing" json:"userId"`
	ListingID uint      `gorm:"not null;uniqueIndex:idx_reviews_user_listing" json:"listingId"`
	Rating    int       `gorm:"not null" json:"rating"` // 1..5
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	ReviewerName string `gorm:"-" json:"reviewerName,omitempty"`
}
