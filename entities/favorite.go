package entities

import "time"

// Favorite marks a listing saved by a user. One per (user, listing) pair.
type Favorite struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_favorites_user_listing" json:"userId"`
	ListingID uint      `gorm:"not null;uniqueIndex:idx_favorites_user_listing" json:"listingId"`
	CreatedAt time.Time `json:"createdAt"`

	Listing *Listing `gorm:"-" json:"listing,omitempty"`
}
