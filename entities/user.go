package entities

import "time"

// User is an account in the marketplace. Anyone can rent; accounts with
// IsOwner set may also publish listings.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	Email        string    `gorm:"unique;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Phone        string    `json:"phone"`
	Address      string    `json:"address"`
	IsOwner      bool      `json:"isOwner"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// OwnerSummary is the public contact slice of a User embedded in listing
// responses. The full User record is never exposed there.
type OwnerSummary struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Summary extracts the owner contact fields.
func (u *User) Summary() *OwnerSummary {
	return &OwnerSummary{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Phone: u.Phone,
	}
}
