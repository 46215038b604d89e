package entities

import "time"

// Room types a listing may advertise.
const (
	TypeApartment = "apartment"
	TypeHouse     = "house"
	TypeStudio    = "studio"
	TypeShared    = "shared"
)

// FilterAll is the search filter value meaning "any type".
const FilterAll = "all"

// ValidListingType reports whether t is one of the four room types.
func ValidListingType(t string) bool {
	switch t {
	case TypeApartment, TypeHouse, TypeStudio, TypeShared:
		return true
	}
	return false
}

type Listing struct {
	ID                uint          `gorm:"primaryKey" json:"id"`
	OwnerID           uint          `gorm:"index;not null" json:"ownerId"`
	Title             string        `gorm:"not null" json:"title"`
	Description       string        `json:"description"`
	Location          string        `gorm:"not null" json:"location"`
	Type              string        `gorm:"not null" json:"type"` // apartment/house/studio/shared
	Price             float64       `json:"price"`
	Capacity          int           `json:"capacity"`
	MinLease          int           `json:"minLease"` // months
	Image             string        `json:"image"`
	Available         bool          `gorm:"default:true" json:"available"`
	Furnished         bool          `json:"furnished"`
	UtilitiesIncluded bool          `json:"utilitiesIncluded"`
	Amenities         []string      `gorm:"serializer:json" json:"amenities"`
	CreatedAt         time.Time     `json:"createdAt"`
	UpdatedAt         time.Time     `json:"updatedAt"`
	Owner             *OwnerSummary `gorm:"-" json:"owner,omitempty"`
}
