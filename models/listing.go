package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PropertyTypes are the accepted values for Listing.PropertyType.
var PropertyTypes = []string{
	"apartment", "house", "villa", "studio",
	"penthouse", "townhouse", "cottage", "homestay",
}

func IsValidPropertyType(t string) bool {
	for _, pt := range PropertyTypes {
		if pt == t {
			return true
		}
	}
	return false
}

type Location struct {
	Address   string   `gorm:"size:255" json:"address"`
	City      string   `gorm:"size:128" json:"city"`
	State     string   `gorm:"size:128" json:"state"`
	Country   string   `gorm:"size:128" json:"country"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

type Listing struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Title       string  `gorm:"size:255" json:"title"`
	Description string  `gorm:"type:text" json:"description"`
	Price       float64 `json:"price"`

	Location Location `gorm:"embedded;embeddedPrefix:location_" json:"location"`

	Images    datatypes.JSON `json:"images,omitempty"`
	Amenities datatypes.JSON `json:"amenities,omitempty"`

	PropertyType string `gorm:"size:64;index" json:"propertyType"`
	Bedrooms     int    `json:"bedrooms"`
	Bathrooms    int    `json:"bathrooms"`
	MaxGuests    int    `json:"maxGuests"`

	HostID uint `gorm:"index;column:host_id" json:"host_id"`
	Host   User `gorm:"foreignKey:HostID" json:"host,omitempty"`

	AvailabilityStart *time.Time `gorm:"column:availability_start" json:"availabilityStart,omitempty"`
	AvailabilityEnd   *time.Time `gorm:"column:availability_end" json:"availabilityEnd,omitempty"`

	IsActive bool `gorm:"column:is_active" json:"isActive"`

	RatingAverage float64 `gorm:"column:rating_average;default:0" json:"ratingAverage"`
	RatingCount   int     `gorm:"column:rating_count;default:0" json:"ratingCount"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
