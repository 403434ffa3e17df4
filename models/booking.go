package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
	BookingStatusCompleted = "completed"
)

// ActiveBookingStatuses are the statuses that block a listing's dates.
var ActiveBookingStatuses = []string{BookingStatusPending, BookingStatusConfirmed}

func IsValidBookingStatus(s string) bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled, BookingStatusCompleted:
		return true
	}
	return false
}

// IsTerminalBookingStatus reports whether no further transitions are defined.
func IsTerminalBookingStatus(s string) bool {
	return s == BookingStatusCancelled || s == BookingStatusCompleted
}

// GuestDetails is a contact snapshot captured at booking time, independent of
// the guest's live profile.
type GuestDetails struct {
	Name  string `gorm:"size:255" json:"name"`
	Email string `gorm:"size:255" json:"email"`
	Phone string `gorm:"size:32" json:"phone"`
}

type Booking struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	ReferenceCode string `gorm:"column:reference_code;size:64;uniqueIndex" json:"reference_code"`

	ListingID uint    `gorm:"index;column:listing_id" json:"listing_id"`
	Listing   Listing `gorm:"foreignKey:ListingID" json:"listing,omitempty"`

	GuestID uint `gorm:"index;column:guest_id" json:"guest_id"`
	Guest   User `gorm:"foreignKey:GuestID" json:"guest,omitempty"`

	// HostID is a denormalized copy of the listing's host at booking time.
	HostID uint `gorm:"index;column:host_id" json:"host_id"`
	Host   User `gorm:"foreignKey:HostID" json:"host,omitempty"`

	// Half-open stay interval: [CheckIn, CheckOut).
	CheckIn  time.Time `gorm:"column:check_in" json:"checkIn"`
	CheckOut time.Time `gorm:"column:check_out" json:"checkOut"`

	Guests     int     `json:"guests"`
	TotalPrice float64 `gorm:"column:total_price" json:"totalPrice"`
	Status     string  `gorm:"size:32;index;default:pending" json:"status"`

	GuestDetails    GuestDetails `gorm:"embedded;embeddedPrefix:guest_detail_" json:"guestDetails"`
	SpecialRequests string       `gorm:"type:text" json:"specialRequests,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
