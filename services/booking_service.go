// services/booking_service.go
package services

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"homestay-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BookingService wraps *gorm.DB and owns the booking lifecycle: creation
// validation, conflict checking and status transitions.
type BookingService struct {
	DB *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db}
}

type CreateBookingInput struct {
	ListingID       uint
	CheckIn         time.Time
	CheckOut        time.Time
	Guests          int
	GuestDetails    models.GuestDetails
	SpecialRequests string
}

// withRelations preloads the display projection returned by every booking
// operation: the listing plus both parties.
func (s *BookingService) withRelations() *gorm.DB {
	return s.DB.Preload("Listing").Preload("Guest").Preload("Host")
}

func generateReferenceCode() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "BK-" + strings.ToUpper(raw[:12])
}

// HasConflict reports whether an active (pending or confirmed) booking for the
// same listing overlaps the half-open range [checkIn, checkOut). Pass a
// non-zero excludeBookingID to ignore one booking, e.g. when re-checking an
// existing reservation.
func (s *BookingService) HasConflict(listingID uint, checkIn, checkOut time.Time, excludeBookingID uint) (bool, error) {
	q := s.DB.Model(&models.Booking{}).
		Where("listing_id = ?", listingID).
		Where("status IN ?", models.ActiveBookingStatuses).
		Where("check_in < ? AND check_out > ?", checkOut, checkIn)
	if excludeBookingID != 0 {
		q = q.Where("id <> ?", excludeBookingID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check booking conflicts: %w", err)
	}
	return count > 0, nil
}

// Nights counts billable nights for [checkIn, checkOut); a partial day counts
// as a full night.
func Nights(checkIn, checkOut time.Time) int {
	return int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
}

// Create validates the request against the listing and existing bookings, then
// persists a new booking in status "pending" with the listing's current host
// denormalized onto it.
//
// The conflict check and the insert are not wrapped in a transaction, so two
// simultaneous requests for overlapping dates can both pass the check.
func (s *BookingService) Create(guestID uint, in CreateBookingInput) (*models.Booking, error) {
	if !in.CheckOut.After(in.CheckIn) {
		return nil, validationErr("Check-out date must be after check-in date")
	}
	if in.Guests < 1 {
		return nil, validationErr("At least 1 guest is required")
	}

	var listing models.Listing
	if err := s.DB.First(&listing, in.ListingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundErr("Listing not found")
		}
		return nil, fmt.Errorf("failed to load listing %d: %w", in.ListingID, err)
	}

	if !listing.IsActive {
		return nil, invalidStateErr("This listing is not available for booking")
	}

	if in.Guests > listing.MaxGuests {
		return nil, validationErr(fmt.Sprintf("Maximum %d guests allowed", listing.MaxGuests))
	}

	conflict, err := s.HasConflict(listing.ID, in.CheckIn, in.CheckOut, 0)
	if err != nil {
		return nil, err
	}
	if conflict {
		return nil, conflictErr("Property is not available for selected dates")
	}

	booking := models.Booking{
		ReferenceCode:   generateReferenceCode(),
		ListingID:       listing.ID,
		GuestID:         guestID,
		HostID:          listing.HostID,
		CheckIn:         in.CheckIn,
		CheckOut:        in.CheckOut,
		Guests:          in.Guests,
		TotalPrice:      float64(Nights(in.CheckIn, in.CheckOut)) * listing.Price,
		Status:          models.BookingStatusPending,
		GuestDetails:    in.GuestDetails,
		SpecialRequests: in.SpecialRequests,
	}

	if err := s.DB.Create(&booking).Error; err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	return s.reload(booking.ID)
}

func (s *BookingService) reload(bookingID uint) (*models.Booking, error) {
	var booking models.Booking
	if err := s.withRelations().First(&booking, bookingID).Error; err != nil {
		return nil, fmt.Errorf("failed to reload booking %d: %w", bookingID, err)
	}
	return &booking, nil
}

// GetByID returns a booking only to its guest or its host.
func (s *BookingService) GetByID(callerID, bookingID uint) (*models.Booking, error) {
	var booking models.Booking
	if err := s.withRelations().First(&booking, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundErr("Booking not found")
		}
		return nil, fmt.Errorf("failed to load booking %d: %w", bookingID, err)
	}

	if booking.GuestID != callerID && booking.HostID != callerID {
		return nil, forbiddenErr("Not authorized to view this booking")
	}
	return &booking, nil
}

// ListForGuest returns the caller's bookings, newest first.
func (s *BookingService) ListForGuest(guestID uint) ([]models.Booking, error) {
	bookings := make([]models.Booking, 0)
	if err := s.withRelations().
		Where("guest_id = ?", guestID).
		Order("created_at DESC").
		Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("failed to list guest bookings: %w", err)
	}
	return bookings, nil
}

// ListForHost returns bookings against the caller's listings, newest first.
func (s *BookingService) ListForHost(hostID uint) ([]models.Booking, error) {
	bookings := make([]models.Booking, 0)
	if err := s.withRelations().
		Where("host_id = ?", hostID).
		Order("created_at DESC").
		Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("failed to list host bookings: %w", err)
	}
	return bookings, nil
}

// UpdateStatus sets a booking's status on behalf of its host. The host path
// accepts any of the four statuses and does not check the current one; only
// the guest cancellation path rejects terminal bookings.
func (s *BookingService) UpdateStatus(callerID, bookingID uint, status string) (*models.Booking, error) {
	if !models.IsValidBookingStatus(status) {
		return nil, validationErr("Invalid status")
	}

	var booking models.Booking
	if err := s.DB.First(&booking, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundErr("Booking not found")
		}
		return nil, fmt.Errorf("failed to load booking %d: %w", bookingID, err)
	}

	if booking.HostID != callerID {
		return nil, forbiddenErr("Not authorized to update this booking")
	}

	if err := s.DB.Model(&booking).Update("status", status).Error; err != nil {
		return nil, fmt.Errorf("failed to update booking status: %w", err)
	}

	return s.reload(booking.ID)
}

// Cancel moves a booking to "cancelled" on behalf of its guest. Bookings
// already cancelled or completed cannot be cancelled again.
func (s *BookingService) Cancel(callerID, bookingID uint) (*models.Booking, error) {
	var booking models.Booking
	if err := s.DB.First(&booking, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundErr("Booking not found")
		}
		return nil, fmt.Errorf("failed to load booking %d: %w", bookingID, err)
	}

	if booking.GuestID != callerID {
		return nil, forbiddenErr("Not authorized to cancel this booking")
	}

	if models.IsTerminalBookingStatus(booking.Status) {
		return nil, invalidStateErr("Booking cannot be cancelled")
	}

	if err := s.DB.Model(&booking).Update("status", models.BookingStatusCancelled).Error; err != nil {
		return nil, fmt.Errorf("failed to cancel booking: %w", err)
	}

	return s.reload(booking.ID)
}
