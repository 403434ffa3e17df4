// controllers/booking_controller.go
package controllers

import (
	"net/http"
	"time"

	"homestay-backend/middleware"
	"homestay-backend/models"
	"homestay-backend/services"
	"homestay-backend/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type guestDetailsPayload struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Phone string `json:"phone" binding:"required"`
}

type createBookingPayload struct {
	ListingID       uint                `json:"listing" binding:"required"`
	CheckIn         string              `json:"checkIn" binding:"required"`
	CheckOut        string              `json:"checkOut" binding:"required"`
	Guests          int                 `json:"guests" binding:"required,gte=1"`
	GuestDetails    guestDetailsPayload `json:"guestDetails" binding:"required"`
	SpecialRequests string              `json:"specialRequests"`
}

type updateStatusPayload struct {
	Status string `json:"status" binding:"required"`
}

type BookingController struct {
	Bookings *services.BookingService
	Logger   *zap.Logger
}

func NewBookingController(bookings *services.BookingService, logger *zap.Logger) *BookingController {
	return &BookingController{Bookings: bookings, Logger: logger}
}

// parseBookingDate accepts a date-only or a full RFC 3339 timestamp.
func parseBookingDate(raw string) (time.Time, bool) {
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, true
	}
	return time.Time{}, false
}

func (ctrl *BookingController) CreateBooking(c *gin.Context) {
	var payload createBookingPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindingError(c, err)
		return
	}

	checkIn, ok := parseBookingDate(payload.CheckIn)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "Valid check-in date is required")
		return
	}
	checkOut, ok := parseBookingDate(payload.CheckOut)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "Valid check-out date is required")
		return
	}

	booking, err := ctrl.Bookings.Create(middleware.CallerID(c), services.CreateBookingInput{
		ListingID: payload.ListingID,
		CheckIn:   checkIn,
		CheckOut:  checkOut,
		Guests:    payload.Guests,
		GuestDetails: models.GuestDetails{
			Name:  payload.GuestDetails.Name,
			Email: payload.GuestDetails.Email,
			Phone: payload.GuestDetails.Phone,
		},
		SpecialRequests: payload.SpecialRequests,
	})
	if err != nil {
		respondError(c, ctrl.Logger, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Booking created successfully",
		"booking": booking,
	})
}

// GetMyBookings returns the caller's bookings as guest, newest first.
func (ctrl *BookingController) GetMyBookings(c *gin.Context) {
	bookings, err := ctrl.Bookings.ListForGuest(middleware.CallerID(c))
	if err != nil {
		respondError(c, ctrl.Logger, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GetHostBookings returns bookings against the caller's listings, newest first.
func (ctrl *BookingController) GetHostBookings(c *gin.Context) {
	bookings, err := ctrl.Bookings.ListForHost(middleware.CallerID(c))
	if err != nil {
		respondError(c, ctrl.Logger, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (ctrl *BookingController) GetBooking(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "Booking not found")
		return
	}

	booking, err := ctrl.Bookings.GetByID(middleware.CallerID(c), id)
	if err != nil {
		respondError(c, ctrl.Logger, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// UpdateBookingStatus is the host-only transition path.
func (ctrl *BookingController) UpdateBookingStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "Booking not found")
		return
	}

	var payload updateStatusPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindingError(c, err)
		return
	}

	booking, err := ctrl.Bookings.UpdateStatus(middleware.CallerID(c), id, payload.Status)
	if err != nil {
		respondError(c, ctrl.Logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Booking status updated successfully",
		"booking": booking,
	})
}

// CancelBooking is the guest-only cancellation path.
func (ctrl *BookingController) CancelBooking(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "Booking not found")
		return
	}

	booking, err := ctrl.Bookings.Cancel(middleware.CallerID(c), id)
	if err != nil {
		respondError(c, ctrl.Logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Booking cancelled successfully",
		"booking": booking,
	})
}
