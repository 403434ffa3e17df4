// controllers/listing_controller.go
package controllers

import (
	"net/http"
	"strconv"

	"homestay-backend/middleware"
	"homestay-backend/models"
	"homestay-backend/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type locationPayload struct {
	Address   string   `json:"address" binding:"required"`
	City      string   `json:"city" binding:"required"`
	State     string   `json:"state" binding:"required"`
	Country   string   `json:"country"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

type createListingPayload struct {
	Title        string          `json:"title" binding:"required"`
	Description  string          `json:"description" binding:"required"`
	Price        *float64        `json:"price" binding:"required,gte=0"`
	Location     locationPayload `json:"location" binding:"required"`
	Images       []string        `json:"images"`
	Amenities    []string        `json:"amenities"`
	PropertyType string          `json:"propertyType" binding:"required"`
	Bedrooms     *int            `json:"bedrooms" binding:"required,gte=0"`
	Bathrooms    *int            `json:"bathrooms" binding:"required,gte=0"`
	MaxGuests    *int            `json:"maxGuests" binding:"required,gte=1"`
}

type updateListingPayload struct {
	Title        *string          `json:"title"`
	Description  *string          `json:"description"`
	Price        *float64         `json:"price"`
	Location     *locationPayload `json:"location"`
	Images       []string         `json:"images"`
	Amenities    []string         `json:"amenities"`
	PropertyType *string          `json:"propertyType"`
	Bedrooms     *int             `json:"bedrooms"`
	Bathrooms    *int             `json:"bathrooms"`
	MaxGuests    *int             `json:"maxGuests"`
	IsActive     *bool            `json:"isActive"`
}

type ListingController struct {
	Listings *services.ListingService
	Logger   *zap.Logger
}

func NewListingController(listings *services.ListingService, logger *zap.Logger) *ListingController {
	return &ListingController{Listings: listings, Logger: logger}
}

// parseIDParam reads the :id route parameter. A malformed id is treated the
// same as an unknown one.
func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func queryFloat(c *gin.Context, key string) *float64 {
	raw := c.Query(key)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

func queryInt(c *gin.Context, key string) *int {
	raw := c.Query(key)
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &v
}

// GetListings handles search/filter with pagination.
func (ctrl *ListingController) GetListings(c *gin.Context) {
	filter := services.ListingFilter{
		Search:       c.Query("search"),
		City:         c.Query("city"),
		PropertyType: c.Query("propertyType"),
		MinPrice:     queryFloat(c, "minPrice"),
		MaxPrice:     queryFloat(c, "maxPrice"),
		Bedrooms:     queryInt(c, "bedrooms"),
		MaxGuests:    queryInt(c, "maxGuests"),
	}
	if p := queryInt(c, "page"); p != nil {
		filter.Page = *p
	}
	if l := queryInt(c, "limit"); l != nil {
		filter.Limit = *l
	}

	page, err := ctrl.Listings.List(filter)
	if err != nil {
		respondError(c, ctrl.Logger, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

func (ctrl *ListingController) GetListing(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "Listing not found"})
		return
	}

	listing, err := ctrl.Listings.GetByID(id)
	if err != nil {
		respondError(c, ctrl.Logger, err)
		return
	}
	c.JSON(http.StatusOK, listing)
}

func (ctrl *ListingController) CreateListing(c *gin.Context) {
	var payload createListingPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindingError(c, err)
		return
	}

	listing, err := ctrl.Listings.Create(middleware.CallerID(c), services.CreateListingInput{
		Title:       payload.Title,
		Description: payload.Description,
		Price:       *payload.Price,
		Location: models.Location{
			Address:   payload.Location.Address,
			City:      payload.Location.City,
			State:     payload.Location.State,
			Country:   payload.Location.Country,
			Latitude:  payload.Location.Latitude,
			Longitude: payload.Location.Longitude,
		},
		Images:       payload.Images,
		Amenities:    payload.Amenities,
		PropertyType: payload.PropertyType,
		Bedrooms:     *payload.Bedrooms,
		Bathrooms:    *payload.Bathrooms,
		MaxGuests:    *payload.MaxGuests,
	})
	if err != nil {
		respondError(c, ctrl.Logger, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Listing created successfully",
		"listing": listing,
	})
}

func (ctrl *ListingController) UpdateListing(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "Listing not found"})
		return
	}

	var payload updateListingPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindingError(c, err)
		return
	}

	in := services.UpdateListingInput{
		Title:        payload.Title,
		Description:  payload.Description,
		Price:        payload.Price,
		Images:       payload.Images,
		Amenities:    payload.Amenities,
		PropertyType: payload.PropertyType,
		Bedrooms:     payload.Bedrooms,
		Bathrooms:    payload.Bathrooms,
		MaxGuests:    payload.MaxGuests,
		IsActive:     payload.IsActive,
	}
	if payload.Location != nil {
		in.Location = &models.Location{
			Address:   payload.Location.Address,
			City:      payload.Location.City,
			State:     payload.Location.State,
			Country:   payload.Location.Country,
			Latitude:  payload.Location.Latitude,
			Longitude: payload.Location.Longitude,
		}
	}

	listing, err := ctrl.Listings.Update(middleware.CallerID(c), id, in)
	if err != nil {
		respondError(c, ctrl.Logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Listing updated successfully",
		"listing": listing,
	})
}

func (ctrl *ListingController) DeleteListing(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "Listing not found"})
		return
	}

	if err := ctrl.Listings.Delete(middleware.CallerID(c), id); err != nil {
		respondError(c, ctrl.Logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Listing deleted successfully"})
}

// GetMyListings returns the host's own listings, including inactive ones.
func (ctrl *ListingController) GetMyListings(c *gin.Context) {
	listings, err := ctrl.Listings.ListForHost(middleware.CallerID(c))
	if err != nil {
		respondError(c, ctrl.Logger, err)
		return
	}
	c.JSON(http.StatusOK, listings)
}
