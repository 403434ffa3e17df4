// services/listing_service.go
package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"homestay-backend/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ListingService wraps *gorm.DB for listing CRUD and the search/filter query.
type ListingService struct {
	DB *gorm.DB
}

func NewListingService(db *gorm.DB) *ListingService {
	return &ListingService{DB: db}
}

// ListingFilter holds the optional search parameters. Nil pointer fields are
// not applied.
type ListingFilter struct {
	Search       string
	City         string
	PropertyType string
	MinPrice     *float64
	MaxPrice     *float64
	Bedrooms     *int
	MaxGuests    *int
	Page         int
	Limit        int
}

type ListingPage struct {
	Listings    []models.Listing `json:"listings"`
	TotalPages  int              `json:"totalPages"`
	CurrentPage int              `json:"currentPage"`
	Total       int64            `json:"total"`
}

type CreateListingInput struct {
	Title        string
	Description  string
	Price        float64
	Location     models.Location
	Images       []string
	Amenities    []string
	PropertyType string
	Bedrooms     int
	Bathrooms    int
	MaxGuests    int
}

// UpdateListingInput applies only its non-nil fields.
type UpdateListingInput struct {
	Title        *string
	Description  *string
	Price        *float64
	Location     *models.Location
	Images       []string
	Amenities    []string
	PropertyType *string
	Bedrooms     *int
	Bathrooms    *int
	MaxGuests    *int
	IsActive     *bool
}

func toJSONColumn(values []string) datatypes.JSON {
	if values == nil {
		values = []string{}
	}
	raw, _ := json.Marshal(values)
	return datatypes.JSON(raw)
}

// List returns active listings matching the filter, newest first, paginated.
func (s *ListingService) List(f ListingFilter) (*ListingPage, error) {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = 12
	}

	q := s.DB.Model(&models.Listing{}).Where("is_active = ?", true)

	if f.Search != "" {
		like := "%" + f.Search + "%"
		q = q.Where(
			"title LIKE ? OR description LIKE ? OR location_city LIKE ? OR location_address LIKE ?",
			like, like, like, like,
		)
	}
	if f.City != "" {
		q = q.Where("location_city LIKE ?", "%"+f.City+"%")
	}
	if f.PropertyType != "" {
		q = q.Where("property_type = ?", f.PropertyType)
	}
	if f.MinPrice != nil {
		q = q.Where("price >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		q = q.Where("price <= ?", *f.MaxPrice)
	}
	if f.Bedrooms != nil {
		q = q.Where("bedrooms = ?", *f.Bedrooms)
	}
	if f.MaxGuests != nil {
		q = q.Where("max_guests >= ?", *f.MaxGuests)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count listings: %w", err)
	}

	listings := make([]models.Listing, 0)
	if err := q.Preload("Host").
		Order("created_at DESC").
		Offset((f.Page - 1) * f.Limit).
		Limit(f.Limit).
		Find(&listings).Error; err != nil {
		return nil, fmt.Errorf("failed to list listings: %w", err)
	}

	return &ListingPage{
		Listings:    listings,
		TotalPages:  int(math.Ceil(float64(total) / float64(f.Limit))),
		CurrentPage: f.Page,
		Total:       total,
	}, nil
}

func (s *ListingService) GetByID(listingID uint) (*models.Listing, error) {
	var listing models.Listing
	if err := s.DB.Preload("Host").First(&listing, listingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundErr("Listing not found")
		}
		return nil, fmt.Errorf("failed to load listing %d: %w", listingID, err)
	}
	return &listing, nil
}

func (s *ListingService) Create(hostID uint, in CreateListingInput) (*models.Listing, error) {
	if !models.IsValidPropertyType(in.PropertyType) {
		return nil, validationErr("Invalid property type")
	}
	if in.Price < 0 {
		return nil, validationErr("Price must not be negative")
	}
	if in.MaxGuests < 1 {
		return nil, validationErr("Maximum guests must be at least 1")
	}

	if in.Location.Country == "" {
		in.Location.Country = "India"
	}

	now := time.Now()
	availabilityEnd := now.AddDate(1, 0, 0)

	listing := models.Listing{
		Title:             in.Title,
		Description:       in.Description,
		Price:             in.Price,
		Location:          in.Location,
		Images:            toJSONColumn(in.Images),
		Amenities:         toJSONColumn(in.Amenities),
		PropertyType:      in.PropertyType,
		Bedrooms:          in.Bedrooms,
		Bathrooms:         in.Bathrooms,
		MaxGuests:         in.MaxGuests,
		HostID:            hostID,
		AvailabilityStart: &now,
		AvailabilityEnd:   &availabilityEnd,
		IsActive:          true,
	}

	if err := s.DB.Create(&listing).Error; err != nil {
		return nil, fmt.Errorf("failed to create listing: %w", err)
	}

	return s.GetByID(listing.ID)
}

// Update applies a partial update after an ownership check.
func (s *ListingService) Update(hostID, listingID uint, in UpdateListingInput) (*models.Listing, error) {
	var listing models.Listing
	if err := s.DB.First(&listing, listingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundErr("Listing not found")
		}
		return nil, fmt.Errorf("failed to load listing %d: %w", listingID, err)
	}

	if listing.HostID != hostID {
		return nil, forbiddenErr("Not authorized to update this listing")
	}

	updates := map[string]interface{}{}
	if in.Title != nil {
		updates["title"] = *in.Title
	}
	if in.Description != nil {
		updates["description"] = *in.Description
	}
	if in.Price != nil {
		if *in.Price < 0 {
			return nil, validationErr("Price must not be negative")
		}
		updates["price"] = *in.Price
	}
	if in.Location != nil {
		loc := *in.Location
		updates["location_address"] = loc.Address
		updates["location_city"] = loc.City
		updates["location_state"] = loc.State
		if loc.Country != "" {
			updates["location_country"] = loc.Country
		}
		if loc.Latitude != nil {
			updates["location_latitude"] = *loc.Latitude
		}
		if loc.Longitude != nil {
			updates["location_longitude"] = *loc.Longitude
		}
	}
	if in.Images != nil {
		updates["images"] = toJSONColumn(in.Images)
	}
	if in.Amenities != nil {
		updates["amenities"] = toJSONColumn(in.Amenities)
	}
	if in.PropertyType != nil {
		if !models.IsValidPropertyType(*in.PropertyType) {
			return nil, validationErr("Invalid property type")
		}
		updates["property_type"] = *in.PropertyType
	}
	if in.Bedrooms != nil {
		updates["bedrooms"] = *in.Bedrooms
	}
	if in.Bathrooms != nil {
		updates["bathrooms"] = *in.Bathrooms
	}
	if in.MaxGuests != nil {
		if *in.MaxGuests < 1 {
			return nil, validationErr("Maximum guests must be at least 1")
		}
		updates["max_guests"] = *in.MaxGuests
	}
	if in.IsActive != nil {
		updates["is_active"] = *in.IsActive
	}

	if len(updates) > 0 {
		if err := s.DB.Model(&listing).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update listing %d: %w", listingID, err)
		}
	}

	return s.GetByID(listing.ID)
}

func (s *ListingService) Delete(hostID, listingID uint) error {
	var listing models.Listing
	if err := s.DB.First(&listing, listingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFoundErr("Listing not found")
		}
		return fmt.Errorf("failed to load listing %d: %w", listingID, err)
	}

	if listing.HostID != hostID {
		return forbiddenErr("Not authorized to delete this listing")
	}

	if err := s.DB.Delete(&listing).Error; err != nil {
		return fmt.Errorf("failed to delete listing %d: %w", listingID, err)
	}
	return nil
}

// ListForHost returns all of a host's listings, newest first, regardless of
// the active flag.
func (s *ListingService) ListForHost(hostID uint) ([]models.Listing, error) {
	listings := make([]models.Listing, 0)
	if err := s.DB.
		Where("host_id = ?", hostID).
		Order("created_at DESC").
		Find(&listings).Error; err != nil {
		return nil, fmt.Errorf("failed to list host listings: %w", err)
	}
	return listings, nil
}
