package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"homestay-backend/models"
	"homestay-backend/services"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }
func strPtr(v string) *string     { return &v }

func TestListingList(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewListingService(db)
	host := createUser(t, db, "John Doe", "john@example.com", models.RoleHost)

	mountain, err := svc.Create(host.ID, services.CreateListingInput{
		Title:        "Mountain View Homestay",
		Description:  "Quiet stay above the valley",
		Price:        100,
		Location:     models.Location{Address: "12 Temple Road", City: "Dharamshala", State: "HP"},
		PropertyType: "homestay",
		Bedrooms:     2,
		Bathrooms:    1,
		MaxGuests:    4,
	})
	require.NoError(t, err)

	_, err = svc.Create(host.ID, services.CreateListingInput{
		Title:        "Riverside Cottage",
		Description:  "On the river bank",
		Price:        150,
		Location:     models.Location{Address: "4 River Lane", City: "Manali", State: "HP"},
		PropertyType: "cottage",
		Bedrooms:     1,
		Bathrooms:    1,
		MaxGuests:    2,
	})
	require.NoError(t, err)

	hidden, err := svc.Create(host.ID, services.CreateListingInput{
		Title:        "Hidden Villa",
		Description:  "Not bookable",
		Price:        300,
		Location:     models.Location{Address: "9 Hill", City: "Shimla", State: "HP"},
		PropertyType: "villa",
		Bedrooms:     3,
		Bathrooms:    2,
		MaxGuests:    6,
	})
	require.NoError(t, err)
	_, err = svc.Update(host.ID, hidden.ID, services.UpdateListingInput{IsActive: boolPtr(false)})
	require.NoError(t, err)

	t.Run("inactive listings are excluded", func(t *testing.T) {
		page, err := svc.List(services.ListingFilter{})
		require.NoError(t, err)
		assert.Equal(t, int64(2), page.Total)
	})

	t.Run("search matches title", func(t *testing.T) {
		page, err := svc.List(services.ListingFilter{Search: "Mountain"})
		require.NoError(t, err)
		require.Len(t, page.Listings, 1)
		assert.Equal(t, mountain.ID, page.Listings[0].ID)
	})

	t.Run("city filter", func(t *testing.T) {
		page, err := svc.List(services.ListingFilter{City: "manali"})
		require.NoError(t, err)
		require.Len(t, page.Listings, 1)
		assert.Equal(t, "Riverside Cottage", page.Listings[0].Title)
	})

	t.Run("property type filter", func(t *testing.T) {
		page, err := svc.List(services.ListingFilter{PropertyType: "cottage"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), page.Total)
	})

	t.Run("price range", func(t *testing.T) {
		page, err := svc.List(services.ListingFilter{MinPrice: floatPtr(120), MaxPrice: floatPtr(200)})
		require.NoError(t, err)
		require.Len(t, page.Listings, 1)
		assert.Equal(t, float64(150), page.Listings[0].Price)
	})

	t.Run("capacity filter", func(t *testing.T) {
		page, err := svc.List(services.ListingFilter{MaxGuests: intPtr(3)})
		require.NoError(t, err)
		require.Len(t, page.Listings, 1)
		assert.Equal(t, mountain.ID, page.Listings[0].ID)
	})

	t.Run("pagination", func(t *testing.T) {
		page, err := svc.List(services.ListingFilter{Page: 1, Limit: 1})
		require.NoError(t, err)
		assert.Len(t, page.Listings, 1)
		assert.Equal(t, 2, page.TotalPages)
		assert.Equal(t, int64(2), page.Total)
		assert.Equal(t, 1, page.CurrentPage)
	})
}

func boolPtr(v bool) *bool { return &v }

func TestListingCreateValidation(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewListingService(db)
	host := createUser(t, db, "John Doe", "john@example.com", models.RoleHost)

	_, err := svc.Create(host.ID, services.CreateListingInput{
		Title:        "Weird place",
		Description:  "x",
		Price:        10,
		Location:     models.Location{Address: "1", City: "A", State: "B"},
		PropertyType: "spaceship",
		MaxGuests:    2,
	})
	requireServiceError(t, err, services.ErrorValidation, "Invalid property type")

	_, err = svc.Create(host.ID, services.CreateListingInput{
		Title:        "Free place",
		Description:  "x",
		Price:        -5,
		Location:     models.Location{Address: "1", City: "A", State: "B"},
		PropertyType: "homestay",
		MaxGuests:    2,
	})
	requireServiceError(t, err, services.ErrorValidation, "Price must not be negative")

	listing, err := svc.Create(host.ID, services.CreateListingInput{
		Title:        "Valid place",
		Description:  "x",
		Price:        10,
		Location:     models.Location{Address: "1", City: "A", State: "B"},
		PropertyType: "homestay",
		MaxGuests:    2,
	})
	require.NoError(t, err)
	assert.True(t, listing.IsActive)
	assert.Equal(t, "India", listing.Location.Country, "country defaults when omitted")
	assert.NotNil(t, listing.AvailabilityStart)
}

func TestListingOwnership(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewListingService(db)
	host := createUser(t, db, "John Doe", "john@example.com", models.RoleHost)
	otherHost := createUser(t, db, "Jane Smith", "jane@example.com", models.RoleHost)

	listing, err := svc.Create(host.ID, services.CreateListingInput{
		Title:        "Mine",
		Description:  "x",
		Price:        10,
		Location:     models.Location{Address: "1", City: "A", State: "B"},
		PropertyType: "homestay",
		MaxGuests:    2,
	})
	require.NoError(t, err)

	_, err = svc.Update(otherHost.ID, listing.ID, services.UpdateListingInput{Price: floatPtr(99)})
	requireServiceError(t, err, services.ErrorForbidden, "Not authorized to update this listing")

	err = svc.Delete(otherHost.ID, listing.ID)
	requireServiceError(t, err, services.ErrorForbidden, "Not authorized to delete this listing")

	updated, err := svc.Update(host.ID, listing.ID, services.UpdateListingInput{
		Price: floatPtr(99),
		Title: strPtr("Still mine"),
	})
	require.NoError(t, err)
	assert.Equal(t, float64(99), updated.Price)
	assert.Equal(t, "Still mine", updated.Title)
	assert.Equal(t, "x", updated.Description, "untouched fields keep their values")

	require.NoError(t, svc.Delete(host.ID, listing.ID))
	_, err = svc.GetByID(listing.ID)
	requireServiceError(t, err, services.ErrorNotFound, "Listing not found")
}

func TestListForHostIncludesInactive(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewListingService(db)
	host := createUser(t, db, "John Doe", "john@example.com", models.RoleHost)

	listing, err := svc.Create(host.ID, services.CreateListingInput{
		Title:        "Soon inactive",
		Description:  "x",
		Price:        10,
		Location:     models.Location{Address: "1", City: "A", State: "B"},
		PropertyType: "homestay",
		MaxGuests:    2,
	})
	require.NoError(t, err)
	_, err = svc.Update(host.ID, listing.ID, services.UpdateListingInput{IsActive: boolPtr(false)})
	require.NoError(t, err)

	listings, err := svc.ListForHost(host.ID)
	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.False(t, listings[0].IsActive)
}
