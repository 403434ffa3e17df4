package services_test

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"homestay-backend/models"
	"homestay-backend/services"
)

// newTestDB opens a per-test in-memory database. The shared-cache name keeps
// all pooled connections on the same database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Listing{},
		&models.Booking{},
	))
	return db
}

func createUser(t *testing.T, db *gorm.DB, name, email, role string) models.User {
	t.Helper()
	user := models.User{Name: name, Email: email, Password: "x", Role: role}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func createListing(t *testing.T, db *gorm.DB, hostID uint, price float64, maxGuests int, active bool) models.Listing {
	t.Helper()
	listing := models.Listing{
		Title:       "Test Stay",
		Description: "A place to test in",
		Price:       price,
		Location: models.Location{
			Address: "1 Test Road",
			City:    "Dharamshala",
			State:   "Himachal Pradesh",
			Country: "India",
		},
		Images:       []byte(`["https://example.com/a.jpg"]`),
		Amenities:    []byte(`["wifi"]`),
		PropertyType: "homestay",
		Bedrooms:     2,
		Bathrooms:    1,
		MaxGuests:    maxGuests,
		HostID:       hostID,
		IsActive:     active,
	}
	require.NoError(t, db.Create(&listing).Error)
	return listing
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func guestDetails() models.GuestDetails {
	return models.GuestDetails{Name: "Mike Johnson", Email: "mike@example.com", Phone: "+1234567892"}
}

func requireServiceError(t *testing.T, err error, kind services.ErrorKind, message string) {
	t.Helper()
	var svcErr *services.ServiceError
	require.ErrorAs(t, err, &svcErr)
	require.Equal(t, kind, svcErr.Kind)
	if message != "" {
		require.Equal(t, message, svcErr.Message)
	}
}
