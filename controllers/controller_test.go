package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"homestay-backend/controllers"
	"homestay-backend/models"
	"homestay-backend/routes"
	"homestay-backend/services"
	"homestay-backend/utils"
)

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

// newTestServer wires the full router over an in-memory database, the same way
// main.go does in production.
func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := newTestDB(t)
	logger := zap.NewNop()

	router := routes.SetupRouter(
		controllers.NewAuthController(services.NewUserService(db), logger),
		controllers.NewListingController(services.NewListingService(db), logger),
		controllers.NewBookingController(services.NewBookingService(db), logger),
		logger,
	)
	return router, db
}

func createUser(t *testing.T, db *gorm.DB, name, email, role string) models.User {
	t.Helper()
	user := models.User{Name: name, Email: email, Password: "x", Role: role}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func createListing(t *testing.T, db *gorm.DB, hostID uint, price float64, maxGuests int) models.Listing {
	t.Helper()
	listing := models.Listing{
		Title:       "Cozy Mountain View Homestay",
		Description: "A quiet family-run homestay",
		Price:       price,
		Location: models.Location{
			Address: "12 Temple Road",
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
		IsActive:     true,
	}
	require.NoError(t, db.Create(&listing).Error)
	return listing
}

func tokenFor(t *testing.T, user models.User) string {
	t.Helper()
	token, err := utils.CreateAccessToken(user.ID, user.Role)
	require.NoError(t, err)
	return token
}

func doRequest(t *testing.T, router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Buffer
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(raw)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func requireMessage(t *testing.T, rec *httptest.ResponseRecorder, status int, message string) {
	t.Helper()
	require.Equal(t, status, rec.Code, "body: %s", rec.Body.String())
	body := decodeBody(t, rec)
	require.Equal(t, message, body["message"])
}
