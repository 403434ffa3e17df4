package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"homestay-backend/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := envOrDefault("DB_USER", "root")
	pass := envOrDefault("DB_PASS", "")
	host := envOrDefault("DB_HOST", "127.0.0.1")
	port := envOrDefault("DB_PORT", "3306")
	dbName := envOrDefault("DB_NAME", "homestay_db")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	), nil
}

func ConnectDatabase() error {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return err
	}

	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: gormLogger})
	if err != nil {
		return err
	}

	DB = db

	if err := DB.AutoMigrate(
		&models.User{},
		&models.Listing{},
		&models.Booking{},
	); err != nil {
		return err
	}

	SeedDatabase(DB)
	return nil
}

// SeedDatabase inserts demo users and listings when the database is empty.
func SeedDatabase(db *gorm.DB) {
	var userCount int64
	db.Model(&models.User{}).Count(&userCount)
	if userCount > 0 {
		log.Println("Users already seeded")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("warning: failed to hash seed password: %v", err)
		return
	}

	users := []models.User{
		{Name: "John Doe", Email: "john@example.com", Password: string(hash), Role: models.RoleHost, Phone: "+1234567890"},
		{Name: "Jane Smith", Email: "jane@example.com", Password: string(hash), Role: models.RoleHost, Phone: "+1234567891"},
		{Name: "Mike Johnson", Email: "mike@example.com", Password: string(hash), Role: models.RoleGuest, Phone: "+1234567892"},
	}
	if err := db.Create(&users).Error; err != nil {
		log.Printf("warning: failed to seed users: %v", err)
		return
	}

	now := time.Now()
	yearOut := now.AddDate(1, 0, 0)

	listings := []models.Listing{
		{
			Title:       "Cozy Mountain View Homestay",
			Description: "A quiet family-run homestay with a view of the valley.",
			Price:       100,
			Location: models.Location{
				Address: "12 Temple Road",
				City:    "Dharamshala",
				State:   "Himachal Pradesh",
				Country: "India",
			},
			Images:            []byte(`["https://example.com/images/mountain-1.jpg"]`),
			Amenities:         []byte(`["wifi","kitchen","parking"]`),
			PropertyType:      "homestay",
			Bedrooms:          2,
			Bathrooms:         1,
			MaxGuests:         4,
			HostID:            users[0].ID,
			AvailabilityStart: &now,
			AvailabilityEnd:   &yearOut,
			IsActive:          true,
		},
		{
			Title:       "Riverside Cottage",
			Description: "Standalone cottage on the river bank, ideal for couples.",
			Price:       150,
			Location: models.Location{
				Address: "4 River Lane",
				City:    "Manali",
				State:   "Himachal Pradesh",
				Country: "India",
			},
			Images:            []byte(`["https://example.com/images/river-1.jpg"]`),
			Amenities:         []byte(`["wifi","heating"]`),
			PropertyType:      "cottage",
			Bedrooms:          1,
			Bathrooms:         1,
			MaxGuests:         2,
			HostID:            users[1].ID,
			AvailabilityStart: &now,
			AvailabilityEnd:   &yearOut,
			IsActive:          true,
		},
	}
	if err := db.Create(&listings).Error; err != nil {
		log.Printf("warning: failed to seed listings: %v", err)
		return
	}

	log.Println("Demo users and listings seeded")
}
