// services/user_service.go
package services

import (
	"errors"
	"fmt"
	"strings"

	"homestay-backend/models"

	mysql "github.com/go-sql-driver/mysql"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const mysqlDuplicateEntry = 1062

// UserService wraps *gorm.DB for account registration and credential checks.
type UserService struct {
	DB *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{DB: db}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
	Phone    string
}

// Register creates a user with a bcrypt password hash. The role defaults to
// guest when not provided.
func (s *UserService) Register(in RegisterInput) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	var existing models.User
	err := s.DB.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, validationErr("User already exists")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	role := in.Role
	if role == "" {
		role = models.RoleGuest
	}
	if role != models.RoleGuest && role != models.RoleHost {
		return nil, validationErr("Role must be guest or host")
	}

	user := models.User{
		Name:     strings.TrimSpace(in.Name),
		Email:    email,
		Password: string(hash),
		Role:     role,
		Phone:    strings.TrimSpace(in.Phone),
	}

	if err := s.DB.Create(&user).Error; err != nil {
		// the unique index backstops the read-then-write above
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry {
			return nil, validationErr("User already exists")
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &user, nil
}

// Authenticate verifies the email/password pair without revealing which of the
// two was wrong.
func (s *UserService) Authenticate(email, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var user models.User
	if err := s.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, validationErr("Invalid credentials")
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, validationErr("Invalid credentials")
	}

	return &user, nil
}

func (s *UserService) GetByID(userID uint) (*models.User, error) {
	var user models.User
	if err := s.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundErr("User not found")
		}
		return nil, fmt.Errorf("failed to load user %d: %w", userID, err)
	}
	return &user, nil
}
