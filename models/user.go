package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleGuest = "guest"
	RoleHost  = "host"
)

type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:255" json:"name"`
	Email    string `gorm:"uniqueIndex;size:255" json:"email"`
	Password string `gorm:"size:255" json:"-"` // bcrypt hash, never returned in JSON
	Role     string `gorm:"size:32;default:guest" json:"role"`
	Phone    string `gorm:"size:32" json:"phone,omitempty"`
	Avatar   string `gorm:"size:512" json:"avatar,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
