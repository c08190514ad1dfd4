package model

import (
	"time"

	"gorm.io/gorm"
)

// User is a dashboard account: a student or an admissions admin
type User struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
	Email        string         `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string         `gorm:"not null" json:"-"` // Never expose password in JSON
	Name         string         `gorm:"not null" json:"name"`
	Role         string         `gorm:"type:varchar(20);default:'student'" json:"role"` // student, admin
	TokenVersion int            `gorm:"default:0" json:"-"`                             // Increment to invalidate all user tokens

	// Relationships
	Essays         []Essay               `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Notifications  []StudentNotification `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	SavedColleges  []SavedCollege        `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	TokenBlacklist []JWTTokenBlacklist   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

// IsAdmin reports whether the user may read captured leads
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
