package database

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Anirudh646/dfghjkddfghj/model"
	"github.com/Anirudh646/dfghjkddfghj/utils/auth"
	"github.com/Anirudh646/dfghjkddfghj/utils/validation"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrAdminCredentials is returned when the admin email or password is unusable
var ErrAdminCredentials = errors.New("admin email and password are required")

// Seeder handles database seeding operations
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// SeedAdminUser creates the admin account that reads captured leads. An
// existing account with that email is promoted instead; its password is kept.
func (s *Seeder) SeedAdminUser(email, password string) (bool, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" || !validation.ValidateEmail(email) {
		return false, ErrAdminCredentials
	}
	if ok, errs := validation.ValidatePassword(password); !ok {
		return false, fmt.Errorf("%w: %s", ErrAdminCredentials, strings.Join(errs, "; "))
	}

	var existing model.User
	err := s.db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		if existing.Role == model.RoleAdmin {
			zap.S().Infow("admin user already exists", "email", email)
			return false, nil
		}
		if err := s.db.Model(&existing).Update("role", model.RoleAdmin).Error; err != nil {
			return false, fmt.Errorf("failed to promote admin: %w", err)
		}
		zap.S().Infow("promoted existing user to admin", "email", email)
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("failed to look up admin: %w", err)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return false, fmt.Errorf("failed to hash password: %w", err)
	}
	admin := &model.User{
		Email:        email,
		PasswordHash: hash,
		Name:         "Admissions Administrator",
		Role:         model.RoleAdmin,
	}
	if err := s.db.Create(admin).Error; err != nil {
		return false, fmt.Errorf("failed to create admin: %w", err)
	}

	zap.S().Infow("created admin user", "email", email, "id", admin.ID)
	return true, nil
}
