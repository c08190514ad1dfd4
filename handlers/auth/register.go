package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/Anirudh646/dfghjkddfghj/model"
	authutil "github.com/Anirudh646/dfghjkddfghj/utils/auth"
	"github.com/Anirudh646/dfghjkddfghj/utils/middleware"
	"github.com/Anirudh646/dfghjkddfghj/utils/response"
	"github.com/Anirudh646/dfghjkddfghj/utils/validation"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AuthHandler handles authentication-related requests
type AuthHandler struct {
	db                   *gorm.DB
	jwtManager           *authutil.JWTManager
	blacklistService     *authutil.BlacklistService
	bruteForceProtection *middleware.BruteForceProtection
	validator            *validation.Validator
}

// NewAuthHandler creates a new auth handler. bruteForceProtection may be nil
// when Redis is unavailable.
func NewAuthHandler(db *gorm.DB, jwtManager *authutil.JWTManager, bruteForceProtection *middleware.BruteForceProtection) *AuthHandler {
	return &AuthHandler{
		db:                   db,
		jwtManager:           jwtManager,
		blacklistService:     authutil.NewBlacklistService(db),
		bruteForceProtection: bruteForceProtection,
		validator:            validation.NewValidator(),
	}
}

// RegisterRequest represents a user registration request
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Name     string `json:"name" validate:"required,notblank,min=2,max=100"`
}

// AuthResponse is returned by register, login and refresh
type AuthResponse struct {
	User   UserResponse        `json:"user"`
	Tokens *authutil.TokenPair `json:"tokens"`
}

// UserResponse represents user data in responses
type UserResponse struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toUserResponse(u *model.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func subjectOf(u *model.User) authutil.Subject {
	return authutil.Subject{UserID: u.ID, Email: u.Email, Role: u.Role, TokenVersion: u.TokenVersion}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a student account. Admins are seeded, never self-registered.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	req.Email = normalizeEmail(req.Email)
	req.Name = strings.TrimSpace(req.Name)

	if fields, first := h.validator.Check(&req); fields != nil {
		return response.FieldErrors(c, fields, first)
	}
	if ok, errs := validation.ValidatePassword(req.Password); !ok {
		return response.FieldErrors(c, map[string]string{"password": errs[0]}, errs[0])
	}

	ctx := c.UserContext()
	var existing model.User
	err := h.db.WithContext(ctx).Where("email = ?", req.Email).First(&existing).Error
	if err == nil {
		return response.Conflict(c, "User with this email already exists")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return response.InternalServerError(c, "Failed to create user")
	}

	hashed, err := authutil.HashPassword(req.Password)
	if err != nil {
		return response.InternalServerError(c, "Failed to process password")
	}

	user := model.User{
		Email:        req.Email,
		PasswordHash: hashed,
		Name:         req.Name,
		Role:         model.RoleStudent,
	}
	if err := h.db.WithContext(ctx).Create(&user).Error; err != nil {
		zap.S().Errorw("user not created", "email", req.Email, "error", err)
		return response.InternalServerError(c, "Failed to create user")
	}

	tokens, err := h.jwtManager.IssuePair(subjectOf(&user))
	if err != nil {
		return response.InternalServerError(c, "Failed to generate tokens")
	}
	return response.Created(c, AuthResponse{User: toUserResponse(&user), Tokens: tokens})
}
