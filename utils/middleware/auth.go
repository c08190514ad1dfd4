package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/Anirudh646/dfghjkddfghj/model"
	"github.com/Anirudh646/dfghjkddfghj/utils/auth"
	"github.com/Anirudh646/dfghjkddfghj/utils/response"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ErrUserNotFound is returned by a UserLoader for unknown ids
var ErrUserNotFound = errors.New("user not found")

// RevocationChecker answers whether a token id was revoked
type RevocationChecker interface {
	IsTokenRevoked(ctx context.Context, jti string) (bool, error)
}

// UserLoader fetches the account behind a token
type UserLoader interface {
	LoadUser(ctx context.Context, id uint) (*model.User, error)
}

// GormUserLoader loads users from Postgres
type GormUserLoader struct {
	DB *gorm.DB
}

func (l GormUserLoader) LoadUser(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	if err := l.DB.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// AuthMiddleware handles JWT authentication
type AuthMiddleware struct {
	jwtManager *auth.JWTManager
	revoked    RevocationChecker
	users      UserLoader
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(jwtManager *auth.JWTManager, revoked RevocationChecker, users UserLoader) *AuthMiddleware {
	return &AuthMiddleware{
		jwtManager: jwtManager,
		revoked:    revoked,
		users:      users,
	}
}

type authFailure struct {
	status  int
	message string
}

// authenticate validates the bearer token and loads its user
func (m *AuthMiddleware) authenticate(c *fiber.Ctx) (*auth.Claims, *model.User, *authFailure) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return nil, nil, &authFailure{fiber.StatusUnauthorized, "Missing authorization token"}
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, nil, &authFailure{fiber.StatusUnauthorized, "Invalid authorization format"}
	}

	claims, err := m.jwtManager.ValidateToken(parts[1])
	if err != nil {
		if errors.Is(err, auth.ErrExpiredToken) {
			return nil, nil, &authFailure{fiber.StatusUnauthorized, "Token has expired"}
		}
		return nil, nil, &authFailure{fiber.StatusUnauthorized, "Invalid token"}
	}

	if claims.TokenType != auth.TokenTypeAccess {
		return nil, nil, &authFailure{fiber.StatusUnauthorized, "Invalid token type"}
	}

	isRevoked, err := m.revoked.IsTokenRevoked(c.UserContext(), claims.ID)
	if err != nil {
		return nil, nil, &authFailure{fiber.StatusInternalServerError, "Failed to check token status"}
	}
	if isRevoked {
		return nil, nil, &authFailure{fiber.StatusUnauthorized, "Token has been revoked"}
	}

	user, err := m.users.LoadUser(c.UserContext(), claims.UserID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, nil, &authFailure{fiber.StatusUnauthorized, "User not found"}
		}
		return nil, nil, &authFailure{fiber.StatusInternalServerError, "Failed to load user"}
	}

	if user.TokenVersion != claims.TokenVersion {
		return nil, nil, &authFailure{fiber.StatusUnauthorized, "Token has been invalidated"}
	}

	return claims, user, nil
}

func fail(c *fiber.Ctx, f *authFailure) error {
	if f.status == fiber.StatusInternalServerError {
		return response.InternalServerError(c, f.message)
	}
	return response.Unauthorized(c, f.message)
}

func setLocals(c *fiber.Ctx, claims *auth.Claims, user *model.User) {
	c.Locals("user_id", claims.UserID)
	c.Locals("user_email", claims.Email)
	c.Locals("user_role", user.Role)
	c.Locals("claims", claims)
	c.Locals("user", user)
	c.Locals("token_jti", claims.ID)
}

// Required is middleware that requires a valid JWT token
func (m *AuthMiddleware) Required() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, user, failure := m.authenticate(c)
		if failure != nil {
			return fail(c, failure)
		}
		setLocals(c, claims, user)
		return c.Next()
	}
}

// RequireAdmin is Required plus an admin role check.
// The role is read from the stored user, not the token, so demotions apply immediately.
func (m *AuthMiddleware) RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, user, failure := m.authenticate(c)
		if failure != nil {
			return fail(c, failure)
		}
		if !user.IsAdmin() {
			return response.Forbidden(c, "Admin access required")
		}
		setLocals(c, claims, user)
		return c.Next()
	}
}

// GetUserID extracts user ID from context
func GetUserID(c *fiber.Ctx) (uint, bool) {
	id, ok := c.Locals("user_id").(uint)
	return id, ok
}

// GetUser extracts full user object from context
func GetUser(c *fiber.Ctx) (*model.User, bool) {
	u, ok := c.Locals("user").(*model.User)
	return u, ok
}

// GetClaims extracts full claims from context
func GetClaims(c *fiber.Ctx) (*auth.Claims, bool) {
	claims, ok := c.Locals("claims").(*auth.Claims)
	return claims, ok
}
