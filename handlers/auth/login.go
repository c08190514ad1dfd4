package auth

import (
	"errors"

	"github.com/Anirudh646/dfghjkddfghj/model"
	authutil "github.com/Anirudh646/dfghjkddfghj/utils/auth"
	"github.com/Anirudh646/dfghjkddfghj/utils/response"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// LoginRequest represents a user login request
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login handles email/password sign-in
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	req.Email = normalizeEmail(req.Email)
	if fields, first := h.validator.Check(&req); fields != nil {
		return response.FieldErrors(c, fields, first)
	}

	ctx := c.UserContext()
	ip := c.IP()

	var user model.User
	err := h.db.WithContext(ctx).Where("email = ?", req.Email).First(&user).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return response.InternalServerError(c, "Failed to sign in")
	}
	if err != nil || authutil.VerifyPassword(user.PasswordHash, req.Password) != nil {
		if h.bruteForceProtection != nil {
			if lockErr := h.bruteForceProtection.RecordFailedAttempt(ctx, ip); lockErr != nil {
				zap.S().Warnw("failed attempt not recorded", "ip", ip, "error", lockErr)
			}
		}
		return response.Unauthorized(c, "Invalid email or password")
	}

	if h.bruteForceProtection != nil {
		_ = h.bruteForceProtection.RecordSuccessfulAttempt(ctx, ip)
	}

	tokens, err := h.jwtManager.IssuePair(subjectOf(&user))
	if err != nil {
		return response.InternalServerError(c, "Failed to generate tokens")
	}
	return response.Success(c, AuthResponse{User: toUserResponse(&user), Tokens: tokens})
}
