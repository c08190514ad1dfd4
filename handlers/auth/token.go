package auth

import (
	"github.com/Anirudh646/dfghjkddfghj/model"
	"github.com/Anirudh646/dfghjkddfghj/utils/middleware"
	"github.com/Anirudh646/dfghjkddfghj/utils/response"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// RefreshRequest represents a token refresh request
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// RefreshToken rotates a refresh token: the old one is revoked, a new pair issued
func (h *AuthHandler) RefreshToken(c *fiber.Ctx) error {
	var req RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if fields, first := h.validator.Check(&req); fields != nil {
		return response.FieldErrors(c, fields, first)
	}

	claims, err := h.jwtManager.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		return response.Unauthorized(c, "Invalid or expired refresh token")
	}

	ctx := c.UserContext()
	revoked, err := h.blacklistService.IsTokenRevoked(ctx, claims.ID)
	if err != nil {
		return response.InternalServerError(c, "Failed to check token status")
	}
	if revoked {
		return response.Unauthorized(c, "Token has been revoked")
	}

	var user model.User
	if err := h.db.WithContext(ctx).First(&user, claims.UserID).Error; err != nil {
		return response.Unauthorized(c, "User not found")
	}
	if user.TokenVersion != claims.TokenVersion {
		return response.Unauthorized(c, "Token has been invalidated")
	}

	tokens, err := h.jwtManager.IssuePair(subjectOf(&user))
	if err != nil {
		return response.InternalServerError(c, "Failed to generate tokens")
	}

	// The old token expires on its own if this fails
	if err := h.blacklistService.RevokeToken(ctx, claims.ID, user.ID, claims.ExpiresAt.Time, "token_refresh"); err != nil {
		zap.S().Warnw("refresh token not revoked", "user_id", user.ID, "error", err)
	}

	return response.Success(c, AuthResponse{User: toUserResponse(&user), Tokens: tokens})
}

// Logout revokes the access token used for the request
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		return response.Unauthorized(c, "Not authenticated")
	}

	if err := h.blacklistService.RevokeToken(c.UserContext(), claims.ID, claims.UserID, claims.ExpiresAt.Time, "logout"); err != nil {
		return response.InternalServerError(c, "Failed to logout")
	}
	return response.SuccessWithMessage(c, "Successfully logged out", nil)
}

// LogoutAll invalidates every token issued to the user by bumping the
// token version the auth middleware compares against
func (h *AuthHandler) LogoutAll(c *fiber.Ctx) error {
	user, ok := middleware.GetUser(c)
	if !ok {
		return response.Unauthorized(c, "Not authenticated")
	}

	if err := h.blacklistService.RevokeAllUserTokens(c.UserContext(), user.ID); err != nil {
		zap.S().Errorw("revoke all tokens failed", "user_id", user.ID, "error", err)
		return response.InternalServerError(c, "Failed to logout")
	}
	return response.SuccessWithMessage(c, "Signed out on all devices", nil)
}
