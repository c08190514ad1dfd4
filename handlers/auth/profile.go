package auth

import (
	"strings"

	"github.com/Anirudh646/dfghjkddfghj/utils/middleware"
	"github.com/Anirudh646/dfghjkddfghj/utils/response"
	"github.com/gofiber/fiber/v2"
)

// UpdateProfileRequest represents a profile update request
type UpdateProfileRequest struct {
	Name string `json:"name" validate:"required,notblank,min=2,max=100"`
}

// GetProfile returns the signed-in user
func (h *AuthHandler) GetProfile(c *fiber.Ctx) error {
	user, ok := middleware.GetUser(c)
	if !ok {
		return response.Unauthorized(c, "Not authenticated")
	}
	return response.Success(c, toUserResponse(user))
}

// UpdateProfile changes the display name
func (h *AuthHandler) UpdateProfile(c *fiber.Ctx) error {
	user, ok := middleware.GetUser(c)
	if !ok {
		return response.Unauthorized(c, "Not authenticated")
	}

	var req UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	req.Name = strings.TrimSpace(req.Name)
	if fields, first := h.validator.Check(&req); fields != nil {
		return response.FieldErrors(c, fields, first)
	}

	if err := h.db.WithContext(c.UserContext()).Model(user).Update("name", req.Name).Error; err != nil {
		return response.InternalServerError(c, "Failed to update profile")
	}
	user.Name = req.Name
	return response.Success(c, toUserResponse(user))
}
