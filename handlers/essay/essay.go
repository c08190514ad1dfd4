package essay

import (
	"errors"
	"strings"

	"github.com/Anirudh646/dfghjkddfghj/model"
	"github.com/Anirudh646/dfghjkddfghj/services"
	"github.com/Anirudh646/dfghjkddfghj/utils/middleware"
	"github.com/Anirudh646/dfghjkddfghj/utils/pdfvalidation"
	"github.com/Anirudh646/dfghjkddfghj/utils/query"
	"github.com/Anirudh646/dfghjkddfghj/utils/response"
	"github.com/Anirudh646/dfghjkddfghj/utils/validation"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// EssayHandler serves the dashboard essay workspace
type EssayHandler struct {
	essays    *services.EssayService
	validator *validation.Validator
}

func NewEssayHandler(essays *services.EssayService) *EssayHandler {
	return &EssayHandler{
		essays:    essays,
		validator: validation.NewValidator(),
	}
}

// essayError maps service errors onto the response envelope
func essayError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrEssayNotFound):
		return response.NotFound(c, "Essay not found")
	case errors.Is(err, services.ErrEssayEmpty):
		return response.FieldErrors(c, map[string]string{"content": "Essay has no content to review"}, "Essay has no content to review")
	case errors.Is(err, services.ErrReviewFailed):
		return response.BadGateway(c, "Could not review the essay right now. Please try again.")
	case errors.Is(err, services.ErrNotPDF), errors.Is(err, services.ErrPDFNoText), errors.Is(err, services.ErrPDFTooManyPages):
		return response.BadRequest(c, err.Error())
	default:
		zap.S().Errorw("essay request failed", "path", c.Path(), "error", err)
		return response.InternalServerError(c, "")
	}
}

func (h *EssayHandler) essayID(c *fiber.Ctx) (uint, bool) {
	return query.ParseUintParam(c, "id")
}

// List handles GET /api/v1/essays?status=&type=&search=
func (h *EssayHandler) List(c *fiber.Ctx) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "")
	}

	essays, err := h.essays.List(c.UserContext(), userID, services.EssayFilter{
		Status: query.Lower(c, "status"),
		Type:   query.Lower(c, "type"),
		Search: strings.TrimSpace(c.Query("search")),
	})
	if err != nil {
		return essayError(c, err)
	}
	return response.Success(c, essays)
}

// Create handles POST /api/v1/essays
func (h *EssayHandler) Create(c *fiber.Ctx) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "")
	}

	var in services.EssayInput
	if err := c.BodyParser(&in); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if fields, first := h.validator.Check(&in); fields != nil {
		return response.FieldErrors(c, fields, first)
	}

	essay, err := h.essays.Create(c.UserContext(), userID, in)
	if err != nil {
		return essayError(c, err)
	}
	return response.Created(c, essay)
}

// Get handles GET /api/v1/essays/:id
func (h *EssayHandler) Get(c *fiber.Ctx) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "")
	}
	id, ok := h.essayID(c)
	if !ok {
		return response.BadRequest(c, "Invalid essay ID")
	}

	essay, err := h.essays.Get(c.UserContext(), userID, id)
	if err != nil {
		return essayError(c, err)
	}
	return response.Success(c, essay)
}

// Update handles PUT /api/v1/essays/:id
func (h *EssayHandler) Update(c *fiber.Ctx) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "")
	}
	id, ok := h.essayID(c)
	if !ok {
		return response.BadRequest(c, "Invalid essay ID")
	}

	var in services.EssayUpdate
	if err := c.BodyParser(&in); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if fields, first := h.validator.Check(&in); fields != nil {
		return response.FieldErrors(c, fields, first)
	}

	essay, err := h.essays.Update(c.UserContext(), userID, id, in)
	if err != nil {
		return essayError(c, err)
	}
	return response.Success(c, essay)
}

// Delete handles DELETE /api/v1/essays/:id
func (h *EssayHandler) Delete(c *fiber.Ctx) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "")
	}
	id, ok := h.essayID(c)
	if !ok {
		return response.BadRequest(c, "Invalid essay ID")
	}

	if err := h.essays.Delete(c.UserContext(), userID, id); err != nil {
		return essayError(c, err)
	}
	return response.SuccessWithMessage(c, "Essay deleted", nil)
}

// Review handles POST /api/v1/essays/:id/review
func (h *EssayHandler) Review(c *fiber.Ctx) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "")
	}
	id, ok := h.essayID(c)
	if !ok {
		return response.BadRequest(c, "Invalid essay ID")
	}

	essay, feedback, err := h.essays.Review(c.UserContext(), userID, id)
	if err != nil {
		return essayError(c, err)
	}
	return response.Success(c, fiber.Map{"essay": essay, "feedback": feedback})
}

// Analytics handles GET /api/v1/essays/:id/analytics
func (h *EssayHandler) Analytics(c *fiber.Ctx) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "")
	}
	id, ok := h.essayID(c)
	if !ok {
		return response.BadRequest(c, "Invalid essay ID")
	}

	a, err := h.essays.Analytics(c.UserContext(), userID, id)
	if err != nil {
		return essayError(c, err)
	}
	return response.Success(c, a)
}

// Stats handles GET /api/v1/essays/stats
func (h *EssayHandler) Stats(c *fiber.Ctx) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "")
	}
	stats, err := h.essays.Stats(c.UserContext(), userID)
	if err != nil {
		return essayError(c, err)
	}
	return response.Success(c, stats)
}

// Import handles POST /api/v1/essays/import (multipart: file, title, type, college)
func (h *EssayHandler) Import(c *fiber.Ctx) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "")
	}

	file, err := c.FormFile("file")
	if err != nil {
		return response.BadRequest(c, "File is required")
	}
	data, err := pdfvalidation.ReadUpload(file, pdfvalidation.EssayLimits)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	essayType := model.EssayType(strings.ToLower(c.FormValue("type")))
	switch essayType {
	case "", model.EssayPersonalStatement, model.EssaySupplemental, model.EssayScholarship, model.EssayCommonApp:
	default:
		return response.FieldErrors(c, map[string]string{"type": "type is invalid"}, "type is invalid")
	}

	essay, err := h.essays.Import(c.UserContext(), userID, services.ImportRequest{
		Filename: file.Filename,
		Data:     data,
		Title:    c.FormValue("title"),
		Type:     essayType,
		College:  c.FormValue("college"),
	})
	if err != nil {
		return essayError(c, err)
	}
	return response.Created(c, essay)
}
