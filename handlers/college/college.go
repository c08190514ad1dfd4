package college

import (
	"errors"
	"strconv"
	"strings"

	"github.com/Anirudh646/dfghjkddfghj/services/college"
	"github.com/Anirudh646/dfghjkddfghj/utils/middleware"
	"github.com/Anirudh646/dfghjkddfghj/utils/response"
	"github.com/Anirudh646/dfghjkddfghj/utils/validation"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CollegeHandler serves the college explorer
type CollegeHandler struct {
	colleges  *college.Service
	validator *validation.Validator
}

func NewCollegeHandler(colleges *college.Service) *CollegeHandler {
	return &CollegeHandler{
		colleges:  colleges,
		validator: validation.NewValidator(),
	}
}

// ListQuery is the explorer's query string
type ListQuery struct {
	Search      string `query:"search" json:"search" validate:"max=100"`
	Type        string `query:"type" json:"type" validate:"omitempty,oneof=all public private"`
	Selectivity string `query:"selectivity" json:"selectivity" validate:"omitempty,oneof=all most selective moderate less"`
	Size        string `query:"size" json:"size" validate:"omitempty,oneof=all small medium large"`
	Sort        string `query:"sort" json:"sort" validate:"omitempty,oneof=match_score ranking acceptance tuition"`
}

func collegeID(c *fiber.Ctx) (int, bool) {
	id, err := strconv.Atoi(c.Params("id"))
	return id, err == nil && id > 0
}

func band(v string) string {
	if v == "all" {
		return ""
	}
	return v
}

// List handles GET /api/v1/colleges
func (h *CollegeHandler) List(c *fiber.Ctx) error {
	var q ListQuery
	if err := c.QueryParser(&q); err != nil {
		return response.BadRequest(c, "Invalid query parameters")
	}
	q.Type = strings.ToLower(strings.TrimSpace(q.Type))
	q.Selectivity = strings.ToLower(strings.TrimSpace(q.Selectivity))
	q.Size = strings.ToLower(strings.TrimSpace(q.Size))
	q.Sort = strings.ToLower(strings.TrimSpace(q.Sort))
	if fields, first := h.validator.Check(&q); fields != nil {
		return response.FieldErrors(c, fields, first)
	}

	colleges := h.colleges.List(college.Query{
		Search:      q.Search,
		Type:        q.Type,
		Selectivity: band(q.Selectivity),
		Size:        band(q.Size),
		Sort:        q.Sort,
	})
	return response.Success(c, fiber.Map{"colleges": colleges, "total": len(colleges)})
}

// Get handles GET /api/v1/colleges/:id
func (h *CollegeHandler) Get(c *fiber.Ctx) error {
	id, ok := collegeID(c)
	if !ok {
		return response.BadRequest(c, "Invalid college ID")
	}
	col, err := h.colleges.Get(id)
	if err != nil {
		return response.NotFound(c, "College not found")
	}
	return response.Success(c, col)
}

// Saved handles GET /api/v1/colleges/saved
func (h *CollegeHandler) Saved(c *fiber.Ctx) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "")
	}
	colleges, err := h.colleges.Saved(c.UserContext(), userID)
	if err != nil {
		zap.S().Errorw("saved colleges not loaded", "user_id", userID, "error", err)
		return response.InternalServerError(c, "Failed to load saved colleges")
	}
	return response.Success(c, colleges)
}

// Save handles POST /api/v1/colleges/:id/save
func (h *CollegeHandler) Save(c *fiber.Ctx) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "")
	}
	id, ok := collegeID(c)
	if !ok {
		return response.BadRequest(c, "Invalid college ID")
	}

	err := h.colleges.Save(c.UserContext(), userID, id)
	if errors.Is(err, college.ErrCollegeNotFound) {
		return response.NotFound(c, "College not found")
	}
	if err != nil {
		zap.S().Errorw("college not saved", "user_id", userID, "college_id", id, "error", err)
		return response.InternalServerError(c, "Failed to save college")
	}
	return response.SuccessWithMessage(c, "College saved", fiber.Map{"college_id": id, "saved": true})
}

// Unsave handles DELETE /api/v1/colleges/:id/save
func (h *CollegeHandler) Unsave(c *fiber.Ctx) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "")
	}
	id, ok := collegeID(c)
	if !ok {
		return response.BadRequest(c, "Invalid college ID")
	}

	if err := h.colleges.Unsave(c.UserContext(), userID, id); err != nil {
		zap.S().Errorw("college not unsaved", "user_id", userID, "college_id", id, "error", err)
		return response.InternalServerError(c, "Failed to unsave college")
	}
	return response.SuccessWithMessage(c, "College removed", fiber.Map{"college_id": id, "saved": false})
}
