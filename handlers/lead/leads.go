package lead

import (
	"errors"

	"github.com/Anirudh646/dfghjkddfghj/services/lead"
	"github.com/Anirudh646/dfghjkddfghj/utils/query"
	"github.com/Anirudh646/dfghjkddfghj/utils/response"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// LeadHandler serves the standalone lead form and the admin leads view
type LeadHandler struct {
	leads *lead.Service
}

func NewLeadHandler(leads *lead.Service) *LeadHandler {
	return &LeadHandler{leads: leads}
}

// BatchDeleteRequest lists the lead ids to remove
type BatchDeleteRequest struct {
	IDs []string `json:"ids"`
}

// Submit handles POST /api/v1/leads. The write happens in the background.
func (h *LeadHandler) Submit(c *fiber.Ctx) error {
	var in lead.Input
	if err := c.BodyParser(&in); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if in.Source == "" {
		in.Source = "form"
	}

	l, err := h.leads.Submit(c.UserContext(), in)
	if err != nil {
		var verr *lead.ValidationError
		if errors.As(err, &verr) {
			return response.FieldErrors(c, verr.Fields, verr.Message)
		}
		return response.InternalServerError(c, "")
	}
	return response.Accepted(c, "Details received", fiber.Map{"id": l.ID, "created_at": l.CreatedAt})
}

// List handles GET /api/v1/admin/leads, newest first
func (h *LeadHandler) List(c *fiber.Ctx) error {
	page := query.ParsePage(c)

	leads, total, err := h.leads.List(c.UserContext(), page.Limit, page.Offset)
	if err != nil {
		zap.S().Errorw("leads not listed", "error", err)
		return response.InternalServerError(c, "Failed to fetch leads")
	}
	return response.Paginated(c, leads, response.CalculatePagination(page.Page, page.Limit, total))
}

// Delete handles DELETE /api/v1/admin/leads/:id
func (h *LeadHandler) Delete(c *fiber.Ctx) error {
	err := h.leads.Delete(c.UserContext(), c.Params("id"))
	if errors.Is(err, lead.ErrLeadNotFound) {
		return response.NotFound(c, "Lead not found")
	}
	if err != nil {
		return response.InternalServerError(c, "Failed to delete lead")
	}
	return response.SuccessWithMessage(c, "Lead deleted", nil)
}

// BatchDelete handles POST /api/v1/admin/leads/batch-delete
func (h *LeadHandler) BatchDelete(c *fiber.Ctx) error {
	var req BatchDeleteRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if len(req.IDs) == 0 {
		return response.FieldErrors(c, map[string]string{"ids": "ids is required"}, "ids is required")
	}
	if len(req.IDs) > 500 {
		return response.FieldErrors(c, map[string]string{"ids": "at most 500 ids per request"}, "at most 500 ids per request")
	}

	deleted, err := h.leads.DeleteMany(c.UserContext(), req.IDs)
	if err != nil {
		return response.InternalServerError(c, "Failed to delete leads")
	}
	return response.Success(c, fiber.Map{"deleted": deleted})
}
