package counselor

import (
	"github.com/Anirudh646/dfghjkddfghj/services/knowledge"
	"github.com/Anirudh646/dfghjkddfghj/utils/response"
	"github.com/gofiber/fiber/v2"
)

// CatalogHandler exposes the knowledge base read-only
type CatalogHandler struct {
	kb *knowledge.Base
}

func NewCatalogHandler(kb *knowledge.Base) *CatalogHandler {
	return &CatalogHandler{kb: kb}
}

func (h *CatalogHandler) ListCourses(c *fiber.Ctx) error {
	return response.Success(c, h.kb.Courses)
}

// GetCourse accepts the course id or its code
func (h *CatalogHandler) GetCourse(c *fiber.Ctx) error {
	course, ok := h.kb.FindCourse(c.Params("id"))
	if !ok {
		return response.NotFound(c, "Course not found")
	}
	return response.Success(c, course)
}

func (h *CatalogHandler) ListContacts(c *fiber.Ctx) error {
	return response.Success(c, h.kb.Contacts)
}

func (h *CatalogHandler) ListFaqs(c *fiber.Ctx) error {
	return response.Success(c, h.kb.Faqs)
}

func (h *CatalogHandler) GeneralInfo(c *fiber.Ctx) error {
	return response.Success(c, h.kb.General)
}
