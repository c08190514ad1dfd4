package counselor

import (
	"github.com/Anirudh646/dfghjkddfghj/services/counselor"
	"github.com/Anirudh646/dfghjkddfghj/utils/response"
	"github.com/gofiber/fiber/v2"
)

// CounselorHandler serves the stateless counselor endpoints
type CounselorHandler struct {
	counselor *counselor.Counselor
}

func NewCounselorHandler(c *counselor.Counselor) *CounselorHandler {
	return &CounselorHandler{counselor: c}
}

type AskRequest struct {
	Query    string `json:"query"`
	Language string `json:"language"`
}

type GetStartedRequest struct {
	Interest string `json:"interest"`
	Language string `json:"language"`
}

// Ask handles POST /api/v1/counselor/ask
func (h *CounselorHandler) Ask(c *fiber.Ctx) error {
	var req AskRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	lang := counselor.ParseLanguage(req.Language)

	answer, err := h.counselor.Ask(c.UserContext(), req.Query, lang)
	if err != nil {
		return respondError(c, err, lang, "query")
	}
	return response.Success(c, answer)
}

// GetStarted handles POST /api/v1/counselor/get-started
func (h *CounselorHandler) GetStarted(c *fiber.Ctx) error {
	var req GetStartedRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	lang := counselor.ParseLanguage(req.Language)

	guide, err := h.counselor.GetStarted(c.UserContext(), req.Interest, lang)
	if err != nil {
		return respondError(c, err, lang, "interest")
	}
	return response.Success(c, fiber.Map{"guide": guide})
}

// CourseSummary handles GET /api/v1/counselor/courses/:id/summary?lang=hi
func (h *CounselorHandler) CourseSummary(c *fiber.Ctx) error {
	lang := counselor.ParseLanguage(c.Query("lang"))

	summary, err := h.counselor.SummarizeCourse(c.UserContext(), c.Params("id"), lang)
	if err != nil {
		return respondError(c, err, lang, "id")
	}
	return response.Success(c, summary)
}
