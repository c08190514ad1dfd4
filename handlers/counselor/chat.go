package counselor

import (
	"errors"

	"github.com/Anirudh646/dfghjkddfghj/services/counselor"
	"github.com/Anirudh646/dfghjkddfghj/utils/response"
	"github.com/gofiber/fiber/v2"
)

// ChatHandler serves the chat transcript endpoints
type ChatHandler struct {
	chat *counselor.ChatService
}

func NewChatHandler(chat *counselor.ChatService) *ChatHandler {
	return &ChatHandler{chat: chat}
}

type StartRequest struct {
	Language     string `json:"language"`
	InitialQuery string `json:"initial_query"`
}

type MessageRequest struct {
	Text string `json:"text"`
}

type SelectRequest struct {
	Value string `json:"value"`
}

type LeadRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// respondSession returns the transcript. A failed model call still saved the
// generic error message in the transcript, so it is sent along with the 502.
func respondSession(c *fiber.Ctx, sess *counselor.Session, err error, field string) error {
	if err == nil {
		return response.Success(c, sess)
	}
	if sess != nil && errors.Is(err, counselor.ErrGeneration) {
		return c.Status(fiber.StatusBadGateway).JSON(response.Response{
			Success: false,
			Data:    sess,
			Error: &response.ErrorDetail{
				Code:    "UPSTREAM_ERROR",
				Message: counselor.GenericErrorMessage(sess.Language),
			},
		})
	}
	lang := counselor.English
	if sess != nil {
		lang = sess.Language
	}
	return respondError(c, err, lang, field)
}

// Start handles POST /api/v1/chat/sessions
func (h *ChatHandler) Start(c *fiber.Ctx) error {
	var req StartRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return response.BadRequest(c, "Invalid request body")
		}
	}

	sess, err := h.chat.Start(c.UserContext(), counselor.ParseLanguage(req.Language), req.InitialQuery)
	if err == nil {
		return response.Created(c, sess)
	}
	return respondSession(c, sess, err, "initial_query")
}

// Get handles GET /api/v1/chat/sessions/:id
func (h *ChatHandler) Get(c *fiber.Ctx) error {
	sess, err := h.chat.Get(c.UserContext(), c.Params("id"))
	return respondSession(c, sess, err, "id")
}

// Submit handles POST /api/v1/chat/sessions/:id/messages
func (h *ChatHandler) Submit(c *fiber.Ctx) error {
	var req MessageRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	sess, err := h.chat.Submit(c.UserContext(), c.Params("id"), req.Text)
	return respondSession(c, sess, err, "text")
}

// Select handles POST /api/v1/chat/sessions/:id/select
func (h *ChatHandler) Select(c *fiber.Ctx) error {
	var req SelectRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	sess, err := h.chat.Select(c.UserContext(), c.Params("id"), req.Value)
	return respondSession(c, sess, err, "value")
}

// CaptureLead handles POST /api/v1/chat/sessions/:id/lead
func (h *ChatHandler) CaptureLead(c *fiber.Ctx) error {
	var req LeadRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	sess, err := h.chat.CaptureLead(c.UserContext(), c.Params("id"), req.Name, req.Phone)
	return respondSession(c, sess, err, "phone")
}
