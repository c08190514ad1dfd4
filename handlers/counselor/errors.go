package counselor

import (
	"errors"

	"github.com/Anirudh646/dfghjkddfghj/services/counselor"
	"github.com/Anirudh646/dfghjkddfghj/services/lead"
	"github.com/Anirudh646/dfghjkddfghj/utils/response"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// respondError maps counselor and lead errors onto the response envelope.
// Model failures always surface as the generic localized message.
func respondError(c *fiber.Ctx, err error, lang counselor.Language, field string) error {
	var verr *lead.ValidationError
	switch {
	case errors.As(err, &verr):
		return response.FieldErrors(c, verr.Fields, verr.Message)
	case errors.Is(err, counselor.ErrEmptyQuery),
		errors.Is(err, counselor.ErrQueryTooLong),
		errors.Is(err, counselor.ErrInterestLength):
		return response.FieldErrors(c, map[string]string{field: err.Error()}, err.Error())
	case errors.Is(err, counselor.ErrSessionNotFound):
		return response.NotFound(c, "Chat session not found")
	case errors.Is(err, counselor.ErrCourseNotFound):
		return response.NotFound(c, "Course not found")
	case errors.Is(err, counselor.ErrSessionConflict):
		return response.Conflict(c, "This chat was updated elsewhere. Please reload and try again.")
	case errors.Is(err, counselor.ErrLeadAlreadyCaptured):
		return response.Conflict(c, "Details already captured for this chat")
	case errors.Is(err, counselor.ErrGeneration):
		return response.BadGateway(c, counselor.GenericErrorMessage(lang))
	default:
		zap.S().Errorw("counselor request failed", "path", c.Path(), "error", err)
		return response.InternalServerError(c, "")
	}
}
