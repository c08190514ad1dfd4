package middleware

import (
	"encoding/json"

	"github.com/Anirudh646/dfghjkddfghj/model"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AdminAudit writes an audit row for each successful admin request it wraps.
// It must run after RequireAdmin. A failed insert is logged and never fails
// the request.
func AdminAudit(db *gorm.DB, action, resource string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := c.Next(); err != nil {
			return err
		}

		status := c.Response().StatusCode()
		if status >= fiber.StatusBadRequest {
			return nil
		}

		user, ok := GetUser(c)
		if !ok {
			return nil
		}

		entry := model.AdminAuditLog{
			AdminID:    user.ID,
			Action:     action,
			Resource:   resource,
			ResourceID: c.Params("id"),
			Status:     status,
			IPAddress:  c.IP(),
			UserAgent:  c.Get(fiber.HeaderUserAgent),
		}
		if body := c.Body(); len(body) > 0 && json.Valid(body) {
			entry.Payload = datatypes.JSON(append([]byte(nil), body...))
		}

		if err := db.WithContext(c.UserContext()).Create(&entry).Error; err != nil {
			zap.S().Warnw("Failed to write admin audit log",
				"action", action,
				"admin_id", user.ID,
				"error", err,
			)
		}
		return nil
	}
}
