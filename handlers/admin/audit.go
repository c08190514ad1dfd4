package admin

import (
	"errors"
	"strconv"

	"github.com/Anirudh646/dfghjkddfghj/model"
	"github.com/Anirudh646/dfghjkddfghj/utils/query"
	"github.com/Anirudh646/dfghjkddfghj/utils/response"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AuditHandler exposes the admin audit trail
type AuditHandler struct {
	db *gorm.DB
}

// NewAuditHandler creates a new audit handler
func NewAuditHandler(db *gorm.DB) *AuditHandler {
	return &AuditHandler{db: db}
}

// ListAuditLogs retrieves admin audit logs with pagination
// GET /admin/audit-logs?action=&resource=&admin_id=
func (h *AuditHandler) ListAuditLogs(c *fiber.Ctx) error {
	page := query.ParsePage(c)

	q := h.db.WithContext(c.UserContext()).Model(&model.AdminAuditLog{})
	if action := c.Query("action"); action != "" {
		q = q.Where("action = ?", action)
	}
	if resource := c.Query("resource"); resource != "" {
		q = q.Where("resource = ?", resource)
	}
	if raw := c.Query("admin_id"); raw != "" {
		adminID, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return response.BadRequest(c, "Invalid admin_id")
		}
		q = q.Where("admin_id = ?", adminID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		zap.S().Errorw("Failed to count audit logs", "error", err)
		return response.InternalServerError(c, "Failed to fetch audit logs")
	}

	var logs []model.AdminAuditLog
	if err := q.Order("created_at DESC").Offset(page.Offset).Limit(page.Limit).Find(&logs).Error; err != nil {
		zap.S().Errorw("Failed to fetch audit logs", "error", err)
		return response.InternalServerError(c, "Failed to fetch audit logs")
	}

	return response.Paginated(c, logs, response.CalculatePagination(page.Page, page.Limit, total))
}

// GetAuditLog retrieves a specific audit log entry
// GET /admin/audit-logs/:id
func (h *AuditHandler) GetAuditLog(c *fiber.Ctx) error {
	id, ok := query.ParseUintParam(c, "id")
	if !ok {
		return response.BadRequest(c, "Invalid log ID")
	}

	var log model.AdminAuditLog
	if err := h.db.WithContext(c.UserContext()).First(&log, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Audit log not found")
		}
		return response.InternalServerError(c, "Failed to fetch audit log")
	}

	return response.Success(c, log)
}
