package notification

import (
	"errors"

	"github.com/Anirudh646/dfghjkddfghj/model"
	"github.com/Anirudh646/dfghjkddfghj/services"
	"github.com/Anirudh646/dfghjkddfghj/utils/middleware"
	"github.com/Anirudh646/dfghjkddfghj/utils/query"
	"github.com/Anirudh646/dfghjkddfghj/utils/response"
	"github.com/Anirudh646/dfghjkddfghj/utils/validation"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// NotificationHandler handles notification-related API endpoints
type NotificationHandler struct {
	notificationService *services.NotificationService
	validator           *validation.Validator
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(notificationService *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
		validator:           validation.NewValidator(),
	}
}

// AdminCreateRequest targets one student
type AdminCreateRequest struct {
	UserID uint `json:"user_id" validate:"required"`
	services.CreateNotificationRequest
}

// AdminBulkRequest sends the same notification to many students
type AdminBulkRequest struct {
	UserIDs []uint `json:"user_ids" validate:"required,min=1,max=1000"`
	services.CreateNotificationRequest
}

// GetNotifications handles GET /api/v1/notifications
// Query: status, type, priority, page, limit. Archived ones are hidden unless status=archived.
func (h *NotificationHandler) GetNotifications(c *fiber.Ctx) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "User not authenticated")
	}

	page := query.ParsePage(c)
	notifications, total, err := h.notificationService.List(c.UserContext(), services.ListNotificationsOptions{
		UserID:   userID,
		Status:   query.Lower(c, "status"),
		Type:     query.Lower(c, "type"),
		Priority: query.Lower(c, "priority"),
		Limit:    page.Limit,
		Offset:   page.Offset,
	})
	if err != nil {
		zap.S().Errorw("notifications not listed", "user_id", userID, "error", err)
		return response.InternalServerError(c, "Failed to fetch notifications")
	}

	out := make([]model.NotificationResponse, 0, len(notifications))
	for i := range notifications {
		out = append(out, notifications[i].ToResponse())
	}
	return response.Paginated(c, out, response.CalculatePagination(page.Page, page.Limit, total))
}

// GetUnreadCount handles GET /api/v1/notifications/unread-count
func (h *NotificationHandler) GetUnreadCount(c *fiber.Ctx) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "User not authenticated")
	}

	count, err := h.notificationService.UnreadCount(c.UserContext(), userID)
	if err != nil {
		return response.InternalServerError(c, "Failed to get unread count")
	}

	return response.Success(c, fiber.Map{
		"unread_count": count,
	})
}

// changeStatus runs one of the per-notification status transitions
func (h *NotificationHandler) changeStatus(c *fiber.Ctx, apply func(userID, id uint) error, done string) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "User not authenticated")
	}
	id, ok := query.ParseUintParam(c, "id")
	if !ok {
		return response.BadRequest(c, "Invalid notification ID")
	}

	if err := apply(userID, id); err != nil {
		if errors.Is(err, services.ErrNotificationNotFound) {
			return response.NotFound(c, "Notification not found")
		}
		zap.S().Errorw("notification not updated", "notification_id", id, "error", err)
		return response.InternalServerError(c, "Failed to update notification")
	}
	return response.SuccessWithMessage(c, done, nil)
}

// MarkAsRead handles PUT /api/v1/notifications/:id/read
func (h *NotificationHandler) MarkAsRead(c *fiber.Ctx) error {
	return h.changeStatus(c, func(userID, id uint) error {
		return h.notificationService.MarkAsRead(c.UserContext(), userID, id)
	}, "Notification marked as read")
}

// MarkAsUnread handles PUT /api/v1/notifications/:id/unread
func (h *NotificationHandler) MarkAsUnread(c *fiber.Ctx) error {
	return h.changeStatus(c, func(userID, id uint) error {
		return h.notificationService.MarkAsUnread(c.UserContext(), userID, id)
	}, "Notification marked as unread")
}

// Archive handles PUT /api/v1/notifications/:id/archive
func (h *NotificationHandler) Archive(c *fiber.Ctx) error {
	return h.changeStatus(c, func(userID, id uint) error {
		return h.notificationService.Archive(c.UserContext(), userID, id)
	}, "Notification archived")
}

// DeleteNotification handles DELETE /api/v1/notifications/:id
func (h *NotificationHandler) DeleteNotification(c *fiber.Ctx) error {
	return h.changeStatus(c, func(userID, id uint) error {
		return h.notificationService.Delete(c.UserContext(), userID, id)
	}, "Notification deleted")
}

// MarkAllAsRead handles PUT /api/v1/notifications/read-all
func (h *NotificationHandler) MarkAllAsRead(c *fiber.Ctx) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "User not authenticated")
	}

	count, err := h.notificationService.MarkAllAsRead(c.UserContext(), userID)
	if err != nil {
		return response.InternalServerError(c, "Failed to mark all notifications as read")
	}

	return response.SuccessWithMessage(c, "All notifications marked as read", fiber.Map{
		"count": count,
	})
}

// Create handles POST /api/v1/admin/notifications
func (h *NotificationHandler) Create(c *fiber.Ctx) error {
	var req AdminCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if fields, first := h.validator.Check(&req); fields != nil {
		return response.FieldErrors(c, fields, first)
	}

	n, err := h.notificationService.Create(c.UserContext(), req.UserID, req.CreateNotificationRequest)
	if err != nil {
		zap.S().Errorw("notification not created", "user_id", req.UserID, "error", err)
		return response.InternalServerError(c, "Failed to create notification")
	}
	return response.Created(c, n.ToResponse())
}

// CreateBulk handles POST /api/v1/admin/notifications/bulk
func (h *NotificationHandler) CreateBulk(c *fiber.Ctx) error {
	var req AdminBulkRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if fields, first := h.validator.Check(&req); fields != nil {
		return response.FieldErrors(c, fields, first)
	}

	count, err := h.notificationService.CreateBulk(c.UserContext(), req.UserIDs, req.CreateNotificationRequest)
	if err != nil {
		zap.S().Errorw("bulk notifications not created", "recipients", len(req.UserIDs), "error", err)
		return response.InternalServerError(c, "Failed to create notifications")
	}
	return response.Created(c, fiber.Map{"created": count})
}
