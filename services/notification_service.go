package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Anirudh646/dfghjkddfghj/model"
	"github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var ErrNotificationNotFound = errors.New("notification not found")

// NotificationService handles student notifications
type NotificationService struct {
	db  *gorm.DB
	now func() time.Time
}

// NewNotificationService creates a new notification service
func NewNotificationService(db *gorm.DB) *NotificationService {
	return &NotificationService{db: db, now: time.Now}
}

// CreateNotificationRequest represents a request to create a notification
type CreateNotificationRequest struct {
	Type        model.NotificationType     `json:"type" validate:"required,oneof=deadline essay_review college_match reminder update scholarship"`
	Priority    model.NotificationPriority `json:"priority" validate:"omitempty,oneof=high medium low"`
	Title       string                     `json:"title" validate:"required,notblank,max=255"`
	Message     string                     `json:"message" validate:"required,max=2000"`
	Channels    []string                   `json:"channels" validate:"omitempty,dive,oneof=in_app email"`
	ScheduledAt *time.Time                 `json:"scheduled_at,omitempty"`
	Metadata    map[string]interface{}     `json:"metadata,omitempty"`
}

// ListNotificationsOptions represents options for listing notifications
type ListNotificationsOptions struct {
	UserID   uint
	Status   string
	Type     string
	Priority string
	Limit    int
	Offset   int
}

func (s *NotificationService) build(userID uint, req CreateNotificationRequest) (*model.StudentNotification, error) {
	priority := req.Priority
	if priority == "" {
		priority = model.PriorityMedium
	}
	channels := req.Channels
	if len(channels) == 0 {
		channels = []string{model.ChannelInApp}
	}

	n := &model.StudentNotification{
		UserID:         userID,
		Type:           req.Type,
		Priority:       priority,
		Status:         model.NotificationUnread,
		Title:          req.Title,
		Message:        req.Message,
		Channels:       pq.StringArray(channels),
		DeliveryStatus: model.DeliveryPending,
		ScheduledAt:    req.ScheduledAt,
	}

	if len(req.Metadata) > 0 {
		raw, err := json.Marshal(req.Metadata)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal metadata: %w", err)
		}
		n.Metadata = datatypes.JSON(raw)
	}
	return n, nil
}

// Create adds a notification for one student
func (s *NotificationService) Create(ctx context.Context, userID uint, req CreateNotificationRequest) (*model.StudentNotification, error) {
	n, err := s.build(userID, req)
	if err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Create(n).Error; err != nil {
		return nil, fmt.Errorf("failed to create notification: %w", err)
	}

	zap.S().Infow("notification created", "id", n.ID, "user_id", userID, "type", n.Type)
	return n, nil
}

// CreateBulk adds the same notification for many students in one insert
func (s *NotificationService) CreateBulk(ctx context.Context, userIDs []uint, req CreateNotificationRequest) (int64, error) {
	if len(userIDs) == 0 {
		return 0, nil
	}
	batch := make([]*model.StudentNotification, 0, len(userIDs))
	for _, id := range userIDs {
		n, err := s.build(id, req)
		if err != nil {
			return 0, err
		}
		batch = append(batch, n)
	}

	result := s.db.WithContext(ctx).CreateInBatches(batch, 100)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to create notifications: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// List returns a student's notifications, newest first. Archived ones are
// only returned when asked for by status.
func (s *NotificationService) List(ctx context.Context, opts ListNotificationsOptions) ([]model.StudentNotification, int64, error) {
	query := s.db.WithContext(ctx).Model(&model.StudentNotification{}).Where("user_id = ?", opts.UserID)

	if opts.Status != "" {
		query = query.Where("status = ?", opts.Status)
	} else {
		query = query.Where("status <> ?", model.NotificationArchived)
	}
	if opts.Type != "" {
		query = query.Where("type = ?", opts.Type)
	}
	if opts.Priority != "" {
		query = query.Where("priority = ?", opts.Priority)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count notifications: %w", err)
	}

	var notifications []model.StudentNotification
	if err := query.Order("created_at DESC").Limit(opts.Limit).Offset(opts.Offset).Find(&notifications).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get notifications: %w", err)
	}
	return notifications, total, nil
}

func (s *NotificationService) setStatus(ctx context.Context, userID, id uint, updates map[string]interface{}) error {
	result := s.db.WithContext(ctx).Model(&model.StudentNotification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("failed to update notification: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

func (s *NotificationService) MarkAsRead(ctx context.Context, userID, id uint) error {
	return s.setStatus(ctx, userID, id, map[string]interface{}{
		"status":  model.NotificationRead,
		"read_at": s.now(),
	})
}

func (s *NotificationService) MarkAsUnread(ctx context.Context, userID, id uint) error {
	return s.setStatus(ctx, userID, id, map[string]interface{}{
		"status":  model.NotificationUnread,
		"read_at": nil,
	})
}

func (s *NotificationService) Archive(ctx context.Context, userID, id uint) error {
	return s.setStatus(ctx, userID, id, map[string]interface{}{"status": model.NotificationArchived})
}

// MarkAllAsRead marks every unread notification of the student as read
func (s *NotificationService) MarkAllAsRead(ctx context.Context, userID uint) (int64, error) {
	result := s.db.WithContext(ctx).Model(&model.StudentNotification{}).
		Where("user_id = ? AND status = ?", userID, model.NotificationUnread).
		Updates(map[string]interface{}{"status": model.NotificationRead, "read_at": s.now()})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to mark notifications as read: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (s *NotificationService) Delete(ctx context.Context, userID, id uint) error {
	result := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&model.StudentNotification{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete notification: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

func (s *NotificationService) UnreadCount(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.StudentNotification{}).
		Where("user_id = ? AND status = ?", userID, model.NotificationUnread).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return count, nil
}

// CleanupOld removes read and archived notifications older than the cutoff
func (s *NotificationService) CleanupOld(ctx context.Context, olderThan time.Duration) (int64, error) {
	cutoff := s.now().Add(-olderThan)
	result := s.db.WithContext(ctx).
		Where("status IN ? AND created_at < ?", []string{string(model.NotificationRead), string(model.NotificationArchived)}, cutoff).
		Delete(&model.StudentNotification{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to cleanup notifications: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// DueForDelivery returns pending notifications whose schedule has passed
func (s *NotificationService) DueForDelivery(ctx context.Context, limit int) ([]model.StudentNotification, error) {
	var due []model.StudentNotification
	err := s.db.WithContext(ctx).
		Preload("User").
		Where("delivery_status = ? AND (scheduled_at IS NULL OR scheduled_at <= ?) AND retry_count < ?",
			model.DeliveryPending, s.now(), model.MaxDeliveryRetries).
		Order("priority = 'high' DESC, created_at ASC").
		Limit(limit).
		Find(&due).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load due notifications: %w", err)
	}
	return due, nil
}

// MarkSent records a successful delivery
func (s *NotificationService) MarkSent(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Model(&model.StudentNotification{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"delivery_status": model.DeliverySent, "sent_at": s.now()}).Error
}

// MarkAttemptFailed bumps the retry count; the last allowed attempt marks it failed
func (s *NotificationService) MarkAttemptFailed(ctx context.Context, n *model.StudentNotification) error {
	retries := n.RetryCount + 1
	status := model.DeliveryPending
	if retries >= model.MaxDeliveryRetries {
		status = model.DeliveryFailed
	}
	n.RetryCount, n.DeliveryStatus = retries, status
	return s.db.WithContext(ctx).Model(&model.StudentNotification{}).
		Where("id = ?", n.ID).
		Updates(map[string]interface{}{"retry_count": retries, "delivery_status": status}).Error
}
