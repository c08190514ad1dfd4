package model

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// NotificationType is what the notification is about
type NotificationType string

const (
	NotificationTypeDeadline     NotificationType = "deadline"
	NotificationTypeEssayReview  NotificationType = "essay_review"
	NotificationTypeCollegeMatch NotificationType = "college_match"
	NotificationTypeReminder     NotificationType = "reminder"
	NotificationTypeUpdate       NotificationType = "update"
	NotificationTypeScholarship  NotificationType = "scholarship"
)

type NotificationPriority string

const (
	PriorityHigh   NotificationPriority = "high"
	PriorityMedium NotificationPriority = "medium"
	PriorityLow    NotificationPriority = "low"
)

// NotificationStatus is the reader-side state
type NotificationStatus string

const (
	NotificationUnread   NotificationStatus = "unread"
	NotificationRead     NotificationStatus = "read"
	NotificationArchived NotificationStatus = "archived"
)

// DeliveryStatus is the sender-side state for scheduled notifications
type DeliveryStatus string

const (
	DeliveryPending DeliveryStatus = "pending"
	DeliverySent    DeliveryStatus = "sent"
	DeliveryFailed  DeliveryStatus = "failed"
)

const (
	ChannelInApp = "in_app"
	ChannelEmail = "email"
)

// MaxDeliveryRetries bounds how often the dispatcher retries a failed send
const MaxDeliveryRetries = 3

// StudentNotification is a dashboard notification for one student
type StudentNotification struct {
	ID             uint                 `gorm:"primaryKey" json:"id"`
	CreatedAt      time.Time            `json:"created_at"`
	UpdatedAt      time.Time            `json:"updated_at"`
	UserID         uint                 `gorm:"index;not null" json:"user_id"`
	Type           NotificationType     `gorm:"type:varchar(20);not null" json:"type"`
	Priority       NotificationPriority `gorm:"type:varchar(10);default:'medium'" json:"priority"`
	Status         NotificationStatus   `gorm:"type:varchar(10);default:'unread';index" json:"status"`
	Title          string               `gorm:"type:varchar(255);not null" json:"title"`
	Message        string               `gorm:"type:text" json:"message"`
	Channels       pq.StringArray       `gorm:"type:text[]" json:"channels"`
	DeliveryStatus DeliveryStatus       `gorm:"type:varchar(10);default:'pending';index" json:"delivery_status"`
	RetryCount     int                  `gorm:"default:0" json:"retry_count"`
	ScheduledAt    *time.Time           `gorm:"index" json:"scheduled_at,omitempty"`
	SentAt         *time.Time           `json:"sent_at,omitempty"`
	ReadAt         *time.Time           `json:"read_at,omitempty"`
	Metadata       datatypes.JSON       `gorm:"type:jsonb" json:"metadata,omitempty"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (StudentNotification) TableName() string {
	return "student_notifications"
}

// HasChannel reports whether the notification is routed to the given channel
func (n *StudentNotification) HasChannel(channel string) bool {
	for _, c := range n.Channels {
		if c == channel {
			return true
		}
	}
	return false
}

// NotificationResponse represents the API response format for a notification
type NotificationResponse struct {
	ID          uint                 `json:"id"`
	Type        NotificationType     `json:"type"`
	Priority    NotificationPriority `json:"priority"`
	Status      NotificationStatus   `json:"status"`
	Title       string               `json:"title"`
	Message     string               `json:"message"`
	Metadata    datatypes.JSON       `json:"metadata,omitempty"`
	ScheduledAt *time.Time           `json:"scheduled_at,omitempty"`
	ReadAt      *time.Time           `json:"read_at,omitempty"`
	CreatedAt   time.Time            `json:"created_at"`
}

func (n *StudentNotification) ToResponse() NotificationResponse {
	return NotificationResponse{
		ID:          n.ID,
		Type:        n.Type,
		Priority:    n.Priority,
		Status:      n.Status,
		Title:       n.Title,
		Message:     n.Message,
		Metadata:    n.Metadata,
		ScheduledAt: n.ScheduledAt,
		ReadAt:      n.ReadAt,
		CreatedAt:   n.CreatedAt,
	}
}
