package model

import (
	"time"

	"gorm.io/datatypes"
)

// AdminAuditLog records one mutating admin request
type AdminAuditLog struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	AdminID    uint           `gorm:"not null;index" json:"admin_id"`
	Action     string         `gorm:"type:varchar(100);not null;index" json:"action"` // e.g. "lead_delete"
	Resource   string         `gorm:"type:varchar(100);index" json:"resource"`        // e.g. "leads"
	ResourceID string         `gorm:"type:varchar(64)" json:"resource_id,omitempty"`
	Payload    datatypes.JSON `gorm:"type:jsonb" json:"payload,omitempty"`
	Status     int            `json:"status"`
	IPAddress  string         `gorm:"type:varchar(45)" json:"ip_address"`
	UserAgent  string         `gorm:"type:text" json:"user_agent"`
	CreatedAt  time.Time      `gorm:"index" json:"created_at"`
}

// TableName specifies the table name for AdminAuditLog
func (AdminAuditLog) TableName() string {
	return "admin_audit_logs"
}
