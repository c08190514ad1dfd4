package model

import "time"

// CronJobLog records one run of a scheduled job
type CronJobLog struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	JobName     string     `gorm:"type:varchar(100);not null;index" json:"job_name"`
	Status      string     `gorm:"type:varchar(20);not null" json:"status"` // started, completed, failed
	StartedAt   time.Time  `gorm:"not null" json:"started_at"`
	CompletedAt *time.Time `json:"completed_at"`
	DurationMs  int64      `json:"duration_ms"`
	Processed   int64      `json:"processed"`
	ErrorMsg    string     `gorm:"type:text" json:"error_msg,omitempty"`
}

func (CronJobLog) TableName() string {
	return "cron_job_logs"
}
