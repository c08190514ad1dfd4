package model

import "time"

// SavedCollege marks a catalog college as saved by a student
type SavedCollege struct {
	UserID    uint      `gorm:"primaryKey" json:"user_id"`
	CollegeID int       `gorm:"primaryKey" json:"college_id"`
	CreatedAt time.Time `json:"created_at"`
}
