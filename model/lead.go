package model

import "time"

// Lead is a prospective student's name and phone captured from the counselor chat.
// Leads are append-only: there is no update path.
type Lead struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id" bson:"_id"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name" bson:"name"`
	Phone     string    `gorm:"type:varchar(10);not null" json:"phone" bson:"phone"`
	Source    string    `gorm:"type:varchar(30)" json:"source,omitempty" bson:"source,omitempty"`
	SessionID string    `gorm:"type:varchar(36);index" json:"session_id,omitempty" bson:"session_id,omitempty"`
	CreatedAt time.Time `gorm:"index;not null" json:"created_at" bson:"created_at"`
}

// TableName keeps the collection name shared with the document store
func (Lead) TableName() string {
	return "leads"
}
