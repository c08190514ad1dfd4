package model

import (
	"time"

	"gorm.io/datatypes"
)

type EssayType string

const (
	EssayPersonalStatement EssayType = "personal_statement"
	EssaySupplemental      EssayType = "supplemental"
	EssayScholarship       EssayType = "scholarship"
	EssayCommonApp         EssayType = "common_app"
)

type EssayStatus string

const (
	EssayDraft       EssayStatus = "draft"
	EssaySubmitted   EssayStatus = "submitted"
	EssayUnderReview EssayStatus = "under_review"
	EssayReviewed    EssayStatus = "reviewed"
	EssayRevised     EssayStatus = "revised"
)

// Essay is an application essay drafted on the dashboard
type Essay struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	UserID       uint           `gorm:"index;not null" json:"user_id"`
	Title        string         `gorm:"type:varchar(200);not null" json:"title"`
	Type         EssayType      `gorm:"type:varchar(30);not null" json:"type"`
	Status       EssayStatus    `gorm:"type:varchar(20);default:'draft';index" json:"status"`
	College      string         `gorm:"type:varchar(200)" json:"college,omitempty"`
	Prompt       string         `gorm:"type:text" json:"prompt,omitempty"`
	Content      string         `gorm:"type:text" json:"content"`
	WordCount    int            `json:"word_count"`
	WordLimit    int            `gorm:"default:650" json:"word_limit"`
	OverallScore *float64       `json:"overall_score,omitempty"`
	Feedback     datatypes.JSON `gorm:"type:jsonb" json:"feedback,omitempty"`
	SourceURL    string         `gorm:"type:text" json:"source_url,omitempty"`
	ReviewedAt   *time.Time     `json:"reviewed_at,omitempty"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// EssayFeedback is the structured review stored in Essay.Feedback
type EssayFeedback struct {
	OverallScore  float64           `json:"overall_score"`
	Feedback      map[string]string `json:"feedback"`
	Strengths     []string          `json:"strengths"`
	Weaknesses    []string          `json:"weaknesses"`
	Suggestions   []string          `json:"suggestions"`
	GrammarIssues []string          `json:"grammar_issues"`
}

// OverLimit reports whether the essay exceeds its word limit
func (e *Essay) OverLimit() bool {
	return e.WordLimit > 0 && e.WordCount > e.WordLimit
}
