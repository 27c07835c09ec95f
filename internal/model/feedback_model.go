package model

import (
	"time"
)

// Sentiment labels the classifier is expected to produce.
const (
	SentimentPositive = "POSITIVE"
	SentimentNegative = "NEGATIVE"
	SentimentNeutral  = "NEUTRAL"
)

// Feedback statuses. Transitions only go PENDING -> RESOLVED.
const (
	StatusPending  = "PENDING"
	StatusResolved = "RESOLVED"
)

const DefaultLocation = "Main Block"

type Feedback struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	StudentID      string     `gorm:"index" json:"student_id"`
	Category       string     `gorm:"index" json:"category"`
	Location       string     `gorm:"default:Main Block" json:"location"`
	Text           string     `gorm:"type:text" json:"text"`
	SentimentLabel string     `gorm:"type:varchar(20)" json:"sentiment_label"`
	SentimentScore float64    `json:"sentiment_score"`
	Aspects        string     `json:"aspects"`
	Status         string     `gorm:"type:varchar(20);default:PENDING" json:"status"`
	ResolutionNote *string    `gorm:"type:text" json:"resolution_note"`
	CreatedAt      time.Time  `json:"created_at"`
	ResolvedAt     *time.Time `json:"resolved_at"`
}

func (f *Feedback) TableName() string {
	return "feedback"
}
