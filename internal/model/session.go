package model

import (
	"encoding/json"
	"time"
)

// swagger:model LearningSession
type LearningSession struct {
	UUIDBase
	StudentRef uint   `gorm:"index;not null" json:"studentRef"`
	Subject    string `gorm:"size:128;not null" json:"subject"`
	Topic      string `gorm:"size:128" json:"topic"`
	Status     string `gorm:"size:20;default:'in_progress'" json:"status"` // in_progress, completed, abandoned
	Progress   float64 `gorm:"default:0" json:"progress"`

	DifficultyLevel int    `gorm:"default:3" json:"difficultyLevel"`
	ContentSource   string `gorm:"size:20" json:"contentSource"` // llm, template

	ContentBlocks          json.RawMessage `gorm:"type:json" json:"contentBlocks,omitempty"`
	PersonalizationApplied json.RawMessage `gorm:"type:json" json:"personalizationApplied,omitempty"`

	StartedAt time.Time  `json:"startedAt"`
	EndedAt   *time.Time `json:"endedAt,omitempty"`
}

func (LearningSession) TableName() string {
	return "learning_sessions"
}

// ContentBlock is one unit of generated lesson content.
type ContentBlock struct {
	Type    string `json:"type"` // explanation, example, practice
	Title   string `json:"title"`
	Content string `json:"content"`
}
