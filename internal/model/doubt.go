package model

import "encoding/json"

// swagger:model DoubtQuery
type DoubtQuery struct {
	UUIDBase
	StudentRef uint   `gorm:"index;not null" json:"studentRef"`
	Question   string `gorm:"type:text;not null" json:"question"`
	Context    string `gorm:"type:text" json:"context,omitempty"`
	Subject    string `gorm:"size:128" json:"subject,omitempty"`
	Topic      string `gorm:"size:128" json:"topic,omitempty"`

	Response        string  `gorm:"type:text" json:"response"`
	ResponseSource  string  `gorm:"size:20" json:"responseSource"` // llm, template
	ConfidenceScore float64 `json:"confidenceScore"`

	Analysis json.RawMessage `gorm:"type:json" json:"analysis,omitempty"`
	Strategy json.RawMessage `gorm:"type:json" json:"strategy,omitempty"`

	ResolutionStatus string `gorm:"size:20;default:'resolved'" json:"resolutionStatus"`
}

func (DoubtQuery) TableName() string {
	return "doubt_queries"
}
