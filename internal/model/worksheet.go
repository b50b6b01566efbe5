package model

import "encoding/json"

// swagger:model Worksheet
type Worksheet struct {
	UUIDBase
	StudentRef uint   `gorm:"index;not null" json:"studentRef"`
	Title      string `gorm:"size:255;not null" json:"title"`
	Subject    string `gorm:"size:128;not null" json:"subject"`
	Topic      string `gorm:"size:128;not null" json:"topic"`

	DifficultyLevel      int    `gorm:"default:3" json:"difficultyLevel"` // 1-5
	EstimatedTimeMinutes int    `json:"estimatedTimeMinutes"`
	Source               string `gorm:"size:20" json:"source"` // llm, template

	Instructions           string          `gorm:"type:text" json:"instructions"`
	Problems               json.RawMessage `gorm:"type:json;not null" json:"problems"`
	LearningObjectives     json.RawMessage `gorm:"type:json" json:"learningObjectives,omitempty"`
	PersonalizationApplied json.RawMessage `gorm:"type:json" json:"personalizationApplied,omitempty"`
}

func (Worksheet) TableName() string {
	return "worksheets"
}

// WorksheetProblem is one generated practice question.
type WorksheetProblem struct {
	ID            int      `json:"id"`
	Type          string   `json:"type"` // multiple_choice, short_answer, problem_solving
	Question      string   `json:"question"`
	Options       []string `json:"options,omitempty"`
	CorrectAnswer string   `json:"correctAnswer,omitempty"`
	SolutionSteps []string `json:"solutionSteps,omitempty"`
	Explanation   string   `json:"explanation,omitempty"`
	TimeMinutes   int      `json:"timeMinutes"`
}
