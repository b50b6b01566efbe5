package model

import "time"

type LearningStyle string

const (
	StyleVisual      LearningStyle = "visual"
	StyleAuditory    LearningStyle = "auditory"
	StyleKinesthetic LearningStyle = "kinesthetic"
)

type DifficultyLevel string

const (
	DifficultyEasy     DifficultyLevel = "easy"
	DifficultyMedium   DifficultyLevel = "medium"
	DifficultyHard     DifficultyLevel = "hard"
	DifficultyVeryHard DifficultyLevel = "very_hard"
)

// swagger:model Student
type Student struct {
	BaseModel
	StudentID          string        `gorm:"size:64;uniqueIndex;not null" json:"studentId"`
	Name               string        `gorm:"size:255;not null" json:"name"`
	Grade              int           `gorm:"not null" json:"grade"`
	SchoolID           string        `gorm:"size:64;index" json:"schoolId"`
	LearningStyle      LearningStyle `gorm:"size:20;default:'visual'" json:"learningStyle"`
	CurrentLevel       float64       `gorm:"default:50" json:"currentLevel"` // seed 0-100, used only with no history
	LanguagePreference string        `gorm:"size:32;default:'english'" json:"languagePreference"`
	IsActive           bool          `gorm:"default:true" json:"isActive"`
}

func (Student) TableName() string {
	return "students"
}

// AcademicRecord is one scored assessment event. Records are immutable once
// created; a correction is a new record, never an update.
// swagger:model AcademicRecord
type AcademicRecord struct {
	BaseModel
	StudentRef       uint            `gorm:"index;not null" json:"studentRef"`
	Subject          string          `gorm:"size:128;not null" json:"subject"`
	Topic            string          `gorm:"size:128" json:"topic,omitempty"`
	Score            float64         `gorm:"not null" json:"score"`
	MaxScore         float64         `gorm:"not null" json:"maxScore"`
	AssessmentType   string          `gorm:"size:32" json:"assessmentType,omitempty"` // exam, quiz, assignment, project
	DifficultyLevel  DifficultyLevel `gorm:"size:20" json:"difficultyLevel,omitempty"`
	AssessmentDate   time.Time       `gorm:"not null;index" json:"assessmentDate"`
	Attempts         int             `gorm:"default:1" json:"attempts"`
	TimeTakenMinutes *int            `json:"timeTakenMinutes,omitempty"`
}

func (AcademicRecord) TableName() string {
	return "academic_records"
}
