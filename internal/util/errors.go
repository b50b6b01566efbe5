package util

import "errors"

var (
	ErrStudentNotFound       = errors.New("student not found")
	ErrStudentIDTaken        = errors.New("student id already registered")
	ErrSessionNotFound       = errors.New("session not found")
	ErrWorksheetNotFound     = errors.New("worksheet not found")
	ErrInvalidScore          = errors.New("score must be within [0, max_score] and max_score must be positive")
	ErrInvalidLearningStyle  = errors.New("learning style must be visual, auditory or kinesthetic")
	ErrInvalidAssessmentDate = errors.New("assessment date must be RFC3339 or YYYY-MM-DD")
)
