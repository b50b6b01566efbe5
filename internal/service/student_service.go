package service

import (
	"context"
	"edu_agent_backend/internal/model"
	"edu_agent_backend/internal/profiler"
	"edu_agent_backend/internal/repository"
	"edu_agent_backend/internal/util"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type StudentService struct {
	studentRepo    *repository.StudentRepository
	recordRepo     *repository.RecordRepository
	profileService *ProfileService
	logger         *zap.Logger
}

func NewStudentService(studentRepo *repository.StudentRepository, recordRepo *repository.RecordRepository, profileService *ProfileService, logger *zap.Logger) *StudentService {
	return &StudentService{
		studentRepo:    studentRepo,
		recordRepo:     recordRepo,
		profileService: profileService,
		logger:         logger,
	}
}

type CreateStudentInput struct {
	StudentID          string  `json:"studentId" binding:"required,max=64"`
	Name               string  `json:"name" binding:"required,max=255"`
	Grade              int     `json:"grade" binding:"required,min=1,max=12"`
	SchoolID           string  `json:"schoolId" binding:"max=64"`
	LearningStyle      string  `json:"learningStyle" binding:"omitempty,oneof=visual auditory kinesthetic"`
	CurrentLevel       float64 `json:"currentLevel" binding:"omitempty,min=0,max=100"`
	LanguagePreference string  `json:"languagePreference" binding:"max=32"`
}

func (s *StudentService) CreateStudent(input CreateStudentInput) (*model.Student, error) {
	exists, err := s.studentRepo.ExistsByStudentID(input.StudentID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, util.ErrStudentIDTaken
	}

	student := &model.Student{
		StudentID:          input.StudentID,
		Name:               input.Name,
		Grade:              input.Grade,
		SchoolID:           input.SchoolID,
		LearningStyle:      model.StyleVisual,
		CurrentLevel:       50,
		LanguagePreference: "english",
		IsActive:           true,
	}
	if input.LearningStyle != "" {
		student.LearningStyle = model.LearningStyle(input.LearningStyle)
	}
	if input.CurrentLevel > 0 {
		student.CurrentLevel = input.CurrentLevel
	}
	if input.LanguagePreference != "" {
		student.LanguagePreference = input.LanguagePreference
	}

	if err := s.studentRepo.Create(student); err != nil {
		return nil, err
	}

	s.logger.Info("student created",
		zap.String("studentId", student.StudentID),
		zap.Uint("id", student.ID))
	return student, nil
}

func (s *StudentService) GetStudent(id uint) (*model.Student, error) {
	student, err := s.studentRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrStudentNotFound
		}
		return nil, err
	}
	return student, nil
}

type RecordInput struct {
	Subject          string  `json:"subject" binding:"required,max=128"`
	Topic            string  `json:"topic" binding:"max=128"`
	Score            float64 `json:"score" binding:"min=0"`
	MaxScore         float64 `json:"maxScore" binding:"required,gt=0"`
	AssessmentType   string  `json:"assessmentType" binding:"omitempty,oneof=exam quiz assignment project homework"`
	DifficultyLevel  string  `json:"difficultyLevel" binding:"omitempty,oneof=easy medium hard very_hard"`
	AssessmentDate   string  `json:"assessmentDate" binding:"required"`
	Attempts         int     `json:"attempts" binding:"omitempty,min=1"`
	TimeTakenMinutes *int    `json:"timeTakenMinutes" binding:"omitempty,min=0"`
}

// IngestRecords validates and stores a batch of assessment results and drops
// the cached analysis so subsequent profile reads see the new data. The batch
// is all-or-nothing: one invalid record rejects the whole request.
func (s *StudentService) IngestRecords(ctx context.Context, studentRef uint, inputs []RecordInput) ([]model.AcademicRecord, error) {
	if _, err := s.GetStudent(studentRef); err != nil {
		return nil, err
	}

	records := make([]model.AcademicRecord, 0, len(inputs))
	for _, in := range inputs {
		date, err := time.Parse(time.RFC3339, in.AssessmentDate)
		if err != nil {
			date, err = time.Parse("2006-01-02", in.AssessmentDate)
			if err != nil {
				return nil, util.ErrInvalidAssessmentDate
			}
		}
		attempts := in.Attempts
		if attempts == 0 {
			attempts = 1
		}
		records = append(records, model.AcademicRecord{
			StudentRef:       studentRef,
			Subject:          in.Subject,
			Topic:            in.Topic,
			Score:            in.Score,
			MaxScore:         in.MaxScore,
			AssessmentType:   in.AssessmentType,
			DifficultyLevel:  model.DifficultyLevel(in.DifficultyLevel),
			AssessmentDate:   date,
			Attempts:         attempts,
			TimeTakenMinutes: in.TimeTakenMinutes,
		})
	}

	if err := profiler.ValidateRecords(records); err != nil {
		return nil, err
	}

	if err := s.recordRepo.CreateBatch(records); err != nil {
		return nil, err
	}

	s.profileService.InvalidateCache(ctx, studentRef)

	s.logger.Info("academic records ingested",
		zap.Uint("studentRef", studentRef),
		zap.Int("count", len(records)))
	return records, nil
}

func (s *StudentService) ListRecords(studentRef uint) ([]model.AcademicRecord, error) {
	if _, err := s.GetStudent(studentRef); err != nil {
		return nil, err
	}
	return s.recordRepo.ListByStudent(studentRef)
}
