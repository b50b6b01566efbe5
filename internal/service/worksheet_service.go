package service

import (
	"context"
	"edu_agent_backend/internal/model"
	"edu_agent_backend/internal/repository"
	"edu_agent_backend/internal/util"
	"edu_agent_backend/pkg/monitoring"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type WorksheetService struct {
	worksheetRepo  *repository.WorksheetRepository
	profileService *ProfileService
	generator      ContentGenerator
	logger         *zap.Logger
}

func NewWorksheetService(worksheetRepo *repository.WorksheetRepository, profileService *ProfileService, generator ContentGenerator, logger *zap.Logger) *WorksheetService {
	return &WorksheetService{
		worksheetRepo:  worksheetRepo,
		profileService: profileService,
		generator:      generator,
		logger:         logger,
	}
}

type GenerateWorksheetInput struct {
	Subject      string `json:"subject" binding:"required,max=128"`
	Topic        string `json:"topic" binding:"required,max=128"`
	ProblemCount int    `json:"problemCount" binding:"omitempty,min=1,max=20"`
}

func (s *WorksheetService) GenerateWorksheet(ctx context.Context, studentRef uint, input GenerateWorksheetInput) (*model.Worksheet, error) {
	config, analysis, err := s.profileService.ComputeConfig(ctx, studentRef)
	if err != nil {
		return nil, err
	}

	count := input.ProblemCount
	if count == 0 {
		count = 5
	}

	problems, source := s.generateProblems(ctx, input.Subject, input.Topic, count, config, analysis)

	problemsJSON, err := json.Marshal(problems)
	if err != nil {
		return nil, err
	}
	configJSON, err := json.Marshal(config)
	if err != nil {
		return nil, err
	}
	objectives, _ := json.Marshal([]string{
		fmt.Sprintf("Apply %s concepts to solve problems independently", input.Topic),
		fmt.Sprintf("Build fluency in %s at difficulty level %d", input.Topic, config.DifficultyLevel),
	})

	totalMinutes := 0
	for _, p := range problems {
		totalMinutes += p.TimeMinutes
	}

	worksheet := &model.Worksheet{
		StudentRef:           studentRef,
		Title:                fmt.Sprintf("%s practice: %s", input.Subject, input.Topic),
		Subject:              input.Subject,
		Topic:                input.Topic,
		DifficultyLevel:      config.DifficultyLevel,
		EstimatedTimeMinutes: totalMinutes,
		Source:               source,
		Instructions: fmt.Sprintf(
			"Complete all %d problems. Show your working for each answer and review the explanations afterwards.",
			len(problems)),
		Problems:               problemsJSON,
		LearningObjectives:     objectives,
		PersonalizationApplied: configJSON,
	}

	if err := s.worksheetRepo.Create(worksheet); err != nil {
		return nil, err
	}

	s.logger.Info("worksheet generated",
		zap.String("worksheetId", worksheet.ID),
		zap.Uint("studentRef", studentRef),
		zap.Int("problems", len(problems)),
		zap.String("source", source))
	return worksheet, nil
}

func (s *WorksheetService) generateProblems(ctx context.Context, subject, topic string, count int, config *model.PersonalizationConfig, analysis *model.PerformanceAnalysis) ([]model.WorksheetProblem, string) {
	system := "You are a worksheet author. Respond with a JSON array of problem objects with fields " +
		`"id", "type" (multiple_choice, short_answer or problem_solving), "question", "options", ` +
		`"correctAnswer", "solutionSteps", "explanation" and "timeMinutes". No prose outside the JSON.`
	prompt := fmt.Sprintf(
		"Write %d %s problems on %q at difficulty level %d of 5 for a %s learner. "+
			"Student's recent average is %.0f; mix problem types and keep wording at that level.",
		count, subject, topic, config.DifficultyLevel, config.LearningStyle,
		analysis.OverallPerformance.RecentPerformance)

	raw, err := s.generator.Chat(ctx, system, prompt)
	if err == nil {
		if problems, perr := parseProblems(raw, count); perr == nil {
			return problems, "llm"
		} else {
			s.logger.Warn("discarding unparseable generated worksheet", zap.Error(perr))
		}
	} else {
		s.logger.Warn("worksheet generation failed, using template", zap.Error(err))
	}

	monitoring.GenerationFallbacks.WithLabelValues("worksheet").Inc()
	return templateProblems(subject, topic, count, config.DifficultyLevel), "template"
}

func parseProblems(raw string, count int) ([]model.WorksheetProblem, error) {
	var problems []model.WorksheetProblem
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), &problems); err != nil {
		return nil, err
	}
	if len(problems) == 0 {
		return nil, fmt.Errorf("generated worksheet has no problems")
	}
	if len(problems) > count {
		problems = problems[:count]
	}
	for i := range problems {
		problems[i].ID = i + 1
		if problems[i].TimeMinutes <= 0 {
			problems[i].TimeMinutes = 5
		}
	}
	return problems, nil
}

func (s *WorksheetService) GetWorksheet(id string) (*model.Worksheet, error) {
	worksheet, err := s.worksheetRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrWorksheetNotFound
		}
		return nil, err
	}
	return worksheet, nil
}

func (s *WorksheetService) ListWorksheets(studentRef uint, page, limit int) ([]model.Worksheet, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 10
	}
	return s.worksheetRepo.ListByStudent(studentRef, page, limit)
}
