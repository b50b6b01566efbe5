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
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SessionService assembles personalized learning sessions. Content comes from
// the generator when one is reachable; otherwise a deterministic template is
// used so a session always starts.
type SessionService struct {
	sessionRepo    *repository.SessionRepository
	profileService *ProfileService
	generator      ContentGenerator
	logger         *zap.Logger
}

func NewSessionService(sessionRepo *repository.SessionRepository, profileService *ProfileService, generator ContentGenerator, logger *zap.Logger) *SessionService {
	return &SessionService{
		sessionRepo:    sessionRepo,
		profileService: profileService,
		generator:      generator,
		logger:         logger,
	}
}

type StartSessionInput struct {
	Subject string `json:"subject" binding:"required,max=128"`
	Topic   string `json:"topic" binding:"required,max=128"`
}

func (s *SessionService) StartSession(ctx context.Context, studentRef uint, input StartSessionInput) (*model.LearningSession, error) {
	config, analysis, err := s.profileService.ComputeConfig(ctx, studentRef)
	if err != nil {
		return nil, err
	}

	blocks, source := s.generateContent(ctx, input.Subject, input.Topic, config, analysis)

	blocksJSON, err := json.Marshal(blocks)
	if err != nil {
		return nil, err
	}
	configJSON, err := json.Marshal(config)
	if err != nil {
		return nil, err
	}

	session := &model.LearningSession{
		StudentRef:             studentRef,
		Subject:                input.Subject,
		Topic:                  input.Topic,
		Status:                 "in_progress",
		Progress:               0,
		DifficultyLevel:        config.DifficultyLevel,
		ContentSource:          source,
		ContentBlocks:          blocksJSON,
		PersonalizationApplied: configJSON,
		StartedAt:              time.Now(),
	}

	if err := s.sessionRepo.Create(session); err != nil {
		return nil, err
	}

	s.logger.Info("learning session started",
		zap.String("sessionId", session.ID),
		zap.Uint("studentRef", studentRef),
		zap.String("subject", input.Subject),
		zap.String("contentSource", source))
	return session, nil
}

func (s *SessionService) generateContent(ctx context.Context, subject, topic string, config *model.PersonalizationConfig, analysis *model.PerformanceAnalysis) ([]model.ContentBlock, string) {
	system := "You are a tutoring content writer. Respond with a JSON array of objects " +
		`with fields "type" (explanation, example or practice), "title" and "content". No prose outside the JSON.`
	prompt := fmt.Sprintf(
		"Create a %s lesson on %q for a %s learner at difficulty level %d of 5. "+
			"Recent performance average: %.0f. Preferred explanation style: %s. "+
			"Produce one explanation block, one example block and one practice block.",
		subject, topic, config.LearningStyle, config.DifficultyLevel,
		analysis.OverallPerformance.RecentPerformance, config.ContentPreferences.ExplanationStyle)

	raw, err := s.generator.Chat(ctx, system, prompt)
	if err == nil {
		if blocks, perr := parseContentBlocks(raw); perr == nil {
			return blocks, "llm"
		} else {
			s.logger.Warn("discarding unparseable generated lesson", zap.Error(perr))
		}
	} else {
		s.logger.Warn("lesson generation failed, using template", zap.Error(err))
	}

	monitoring.GenerationFallbacks.WithLabelValues("session").Inc()
	return templateContentBlocks(subject, topic, config), "template"
}

func parseContentBlocks(raw string) ([]model.ContentBlock, error) {
	var blocks []model.ContentBlock
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), &blocks); err != nil {
		return nil, err
	}
	if len(blocks) == 0 {
		return nil, fmt.Errorf("generated lesson has no content blocks")
	}
	return blocks, nil
}

// stripCodeFence removes a surrounding markdown code fence, which chat models
// often add around JSON even when told not to.
func stripCodeFence(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}

func templateContentBlocks(subject, topic string, config *model.PersonalizationConfig) []model.ContentBlock {
	pace := config.Pacing.Pace
	return []model.ContentBlock{
		{
			Type:  "explanation",
			Title: fmt.Sprintf("Understanding %s", topic),
			Content: fmt.Sprintf(
				"This lesson introduces %s in %s. Work through each section at a %s pace and make sure the core idea is clear before moving on.",
				topic, subject, pace),
		},
		{
			Type:  "example",
			Title: fmt.Sprintf("Worked example: %s", topic),
			Content: fmt.Sprintf(
				"Start with a basic %s problem and solve it step by step, writing down the reasoning behind each step.",
				topic),
		},
		{
			Type:  "practice",
			Title: "Practice on your own",
			Content: fmt.Sprintf(
				"Attempt three problems on %s at difficulty level %d. Check each answer before attempting the next.",
				topic, config.DifficultyLevel),
		},
	}
}

type UpdateSessionInput struct {
	Progress *float64 `json:"progress" binding:"omitempty,min=0,max=100"`
	Status   string   `json:"status" binding:"omitempty,oneof=in_progress completed abandoned"`
}

func (s *SessionService) UpdateSession(id string, input UpdateSessionInput) (*model.LearningSession, error) {
	session, err := s.GetSession(id)
	if err != nil {
		return nil, err
	}

	if input.Progress != nil {
		session.Progress = *input.Progress
	}
	if input.Status != "" {
		session.Status = input.Status
		if input.Status != "in_progress" && session.EndedAt == nil {
			now := time.Now()
			session.EndedAt = &now
		}
	}

	if err := s.sessionRepo.Update(session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *SessionService) GetSession(id string) (*model.LearningSession, error) {
	session, err := s.sessionRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrSessionNotFound
		}
		return nil, err
	}
	return session, nil
}

func (s *SessionService) ListSessions(studentRef uint, limit int) ([]model.LearningSession, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.sessionRepo.ListByStudent(studentRef, limit)
}
