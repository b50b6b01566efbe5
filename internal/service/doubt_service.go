package service

import (
	"context"
	"edu_agent_backend/internal/model"
	"edu_agent_backend/internal/profiler"
	"edu_agent_backend/internal/repository"
	"edu_agent_backend/pkg/monitoring"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// DoubtService answers student questions. Every question is classified and a
// response strategy selected before generation, so the strategy is recorded
// even when the answer itself falls back to a template.
type DoubtService struct {
	doubtRepo      *repository.DoubtRepository
	studentService *StudentService
	profileService *ProfileService
	generator      ContentGenerator
	logger         *zap.Logger
}

func NewDoubtService(doubtRepo *repository.DoubtRepository, studentService *StudentService, profileService *ProfileService, generator ContentGenerator, logger *zap.Logger) *DoubtService {
	return &DoubtService{
		doubtRepo:      doubtRepo,
		studentService: studentService,
		profileService: profileService,
		generator:      generator,
		logger:         logger,
	}
}

type DoubtInput struct {
	StudentRef uint   `json:"studentRef" binding:"required"`
	Question   string `json:"question" binding:"required,max=2000"`
	Context    string `json:"context" binding:"max=2000"`
	Subject    string `json:"subject" binding:"max=128"`
	Topic      string `json:"topic" binding:"max=128"`
}

func (s *DoubtService) Resolve(ctx context.Context, input DoubtInput) (*model.DoubtQuery, error) {
	student, err := s.studentService.GetStudent(input.StudentRef)
	if err != nil {
		return nil, err
	}

	level, err := s.profileService.EffectiveLevel(ctx, student)
	if err != nil {
		return nil, err
	}

	qa := profiler.AnalyzeQuestion(input.Question)
	strategy := profiler.SelectStrategy(qa, level, student.LearningStyle)

	response, source, confidence := s.generateAnswer(ctx, input, qa, strategy)

	qaJSON, err := json.Marshal(qa)
	if err != nil {
		return nil, err
	}
	strategyJSON, err := json.Marshal(strategy)
	if err != nil {
		return nil, err
	}

	doubt := &model.DoubtQuery{
		StudentRef:       input.StudentRef,
		Question:         input.Question,
		Context:          input.Context,
		Subject:          input.Subject,
		Topic:            input.Topic,
		Response:         response,
		ResponseSource:   source,
		ConfidenceScore:  confidence,
		Analysis:         qaJSON,
		Strategy:         strategyJSON,
		ResolutionStatus: "resolved",
	}

	if err := s.doubtRepo.Create(doubt); err != nil {
		return nil, err
	}

	s.logger.Info("doubt resolved",
		zap.String("doubtId", doubt.ID),
		zap.Uint("studentRef", input.StudentRef),
		zap.String("questionType", qa.QuestionType),
		zap.String("source", source))
	return doubt, nil
}

func (s *DoubtService) generateAnswer(ctx context.Context, input DoubtInput, qa model.QuestionAnalysis, strategy model.ResponseStrategy) (string, string, float64) {
	system := fmt.Sprintf(
		"You are a patient tutor. Use a %s approach with a %s explanation style. "+
			"Include examples: %t. Use analogies: %t. Suggest practice: %t. "+
			"The student's question was classified as %s with %s complexity.",
		strategy.Approach, strategy.ExplanationStyle,
		strategy.IncludeExamples, strategy.UseAnalogies, strategy.ProvidePractice,
		qa.QuestionType, qa.ComplexityLevel)

	var sb strings.Builder
	sb.WriteString(input.Question)
	if input.Context != "" {
		sb.WriteString("\n\nContext: ")
		sb.WriteString(input.Context)
	}
	if input.Subject != "" {
		sb.WriteString(fmt.Sprintf("\n\nSubject: %s", input.Subject))
	}

	answer, err := s.generator.Chat(ctx, system, sb.String())
	if err == nil && strings.TrimSpace(answer) != "" {
		return answer, "llm", 0.9
	}
	if err != nil {
		s.logger.Warn("answer generation failed, using template", zap.Error(err))
	}

	monitoring.GenerationFallbacks.WithLabelValues("doubt").Inc()
	return templateAnswer(input, qa, strategy), "template", 0.6
}

func templateAnswer(input DoubtInput, qa model.QuestionAnalysis, strategy model.ResponseStrategy) string {
	topic := input.Topic
	if topic == "" && len(qa.KeyConcepts) > 0 {
		topic = qa.KeyConcepts[0]
	}
	if topic == "" {
		topic = "this concept"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Good question about %s. Let's work through it together.\n\n", topic))

	switch qa.QuestionType {
	case "definition":
		sb.WriteString(fmt.Sprintf("Start by writing down what you already know about %s, then check your notes or textbook for the formal definition and compare the two.", topic))
	case "procedure":
		sb.WriteString(fmt.Sprintf("Break the task into small steps: identify the starting point, list what needs to happen at each stage, and try one step at a time with %s.", topic))
	case "problem_solving":
		sb.WriteString("Re-read the problem and underline what it asks for. List the given information, pick the method that connects them, and work forward one step at a time.")
	case "comparison":
		sb.WriteString(fmt.Sprintf("Make a two-column table and list the properties of each side. The differences that remain after the shared properties are the answer to your %s question.", topic))
	default:
		sb.WriteString(fmt.Sprintf("Review the section covering %s and try to restate the main idea in your own words. If a specific step is unclear, ask about that step directly.", topic))
	}

	if strategy.ProvidePractice {
		sb.WriteString("\n\nOnce it makes sense, try a similar problem on your own to confirm your understanding.")
	}
	return sb.String()
}

func (s *DoubtService) History(studentRef uint, limit int) ([]model.DoubtQuery, error) {
	if _, err := s.studentService.GetStudent(studentRef); err != nil {
		return nil, err
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.doubtRepo.ListByStudent(studentRef, limit)
}
