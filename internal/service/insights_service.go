package service

import (
	"context"
	"edu_agent_backend/internal/model"
	"edu_agent_backend/internal/profiler"
	"fmt"
)

// InsightsService turns an analysis into a human-readable progress report and
// study plan. It is a pure projection of the analysis; nothing here is stored.
type InsightsService struct {
	studentService *StudentService
	profileService *ProfileService
}

func NewInsightsService(studentService *StudentService, profileService *ProfileService) *InsightsService {
	return &InsightsService{
		studentService: studentService,
		profileService: profileService,
	}
}

type StudyPlanEntry struct {
	Subject        string `json:"subject"`
	Focus          string `json:"focus"`
	SessionsPerWeek int   `json:"sessions_per_week"`
	MinutesPerSession int `json:"minutes_per_session"`
}

type StudentInsights struct {
	StudentID       string                    `json:"student_id"`
	Name            string                    `json:"name"`
	Summary         string                    `json:"summary"`
	Analysis        model.PerformanceAnalysis `json:"analysis"`
	Personalization model.PersonalizationConfig `json:"personalization"`
	StudyPlan       []StudyPlanEntry          `json:"study_plan"`
	Recommendations []string                  `json:"recommendations"`
}

func (s *InsightsService) StudentInsights(ctx context.Context, studentRef uint) (*StudentInsights, error) {
	student, err := s.studentService.GetStudent(studentRef)
	if err != nil {
		return nil, err
	}

	analysis, err := s.profileService.ComputeAnalysis(ctx, studentRef)
	if err != nil {
		return nil, err
	}
	config := profiler.BuildConfig(analysis, student.LearningStyle)

	return &StudentInsights{
		StudentID:       student.StudentID,
		Name:            student.Name,
		Summary:         summarize(student, analysis),
		Analysis:        *analysis,
		Personalization: config,
		StudyPlan:       buildStudyPlan(analysis, config),
		Recommendations: buildRecommendations(analysis),
	}, nil
}

func summarize(student *model.Student, analysis *model.PerformanceAnalysis) string {
	op := analysis.OverallPerformance
	return fmt.Sprintf(
		"%s is averaging %.1f with a %s recent trend. Consistency is %.0f/100 and the recommended working level is %d of 5.",
		student.Name, op.AverageScore, analysis.LearningTrends.RecentTrend,
		op.ConsistencyScore, analysis.RecommendedLevel)
}

// buildStudyPlan allocates weekly sessions gap-first: high-priority gaps get
// three sessions, medium gaps two, and remaining strengths one maintenance
// session each.
func buildStudyPlan(analysis *model.PerformanceAnalysis, config model.PersonalizationConfig) []StudyPlanEntry {
	plan := make([]StudyPlanEntry, 0, len(analysis.LearningGaps)+len(analysis.SubjectStrengths.Strengths))
	covered := make(map[string]bool)

	for _, gap := range analysis.LearningGaps {
		sessions := 2
		if gap.Priority == model.PriorityHigh {
			sessions = 3
		}
		focus := "review fundamentals and retry recent assessment topics"
		if len(gap.WeakTopics) > 0 {
			focus = fmt.Sprintf("targeted practice on %s", gap.WeakTopics[0])
		}
		plan = append(plan, StudyPlanEntry{
			Subject:           gap.Subject,
			Focus:             focus,
			SessionsPerWeek:   sessions,
			MinutesPerSession: config.Pacing.SessionLengthMinutes,
		})
		covered[gap.Subject] = true
	}

	for _, subject := range analysis.SubjectStrengths.Strengths {
		if covered[subject] {
			continue
		}
		plan = append(plan, StudyPlanEntry{
			Subject:           subject,
			Focus:             "maintain momentum with stretch problems",
			SessionsPerWeek:   1,
			MinutesPerSession: config.Pacing.SessionLengthMinutes,
		})
	}

	return plan
}

func buildRecommendations(analysis *model.PerformanceAnalysis) []string {
	recs := make([]string, 0, 4)
	op := analysis.OverallPerformance

	if analysis.LearningTrends.RecentTrend == model.TrendDeclining {
		recs = append(recs, "Recent scores are trending down; shorten sessions and revisit the last two topics before introducing new material.")
	}
	if op.ConsistencyScore < 60 {
		recs = append(recs, "Scores vary a lot between assessments; a fixed daily practice slot usually stabilizes results.")
	}
	for _, gap := range analysis.LearningGaps {
		if gap.Priority == model.PriorityHigh {
			recs = append(recs, fmt.Sprintf("Prioritize %s this week; its average of %.1f needs attention before it blocks later topics.", gap.Subject, gap.AverageScore))
		}
	}
	if analysis.DifficultyPreferences.ChallengeTolerance >= 0.75 {
		recs = append(recs, "Strong results on hard material; mix in level-"+fmt.Sprint(min(5, analysis.RecommendedLevel+1))+" challenge problems to keep engagement high.")
	}
	if len(recs) == 0 {
		recs = append(recs, "Performance is steady; continue the current study rhythm and increase difficulty gradually.")
	}
	return recs
}
