package profiler

import (
	"edu_agent_backend/internal/model"
	"edu_agent_backend/internal/util"
)

// ValidateRecords rejects malformed score ranges at the boundary. Well-formed
// input makes every analysis function total; nothing past this point errors.
func ValidateRecords(records []model.AcademicRecord) error {
	for _, r := range records {
		if r.MaxScore <= 0 {
			return util.ErrInvalidScore
		}
		if r.Score < 0 || r.Score > r.MaxScore {
			return util.ErrInvalidScore
		}
	}
	return nil
}

// Analyze synthesizes the full performance analysis from a student's academic
// records. With no history it returns the fixed default profile for new
// students; that is the only branch that bypasses the aggregation pipeline.
func Analyze(records []model.AcademicRecord) (*model.PerformanceAnalysis, error) {
	if err := ValidateRecords(records); err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return DefaultAnalysis(), nil
	}

	return &model.PerformanceAnalysis{
		OverallPerformance:    OverallPerformance(records),
		SubjectStrengths:      SubjectStrengths(records),
		LearningTrends:        LearningTrends(records),
		DifficultyPreferences: DifficultyPreferences(records),
		RecommendedLevel:      RecommendedLevel(records),
		LearningGaps:          LearningGaps(records),
		StudyPatterns:         StudyPatterns(records),
	}, nil
}

// DefaultAnalysis is the profile for a student with no academic history yet.
// The literal values are part of the external contract; downstream
// personalization is tuned around them.
func DefaultAnalysis() *model.PerformanceAnalysis {
	return &model.PerformanceAnalysis{
		OverallPerformance: model.OverallPerformance{
			AverageScore:      50.0,
			ScoreStd:          0,
			ImprovementRate:   0.0,
			ConsistencyScore:  100,
			RecentPerformance: 50.0,
		},
		SubjectStrengths: model.SubjectStrengths{
			Strengths:     []string{},
			Weaknesses:    []string{},
			SubjectScores: map[string]float64{},
		},
		LearningTrends: model.LearningTrends{
			RecentTrend:  model.TrendStable,
			OverallTrend: model.TrendStable,
		},
		DifficultyPreferences: model.DifficultyPreferences{
			OptimalDifficulty:  model.DifficultyMedium,
			DifficultyScores:   map[model.DifficultyLevel]float64{},
			ChallengeTolerance: 0.5,
		},
		RecommendedLevel: 2,
		LearningGaps:     []model.LearningGap{},
		StudyPatterns: model.StudyPatterns{
			AssessmentTypePreferences: map[string]float64{},
		},
	}
}
