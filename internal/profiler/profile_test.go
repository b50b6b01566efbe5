package profiler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"edu_agent_backend/internal/model"
	"edu_agent_backend/internal/util"
)

func TestValidateRecords(t *testing.T) {
	valid := []model.AcademicRecord{{Score: 80, MaxScore: 100}}
	assert.NoError(t, ValidateRecords(valid))

	tests := []struct {
		name   string
		record model.AcademicRecord
	}{
		{"zero max score", model.AcademicRecord{Score: 0, MaxScore: 0}},
		{"negative score", model.AcademicRecord{Score: -1, MaxScore: 100}},
		{"score above max", model.AcademicRecord{Score: 101, MaxScore: 100}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRecords([]model.AcademicRecord{tt.record})
			assert.ErrorIs(t, err, util.ErrInvalidScore)
		})
	}
}

func TestAnalyzeEmptyReturnsDefault(t *testing.T) {
	analysis, err := Analyze(nil)
	require.NoError(t, err)

	assert.Equal(t, 50.0, analysis.OverallPerformance.AverageScore)
	assert.Equal(t, 100.0, analysis.OverallPerformance.ConsistencyScore)
	assert.Equal(t, 50.0, analysis.OverallPerformance.RecentPerformance)
	assert.Equal(t, model.TrendStable, analysis.LearningTrends.RecentTrend)
	assert.Equal(t, model.DifficultyMedium, analysis.DifficultyPreferences.OptimalDifficulty)
	assert.Equal(t, 0.5, analysis.DifficultyPreferences.ChallengeTolerance)
	assert.Equal(t, 2, analysis.RecommendedLevel)
	assert.Empty(t, analysis.SubjectStrengths.Strengths)
	assert.Empty(t, analysis.LearningGaps)
}

func TestAnalyzeRejectsInvalidRecords(t *testing.T) {
	_, err := Analyze([]model.AcademicRecord{{Score: 120, MaxScore: 100}})
	assert.ErrorIs(t, err, util.ErrInvalidScore)
}

func TestAnalyzeIsDeterministic(t *testing.T) {
	records := scored(70, 75, 78, 82, 66, 90)
	records[2].Subject = "physics"
	records[4].Subject = "history"

	first, err := Analyze(records)
	require.NoError(t, err)
	second, err := Analyze(records)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestAnalyzeMixedSubjects(t *testing.T) {
	records := []model.AcademicRecord{
		{Subject: "Math", Score: 85, MaxScore: 100, DifficultyLevel: model.DifficultyMedium, AssessmentDate: day(0)},
		{Subject: "Math", Score: 78, MaxScore: 100, DifficultyLevel: model.DifficultyMedium, AssessmentDate: day(1)},
		{Subject: "English", Score: 60, MaxScore: 100, DifficultyLevel: model.DifficultyEasy, AssessmentDate: day(2)},
	}

	analysis, err := Analyze(records)
	require.NoError(t, err)

	assert.InDelta(t, 74.33, analysis.OverallPerformance.AverageScore, 0.01)
	assert.Contains(t, analysis.SubjectStrengths.Weaknesses, "English")
	assert.Equal(t, "English", analysis.SubjectStrengths.Weaknesses[0])

	require.Len(t, analysis.LearningGaps, 1)
	gap := analysis.LearningGaps[0]
	assert.Equal(t, "English", gap.Subject)
	assert.Equal(t, 60.0, gap.AverageScore)
	// 60 is not below 60, so the gap stays medium priority.
	assert.Equal(t, model.PriorityMedium, gap.Priority)
}

func TestAnalyzeEndToEnd(t *testing.T) {
	records := scored(70, 75, 78)
	analysis, err := Analyze(records)
	require.NoError(t, err)

	assert.InDelta(t, 74.333, analysis.OverallPerformance.AverageScore, 0.001)
	assert.InDelta(t, 74.333, analysis.OverallPerformance.RecentPerformance, 0.001)
	assert.Equal(t, 0.0, analysis.OverallPerformance.ImprovementRate)
	assert.Equal(t, []string{"math"}, analysis.SubjectStrengths.Strengths)
	// recent 74.333: floor((74.333-50)/15) = 1, floored to 2
	assert.Equal(t, 2, analysis.RecommendedLevel)
	assert.Empty(t, analysis.LearningGaps)
}
