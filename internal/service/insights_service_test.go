package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"edu_agent_backend/internal/model"
	"edu_agent_backend/internal/profiler"
)

func TestBuildStudyPlanGapFirst(t *testing.T) {
	analysis := profiler.DefaultAnalysis()
	analysis.LearningGaps = []model.LearningGap{
		{Subject: "math", WeakTopics: []string{"fractions"}, AverageScore: 55, Priority: model.PriorityHigh},
		{Subject: "history", AverageScore: 65, Priority: model.PriorityMedium},
	}
	analysis.SubjectStrengths.Strengths = []string{"science", "math"}
	config := profiler.BuildConfig(analysis, model.StyleVisual)

	plan := buildStudyPlan(analysis, config)
	require.Len(t, plan, 3)

	assert.Equal(t, "math", plan[0].Subject)
	assert.Equal(t, 3, plan[0].SessionsPerWeek)
	assert.Contains(t, plan[0].Focus, "fractions")

	assert.Equal(t, "history", plan[1].Subject)
	assert.Equal(t, 2, plan[1].SessionsPerWeek)

	// math already covered by its gap; only science gets a maintenance slot.
	assert.Equal(t, "science", plan[2].Subject)
	assert.Equal(t, 1, plan[2].SessionsPerWeek)
}

func TestBuildRecommendationsFlagsProblems(t *testing.T) {
	analysis := profiler.DefaultAnalysis()
	analysis.LearningTrends.RecentTrend = model.TrendDeclining
	analysis.OverallPerformance.ConsistencyScore = 40
	analysis.LearningGaps = []model.LearningGap{
		{Subject: "math", AverageScore: 52, Priority: model.PriorityHigh},
	}

	recs := buildRecommendations(analysis)
	require.Len(t, recs, 3)
	assert.Contains(t, recs[0], "trending down")
	assert.Contains(t, recs[1], "vary a lot")
	assert.Contains(t, recs[2], "math")
}

func TestBuildRecommendationsSteadyDefault(t *testing.T) {
	recs := buildRecommendations(profiler.DefaultAnalysis())
	require.Len(t, recs, 1)
	assert.Contains(t, recs[0], "steady")
}
