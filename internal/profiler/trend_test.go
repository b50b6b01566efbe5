package profiler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"edu_agent_backend/internal/model"
)

func TestTrendDirection(t *testing.T) {
	tests := []struct {
		name   string
		scores []float64
		want   model.Trend
	}{
		{"flat", []float64{50, 50, 50, 50, 50}, model.TrendStable},
		{"rising", []float64{40, 50, 60, 70, 80}, model.TrendImproving},
		{"falling", []float64{80, 70, 60, 50, 40}, model.TrendDeclining},
		{"slope exactly at threshold", []float64{50, 52, 54}, model.TrendStable},
		{"single point", []float64{90}, model.TrendStable},
		{"empty", nil, model.TrendStable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TrendDirection(tt.scores))
		})
	}
}

func TestLearningTrendsRecentWindow(t *testing.T) {
	// Two early zeros pull the overall slope up, but the last ten scores are
	// flat, so the recent trend reads stable while the overall improves.
	scores := []float64{0, 0, 80, 80, 80, 80, 80, 80, 80, 80, 80, 80}
	trends := LearningTrends(scored(scores...))

	assert.Equal(t, model.TrendStable, trends.RecentTrend)
	assert.Equal(t, model.TrendImproving, trends.OverallTrend)
	assert.Equal(t, 80.0, trends.PeakPerformance)
	assert.Equal(t, 0.0, trends.LowestPerformance)
}

func withDifficulty(records []model.AcademicRecord, levels ...model.DifficultyLevel) []model.AcademicRecord {
	for i := range levels {
		records[i].DifficultyLevel = levels[i]
	}
	return records
}

func TestDifficultyPreferencesPicksBestQualified(t *testing.T) {
	records := withDifficulty(scored(90, 90, 75, 75),
		model.DifficultyEasy, model.DifficultyEasy, model.DifficultyHard, model.DifficultyHard)

	prefs := DifficultyPreferences(records)
	assert.Equal(t, model.DifficultyEasy, prefs.OptimalDifficulty)
	assert.Equal(t, 90.0, prefs.DifficultyScores[model.DifficultyEasy])
	assert.Equal(t, 75.0, prefs.DifficultyScores[model.DifficultyHard])
}

func TestDifficultyPreferencesFallsBackToBestOverall(t *testing.T) {
	// No bucket reaches 70, so the best-performing bucket wins anyway.
	records := withDifficulty(scored(65, 50),
		model.DifficultyEasy, model.DifficultyHard)

	prefs := DifficultyPreferences(records)
	assert.Equal(t, model.DifficultyEasy, prefs.OptimalDifficulty)
}

func TestDifficultyPreferencesDefaultsWithoutTags(t *testing.T) {
	prefs := DifficultyPreferences(scored(80, 90))

	assert.Equal(t, model.DifficultyMedium, prefs.OptimalDifficulty)
	assert.Empty(t, prefs.DifficultyScores)
	assert.Equal(t, 0.5, prefs.ChallengeTolerance)
}

func TestChallengeToleranceFromHardRecords(t *testing.T) {
	records := withDifficulty(scored(80, 90, 60),
		model.DifficultyHard, model.DifficultyVeryHard, model.DifficultyEasy)

	prefs := DifficultyPreferences(records)
	assert.InDelta(t, 0.85, prefs.ChallengeTolerance, 1e-9)
}

func TestRecommendedLevel(t *testing.T) {
	tests := []struct {
		name   string
		scores []float64
		want   int
	}{
		{
			// recent 90, improving: floor((90-60)/10)+1 = 4
			"high and improving",
			[]float64{70, 70, 70, 70, 70, 90, 90, 90, 90, 90},
			4,
		},
		{
			// recent 100, improving: capped at 5
			"capped at five",
			[]float64{80, 80, 80, 80, 80, 100, 100, 100, 100, 100},
			5,
		},
		{
			// recent 90 but flat: floor((90-50)/15) = 2
			"high without improvement",
			[]float64{90, 90, 90, 90, 90, 90},
			2,
		},
		{
			// recent 72: floor((72-50)/15) = 1, floored to 2
			"moderate floors at two",
			[]float64{72, 72, 72, 72, 72},
			2,
		},
		{
			"struggling",
			[]float64{50, 55, 45},
			1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RecommendedLevel(scored(tt.scores...)))
		})
	}
}

func TestRecommendedLevelNoRecords(t *testing.T) {
	assert.Equal(t, 2, RecommendedLevel(nil))
}

func TestLearningGapsThresholds(t *testing.T) {
	records := []model.AcademicRecord{
		rec("math", 90, 0),    // no gap
		rec("physics", 60, 1), // medium: 60 is not below 60
		rec("history", 55, 2), // high
	}

	gaps := LearningGaps(records)
	require.Len(t, gaps, 2)
	assert.Equal(t, "history", gaps[0].Subject)
	assert.Equal(t, model.PriorityHigh, gaps[0].Priority)
	assert.Equal(t, "physics", gaps[1].Subject)
	assert.Equal(t, model.PriorityMedium, gaps[1].Priority)
}

func TestLearningGapsWeakTopics(t *testing.T) {
	records := []model.AcademicRecord{
		{Subject: "math", Topic: "fractions", Score: 64, MaxScore: 100, AssessmentDate: day(0)},
		{Subject: "math", Topic: "algebra", Score: 66, MaxScore: 100, AssessmentDate: day(1)},
		{Subject: "math", Topic: "geometry", Score: 60, MaxScore: 100, AssessmentDate: day(2)},
	}

	gaps := LearningGaps(records)
	require.Len(t, gaps, 1)
	// Topics below 65, sorted alphabetically; 66 stays out.
	assert.Equal(t, []string{"fractions", "geometry"}, gaps[0].WeakTopics)
}

func TestLearningGapsWithoutTopicData(t *testing.T) {
	gaps := LearningGaps([]model.AcademicRecord{rec("math", 50, 0)})

	require.Len(t, gaps, 1)
	assert.Equal(t, []string{}, gaps[0].WeakTopics)
}

func TestLearningGapsSortedByAverageWithinPriority(t *testing.T) {
	records := []model.AcademicRecord{
		rec("physics", 68, 0),
		rec("history", 62, 1),
	}

	gaps := LearningGaps(records)
	require.Len(t, gaps, 2)
	assert.Equal(t, "history", gaps[0].Subject)
	assert.Equal(t, "physics", gaps[1].Subject)
}
