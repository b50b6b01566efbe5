package profiler

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"edu_agent_backend/internal/model"
)

func analysisWith(level int, avg float64, trend model.Trend) *model.PerformanceAnalysis {
	a := DefaultAnalysis()
	a.RecommendedLevel = level
	a.OverallPerformance.AverageScore = avg
	a.LearningTrends.RecentTrend = trend
	return a
}

func TestBuildConfigUsesRecommendedLevel(t *testing.T) {
	config := BuildConfig(analysisWith(4, 80, model.TrendStable), model.StyleVisual)
	assert.Equal(t, 4, config.DifficultyLevel)
}

func TestBuildConfigClampsLevelOutOfRange(t *testing.T) {
	assert.Equal(t, 3, BuildConfig(analysisWith(0, 80, model.TrendStable), model.StyleVisual).DifficultyLevel)
	assert.Equal(t, 3, BuildConfig(analysisWith(7, 80, model.TrendStable), model.StyleVisual).DifficultyLevel)
}

func TestContentPreferencesPerStyle(t *testing.T) {
	tests := []struct {
		style model.LearningStyle
		want  []string
	}{
		{model.StyleVisual, []string{"visual", "diagrams", "charts"}},
		{model.StyleAuditory, []string{"verbal", "audio", "discussions"}},
		{model.StyleKinesthetic, []string{"hands-on", "interactive", "practical"}},
		{model.LearningStyle("unknown"), []string{"practical", "visual"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.style), func(t *testing.T) {
			config := BuildConfig(DefaultAnalysis(), tt.style)
			assert.Equal(t, tt.want, config.ContentPreferences.ExampleTypes)
		})
	}
}

func TestPacingBranches(t *testing.T) {
	fast := pacing(model.StudyPatterns{HasStudyTimeData: true, AverageStudyTime: 15})
	assert.Equal(t, "fast", fast.Pace)
	assert.Equal(t, 15, fast.SessionLengthMinutes)

	slow := pacing(model.StudyPatterns{HasStudyTimeData: true, AverageStudyTime: 50})
	assert.Equal(t, "slow", slow.Pace)
	assert.Equal(t, 60, slow.SessionLengthMinutes)

	medium := pacing(model.StudyPatterns{HasStudyTimeData: true, AverageStudyTime: 30})
	assert.Equal(t, "medium", medium.Pace)

	// No timing data assumes the middle ground.
	noData := pacing(model.StudyPatterns{AverageStudyTime: 0})
	assert.Equal(t, "medium", noData.Pace)
}

func TestSupportLevelThresholds(t *testing.T) {
	assert.Equal(t, "high", supportLevel(59.9))
	assert.Equal(t, "medium", supportLevel(60))
	assert.Equal(t, "medium", supportLevel(74.9))
	assert.Equal(t, "low", supportLevel(75))
}

func TestMotivationStrategyPerTrend(t *testing.T) {
	declining := BuildConfig(analysisWith(2, 50, model.TrendDeclining), model.StyleVisual)
	assert.Equal(t, "encouragement", declining.MotivationStrategy.Strategy)
	assert.Equal(t, "small_wins", declining.MotivationStrategy.Focus)

	improving := BuildConfig(analysisWith(2, 50, model.TrendImproving), model.StyleVisual)
	assert.Equal(t, "challenge", improving.MotivationStrategy.Strategy)

	stable := BuildConfig(analysisWith(2, 50, model.TrendStable), model.StyleVisual)
	assert.Equal(t, "balanced", stable.MotivationStrategy.Strategy)
}
