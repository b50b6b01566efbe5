package profiler

import "edu_agent_backend/internal/model"

// BuildConfig maps a synthesized analysis plus the student's learning style
// into the personalization parameters consumed by every content generator.
// Every branch is total: absent optional data falls back to a default, never
// to an error.
func BuildConfig(analysis *model.PerformanceAnalysis, style model.LearningStyle) model.PersonalizationConfig {
	difficulty := analysis.RecommendedLevel
	if difficulty < 1 || difficulty > 5 {
		difficulty = 3
	}

	return model.PersonalizationConfig{
		DifficultyLevel:    difficulty,
		LearningStyle:      style,
		ContentPreferences: contentPreferences(style),
		Pacing:             pacing(analysis.StudyPatterns),
		SupportLevel:       supportLevel(analysis.OverallPerformance.AverageScore),
		MotivationStrategy: motivationStrategy(analysis.LearningTrends.RecentTrend),
	}
}

func contentPreferences(style model.LearningStyle) model.ContentPreferences {
	prefs := model.ContentPreferences{
		ExplanationStyle: "detailed",
		ExampleTypes:     []string{"practical", "visual"},
		InteractionLevel: "medium",
	}

	switch style {
	case model.StyleVisual:
		prefs.ExampleTypes = []string{"visual", "diagrams", "charts"}
	case model.StyleAuditory:
		prefs.ExampleTypes = []string{"verbal", "audio", "discussions"}
	case model.StyleKinesthetic:
		prefs.ExampleTypes = []string{"hands-on", "interactive", "practical"}
	}

	return prefs
}

// pacing keys off the average study time per assessment; without timing data
// it assumes the 30-minute middle ground.
func pacing(patterns model.StudyPatterns) model.Pacing {
	avg := 30.0
	if patterns.HasStudyTimeData {
		avg = patterns.AverageStudyTime
	}

	switch {
	case avg < 20:
		return model.Pacing{Pace: "fast", SessionLengthMinutes: 15, BreakFrequencyMinutes: 10}
	case avg > 45:
		return model.Pacing{Pace: "slow", SessionLengthMinutes: 60, BreakFrequencyMinutes: 20}
	default:
		return model.Pacing{Pace: "medium", SessionLengthMinutes: 30, BreakFrequencyMinutes: 15}
	}
}

func supportLevel(averageScore float64) string {
	switch {
	case averageScore < 60:
		return "high"
	case averageScore < 75:
		return "medium"
	default:
		return "low"
	}
}

func motivationStrategy(recentTrend model.Trend) model.MotivationStrategy {
	switch recentTrend {
	case model.TrendDeclining:
		return model.MotivationStrategy{Strategy: "encouragement", Focus: "small_wins", Rewards: "frequent"}
	case model.TrendImproving:
		return model.MotivationStrategy{Strategy: "challenge", Focus: "growth", Rewards: "achievement_based"}
	default:
		return model.MotivationStrategy{Strategy: "balanced", Focus: "consistency", Rewards: "progress_based"}
	}
}
