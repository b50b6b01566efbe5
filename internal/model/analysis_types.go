package model

// Derived value objects. A PerformanceAnalysis is a pure function of the
// current academic records for one student and is recomputed on demand; it is
// never stored as authoritative state. JSON tags follow the analysis contract
// (snake_case) rather than the entity convention.

type Trend string

const (
	TrendImproving Trend = "improving"
	TrendDeclining Trend = "declining"
	TrendStable    Trend = "stable"
)

type GapPriority string

const (
	PriorityHigh   GapPriority = "high"
	PriorityMedium GapPriority = "medium"
)

type OverallPerformance struct {
	AverageScore      float64 `json:"average_score"`
	ScoreStd          float64 `json:"score_std"`
	ImprovementRate   float64 `json:"improvement_rate"`
	ConsistencyScore  float64 `json:"consistency_score"`
	RecentPerformance float64 `json:"recent_performance"`
}

type SubjectStrengths struct {
	Strengths     []string           `json:"strengths"`
	Weaknesses    []string           `json:"weaknesses"`
	SubjectScores map[string]float64 `json:"subject_scores"`
}

type LearningTrends struct {
	RecentTrend       Trend   `json:"recent_trend"`
	OverallTrend      Trend   `json:"overall_trend"`
	Volatility        float64 `json:"volatility"`
	PeakPerformance   float64 `json:"peak_performance"`
	LowestPerformance float64 `json:"lowest_performance"`
}

type DifficultyPreferences struct {
	OptimalDifficulty  DifficultyLevel            `json:"optimal_difficulty"`
	DifficultyScores   map[DifficultyLevel]float64 `json:"difficulty_scores"`
	ChallengeTolerance float64                    `json:"challenge_tolerance"`
}

type LearningGap struct {
	Subject      string      `json:"subject"`
	WeakTopics   []string    `json:"weak_topics"`
	AverageScore float64     `json:"average_score"`
	Priority     GapPriority `json:"priority"`
}

type StudyPatterns struct {
	AverageStudyTime          float64            `json:"average_study_time"`
	StudyTimeConsistency      float64            `json:"study_time_consistency"`
	AverageAttempts           float64            `json:"average_attempts"`
	PersistenceScore          float64            `json:"persistence_score"`
	AssessmentTypePreferences map[string]float64 `json:"assessment_type_preferences"`
	HasStudyTimeData          bool               `json:"-"`
}

// swagger:model PerformanceAnalysis
type PerformanceAnalysis struct {
	OverallPerformance    OverallPerformance    `json:"overall_performance"`
	SubjectStrengths      SubjectStrengths      `json:"subject_strengths"`
	LearningTrends        LearningTrends        `json:"learning_trends"`
	DifficultyPreferences DifficultyPreferences `json:"difficulty_preferences"`
	RecommendedLevel      int                   `json:"recommended_level"`
	LearningGaps          []LearningGap         `json:"learning_gaps"`
	StudyPatterns         StudyPatterns         `json:"study_patterns"`
}

type ContentPreferences struct {
	ExplanationStyle string   `json:"explanation_style"`
	ExampleTypes     []string `json:"example_types"`
	InteractionLevel string   `json:"interaction_level"`
}

type Pacing struct {
	Pace                  string `json:"pace"`
	SessionLengthMinutes  int    `json:"session_length_minutes"`
	BreakFrequencyMinutes int    `json:"break_frequency_minutes"`
}

type MotivationStrategy struct {
	Strategy string `json:"strategy"`
	Focus    string `json:"focus"`
	Rewards  string `json:"rewards"`
}

// swagger:model PersonalizationConfig
type PersonalizationConfig struct {
	DifficultyLevel    int                `json:"difficulty_level"` // 1-5
	LearningStyle      LearningStyle      `json:"learning_style"`
	ContentPreferences ContentPreferences `json:"content_preferences"`
	Pacing             Pacing             `json:"pacing"`
	SupportLevel       string             `json:"support_level"` // low, medium, high
	MotivationStrategy MotivationStrategy `json:"motivation_strategy"`
}

type Sentiment struct {
	Emotion    string  `json:"emotion"` // frustrated, curious, confused, neutral
	Confidence float64 `json:"confidence"`
}

// QuestionAnalysis is ephemeral, scoped to a single doubt query.
// swagger:model QuestionAnalysis
type QuestionAnalysis struct {
	QuestionType            string    `json:"question_type"`
	ComplexityLevel         string    `json:"complexity_level"` // simple, medium, complex
	KeyConcepts             []string  `json:"key_concepts"`
	Sentiment               Sentiment `json:"sentiment"`
	MisconceptionIndicators []string  `json:"misconception_indicators"`
	UrgencyLevel            string    `json:"urgency_level"` // low, medium, high
}

// swagger:model ResponseStrategy
type ResponseStrategy struct {
	Approach         string `json:"approach"`          // socratic, direct, guided
	ExplanationStyle string `json:"explanation_style"` // brief, detailed, step_by_step
	IncludeExamples  bool   `json:"include_examples"`
	UseAnalogies     bool   `json:"use_analogies"`
	IncludeDiagrams  bool   `json:"include_diagrams"`
	ProvidePractice  bool   `json:"provide_practice"`
}
