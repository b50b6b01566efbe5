package profiler

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"edu_agent_backend/internal/model"
)

func TestClassifyQuestionType(t *testing.T) {
	tests := []struct {
		question string
		want     string
	}{
		{"Define photosynthesis please", "definition"},
		{"Steps to balance an equation?", "procedure"},
		{"I don't get the reason this works", "explanation"},
		{"Give me an example of a metaphor", "example_request"},
		{"Solve 3x + 5 = 20", "problem_solving"},
		{"Compare mitosis and meiosis", "comparison"},
		{"My homework is confusing", "general_inquiry"},
	}

	for _, tt := range tests {
		t.Run(tt.question, func(t *testing.T) {
			qa := AnalyzeQuestion(tt.question)
			assert.Equal(t, tt.want, qa.QuestionType)
		})
	}
}

func TestClassifyQuestionTypePriority(t *testing.T) {
	// "what" outranks "difference": definition is checked before comparison.
	qa := AnalyzeQuestion("What is the difference between speed and velocity?")
	assert.Equal(t, "definition", qa.QuestionType)

	// "how" outranks "solve".
	qa = AnalyzeQuestion("How do I solve quadratic equations?")
	assert.Equal(t, "procedure", qa.QuestionType)
}

func TestAssessComplexity(t *testing.T) {
	simple := AnalyzeQuestion("Is water wet?")
	assert.Equal(t, "simple", simple.ComplexityLevel)

	medium := AnalyzeQuestion("Can you tell me more about how plants make their own food during the day?")
	assert.Equal(t, "medium", medium.ComplexityLevel)

	complexQ := AnalyzeQuestion(
		"Explain the relationship between gravitational acceleration and velocity when calculating displacement using differential equations")
	assert.Equal(t, "complex", complexQ.ComplexityLevel)
}

func TestAssessComplexityTechnicalLexicon(t *testing.T) {
	// Nine words, but three technical terms push it past simple.
	qa := AnalyzeQuestion("Why does the vector slope change the angle")
	assert.Equal(t, "medium", qa.ComplexityLevel)
}

func TestExtractKeyConcepts(t *testing.T) {
	qa := AnalyzeQuestion("Explain the process of cellular respiration in mitochondria")
	assert.Equal(t, []string{"explain", "process", "cellular", "respiration", "mitochondria"}, qa.KeyConcepts)
}

func TestAnalyzeSentiment(t *testing.T) {
	frustrated := AnalyzeQuestion("I'm stuck and confused about fractions")
	assert.Equal(t, "frustrated", frustrated.Sentiment.Emotion)
	assert.InDelta(t, 0.7, frustrated.Sentiment.Confidence, 1e-9)

	curious := AnalyzeQuestion("I'm curious, this topic is so interesting!")
	assert.Equal(t, "curious", curious.Sentiment.Emotion)

	neutral := AnalyzeQuestion("Please explain fractions")
	assert.Equal(t, "neutral", neutral.Sentiment.Emotion)
	assert.Equal(t, 0.0, neutral.Sentiment.Confidence)
}

func TestAssessUrgency(t *testing.T) {
	high := AnalyzeQuestion("Help, I'm stuck on this before the test")
	assert.Equal(t, "high", high.UrgencyLevel)

	medium := AnalyzeQuestion("I have an exam on this chapter")
	assert.Equal(t, "medium", medium.UrgencyLevel)

	low := AnalyzeQuestion("Can you explain photosynthesis?")
	assert.Equal(t, "low", low.UrgencyLevel)
}

func TestDetectMisconceptions(t *testing.T) {
	qa := AnalyzeQuestion("Is it true that heavier objects fall faster than light ones?")
	assert.Equal(t, []string{"heavier_falls_faster"}, qa.MisconceptionIndicators)

	clean := AnalyzeQuestion("Why do objects fall?")
	assert.Empty(t, clean.MisconceptionIndicators)
}

func TestSelectStrategyByQuestionType(t *testing.T) {
	definition := SelectStrategy(model.QuestionAnalysis{QuestionType: "definition"}, 80, model.StyleAuditory)
	assert.Equal(t, "direct", definition.Approach)
	assert.Equal(t, "detailed", definition.ExplanationStyle)

	procedure := SelectStrategy(model.QuestionAnalysis{QuestionType: "procedure"}, 80, model.StyleAuditory)
	assert.Equal(t, "socratic", procedure.Approach)
	assert.Equal(t, "step_by_step", procedure.ExplanationStyle)

	explanation := SelectStrategy(model.QuestionAnalysis{QuestionType: "explanation"}, 80, model.StyleAuditory)
	assert.True(t, explanation.UseAnalogies)
}

func TestSelectStrategyByLearningStyle(t *testing.T) {
	visual := SelectStrategy(model.QuestionAnalysis{}, 80, model.StyleVisual)
	assert.True(t, visual.IncludeDiagrams)
	assert.False(t, visual.ProvidePractice)

	kinesthetic := SelectStrategy(model.QuestionAnalysis{}, 80, model.StyleKinesthetic)
	assert.True(t, kinesthetic.ProvidePractice)
	assert.False(t, kinesthetic.IncludeDiagrams)
}

func TestSelectStrategyComplexityEscalationWinsLast(t *testing.T) {
	// A definition question normally keeps the detailed style, but a complex
	// question for a struggling student escalates to step_by_step regardless.
	qa := model.QuestionAnalysis{QuestionType: "definition", ComplexityLevel: "complex"}
	strategy := SelectStrategy(qa, 55, model.StyleVisual)

	assert.Equal(t, "direct", strategy.Approach)
	assert.Equal(t, "step_by_step", strategy.ExplanationStyle)
	assert.True(t, strategy.UseAnalogies)

	// At a higher level the escalation does not fire.
	confident := SelectStrategy(qa, 85, model.StyleVisual)
	assert.Equal(t, "detailed", confident.ExplanationStyle)
	assert.False(t, confident.UseAnalogies)
}
