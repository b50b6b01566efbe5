package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"edu_agent_backend/internal/model"
	"edu_agent_backend/internal/profiler"
)

type stubGenerator struct {
	reply string
	err   error
	calls int
}

func (g *stubGenerator) Chat(ctx context.Context, system, prompt string) (string, error) {
	g.calls++
	return g.reply, g.err
}

func testConfig() *model.PersonalizationConfig {
	config := profiler.BuildConfig(profiler.DefaultAnalysis(), model.StyleVisual)
	return &config
}

func TestGenerateContentUsesGeneratorOutput(t *testing.T) {
	gen := &stubGenerator{reply: `[
		{"type": "explanation", "title": "Intro", "content": "Fractions represent parts of a whole."},
		{"type": "practice", "title": "Try it", "content": "Simplify 4/8."}
	]`}
	svc := &SessionService{generator: gen, logger: zap.NewNop()}

	blocks, source := svc.generateContent(context.Background(), "math", "fractions", testConfig(), profiler.DefaultAnalysis())

	assert.Equal(t, "llm", source)
	require.Len(t, blocks, 2)
	assert.Equal(t, "explanation", blocks[0].Type)
	assert.Equal(t, 1, gen.calls)
}

func TestGenerateContentFallsBackOnError(t *testing.T) {
	gen := &stubGenerator{err: fmt.Errorf("connection refused")}
	svc := &SessionService{generator: gen, logger: zap.NewNop()}

	blocks, source := svc.generateContent(context.Background(), "math", "fractions", testConfig(), profiler.DefaultAnalysis())

	assert.Equal(t, "template", source)
	require.Len(t, blocks, 3)
	assert.Equal(t, "explanation", blocks[0].Type)
	assert.Equal(t, "example", blocks[1].Type)
	assert.Equal(t, "practice", blocks[2].Type)
}

func TestGenerateContentFallsBackOnMalformedReply(t *testing.T) {
	gen := &stubGenerator{reply: "Sure! Here's a lesson plan for fractions..."}
	svc := &SessionService{generator: gen, logger: zap.NewNop()}

	_, source := svc.generateContent(context.Background(), "math", "fractions", testConfig(), profiler.DefaultAnalysis())
	assert.Equal(t, "template", source)
}

func TestStripCodeFence(t *testing.T) {
	fenced := "```json\n[{\"type\":\"practice\"}]\n```"
	assert.Equal(t, `[{"type":"practice"}]`, stripCodeFence(fenced))

	bare := `[{"type":"practice"}]`
	assert.Equal(t, bare, stripCodeFence(bare))

	plainFence := "```\n[1]\n```"
	assert.Equal(t, "[1]", stripCodeFence(plainFence))
}

func TestGenerateProblemsFallsBack(t *testing.T) {
	gen := &stubGenerator{err: fmt.Errorf("timeout")}
	svc := &WorksheetService{generator: gen, logger: zap.NewNop()}

	problems, source := svc.generateProblems(context.Background(), "math", "fractions", 5, testConfig(), profiler.DefaultAnalysis())

	assert.Equal(t, "template", source)
	require.Len(t, problems, 5)
	for i, p := range problems {
		assert.Equal(t, i+1, p.ID)
		assert.Greater(t, p.TimeMinutes, 0)
	}
	// Types cycle through the bank.
	assert.Equal(t, "multiple_choice", problems[0].Type)
	assert.Equal(t, "short_answer", problems[1].Type)
	assert.Equal(t, "problem_solving", problems[2].Type)
	assert.Equal(t, "multiple_choice", problems[3].Type)
}

func TestParseProblemsTruncatesAndNumbers(t *testing.T) {
	raw := `[
		{"type": "short_answer", "question": "Q1"},
		{"type": "short_answer", "question": "Q2"},
		{"type": "short_answer", "question": "Q3"}
	]`

	problems, err := parseProblems(raw, 2)
	require.NoError(t, err)
	require.Len(t, problems, 2)
	assert.Equal(t, 1, problems[0].ID)
	assert.Equal(t, 2, problems[1].ID)
	assert.Equal(t, 5, problems[0].TimeMinutes)
}

func TestParseProblemsRejectsEmpty(t *testing.T) {
	_, err := parseProblems("[]", 5)
	assert.Error(t, err)
}

func TestGenerateAnswerConfidenceBySource(t *testing.T) {
	input := DoubtInput{Question: "How do I simplify fractions?"}
	qa := model.QuestionAnalysis{QuestionType: "procedure"}
	strategy := model.ResponseStrategy{Approach: "socratic", ExplanationStyle: "step_by_step"}

	llm := &DoubtService{generator: &stubGenerator{reply: "Divide numerator and denominator by their GCD."}, logger: zap.NewNop()}
	answer, source, confidence := llm.generateAnswer(context.Background(), input, qa, strategy)
	assert.Equal(t, "llm", source)
	assert.Equal(t, 0.9, confidence)
	assert.NotEmpty(t, answer)

	down := &DoubtService{generator: &stubGenerator{err: fmt.Errorf("unavailable")}, logger: zap.NewNop()}
	answer, source, confidence = down.generateAnswer(context.Background(), input, qa, strategy)
	assert.Equal(t, "template", source)
	assert.Equal(t, 0.6, confidence)
	assert.NotEmpty(t, answer)
}

func TestTemplateAnswerMatchesQuestionType(t *testing.T) {
	input := DoubtInput{Question: "What is a fraction?", Topic: "fractions"}

	qa := model.QuestionAnalysis{QuestionType: "definition"}
	answer := templateAnswer(input, qa, model.ResponseStrategy{})
	assert.Contains(t, answer, "fractions")
	assert.Contains(t, answer, "definition")

	practice := templateAnswer(input, qa, model.ResponseStrategy{ProvidePractice: true})
	assert.Contains(t, practice, "similar problem")
}

func TestTemplateAnswerFallsBackToKeyConcept(t *testing.T) {
	input := DoubtInput{Question: "Why does gravity exist?"}
	qa := model.QuestionAnalysis{QuestionType: "explanation", KeyConcepts: []string{"gravity", "exist"}}

	answer := templateAnswer(input, qa, model.ResponseStrategy{})
	assert.Contains(t, answer, "gravity")
}
