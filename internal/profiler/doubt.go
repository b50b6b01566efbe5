package profiler

import (
	"math"
	"sort"
	"strings"

	"edu_agent_backend/internal/model"
)

// Question classification keyword sets. Matching is substring-based on the
// lowercased question, and the type checks run in this priority order: the
// first set with a hit wins.
var questionTypeOrder = []struct {
	qtype    string
	keywords []string
}{
	{"definition", []string{"what", "define", "meaning"}},
	{"procedure", []string{"how", "steps", "process"}},
	{"explanation", []string{"why", "reason", "because"}},
	{"example_request", []string{"example", "instance", "show me"}},
	{"problem_solving", []string{"solve", "calculate", "find"}},
	{"comparison", []string{"difference", "compare", "versus"}},
}

var urgencyIndicators = []string{"urgent", "exam", "test", "tomorrow", "help", "stuck", "confused"}

var stopWords = map[string]bool{
	"the": true, "a": true, "an": true, "and": true, "or": true, "but": true,
	"in": true, "on": true, "at": true, "to": true, "for": true, "of": true,
	"with": true, "by": true,
}

// technicalLexicon holds short domain terms the long-word heuristic would
// miss; any token of eight or more letters also counts as technical.
var technicalLexicon = map[string]bool{
	"atom": true, "cell": true, "force": true, "ratio": true, "slope": true,
	"angle": true, "vector": true, "matrix": true, "energy": true, "moles": true,
	"theorem": true, "integral": true, "fraction": true, "molecule": true,
	"equation": true, "velocity": true, "gradient": true,
}

var negativeWords = []string{"stuck", "confused", "frustrated", "hate", "can't", "cant", "lost", "difficult", "worried", "fail"}
var positiveWords = []string{"curious", "interesting", "love", "wonder", "excited", "cool", "fun", "great"}

// misconceptionPatterns maps a known misconception label to the question
// phrasings that indicate it.
var misconceptionPatterns = map[string][]string{
	"correlation_implies_causation": {"correlation means causation", "correlation implies causation"},
	"division_always_shrinks":       {"dividing always makes smaller", "division always makes smaller"},
	"heavier_falls_faster":          {"heavier objects fall faster", "heavy things fall faster"},
	"multiplication_always_grows":   {"multiplying always makes bigger", "multiplication always makes bigger"},
	"plants_eat_soil":               {"plants get food from soil", "plants eat soil"},
}

// AnalyzeQuestion classifies a doubt query: type, complexity, key concepts,
// emotional tone and urgency. It is a heuristic pre-pass; only its outputs
// feed the strategy selection contract.
func AnalyzeQuestion(question string) model.QuestionAnalysis {
	lower := strings.ToLower(question)
	tokens := tokenize(lower)

	return model.QuestionAnalysis{
		QuestionType:            classifyQuestionType(lower),
		ComplexityLevel:         assessComplexity(tokens),
		KeyConcepts:             extractKeyConcepts(tokens),
		Sentiment:               analyzeSentiment(lower),
		MisconceptionIndicators: detectMisconceptions(lower),
		UrgencyLevel:            assessUrgency(lower),
	}
}

func tokenize(lower string) []string {
	fields := strings.FieldsFunc(lower, func(r rune) bool {
		return !(r >= 'a' && r <= 'z') && !(r >= '0' && r <= '9') && r != '\''
	})
	return fields
}

func classifyQuestionType(lower string) string {
	for _, entry := range questionTypeOrder {
		for _, kw := range entry.keywords {
			if strings.Contains(lower, kw) {
				return entry.qtype
			}
		}
	}
	return "general_inquiry"
}

func assessComplexity(tokens []string) string {
	wordCount := len(tokens)
	technical := 0
	for _, t := range tokens {
		if len(t) >= 8 || technicalLexicon[t] {
			technical++
		}
	}

	switch {
	case wordCount < 10 && technical < 2:
		return "simple"
	case wordCount < 20 && technical < 4:
		return "medium"
	default:
		return "complex"
	}
}

func extractKeyConcepts(tokens []string) []string {
	concepts := []string{}
	for _, t := range tokens {
		if stopWords[t] || len(t) <= 3 {
			continue
		}
		concepts = append(concepts, t)
		if len(concepts) == 5 {
			break
		}
	}
	return concepts
}

// analyzeSentiment is a lexicon count, not a model: enough signal to pick a
// tutoring tone, nothing more.
func analyzeSentiment(lower string) model.Sentiment {
	var pos, neg int
	for _, w := range positiveWords {
		if strings.Contains(lower, w) {
			pos++
		}
	}
	for _, w := range negativeWords {
		if strings.Contains(lower, w) {
			neg++
		}
	}

	emotion := "neutral"
	switch {
	case neg > pos:
		emotion = "frustrated"
	case pos > neg:
		emotion = "curious"
	case pos > 0: // equal, non-zero
		emotion = "confused"
	}

	confidence := math.Min(1, 0.35*float64(pos+neg))
	return model.Sentiment{Emotion: emotion, Confidence: confidence}
}

func detectMisconceptions(lower string) []string {
	labels := make([]string, 0, len(misconceptionPatterns))
	for label := range misconceptionPatterns {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	found := []string{}
	for _, label := range labels {
		for _, pattern := range misconceptionPatterns[label] {
			if strings.Contains(lower, pattern) {
				found = append(found, label)
				break
			}
		}
	}
	return found
}

func assessUrgency(lower string) string {
	count := 0
	for _, indicator := range urgencyIndicators {
		if strings.Contains(lower, indicator) {
			count++
		}
	}

	switch {
	case count >= 2:
		return "high"
	case count == 1:
		return "medium"
	default:
		return "low"
	}
}

// SelectStrategy picks the tutoring approach for one question. Overrides
// apply in a fixed order: question type first, then learning style, then the
// complexity escalation. The escalation runs last so it wins conflicts.
func SelectStrategy(qa model.QuestionAnalysis, currentLevel float64, style model.LearningStyle) model.ResponseStrategy {
	strategy := model.ResponseStrategy{
		Approach:         "socratic",
		ExplanationStyle: "detailed",
		IncludeExamples:  true,
	}

	switch qa.QuestionType {
	case "definition":
		strategy.Approach = "direct"
		strategy.ExplanationStyle = "detailed"
	case "procedure":
		strategy.ExplanationStyle = "step_by_step"
		strategy.IncludeExamples = true
	case "explanation":
		strategy.Approach = "socratic"
		strategy.UseAnalogies = true
	}

	switch style {
	case model.StyleVisual:
		strategy.IncludeDiagrams = true
	case model.StyleKinesthetic:
		strategy.ProvidePractice = true
	}

	if qa.ComplexityLevel == "complex" && currentLevel < 70 {
		strategy.ExplanationStyle = "step_by_step"
		strategy.UseAnalogies = true
	}

	return strategy
}
