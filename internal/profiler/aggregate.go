// Package profiler converts a student's academic history into a structured
// performance profile and maps that profile into personalization parameters.
// Every function is pure and stateless: the same records always produce the
// same analysis, and concurrent calls for different students need no
// coordination.
package profiler

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"edu_agent_backend/internal/model"
)

// sortedByDate returns a copy of records ordered by assessment date.
// Ingestion order is irrelevant to the analysis; every windowed metric
// operates on this ordering.
func sortedByDate(records []model.AcademicRecord) []model.AcademicRecord {
	out := make([]model.AcademicRecord, len(records))
	copy(out, records)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].AssessmentDate.Before(out[j].AssessmentDate)
	})
	return out
}

func scoresOf(records []model.AcademicRecord) []float64 {
	out := make([]float64, len(records))
	for i, r := range records {
		out[i] = r.Score
	}
	return out
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	return stat.Mean(xs, nil)
}

// sampleStd is the sample standard deviation. A single observation has no
// spread, so n < 2 yields 0.
func sampleStd(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	return stat.StdDev(xs, nil)
}

// OverallPerformance reduces the full record set into scalar performance
// metrics. average_score is the raw mean of scores, deliberately NOT
// normalized by max_score; see the known-quirk note in DESIGN.md.
func OverallPerformance(records []model.AcademicRecord) model.OverallPerformance {
	ordered := sortedByDate(records)
	scores := scoresOf(ordered)

	recent := mean(scores)
	if len(scores) >= 5 {
		recent = mean(scores[len(scores)-5:])
	}

	return model.OverallPerformance{
		AverageScore:      mean(scores),
		ScoreStd:          sampleStd(scores),
		ImprovementRate:   improvementRate(scores),
		ConsistencyScore:  math.Max(0, 100-sampleStd(scores)),
		RecentPerformance: recent,
	}
}

// improvementRate compares the newest five scores against the oldest five,
// relative to the older mean. Scores must already be in date order. Fewer
// than two records yields 0; with five or fewer the windows coincide and the
// rate is 0 as well.
func improvementRate(orderedScores []float64) float64 {
	n := len(orderedScores)
	if n < 2 {
		return 0
	}

	head := n
	if head > 5 {
		head = 5
	}
	older := mean(orderedScores[:head])
	newer := mean(orderedScores[n-head:])

	return (newer - older) / math.Max(older, 1)
}

type subjectAgg struct {
	subject  string
	mean     float64
	count    int
	weighted float64
}

// SubjectStrengths ranks subjects by a popularity-weighted score,
// mean * ln(count+1), so a subject sampled many times is not outranked by a
// single lucky result elsewhere. Top three are strengths, bottom two are
// weaknesses (worst first). With few subjects the two lists may overlap.
func SubjectStrengths(records []model.AcademicRecord) model.SubjectStrengths {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, r := range records {
		sums[r.Subject] += r.Score
		counts[r.Subject]++
	}

	aggs := make([]subjectAgg, 0, len(sums))
	scores := make(map[string]float64, len(sums))
	for subject, sum := range sums {
		m := sum / float64(counts[subject])
		scores[subject] = m
		aggs = append(aggs, subjectAgg{
			subject:  subject,
			mean:     m,
			count:    counts[subject],
			weighted: m * math.Log(float64(counts[subject])+1),
		})
	}

	sort.Slice(aggs, func(i, j int) bool {
		if aggs[i].weighted != aggs[j].weighted {
			return aggs[i].weighted > aggs[j].weighted
		}
		return aggs[i].subject < aggs[j].subject
	})

	strengths := []string{}
	for i := 0; i < len(aggs) && i < 3; i++ {
		strengths = append(strengths, aggs[i].subject)
	}

	weaknesses := []string{}
	tail := len(aggs) - 2
	if tail < 0 {
		tail = 0
	}
	// worst first
	for i := len(aggs) - 1; i >= tail; i-- {
		weaknesses = append(weaknesses, aggs[i].subject)
	}

	return model.SubjectStrengths{
		Strengths:     strengths,
		Weaknesses:    weaknesses,
		SubjectScores: scores,
	}
}

// StudyPatterns summarizes learning behavior: time spent, attempts and a
// persistence score. Persistence is the mean attempt count on successful
// records (score >= 60) relative to the overall mean, capped at 1; a student
// who keeps retrying until they pass scores high.
func StudyPatterns(records []model.AcademicRecord) model.StudyPatterns {
	patterns := model.StudyPatterns{
		AssessmentTypePreferences: map[string]float64{},
	}
	if len(records) == 0 {
		return patterns
	}

	var times []float64
	for _, r := range records {
		if r.TimeTakenMinutes != nil {
			times = append(times, float64(*r.TimeTakenMinutes))
		}
	}
	if len(times) > 0 {
		patterns.AverageStudyTime = mean(times)
		patterns.StudyTimeConsistency = sampleStd(times)
		patterns.HasStudyTimeData = true
	}

	var attempts, successAttempts []float64
	for _, r := range records {
		a := float64(r.Attempts)
		if a < 1 {
			a = 1
		}
		attempts = append(attempts, a)
		if r.Score >= 60 {
			successAttempts = append(successAttempts, a)
		}
	}
	patterns.AverageAttempts = mean(attempts)
	if len(successAttempts) > 0 {
		patterns.PersistenceScore = math.Min(1, mean(successAttempts)/math.Max(patterns.AverageAttempts, 1))
	}

	typeSums := make(map[string]float64)
	typeCounts := make(map[string]int)
	for _, r := range records {
		if r.AssessmentType == "" {
			continue
		}
		typeSums[r.AssessmentType] += r.Score
		typeCounts[r.AssessmentType]++
	}
	for t, sum := range typeSums {
		patterns.AssessmentTypePreferences[t] = sum / float64(typeCounts[t])
	}

	return patterns
}
