package profiler

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"edu_agent_backend/internal/model"
)

// TrendDirection fits a linear slope over the scores (x = index) and
// classifies it. The +-2 thresholds are in score points per assessment.
// Fewer than two points has no defined slope and reads as stable.
func TrendDirection(scores []float64) model.Trend {
	if len(scores) < 2 {
		return model.TrendStable
	}

	xs := make([]float64, len(scores))
	for i := range xs {
		xs[i] = float64(i)
	}
	_, slope := stat.LinearRegression(xs, scores, nil, false)

	switch {
	case slope > 2:
		return model.TrendImproving
	case slope < -2:
		return model.TrendDeclining
	default:
		return model.TrendStable
	}
}

// LearningTrends classifies the recent window (last 10 by date) and the full
// history, and reports volatility and extremes.
func LearningTrends(records []model.AcademicRecord) model.LearningTrends {
	ordered := sortedByDate(records)
	scores := scoresOf(ordered)

	recentScores := scores
	if len(scores) > 10 {
		recentScores = scores[len(scores)-10:]
	}

	trends := model.LearningTrends{
		RecentTrend:  TrendDirection(recentScores),
		OverallTrend: TrendDirection(scores),
		Volatility:   sampleStd(scores),
	}
	if len(scores) > 0 {
		trends.PeakPerformance = scores[0]
		trends.LowestPerformance = scores[0]
		for _, s := range scores {
			trends.PeakPerformance = math.Max(trends.PeakPerformance, s)
			trends.LowestPerformance = math.Min(trends.LowestPerformance, s)
		}
	}
	return trends
}

// DifficultyPreferences groups records by difficulty tag and picks the
// optimal bucket: the best-performing one among buckets averaging >= 70, or
// failing that the best-performing bucket overall. Records without a
// difficulty tag are ignored; no tagged records at all defaults to medium.
func DifficultyPreferences(records []model.AcademicRecord) model.DifficultyPreferences {
	sums := make(map[model.DifficultyLevel]float64)
	counts := make(map[model.DifficultyLevel]int)
	for _, r := range records {
		if r.DifficultyLevel == "" {
			continue
		}
		sums[r.DifficultyLevel] += r.Score
		counts[r.DifficultyLevel]++
	}

	prefs := model.DifficultyPreferences{
		OptimalDifficulty:  model.DifficultyMedium,
		DifficultyScores:   map[model.DifficultyLevel]float64{},
		ChallengeTolerance: challengeTolerance(records),
	}
	if len(sums) == 0 {
		return prefs
	}

	levels := make([]model.DifficultyLevel, 0, len(sums))
	for level, sum := range sums {
		prefs.DifficultyScores[level] = sum / float64(counts[level])
		levels = append(levels, level)
	}
	sort.Slice(levels, func(i, j int) bool { return levels[i] < levels[j] })

	var best, bestQualified model.DifficultyLevel
	bestScore, bestQualifiedScore := math.Inf(-1), math.Inf(-1)
	for _, level := range levels {
		s := prefs.DifficultyScores[level]
		if s > bestScore {
			best, bestScore = level, s
		}
		if s >= 70 && s > bestQualifiedScore {
			bestQualified, bestQualifiedScore = level, s
		}
	}

	if bestQualified != "" {
		prefs.OptimalDifficulty = bestQualified
	} else {
		prefs.OptimalDifficulty = best
	}
	return prefs
}

// challengeTolerance is the mean score on hard/very_hard records, scaled to
// [0,1]. Without any challenging records it defaults to the neutral 0.5.
func challengeTolerance(records []model.AcademicRecord) float64 {
	var hard []float64
	for _, r := range records {
		if r.DifficultyLevel == model.DifficultyHard || r.DifficultyLevel == model.DifficultyVeryHard {
			hard = append(hard, r.Score)
		}
	}
	if len(hard) == 0 {
		return 0.5
	}
	return mean(hard) / 100
}

// RecommendedLevel maps performance onto the 1-5 difficulty scale. The
// branching is intentionally discontinuous; the thresholds come from the
// production tuning of the original heuristic and must not be smoothed.
func RecommendedLevel(records []model.AcademicRecord) int {
	ordered := sortedByDate(records)
	scores := scoresOf(ordered)
	if len(scores) == 0 {
		return 2
	}

	recent := mean(scores)
	if len(scores) >= 5 {
		recent = mean(scores[len(scores)-5:])
	}
	improvement := improvementRate(scores)

	switch {
	case recent >= 85 && improvement > 0:
		level := int(math.Floor((recent-60)/10)) + 1
		if level > 5 {
			level = 5
		}
		return level
	case recent >= 70:
		level := int(math.Floor((recent - 50) / 15))
		if level < 2 {
			level = 2
		}
		return level
	default:
		return 1
	}
}

// LearningGaps lists subjects averaging below 70 together with their weak
// topics (topic mean below 65). Priority is high below a subject mean of 60,
// medium otherwise. The result is sorted high priority first, then ascending
// subject average, for deterministic output.
func LearningGaps(records []model.AcademicRecord) []model.LearningGap {
	subjectSums := make(map[string]float64)
	subjectCounts := make(map[string]int)
	topicSums := make(map[string]map[string]float64)
	topicCounts := make(map[string]map[string]int)

	for _, r := range records {
		subjectSums[r.Subject] += r.Score
		subjectCounts[r.Subject]++
		if r.Topic == "" {
			continue
		}
		if topicSums[r.Subject] == nil {
			topicSums[r.Subject] = make(map[string]float64)
			topicCounts[r.Subject] = make(map[string]int)
		}
		topicSums[r.Subject][r.Topic] += r.Score
		topicCounts[r.Subject][r.Topic]++
	}

	gaps := []model.LearningGap{}
	for subject, sum := range subjectSums {
		avg := sum / float64(subjectCounts[subject])
		if avg >= 70 {
			continue
		}

		weakTopics := []string{}
		for topic, tSum := range topicSums[subject] {
			if tSum/float64(topicCounts[subject][topic]) < 65 {
				weakTopics = append(weakTopics, topic)
			}
		}
		sort.Strings(weakTopics)

		priority := model.PriorityMedium
		if avg < 60 {
			priority = model.PriorityHigh
		}

		gaps = append(gaps, model.LearningGap{
			Subject:      subject,
			WeakTopics:   weakTopics,
			AverageScore: avg,
			Priority:     priority,
		})
	}

	sort.Slice(gaps, func(i, j int) bool {
		if gaps[i].Priority != gaps[j].Priority {
			return gaps[i].Priority == model.PriorityHigh
		}
		if gaps[i].AverageScore != gaps[j].AverageScore {
			return gaps[i].AverageScore < gaps[j].AverageScore
		}
		return gaps[i].Subject < gaps[j].Subject
	})

	return gaps
}
