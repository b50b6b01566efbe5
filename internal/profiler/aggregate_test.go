package profiler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"edu_agent_backend/internal/model"
)

func day(n int) time.Time {
	return time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n)
}

func rec(subject string, score float64, n int) model.AcademicRecord {
	return model.AcademicRecord{
		Subject:        subject,
		Score:          score,
		MaxScore:       100,
		AssessmentDate: day(n),
	}
}

func scored(scores ...float64) []model.AcademicRecord {
	records := make([]model.AcademicRecord, len(scores))
	for i, s := range scores {
		records[i] = rec("math", s, i)
	}
	return records
}

func TestOverallPerformanceSingleRecord(t *testing.T) {
	op := OverallPerformance(scored(85))

	assert.Equal(t, 85.0, op.AverageScore)
	assert.Equal(t, 0.0, op.ScoreStd)
	assert.Equal(t, 0.0, op.ImprovementRate)
	assert.Equal(t, 100.0, op.ConsistencyScore)
	assert.Equal(t, 85.0, op.RecentPerformance)
}

func TestOverallPerformanceAveragesRawScores(t *testing.T) {
	// Scores on different max_score scales are averaged as-is.
	records := []model.AcademicRecord{
		{Subject: "math", Score: 8, MaxScore: 10, AssessmentDate: day(0)},
		{Subject: "math", Score: 80, MaxScore: 100, AssessmentDate: day(1)},
	}

	op := OverallPerformance(records)
	assert.Equal(t, 44.0, op.AverageScore)
}

func TestOverallPerformanceRecentWindow(t *testing.T) {
	op := OverallPerformance(scored(50, 50, 50, 50, 50, 90, 90, 90, 90, 90))

	assert.Equal(t, 90.0, op.RecentPerformance)
	// (90 - 50) / 50
	assert.InDelta(t, 0.8, op.ImprovementRate, 1e-9)
}

func TestOverallPerformanceIgnoresIngestionOrder(t *testing.T) {
	records := scored(50, 50, 50, 50, 50, 90, 90, 90, 90, 90)
	shuffled := []model.AcademicRecord{
		records[7], records[0], records[9], records[3], records[5],
		records[1], records[8], records[2], records[6], records[4],
	}

	assert.Equal(t, OverallPerformance(records), OverallPerformance(shuffled))
}

func TestImprovementRateZeroWithFewRecords(t *testing.T) {
	// With five or fewer scores the windows coincide.
	op := OverallPerformance(scored(40, 60, 80, 90, 100))
	assert.Equal(t, 0.0, op.ImprovementRate)
}

func TestConsistencyScoreFloorsAtZero(t *testing.T) {
	records := []model.AcademicRecord{
		{Subject: "math", Score: 0, MaxScore: 1000, AssessmentDate: day(0)},
		{Subject: "math", Score: 1000, MaxScore: 1000, AssessmentDate: day(1)},
	}

	op := OverallPerformance(records)
	assert.Equal(t, 0.0, op.ConsistencyScore)
}

func TestSubjectStrengthsWeightedByVolume(t *testing.T) {
	// Ten results at 80 outweigh a single 85: 80*ln(11) > 85*ln(2).
	records := []model.AcademicRecord{}
	for i := 0; i < 10; i++ {
		records = append(records, rec("math", 80, i))
	}
	records = append(records, rec("physics", 85, 10))

	ss := SubjectStrengths(records)
	require.Len(t, ss.Strengths, 2)
	assert.Equal(t, "math", ss.Strengths[0])
	assert.Equal(t, 80.0, ss.SubjectScores["math"])
	assert.Equal(t, 85.0, ss.SubjectScores["physics"])
}

func TestSubjectStrengthsWeaknessesWorstFirst(t *testing.T) {
	records := []model.AcademicRecord{
		rec("math", 90, 0),
		rec("physics", 70, 1),
		rec("history", 50, 2),
	}

	ss := SubjectStrengths(records)
	assert.Equal(t, []string{"math", "physics", "history"}, ss.Strengths)
	assert.Equal(t, []string{"history", "physics"}, ss.Weaknesses)
}

func TestSubjectStrengthsOverlapWithOneSubject(t *testing.T) {
	ss := SubjectStrengths(scored(75, 80))

	assert.Equal(t, []string{"math"}, ss.Strengths)
	assert.Equal(t, []string{"math"}, ss.Weaknesses)
}

func TestStudyPatternsPersistence(t *testing.T) {
	records := scored(70, 50, 80)
	records[0].Attempts = 2
	records[1].Attempts = 3
	records[2].Attempts = 1

	patterns := StudyPatterns(records)
	assert.Equal(t, 2.0, patterns.AverageAttempts)
	// Successful records (70 and 80) average 1.5 attempts.
	assert.InDelta(t, 0.75, patterns.PersistenceScore, 1e-9)
}

func TestStudyPatternsNoSuccessfulRecords(t *testing.T) {
	records := scored(30, 40)
	records[0].Attempts = 2
	records[1].Attempts = 2

	patterns := StudyPatterns(records)
	assert.Equal(t, 0.0, patterns.PersistenceScore)
}

func TestStudyPatternsTimeData(t *testing.T) {
	records := scored(70, 80)
	t20, t40 := 20, 40
	records[0].TimeTakenMinutes = &t20
	records[1].TimeTakenMinutes = &t40

	patterns := StudyPatterns(records)
	assert.True(t, patterns.HasStudyTimeData)
	assert.Equal(t, 30.0, patterns.AverageStudyTime)

	noTimes := StudyPatterns(scored(70, 80))
	assert.False(t, noTimes.HasStudyTimeData)
	assert.Equal(t, 0.0, noTimes.AverageStudyTime)
}

func TestStudyPatternsAssessmentTypePreferences(t *testing.T) {
	records := scored(80, 90, 60)
	records[0].AssessmentType = "quiz"
	records[1].AssessmentType = "quiz"
	records[2].AssessmentType = "exam"

	patterns := StudyPatterns(records)
	assert.Equal(t, 85.0, patterns.AssessmentTypePreferences["quiz"])
	assert.Equal(t, 60.0, patterns.AssessmentTypePreferences["exam"])
}
