package service

import (
	"context"
	"edu_agent_backend/internal/model"
	"edu_agent_backend/internal/profiler"
	"edu_agent_backend/internal/repository"
	"edu_agent_backend/internal/util"
	"edu_agent_backend/pkg/monitoring"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ProfileService derives performance analyses and personalization configs
// from a student's academic records. The database record set is the only
// source of truth; redis holds a TTL-bound cache of derived analyses and is
// invalidated whenever new records arrive.
type ProfileService struct {
	studentRepo *repository.StudentRepository
	recordRepo  *repository.RecordRepository
	redisClient *redis.Client
	cacheTTL    time.Duration
	logger      *zap.Logger
}

func NewProfileService(studentRepo *repository.StudentRepository, recordRepo *repository.RecordRepository, redisClient *redis.Client, cacheTTL time.Duration, logger *zap.Logger) *ProfileService {
	return &ProfileService{
		studentRepo: studentRepo,
		recordRepo:  recordRepo,
		redisClient: redisClient,
		cacheTTL:    cacheTTL,
		logger:      logger,
	}
}

func analysisCacheKey(studentRef uint) string {
	return fmt.Sprintf("profile:analysis:%d", studentRef)
}

// ComputeAnalysis returns the performance analysis for a student, serving
// from cache when a fresh copy exists.
func (s *ProfileService) ComputeAnalysis(ctx context.Context, studentRef uint) (*model.PerformanceAnalysis, error) {
	if s.redisClient != nil {
		cached, err := s.redisClient.Get(ctx, analysisCacheKey(studentRef)).Result()
		if err == nil {
			var analysis model.PerformanceAnalysis
			if err := json.Unmarshal([]byte(cached), &analysis); err == nil {
				monitoring.ProfileComputations.WithLabelValues("cache").Inc()
				return &analysis, nil
			}
			// A corrupt entry is dropped and recomputed below.
			s.redisClient.Del(ctx, analysisCacheKey(studentRef))
		}
	}

	records, err := s.recordRepo.ListByStudent(studentRef)
	if err != nil {
		return nil, err
	}

	analysis, err := profiler.Analyze(records)
	if err != nil {
		return nil, err
	}
	monitoring.ProfileComputations.WithLabelValues("computed").Inc()

	if s.redisClient != nil {
		if data, err := json.Marshal(analysis); err == nil {
			if err := s.redisClient.Set(ctx, analysisCacheKey(studentRef), data, s.cacheTTL).Err(); err != nil {
				s.logger.Warn("failed to cache performance analysis",
					zap.Uint("studentRef", studentRef), zap.Error(err))
			}
		}
	}

	return analysis, nil
}

// ComputeConfig derives the personalization configuration for a student from
// the current analysis and the student's declared learning style.
func (s *ProfileService) ComputeConfig(ctx context.Context, studentRef uint) (*model.PersonalizationConfig, *model.PerformanceAnalysis, error) {
	student, err := s.studentRepo.FindByID(studentRef)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, util.ErrStudentNotFound
		}
		return nil, nil, err
	}

	analysis, err := s.ComputeAnalysis(ctx, studentRef)
	if err != nil {
		return nil, nil, err
	}

	config := profiler.BuildConfig(analysis, student.LearningStyle)
	return &config, analysis, nil
}

// EffectiveLevel is the 0-100 level used to calibrate responses: the recent
// performance once records exist, otherwise the student's seed level.
func (s *ProfileService) EffectiveLevel(ctx context.Context, student *model.Student) (float64, error) {
	count, err := s.recordRepo.CountByStudent(student.ID)
	if err != nil {
		return 0, err
	}
	if count == 0 {
		return student.CurrentLevel, nil
	}
	analysis, err := s.ComputeAnalysis(ctx, student.ID)
	if err != nil {
		return 0, err
	}
	return analysis.OverallPerformance.RecentPerformance, nil
}

// InvalidateCache drops the cached analysis for a student. Called after
// record ingestion so the next read recomputes from the full record set.
func (s *ProfileService) InvalidateCache(ctx context.Context, studentRef uint) {
	if s.redisClient == nil {
		return
	}
	if err := s.redisClient.Del(ctx, analysisCacheKey(studentRef)).Err(); err != nil {
		s.logger.Warn("failed to invalidate analysis cache",
			zap.Uint("studentRef", studentRef), zap.Error(err))
	}
}
