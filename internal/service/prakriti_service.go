package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"prakriti-api/internal/domain"
	"prakriti-api/internal/repository"
)

var (
	ErrPrakritiNotConfigured = errors.New("prakriti service not configured")
	ErrPrakritiNotFound      = errors.New("prakriti result not found")
	ErrRateLimited           = errors.New("rate limited")
)

const (
	defaultHistoryLimit = 10
	maxHistoryLimit     = 50
)

// PrakritiService clasifica cuestionarios, persiste el resultado y mantiene
// en cache el ultimo resultado de cada usuario.
type PrakritiService struct {
	classifier DoshaClassifier
	results    repository.PrakritiRepository
	cache      PrakritiCache
	limiter    SubmissionRateLimiter
	logger     *zap.Logger
	now        func() time.Time
}

func NewPrakritiService(
	logger *zap.Logger,
	classifier DoshaClassifier,
	results repository.PrakritiRepository,
	cache PrakritiCache,
	limiter SubmissionRateLimiter,
) *PrakritiService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PrakritiService{
		classifier: classifier,
		results:    results,
		cache:      cache,
		limiter:    limiter,
		logger:     logger,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Assess clasifica las respuestas del usuario y guarda el resultado.
func (s *PrakritiService) Assess(ctx context.Context, userID string, answers map[string]string) (domain.PrakritiResult, error) {
	if s == nil || s.results == nil {
		return domain.PrakritiResult{}, ErrPrakritiNotConfigured
	}
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return domain.PrakritiResult{}, ErrInvalidInput
	}
	if s.limiter != nil && !s.limiter.Allow(userID) {
		return domain.PrakritiResult{}, ErrRateLimited
	}

	classification, err := s.classifier.Classify(answers)
	if err != nil {
		return domain.PrakritiResult{}, fmt.Errorf("classify answers: %w", err)
	}
	if len(classification.Ignored) > 0 {
		s.logger.Warn("unrecognized prakriti answers ignored",
			zap.String("user_id", userID),
			zap.Strings("dimensions", classification.Ignored),
		)
	}

	stored := make(map[string]string, len(answers))
	for dimension, answer := range answers {
		stored[dimension] = strings.TrimSpace(answer)
	}

	result := domain.PrakritiResult{
		ID:                   uuid.NewString(),
		UserID:               userID,
		Answers:              stored,
		ClassificationResult: classification,
		CreatedAt:            s.now(),
	}
	if err := s.results.Create(ctx, result); err != nil {
		return domain.PrakritiResult{}, fmt.Errorf("persist prakriti result: %w", err)
	}
	s.storeInCache(ctx, result)

	s.logger.Info("prakriti assessed",
		zap.String("user_id", userID),
		zap.String("primary", string(result.PrimaryDosha)),
		zap.String("secondary", string(result.SecondaryDosha)),
	)
	return result, nil
}

// Latest devuelve el ultimo resultado del usuario, primero desde cache.
func (s *PrakritiService) Latest(ctx context.Context, userID string) (domain.PrakritiResult, error) {
	if s == nil || s.results == nil {
		return domain.PrakritiResult{}, ErrPrakritiNotConfigured
	}
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return domain.PrakritiResult{}, ErrInvalidInput
	}

	if s.cache != nil {
		cached, found, err := s.cache.Get(ctx, userID)
		if err != nil {
			s.logger.Warn("prakriti cache get failed", zap.Error(err), zap.String("user_id", userID))
		} else if found {
			return cached, nil
		}
	}

	result, err := s.results.LatestByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.PrakritiResult{}, ErrPrakritiNotFound
		}
		return domain.PrakritiResult{}, fmt.Errorf("get latest prakriti for user %s: %w", userID, err)
	}
	s.storeInCache(ctx, result)
	return result, nil
}

// History lista resultados del mas reciente al mas antiguo.
func (s *PrakritiService) History(ctx context.Context, userID string, limit int) ([]domain.PrakritiResult, error) {
	if s == nil || s.results == nil {
		return nil, ErrPrakritiNotConfigured
	}
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidInput
	}
	switch {
	case limit <= 0:
		limit = defaultHistoryLimit
	case limit > maxHistoryLimit:
		limit = maxHistoryLimit
	}

	results, err := s.results.ListByUserID(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list prakriti results: %w", err)
	}
	if results == nil {
		results = []domain.PrakritiResult{}
	}
	return results, nil
}

func (s *PrakritiService) storeInCache(ctx context.Context, result domain.PrakritiResult) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, result); err != nil {
		s.logger.Warn("prakriti cache set failed", zap.Error(err), zap.String("user_id", result.UserID))
	}
}
