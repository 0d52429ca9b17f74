package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"prakriti-api/internal/domain"
	"prakriti-api/internal/repository"
)

var (
	ErrAnalyticsNotConfigured = errors.New("analytics service not configured")
	ErrInvalidFoodEntry       = errors.New("invalid food entry")
)

// AnalyticsService registra comidas y calcula el balance dosha diario.
type AnalyticsService struct {
	foods  repository.FoodRepository
	logger *zap.Logger
	now    func() time.Time
}

func NewAnalyticsService(logger *zap.Logger, foods repository.FoodRepository) *AnalyticsService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AnalyticsService{
		foods:  foods,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

type FoodEntryInput struct {
	UserID      string
	Name        string
	Calories    int
	DoshaImpact domain.DoshaVector
	ConsumedAt  time.Time
}

func (s *AnalyticsService) LogFood(ctx context.Context, input FoodEntryInput) (domain.FoodEntry, error) {
	if s == nil || s.foods == nil {
		return domain.FoodEntry{}, ErrAnalyticsNotConfigured
	}
	userID := strings.TrimSpace(input.UserID)
	name := strings.TrimSpace(input.Name)
	if userID == "" || name == "" || input.Calories < 0 {
		return domain.FoodEntry{}, ErrInvalidFoodEntry
	}

	now := s.now()
	consumedAt := input.ConsumedAt.UTC()
	if input.ConsumedAt.IsZero() {
		consumedAt = now
	}
	entry := domain.FoodEntry{
		ID:          uuid.NewString(),
		UserID:      userID,
		Name:        name,
		Calories:    input.Calories,
		DoshaImpact: input.DoshaImpact,
		ConsumedAt:  consumedAt,
		CreatedAt:   now,
	}
	if err := s.foods.Create(ctx, entry); err != nil {
		return domain.FoodEntry{}, fmt.Errorf("persist food entry: %w", err)
	}
	return entry, nil
}

// DailyBalance agrega las comidas del dia UTC que contiene day.
func (s *AnalyticsService) DailyBalance(ctx context.Context, userID string, day time.Time) (domain.DailyBalance, error) {
	if s == nil || s.foods == nil {
		return domain.DailyBalance{}, ErrAnalyticsNotConfigured
	}
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return domain.DailyBalance{}, ErrInvalidInput
	}

	y, m, d := day.UTC().Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	entries, err := s.foods.ListByUserBetween(ctx, userID, start, start.AddDate(0, 0, 1))
	if err != nil {
		return domain.DailyBalance{}, fmt.Errorf("list food entries: %w", err)
	}

	impacts := make([]domain.DoshaVector, 0, len(entries))
	calories := 0
	for _, e := range entries {
		impacts = append(impacts, e.DoshaImpact)
		calories += e.Calories
	}

	return domain.DailyBalance{
		UserID:        userID,
		Date:          start.Format("2006-01-02"),
		Entries:       len(entries),
		TotalCalories: calories,
		Balance:       CalculateDoshaBalance(impacts),
	}, nil
}

// CalculateDoshaBalance suma los impactos y normaliza por la suma de valores
// absolutos, de modo que un eje calmado queda en negativo. Sin impactos
// devuelve cero en los tres ejes: un dia sin comidas es un estado valido.
func CalculateDoshaBalance(impacts []domain.DoshaVector) domain.DoshaScore {
	var sum domain.DoshaVector
	for _, v := range impacts {
		sum = sum.Add(v)
	}
	total := abs(sum.Vata) + abs(sum.Pitta) + abs(sum.Kapha)
	if total == 0 {
		return domain.DoshaScore{}
	}
	pct := func(v int) int {
		return int(math.Round(float64(v) / float64(total) * 100))
	}
	return domain.DoshaScore{
		Vata:  pct(sum.Vata),
		Pitta: pct(sum.Pitta),
		Kapha: pct(sum.Kapha),
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
