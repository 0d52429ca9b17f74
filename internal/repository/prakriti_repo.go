package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"prakriti-api/internal/domain"
)

// PrakritiRepository define el contrato de persistencia para resultados de prakriti.
type PrakritiRepository interface {
	Create(ctx context.Context, result domain.PrakritiResult) error
	LatestByUserID(ctx context.Context, userID string) (domain.PrakritiResult, error)
	ListByUserID(ctx context.Context, userID string, limit int) ([]domain.PrakritiResult, error)
}

// PgPrakritiRepository implementa PrakritiRepository usando pgxpool.
type PgPrakritiRepository struct {
	pool *pgxpool.Pool
}

func NewPgPrakritiRepository(pool *pgxpool.Pool) *PgPrakritiRepository {
	return &PgPrakritiRepository{pool: pool}
}

const prakritiColumns = `id, user_id, primary_dosha, secondary_dosha, vata, pitta, kapha,
		answers, characteristics, recommendations, feeding_habits, ignored, created_at`

func (r *PgPrakritiRepository) Create(ctx context.Context, result domain.PrakritiResult) error {
	const query = `
		INSERT INTO prakriti_results (` + prakritiColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	answers, err := json.Marshal(result.Answers)
	if err != nil {
		return fmt.Errorf("marshal answers: %w", err)
	}
	characteristics, err := json.Marshal(nonNil(result.Characteristics))
	if err != nil {
		return fmt.Errorf("marshal characteristics: %w", err)
	}
	recommendations, err := json.Marshal(nonNil(result.Recommendations))
	if err != nil {
		return fmt.Errorf("marshal recommendations: %w", err)
	}
	feedingHabits, err := json.Marshal(nonNil(result.FeedingHabits))
	if err != nil {
		return fmt.Errorf("marshal feeding habits: %w", err)
	}
	ignored, err := json.Marshal(nonNil(result.Ignored))
	if err != nil {
		return fmt.Errorf("marshal ignored: %w", err)
	}

	_, err = r.pool.Exec(ctx, query,
		result.ID,
		result.UserID,
		string(result.PrimaryDosha),
		string(result.SecondaryDosha),
		result.Scores.Vata,
		result.Scores.Pitta,
		result.Scores.Kapha,
		answers,
		characteristics,
		recommendations,
		feedingHabits,
		ignored,
		result.CreatedAt,
	)
	return err
}

func (r *PgPrakritiRepository) LatestByUserID(ctx context.Context, userID string) (domain.PrakritiResult, error) {
	const query = `
		SELECT ` + prakritiColumns + `
		FROM prakriti_results
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT 1
	`
	return scanPrakritiResult(r.pool.QueryRow(ctx, query, userID))
}

func (r *PgPrakritiRepository) ListByUserID(ctx context.Context, userID string, limit int) ([]domain.PrakritiResult, error) {
	const query = `
		SELECT ` + prakritiColumns + `
		FROM prakriti_results
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows, err := r.pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.PrakritiResult
	for rows.Next() {
		res, err := scanPrakritiResult(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return results, nil
}

func scanPrakritiResult(row pgx.Row) (domain.PrakritiResult, error) {
	var (
		res                                       domain.PrakritiResult
		primary, secondary                        string
		answers, characteristics, recommendations []byte
		feedingHabits, ignored                    []byte
	)
	if err := row.Scan(
		&res.ID,
		&res.UserID,
		&primary,
		&secondary,
		&res.Scores.Vata,
		&res.Scores.Pitta,
		&res.Scores.Kapha,
		&answers,
		&characteristics,
		&recommendations,
		&feedingHabits,
		&ignored,
		&res.CreatedAt,
	); err != nil {
		return domain.PrakritiResult{}, err
	}
	res.PrimaryDosha = domain.Dosha(primary)
	res.SecondaryDosha = domain.Dosha(secondary)

	for _, f := range []struct {
		raw []byte
		dst any
	}{
		{answers, &res.Answers},
		{characteristics, &res.Characteristics},
		{recommendations, &res.Recommendations},
		{feedingHabits, &res.FeedingHabits},
		{ignored, &res.Ignored},
	} {
		if len(f.raw) == 0 {
			continue
		}
		if err := json.Unmarshal(f.raw, f.dst); err != nil {
			return domain.PrakritiResult{}, fmt.Errorf("decode prakriti result %s: %w", res.ID, err)
		}
	}
	return res, nil
}

func nonNil(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
