package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"prakriti-api/internal/domain"
)

type FoodRepository interface {
	Create(ctx context.Context, entry domain.FoodEntry) error
	ListByUserBetween(ctx context.Context, userID string, from, to time.Time) ([]domain.FoodEntry, error)
}

type PgFoodRepository struct {
	pool *pgxpool.Pool
}

func NewPgFoodRepository(pool *pgxpool.Pool) *PgFoodRepository {
	return &PgFoodRepository{pool: pool}
}

func (r *PgFoodRepository) Create(ctx context.Context, entry domain.FoodEntry) error {
	const query = `
		INSERT INTO food_entries (id, user_id, name, calories, vata, pitta, kapha, consumed_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.pool.Exec(ctx, query,
		entry.ID,
		entry.UserID,
		entry.Name,
		entry.Calories,
		entry.DoshaImpact.Vata,
		entry.DoshaImpact.Pitta,
		entry.DoshaImpact.Kapha,
		entry.ConsumedAt,
		entry.CreatedAt,
	)
	return err
}

// ListByUserBetween devuelve las entradas con consumed_at en [from, to).
func (r *PgFoodRepository) ListByUserBetween(ctx context.Context, userID string, from, to time.Time) ([]domain.FoodEntry, error) {
	const query = `
		SELECT id, user_id, name, calories, vata, pitta, kapha, consumed_at, created_at
		FROM food_entries
		WHERE user_id = $1 AND consumed_at >= $2 AND consumed_at < $3
		ORDER BY consumed_at
	`

	rows, err := r.pool.Query(ctx, query, userID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.FoodEntry
	for rows.Next() {
		var e domain.FoodEntry
		if err := rows.Scan(
			&e.ID,
			&e.UserID,
			&e.Name,
			&e.Calories,
			&e.DoshaImpact.Vata,
			&e.DoshaImpact.Pitta,
			&e.DoshaImpact.Kapha,
			&e.ConsumedAt,
			&e.CreatedAt,
		); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
