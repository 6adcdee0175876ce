package postgres

import (
	"context"
	"errors"

	"quotelock/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UsageCounterRepository keeps one monthly_usage row per user and month.
type UsageCounterRepository struct {
	db *pgxpool.Pool
}

var _ interfaces.IUsageCounterRepository = (*UsageCounterRepository)(nil)

func NewUsageCounterRepository(db *pgxpool.Pool) *UsageCounterRepository {
	return &UsageCounterRepository{db: db}
}

func (r *UsageCounterRepository) Current(ctx context.Context, userID, period string) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT created_count FROM monthly_usage WHERE user_id = $1 AND year_month = $2`, userID, period).Scan(&count)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	return count, err
}

func (r *UsageCounterRepository) Increment(ctx context.Context, userID, period string) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `INSERT INTO monthly_usage(user_id,year_month,created_count) VALUES($1,$2,1)
ON CONFLICT (user_id, year_month) DO UPDATE SET created_count = monthly_usage.created_count + 1
RETURNING created_count`, userID, period).Scan(&count)
	return count, err
}
