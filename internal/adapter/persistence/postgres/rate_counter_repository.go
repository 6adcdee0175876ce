package postgres

import (
	"context"
	"time"

	"quotelock/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5/pgxpool"
)

type RateCounterRepository struct {
	db *pgxpool.Pool
}

var _ interfaces.IRateCounterRepository = (*RateCounterRepository)(nil)

func NewRateCounterRepository(db *pgxpool.Pool) *RateCounterRepository {
	return &RateCounterRepository{db: db}
}

// Increment upserts the counter. Expired rows are cleared opportunistically.
func (r *RateCounterRepository) Increment(ctx context.Context, key string, expiresAt time.Time) (int64, error) {
	if _, err := r.db.Exec(ctx, `DELETE FROM rate_limits WHERE expires_at < now()`); err != nil {
		return 0, err
	}

	var count int64
	err := r.db.QueryRow(ctx, `INSERT INTO rate_limits(key,count,expires_at) VALUES($1,1,$2)
ON CONFLICT (key) DO UPDATE SET count = rate_limits.count + 1, expires_at = EXCLUDED.expires_at
RETURNING count`, key, expiresAt).Scan(&count)
	return count, err
}
