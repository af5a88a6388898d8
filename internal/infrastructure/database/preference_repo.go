package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"weatherbot/internal/domain"
	"weatherbot/internal/domain/entities"
	"weatherbot/internal/ports/output"
)

var _ output.PreferenceRepository = (*PreferenceRepository)(nil)

// Querier is the subset of *pgxpool.Pool the repository needs.
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

const (
	getPreferenceSQL = `SELECT user_id, home_city, updated_at FROM user_preferences WHERE user_id = $1`

	upsertPreferenceSQL = `INSERT INTO user_preferences (user_id, home_city, updated_at)
VALUES ($1, $2, COALESCE($3, now()))
ON CONFLICT (user_id) DO UPDATE
SET home_city = EXCLUDED.home_city, updated_at = EXCLUDED.updated_at`
)

// PreferenceRepository implements output.PreferenceRepository on PostgreSQL.
type PreferenceRepository struct {
	q Querier
}

// NewPreferenceRepository creates a PreferenceRepository.
func NewPreferenceRepository(q Querier) *PreferenceRepository {
	return &PreferenceRepository{q: q}
}

func (r *PreferenceRepository) FindByUserID(ctx context.Context, userID string) (*entities.UserPreference, error) {
	var row preferenceRow
	err := r.q.QueryRow(ctx, getPreferenceSQL, userID).Scan(&row.UserID, &row.HomeCity, &row.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrPreferenceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get preference by user id: %w", err)
	}
	p := preferenceToDomain(row)
	return &p, nil
}

func (r *PreferenceRepository) Save(ctx context.Context, pref *entities.UserPreference) error {
	if _, err := r.q.Exec(ctx, upsertPreferenceSQL, pref.UserID, pref.HomeCity, timeToPgtypeTimestamptz(pref.UpdatedAt)); err != nil {
		return fmt.Errorf("upsert preference: %w", err)
	}
	return nil
}
