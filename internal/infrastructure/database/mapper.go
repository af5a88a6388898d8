package database

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"weatherbot/internal/domain/entities"
)

// pgtypeTimestamptzToTime returns t.Time when Valid, else zero time.
func pgtypeTimestamptzToTime(t pgtype.Timestamptz) time.Time {
	if !t.Valid {
		return time.Time{}
	}
	return t.Time
}

func timeToPgtypeTimestamptz(t time.Time) pgtype.Timestamptz {
	if t.IsZero() {
		return pgtype.Timestamptz{}
	}
	return pgtype.Timestamptz{Time: t, Valid: true}
}

type preferenceRow struct {
	UserID    string
	HomeCity  string
	UpdatedAt pgtype.Timestamptz
}

func preferenceToDomain(r preferenceRow) entities.UserPreference {
	return entities.UserPreference{
		UserID:    r.UserID,
		HomeCity:  r.HomeCity,
		UpdatedAt: pgtypeTimestamptzToTime(r.UpdatedAt),
	}
}
