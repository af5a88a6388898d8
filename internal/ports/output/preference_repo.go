package output

import (
	"context"

	"weatherbot/internal/domain/entities"
)

type PreferenceRepository interface {
	FindByUserID(ctx context.Context, userID string) (*entities.UserPreference, error)
	Save(ctx context.Context, pref *entities.UserPreference) error
}
