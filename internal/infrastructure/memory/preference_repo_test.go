package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weatherbot/internal/domain"
	"weatherbot/internal/domain/entities"
)

func TestPreferenceRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewPreferenceRepository()

	_, err := repo.FindByUserID(ctx, "u1")
	assert.ErrorIs(t, err, domain.ErrPreferenceNotFound)

	pref := &entities.UserPreference{UserID: "u1", HomeCity: "Recife"}
	require.NoError(t, repo.Save(ctx, pref))
	pref.HomeCity = "mutated"

	got, err := repo.FindByUserID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Recife", got.HomeCity)

	require.NoError(t, repo.Save(ctx, &entities.UserPreference{UserID: "u1", HomeCity: "Natal"}))
	got, err = repo.FindByUserID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Natal", got.HomeCity)
}
