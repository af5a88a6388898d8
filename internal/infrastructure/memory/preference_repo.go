// Package memory provides in-process repositories used when no database is configured.
package memory

import (
	"context"
	"sync"

	"weatherbot/internal/domain"
	"weatherbot/internal/domain/entities"
	"weatherbot/internal/ports/output"
)

var _ output.PreferenceRepository = (*PreferenceRepository)(nil)

// PreferenceRepository keeps preferences in a map. Contents are lost on restart.
type PreferenceRepository struct {
	mu    sync.RWMutex
	prefs map[string]entities.UserPreference
}

func NewPreferenceRepository() *PreferenceRepository {
	return &PreferenceRepository{prefs: make(map[string]entities.UserPreference)}
}

func (r *PreferenceRepository) FindByUserID(_ context.Context, userID string) (*entities.UserPreference, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.prefs[userID]
	if !ok {
		return nil, domain.ErrPreferenceNotFound
	}
	return &p, nil
}

func (r *PreferenceRepository) Save(_ context.Context, pref *entities.UserPreference) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.prefs[pref.UserID] = *pref
	return nil
}
