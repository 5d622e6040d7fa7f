package mocks

import (
	"context"

	"github.com/ersonp/zodi-core/internal/domain/entities"
)

// ProfileStore is a mock implementation of ports.ProfileStore.
type ProfileStore struct {
	Stored  *entities.Profile
	LoadErr error
	SaveErr error

	// Call tracking
	SaveCallCount int
}

// Load returns the stored profile or the configured error.
func (m *ProfileStore) Load(ctx context.Context) (*entities.Profile, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return m.Stored, nil
}

// Save stores the profile or returns the configured error.
func (m *ProfileStore) Save(ctx context.Context, profile *entities.Profile) error {
	m.SaveCallCount++
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Stored = profile
	return nil
}
