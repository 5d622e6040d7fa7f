package ports

import (
	"context"

	"github.com/ersonp/zodi-core/internal/domain/entities"
)

// ProfileStore persists the single user profile.
type ProfileStore interface {
	// Load returns the stored profile, or (nil, nil) when none exists.
	// An unreadable or undecryptable profile is an error; the profile
	// service converts it to a fresh profile rather than failing.
	Load(ctx context.Context) (*entities.Profile, error)

	// Save stores the profile, replacing any previous one.
	Save(ctx context.Context, profile *entities.Profile) error
}
