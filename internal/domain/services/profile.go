package services

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/ersonp/zodi-core/internal/domain/entities"
	"github.com/ersonp/zodi-core/internal/domain/ports"
	"github.com/google/uuid"
)

// generateUUID returns a new UUID string.
func generateUUID() string {
	return uuid.New().String()
}

// ProfileService manages the single user profile. The profile is loaded
// once on construction; a missing or undecryptable stored profile yields a
// fresh one rather than an error.
type ProfileService struct {
	store   ports.ProfileStore
	profile *entities.Profile
}

// NewProfileService creates the service and loads the stored profile.
func NewProfileService(ctx context.Context, store ports.ProfileStore) *ProfileService {
	s := &ProfileService{store: store}
	if store != nil {
		if stored, err := store.Load(ctx); err == nil && stored != nil {
			s.profile = stored
		}
	}
	if s.profile == nil {
		s.profile = entities.NewProfile(timeNow())
	}
	return s
}

// Profile returns the current profile.
func (s *ProfileService) Profile() *entities.Profile {
	return s.profile
}

// SetPersonalInfo stores name and birth data and re-resolves the zodiac
// attributes from the birth date.
func (s *ProfileService) SetPersonalInfo(ctx context.Context, name string, day, month, year int, place string) error {
	s.profile.Name = name
	s.profile.BirthDate = entities.BirthDate{Day: day, Month: month, Year: year}
	s.profile.BirthPlace = place

	sign, ok := entities.SignForBirthDate(day, month)
	if ok {
		s.profile.Sign = sign.String()
		s.profile.Element = string(sign.Element())
		s.profile.RulingBody = string(sign.RulingBody())
	} else {
		s.profile.Sign = ""
		s.profile.Element = ""
		s.profile.RulingBody = ""
	}

	return s.maybeSave(ctx)
}

// UpdateSettings replaces the profile settings.
func (s *ProfileService) UpdateSettings(ctx context.Context, settings entities.Settings) error {
	s.profile.Settings = settings
	return s.maybeSave(ctx)
}

// Settings returns the current settings.
func (s *ProfileService) Settings() entities.Settings {
	return s.profile.Settings
}

// AddFavorite saves a prediction to the favorites list.
func (s *ProfileService) AddFavorite(ctx context.Context, category entities.Category, text string) error {
	s.profile.AddFavorite(entities.FavoritePrediction{
		ID:        generateUUID(),
		Category:  category,
		Text:      text,
		CreatedAt: timeNow(),
	})
	return s.maybeSave(ctx)
}

// AddCompatibilityRecord saves a compatibility check to the history.
func (s *ProfileService) AddCompatibilityRecord(ctx context.Context, sign1, sign2 entities.Sign, result entities.CompatibilityResult) error {
	s.profile.AddCompatibilityRecord(entities.CompatibilityRecord{
		ID:               generateUUID(),
		Sign1:            sign1.String(),
		Sign2:            sign2.String(),
		RelationshipType: result.RelationshipType,
		Score:            result.Score,
		Description:      result.Description,
		CreatedAt:        timeNow(),
	})
	return s.maybeSave(ctx)
}

// Clear resets the profile to a fresh one and persists the reset.
func (s *ProfileService) Clear(ctx context.Context) error {
	s.profile = entities.NewProfile(timeNow())
	return s.save(ctx)
}

// Export writes the profile as plaintext JSON to the given path.
func (s *ProfileService) Export(path string) error {
	data, err := json.MarshalIndent(s.profile, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding profile: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing profile export: %w", err)
	}
	return nil
}

// Import replaces the profile with one read from a plaintext JSON file.
func (s *ProfileService) Import(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading profile import: %w", err)
	}
	var profile entities.Profile
	if err := json.Unmarshal(data, &profile); err != nil {
		return fmt.Errorf("parsing profile import: %w", err)
	}
	s.profile = &profile
	s.profile.UpdatedAt = timeNow()
	return s.save(ctx)
}

// maybeSave persists the profile when auto-save is enabled.
func (s *ProfileService) maybeSave(ctx context.Context) error {
	if !s.profile.Settings.AutoSave {
		return nil
	}
	return s.save(ctx)
}

// Save persists the profile regardless of the auto-save setting.
func (s *ProfileService) Save(ctx context.Context) error {
	return s.save(ctx)
}

func (s *ProfileService) save(ctx context.Context) error {
	if s.store == nil {
		return nil
	}
	s.profile.UpdatedAt = timeNow()
	if err := s.store.Save(ctx, s.profile); err != nil {
		return fmt.Errorf("saving profile: %w", err)
	}
	return nil
}
