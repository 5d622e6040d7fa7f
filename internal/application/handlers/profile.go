package handlers

import (
	"context"
	"fmt"

	"github.com/ersonp/zodi-core/internal/domain/entities"
	"github.com/ersonp/zodi-core/internal/domain/services"
)

// ProfileHandler serves profile management requests.
type ProfileHandler struct {
	profiles *services.ProfileService
}

// NewProfileHandler creates a new profile handler.
func NewProfileHandler(profiles *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

// SetInfo stores the personal information and returns the resolved sign.
func (h *ProfileHandler) SetInfo(ctx context.Context, name string, day, month, year int, place string) (entities.Sign, error) {
	if err := h.profiles.SetPersonalInfo(ctx, name, day, month, year, place); err != nil {
		return entities.SignUnknown, fmt.Errorf("updating profile: %w", err)
	}
	sign, _ := entities.SignForBirthDate(day, month)
	return sign, nil
}

// Show returns the current profile.
func (h *ProfileHandler) Show() *entities.Profile {
	return h.profiles.Profile()
}

// SaveFavorite stores a prediction text in the favorites list.
func (h *ProfileHandler) SaveFavorite(ctx context.Context, category entities.Category, text string) error {
	if err := h.profiles.AddFavorite(ctx, category, text); err != nil {
		return fmt.Errorf("saving favorite: %w", err)
	}
	return nil
}

// Favorites returns up to limit saved predictions, newest last.
func (h *ProfileHandler) Favorites(limit int) []entities.FavoritePrediction {
	return h.profiles.Profile().RecentFavorites(limit)
}

// Clear resets the profile.
func (h *ProfileHandler) Clear(ctx context.Context) error {
	if err := h.profiles.Clear(ctx); err != nil {
		return fmt.Errorf("clearing profile: %w", err)
	}
	return nil
}

// Export writes the profile as plaintext JSON.
func (h *ProfileHandler) Export(path string) error {
	return h.profiles.Export(path)
}

// Import replaces the profile from a plaintext JSON file.
func (h *ProfileHandler) Import(ctx context.Context, path string) error {
	return h.profiles.Import(ctx, path)
}
