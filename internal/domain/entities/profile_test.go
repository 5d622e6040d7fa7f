package entities

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProfile_Defaults(t *testing.T) {
	now := time.Now()
	profile := NewProfile(now)

	assert.Equal(t, now, profile.CreatedAt)
	assert.Equal(t, now, profile.UpdatedAt)
	assert.True(t, profile.Settings.Notifications)
	assert.Equal(t, "07:00", profile.Settings.NotifyAt)
	assert.True(t, profile.Settings.Detailed)
	assert.True(t, profile.Settings.AutoSave)
	assert.Equal(t, "ru", profile.Settings.Language)
	assert.False(t, profile.HasIdentity())
}

func TestProfile_HasIdentity(t *testing.T) {
	var nilProfile *Profile
	assert.False(t, nilProfile.HasIdentity())

	profile := NewProfile(time.Now())
	profile.Name = "Анна"
	assert.True(t, profile.HasIdentity())

	profile = NewProfile(time.Now())
	profile.Sign = "Лев"
	assert.True(t, profile.HasIdentity())
}

func TestProfile_AddFavorite_DropsOldestAtCap(t *testing.T) {
	profile := NewProfile(time.Now())

	for i := 0; i < MaxFavoritePredictions+3; i++ {
		profile.AddFavorite(FavoritePrediction{Text: fmt.Sprintf("текст %d", i)})
	}

	require.Len(t, profile.FavoritePredictions, MaxFavoritePredictions)
	assert.Equal(t, "текст 3", profile.FavoritePredictions[0].Text)
}

func TestProfile_AddCompatibilityRecord_DropsOldestAtCap(t *testing.T) {
	profile := NewProfile(time.Now())

	for i := 0; i < MaxCompatibilityHistory+2; i++ {
		profile.AddCompatibilityRecord(CompatibilityRecord{ID: fmt.Sprintf("%d", i)})
	}

	require.Len(t, profile.CompatibilityHistory, MaxCompatibilityHistory)
	assert.Equal(t, "2", profile.CompatibilityHistory[0].ID)
}

func TestProfile_RecentFavorites(t *testing.T) {
	profile := NewProfile(time.Now())
	for i := 0; i < 5; i++ {
		profile.AddFavorite(FavoritePrediction{Text: fmt.Sprintf("текст %d", i)})
	}

	recent := profile.RecentFavorites(3)
	require.Len(t, recent, 3)
	assert.Equal(t, "текст 2", recent[0].Text)
	assert.Equal(t, "текст 4", recent[2].Text)

	assert.Len(t, profile.RecentFavorites(0), 5)
	assert.Len(t, profile.RecentFavorites(100), 5)
}
