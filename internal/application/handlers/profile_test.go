package handlers

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/zodi-core/internal/domain/entities"
	"github.com/ersonp/zodi-core/internal/domain/mocks"
	"github.com/ersonp/zodi-core/internal/domain/services"
)

func setupProfileHandler(t *testing.T) (*ProfileHandler, *mocks.ProfileStore) {
	t.Helper()
	store := &mocks.ProfileStore{}
	profiles := services.NewProfileService(context.Background(), store)
	return NewProfileHandler(profiles), store
}

func TestProfileHandler_SetInfo(t *testing.T) {
	handler, store := setupProfileHandler(t)

	sign, err := handler.SetInfo(context.Background(), "Анна", 5, 8, 1990, "Москва")
	require.NoError(t, err)
	assert.Equal(t, entities.Leo, sign)
	assert.Equal(t, "Лев", handler.Show().Sign)
	assert.Equal(t, 1, store.SaveCallCount)
}

func TestProfileHandler_Favorites(t *testing.T) {
	handler, _ := setupProfileHandler(t)
	ctx := context.Background()

	assert.Empty(t, handler.Favorites(10))

	for i := 0; i < 4; i++ {
		err := handler.SaveFavorite(ctx, entities.CategoryLove, fmt.Sprintf("текст %d", i))
		require.NoError(t, err)
	}

	favorites := handler.Favorites(3)
	require.Len(t, favorites, 3)
	// Newest last, oldest outside the limit dropped from the view.
	assert.Equal(t, "текст 1", favorites[0].Text)
	assert.Equal(t, "текст 3", favorites[2].Text)
	assert.Equal(t, entities.CategoryLove, favorites[0].Category)
	assert.NotEmpty(t, favorites[0].ID)
}

func TestProfileHandler_SaveFavorite_PropagatesStoreError(t *testing.T) {
	store := &mocks.ProfileStore{}
	profiles := services.NewProfileService(context.Background(), store)
	handler := NewProfileHandler(profiles)

	store.SaveErr = assert.AnError
	err := handler.SaveFavorite(context.Background(), entities.CategoryGeneral, "текст")
	assert.ErrorContains(t, err, "saving favorite")
}

func TestProfileHandler_Clear(t *testing.T) {
	handler, store := setupProfileHandler(t)
	ctx := context.Background()

	_, err := handler.SetInfo(ctx, "Анна", 5, 8, 1990, "")
	require.NoError(t, err)
	require.NoError(t, handler.SaveFavorite(ctx, entities.CategoryGeneral, "текст"))

	require.NoError(t, handler.Clear(ctx))

	assert.Empty(t, handler.Show().Name)
	assert.Empty(t, handler.Favorites(10))
	require.NotNil(t, store.Stored)
	assert.Empty(t, store.Stored.Name)
}
