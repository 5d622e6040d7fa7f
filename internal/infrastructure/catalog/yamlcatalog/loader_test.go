package yamlcatalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/zodi-core/internal/domain/entities"
)

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "content.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoader_Load(t *testing.T) {
	path := writeCatalog(t, `
signs:
  Овен:
    general:
      - "Текст для Овна."
    love:
      - "Любовный текст для Овна."
  Лев:
    general:
      - "Текст для Льва."
universal:
  general:
    - "Универсальный текст."
  advice:
    - "Универсальный совет."
matrix:
  Овен:
    Лев: 85
`)

	catalog, err := NewLoader(path).Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"Текст для Овна."}, catalog.PersonalPool(entities.Aries, entities.CategoryGeneral))
	assert.Equal(t, []string{"Любовный текст для Овна."}, catalog.PersonalPool(entities.Aries, entities.CategoryLove))
	assert.Equal(t, []string{"Текст для Льва."}, catalog.PersonalPool(entities.Leo, entities.CategoryGeneral))
	assert.Equal(t, []string{"Универсальный текст."}, catalog.UniversalPool(entities.CategoryGeneral))
	assert.Equal(t, []string{"Универсальный совет."}, catalog.UniversalPool(entities.CategoryAdvice))

	score, ok := catalog.BaseScore(entities.Aries, entities.Leo)
	require.True(t, ok)
	assert.Equal(t, 85, score)
}

func TestLoader_Load_SkipsUnknownKeys(t *testing.T) {
	path := writeCatalog(t, `
signs:
  Овен:
    general:
      - "Текст для Овна."
    weather:
      - "Неизвестная категория."
  Дракон:
    general:
      - "Неизвестный знак."
universal:
  weather:
    - "Неизвестная категория."
matrix:
  Дракон:
    Овен: 50
`)

	catalog, err := NewLoader(path).Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"Текст для Овна."}, catalog.PersonalPool(entities.Aries, entities.CategoryGeneral))
	assert.Len(t, catalog.Personal, 1)
	assert.Len(t, catalog.Personal[entities.Aries], 1)
	assert.Empty(t, catalog.Universal)
	assert.Empty(t, catalog.BaseScores)
}

func TestLoader_Load_MissingFile(t *testing.T) {
	_, err := NewLoader(filepath.Join(t.TempDir(), "missing.yaml")).Load()
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoader_Load_MalformedYAML(t *testing.T) {
	path := writeCatalog(t, "signs: [not a map")
	_, err := NewLoader(path).Load()
	assert.ErrorContains(t, err, "parsing catalog file")
}

func TestLoader_Load_EmptyFile(t *testing.T) {
	path := writeCatalog(t, "")
	catalog, err := NewLoader(path).Load()
	require.NoError(t, err)
	assert.True(t, catalog.Empty())
}
