package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_Empty(t *testing.T) {
	var nilCatalog *Catalog
	assert.True(t, nilCatalog.Empty())
	assert.True(t, (&Catalog{}).Empty())

	withPersonal := &Catalog{
		Personal: map[Sign]map[Category][]string{
			Aries: {CategoryGeneral: {"текст"}},
		},
	}
	assert.False(t, withPersonal.Empty())

	withUniversal := &Catalog{
		Universal: map[Category][]string{CategoryGeneral: {"текст"}},
	}
	assert.False(t, withUniversal.Empty())

	// A matrix alone is not prediction content.
	matrixOnly := &Catalog{
		BaseScores: map[Sign]map[Sign]int{Aries: {Leo: 80}},
	}
	assert.True(t, matrixOnly.Empty())
}

func TestCatalog_NilSafeLookups(t *testing.T) {
	var c *Catalog
	assert.Nil(t, c.PersonalPool(Aries, CategoryGeneral))
	assert.Nil(t, c.UniversalPool(CategoryGeneral))
	_, ok := c.BaseScore(Aries, Leo)
	assert.False(t, ok)
}

func TestFallbackCatalog(t *testing.T) {
	catalog := FallbackCatalog()

	require.False(t, catalog.Empty())

	// Every sign carries its own general pool so daily assignment has
	// per-sign material even without an external catalog.
	for _, sign := range AllSigns() {
		assert.NotEmpty(t, catalog.PersonalPool(sign, CategoryGeneral), "sign %s", sign)
	}

	for _, category := range AllCategories() {
		assert.NotEmpty(t, catalog.UniversalPool(category), "category %s", category)
	}

	// Texts are unique within each pool.
	for _, sign := range AllSigns() {
		seen := map[string]bool{}
		for _, text := range catalog.PersonalPool(sign, CategoryGeneral) {
			assert.False(t, seen[text], "duplicate text for %s: %q", sign, text)
			seen[text] = true
		}
	}
}

func TestDailyAssignment(t *testing.T) {
	assignment := NewDailyAssignment("2025-03-15")
	assert.Equal(t, "2025-03-15", assignment.Date)
	assert.False(t, assignment.Complete())

	for _, sign := range AllSigns() {
		assignment.Predictions[sign] = "текст " + sign.String()
	}
	assert.True(t, assignment.Complete())

	clone := assignment.Clone()
	require.NotNil(t, clone)
	assert.Equal(t, assignment.Date, clone.Date)
	assert.Equal(t, assignment.Predictions, clone.Predictions)

	clone.Predictions[Aries] = "другой"
	assert.NotEqual(t, assignment.Predictions[Aries], clone.Predictions[Aries])

	var nilAssignment *DailyAssignment
	assert.False(t, nilAssignment.Complete())
	assert.Nil(t, nilAssignment.Clone())
}

func TestParseCategory(t *testing.T) {
	category, ok := ParseCategory(" Love ")
	require.True(t, ok)
	assert.Equal(t, CategoryLove, category)

	_, ok = ParseCategory("weather")
	assert.False(t, ok)

	assert.Equal(t, "Личная жизнь", CategoryLove.Label())
	assert.Equal(t, CategoryGeneral, AllCategories()[0])
}

func TestParseRelationshipType(t *testing.T) {
	assert.Equal(t, RelationshipFamily, ParseRelationshipType("FAMILY"))
	assert.Equal(t, RelationshipRomantic, ParseRelationshipType(""))
	assert.Equal(t, RelationshipRomantic, ParseRelationshipType("enemies"))
	assert.Equal(t, "Дружба", RelationshipFriendship.Label())
}
