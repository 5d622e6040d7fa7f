package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/zodi-core/internal/domain/entities"
)

func TestCompatibilityScorer_SameElementPair(t *testing.T) {
	scorer := NewCompatibilityScorer(nil)

	result := scorer.Score(entities.Aries, entities.Leo, entities.RelationshipRomantic)

	// Generated matrix pair base is 60; Aries and Leo share the fire
	// element (+15), romantic carries no adjustment.
	assert.Equal(t, 75, result.Score)
	assert.Equal(t, "Отличная", result.ElementAnalysis.Compatibility)
	assert.Equal(t, 15, result.ElementAnalysis.Bonus)
	assert.Contains(t, result.ElementAnalysis.Description, "Огонь")
	assert.Equal(t, entities.RelationshipRomantic, result.RelationshipType)
	assert.NotEmpty(t, result.Description)
	assert.NotEmpty(t, result.Strengths)
	assert.NotEmpty(t, result.Challenges)
	assert.NotEmpty(t, result.Recommendations)
}

func TestCompatibilityScorer_SelfPair(t *testing.T) {
	scorer := NewCompatibilityScorer(nil)

	result := scorer.Score(entities.Taurus, entities.Taurus, entities.RelationshipRomantic)

	// Generated matrix self base is 85, same element adds 15.
	assert.Equal(t, 100, result.Score)
}

func TestCompatibilityScorer_RelationshipAdjustments(t *testing.T) {
	scorer := NewCompatibilityScorer(nil)

	romantic := scorer.Score(entities.Aries, entities.Cancer, entities.RelationshipRomantic)
	friendship := scorer.Score(entities.Aries, entities.Cancer, entities.RelationshipFriendship)
	business := scorer.Score(entities.Aries, entities.Cancer, entities.RelationshipBusiness)
	family := scorer.Score(entities.Aries, entities.Cancer, entities.RelationshipFamily)

	assert.Equal(t, romantic.Score+5, friendship.Score)
	assert.Equal(t, romantic.Score-5, business.Score)
	assert.Equal(t, romantic.Score+10, family.Score)
}

func TestCompatibilityScorer_InvalidTypeFallsBackToRomantic(t *testing.T) {
	scorer := NewCompatibilityScorer(nil)

	romantic := scorer.Score(entities.Gemini, entities.Libra, entities.RelationshipRomantic)
	unknown := scorer.Score(entities.Gemini, entities.Libra, entities.RelationshipType("enemies"))

	assert.Equal(t, romantic.Score, unknown.Score)
	assert.Equal(t, entities.RelationshipRomantic, unknown.RelationshipType)
}

func TestCompatibilityScorer_Symmetry(t *testing.T) {
	scorer := NewCompatibilityScorer(nil)

	for _, a := range entities.AllSigns() {
		for _, b := range entities.AllSigns() {
			forward := scorer.Score(a, b, entities.RelationshipRomantic)
			backward := scorer.Score(b, a, entities.RelationshipRomantic)
			assert.Equal(t, forward.Score, backward.Score, "%s vs %s", a, b)
			assert.Equal(t, forward.ElementAnalysis.Bonus, backward.ElementAnalysis.Bonus, "%s vs %s", a, b)
			assert.Equal(t, forward.RulingBodyAnalysis.Bonus, backward.RulingBodyAnalysis.Bonus, "%s vs %s", a, b)
		}
	}
}

func TestCompatibilityScorer_ScoresWithinBounds(t *testing.T) {
	// An extreme matrix pushes every sub-score against the clamp.
	extremes := map[entities.Sign]map[entities.Sign]int{}
	for i, a := range entities.AllSigns() {
		row := map[entities.Sign]int{}
		for j, b := range entities.AllSigns() {
			if (i+j)%2 == 0 {
				row[b] = 0
			} else {
				row[b] = 100
			}
		}
		extremes[a] = row
	}

	scorers := []*CompatibilityScorer{
		NewCompatibilityScorer(nil),
		NewCompatibilityScorer(&entities.Catalog{BaseScores: extremes}),
	}

	for _, scorer := range scorers {
		for _, a := range entities.AllSigns() {
			for _, b := range entities.AllSigns() {
				for _, relType := range entities.AllRelationshipTypes() {
					result := scorer.Score(a, b, relType)
					for name, score := range map[string]int{
						"score":        result.Score,
						"weighted":     result.WeightedScore,
						"love":         result.LoveScore,
						"friendship":   result.FriendshipScore,
						"business":     result.BusinessScore,
						"intellectual": result.IntellectualScore,
					} {
						assert.GreaterOrEqual(t, score, 0, "%s %s/%s %s", name, a, b, relType)
						assert.LessOrEqual(t, score, 100, "%s %s/%s %s", name, a, b, relType)
					}
				}
			}
		}
	}
}

func TestCompatibilityScorer_ProvidedMatrix(t *testing.T) {
	catalog := &entities.Catalog{
		BaseScores: map[entities.Sign]map[entities.Sign]int{
			entities.Aries: {entities.Scorpio: 30},
		},
	}
	scorer := NewCompatibilityScorer(catalog)

	// Aries is fire, Scorpio is water: opposing elements (-5).
	result := scorer.Score(entities.Aries, entities.Scorpio, entities.RelationshipRomantic)
	assert.Equal(t, 25, result.Score)
	assert.Equal(t, "Сложная", result.ElementAnalysis.Compatibility)

	// A pair absent from the provided matrix gets the neutral base.
	// Gemini and Leo are air and fire: complementary elements (+10).
	other := scorer.Score(entities.Gemini, entities.Leo, entities.RelationshipRomantic)
	assert.Equal(t, 60, other.Score)
}

func TestCompatibilityScorer_UnknownSign(t *testing.T) {
	scorer := NewCompatibilityScorer(nil)

	result := scorer.Score(entities.SignUnknown, entities.Leo, entities.RelationshipRomantic)

	// Unknown signs get the neutral base, a neutral element tier and a
	// neutral ruling-body influence; scoring never fails.
	assert.Equal(t, defaultBaseScore, result.Score)
	assert.Equal(t, "Нейтральная", result.ElementAnalysis.Compatibility)
	assert.Equal(t, 0, result.ElementAnalysis.Bonus)
	assert.Equal(t, "Нейтральное", result.RulingBodyAnalysis.Influence)
}

func TestCompatibilityScorer_HarmoniousBodies(t *testing.T) {
	scorer := NewCompatibilityScorer(nil)

	// Leo is ruled by the sun, Cancer by the moon.
	result := scorer.Score(entities.Leo, entities.Cancer, entities.RelationshipRomantic)
	assert.Equal(t, "Гармоничное", result.RulingBodyAnalysis.Influence)
	assert.Equal(t, 5, result.RulingBodyAnalysis.Bonus)

	// Taurus (venus) and Leo (sun) are not on the allowlist.
	neutral := scorer.Score(entities.Taurus, entities.Leo, entities.RelationshipRomantic)
	assert.Equal(t, "Нейтральное", neutral.RulingBodyAnalysis.Influence)
}

func TestDescribeCompatibility_Bands(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{95, "Отличная"},
		{80, "Отличная"},
		{79, "Хорошая"},
		{60, "Хорошая"},
		{59, "Умеренная"},
		{40, "Умеренная"},
		{39, "Сложная"},
		{0, "Сложная"},
	}

	for _, tt := range tests {
		got := describeCompatibility(entities.Aries, entities.Leo, tt.score, entities.RelationshipRomantic)
		assert.Contains(t, got, tt.want, "score %d", tt.score)
	}
}

func TestRecommendationsForScore_Tiers(t *testing.T) {
	high := recommendationsForScore(85)
	mid := recommendationsForScore(70)
	low := recommendationsForScore(30)

	require.NotEmpty(t, high)
	require.NotEmpty(t, mid)
	require.NotEmpty(t, low)
	assert.NotEqual(t, high, mid)
	assert.NotEqual(t, mid, low)
}
