package services

import (
	"fmt"

	"github.com/ersonp/zodi-core/internal/domain/entities"
)

// Sub-score weights of the blended compatibility score.
const (
	weightLove         = 0.40
	weightFriendship   = 0.25
	weightBusiness     = 0.20
	weightIntellectual = 0.15
)

// Base matrix defaults.
const (
	// defaultBaseScore is used when a provided matrix has no entry for a
	// pair.
	defaultBaseScore = 50
	// generatedSelfScore and generatedPairScore fill the fallback matrix
	// built when no matrix is provided at all.
	generatedSelfScore = 85
	generatedPairScore = 60
)

// relationshipAdjustments are the fixed per-type headline adjustments.
var relationshipAdjustments = map[entities.RelationshipType]int{
	entities.RelationshipRomantic:   0,
	entities.RelationshipFriendship: 5,
	entities.RelationshipBusiness:   -5,
	entities.RelationshipFamily:     10,
}

// CompatibilityScorer computes compatibility between two signs. It is
// stateless after construction and safe for unlimited parallel calls.
type CompatibilityScorer struct {
	matrix map[entities.Sign]map[entities.Sign]int
}

// NewCompatibilityScorer creates a scorer over the catalog's base matrix.
// When the catalog carries no matrix, a generated default is used.
func NewCompatibilityScorer(catalog *entities.Catalog) *CompatibilityScorer {
	if catalog != nil && len(catalog.BaseScores) > 0 {
		return &CompatibilityScorer{matrix: catalog.BaseScores}
	}
	return &CompatibilityScorer{matrix: generateDefaultMatrix()}
}

// generateDefaultMatrix builds the fallback sign×sign matrix: high
// self-compatibility, a flat baseline for everything else.
func generateDefaultMatrix() map[entities.Sign]map[entities.Sign]int {
	matrix := make(map[entities.Sign]map[entities.Sign]int, 12)
	for _, a := range entities.AllSigns() {
		row := make(map[entities.Sign]int, 12)
		for _, b := range entities.AllSigns() {
			if a == b {
				row[b] = generatedSelfScore
			} else {
				row[b] = generatedPairScore
			}
		}
		matrix[a] = row
	}
	return matrix
}

// Score computes the full compatibility result for a sign pair.
//
// The headline Score is base + relationship adjustment + element bonus,
// clamped to [0, 100]. The weighted blend of the four sub-scores is
// computed as well but exposed separately as WeightedScore; the two are
// intentionally not unified.
func (s *CompatibilityScorer) Score(a, b entities.Sign, relType entities.RelationshipType) entities.CompatibilityResult {
	if !relType.Valid() {
		relType = entities.RelationshipRomantic
	}

	base := s.baseScore(a, b)
	elements := analyzeElements(a, b)
	bodies := analyzeRulingBodies(a, b)

	love := clampScore(base + elements.Bonus + bodies.Bonus + 5)
	friendship := clampScore(base + elements.Bonus + 10)
	business := clampScore(base + 5)
	intellectual := clampScore(base + intellectualBonus(a, b))

	weighted := int(float64(love)*weightLove +
		float64(friendship)*weightFriendship +
		float64(business)*weightBusiness +
		float64(intellectual)*weightIntellectual)

	score := clampScore(base + relationshipAdjustments[relType] + elements.Bonus)

	return entities.CompatibilityResult{
		Score:              score,
		WeightedScore:      weighted,
		LoveScore:          love,
		FriendshipScore:    friendship,
		BusinessScore:      business,
		IntellectualScore:  intellectual,
		Description:        describeCompatibility(a, b, score, relType),
		Strengths:          relationshipStrengths[relType],
		Challenges:         relationshipChallenges[relType],
		Recommendations:    recommendationsForScore(score),
		ElementAnalysis:    elements,
		RulingBodyAnalysis: bodies,
		RelationshipType:   relType,
	}
}

// baseScore looks up the base pair score. A missing entry (e.g. an unknown
// sign) defaults to a neutral score.
func (s *CompatibilityScorer) baseScore(a, b entities.Sign) int {
	if score, ok := s.matrix[a][b]; ok {
		return score
	}
	return defaultBaseScore
}

// intellectualBonus: air signs lean intellectual; a shared element adds
// common ground.
func intellectualBonus(a, b entities.Sign) int {
	bonus := 0
	if a.Element() == entities.ElementAir || b.Element() == entities.ElementAir {
		bonus = 10
	}
	if a.Element() == b.Element() {
		bonus += 5
	}
	return bonus
}

// complementaryElements are the canonically supportive pairs.
var complementaryElements = map[[2]entities.Element]bool{
	{entities.ElementFire, entities.ElementAir}:    true,
	{entities.ElementAir, entities.ElementFire}:    true,
	{entities.ElementEarth, entities.ElementWater}: true,
	{entities.ElementWater, entities.ElementEarth}: true,
}

// opposingElements are the canonically conflicting pairs.
var opposingElements = map[[2]entities.Element]bool{
	{entities.ElementFire, entities.ElementWater}: true,
	{entities.ElementWater, entities.ElementFire}: true,
	{entities.ElementEarth, entities.ElementAir}:  true,
	{entities.ElementAir, entities.ElementEarth}:  true,
}

// analyzeElements classifies the element pair into one of four symmetric
// tiers, each with a fixed label, description template and bonus.
func analyzeElements(a, b entities.Sign) entities.ElementAnalysis {
	e1, e2 := a.Element(), b.Element()

	switch {
	case e1 == e2:
		return entities.ElementAnalysis{
			Compatibility: "Отличная",
			Description:   fmt.Sprintf("Оба знака принадлежат к элементу %s. Глубокое понимание и схожие подходы к жизни.", e1),
			Bonus:         15,
		}
	case complementaryElements[[2]entities.Element{e1, e2}]:
		return entities.ElementAnalysis{
			Compatibility: "Хорошая",
			Description:   fmt.Sprintf("Элементы %s и %s хорошо дополняют друг друга.", e1, e2),
			Bonus:         10,
		}
	case opposingElements[[2]entities.Element{e1, e2}]:
		return entities.ElementAnalysis{
			Compatibility: "Сложная",
			Description:   fmt.Sprintf("Элементы %s и %s могут конфликтовать, но различия могут быть источником роста.", e1, e2),
			Bonus:         -5,
		}
	default:
		return entities.ElementAnalysis{
			Compatibility: "Нейтральная",
			Description:   fmt.Sprintf("Элементы %s и %s нейтральны друг к другу.", e1, e2),
			Bonus:         0,
		}
	}
}

// harmoniousBodies is the fixed allowlist of ruling-body pairs that grant
// a bonus.
var harmoniousBodies = map[[2]entities.RulingBody]bool{
	{entities.BodySun, entities.BodyMoon}:      true,
	{entities.BodyMoon, entities.BodySun}:      true,
	{entities.BodyMercury, entities.BodyVenus}: true,
	{entities.BodyVenus, entities.BodyMercury}: true,
	{entities.BodyMars, entities.BodyJupiter}:  true,
	{entities.BodyJupiter, entities.BodyMars}:  true,
}

// analyzeRulingBodies classifies the ruling-body pair: allowlisted pairs
// are harmonious, everything else neutral.
func analyzeRulingBodies(a, b entities.Sign) entities.RulingBodyAnalysis {
	p1, p2 := a.RulingBody(), b.RulingBody()

	if harmoniousBodies[[2]entities.RulingBody{p1, p2}] {
		return entities.RulingBodyAnalysis{
			Influence:   "Гармоничное",
			Description: fmt.Sprintf("Планеты %s и %s создают гармоничное взаимодействие.", p1, p2),
			Bonus:       5,
		}
	}
	return entities.RulingBodyAnalysis{
		Influence:   "Нейтральное",
		Description: fmt.Sprintf("Планеты %s и %s взаимодействуют нейтрально.", p1, p2),
		Bonus:       0,
	}
}

// describeCompatibility picks the description band for a headline score.
func describeCompatibility(a, b entities.Sign, score int, relType entities.RelationshipType) string {
	switch {
	case score >= 80:
		return fmt.Sprintf("Отличная совместимость! %s и %s создают идеальную пару для категории «%s».", a, b, relType.Label())
	case score >= 60:
		return fmt.Sprintf("Хорошая совместимость. %s и %s могут успешно строить отношения при взаимном понимании.", a, b)
	case score >= 40:
		return fmt.Sprintf("Умеренная совместимость. %s и %s потребуют усилий для гармоничных отношений.", a, b)
	default:
		return fmt.Sprintf("Сложная совместимость. %s и %s могут столкнуться с трудностями, но различия могут стать источником роста.", a, b)
	}
}

// relationshipStrengths holds the static strengths list per relationship
// type. Static content: the lists do not depend on the signs.
var relationshipStrengths = map[entities.RelationshipType][]string{
	entities.RelationshipRomantic: {
		"Глубокое эмоциональное понимание",
		"Страстная связь",
		"Взаимное уважение и поддержка",
		"Общие жизненные ценности",
	},
	entities.RelationshipFriendship: {
		"Взаимное доверие",
		"Общие интересы и хобби",
		"Поддержка в трудные моменты",
		"Весёлое времяпрепровождение",
	},
	entities.RelationshipBusiness: {
		"Дополняющие навыки",
		"Эффективное разделение обязанностей",
		"Взаимное уважение к компетенциям",
		"Общие деловые цели",
	},
	entities.RelationshipFamily: {
		"Семейные традиции и ценности",
		"Взаимная поддержка",
		"Глубокое понимание семейной динамики",
		"Общие воспоминания и опыт",
	},
}

// relationshipChallenges holds the static challenges list per relationship
// type.
var relationshipChallenges = map[entities.RelationshipType][]string{
	entities.RelationshipRomantic: {
		"Различия в выражении эмоций",
		"Разные подходы к конфликтам",
		"Различные потребности в личном пространстве",
		"Разные темпы развития отношений",
	},
	entities.RelationshipFriendship: {
		"Различия в социальных предпочтениях",
		"Разные подходы к планированию времени",
		"Различные уровни активности",
		"Разные способы решения проблем",
	},
	entities.RelationshipBusiness: {
		"Различия в рабочих стилях",
		"Разные подходы к принятию решений",
		"Различные приоритеты в работе",
		"Разные способы коммуникации",
	},
	entities.RelationshipFamily: {
		"Различия в семейных традициях",
		"Разные подходы к воспитанию",
		"Различные взгляды на семейные роли",
		"Разные способы выражения заботы",
	},
}

// recommendationsForScore returns the recommendation list for a headline
// score tier.
func recommendationsForScore(score int) []string {
	switch {
	case score >= 80:
		return []string{
			"Продолжайте развивать существующую гармонию",
			"Ищите новые способы укрепления связи",
			"Помогайте друг другу в личностном росте",
		}
	case score >= 60:
		return []string{
			"Уделяйте время открытому общению",
			"Ищите компромиссы в спорных вопросах",
			"Цените различия как источник роста",
		}
	default:
		return []string{
			"Проявляйте терпение и понимание",
			"Ищите общие интересы и цели",
			"Рассмотрите возможность профессиональной помощи",
		}
	}
}

// clampScore clamps a score to [0, 100].
func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
