package entities

// ElementAnalysis describes how the elements of two signs interact.
type ElementAnalysis struct {
	// Compatibility is the Russian tier label (Отличная, Хорошая,
	// Сложная, Нейтральная).
	Compatibility string `json:"compatibility"`
	Description   string `json:"description"`
	Bonus         int    `json:"bonus"`
}

// RulingBodyAnalysis describes how the ruling bodies of two signs interact.
type RulingBodyAnalysis struct {
	// Influence is the Russian tier label (Гармоничное, Нейтральное).
	Influence   string `json:"influence"`
	Description string `json:"description"`
	Bonus       int    `json:"bonus"`
}

// CompatibilityResult is the full outcome of scoring one sign pair.
//
// Score and WeightedScore are deliberately computed differently and both
// preserved: Score is base + relationship adjustment + element bonus
// (clamped), while WeightedScore is the 40/25/20/15 blend of the four
// sub-scores. The headline shown to users is Score.
type CompatibilityResult struct {
	Score         int `json:"score"`
	WeightedScore int `json:"weighted_score"`

	LoveScore         int `json:"love_score"`
	FriendshipScore   int `json:"friendship_score"`
	BusinessScore     int `json:"business_score"`
	IntellectualScore int `json:"intellectual_score"`

	Description     string   `json:"description"`
	Strengths       []string `json:"strengths"`
	Challenges      []string `json:"challenges"`
	Recommendations []string `json:"recommendations"`

	ElementAnalysis    ElementAnalysis    `json:"element_analysis"`
	RulingBodyAnalysis RulingBodyAnalysis `json:"ruling_body_analysis"`

	RelationshipType RelationshipType `json:"relationship_type"`
}
