package entities

import "strings"

// Category is a content topic for predictions.
// The set is closed; parsing external input maps unknown values to ("", false).
type Category string

// Content categories.
const (
	CategoryGeneral Category = "general"
	CategoryLove    Category = "love"
	CategoryCareer  Category = "career"
	CategoryFinance Category = "finance"
	CategoryHealth  Category = "health"
	CategoryAdvice  Category = "advice"
)

// AllCategories returns all content categories, CategoryGeneral first.
func AllCategories() []Category {
	return []Category{
		CategoryGeneral,
		CategoryLove,
		CategoryCareer,
		CategoryFinance,
		CategoryHealth,
		CategoryAdvice,
	}
}

// categoryLabels maps categories to their Russian display labels.
var categoryLabels = map[Category]string{
	CategoryGeneral: "Общий прогноз",
	CategoryLove:    "Личная жизнь",
	CategoryCareer:  "Карьера",
	CategoryFinance: "Финансы",
	CategoryHealth:  "Здоровье",
	CategoryAdvice:  "Совет дня",
}

// Label returns the Russian display label for the category.
func (c Category) Label() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return string(c)
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	_, ok := categoryLabels[c]
	return ok
}

// ParseCategory resolves a category by its identifier (case-insensitive).
func ParseCategory(name string) (Category, bool) {
	c := Category(strings.ToLower(strings.TrimSpace(name)))
	if !c.Valid() {
		return "", false
	}
	return c, true
}

// RelationshipType selects the compatibility profile used by the scorer.
type RelationshipType string

// Relationship types. Romantic is the default.
const (
	RelationshipRomantic   RelationshipType = "romantic"
	RelationshipFriendship RelationshipType = "friendship"
	RelationshipBusiness   RelationshipType = "business"
	RelationshipFamily     RelationshipType = "family"
)

// relationshipLabels maps relationship types to their Russian display labels.
var relationshipLabels = map[RelationshipType]string{
	RelationshipRomantic:   "Романтические отношения",
	RelationshipFriendship: "Дружба",
	RelationshipBusiness:   "Деловые отношения",
	RelationshipFamily:     "Семейные отношения",
}

// AllRelationshipTypes returns all relationship types.
func AllRelationshipTypes() []RelationshipType {
	return []RelationshipType{
		RelationshipRomantic,
		RelationshipFriendship,
		RelationshipBusiness,
		RelationshipFamily,
	}
}

// Label returns the Russian display label for the relationship type.
func (r RelationshipType) Label() string {
	if label, ok := relationshipLabels[r]; ok {
		return label
	}
	return string(r)
}

// Valid reports whether r is one of the known relationship types.
func (r RelationshipType) Valid() bool {
	_, ok := relationshipLabels[r]
	return ok
}

// ParseRelationshipType resolves a relationship type by its identifier.
// Empty or unknown input falls back to RelationshipRomantic.
func ParseRelationshipType(name string) RelationshipType {
	r := RelationshipType(strings.ToLower(strings.TrimSpace(name)))
	if !r.Valid() {
		return RelationshipRomantic
	}
	return r
}
