package entities

import "time"

// Limits on profile collections. The oldest entry is dropped when a cap is
// reached.
const (
	MaxFavoritePredictions  = 50
	MaxCompatibilityHistory = 100
)

// BirthDate is the user's birth date. Year may be zero when unknown.
type BirthDate struct {
	Day   int `json:"day"`
	Month int `json:"month"`
	Year  int `json:"year"`
}

// FavoritePrediction is one saved prediction text.
type FavoritePrediction struct {
	ID        string    `json:"id"`
	Category  Category  `json:"category"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// CompatibilityRecord is one saved compatibility check.
type CompatibilityRecord struct {
	ID               string           `json:"id"`
	Sign1            string           `json:"sign1"`
	Sign2            string           `json:"sign2"`
	RelationshipType RelationshipType `json:"relationship_type"`
	Score            int              `json:"score"`
	Description      string           `json:"description"`
	CreatedAt        time.Time        `json:"created_at"`
}

// Settings holds user preferences.
type Settings struct {
	Notifications bool   `json:"notifications"`
	NotifyAt      string `json:"notify_at"` // HH:MM, local time
	Detailed      bool   `json:"detailed"`
	AutoSave      bool   `json:"auto_save"`
	Language      string `json:"language"`
}

// DefaultSettings returns the settings of a fresh profile.
func DefaultSettings() Settings {
	return Settings{
		Notifications: true,
		NotifyAt:      "07:00",
		Detailed:      true,
		AutoSave:      true,
		Language:      "ru",
	}
}

// Profile is the persisted user profile. It is stored encrypted; the
// encryption itself lives in the profile store, not here.
type Profile struct {
	Name       string    `json:"name"`
	BirthDate  BirthDate `json:"birth_date"`
	BirthPlace string    `json:"birth_place"`

	Sign       string `json:"zodiac_sign"`
	Element    string `json:"element"`
	RulingBody string `json:"ruling_body"`

	FavoritePredictions  []FavoritePrediction  `json:"favorite_predictions"`
	CompatibilityHistory []CompatibilityRecord `json:"compatibility_history"`

	Settings Settings `json:"settings"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"last_updated"`
}

// NewProfile returns an empty profile with default settings.
func NewProfile(now time.Time) *Profile {
	return &Profile{
		Settings:  DefaultSettings(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// HasIdentity reports whether the profile carries a name or a resolved sign.
func (p *Profile) HasIdentity() bool {
	return p != nil && (p.Name != "" || p.Sign != "")
}

// AddFavorite appends a favorite prediction, dropping the oldest entry
// when the cap is reached.
func (p *Profile) AddFavorite(fav FavoritePrediction) {
	if len(p.FavoritePredictions) >= MaxFavoritePredictions {
		p.FavoritePredictions = p.FavoritePredictions[1:]
	}
	p.FavoritePredictions = append(p.FavoritePredictions, fav)
}

// AddCompatibilityRecord appends a history record, dropping the oldest
// entry when the cap is reached.
func (p *Profile) AddCompatibilityRecord(rec CompatibilityRecord) {
	if len(p.CompatibilityHistory) >= MaxCompatibilityHistory {
		p.CompatibilityHistory = p.CompatibilityHistory[1:]
	}
	p.CompatibilityHistory = append(p.CompatibilityHistory, rec)
}

// RecentFavorites returns up to limit favorites, newest last.
func (p *Profile) RecentFavorites(limit int) []FavoritePrediction {
	if limit <= 0 || limit > len(p.FavoritePredictions) {
		limit = len(p.FavoritePredictions)
	}
	return p.FavoritePredictions[len(p.FavoritePredictions)-limit:]
}

// RecentHistory returns up to limit history records, newest last.
func (p *Profile) RecentHistory(limit int) []CompatibilityRecord {
	if limit <= 0 || limit > len(p.CompatibilityHistory) {
		limit = len(p.CompatibilityHistory)
	}
	return p.CompatibilityHistory[len(p.CompatibilityHistory)-limit:]
}
