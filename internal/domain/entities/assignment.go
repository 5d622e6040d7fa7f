package entities

import "time"

// DayKeyLayout is the time format of a day key.
const DayKeyLayout = "2006-01-02"

// DayKey returns the ISO calendar date string used as the sole entropy
// source for deterministic daily generation. The key is taken in the
// process-local timezone: content rolls over at the user's local midnight,
// matching the day boundary the user experiences.
func DayKey(t time.Time) string {
	return t.Format(DayKeyLayout)
}

// DailyAssignment maps every sign to its fixed prediction text for one
// calendar day.
type DailyAssignment struct {
	// Date is the day key the assignment applies to.
	Date string `json:"date"`
	// Predictions holds one text per sign once fully generated.
	Predictions map[Sign]string `json:"predictions"`
}

// NewDailyAssignment returns an empty assignment for the given day key.
func NewDailyAssignment(date string) *DailyAssignment {
	return &DailyAssignment{
		Date:        date,
		Predictions: make(map[Sign]string, len(signTable)),
	}
}

// Complete reports whether every sign has an assigned text.
func (a *DailyAssignment) Complete() bool {
	if a == nil {
		return false
	}
	for _, sign := range AllSigns() {
		if _, ok := a.Predictions[sign]; !ok {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the assignment.
func (a *DailyAssignment) Clone() *DailyAssignment {
	if a == nil {
		return nil
	}
	clone := NewDailyAssignment(a.Date)
	for sign, text := range a.Predictions {
		clone.Predictions[sign] = text
	}
	return clone
}

// DailyPrediction bundles all category texts for one sign on one day.
type DailyPrediction struct {
	Sign  Sign
	Date  string
	Texts map[Category]string
}
