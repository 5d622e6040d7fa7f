// Package entities contains core domain data structures.
package entities

import "strings"

// Element represents one of the four classical elements a sign belongs to.
type Element string

// The four elements plus the sentinel for unresolvable input.
const (
	ElementFire    Element = "Огонь"
	ElementEarth   Element = "Земля"
	ElementAir     Element = "Воздух"
	ElementWater   Element = "Вода"
	ElementUnknown Element = "Неизвестно"
)

// RulingBody represents the astrological body associated with a sign.
type RulingBody string

// Ruling bodies. Mercury and Venus each rule two signs.
const (
	BodySun     RulingBody = "Солнце"
	BodyMoon    RulingBody = "Луна"
	BodyMercury RulingBody = "Меркурий"
	BodyVenus   RulingBody = "Венера"
	BodyMars    RulingBody = "Марс"
	BodyJupiter RulingBody = "Юпитер"
	BodySaturn  RulingBody = "Сатурн"
	BodyUranus  RulingBody = "Уран"
	BodyNeptune RulingBody = "Нептун"
	BodyPluto   RulingBody = "Плутон"
	BodyUnknown RulingBody = "Неизвестно"
)

// Sign is one of the 12 zodiac signs. The set is closed: values outside it
// exist only at system boundaries, where parsing maps them to SignUnknown.
type Sign int

// Signs in canonical order. The iota order matters: daily assignment
// iterates signs in this order, and changing it changes which sign wins a
// contested text.
const (
	SignUnknown Sign = iota
	Aries
	Taurus
	Gemini
	Cancer
	Leo
	Virgo
	Libra
	Scorpio
	Sagittarius
	Capricorn
	Aquarius
	Pisces
)

// signInfo holds the static attributes of one sign.
type signInfo struct {
	name    string
	symbol  string
	element Element
	body    RulingBody
}

// signTable is indexed by Sign-1 (SignUnknown has no entry).
var signTable = [...]signInfo{
	{"Овен", "♈", ElementFire, BodyMars},
	{"Телец", "♉", ElementEarth, BodyVenus},
	{"Близнецы", "♊", ElementAir, BodyMercury},
	{"Рак", "♋", ElementWater, BodyMoon},
	{"Лев", "♌", ElementFire, BodySun},
	{"Дева", "♍", ElementEarth, BodyMercury},
	{"Весы", "♎", ElementAir, BodyVenus},
	{"Скорпион", "♏", ElementWater, BodyPluto},
	{"Стрелец", "♐", ElementFire, BodyJupiter},
	{"Козерог", "♑", ElementEarth, BodySaturn},
	{"Водолей", "♒", ElementAir, BodyUranus},
	{"Рыбы", "♓", ElementWater, BodyNeptune},
}

// AllSigns returns the 12 signs in canonical order.
func AllSigns() []Sign {
	signs := make([]Sign, len(signTable))
	for i := range signTable {
		signs[i] = Sign(i + 1)
	}
	return signs
}

// Valid reports whether s is one of the 12 real signs.
func (s Sign) Valid() bool {
	return s >= Aries && s <= Pisces
}

// String returns the canonical Russian name of the sign.
func (s Sign) String() string {
	if !s.Valid() {
		return "Неизвестно"
	}
	return signTable[s-1].name
}

// Symbol returns the unicode symbol of the sign.
func (s Sign) Symbol() string {
	if !s.Valid() {
		return "🔮"
	}
	return signTable[s-1].symbol
}

// Element returns the element of the sign, ElementUnknown for invalid input.
func (s Sign) Element() Element {
	if !s.Valid() {
		return ElementUnknown
	}
	return signTable[s-1].element
}

// RulingBody returns the ruling body of the sign, BodyUnknown for invalid input.
func (s Sign) RulingBody() RulingBody {
	if !s.Valid() {
		return BodyUnknown
	}
	return signTable[s-1].body
}

// NormalizeSignName converts a sign name to lowercase for case-insensitive matching.
func NormalizeSignName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// ParseSign resolves a sign by its Russian name (case-insensitive).
// Unknown names return (SignUnknown, false) rather than an error: the
// content-serving path treats them as the explicit fallback case.
func ParseSign(name string) (Sign, bool) {
	normalized := NormalizeSignName(name)
	for i, info := range signTable {
		if NormalizeSignName(info.name) == normalized {
			return Sign(i + 1), true
		}
	}
	return SignUnknown, false
}

// signDateRange holds the birth-date window of one sign. A range may wrap
// the year boundary (Capricorn).
type signDateRange struct {
	sign                               Sign
	fromMonth, fromDay, toMonth, toDay int
}

var signDateRanges = [...]signDateRange{
	{Aries, 3, 21, 4, 19},
	{Taurus, 4, 20, 5, 20},
	{Gemini, 5, 21, 6, 20},
	{Cancer, 6, 21, 7, 22},
	{Leo, 7, 23, 8, 22},
	{Virgo, 8, 23, 9, 22},
	{Libra, 9, 23, 10, 22},
	{Scorpio, 10, 23, 11, 21},
	{Sagittarius, 11, 22, 12, 21},
	{Capricorn, 12, 22, 1, 19},
	{Aquarius, 1, 20, 2, 18},
	{Pisces, 2, 19, 3, 20},
}

// SignForBirthDate resolves the zodiac sign for a birth day and month.
// Out-of-range input returns (SignUnknown, false).
func SignForBirthDate(day, month int) (Sign, bool) {
	if day < 1 || day > 31 || month < 1 || month > 12 {
		return SignUnknown, false
	}
	// Every range spans exactly two adjacent months, so the same two-clause
	// check also covers the Capricorn year-boundary wrap.
	for _, r := range signDateRanges {
		if (month == r.fromMonth && day >= r.fromDay) || (month == r.toMonth && day <= r.toDay) {
			return r.sign, true
		}
	}
	return SignUnknown, false
}
