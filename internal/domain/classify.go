// Package domain contains the core business logic and entities.
package domain

import (
	"strings"
	"unicode"
)

// Upstream genre ids shared by the movie and TV endpoint families.
const (
	GenreAnimation = 16

	genreSciFiFantasyTV    = 10765
	genreActionAdventureTV = 10759
	genreSciFi             = 878
	genreFantasy           = 14
	genreAction            = 28
	genreAdventure         = 12
)

// Signal weights. Origin, script, and studio are strong independent signals;
// keywords and secondary genres only corroborate.
const (
	weightJapaneseOrigin = 0.35
	weightEastAsiaOrigin = 0.15
	weightAnimationGenre = 0.25
	weightSecondaryGenre = 0.05
	weightStrongKeyword  = 0.15
	weightWeakKeyword    = 0.05
	weightJapaneseScript = 0.30
	weightKnownStudio    = 0.30

	secondaryGenreCap = 0.10
	keywordCap        = 0.30

	// AcceptThreshold is the minimum confidence for a record to enter the
	// unified list. Acceptance additionally requires corroboration from at
	// least two independent signal categories.
	AcceptThreshold = 0.3
	minCategories   = 2
)

// strongKeywords are terms whose presence alone says "anime" with high
// confidence: the literal words plus famous franchise names.
var strongKeywords = []string{
	"anime", "manga",
	"naruto", "one piece", "dragon ball", "jujutsu kaisen", "attack on titan",
	"demon slayer", "gundam", "evangelion", "pokemon", "sailor moon",
	"ghibli", "fullmetal alchemist", "death note", "hunter x hunter",
}

// weakKeywords are genre vocabulary and setting terms that commonly co-occur
// with anime but also appear in unrelated content.
var weakKeywords = []string{
	"shounen", "shonen", "seinen", "shoujo", "shojo", "josei", "isekai",
	"mecha", "ninja", "samurai", "yokai", "kaiju", "sensei", "senpai",
	"tokyo", "kyoto", "otaku", "light novel", "magical girl",
}

// knownStudios are production-company substrings matched case-insensitively.
var knownStudios = []string{
	"toei", "madhouse", "bones", "mappa", "ufotable", "kyoto animation",
	"wit studio", "a-1 pictures", "pierrot", "sunrise", "trigger",
	"cloverworks", "production i.g", "shaft", "gainax", "studio ghibli",
	"j.c.staff", "david production", "white fox", "kinema citrus",
}

// eastAsiaCountries contribute a smaller origin signal than Japan.
var eastAsiaCountries = map[string]bool{
	"KR": true, "CN": true, "TW": true,
}

// Verdict is the classifier output for one record.
type Verdict struct {
	Confidence float64 // accumulated score clamped to [0, 1]
	Categories int     // number of independent signal categories that fired
}

// IsAnime reports whether the verdict clears the acceptance policy.
func (v Verdict) IsAnime() bool {
	return v.Confidence >= AcceptThreshold && v.Categories >= minCategories
}

// Classify computes the anime confidence for a record.
//
// It is a weighted-signal scorer, not a single rule: providers whose metadata
// is incomplete on any one axis still classify correctly through the others.
//
// Signal categories:
//   - origin: Japanese origin country or "ja" original language (+0.35),
//     other East-Asian origins (+0.15)
//   - genre: the shared Animation genre id (+0.25), co-occurring secondary
//     genres (+0.05 each, capped at +0.10)
//   - keywords: concatenated title+overview text scanned case-insensitively;
//     strong hits +0.15, weak hits +0.05, category capped at +0.30
//   - script: Japanese script characters in the original title (+0.30)
//   - studio: known anime studio substring in a production company (+0.30)
//
// Acceptance requires confidence >= 0.3 AND at least two categories, so a
// record hitting one ambiguous keyword with no corroborating origin/genre/
// studio evidence is rejected. The function is pure and deterministic.
func Classify(a *AnimeRecord) Verdict {
	if a == nil {
		return Verdict{}
	}

	var v Verdict

	signals := []float64{
		originSignal(a),
		genreSignal(a),
		keywordSignal(a),
		scriptSignal(a),
		studioSignal(a),
	}

	for _, s := range signals {
		if s > 0 {
			v.Confidence += s
			v.Categories++
		}
	}

	if v.Confidence > 1 {
		v.Confidence = 1
	}

	return v
}

// originSignal scores the origin country / original language axis.
func originSignal(a *AnimeRecord) float64 {
	if a.OriginalLanguage == "ja" {
		return weightJapaneseOrigin
	}

	score := 0.0
	for _, c := range a.OriginCountry {
		if c == "JP" {
			return weightJapaneseOrigin
		}
		if eastAsiaCountries[c] && score < weightEastAsiaOrigin {
			score = weightEastAsiaOrigin
		}
	}

	return score
}

// genreSignal scores the genre-id axis.
func genreSignal(a *AnimeRecord) float64 {
	score := 0.0
	if a.HasGenre(GenreAnimation) {
		score = weightAnimationGenre
	}

	secondary := 0.0
	for _, id := range []int{genreSciFiFantasyTV, genreActionAdventureTV, genreSciFi, genreFantasy, genreAction, genreAdventure} {
		if a.HasGenre(id) {
			secondary += weightSecondaryGenre
		}
	}
	if secondary > secondaryGenreCap {
		secondary = secondaryGenreCap
	}

	// Secondary genres never fire the category on their own; they only
	// strengthen an Animation match.
	if score == 0 {
		return 0
	}

	return score + secondary
}

// keywordSignal scans title+overview text against the keyword vocabulary.
// Each distinct hit counts once regardless of repetition.
func keywordSignal(a *AnimeRecord) float64 {
	text := strings.ToLower(a.Title + " " + a.OriginalTitle + " " + a.Overview)

	score := 0.0
	for _, kw := range strongKeywords {
		if strings.Contains(text, kw) {
			score += weightStrongKeyword
		}
	}
	for _, kw := range weakKeywords {
		if strings.Contains(text, kw) {
			score += weightWeakKeyword
		}
	}

	if score > keywordCap {
		score = keywordCap
	}

	return score
}

// scriptSignal fires when the native-language title contains Japanese script.
func scriptSignal(a *AnimeRecord) float64 {
	if containsJapaneseScript(a.OriginalTitle) {
		return weightJapaneseScript
	}
	return 0
}

// studioSignal fires when any production company matches a known anime studio.
func studioSignal(a *AnimeRecord) float64 {
	for _, s := range a.Studios {
		lower := strings.ToLower(s)
		for _, studio := range knownStudios {
			if strings.Contains(lower, studio) {
				return weightKnownStudio
			}
		}
	}
	return 0
}

// containsJapaneseScript reports whether s has any hiragana, katakana, or
// CJK ideograph runes.
func containsJapaneseScript(s string) bool {
	for _, r := range s {
		if unicode.In(r, unicode.Hiragana, unicode.Katakana, unicode.Han) {
			return true
		}
	}
	return false
}
