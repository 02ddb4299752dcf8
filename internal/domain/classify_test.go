package domain

import (
	"testing"
)

func TestClassify_JapaneseOriginAndAnimationGenre(t *testing.T) {
	// Two strong independent categories: must be accepted.
	rec := &AnimeRecord{
		Title:         "Frieren: Beyond Journey's End",
		OriginCountry: []string{"JP"},
		Genres:        []Genre{{ID: GenreAnimation, Name: "Animation"}},
	}

	v := Classify(rec)
	if !v.IsAnime() {
		t.Errorf("Classify() = %+v, want accepted", v)
	}
	if v.Categories < 2 {
		t.Errorf("Categories = %d, want >= 2", v.Categories)
	}
}

func TestClassify_SingleWeakKeywordRejected(t *testing.T) {
	// One ambiguous keyword hit with no corroborating origin/genre/studio
	// evidence must be rejected.
	rec := &AnimeRecord{
		Title:    "Lost in Tokyo",
		Overview: "A travel documentary.",
	}

	v := Classify(rec)
	if v.IsAnime() {
		t.Errorf("Classify() = %+v, want rejected", v)
	}
	if v.Categories != 1 {
		t.Errorf("Categories = %d, want 1", v.Categories)
	}
}

func TestClassify_Signals(t *testing.T) {
	tests := []struct {
		name   string
		record *AnimeRecord
		accept bool
	}{
		{
			name: "original language ja plus animation genre",
			record: &AnimeRecord{
				Title:            "Vinland Saga",
				OriginalLanguage: "ja",
				Genres:           []Genre{{ID: GenreAnimation}},
			},
			accept: true,
		},
		{
			name: "japanese script title plus known studio",
			record: &AnimeRecord{
				Title:         "Spy x Family",
				OriginalTitle: "スパイファミリー",
				Studios:       []string{"Wit Studio", "CloverWorks"},
			},
			accept: true,
		},
		{
			name: "strong keyword plus origin",
			record: &AnimeRecord{
				Title:         "Naruto",
				OriginCountry: []string{"JP"},
			},
			accept: true,
		},
		{
			name: "korean origin alone",
			record: &AnimeRecord{
				Title:         "Squid Game",
				OriginCountry: []string{"KR"},
			},
			accept: false,
		},
		{
			name: "korean animation with genre",
			record: &AnimeRecord{
				Title:         "Tower of God",
				OriginCountry: []string{"KR"},
				Genres:        []Genre{{ID: GenreAnimation}},
			},
			accept: true,
		},
		{
			name: "western animation",
			record: &AnimeRecord{
				Title:         "Family Guy",
				OriginCountry: []string{"US"},
				Genres:        []Genre{{ID: GenreAnimation}},
			},
			accept: false,
		},
		{
			name: "western live action with animation-adjacent genres",
			record: &AnimeRecord{
				Title:         "Stranger Things",
				OriginCountry: []string{"US"},
				Genres:        []Genre{{ID: genreSciFiFantasyTV}},
			},
			accept: false,
		},
		{
			name:   "empty record",
			record: &AnimeRecord{},
			accept: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Classify(tt.record)
			if v.IsAnime() != tt.accept {
				t.Errorf("Classify() = %+v, want accept=%v", v, tt.accept)
			}
		})
	}
}

func TestClassify_Deterministic(t *testing.T) {
	rec := &AnimeRecord{
		Title:         "One Piece",
		OriginalTitle: "ワンピース",
		Overview:      "A shounen pirate adventure manga adaptation.",
		OriginCountry: []string{"JP"},
		Genres:        []Genre{{ID: GenreAnimation}, {ID: genreActionAdventureTV}},
		Studios:       []string{"Toei Animation"},
	}

	first := Classify(rec)
	for i := 0; i < 10; i++ {
		if v := Classify(rec); v != first {
			t.Fatalf("Classify() not deterministic: %+v != %+v", v, first)
		}
	}
}

func TestClassify_ConfidenceClamped(t *testing.T) {
	// Every category firing at once must still clamp to 1.0.
	rec := &AnimeRecord{
		Title:         "Naruto",
		OriginalTitle: "ナルト",
		Overview:      "anime manga shounen ninja",
		OriginCountry: []string{"JP"},
		Genres:        []Genre{{ID: GenreAnimation}, {ID: genreAction}, {ID: genreAdventure}},
		Studios:       []string{"Studio Pierrot"},
	}

	v := Classify(rec)
	if v.Confidence > 1 {
		t.Errorf("Confidence = %v, want <= 1", v.Confidence)
	}
	if v.Categories != 5 {
		t.Errorf("Categories = %d, want 5", v.Categories)
	}
}

func TestClassify_NilRecord(t *testing.T) {
	v := Classify(nil)
	if v.IsAnime() {
		t.Errorf("Classify(nil) = %+v, want rejected", v)
	}
}

func TestContainsJapaneseScript(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"進撃の巨人", true},
		{"ヒロアカ", true},
		{"ぼっち・ざ・ろっく！", true},
		{"Attack on Titan", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := containsJapaneseScript(tt.input); got != tt.want {
				t.Errorf("containsJapaneseScript(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
