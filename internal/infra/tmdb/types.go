package tmdb

import (
	"anime-catalog-service/internal/domain"
)

// tvPage is the paged envelope returned by the TV discover/search endpoints.
type tvPage struct {
	Page         int        `json:"page"`
	Results      []tvResult `json:"results"`
	TotalPages   int        `json:"total_pages"`
	TotalResults int        `json:"total_results"`
}

// moviePage is the paged envelope returned by the movie discover/search endpoints.
type moviePage struct {
	Page         int           `json:"page"`
	Results      []movieResult `json:"results"`
	TotalPages   int           `json:"total_pages"`
	TotalResults int           `json:"total_results"`
}

// tvResult is a single series record in list responses.
type tvResult struct {
	ID               int      `json:"id"`
	Name             string   `json:"name"`
	OriginalName     string   `json:"original_name"`
	Overview         string   `json:"overview"`
	PosterPath       string   `json:"poster_path"`
	BackdropPath     string   `json:"backdrop_path"`
	VoteAverage      float64  `json:"vote_average"`
	VoteCount        int      `json:"vote_count"`
	Popularity       float64  `json:"popularity"`
	FirstAirDate     string   `json:"first_air_date"`
	GenreIDs         []int    `json:"genre_ids"`
	OriginCountry    []string `json:"origin_country"`
	OriginalLanguage string   `json:"original_language"`
}

// movieResult is a single movie record in list responses.
type movieResult struct {
	ID               int     `json:"id"`
	Title            string  `json:"title"`
	OriginalTitle    string  `json:"original_title"`
	Overview         string  `json:"overview"`
	PosterPath       string  `json:"poster_path"`
	BackdropPath     string  `json:"backdrop_path"`
	VoteAverage      float64 `json:"vote_average"`
	VoteCount        int     `json:"vote_count"`
	Popularity       float64 `json:"popularity"`
	ReleaseDate      string  `json:"release_date"`
	GenreIDs         []int   `json:"genre_ids"`
	OriginalLanguage string  `json:"original_language"`
}

// company is a production company in detail responses.
type company struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	OriginCountry string `json:"origin_country"`
}

// tvDetail is the full series record returned by the TV detail endpoint.
type tvDetail struct {
	tvResult
	Genres              []domain.Genre `json:"genres"`
	NumberOfEpisodes    int            `json:"number_of_episodes"`
	Status              string         `json:"status"`
	ProductionCompanies []company      `json:"production_companies"`
}

// movieDetail is the full movie record returned by the movie detail endpoint.
type movieDetail struct {
	movieResult
	Genres              []domain.Genre `json:"genres"`
	Status              string         `json:"status"`
	ProductionCompanies []company      `json:"production_companies"`
	ProductionCountries []struct {
		ISO31661 string `json:"iso_3166_1"`
	} `json:"production_countries"`
}

// genreList is the envelope of the genre vocabulary endpoints.
type genreList struct {
	Genres []domain.Genre `json:"genres"`
}

// videoList is the envelope of the videos endpoint.
type videoList struct {
	Results []videoResult `json:"results"`
}

type videoResult struct {
	ID       string `json:"id"`
	Key      string `json:"key"`
	Name     string `json:"name"`
	Site     string `json:"site"`
	Type     string `json:"type"`
	Official bool   `json:"official"`
}

// imageList is the envelope of the images endpoint.
type imageList struct {
	Posters   []imageResult `json:"posters"`
	Backdrops []imageResult `json:"backdrops"`
}

type imageResult struct {
	FilePath    string  `json:"file_path"`
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	VoteAverage float64 `json:"vote_average"`
}

// personDetail is the person endpoint payload.
type personDetail struct {
	ID                 int     `json:"id"`
	Name               string  `json:"name"`
	Biography          string  `json:"biography"`
	ProfilePath        string  `json:"profile_path"`
	KnownForDepartment string  `json:"known_for_department"`
	Birthday           string  `json:"birthday"`
	PlaceOfBirth       string  `json:"place_of_birth"`
	Popularity         float64 `json:"popularity"`
}

// combinedCredits is the person combined-credits payload. Cast entries carry
// a media_type discriminator and the union of movie and TV fields.
type combinedCredits struct {
	Cast []creditEntry `json:"cast"`
}

type creditEntry struct {
	ID               int      `json:"id"`
	MediaType        string   `json:"media_type"` // "movie" or "tv"
	Title            string   `json:"title"`
	Name             string   `json:"name"`
	OriginalTitle    string   `json:"original_title"`
	OriginalName     string   `json:"original_name"`
	Overview         string   `json:"overview"`
	PosterPath       string   `json:"poster_path"`
	BackdropPath     string   `json:"backdrop_path"`
	VoteAverage      float64  `json:"vote_average"`
	VoteCount        int      `json:"vote_count"`
	Popularity       float64  `json:"popularity"`
	ReleaseDate      string   `json:"release_date"`
	FirstAirDate     string   `json:"first_air_date"`
	GenreIDs         []int    `json:"genre_ids"`
	OriginCountry    []string `json:"origin_country"`
	OriginalLanguage string   `json:"original_language"`
}
