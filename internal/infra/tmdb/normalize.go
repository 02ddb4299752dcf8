package tmdb

import (
	"strings"
	"unicode/utf8"

	"anime-catalog-service/internal/domain"
)

// minTitleRunes guards against implausibly short localized titles; anything
// shorter falls back to the original-language title.
const minTitleRunes = 3

// genreNames maps the stable upstream genre ids to display names, so list
// responses (which only carry ids) still yield {id, name} pairs.
var genreNames = map[int]string{
	16:    "Animation",
	12:    "Adventure",
	14:    "Fantasy",
	18:    "Drama",
	28:    "Action",
	35:    "Comedy",
	80:    "Crime",
	9648:  "Mystery",
	10749: "Romance",
	27:    "Horror",
	878:   "Science Fiction",
	10751: "Family",
	10759: "Action & Adventure",
	10765: "Sci-Fi & Fantasy",
}

// resolveTitle applies the title language policy: prefer the localized title
// returned by the query that requested it, falling back to the original
// title when the localized one is empty or implausibly short. The result is
// never empty when any title variant exists upstream.
func resolveTitle(localized, original string) string {
	localized = strings.TrimSpace(localized)
	if utf8.RuneCountInString(localized) >= minTitleRunes {
		return localized
	}
	if original = strings.TrimSpace(original); original != "" {
		return original
	}
	return localized
}

// resolveOverview substitutes the explicit placeholder for absent synopsis
// text. Only user-facing text fields get placeholders; numeric fields pass
// through as absent.
func resolveOverview(overview string) string {
	if strings.TrimSpace(overview) == "" {
		return domain.OverviewPlaceholder
	}
	return overview
}

// genresFromIDs expands genre ids from list responses into {id, name} pairs.
func genresFromIDs(ids []int) []domain.Genre {
	if len(ids) == 0 {
		return nil
	}
	genres := make([]domain.Genre, 0, len(ids))
	for _, id := range ids {
		genres = append(genres, domain.Genre{ID: id, Name: genreNames[id]})
	}
	return genres
}

// toDomain converts a series list record into the unified record shape.
func (r *tvResult) toDomain() *domain.AnimeRecord {
	return &domain.AnimeRecord{
		ID:               r.ID,
		Title:            resolveTitle(r.Name, r.OriginalName),
		OriginalTitle:    r.OriginalName,
		Overview:         resolveOverview(r.Overview),
		PosterPath:       r.PosterPath,
		BackdropPath:     r.BackdropPath,
		VoteAverage:      r.VoteAverage,
		VoteCount:        r.VoteCount,
		Popularity:       r.Popularity,
		FirstAirDate:     r.FirstAirDate,
		Genres:           genresFromIDs(r.GenreIDs),
		OriginCountry:    r.OriginCountry,
		OriginalLanguage: r.OriginalLanguage,
		ContentType:      domain.ContentTypeSeries,
	}
}

// toDomain converts a movie list record into the unified record shape.
// Movie list records carry no origin_country; the original language remains
// the only origin signal until a detail lookup.
func (r *movieResult) toDomain() *domain.AnimeRecord {
	return &domain.AnimeRecord{
		ID:               r.ID,
		Title:            resolveTitle(r.Title, r.OriginalTitle),
		OriginalTitle:    r.OriginalTitle,
		Overview:         resolveOverview(r.Overview),
		PosterPath:       r.PosterPath,
		BackdropPath:     r.BackdropPath,
		VoteAverage:      r.VoteAverage,
		VoteCount:        r.VoteCount,
		Popularity:       r.Popularity,
		ReleaseDate:      r.ReleaseDate,
		Genres:           genresFromIDs(r.GenreIDs),
		OriginalLanguage: r.OriginalLanguage,
		ContentType:      domain.ContentTypeMovie,
	}
}

func companyNames(companies []company) []string {
	if len(companies) == 0 {
		return nil
	}
	names := make([]string, 0, len(companies))
	for _, c := range companies {
		names = append(names, c.Name)
	}
	return names
}

// toDomain converts a full series detail record.
func (d *tvDetail) toDomain() *domain.AnimeRecord {
	rec := d.tvResult.toDomain()
	rec.Genres = d.Genres
	rec.EpisodeCount = d.NumberOfEpisodes
	rec.Status = d.Status
	rec.Studios = companyNames(d.ProductionCompanies)
	return rec
}

// toDomain converts a full movie detail record.
func (d *movieDetail) toDomain() *domain.AnimeRecord {
	rec := d.movieResult.toDomain()
	rec.Genres = d.Genres
	rec.Status = d.Status
	rec.Studios = companyNames(d.ProductionCompanies)
	for _, c := range d.ProductionCountries {
		rec.OriginCountry = append(rec.OriginCountry, c.ISO31661)
	}
	return rec
}

func (v *videoResult) toDomain() domain.Video {
	return domain.Video{
		ID:       v.ID,
		Key:      v.Key,
		Name:     v.Name,
		Site:     v.Site,
		Type:     v.Type,
		Official: v.Official,
	}
}

func (i *imageResult) toDomain() domain.Image {
	return domain.Image{
		FilePath:    i.FilePath,
		Width:       i.Width,
		Height:      i.Height,
		VoteAverage: i.VoteAverage,
	}
}

// toDomain converts a combined-credits entry using its media_type
// discriminator. Unknown media types return nil and are skipped.
func (e *creditEntry) toDomain() *domain.AnimeRecord {
	switch e.MediaType {
	case "tv":
		r := tvResult{
			ID:               e.ID,
			Name:             e.Name,
			OriginalName:     e.OriginalName,
			Overview:         e.Overview,
			PosterPath:       e.PosterPath,
			BackdropPath:     e.BackdropPath,
			VoteAverage:      e.VoteAverage,
			VoteCount:        e.VoteCount,
			Popularity:       e.Popularity,
			FirstAirDate:     e.FirstAirDate,
			GenreIDs:         e.GenreIDs,
			OriginCountry:    e.OriginCountry,
			OriginalLanguage: e.OriginalLanguage,
		}
		return r.toDomain()
	case "movie":
		r := movieResult{
			ID:               e.ID,
			Title:            e.Title,
			OriginalTitle:    e.OriginalTitle,
			Overview:         e.Overview,
			PosterPath:       e.PosterPath,
			BackdropPath:     e.BackdropPath,
			VoteAverage:      e.VoteAverage,
			VoteCount:        e.VoteCount,
			Popularity:       e.Popularity,
			ReleaseDate:      e.ReleaseDate,
			GenreIDs:         e.GenreIDs,
			OriginalLanguage: e.OriginalLanguage,
		}
		return r.toDomain()
	default:
		return nil
	}
}
