// Mock TMDB-shaped upstream for local development. Serves embedded fixture
// pages for the endpoints the catalog service calls. Run it and point
// APP_PROVIDER_BASE_URL at http://localhost:8081.
package main

import (
	_ "embed"
	"log"
	"net/http"
	"strings"
	"time"
)

//go:embed tv_page.json
var tvPageData []byte

//go:embed movie_page.json
var moviePageData []byte

//go:embed tv_detail.json
var tvDetailData []byte

//go:embed movie_detail.json
var movieDetailData []byte

//go:embed genres.json
var genresData []byte

func serveJSON(data []byte) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Simulate network latency (50-200ms)
		time.Sleep(time.Duration(50+time.Now().UnixNano()%150) * time.Millisecond)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(data); err != nil {
			log.Printf("[mock-tmdb] write error: %v", err)
		}

		log.Printf("[mock-tmdb] %s %s - 200 OK", r.Method, r.URL.Path)
	}
}

func main() {
	mux := http.NewServeMux()

	mux.HandleFunc("/discover/tv", serveJSON(tvPageData))
	mux.HandleFunc("/search/tv", serveJSON(tvPageData))
	mux.HandleFunc("/discover/movie", serveJSON(moviePageData))
	mux.HandleFunc("/search/movie", serveJSON(moviePageData))
	mux.HandleFunc("/genre/tv/list", serveJSON(genresData))
	mux.HandleFunc("/genre/movie/list", serveJSON(genresData))

	mux.HandleFunc("/configuration", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if _, err := w.Write([]byte(`{"images":{}}`)); err != nil {
			log.Printf("[mock-tmdb] write error: %v", err)
		}
	})

	// Detail endpoints match by path prefix: /tv/{id}, /movie/{id} and their
	// videos/images/recommendations subresources.
	mux.HandleFunc("/tv/", func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, "/recommendations"):
			serveJSON(tvPageData)(w, r)
		case strings.HasSuffix(r.URL.Path, "/videos"):
			serveJSON([]byte(`{"results":[]}`))(w, r)
		case strings.HasSuffix(r.URL.Path, "/images"):
			serveJSON([]byte(`{"posters":[],"backdrops":[]}`))(w, r)
		default:
			serveJSON(tvDetailData)(w, r)
		}
	})
	mux.HandleFunc("/movie/", func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, "/recommendations"):
			serveJSON(moviePageData)(w, r)
		case strings.HasSuffix(r.URL.Path, "/videos"):
			serveJSON([]byte(`{"results":[]}`))(w, r)
		case strings.HasSuffix(r.URL.Path, "/images"):
			serveJSON([]byte(`{"posters":[],"backdrops":[]}`))(w, r)
		default:
			serveJSON(movieDetailData)(w, r)
		}
	})

	log.Println("mock TMDB upstream running on :8081")
	server := &http.Server{
		Addr:         ":8081",
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	log.Fatal(server.ListenAndServe())
}
