package main

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"filmgram/imdb"
	"filmgram/tmdb"

	"github.com/gorilla/mux"
)

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		http.Error(w, "Query parameter 'q' is required", http.StatusBadRequest)
		return
	}

	mediaType := tmdb.MediaType(r.URL.Query().Get("type"))
	if mediaType == "" {
		mediaType = tmdb.MediaMovie
	}
	if !mediaType.Valid() {
		http.Error(w, "Query parameter 'type' must be 'movie' or 'tv'", http.StatusBadRequest)
		return
	}

	page := 1
	if pageParam := r.URL.Query().Get("page"); pageParam != "" {
		if n, err := strconv.Atoi(pageParam); err == nil && n > 0 {
			page = n
		}
	}

	resp, err := s.tmdb.Search(r.Context(), mediaType, query, page)
	if err != nil {
		writeUpstreamError(w, err)
		return
	}

	writeJSON(w, resp)
}

func (s *Server) handleMovieDetails(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	details, err := s.tmdb.MovieDetails(r.Context(), id)
	if err != nil {
		writeUpstreamError(w, err)
		return
	}

	writeJSON(w, details)
}

func (s *Server) handleTVDetails(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	details, err := s.tmdb.TVDetails(r.Context(), id)
	if err != nil {
		writeUpstreamError(w, err)
		return
	}

	writeJSON(w, details)
}

func (s *Server) handleWatchProviders(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	mediaType := tmdb.MediaType(vars["type"])
	id, _ := strconv.Atoi(vars["id"])

	result, err := s.tmdb.WatchProviders(r.Context(), mediaType, id)
	if err != nil {
		writeUpstreamError(w, err)
		return
	}

	writeJSON(w, map[string]any{
		"id":        result.ID,
		"streaming": result.Streaming(s.tmdb.Region()),
	})
}

func (s *Server) handleProviderCatalog(w http.ResponseWriter, r *http.Request) {
	mediaType := tmdb.MediaType(mux.Vars(r)["type"])

	catalog, err := s.providers.Catalog(r.Context(), mediaType)
	if err != nil {
		writeUpstreamError(w, err)
		return
	}

	writeJSON(w, catalog)
}

func (s *Server) handleIMDBRating(w http.ResponseWriter, r *http.Request) {
	imdbID := mux.Vars(r)["imdb_id"]
	if imdbID == "" {
		writeJSON(w, imdb.Rating{Error: "IMDb ID is required"})
		return
	}

	writeJSON(w, imdb.Fetch(imdbID))
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

// writeUpstreamError maps a TMDB status error onto the response; transport
// and decode failures surface as a plain 502.
func writeUpstreamError(w http.ResponseWriter, err error) {
	var statusErr *tmdb.StatusError
	if errors.As(err, &statusErr) {
		log.Printf("[TMDB] Upstream status %d", statusErr.Code)
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	log.Printf("[TMDB] %v", err)
	http.Error(w, "Failed to fetch data", http.StatusBadGateway)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Printf("%s %s %s", r.RemoteAddr, r.Method, r.URL.Path)
		next.ServeHTTP(w, r)
	})
}
