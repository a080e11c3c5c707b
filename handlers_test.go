package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"filmgram/config"
	"filmgram/tmdb"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *Server {
	t.Helper()
	upstream := httptest.NewServer(handler)
	t.Cleanup(upstream.Close)

	client := tmdb.NewClient("test-token", tmdb.WithBaseURL(upstream.URL))
	server := &Server{
		config:    &config.Config{Port: "8080"},
		tmdb:      client,
		providers: tmdb.NewProviderCache(client),
		router:    mux.NewRouter(),
	}
	server.setupRoutes()
	return server
}

func TestHandleSearchRequiresQuery(t *testing.T) {
	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("upstream should not be called")
	})

	rec := httptest.NewRecorder()
	server.router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/search", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleSearchRejectsUnknownType(t *testing.T) {
	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("upstream should not be called")
	})

	rec := httptest.NewRecorder()
	server.router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/search?q=terminator&type=anime", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleSearchProxiesResults(t *testing.T) {
	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search/tv", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		fmt.Fprint(w, `{"page":2,"total_pages":3,"results":[{"id":1396,"name":"Breaking Bad"}]}`)
	})

	rec := httptest.NewRecorder()
	server.router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/search?q=breaking&type=tv&page=2", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp tmdb.SearchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "Breaking Bad", resp.Results[0].Name)
}

func TestHandleWatchProvidersSurfacesStreamingOnly(t *testing.T) {
	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/movie/218/watch/providers", r.URL.Path)
		fmt.Fprint(w, `{"id":218,"results":{"US":{
			"flatrate":[{"provider_id":8,"provider_name":"Netflix"}],
			"rent":[{"provider_id":2,"provider_name":"Apple TV"}]}}}`)
	})

	rec := httptest.NewRecorder()
	server.router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/movie/218/providers", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		ID        int             `json:"id"`
		Streaming []tmdb.Provider `json:"streaming"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Streaming, 1)
	assert.Equal(t, "Netflix", resp.Streaming[0].ProviderName)
}

func TestUpstreamErrorBecomesBadGateway(t *testing.T) {
	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	rec := httptest.NewRecorder()
	server.router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/movie/999999", nil))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestProviderCatalogIsCached(t *testing.T) {
	calls := 0
	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		fmt.Fprint(w, `{"results":[{"provider_id":8,"provider_name":"Netflix"}]}`)
	})

	for range 3 {
		rec := httptest.NewRecorder()
		server.router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/providers/movie", nil))
		require.Equal(t, http.StatusOK, rec.Code)
	}

	assert.Equal(t, 1, calls)
}
