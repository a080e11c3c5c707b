package tmdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMediaYear(t *testing.T) {
	testCases := []struct {
		name     string
		media    Media
		expected string
	}{
		{
			name:     "movie release date",
			media:    Media{Type: MediaMovie, SearchResult: SearchResult{ReleaseDate: "1984-10-26"}},
			expected: "1984",
		},
		{
			name:     "tv first air date",
			media:    Media{Type: MediaTV, SearchResult: SearchResult{FirstAirDate: "2008-01-20"}},
			expected: "2008",
		},
		{
			name:     "empty date",
			media:    Media{Type: MediaMovie, SearchResult: SearchResult{ReleaseDate: ""}},
			expected: "",
		},
		{
			name:     "movie ignores first air date",
			media:    Media{Type: MediaMovie, SearchResult: SearchResult{FirstAirDate: "2008-01-20"}},
			expected: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.media.Year())
		})
	}
}

func TestMediaDisplayTitle(t *testing.T) {
	movie := Media{Type: MediaMovie, SearchResult: SearchResult{Title: "The Terminator", Name: "ignored"}}
	show := Media{Type: MediaTV, SearchResult: SearchResult{Name: "Breaking Bad"}}

	assert.Equal(t, "The Terminator", movie.DisplayTitle())
	assert.Equal(t, "Breaking Bad", show.DisplayTitle())
}

func TestMediaTypeValid(t *testing.T) {
	assert.True(t, MediaMovie.Valid())
	assert.True(t, MediaTV.Valid())
	assert.False(t, MediaType("anime").Valid())
	assert.False(t, MediaType("").Valid())
}
