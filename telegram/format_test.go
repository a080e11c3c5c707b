package telegram

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"filmgram/tmdb"
)

func TestEscapeMarkdown(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain text passes through",
			input:    "Netflix",
			expected: "Netflix",
		},
		{
			name:     "parens and space",
			input:    "The Terminator (1984)",
			expected: `The\ Terminator\ \(1984\)`,
		},
		{
			name:     "hyphenated title",
			input:    "Spider-Man",
			expected: `Spider\-Man`,
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, EscapeMarkdown(tc.input))
		})
	}
}

func TestEscapeMarkdownCoversReservedSet(t *testing.T) {
	for _, r := range `-[]{}()*+!?.,\^$|#` {
		escaped := EscapeMarkdown(string(r))
		assert.Equal(t, `\`+string(r), escaped, "character %q", r)
	}
}

func TestComposeTitle(t *testing.T) {
	movie := tmdb.Media{Type: tmdb.MediaMovie, SearchResult: tmdb.SearchResult{
		Title:       "The Terminator",
		ReleaseDate: "1984-10-26",
	}}
	assert.Equal(t, "The Terminator (1984)", ComposeTitle(movie))

	undated := tmdb.Media{Type: tmdb.MediaTV, SearchResult: tmdb.SearchResult{Name: "Untitled Pilot"}}
	assert.Equal(t, "Untitled Pilot ()", ComposeTitle(undated))
}

func TestFormatInlineResultWithStreaming(t *testing.T) {
	movie := tmdb.Media{Type: tmdb.MediaMovie, SearchResult: tmdb.SearchResult{
		ID:          218,
		Title:       "The Terminator",
		ReleaseDate: "1984-10-26",
	}}

	result := FormatInlineResult(movie, []string{"Netflix"})

	assert.Equal(t, "movie-218", result.ID)
	assert.Equal(t, "The Terminator (1984)", result.Title)
	assert.True(t, strings.HasSuffix(result.Message, "Streaming on:\nNetflix\n"))
}

func TestFormatInlineResultWithoutStreaming(t *testing.T) {
	show := tmdb.Media{Type: tmdb.MediaTV, SearchResult: tmdb.SearchResult{
		ID:           1396,
		Name:         "Breaking Bad",
		FirstAirDate: "2008-01-20",
	}}

	result := FormatInlineResult(show, nil)

	assert.Equal(t, "tv-1396", result.ID)
	assert.NotContains(t, result.Message, "Streaming on:")
	assert.True(t, strings.HasSuffix(result.Message, "\n\n"))
}
