package tmdb

// MediaType selects between the movie and TV endpoint families and decides
// which result fields carry the title and date.
type MediaType string

const (
	MediaMovie MediaType = "movie"
	MediaTV    MediaType = "tv"
)

func (m MediaType) Valid() bool {
	return m == MediaMovie || m == MediaTV
}

// Media pairs a search result with its media type. The type is decided once
// at the query boundary instead of being re-inferred from field presence at
// every consumption site.
type Media struct {
	Type MediaType
	SearchResult
}

// DisplayTitle returns the movie title or TV show name for the variant.
func (m Media) DisplayTitle() string {
	if m.Type == MediaTV {
		return m.Name
	}
	return m.Title
}

// Date returns the release date (movie) or first air date (TV). May be
// empty: not all titles have confirmed release dates.
func (m Media) Date() string {
	if m.Type == MediaTV {
		return m.FirstAirDate
	}
	return m.ReleaseDate
}

// Year extracts the calendar year from the date string, "" when the date is
// absent.
func (m Media) Year() string {
	date := m.Date()
	if len(date) < 4 {
		return ""
	}
	return date[:4]
}
