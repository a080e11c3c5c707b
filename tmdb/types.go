package tmdb

type SearchResponse struct {
	Page         int            `json:"page"`
	TotalPages   int            `json:"total_pages"`
	TotalResults int            `json:"total_results"`
	Results      []SearchResult `json:"results"`
}

type SearchResult struct {
	ID           int     `json:"id"`
	Title        string  `json:"title,omitempty"`
	Name         string  `json:"name,omitempty"`
	Overview     string  `json:"overview"`
	Popularity   float64 `json:"popularity"`
	VoteAverage  float64 `json:"vote_average"`
	VoteCount    int     `json:"vote_count"`
	PosterPath   string  `json:"poster_path"`
	GenreIDs     []int   `json:"genre_ids"`
	ReleaseDate  string  `json:"release_date,omitempty"`
	FirstAirDate string  `json:"first_air_date,omitempty"`
}

type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type Network struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type ProductionCountry struct {
	ISO  string `json:"iso_3166_1"`
	Name string `json:"name"`
}

type ExternalIDs struct {
	IMDbID string `json:"imdb_id"`
}

type MovieDetails struct {
	ID                  int                 `json:"id"`
	Title               string              `json:"title"`
	Overview            string              `json:"overview"`
	PosterPath          string              `json:"poster_path"`
	VoteAverage         float64             `json:"vote_average"`
	ReleaseDate         string              `json:"release_date"`
	Genres              []Genre             `json:"genres"`
	Runtime             int                 `json:"runtime"`
	Tagline             string              `json:"tagline"`
	Status              string              `json:"status"`
	Budget              int64               `json:"budget"`
	Revenue             int64               `json:"revenue"`
	IMDbID              string              `json:"imdb_id"`
	ProductionCountries []ProductionCountry `json:"production_countries"`
}

type TVDetails struct {
	ID                  int                 `json:"id"`
	Name                string              `json:"name"`
	Overview            string              `json:"overview"`
	PosterPath          string              `json:"poster_path"`
	VoteAverage         float64             `json:"vote_average"`
	FirstAirDate        string              `json:"first_air_date"`
	Genres              []Genre             `json:"genres"`
	NumberOfSeasons     int                 `json:"number_of_seasons"`
	NumberOfEpisodes    int                 `json:"number_of_episodes"`
	Status              string              `json:"status"`
	Tagline             string              `json:"tagline"`
	Networks            []Network           `json:"networks"`
	ProductionCountries []ProductionCountry `json:"production_countries"`
}

// Provider is one streaming/rental/purchase service attached to a title.
type Provider struct {
	ProviderID   int    `json:"provider_id"`
	ProviderName string `json:"provider_name"`
	LogoPath     string `json:"logo_path"`
}

// RegionOffers is the per-region breakdown of watch offers for a title.
type RegionOffers struct {
	Link     string     `json:"link"`
	Flatrate []Provider `json:"flatrate"`
	Rent     []Provider `json:"rent"`
	Buy      []Provider `json:"buy"`
}

type WatchProviderResult struct {
	ID      int                     `json:"id"`
	Results map[string]RegionOffers `json:"results"`
}

// Streaming returns the subscription-streaming providers for a region, or
// nil when the title has none there.
func (w *WatchProviderResult) Streaming(region string) []Provider {
	offers, ok := w.Results[region]
	if !ok {
		return nil
	}
	return offers.Flatrate
}

type ProviderCatalog struct {
	Results []Provider `json:"results"`
}
