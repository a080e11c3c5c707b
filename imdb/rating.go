package imdb

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/PuerkitoBio/goquery"
)

// Rating is the scraped IMDb aggregate rating for one title.
type Rating struct {
	Rating string `json:"rating"`
	Votes  string `json:"votes"`
	Error  string `json:"error,omitempty"`
}

var baseURL = "https://www.imdb.com"

// Fetch scrapes the aggregate rating from the title page's JSON-LD block.
// Failures are reported in the Error field rather than as a hard error; the
// rating is decoration, not required data.
func Fetch(imdbID string) Rating {
	url := fmt.Sprintf("%s/title/%s/", baseURL, imdbID)

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return Rating{Error: "Failed to create request"}
	}

	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36")
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return Rating{Error: "Failed to fetch IMDb page"}
	}
	defer resp.Body.Close()

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return Rating{Error: "Failed to parse HTML"}
	}

	jsonMeta := doc.Find("script[type='application/ld+json']").First().Text()
	if jsonMeta == "" {
		return Rating{Error: "JSON-LD data not found"}
	}

	var jsonObj map[string]any
	if err := json.Unmarshal([]byte(jsonMeta), &jsonObj); err != nil {
		return Rating{Error: "Failed to parse JSON-LD data"}
	}

	var rating, votes float64

	if aggregate, ok := jsonObj["aggregateRating"].(map[string]any); ok {
		if v, ok := aggregate["ratingValue"].(float64); ok {
			rating = v
		}
		if v, ok := aggregate["ratingCount"].(float64); ok {
			votes = v
		}
	}

	if rating > 0 {
		return Rating{
			Rating: fmt.Sprintf("%.1f", rating),
			Votes:  formatVotes(votes),
		}
	}

	return Rating{Error: "Rating not found"}
}

func formatVotes(votes float64) string {
	if votes == 0 {
		return "N/A"
	}
	if votes >= 1000000 {
		return fmt.Sprintf("%.1fM", votes/1000000)
	} else if votes >= 1000 {
		return fmt.Sprintf("%.1fK", votes/1000)
	}
	return fmt.Sprintf("%.0f", votes)
}
