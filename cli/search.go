package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"filmgram/imdb"
	"filmgram/tmdb"
)

// pageSize caps how many entries one page of results presents; a "Show
// more" option numbered one past the last entry appears when more pages
// remain.
const pageSize = 20

// fetchRating is swapped out in tests so the flow never touches imdb.com.
var fetchRating = imdb.Fetch

// Run drives the interactive search prompt: media type, query, paginated
// result list, numeric selection, full details for the chosen title.
// Invalid input re-prompts with the same choices; there is no retry cap.
func Run(ctx context.Context, client *tmdb.Client, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)

	mediaType, err := promptMediaType(scanner, out)
	if err != nil {
		return err
	}

	query, err := prompt(scanner, out, "Search: ")
	if err != nil {
		return err
	}

	for page := 1; ; {
		resp, err := client.Search(ctx, mediaType, query, page)
		if err != nil {
			return fmt.Errorf("search %q: %w", query, err)
		}
		if len(resp.Results) == 0 {
			fmt.Fprintln(out, "No results found.")
			return nil
		}

		entries := resp.Results
		if len(entries) > pageSize {
			entries = entries[:pageSize]
		}

		for i, r := range entries {
			m := tmdb.Media{Type: mediaType, SearchResult: r}
			fmt.Fprintf(out, "%d. %s (%s)\n", i+1, m.DisplayTitle(), m.Year())
		}

		showMore := resp.Page < resp.TotalPages
		max := len(entries)
		if showMore {
			max++
			fmt.Fprintf(out, "%d. Show more\n", max)
		}

		choice, err := promptChoice(scanner, out, max)
		if err != nil {
			return err
		}
		if showMore && choice == max {
			page++
			continue
		}

		selected := tmdb.Media{Type: mediaType, SearchResult: entries[choice-1]}
		return showDetails(ctx, client, out, selected)
	}
}

func promptMediaType(scanner *bufio.Scanner, out io.Writer) (tmdb.MediaType, error) {
	for {
		line, err := prompt(scanner, out, "Media type (movie/tv): ")
		if err != nil {
			return "", err
		}
		mediaType := tmdb.MediaType(strings.ToLower(line))
		if mediaType.Valid() {
			return mediaType, nil
		}
		fmt.Fprintln(out, "Please enter \"movie\" or \"tv\".")
	}
}

// promptChoice loops until the operator enters a number within [1, max].
func promptChoice(scanner *bufio.Scanner, out io.Writer, max int) (int, error) {
	for {
		line, err := prompt(scanner, out, "Choice: ")
		if err != nil {
			return 0, err
		}
		n, convErr := strconv.Atoi(line)
		if convErr != nil || n < 1 || n > max {
			fmt.Fprintf(out, "Enter a number between 1 and %d.\n", max)
			continue
		}
		return n, nil
	}
}

func prompt(scanner *bufio.Scanner, out io.Writer, label string) (string, error) {
	fmt.Fprint(out, label)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(scanner.Text()), nil
}

func showDetails(ctx context.Context, client *tmdb.Client, out io.Writer, m tmdb.Media) error {
	switch m.Type {
	case tmdb.MediaMovie:
		details, err := client.MovieDetails(ctx, m.ID)
		if err != nil {
			return fmt.Errorf("movie details %d: %w", m.ID, err)
		}
		fmt.Fprintf(out, "\n%s (%s)\n", details.Title, m.Year())
		if details.Overview != "" {
			fmt.Fprintln(out, details.Overview)
		}
		if details.IMDbID != "" {
			fmt.Fprintf(out, "IMDb: %s\n", details.IMDbID)
			if rating := fetchRating(details.IMDbID); rating.Error == "" {
				fmt.Fprintf(out, "Rating: %s (%s votes)\n", rating.Rating, rating.Votes)
			}
		}
		if url := tmdb.PosterURL(details.PosterPath); url != "" {
			fmt.Fprintf(out, "Poster: %s\n", url)
		}
	case tmdb.MediaTV:
		details, err := client.TVDetails(ctx, m.ID)
		if err != nil {
			return fmt.Errorf("tv details %d: %w", m.ID, err)
		}
		fmt.Fprintf(out, "\n%s (%s)\n", details.Name, m.Year())
		if details.Overview != "" {
			fmt.Fprintln(out, details.Overview)
		}
		fmt.Fprintf(out, "Seasons: %d | Episodes: %d\n", details.NumberOfSeasons, details.NumberOfEpisodes)
		if url := tmdb.PosterURL(details.PosterPath); url != "" {
			fmt.Fprintf(out, "Poster: %s\n", url)
		}
	}
	return nil
}
