// Package resolver turns configuration or interactive input into exactly one
// movie reference ready for an availability lookup.
package resolver

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/s0up4200/streamcheck/chunk"
	"github.com/s0up4200/streamcheck/tmdb"
)

const defaultPageSize = 5

const (
	queryPrompt     = "Query a movie: "
	selectionPrompt = "Are any of these the movie you're looking for? (#/n)\n\t>> "
)

// MetadataClient is the subset of the TMDB client the resolver needs.
type MetadataClient interface {
	SearchMovies(ctx context.Context, query string) ([]tmdb.Movie, error)
	MovieTitle(ctx context.Context, movieID int64) (string, error)
}

// state of the interactive search loop.
type state int

const (
	stateAwaitQuery state = iota
	stateDisplayPage
	stateAwaitSelection
	stateResolved
	stateExhausted
)

// Resolver drives the interactive movie resolution flow. Prompt responses
// are read from in and prompts written to out, so tests can script a run.
type Resolver struct {
	client   MetadataClient
	in       *bufio.Scanner
	out      io.Writer
	pageSize int
	logger   zerolog.Logger
}

// New creates a Resolver.
func New(client MetadataClient, in io.Reader, out io.Writer, logger zerolog.Logger) *Resolver {
	return &Resolver{
		client:   client,
		in:       bufio.NewScanner(in),
		out:      out,
		pageSize: defaultPageSize,
		logger:   logger,
	}
}

// Resolve produces exactly one movie reference. A directly configured title
// is used as-is with its companion id; a bare id fetches its title from the
// API; with neither configured, the interactive search loop runs.
func (r *Resolver) Resolve(ctx context.Context, movieID int64, movieTitle string) (tmdb.Movie, error) {
	if movieTitle != "" {
		// Config validation guarantees the companion id is present.
		return tmdb.Movie{ID: movieID, Title: movieTitle}, nil
	}

	if movieID != 0 {
		title, err := r.client.MovieTitle(ctx, movieID)
		if err != nil {
			return tmdb.Movie{}, err
		}
		if title == "" {
			r.logger.Warn().Int64("movie_id", movieID).Msg("TMDB returned no title for movie")
		}
		return tmdb.Movie{ID: movieID, Title: title}, nil
	}

	return r.Search(ctx)
}

// Search runs the interactive query/page/select loop as an explicit state
// machine. An empty query quits cleanly; a decimal index selects from the
// displayed page; "n"/"no" (any case) advances to the next page; any other
// input re-prompts on the same page. Exhausting every page without a
// selection is a no-match failure.
func (r *Resolver) Search(ctx context.Context) (tmdb.Movie, error) {
	var (
		picked   tmdb.Movie
		page     []tmdb.Movie
		nextPage func() ([]tmdb.Movie, bool)
		stop     func()
	)
	defer func() {
		if stop != nil {
			stop()
		}
	}()

	st := stateAwaitQuery
	for {
		switch st {
		case stateAwaitQuery:
			query, err := r.prompt(queryPrompt)
			if err != nil {
				return tmdb.Movie{}, err
			}
			if query == "" {
				return tmdb.Movie{}, ErrQuit
			}

			results, err := r.client.SearchMovies(ctx, query)
			if err != nil {
				return tmdb.Movie{}, err
			}
			if len(results) == 0 {
				st = stateExhausted
				continue
			}

			nextPage, stop = iter.Pull(chunk.Groups(results, r.pageSize, tmdb.Movie{}))
			st = stateDisplayPage

		case stateDisplayPage:
			p, ok := nextPage()
			if !ok {
				st = stateExhausted
				continue
			}
			page = p
			r.printPage(page)
			st = stateAwaitSelection

		case stateAwaitSelection:
			input, err := r.prompt(selectionPrompt)
			if err != nil {
				return tmdb.Movie{}, err
			}

			switch {
			case isDecimal(input):
				index, _ := strconv.Atoi(input)
				count := candidateCount(page)
				if index < 1 || index > count {
					return tmdb.Movie{}, &InvalidSelectionError{Index: index, Max: count}
				}
				picked = page[index-1]
				st = stateResolved
			case isNegative(input):
				st = stateDisplayPage
			default:
				// Unrecognized input: stay on the same page and ask again.
			}

		case stateResolved:
			r.logger.Debug().
				Int64("movie_id", picked.ID).
				Str("title", picked.Title).
				Msg("Resolved movie from search")
			return picked, nil

		case stateExhausted:
			return tmdb.Movie{}, ErrNoMatch
		}
	}
}

// prompt writes text and reads one trimmed line. A closed input stream is
// treated as quitting.
func (r *Resolver) prompt(text string) (string, error) {
	fmt.Fprint(r.out, text)

	if !r.in.Scan() {
		if err := r.in.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", ErrQuit
	}

	return strings.TrimSpace(r.in.Text()), nil
}

// printPage lists the page's candidates numbered from 1. Padding slots on
// the final page are skipped, not printed.
func (r *Resolver) printPage(page []tmdb.Movie) {
	for i, movie := range page {
		if movie.IsZero() {
			continue
		}
		fmt.Fprintf(r.out, "%d. %s\n", i+1, movie.Label())
	}
}

// candidateCount counts the real records on a page, excluding padding.
func candidateCount(page []tmdb.Movie) int {
	count := 0
	for _, movie := range page {
		if !movie.IsZero() {
			count++
		}
	}
	return count
}

// isDecimal reports whether s is a non-empty string of ASCII digits.
func isDecimal(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// isNegative reports whether s rejects the current page.
func isNegative(s string) bool {
	return strings.EqualFold(s, "n") || strings.EqualFold(s, "no")
}
