package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/s0up4200/streamcheck/availability"
	"github.com/s0up4200/streamcheck/resolver"
)

// runCheck resolves one movie and reports its flat-rate availability on the
// configured platforms.
func runCheck(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	// Compile the optional offer filter up front so a bad expression fails
	// before any prompting or network traffic.
	var filter *availability.OfferFilter
	if cfg.TMDB.OfferFilter != "" {
		var err error
		filter, err = availability.CompileOfferFilter(cfg.TMDB.OfferFilter)
		if err != nil {
			return fmt.Errorf("invalid offer filter: %w", err)
		}
	}

	res := resolver.New(tmdbClient, os.Stdin, os.Stdout, logger)
	movie, err := res.Resolve(ctx, cfg.Movie.ID, cfg.Movie.Title)
	if errors.Is(err, resolver.ErrQuit) {
		logger.Debug().Msg("No movie selected, exiting")
		return nil
	}
	if err != nil {
		return err
	}

	offers, err := tmdbClient.WatchProviders(ctx, movie.ID, cfg.TMDB.Region)
	if err != nil {
		return err
	}

	matched := availability.Match(offers.Flatrate, cfg.TMDB.Providers)
	if filter != nil {
		matched = filter.Apply(matched)
	}

	name := movie.Title
	if name == "" {
		name = fmt.Sprintf("movie #%d", movie.ID)
	}

	if len(matched) == 0 {
		fmt.Println("Not available on your platforms.")
		return nil
	}

	fmt.Printf("Movie is available!  You can stream %s at:\n", name)
	for i, offer := range matched {
		fmt.Printf("%d. %s\n", i+1, offer.ProviderName)
	}

	return nil
}
