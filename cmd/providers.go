package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var allRegions bool

// providersCmd represents the providers command
var providersCmd = &cobra.Command{
	Use:   "providers",
	Short: "List streaming providers TMDB knows for your region",
	Long: `List the display names of every streaming provider TMDB tracks for the
configured watch region, useful for picking values for TMDB_PROVIDERS.`,
	RunE: runProviders,
}

func init() {
	rootCmd.AddCommand(providersCmd)

	providersCmd.Flags().BoolVar(&allRegions, "all", false, "list providers across all regions")
}

func runProviders(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	region := cfg.TMDB.Region
	if allRegions {
		region = ""
	}

	names, err := tmdbClient.Providers(ctx, region)
	if err != nil {
		return err
	}

	if len(names) == 0 {
		fmt.Println("No providers found.")
		return nil
	}

	if region != "" {
		fmt.Printf("Found %d providers in %s:\n", len(names), region)
	} else {
		fmt.Printf("Found %d providers:\n", len(names))
	}
	for _, name := range names {
		fmt.Printf("  • %s\n", name)
	}

	return nil
}
