package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/streamcheck/config"
	"github.com/s0up4200/streamcheck/tmdb"
)

var (
	cfg        *config.Config
	logger     zerolog.Logger
	tmdbClient *tmdb.Client

	// Command flags
	regionFlag    string
	providersFlag string
	offerFilter   string
	logLevel      string

	appVersion   = "dev"
	appBuildTime = "unknown"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "streamcheck",
	Short: "Check which of your streaming platforms offer a movie",
	Long: `streamcheck resolves a movie against TMDB, either directly from the
MOVIE_TITLE/MOVIE_ID environment or through an interactive search, and
reports which of your preferred streaming platforms offer it as a
subscription stream in your watch region.`,
	PersistentPreRunE: initializeApp,
	RunE:              runCheck,
	SilenceUsage:      true,
}

// SetVersion records build metadata for the version command.
func SetVersion(version, buildTime string) {
	appVersion = version
	appBuildTime = buildTime
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&regionFlag, "region", "", "watch region (overrides TMDB_REGION)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")

	rootCmd.Flags().StringVar(&providersFlag, "providers", "", "comma-separated preferred platforms (overrides TMDB_PROVIDERS)")
	rootCmd.Flags().StringVar(&offerFilter, "offer-filter", "", "expr filter applied to flat-rate offers (overrides TMDB_OFFER_FILTER)")

	rootCmd.AddCommand(versionCmd)
}

// initializeApp initializes the configuration, logger, and TMDB client
func initializeApp(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	logger = setupLogger(cfg.Logging)

	// Flag overrides
	if cmd.Flags().Changed("region") {
		cfg.TMDB.Region = regionFlag
	}
	if providersFlag != "" {
		cfg.TMDB.Providers = config.SplitProviders(providersFlag)
	}
	if offerFilter != "" {
		cfg.TMDB.OfferFilter = offerFilter
	}

	tmdbClient, err = tmdb.NewClient(cfg.TMDB.APIKey, cfg.TMDB.APIToken, logger)
	if err != nil {
		return fmt.Errorf("failed to create TMDB client: %w", err)
	}

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !isatty.IsTerminal(os.Stderr.Fd()),
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	// No API client needed, skip initializeApp.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("streamcheck %s (built %s)\n", appVersion, appBuildTime)
	},
}
