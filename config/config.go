package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Environment variables read at startup, one binding per setting.
var envBindings = map[string]string{
	"tmdb.api_key":      "TMDB_API_KEY",
	"tmdb.api_token":    "TMDB_API_TOKEN",
	"tmdb.region":       "TMDB_REGION",
	"tmdb.providers":    "TMDB_PROVIDERS",
	"tmdb.offer_filter": "TMDB_OFFER_FILTER",
	"movie.title":       "MOVIE_TITLE",
	"movie.id":          "MOVIE_ID",
	"logging.level":     "STREAMCHECK_LOG_LEVEL",
	"logging.format":    "STREAMCHECK_LOG_FORMAT",
}

// Load builds the configuration from the environment, applying defaults and
// validating the result. Configuration is read once; the returned value is
// passed around explicitly.
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	movieID, err := parseMovieID(v.GetString("movie.id"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		TMDB: TMDBConfig{
			APIKey:      v.GetString("tmdb.api_key"),
			APIToken:    v.GetString("tmdb.api_token"),
			Region:      v.GetString("tmdb.region"),
			Providers:   SplitProviders(v.GetString("tmdb.providers")),
			OfferFilter: v.GetString("tmdb.offer_filter"),
		},
		Movie: MovieConfig{
			Title: v.GetString("movie.title"),
			ID:    movieID,
		},
		Logging: LoggingConfig{
			Level:  v.GetString("logging.level"),
			Format: v.GetString("logging.format"),
		},
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("tmdb.region", "US")
	v.SetDefault("tmdb.providers", "Netflix,Hulu,Peacock,Paramount Plus,Max")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
}

// SplitProviders parses a comma-separated provider list, trimming
// whitespace and dropping empty entries.
func SplitProviders(list string) []string {
	var providers []string
	for _, name := range strings.Split(list, ",") {
		name = strings.TrimSpace(name)
		if name != "" {
			providers = append(providers, name)
		}
	}
	return providers
}

func parseMovieID(raw string) (int64, error) {
	if raw == "" {
		return 0, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid MOVIE_ID %q: must be a numeric TMDB id", raw)
	}
	return id, nil
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if cfg.TMDB.APIToken == "" {
		return fmt.Errorf("TMDB_API_TOKEN must be set to a valid API read access token")
	}

	// A directly supplied title skips id resolution, but the availability
	// lookup still needs the id.
	if cfg.Movie.Title != "" && cfg.Movie.ID == 0 {
		return fmt.Errorf("MOVIE_ID is required when MOVIE_TITLE is supplied directly")
	}

	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	return nil
}
