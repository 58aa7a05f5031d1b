package config

// Config represents the complete configuration structure
type Config struct {
	TMDB    TMDBConfig
	Movie   MovieConfig
	Logging LoggingConfig
}

// TMDBConfig holds TMDB API credentials and lookup settings
type TMDBConfig struct {
	APIKey      string
	APIToken    string
	Region      string
	Providers   []string
	OfferFilter string
}

// MovieConfig holds the direct-resolution inputs. Both unset means the
// interactive search runs.
type MovieConfig struct {
	Title string
	ID    int64
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string
	Format string
}
