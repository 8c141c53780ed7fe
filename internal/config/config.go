package config

import (
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds all runtime settings. Values come from the environment; defaults
// match the ones the service historically ran with.
type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	OpenSearch OpenSearchConfig
	Export     ExportConfig
	Auth       AuthConfig
	Log        LogConfig
}

type ServerConfig struct {
	Port string `env:"PORT" env-default:"5000"`
}

type DatabaseConfig struct {
	URL string `env:"DATABASE_URL" env-required:"true"`
}

// OpenSearchConfig describes the target search cluster. Categories and products
// share one index; search-term suggestions use a separate one.
type OpenSearchConfig struct {
	URL          string        `env:"OPEN_SEARCH_URL" env-default:"http://localhost:9200"`
	Username     string        `env:"OPEN_SEARCH_USERNAME" env-default:"admin"`
	Password     string        `env:"OPEN_SEARCH_PASSWORD" env-default:"password"`
	CatalogIndex string        `env:"OPEN_SEARCH_CATEGORIES_INDEX" env-default:"dev-catalog-index"`
	SuggestIndex string        `env:"OPEN_SEARCH_SUGGESTION_INDEX" env-default:"test_suggestions"`
	Timeout      time.Duration `env:"OPEN_SEARCH_TIMEOUT" env-default:"60s"`
}

type ExportConfig struct {
	SuggestionPath string `env:"OPEN_SEARCH_PATH" env-default:"./uploads/bulk_suggestions.json"`
	CatalogPath    string `env:"OPEN_SEARCH_CATEGORY_PATH" env-default:"./uploads/bulk_categories.json"`
	// TermsSource is a local xlsx path or an http(s) URL for the search-term sheet.
	TermsSource string `env:"SEARCH_TERMS_EXCEL"`
}

type AuthConfig struct {
	JWTSecret string `env:"JWT_SECRET" env-default:""`
}

type LogConfig struct {
	Level string `env:"LOG_LEVEL" env-default:"info"`
}

// Load reads configuration from the environment. `.env` loading is the caller's
// concern (main does it via godotenv before calling Load).
func Load() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
