package main

import (
	"context"
	"database/sql"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/ozicart/catalog-search-backend/internal/catalog"
	"github.com/ozicart/catalog-search-backend/internal/config"
	"github.com/ozicart/catalog-search-backend/internal/search"
)

// One-shot runner: delete the catalog index, rebuild the bulk payload from the
// database and push it straight to the cluster. Exits non-zero on any failure.
func main() {
	_ = godotenv.Load()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	db, err := sql.Open("pgx", cfg.Database.URL)
	if err != nil {
		log.Fatal().Err(err).Msg("open database")
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("ping database")
	}
	log.Info().Msg("database connection established")

	service := catalog.NewService(
		catalog.NewPostgresRepository(db),
		search.NewClient(cfg.OpenSearch),
		cfg.OpenSearch.CatalogIndex,
		log,
	)

	result, err := service.PushDirect(context.Background())
	if err != nil {
		log.Fatal().Err(err).Msg("direct push failed")
	}

	log.Info().
		Int("categoryCount", result.CategoryCount).
		Int("productCount", result.ProductCount).
		Int("totalCount", result.TotalCount).
		Str("index", result.IndexName).
		Msg("catalog pushed")
}
