package main

import (
	"database/sql"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jwtware "github.com/gofiber/jwt/v2"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/ozicart/catalog-search-backend/internal/catalog"
	"github.com/ozicart/catalog-search-backend/internal/config"
	"github.com/ozicart/catalog-search-backend/internal/search"
	"github.com/ozicart/catalog-search-backend/internal/suggestion"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		l := zerolog.New(os.Stderr)
		l.Fatal().Err(err).Msg("load config")
	}
	log := newLogger(cfg.Log.Level)

	db := mustOpenDB(cfg.Database.URL, log)
	defer db.Close()
	log.Info().Msg("database connection established")

	app := fiber.New()
	setupCORS(app)
	app.Use(requestLogger(log))

	searchClient := search.NewClient(cfg.OpenSearch)

	catalogService := catalog.NewService(
		catalog.NewPostgresRepository(db),
		searchClient,
		cfg.OpenSearch.CatalogIndex,
		log,
	)
	catalogHandler := catalog.NewHandler(catalogService, cfg.Export.CatalogPath)

	suggestionService := suggestion.NewService(
		suggestion.NewPostgresRepository(db),
		searchClient,
		cfg.OpenSearch.SuggestIndex,
		log,
	)
	suggestionHandler := suggestion.NewHandler(suggestionService, cfg.Export.TermsSource, cfg.Export.SuggestionPath)

	catalogHandler.RegisterPublicRoutes(app)
	suggestionHandler.RegisterPublicRoutes(app)

	// pushes and seeding mutate the cluster and the store, so they sit behind
	// the JWT gate when a secret is configured; exports stay public
	if cfg.Auth.JWTSecret != "" {
		app.Use(jwtware.New(jwtware.Config{
			SigningKey: []byte(cfg.Auth.JWTSecret),
			Filter: func(c *fiber.Ctx) bool {
				return c.Method() == fiber.MethodGet
			},
		}))
	}

	catalogHandler.RegisterProtectedRoutes(app)
	suggestionHandler.RegisterProtectedRoutes(app)

	addr := ":" + cfg.Server.Port
	log.Info().Str("addr", addr).Msg("starting server")
	if err := app.Listen(addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(lvl).
		With().Timestamp().Logger()
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
}

func requestLogger(log zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		log.Info().
			Str("method", c.Method()).
			Str("path", c.OriginalURL()).
			Int("status", c.Response().StatusCode()).
			Dur("took", time.Since(start)).
			Msg("request")
		return err
	}
}

func mustOpenDB(url string, log zerolog.Logger) *sql.DB {
	db, err := sql.Open("pgx", url)
	if err != nil {
		log.Fatal().Err(err).Msg("open database")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("ping database")
	}
	return db
}
