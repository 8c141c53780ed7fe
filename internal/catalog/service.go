package catalog

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// SearchGateway is the slice of the search cluster the export needs: a raw
// bulk upload and an idempotent index delete.
type SearchGateway interface {
	Bulk(ctx context.Context, payload []byte) (map[string]any, error)
	DeleteIndex(ctx context.Context, name string) error
}

// Service runs catalog exports: build the bulk payload from the relational
// snapshot, write it to disk, or push it straight to the cluster.
type Service struct {
	repo    Repository
	search  SearchGateway
	builder *Builder
	index   string
	log     zerolog.Logger
}

func NewService(repo Repository, search SearchGateway, index string, log zerolog.Logger) *Service {
	return &Service{
		repo:    repo,
		search:  search,
		builder: NewBuilder(index),
		index:   index,
		log:     log,
	}
}

// Build fetches one snapshot of categories and items and assembles the bulk
// payload. The run is single-pass and fully in-memory.
func (s *Service) Build(ctx context.Context) (Bulk, error) {
	categories, err := s.repo.Categories(ctx)
	if err != nil {
		return Bulk{}, err
	}
	items, err := s.repo.Items(ctx)
	if err != nil {
		return Bulk{}, err
	}

	bulk, err := s.builder.Build(categories, items)
	if err != nil {
		return Bulk{}, err
	}

	s.log.Info().
		Int("categories", bulk.CategoryCount).
		Int("products", bulk.ProductCount).
		Int("documents", bulk.TotalCount).
		Msg("catalog bulk payload prepared")
	return bulk, nil
}

// ExportToFile builds the payload and writes it to path, creating the parent
// directory when missing. Returns the emitted document count.
func (s *Service) ExportToFile(ctx context.Context, path string) (int, error) {
	bulk, err := s.Build(ctx)
	if err != nil {
		return 0, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return 0, fmt.Errorf("create export dir: %w", err)
	}
	if err := os.WriteFile(path, bulk.Payload, 0o644); err != nil {
		return 0, fmt.Errorf("write export file: %w", err)
	}
	return bulk.TotalCount, nil
}

// Push exports to path and uploads the written file to the cluster.
func (s *Service) Push(ctx context.Context, path string) (int, map[string]any, error) {
	count, err := s.ExportToFile(ctx, path)
	if err != nil {
		return 0, nil, err
	}
	payload, err := os.ReadFile(path)
	if err != nil {
		return 0, nil, fmt.Errorf("read export file: %w", err)
	}
	resp, err := s.search.Bulk(ctx, payload)
	if err != nil {
		return 0, nil, err
	}
	return count, resp, nil
}

// PushResult reports one direct push run.
type PushResult struct {
	CategoryCount int
	ProductCount  int
	TotalCount    int
	IndexName     string
	Response      map[string]any
}

// PushDirect deletes the target index (a missing index counts as success),
// rebuilds the payload from the store and uploads it without touching disk.
// A delete failure aborts before any upload is attempted.
func (s *Service) PushDirect(ctx context.Context) (PushResult, error) {
	run := uuid.NewString()
	log := s.log.With().Str("run", run).Str("index", s.index).Logger()

	log.Info().Msg("deleting index before direct push")
	if err := s.search.DeleteIndex(ctx, s.index); err != nil {
		return PushResult{}, err
	}

	bulk, err := s.Build(ctx)
	if err != nil {
		return PushResult{}, err
	}

	log.Info().Msg("pushing catalog data to the cluster")
	resp, err := s.search.Bulk(ctx, bulk.Payload)
	if err != nil {
		return PushResult{}, err
	}

	log.Info().Int("documents", bulk.TotalCount).Msg("direct push finished")
	return PushResult{
		CategoryCount: bulk.CategoryCount,
		ProductCount:  bulk.ProductCount,
		TotalCount:    bulk.TotalCount,
		IndexName:     s.index,
		Response:      resp,
	}, nil
}
