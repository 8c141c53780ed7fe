package suggestion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/rs/zerolog"
)

// SearchGateway is the slice of the search cluster suggestion pushes need.
type SearchGateway interface {
	Bulk(ctx context.Context, payload []byte) (map[string]any, error)
}

// Service seeds search terms into the relational store and exports them as a
// bulk payload for the suggestion index.
type Service struct {
	repo   Repository
	search SearchGateway
	index  string
	log    zerolog.Logger
}

func NewService(repo Repository, search SearchGateway, index string, log zerolog.Logger) *Service {
	return &Service{repo: repo, search: search, index: index, log: log}
}

// Seed reads terms from the configured xlsx source and replaces the stored
// set. Returns the number of terms read.
func (s *Service) Seed(ctx context.Context, source string) (int, error) {
	terms, err := ReadTerms(source)
	if err != nil {
		return 0, err
	}
	s.log.Info().Int("terms", len(terms)).Msg("inserting search terms")
	if err := s.repo.Replace(ctx, terms); err != nil {
		return 0, err
	}
	return len(terms), nil
}

// suggestionSource is the indexed body; unlike catalog documents the id stays
// numeric here.
type suggestionSource struct {
	Type string `json:"type"`
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type action struct {
	Index actionIndex `json:"index"`
}

type actionIndex struct {
	Index string `json:"_index"`
	ID    string `json:"_id"`
}

// BuildBulk serializes every stored suggestion as a header/body line pair
// under the synthetic id kw_<id>, with a trailing newline.
func (s *Service) BuildBulk(ctx context.Context) ([]byte, int, error) {
	suggestions, err := s.repo.List(ctx)
	if err != nil {
		return nil, 0, err
	}

	var buf bytes.Buffer
	for _, sg := range suggestions {
		header, err := json.Marshal(action{Index: actionIndex{Index: s.index, ID: "kw_" + strconv.Itoa(sg.ID)}})
		if err != nil {
			return nil, 0, fmt.Errorf("marshal suggestion header %d: %w", sg.ID, err)
		}
		body, err := json.Marshal(suggestionSource{Type: sg.Type, ID: sg.ID, Name: sg.Name})
		if err != nil {
			return nil, 0, fmt.Errorf("marshal suggestion body %d: %w", sg.ID, err)
		}
		buf.Write(header)
		buf.WriteByte('\n')
		buf.Write(body)
		buf.WriteByte('\n')
	}
	return buf.Bytes(), len(suggestions), nil
}

// ExportToFile writes the suggestion bulk payload to path, creating the
// parent directory when missing. Returns the exported row count.
func (s *Service) ExportToFile(ctx context.Context, path string) (int, error) {
	payload, count, err := s.BuildBulk(ctx)
	if err != nil {
		return 0, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return 0, fmt.Errorf("create export dir: %w", err)
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return 0, fmt.Errorf("write export file: %w", err)
	}
	return count, nil
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
