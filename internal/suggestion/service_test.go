package suggestion

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGateway struct {
	payloads [][]byte
}

func (g *fakeGateway) Bulk(ctx context.Context, payload []byte) (map[string]any, error) {
	g.payloads = append(g.payloads, payload)
	return map[string]any{"errors": false}, nil
}

func seededService(gw SearchGateway) *Service {
	repo := NewInMemoryRepository([]Suggestion{
		{ID: 1, Type: "keyword", Name: "shoes"},
		{ID: 2, Type: "keyword", Name: "socks"},
	})
	return NewService(repo, gw, "test_suggestions", zerolog.Nop())
}

func TestBuildBulk(t *testing.T) {
	payload, count, err := seededService(&fakeGateway{}).BuildBulk(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	text := string(payload)
	require.True(t, strings.HasSuffix(text, "\n"))
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	require.Len(t, lines, 4, "two lines per suggestion")

	assert.JSONEq(t, `{"index":{"_index":"test_suggestions","_id":"kw_1"}}`, lines[0])
	// the suggestion body keeps a numeric id, unlike catalog documents
	assert.JSONEq(t, `{"type":"keyword","id":1,"name":"shoes"}`, lines[1])
	assert.JSONEq(t, `{"index":{"_index":"test_suggestions","_id":"kw_2"}}`, lines[2])
}

func TestExportToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "bulk_suggestions.json")
	count, err := seededService(&fakeGateway{}).ExportToFile(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	written, err := os.ReadFile(path)
	require.NoError(t, err, "missing parent directory must be created")
	assert.Equal(t, 4, strings.Count(string(written), "\n"))
}

func TestPush(t *testing.T) {
	gw := &fakeGateway{}
	path := filepath.Join(t.TempDir(), "bulk_suggestions.json")

	count, resp, err := seededService(gw).Push(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Equal(t, false, resp["errors"])

	written, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Len(t, gw.payloads, 1)
	assert.Equal(t, written, gw.payloads[0], "push uploads exactly what was exported")
}

func TestSeed(t *testing.T) {
	repo := NewInMemoryRepository(nil)
	service := NewService(repo, &fakeGateway{}, "test_suggestions", zerolog.Nop())

	data := writeTermsSheet(t, map[string]any{
		"A1": "term",
		"A2": "shoes",
		"A3": "socks",
		"A4": "shoes", // duplicate
	})
	path := filepath.Join(t.TempDir(), "terms.xlsx")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	count, err := service.Seed(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 3, count, "seed reports terms read, not rows kept")

	stored, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, stored, 2, "store deduplicates")
}

func TestSeed_NoSource(t *testing.T) {
	service := NewService(NewInMemoryRepository(nil), &fakeGateway{}, "test_suggestions", zerolog.Nop())
	_, err := service.Seed(context.Background(), "")
	require.Error(t, err)
}
