package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

var errForTest = errors.New("cluster unavailable")

// fakeGateway records what the handler pushes to the cluster.
type fakeGateway struct {
	deleted  []string
	payloads [][]byte
	bulkErr  error
	delErr   error
}

func (g *fakeGateway) Bulk(ctx context.Context, payload []byte) (map[string]any, error) {
	if g.bulkErr != nil {
		return nil, g.bulkErr
	}
	g.payloads = append(g.payloads, payload)
	return map[string]any{"errors": false}, nil
}

func (g *fakeGateway) DeleteIndex(ctx context.Context, name string) error {
	if g.delErr != nil {
		return g.delErr
	}
	g.deleted = append(g.deleted, name)
	return nil
}

func makeCatalogApp(t *testing.T, gw *fakeGateway) (*fiber.App, string) {
	t.Helper()
	categories, items := builderFixture()
	repo := NewInMemoryRepository(categories, items)
	service := NewService(repo, gw, "dev-catalog-index", zerolog.Nop())
	exportPath := filepath.Join(t.TempDir(), "bulk_categories.json")
	handler := NewHandler(service, exportPath)

	app := fiber.New()
	handler.RegisterPublicRoutes(app)
	handler.RegisterProtectedRoutes(app)
	return app, exportPath
}

func TestExportCategoriesRoute(t *testing.T) {
	app, exportPath := makeCatalogApp(t, &fakeGateway{})

	req := httptest.NewRequest("GET", "/api/suggestions/export-categories", nil)
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}

	var body struct {
		Success  bool   `json:"success"`
		Count    int    `json:"count"`
		FilePath string `json:"filePath"`
	}
	raw, _ := io.ReadAll(res.Body)
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !body.Success || body.Count != 4 {
		t.Fatalf("unexpected response %+v", body)
	}

	written, err := os.ReadFile(exportPath)
	if err != nil {
		t.Fatalf("export file not written: %v", err)
	}
	if !strings.HasSuffix(string(written), "\n") {
		t.Fatal("export file must end with a newline")
	}
	if got := strings.Count(string(written), "\n"); got != body.Count*2 {
		t.Fatalf("expected %d lines, got %d", body.Count*2, got)
	}
}

func TestPushCategoriesRoute(t *testing.T) {
	gw := &fakeGateway{}
	app, _ := makeCatalogApp(t, gw)

	req := httptest.NewRequest("POST", "/api/suggestions/push-categories", nil)
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	if len(gw.payloads) != 1 {
		t.Fatalf("expected one bulk upload, got %d", len(gw.payloads))
	}
	if len(gw.deleted) != 0 {
		t.Fatalf("file-based push must not delete the index, deleted %v", gw.deleted)
	}
}

func TestPushCategoriesDirectRoute(t *testing.T) {
	gw := &fakeGateway{}
	app, _ := makeCatalogApp(t, gw)

	req := httptest.NewRequest("POST", "/api/suggestions/push-categories-direct", nil)
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}

	if len(gw.deleted) != 1 || gw.deleted[0] != "dev-catalog-index" {
		t.Fatalf("expected index delete before push, got %v", gw.deleted)
	}
	if len(gw.payloads) != 1 {
		t.Fatalf("expected one bulk upload, got %d", len(gw.payloads))
	}

	var body struct {
		Success       bool `json:"success"`
		CategoryCount int  `json:"categoryCount"`
		ProductCount  int  `json:"productCount"`
		TotalCount    int  `json:"totalCount"`
	}
	raw, _ := io.ReadAll(res.Body)
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !body.Success || body.CategoryCount != 3 || body.ProductCount != 1 || body.TotalCount != 4 {
		t.Fatalf("unexpected response %+v", body)
	}
}

func TestPushCategoriesDirectRoute_DeleteFailureAborts(t *testing.T) {
	gw := &fakeGateway{delErr: errForTest}
	app, _ := makeCatalogApp(t, gw)

	req := httptest.NewRequest("POST", "/api/suggestions/push-categories-direct", nil)
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", res.StatusCode)
	}
	if len(gw.payloads) != 0 {
		t.Fatal("push must not run after a failed index delete")
	}
}
