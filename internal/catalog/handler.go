package catalog

import (
	"github.com/gofiber/fiber/v2"
)

// Handler exposes the catalog export endpoints under /api/suggestions, the
// route group the consumers already call.
type Handler struct {
	service    *Service
	exportPath string
}

func NewHandler(s *Service, exportPath string) *Handler {
	return &Handler{service: s, exportPath: exportPath}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/suggestions/export-categories", h.exportCategories)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/api/suggestions/push-categories", h.pushCategories)
	app.Post("/api/suggestions/push-categories-direct", h.pushCategoriesDirect)
}

func (h *Handler) exportCategories(c *fiber.Ctx) error {
	count, err := h.service.ExportToFile(c.Context(), h.exportPath)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{
		"success":  true,
		"count":    count,
		"filePath": h.exportPath,
	})
}

func (h *Handler) pushCategories(c *fiber.Ctx) error {
	count, resp, err := h.service.Push(c.Context(), h.exportPath)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{
		"success":      true,
		"exportCount":  count,
		"pushResponse": resp,
		"filePath":     h.exportPath,
	})
}

func (h *Handler) pushCategoriesDirect(c *fiber.Ctx) error {
	result, err := h.service.PushDirect(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{
		"success":       true,
		"categoryCount": result.CategoryCount,
		"productCount":  result.ProductCount,
		"totalCount":    result.TotalCount,
		"deleteResult":  fiber.Map{"success": true, "indexName": result.IndexName},
		"pushResponse":  result.Response,
		"message":       "Index deleted and data pushed directly to OpenSearch without creating file",
	})
}
