package suggestion

import (
	"github.com/gofiber/fiber/v2"
)

// Handler exposes the search-term endpoints under /api/suggestions.
type Handler struct {
	service     *Service
	termsSource string
	exportPath  string
}

func NewHandler(s *Service, termsSource, exportPath string) *Handler {
	return &Handler{service: s, termsSource: termsSource, exportPath: exportPath}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/suggestions/test", h.test)
	app.Get("/api/suggestions/export-suggestion", h.exportSuggestions)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/api/suggestions/seed-suggestion", h.seedSuggestions)
	app.Post("/api/suggestions/push-suggestion", h.pushSuggestions)
}

func (h *Handler) test(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "Auth route test endpoint working"})
}

func (h *Handler) seedSuggestions(c *fiber.Ctx) error {
	if _, err := h.service.Seed(c.Context(), h.termsSource); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"success": true, "message": "Seeded successfully"})
}

func (h *Handler) exportSuggestions(c *fiber.Ctx) error {
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

func (h *Handler) pushSuggestions(c *fiber.Ctx) error {
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
