package archive

import (
	"errors"

	"server-relay/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for snapshot archives.
type Handler struct {
	exporter *Exporter
}

// NewHandler creates a new HTTP handler.
func NewHandler(exporter *Exporter) *Handler {
	return &Handler{exporter: exporter}
}

// RegisterRoutes registers the archive routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/archive")
	group.Post("/", h.HandleExport)
	group.Get("/latest", h.HandleLatest)
}

// HandleExport uploads a snapshot now.
// @Summary Export snapshot
// @Description Upload the live entities to object storage.
// @Tags archive
// @Produce json
// @Success 200 {object} archive.Result "Uploaded objects"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /archive [post]
func (h *Handler) HandleExport(c *fiber.Ctx) error {
	res, err := h.exporter.Export(c.UserContext())
	if err != nil {
		logger.WithRayID(h.exporter.logger, c).Error("Snapshot export failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(res)
}

// HandleLatest returns the most recent snapshot.
// @Summary Latest snapshot
// @Tags archive
// @Produce json
// @Success 200 {array} models.Entity "Entities at export time"
// @Failure 404 {object} map[string]string "Nothing exported yet"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /archive/latest [get]
func (h *Handler) HandleLatest(c *fiber.Ctx) error {
	data, err := h.exporter.Latest(c.UserContext())
	if errors.Is(err, ErrNoSnapshot) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if err != nil {
		logger.WithRayID(h.exporter.logger, c).Error("Snapshot read failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(data)
}
