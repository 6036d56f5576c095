package history

import (
	"server-relay/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for sighting history.
type Handler struct {
	repo   *Repository
	logger *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(repo *Repository, logger *zap.Logger) *Handler {
	return &Handler{repo: repo, logger: logger}
}

// RegisterRoutes registers the history routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/history/:jobId", h.HandleHistory)
}

// HandleHistory lists past sightings of a job.
// @Summary Job history
// @Description Sightings recorded for a job id, newest first.
// @Tags history
// @Produce json
// @Param jobId path string true "Job id"
// @Param limit query int false "Maximum rows (default 50, max 500)"
// @Success 200 {array} history.Sighting "Sightings"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /history/{jobId} [get]
func (h *Handler) HandleHistory(c *fiber.Ctx) error {
	jobID := c.Params("jobId")
	limit := c.QueryInt("limit", DefaultLimit)

	rows, err := h.repo.List(c.UserContext(), jobID, limit)
	if err != nil {
		logger.WithRayID(h.logger, c).Error("History query failed", zap.String("job_id", jobID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "history unavailable",
		})
	}
	if rows == nil {
		rows = []Sighting{}
	}
	return c.JSON(rows)
}
