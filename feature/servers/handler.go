package servers

import (
	"bytes"
	"errors"
	"fmt"
	"net/url"

	"server-relay/core/logger"
	"server-relay/feature/servers/models"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

var (
	errEmptyBody  = errors.New("empty body")
	errNullRecord = errors.New("record is null")
)

// Handler handles HTTP requests for tracked servers.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the ingestion, query and health routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Post("/receive", h.HandleReceive)
	app.Get("/messages", h.HandleMessages)
	app.Get("/messages/:key", h.HandleMessage)
	app.Get("/health", h.HandleHealth)
}

// HandleReceive ingests one record or an array of records.
// @Summary Ingest records
// @Description Merge a record, or an ordered array of records, into the store.
// @Tags servers
// @Accept json
// @Produce json
// @Param body body models.Record true "Record or array of records"
// @Success 200 {object} models.Ack "Acknowledgement"
// @Failure 400 {object} map[string]string "Unparseable body"
// @Router /receive [post]
func (h *Handler) HandleReceive(c *fiber.Ctx) error {
	records, err := decodeRecords(c.Body())
	if err != nil {
		logger.WithRayID(h.service.logger, c).Debug("Rejected ingestion body", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid body: " + err.Error(),
		})
	}

	count := h.service.IngestAll(c.UserContext(), records...)
	return c.JSON(models.Ack{Status: "ok", Count: count})
}

// HandleMessages returns every live entity.
// @Summary List servers
// @Description Entities updated within the expiry window, most recently updated first.
// @Tags servers
// @Produce json
// @Success 200 {array} models.Entity "Live entities"
// @Router /messages [get]
func (h *Handler) HandleMessages(c *fiber.Ctx) error {
	return c.JSON(h.service.Snapshot())
}

// HandleMessage returns one live entity by identity key.
// @Summary Get server
// @Description Look up an entity by identity key (job:<jobId> or msg:<messageId>).
// @Tags servers
// @Produce json
// @Param key path string true "Identity key"
// @Success 200 {object} models.Entity "Entity"
// @Failure 404 {object} map[string]string "Not found or expired"
// @Router /messages/{key} [get]
func (h *Handler) HandleMessage(c *fiber.Ctx) error {
	key := c.Params("key")
	if unescaped, err := url.PathUnescape(key); err == nil {
		key = unescaped
	}

	entity, ok := h.service.Lookup(key)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "entity not found",
		})
	}
	return c.JSON(entity)
}

// HandleHealth reports liveness.
// @Summary Health check
// @Tags servers
// @Produce json
// @Success 200 {object} models.Health "Service is up"
// @Router /health [get]
func (h *Handler) HandleHealth(c *fiber.Ctx) error {
	return c.JSON(models.Health{Status: "ok", Entities: h.service.Count()})
}

// decodeRecords accepts a JSON object or an array of objects.
func decodeRecords(body []byte) ([]models.Record, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, errEmptyBody
	}

	if trimmed[0] == '[' {
		var items []*models.Record
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, err
		}
		records := make([]models.Record, len(items))
		for i, item := range items {
			if item == nil {
				return nil, fmt.Errorf("element %d: %w", i, errNullRecord)
			}
			records[i] = *item
		}
		return records, nil
	}

	var rec models.Record
	if err := json.Unmarshal(trimmed, &rec); err != nil {
		return nil, err
	}
	return []models.Record{rec}, nil
}
