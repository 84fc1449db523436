package pricesync

import (
	"card-manager/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for price synchronization.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the sync routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Post("/sync", h.HandleSync)
}

// HandleSync triggers a price sync run.
// @Summary Run Price Sync
// @Description Reconciles stored card variants against the Cardmarket catalog and upserts price snapshots. Supports a single-set filter, dry-run and verbose modes.
// @Tags sync
// @Accept json
// @Produce json
// @Param options body SyncOptions false "Sync options"
// @Success 200 {object} Result "Aggregated counts"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /sync [post]
func (h *Handler) HandleSync(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var opts SyncOptions
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&opts); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid sync options",
			})
		}
	}

	l.Info("Sync triggered",
		zap.String("set", opts.SetCode),
		zap.Bool("dry_run", opts.DryRun),
		zap.Bool("verbose", opts.Verbose))

	result, err := h.service.Sync(c.Context(), opts)
	if err != nil {
		l.Error("Sync failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if !opts.Verbose {
		result.Details = nil
	}

	return c.JSON(result)
}
