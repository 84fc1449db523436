package cards

import (
	"errors"

	"card-manager/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Handler handles HTTP requests for the card collection.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the card and meta routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/cards", h.HandleListCards)
	app.Get("/cards/:id", h.HandleGetCard)

	meta := app.Group("/meta")
	meta.Get("/sets", h.HandleListSets)
	meta.Get("/rarities", h.HandleListRarities)
	meta.Get("/families", h.HandleListFamilies)
}

// HandleListCards returns one page of cards.
// @Summary List Cards
// @Description List cards with set, search, color, type, rarity and family filters, sorting and pagination. Rows include the set and the latest price snapshot.
// @Tags cards
// @Produce json
// @Param set query string false "Set code (e.g. 'OP-09')"
// @Param search query string false "Substring match on name or code"
// @Param color query string false "Card color"
// @Param type query string false "Card type"
// @Param rarity query string false "Card rarity"
// @Param family query string false "Card family"
// @Param sort query string false "code_asc | code_desc | price_asc | price_desc | recent"
// @Param page query int false "Page number (1-based)"
// @Param pageSize query int false "Page size (max 100)"
// @Success 200 {object} ListResult "Page of cards"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /cards [get]
func (h *Handler) HandleListCards(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	opts := ListOptions{
		Set:      c.Query("set"),
		Search:   c.Query("search"),
		Color:    c.Query("color"),
		Type:     c.Query("type"),
		Rarity:   c.Query("rarity"),
		Family:   c.Query("family"),
		Sort:     c.Query("sort"),
		Page:     c.QueryInt("page", 1),
		PageSize: c.QueryInt("pageSize", defaultPageSize),
	}

	result, err := h.service.List(c.Context(), opts)
	if err != nil {
		l.Error("Card list failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(result)
}

// HandleGetCard returns one card by id.
// @Summary Get Card
// @Description Get a single card with its set and price snapshot.
// @Tags cards
// @Produce json
// @Param id path int true "Card ID"
// @Success 200 {object} models.Card "Card detail"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /cards/{id} [get]
func (h *Handler) HandleGetCard(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid card id",
		})
	}

	card, err := h.service.Get(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "card not found",
			})
		}
		l.Error("Card detail failed", zap.Int("id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(card)
}

// HandleListSets returns every set.
// @Summary List Sets
// @Tags meta
// @Produce json
// @Success 200 {array} models.Set "Sets ordered by code"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /meta/sets [get]
func (h *Handler) HandleListSets(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	sets, err := h.service.Sets(c.Context())
	if err != nil {
		l.Error("Set list failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(sets)
}

// HandleListRarities returns the distinct rarities.
// @Summary List Rarities
// @Tags meta
// @Produce json
// @Success 200 {array} string "Distinct rarities"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /meta/rarities [get]
func (h *Handler) HandleListRarities(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	values, err := h.service.Rarities(c.Context())
	if err != nil {
		l.Error("Rarity list failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(values)
}

// HandleListFamilies returns the distinct families.
// @Summary List Families
// @Tags meta
// @Produce json
// @Success 200 {array} string "Distinct families"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /meta/families [get]
func (h *Handler) HandleListFamilies(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	values, err := h.service.Families(c.Context())
	if err != nil {
		l.Error("Family list failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(values)
}
