package vehicle

import (
	"errors"
	"strings"

	"vehicle-reconciler/core/logger"
	"vehicle-reconciler/core/reconcile"
	"vehicle-reconciler/core/validator"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ReconcileBody is the payload of POST /vehicles/reconcile.
type ReconcileBody struct {
	VIN       string         `json:"vin" validate:"required"`
	Primary   map[string]any `json:"primary"`
	Secondary map[string]any `json:"secondary"`
	Save      bool           `json:"save"`
}

// OverrideBody is the payload of PATCH /vehicles/:vin/overrides.
type OverrideBody struct {
	Overrides map[string]any `json:"overrides" validate:"required,min=1"`
}

// BatchBody is the payload of POST /vehicles/batch.
type BatchBody struct {
	VINs  []string `json:"vins" validate:"omitempty,dive,vin"`
	Limit int      `json:"limit" validate:"gte=0"`
	Save  bool     `json:"save"`
}

// Handler handles HTTP requests for vehicles.
type Handler struct {
	service  *Service
	validate *validator.Validator
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) (*Handler, error) {
	v, err := validator.New(VINRule)
	if err != nil {
		return nil, err
	}
	return &Handler{service: service, validate: v}, nil
}

// RegisterRoutes registers the vehicle routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/vehicles")
	group.Post("/reconcile", h.HandleReconcile)
	group.Post("/batch", h.HandleBatch)
	group.Get("/", h.HandleList)
	group.Get("/:vin", h.HandleGet)
	group.Patch("/:vin/overrides", h.HandleOverride)
	group.Post("/:vin/replay", h.HandleReplay)
	group.Delete("/:vin", h.HandleDelete)
}

// HandleReconcile reconciles raw provider responses into a canonical record.
// @Summary Reconcile Vehicle
// @Description Merge a VIN decode response and an optional fuel-economy response.
// @Tags vehicles
// @Accept json
// @Produce json
// @Param body body ReconcileBody true "Raw provider responses"
// @Success 200 {object} models.Result "Reconciled vehicle"
// @Failure 400 {object} map[string]string "Invalid VIN or body"
// @Router /vehicles/reconcile [post]
func (h *Handler) HandleReconcile(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var body ReconcileBody
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	body.VIN = normalizeVIN(body.VIN)
	if err := h.validate.Struct(body); err != nil {
		return badRequest(c, err.Error())
	}

	result, err := h.service.Reconcile(c.UserContext(), ReconcileRequest{
		VIN:       body.VIN,
		Primary:   reconcile.RawResponse(body.Primary),
		Secondary: reconcile.RawResponse(body.Secondary),
		Save:      body.Save,
	})
	if err != nil {
		return h.fail(c, l, err)
	}
	return c.JSON(result)
}

// HandleGet returns a stored record.
// @Summary Get Vehicle
// @Tags vehicles
// @Produce json
// @Param vin path string true "Vehicle identification number"
// @Success 200 {object} models.Result "Stored vehicle"
// @Failure 404 {object} map[string]string "Not found"
// @Router /vehicles/{vin} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	vin, err := h.vinParam(c)
	if err != nil {
		return h.fail(c, l, err)
	}
	result, err := h.service.Get(c.UserContext(), vin)
	if err != nil {
		return h.fail(c, l, err)
	}
	return c.JSON(result)
}

// HandleList returns stored records, most recent first.
// @Summary List Vehicles
// @Tags vehicles
// @Produce json
// @Param limit query int false "Page size (max 500)"
// @Param offset query int false "Offset"
// @Success 200 {object} store.Page "Page of vehicles"
// @Router /vehicles [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	limit := c.QueryInt("limit", 50)
	offset := c.QueryInt("offset", 0)
	if limit < 0 || offset < 0 {
		return badRequest(c, "limit and offset must not be negative")
	}

	page, err := h.service.List(c.UserContext(), limit, offset)
	if err != nil {
		return h.fail(c, l, err)
	}
	return c.JSON(page)
}

// HandleOverride applies manual values to a stored record.
// @Summary Override Vehicle Fields
// @Tags vehicles
// @Accept json
// @Produce json
// @Param vin path string true "Vehicle identification number"
// @Param body body OverrideBody true "Canonical field values"
// @Success 200 {object} models.Result "Updated vehicle"
// @Failure 400 {object} map[string]string "Unknown field or invalid value"
// @Failure 404 {object} map[string]string "Not found"
// @Router /vehicles/{vin}/overrides [patch]
func (h *Handler) HandleOverride(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	vin, err := h.vinParam(c)
	if err != nil {
		return h.fail(c, l, err)
	}
	var body OverrideBody
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := h.validate.Struct(body); err != nil {
		return badRequest(c, err.Error())
	}

	result, err := h.service.Override(c.UserContext(), vin, body.Overrides)
	if err != nil {
		return h.fail(c, l, err)
	}
	return c.JSON(result)
}

// HandleReplay reconciles a vehicle again from its archived responses.
// @Summary Replay Vehicle
// @Tags vehicles
// @Produce json
// @Param vin path string true "Vehicle identification number"
// @Param save query boolean false "Persist the result"
// @Success 200 {object} models.Result "Reconciled vehicle"
// @Failure 404 {object} map[string]string "Nothing archived"
// @Failure 503 {object} map[string]string "Object storage not configured"
// @Router /vehicles/{vin}/replay [post]
func (h *Handler) HandleReplay(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	vin, err := h.vinParam(c)
	if err != nil {
		return h.fail(c, l, err)
	}
	result, err := h.service.Replay(c.UserContext(), vin, c.QueryBool("save", false))
	if err != nil {
		return h.fail(c, l, err)
	}
	return c.JSON(result)
}

// HandleBatch replays archived vehicles concurrently.
// @Summary Replay Archived Vehicles
// @Description Reconciles archived vehicles again. This operation may take a long time.
// @Tags vehicles
// @Accept json
// @Produce json
// @Param body body BatchBody false "Selection"
// @Success 200 {object} BatchReport "Batch report"
// @Failure 400 {object} map[string]string "Invalid selection"
// @Failure 503 {object} map[string]string "Object storage not configured"
// @Router /vehicles/batch [post]
func (h *Handler) HandleBatch(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var body BatchBody
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&body); err != nil {
			return badRequest(c, "invalid request body")
		}
	}
	for i := range body.VINs {
		body.VINs[i] = normalizeVIN(body.VINs[i])
	}
	if err := h.validate.Struct(body); err != nil {
		return badRequest(c, err.Error())
	}

	l.Info("Starting batch replay", zap.Int("requested", len(body.VINs)), zap.Bool("save", body.Save))
	report, err := h.service.ReplayBatch(c.UserContext(), BatchOptions{VINs: body.VINs, Limit: body.Limit, Save: body.Save})
	if err != nil {
		return h.fail(c, l, err)
	}
	return c.JSON(report)
}

// HandleDelete removes a stored record and its archive.
// @Summary Delete Vehicle
// @Tags vehicles
// @Param vin path string true "Vehicle identification number"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Not found"
// @Router /vehicles/{vin} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	vin, err := h.vinParam(c)
	if err != nil {
		return h.fail(c, l, err)
	}
	if err := h.service.Delete(c.UserContext(), vin); err != nil {
		return h.fail(c, l, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) vinParam(c *fiber.Ctx) (string, error) {
	vin := normalizeVIN(c.Params("vin"))
	if err := ValidateVIN(vin); err != nil {
		return "", err
	}
	return vin, nil
}

// fail maps service errors onto HTTP statuses.
func (h *Handler) fail(c *fiber.Ctx, l *zap.Logger, err error) error {
	switch {
	case IsValidationError(err):
		return badRequest(c, err.Error())
	case errors.Is(err, ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, ErrStoreUnavailable), errors.Is(err, ErrArchiveUnavailable):
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
	default:
		l.Error("Vehicle request failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
}

// normalizeVIN trims and upper-cases user input. The engine itself only accepts uppercase.
func normalizeVIN(vin string) string {
	return strings.ToUpper(strings.TrimSpace(vin))
}
