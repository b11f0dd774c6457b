package integrity

import (
	"errors"

	"vehicle-reconciler/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for integrity checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/integrity")
	group.Get("/", h.HandleIntegrityCheck)
	group.Get("/storage", h.HandleStorageCheck)
	group.Get("/schema", h.HandleSchemaCheck)
}

// HandleIntegrityCheck triggers all integrity checks.
// @Summary Run All Integrity Checks
// @Description Performs all available integrity checks (Storage, Schema).
// @Tags integrity
// @Produce json
// @Success 200 {object} map[string]interface{} "Combined Report"
// @Router /integrity [get]
func (h *Handler) HandleIntegrityCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering all integrity checks")

	report := make(map[string]interface{})

	if storageReport, err := h.service.CheckStorage(c.UserContext()); err != nil {
		report["storage"] = statusOf(err)
	} else {
		report["storage"] = storageReport
	}

	if schemaReport, err := h.service.CheckSchema(); err != nil {
		report["schema"] = statusOf(err)
	} else {
		report["schema"] = schemaReport
	}

	return c.JSON(report)
}

// HandleStorageCheck checks and optionally fixes the archive.
// @Summary Check Storage
// @Description Checks the raw response archive in the storage bucket. Optionally creates the archive folder.
// @Tags integrity
// @Produce json
// @Param fix query boolean false "Create the archive folder"
// @Success 200 {object} checks.StorageReport "Storage Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/storage [get]
func (h *Handler) HandleStorageCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	fix := c.QueryBool("fix", false)

	report, err := h.service.CheckStorage(c.UserContext())
	if err != nil {
		l.Error("Storage check failed", zap.Error(err))
		return failure(c, err)
	}

	if !report.PrefixExists {
		l.Warn("Archive folder missing", zap.String("prefix", report.Prefix))
		if fix {
			l.Info("Attempting to create archive folder")
			if err := h.service.FixStorage(c.UserContext()); err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"error":   "Failed to fix storage",
					"details": err.Error(),
				})
			}
			report.PrefixExists = true
		}
	}
	if len(report.Incomplete) > 0 {
		l.Warn("Archived vehicles without primary response", zap.Strings("vins", report.Incomplete))
	}

	return c.JSON(report)
}

// HandleSchemaCheck checks and optionally migrates the database schema.
// @Summary Check Schema
// @Description Checks if the database schema matches the vehicle store models. Optionally migrates it.
// @Tags integrity
// @Produce json
// @Param fix query boolean false "Run migrations"
// @Success 200 {object} checks.SchemaReport "Schema Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/schema [get]
func (h *Handler) HandleSchemaCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Starting schema check")

	report, err := h.service.CheckSchema()
	if err != nil {
		l.Error("Schema check failed", zap.Error(err))
		return failure(c, err)
	}

	if !report.Matched && c.QueryBool("fix", false) {
		l.Info("Migrating vehicle tables")
		if err := h.service.FixSchema(); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error":   "Failed to migrate schema",
				"details": err.Error(),
			})
		}
		if report, err = h.service.CheckSchema(); err != nil {
			return failure(c, err)
		}
	}

	return c.JSON(report)
}

func statusOf(err error) fiber.Map {
	if errors.Is(err, ErrNoStorage) || errors.Is(err, ErrNoDatabase) {
		return fiber.Map{"status": "disabled"}
	}
	return fiber.Map{"status": "error", "error": err.Error()}
}

func failure(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	if errors.Is(err, ErrNoStorage) || errors.Is(err, ErrNoDatabase) {
		status = fiber.StatusServiceUnavailable
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
