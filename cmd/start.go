package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"vehicle-reconciler/core/loader"
	"vehicle-reconciler/core/middleware/auth"
	"vehicle-reconciler/core/middleware/rayid"
	"vehicle-reconciler/core/middleware/requestlog"
	"vehicle-reconciler/feature/integrity"
	"vehicle-reconciler/feature/vehicle"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "vehicle-reconciler/docs/swagger"
)

// @title Vehicle Reconciler API
// @version 1.0
// @description Reconciles VIN decode and fuel-economy responses into canonical vehicle records.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// Paths served without an API key.
const (
	healthPath  = "/health"
	swaggerPath = "/swagger/*"
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the vehicle reconciler server",
	Long: `Starts the HTTP server and initializes all enabled features.
The database and object storage are optional; endpoints that need them answer 503 when they are missing.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		d, err := bootstrap(ctx, optional, optional)
		if err != nil {
			return err
		}
		defer d.sync()
		zap.ReplaceGlobals(d.log)

		if err := d.migrate(); err != nil {
			return err
		}

		app, err := newApp(d)
		if err != nil {
			return err
		}

		go func() {
			d.log.Info("Starting server", zap.String("port", d.cfg.Server.Port))
			if err := app.Listen(":" + d.cfg.Server.Port); err != nil {
				d.log.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		d.log.Info("Shutting down server...")
		return app.Shutdown()
	},
}

// newApp builds the Fiber application with middleware and features registered.
func newApp(d *deps) (*fiber.App, error) {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		BodyLimit:             d.cfg.Server.BodyLimit(),
		ReadTimeout:           d.cfg.Server.ReadTimeout(),
	})

	// RayID first so every later entry carries it.
	app.Use(rayid.New())
	app.Use(requestlog.New(d.log))
	app.Use(auth.New(auth.Config{ApiKey: d.cfg.Server.ApiKey, Skip: []string{healthPath, swaggerPath}}))

	app.Get(swaggerPath, swagger.HandlerDefault)

	app.Get(healthPath, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":   "ok",
			"database": d.db != nil,
			"storage":  d.client != nil,
		})
	})

	mgr := loader.NewManager(d.log)
	mgr.Register(vehicle.NewFeature(d.client, d.cfg.Storage, d.db, d.cfg.Reconcile, d.log))
	mgr.Register(integrity.NewFeature(d.client, d.cfg.Storage, d.db, d.log))

	if err := mgr.LoadAll(app); err != nil {
		return nil, fmt.Errorf("failed to load features: %w", err)
	}
	return app, nil
}

func init() {
	RootCmd.AddCommand(startCmd)
}
