package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/chenhoward456-hash/coach-system/internal/logger"
	"github.com/chenhoward456-hash/coach-system/internal/middleware"
	"github.com/chenhoward456-hash/coach-system/internal/routes"
	"github.com/chenhoward456-hash/coach-system/internal/services"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API and the weekly reflection reminder",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return serve(ctx)
	},
}

func newApp() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "coachsys",
		ErrorHandler:          middleware.ErrorHandler,
		DisableStartupMessage: true,
	})
	app.Use(middleware.RequestLogger())
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	routes.Setup(app)
	return app
}

// serve runs the API and the reminder loop until ctx is cancelled or one
// of them fails.
func serve(ctx context.Context) error {
	if err := services.InitPush(ctx, cfg.FCMServiceAccount); err != nil {
		return err
	}

	app := newApp()
	reminder := services.NewReminder(cfg.ReminderInterval, cfg.Location(), services.Push)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Log.Info("listening", "port", cfg.Port)
		return app.Listen(":" + cfg.Port)
	})
	g.Go(func() error {
		return reminder.Run(ctx)
	})
	g.Go(func() error {
		<-ctx.Done()
		logger.Log.Info("shutting down")
		return app.ShutdownWithTimeout(shutdownTimeout)
	})
	return g.Wait()
}
