package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/Abraxas-365/laboral/assistant/assistantapi"
	"github.com/Abraxas-365/laboral/internal/metrics"
	"github.com/Abraxas-365/laboral/labor/contract/contractapi"
	"github.com/Abraxas-365/laboral/labor/holiday/holidayapi"
	"github.com/Abraxas-365/laboral/labor/vacation/vacationapi"
	"github.com/Abraxas-365/laboral/labor/workentry/workentryapi"
	"github.com/Abraxas-365/laboral/pkg/errx/errxfiber"
	"github.com/Abraxas-365/laboral/pkg/iam/auth/authapi"
	"github.com/Abraxas-365/laboral/pkg/logx"
)

// maxBodySize leaves room for contract uploads
const maxBodySize = 12 << 20

func newApp(container *Container) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "Laboral API",
		DisableStartupMessage: true,
		BodyLimit:             maxBodySize,
		ErrorHandler:          errxfiber.ErrorHandler,
	})

	// Global Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, DELETE, PATCH, HEAD",
	}))
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
			"db":     container.DB.Ping() == nil,
			"redis":  container.Redis != nil && container.Redis.Ping(c.Context()).Err() == nil,
		})
	})
	app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))

	// /api/auth/*
	authapi.RegisterRoutes(app, container.AuthHandlers, container.AuthMiddleware)

	// /api/holidays
	holidayapi.RegisterRoutes(app, container.HolidayHandlers)

	// /api/vacations/*
	vacationapi.RegisterRoutes(app, container.VacationHandlers, container.AuthMiddleware)

	// /api/contracts/*
	contractapi.RegisterRoutes(app, container.ContractHandlers, container.AuthMiddleware)

	// /api/labor/*
	workentryapi.RegisterRoutes(app, container.WorkEntryHandlers, container.AuthMiddleware)

	// /api/ai/*
	assistantapi.RegisterRoutes(app, container.AssistantHandlers, container.AuthMiddleware)

	return app
}

// serve runs the HTTP server until SIGINT or SIGTERM
func serve(container *Container) error {
	app := newApp(container)
	port := container.Config.Port

	errCh := make(chan error, 1)
	go func() {
		logx.Infof("Server listening on port %s", port)
		errCh <- app.Listen(":" + port)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case <-quit:
	}

	logx.Info("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		logx.Errorf("Server forced to shutdown: %v", err)
	}
	logx.Info("Server exited")
	return nil
}
