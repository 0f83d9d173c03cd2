package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/ajcportal/careerhub/pkg/errx"
	"github.com/ajcportal/careerhub/pkg/logx"
	"github.com/ajcportal/careerhub/recruitment/job/jobapi"
	"github.com/ajcportal/careerhub/recruitment/matching/matchingapi"
	"github.com/ajcportal/careerhub/recruitment/notification/notifyapi"
	"github.com/ajcportal/careerhub/recruitment/recruiter/recruiterapi"
	"github.com/ajcportal/careerhub/recruitment/student/studentapi"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Environment and Logger
	if err := godotenv.Load(); err != nil {
		logx.Debugf("No .env file loaded: %v", err)
	}
	logx.SetLevel(logx.LevelInfo)
	logx.Info("Starting CareerHub API Server...")

	// 2. Initialize Dependency Container
	container := NewContainer()
	defer container.DB.Close()
	defer container.Redis.Close()

	// 3. Create Fiber App with Config
	app := fiber.New(fiber.Config{
		AppName:               "CareerHub API",
		DisableStartupMessage: true,
		BodyLimit:             50 * 1024 * 1024, // resume archives
		ErrorHandler:          globalErrorHandler,
	})

	// 4. Global Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*", // Configure for production
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, DELETE, PATCH, HEAD",
	}))
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	// 5. Health Check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
			"db":     container.DB.Ping() == nil,
			"redis":  container.Redis.Ping(c.Context()).Err() == nil,
		})
	})

	// 6. Register Routes

	// Recruiter auth: /api/recruiter/signup, /api/recruiter/login
	recruiterapi.RegisterRoutes(app, container.RecruiterHandlers)

	// Jobs: /api/recruiter/*
	jobapi.RegisterRoutes(app, container.JobHandlers, container.AuthMiddleware)

	// Students: /api/student/*
	studentapi.RegisterRoutes(app, container.StudentHandlers, container.AuthMiddleware)

	// Digest mail: /api/send-mail
	notifyapi.RegisterRoutes(app, container.NotificationHandlers, container.AuthMiddleware)

	// Match runs: /api/matching/runs*
	matchingapi.RegisterRoutes(app, container.MatchingHandlers, container.AuthMiddleware)

	// 7. Start Queue Workers
	workerCtx, stopWorkers := context.WithCancel(context.Background())
	container.RunWorker.Start(workerCtx)

	// 8. Start Server with Graceful Shutdown
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	go func() {
		logx.Infof("Server listening on port %s", port)
		if err := app.Listen(":" + port); err != nil {
			logx.Fatalf("Server error: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c
	logx.Info("Shutting down server...")
	stopWorkers()

	if err := app.Shutdown(); err != nil {
		logx.Errorf("Server forced to shutdown: %v", err)
	}

	logx.Info("Server exited")
}

// globalErrorHandler converts internal errors to standard HTTP responses
func globalErrorHandler(c *fiber.Ctx, err error) error {
	// If it's a Fiber error (e.g., 404 handler not found)
	if e, ok := err.(*fiber.Error); ok {
		return c.Status(e.Code).JSON(fiber.Map{
			"error": e.Message,
			"code":  e.Code,
		})
	}

	// If it's our custom errx.Error
	if e, ok := err.(*errx.Error); ok {
		return c.Status(e.HTTPStatus).JSON(e.ToHTTPResponse())
	}

	// Default unknown error
	logx.Errorf("Internal Server Error: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error":   "Internal Server Error",
		"type":    "INTERNAL",
		"code":    "INTERNAL_ERROR",
		"message": "An unexpected error occurred",
	})
}
