package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"github.com/localnerve/swipefile/internal/config"
	"github.com/localnerve/swipefile/internal/database"
	"github.com/localnerve/swipefile/internal/handlers"
	"github.com/localnerve/swipefile/internal/integrations/facebook"
	"github.com/localnerve/swipefile/internal/integrations/gdrive"
	"github.com/localnerve/swipefile/internal/integrations/openai"
	"github.com/localnerve/swipefile/internal/logger"
	"github.com/localnerve/swipefile/internal/services"

	_ "github.com/localnerve/swipefile/docs/api" // Swagger docs
)

// @title Swipefile API
// @version 1.0.0
// @description Competitor ad swipe file, creative production pipeline and ad attribution
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url https://github.com/localnerve/swipefile
// @contact.email info@localnerve.com

// @license.name AGPL-3.0
// @license.url https://www.gnu.org/licenses/agpl-3.0.html

// @host localhost:3000
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name cookie_session

const shutdownTimeout = 20 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(logger.Options{
		Mode:       cfg.LogMode,
		Level:      cfg.LogLevel,
		File:       cfg.LogFile,
		MaxSizeMB:  cfg.LogMaxSizeMB,
		MaxBackups: cfg.LogMaxBackups,
		MaxAgeDays: cfg.LogMaxAgeDays,
		Compress:   cfg.LogCompress,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	db, err := database.Connect(cfg, log)
	if err != nil {
		log.Fatal("Failed to connect to database", "error", err)
	}
	defer database.Close(db)

	if err := database.AutoMigrate(db); err != nil {
		log.Fatal("Failed to run migrations", "error", err)
	}
	if err := database.Seed(db); err != nil {
		log.Fatal("Failed to seed taxonomy", "error", err)
	}

	integrations := buildIntegrations(cfg, log)

	runner := services.NewScanRunner(db, log, integrations.Google, cfg.ScanWorkers)
	if n, err := runner.RecoverInterrupted(context.Background()); err != nil {
		log.Error("Failed to recover interrupted scan jobs", "error", err)
	} else if n > 0 {
		log.Warn("Marked interrupted scan jobs as failed", "count", n)
	}

	deps := &handlers.Deps{
		Config:       cfg,
		DB:           db,
		Log:          log,
		Integrations: integrations,
		Runner:       runner,
		HTTPClient:   &http.Client{Timeout: 2 * time.Minute},
	}
	if cfg.AuthorizationEnabled() {
		authz, err := services.NewAuthorizer(context.Background(), cfg, "http://localhost:"+cfg.Port, log)
		if err != nil {
			log.Fatal("Failed to initialize authorizer", "error", err)
		}
		deps.Admin = authz
	}

	scheduler := startSync(cfg, db, integrations, log)

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler,
		// creator uploads carry raw video
		BodyLimit: 512 << 20,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(compress.New(compress.Config{
		Next: func(c *fiber.Ctx) bool {
			return strings.HasSuffix(c.Path(), "/stream")
		},
	}))
	app.Use(cors.New())

	// Prometheus metrics
	prometheus := fiberprometheus.New("swipefile")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	handlers.Register(app.Group("/api"), deps)

	// 404 handler
	app.Use(handlers.NotFound)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-quit
		log.Info("Gracefully shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if scheduler != nil {
			<-scheduler.Stop().Done()
		}
		if err := runner.Shutdown(ctx); err != nil {
			log.Warn("Scan jobs did not stop in time", "error", err)
		}
		_ = app.ShutdownWithContext(ctx)
	}()

	log.Info("Starting server", "port", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server", "error", err)
	}

	log.Info("Server stopped")
}

// buildIntegrations creates the platform clients that are configured; the rest stay nil
func buildIntegrations(cfg *config.Config, log *logger.Logger) services.Integrations {
	var in services.Integrations

	if cfg.GoogleEnabled() {
		in.Google = services.GoogleConnector{
			Connector: gdrive.NewConnector(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleRedirectURL),
		}
	} else {
		log.Info("Google Drive integration disabled")
	}

	if cfg.FacebookGraphVersion != "" {
		in.Facebook = facebook.NewClient(cfg.FacebookGraphVersion, cfg.FacebookDatePreset)
	}

	if cfg.OpenAIAPIKey != "" {
		in.AI = openai.NewClient(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.OpenAITranscribeModel)
	} else {
		log.Info("OpenAI integration disabled")
	}

	return in
}

// startSync schedules the periodic Facebook insights sync when a schedule is set
func startSync(cfg *config.Config, db *gorm.DB, in services.Integrations, log *logger.Logger) *cron.Cron {
	if cfg.FacebookSyncSchedule == "" || in.Facebook == nil {
		return nil
	}

	scheduler := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	_, err := scheduler.AddFunc(cfg.FacebookSyncSchedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
		defer cancel()

		results, err := services.SyncAllBrands(ctx, db, in.Facebook, log, cfg.FacebookSyncConcurrency)
		if err != nil {
			log.Error("Scheduled facebook sync failed", "error", err)
			return
		}
		log.Info("Scheduled facebook sync finished", "brands", len(results))
	})
	if err != nil {
		log.Fatal("Invalid FACEBOOK_SYNC_SCHEDULE", "schedule", cfg.FacebookSyncSchedule, "error", err)
	}

	scheduler.Start()
	log.Info("Facebook sync scheduled", "schedule", cfg.FacebookSyncSchedule)
	return scheduler
}
