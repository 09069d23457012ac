package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"
	config "github.com/maheshrc27/contentops/configs"
	"github.com/maheshrc27/contentops/internal/api"
	"github.com/maheshrc27/contentops/internal/database"
	job "github.com/maheshrc27/contentops/internal/jobs"
	"github.com/maheshrc27/contentops/internal/logger"
	"github.com/maheshrc27/contentops/internal/queue"
	"github.com/maheshrc27/contentops/internal/repository"
	"github.com/maheshrc27/contentops/internal/service"
	"github.com/maheshrc27/contentops/internal/webhook"
	"github.com/robfig/cron"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Failed to load environment variables", err)
	}

	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	logger.Init(cfg.Log)

	ctx := context.Background()

	db, err := database.Open(ctx, cfg.PostgresURI)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(ctx, db); err != nil {
		log.Fatalf("Failed to apply schema: %v", err)
	}

	redisConn := asynq.RedisClientOpt{Addr: cfg.RedisURI}
	client := asynq.NewClient(redisConn)
	defer client.Close()

	userRepo := repository.NewUserRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	contentRepo := repository.NewContentRepository(db)
	videoRepo := repository.NewVideoRepository(db)
	scheduleRepo := repository.NewScheduleRepository(db)
	accountRepo := repository.NewAccountRepository(db)
	promptRepo := repository.NewPromptRepository(db)
	aiModelRepo := repository.NewAIModelRepository(db)
	modelConfigRepo := repository.NewModelConfigRepository(db)
	costLogRepo := repository.NewCostLogRepository(db)
	activityRepo := repository.NewActivityLogRepository(db)

	dispatcher := queue.NewDispatcher(client)

	var youtubeService service.YoutubeService
	if cfg.YoutubeAPIKey != "" {
		youtubeService, err = service.NewYoutubeService(ctx, cfg.YoutubeAPIKey)
		if err != nil {
			slog.Warn("youtube lookups disabled", "error", err)
			youtubeService = nil
		}
	}

	var storageService service.StorageService
	if cfg.R2.BucketName != "" {
		r2, err := service.R2Client(ctx, cfg.R2)
		if err != nil {
			log.Fatalf("Failed to configure R2: %v", err)
		}
		storageService = service.NewR2Service(r2, cfg.R2)
	}

	app := api.NewApp(cfg, api.Services{
		Auth:      service.NewAuthService(cfg, userRepo),
		Users:     service.NewUserService(userRepo, activityRepo),
		Projects:  service.NewProjectService(projectRepo, activityRepo),
		Contents:  service.NewContentService(contentRepo, projectRepo, activityRepo, dispatcher),
		Videos:    service.NewVideoService(videoRepo, projectRepo, activityRepo, dispatcher),
		Schedules: service.NewScheduleService(scheduleRepo, contentRepo, videoRepo, projectRepo, activityRepo, cfg.Location()),
		Accounts:  service.NewAccountService(accountRepo, activityRepo, youtubeService, cfg.SecretKey),
		Prompts:   service.NewPromptService(promptRepo, activityRepo),
		AIModels:  service.NewAIModelService(aiModelRepo, modelConfigRepo, activityRepo),
		Costs:     service.NewCostService(costLogRepo, aiModelRepo, cfg.UsdToVnd),
		Activity:  service.NewActivityService(activityRepo),
		Dashboard: service.NewDashboardService(contentRepo, videoRepo),
		Storage:   storageService,
		Webhooks:  service.NewWebhookService(dispatcher, activityRepo),
	})

	// cron jobs
	c := cron.New()
	if cfg.EngagementRefresh != "off" {
		refreshJob := job.NewEngagementRefreshJob(dispatcher)
		if err := c.AddFunc(cfg.EngagementRefresh, refreshJob.Refresh); err != nil {
			log.Fatalf("Invalid ENGAGEMENT_REFRESH schedule: %v", err)
		}
	}
	c.Start()
	defer c.Stop()

	//queue
	webhookClient := webhook.NewClient(cfg.Webhook.BaseURL,
		webhook.WithSecret(cfg.Webhook.Secret),
		webhook.WithHTTPClient(&http.Client{Timeout: cfg.Webhook.Timeout}),
	)
	queueW := queue.NewQueue(webhookClient, activityRepo)

	server := asynq.NewServer(redisConn, asynq.Config{
		Concurrency: 10,
	})
	mux := asynq.NewServeMux()
	mux.HandleFunc(queue.TaskTypeDispatchWebhook, queueW.HandleDispatchTask)

	log.Println("Starting the Asynq server...")
	if err := server.Start(mux); err != nil {
		log.Fatalf("Could not start Asynq server: %v", err)
	}

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()
	log.Printf("Server is running on http://localhost:%s", cfg.Port)

	gracefulShutdown(app, server, db)
}

func closeDB(db *sql.DB) {
	fmt.Fprint(os.Stdout, "Closing database connection... ")
	if err := db.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to close database: %v", err)
		return
	}
	fmt.Fprintln(os.Stdout, "Done")
}

func gracefulShutdown(app *fiber.App, server *asynq.Server, db *sql.DB) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Println("Shutting down server...")

	if err := app.ShutdownWithTimeout(30 * time.Second); err != nil {
		log.Fatalf("Failed to shut down server: %v", err)
	}
	server.Shutdown()

	closeDB(db)
	log.Println("Server shutdown complete.")
}
