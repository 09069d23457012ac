package api

import (
	"log/slog"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	config "github.com/maheshrc27/contentops/configs"
	"github.com/maheshrc27/contentops/internal/api/handlers"
	"github.com/maheshrc27/contentops/internal/api/middleware"
	"github.com/maheshrc27/contentops/internal/models"
	"github.com/maheshrc27/contentops/internal/service"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Services groups everything the HTTP layer depends on.
type Services struct {
	Auth      service.AuthService
	Users     service.UserService
	Projects  service.ProjectService
	Contents  service.ContentService
	Videos    service.VideoService
	Schedules service.ScheduleService
	Accounts  service.AccountService
	Prompts   service.PromptService
	AIModels  service.AIModelService
	Costs     service.CostService
	Activity  service.ActivityService
	Dashboard service.DashboardService
	Storage   service.StorageService
	Webhooks  service.WebhookService
}

func NewApp(cfg *config.Config, s Services) *fiber.App {
	app := fiber.New(fiber.Config{
		ReadTimeout:  10 * time.Minute,
		WriteTimeout: 10 * time.Minute,
		BodyLimit:    service.MaxUploadSize + 1<<20,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if fe, ok := err.(*fiber.Error); ok {
				code = fe.Code
			}
			if code >= fiber.StatusInternalServerError {
				slog.Error(err.Error(), "path", c.Path())
			}
			return c.Status(code).JSON(fiber.Map{"error": err.Error()})
		},
	})

	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     strings.TrimRight(cfg.FrontendURL, "/"),
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, " + middleware.SecretHeader,
		AllowCredentials: true,
		MaxAge:           3600,
	}))
	app.Use(middleware.Metrics())

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	auth := handlers.NewAuthHandler(cfg, s.Auth)
	app.Get("/login", auth.Login)
	app.Get("/login/callback", auth.LoginCallbackHandler)
	app.Post("/logout", auth.Logout)

	authMiddleware := middleware.NewAuthMiddleware(cfg)

	api := app.Group("/api", authMiddleware.AuthMiddleware(), middleware.ReadOnlyViewers())

	user := handlers.NewUserHandler(s.Users)
	api.Get("/me", user.GetUserInfo)
	user.Register(api.Group("/users", middleware.RequireRole(models.RoleAdmin)))

	handlers.NewProjectHandler(s.Projects).Register(api.Group("/projects"))
	handlers.NewContentHandler(s.Contents).Register(api.Group("/contents"))
	handlers.NewVideoHandler(s.Videos).Register(api.Group("/videos"))

	schedules := handlers.NewScheduleHandler(s.Schedules)
	schedules.Register(api.Group("/schedules"))
	api.Get("/calendar", schedules.Calendar)

	accounts := handlers.NewAccountHandler(s.Accounts)
	api.Get("/accounts/:id/token", middleware.AutomationOnly(), accounts.AccessToken)
	accounts.Register(api.Group("/accounts"))
	handlers.NewPromptHandler(s.Prompts).Register(api.Group("/prompts"))

	aiModels := handlers.NewAIModelHandler(s.AIModels)
	aiModels.RegisterModels(api.Group("/ai-models"))
	aiModels.RegisterConfigs(api.Group("/model-configs"))

	handlers.NewCostHandler(s.Costs).Register(api.Group("/costs"))
	api.Get("/activity-logs", handlers.NewActivityHandler(s.Activity).List)
	api.Get("/dashboard/stats", handlers.NewDashboardHandler(s.Dashboard).Stats)

	if s.Storage != nil {
		api.Post("/media", handlers.NewMediaHandler(s.Storage).Upload)
	}

	handlers.NewWebhookHandler(s.Webhooks).Register(api.Group("/webhook"))

	return app
}
