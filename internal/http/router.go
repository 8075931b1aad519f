package http

import (
	"time"

	"github.com/campaign-studio/backend/internal/config"
	"github.com/campaign-studio/backend/internal/http/handlers"
	"github.com/campaign-studio/backend/internal/middleware"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func SetupRouter(
	app *fiber.App,
	cfg *config.Config,
	log *zap.Logger,
	rdb *redis.Client,
	workflowHandler *handlers.WorkflowHandler,
	campaignHandler *handlers.CampaignHandler,
	wsHub *handlers.WSHub,
) {
	// Global middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Request-ID",
	}))
	app.Use(middleware.RequestIDMiddleware())
	app.Use(middleware.LoggerMiddleware(log))

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api/v1")

	// Rate-limited public endpoints
	api.Use(middleware.RateLimitMiddleware(rdb, 100, time.Minute))

	// Meta (public, no auth required)
	metaHandler := handlers.NewMetaHandler()
	api.Get("/meta/campaign-types", metaHandler.GetCampaignTypes)
	api.Get("/meta/objectives", metaHandler.GetObjectives)
	api.Get("/meta/options", metaHandler.GetOptions)

	// Session start (public, returns the session token)
	api.Post("/workflows", workflowHandler.StartWorkflow)

	// Protected endpoints
	protected := api.Group("", middleware.AuthMiddleware(cfg, log))

	// Workflow
	protected.Get("/workflows/current", workflowHandler.GetState)
	protected.Post("/workflows/advance", workflowHandler.Advance)
	protected.Post("/workflows/back", workflowHandler.Back)
	protected.Post("/workflows/abandon", workflowHandler.Abandon)
	protected.Get("/workflows/history", workflowHandler.History)

	// Post-creation listing
	protected.Get("/campaigns", campaignHandler.ListCampaigns)

	// WebSocket
	app.Use("/ws", handlers.WSUpgradeMiddleware())
	app.Get("/ws", websocket.New(wsHub.HandleWS))
}
