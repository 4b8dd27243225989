package app

import (
	"context"
	"fmt"

	"github.com/DIMO-Network/server-garage/pkg/fibercommon"
	"github.com/DIMO-Network/shared/pkg/db"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	_ "github.com/karimi-wahid/landmark-user-sync/docs" // Import Swagger docs
	"github.com/karimi-wahid/landmark-user-sync/internal/auth"
	"github.com/karimi-wahid/landmark-user-sync/internal/clients/clerk"
	"github.com/karimi-wahid/landmark-user-sync/internal/config"
	"github.com/karimi-wahid/landmark-user-sync/internal/controllers"
	"github.com/karimi-wahid/landmark-user-sync/internal/controllers/userwebhook"
	"github.com/karimi-wahid/landmark-user-sync/internal/services/usersrepo"
	"github.com/rs/zerolog"
)

// CreateServers connects to the database and external clients and builds the API server.
func CreateServers(ctx context.Context, settings *config.Settings, logger zerolog.Logger) (*fiber.App, error) {
	store := db.NewDbConnectionFromSettings(ctx, &settings.DB, true)
	store.WaitForDB(logger)

	repo := usersrepo.NewRepository(store.DBS().Writer.DB)

	verifier, err := auth.NewWebhookVerifier(settings.ClerkWebhookSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to create webhook verifier: %w", err)
	}

	clerkClient, err := clerk.New(settings.ClerkAPIURL, settings.ClerkSecretKey, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create clerk client: %w", err)
	}

	return CreateFiberApp(logger, verifier, repo, clerkClient, settings), nil
}

// CreateFiberApp sets up the API routes.
func CreateFiberApp(logger zerolog.Logger,
	verifier userwebhook.Verifier,
	repo userwebhook.UserRepository,
	metadata userwebhook.MetadataWriter,
	settings *config.Settings) *fiber.App {
	logger.Info().Msg("Starting User Sync API...")

	app := fiber.New(fiber.Config{
		ErrorHandler:          controllers.ErrorHandler,
		DisableStartupMessage: true,
	})
	app.Use(fibercommon.ContextLoggerMiddleware)

	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"data": "Server is up and running",
		})
	})

	userWebhookController := userwebhook.NewController(verifier, repo, metadata, settings.MetadataIDKey)
	logger.Info().Msg("Registering routes...")

	app.Post("/api/webhooks", userWebhookController.HandleUserEvent)
	app.Post("/v1/webhooks/clerk", userWebhookController.HandleUserEvent)

	return app
}
