package app

import (
	"fmt"
	"net/http"

	"github.com/DIMO-Network/messenger-relay/internal/clients/dialogflow"
	"github.com/DIMO-Network/messenger-relay/internal/clients/sendapi"
	"github.com/DIMO-Network/messenger-relay/internal/config"
	"github.com/DIMO-Network/messenger-relay/internal/controllers/messenger"
	"github.com/DIMO-Network/messenger-relay/internal/services/relay"
	"github.com/DIMO-Network/server-garage/pkg/fibercommon"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// CreateServers builds the outbound clients, the relay and the API server.
func CreateServers(settings *config.Settings, logger zerolog.Logger) (*fiber.App, *relay.Relay, error) {
	httpClient := &http.Client{Timeout: settings.OutboundTimeout}

	sender, err := sendapi.New(settings.Facebook.GraphAPIURL, settings.Facebook.PageAccessToken, httpClient)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create send API client: %w", err)
	}

	var intents relay.IntentDetector
	if settings.EchoMode() {
		logger.Warn().Msg("No Dialogflow client access token configured, echoing user messages")
	} else {
		dfClient, err := dialogflow.New(settings.Dialogflow.APIURL, settings.Dialogflow.ProtocolVersion,
			settings.Dialogflow.ClientAccessToken, settings.Dialogflow.Lang, httpClient)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create dialogflow client: %w", err)
		}
		intents = dfClient
	}

	msgRelay := relay.New(intents, sender)
	app := CreateFiberApp(logger, msgRelay, settings)
	return app, msgRelay, nil
}

// CreateFiberApp sets up the API routes.
func CreateFiberApp(logger zerolog.Logger, forwarder messenger.Forwarder, settings *config.Settings) *fiber.App {
	logger.Info().Msg("Starting Messenger Relay...")

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return fibercommon.ErrorHandler(c, err)
		},
		DisableStartupMessage: true,
	})
	app.Use(fibercommon.ContextLoggerMiddleware)

	messengerController := messenger.NewController(settings.Facebook.VerifyToken, forwarder)
	logger.Info().Msg("Registering routes...")

	app.Get("/", messengerController.Info)
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"data": "Server is up and running",
		})
	})

	app.Get("/fb_webhook", messengerController.VerifyWebhook)
	app.Post("/fb_webhook", messengerController.ReceiveEvents)

	return app
}
