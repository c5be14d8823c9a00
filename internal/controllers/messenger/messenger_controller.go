package messenger

import (
	"context"
	"crypto/subtle"

	"github.com/DIMO-Network/messenger-relay/internal/services/relay"
	"github.com/DIMO-Network/server-garage/pkg/richerrors"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

const (
	// EventReceived is the acknowledgement body for accepted webhook events.
	EventReceived = "EVENT_RECEIVED"

	subscribeMode = "subscribe"
	serviceInfo   = "Backend server for messenger chatbot implementation"
)

// Forwarder relays a user's text without blocking the caller.
type Forwarder interface {
	Forward(ctx context.Context, senderID, text string) *relay.Delivery
}

// Controller handles the Messenger webhook.
type Controller struct {
	verifyToken string
	forwarder   Forwarder
}

// NewController creates a new Controller.
func NewController(verifyToken string, forwarder Forwarder) *Controller {
	return &Controller{
		verifyToken: verifyToken,
		forwarder:   forwarder,
	}
}

// Info describes the service with links built from the request Host header.
func (m *Controller) Info(c *fiber.Ctx) error {
	host := string(c.Request().Header.Host())
	return c.Status(fiber.StatusOK).JSON(InfoResponse{
		Info: serviceInfo,
		Meta: InfoMeta{
			Links: InfoLinks{
				Self:      "https://" + host + "/",
				FBWebhook: "https://" + host + "/fb_webhook",
			},
		},
	})
}

// VerifyWebhook answers the subscription handshake by echoing hub.challenge
// when hub.mode is subscribe and hub.verify_token matches.
func (m *Controller) VerifyWebhook(c *fiber.Ctx) error {
	mode := c.Query("hub.mode")
	token := c.Query("hub.verify_token")
	challenge := c.Query("hub.challenge")

	if mode == "" || token == "" {
		return richerrors.Error{
			ExternalMsg: "hub.mode and hub.verify_token are required",
			Code:        fiber.StatusBadRequest,
		}
	}

	if mode != subscribeMode || subtle.ConstantTimeCompare([]byte(token), []byte(m.verifyToken)) != 1 {
		zerolog.Ctx(c.UserContext()).Warn().Str("mode", mode).Msg("Webhook verification failed")
		c.Status(fiber.StatusForbidden)
		return nil
	}

	zerolog.Ctx(c.UserContext()).Info().Msg("WEBHOOK_VERIFIED")
	return c.Status(fiber.StatusOK).SendString(challenge)
}

// ReceiveEvents forwards the first message of every entry and acknowledges immediately.
func (m *Controller) ReceiveEvents(c *fiber.Ctx) error {
	var payload WebhookPayload
	if err := c.BodyParser(&payload); err != nil {
		return richerrors.Error{
			ExternalMsg: "Invalid request payload",
			Err:         err,
			Code:        fiber.StatusBadRequest,
		}
	}

	if payload.Object != PageObject {
		return c.SendStatus(fiber.StatusNotFound)
	}

	logger := zerolog.Ctx(c.UserContext())
	for _, entry := range payload.Entry {
		if len(entry.Messaging) == 0 {
			continue
		}
		// Messenger delivers one event per entry; extra events are ignored.
		event := entry.Messaging[0]
		text := event.Text()
		if text == "" {
			continue
		}
		logger.Info().Msgf("User with PSID: %s said '%s'", event.Sender.ID, text)
		m.forwarder.Forward(c.UserContext(), event.Sender.ID, text)
	}

	return c.Status(fiber.StatusOK).SendString(EventReceived)
}
